package model

import "time"

// Health on containerin healthcheck tila
type Health string

const (
	HealthHealthy   Health = "healthy"
	HealthUnhealthy Health = "unhealthy"
	HealthStarting  Health = "starting"
	// HealthUnknown means the container has no healthcheck configured.
	HealthUnknown Health = "unknown"
)

// Container edustaa Docker containeria
type Container struct {
	ID      string
	Name    string
	Image   string
	Status  string
	State   string
	Health  Health
	Created time.Time
	Ports   []Port

	// Stats is nil until the first successful stats sample for this
	// container. The renderer shows N/A for nil, never zero.
	Stats *ContainerStats
}

// Port edustaa container porttia
type Port struct {
	Private int
	Public  int // 0 jos porttia ei ole julkaistu hostille
	Type    string
}
