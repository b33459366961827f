// internal/docker/interface.go
package docker

import (
	"context"

	"github.com/rusenback/sysmon/internal/model"
)

// API interface mahdollistaa mockauksen testeissä
type API interface {
	ListContainers(ctx context.Context) ([]model.Container, error)
	ContainerStats(ctx context.Context, id string) (*model.ContainerStats, error)
	DiskUsage(ctx context.Context) (uint64, error)
	Close() error
}

// Varmista että Client toteuttaa interfacen
var _ API = (*Client)(nil)
