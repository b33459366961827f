// internal/model/stats.go
package model

import "time"

// ContainerStats sisältää containerin resurssitiedot.
// A stats value is immutable once published to the snapshot store.
type ContainerStats struct {
	// CPU
	CPUPercent float64

	// Memory
	MemoryUsage   uint64
	MemoryLimit   uint64
	MemoryPercent float64

	// Network
	NetworkRx uint64 // Total bytes received
	NetworkTx uint64 // Total bytes transmitted

	// Timestamp for staleness checks
	SampledAt time.Time
}
