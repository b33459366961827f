// internal/host/interface.go
package host

import (
	"context"
	"time"

	"github.com/rusenback/sysmon/internal/model"
)

// Provider interface mahdollistaa mockauksen testeissä.
// Every call may fail with a provider-unavailable error; callers are
// expected to keep their previous value and retry on the next cycle.
type Provider interface {
	CPUPercent(ctx context.Context) (float64, error)
	Memory(ctx context.Context) (model.MemoryInfo, error)
	Swap(ctx context.Context) (model.SwapInfo, error)
	DiskUsage(ctx context.Context, path string) (model.DiskInfo, error)
	Uptime(ctx context.Context) (time.Duration, error)
	OSInfo(ctx context.Context) (model.OSInfo, error)
	ListenPorts(ctx context.Context) ([]model.ListenPort, error)
}

// Varmista että Sampler toteuttaa interfacen
var _ Provider = (*Sampler)(nil)
