package collector

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rusenback/sysmon/internal/host"
	"github.com/rusenback/sysmon/internal/model"
	"github.com/rusenback/sysmon/internal/snapshot"
	"github.com/rusenback/sysmon/internal/trend"
)

// Fast samples host metrics and listening ports once per second and
// owns the host-metrics and port-mapping field groups.
type Fast struct {
	provider host.Provider
	store    *snapshot.Store
	trends   trend.Set
	period   time.Duration
	diskPath string
	log      *logrus.Entry
}

func NewFast(provider host.Provider, store *snapshot.Store, trends trend.Set, period time.Duration, diskPath string, log *logrus.Entry) *Fast {
	if diskPath == "" {
		diskPath = "/"
	}
	return &Fast{
		provider: provider,
		store:    store,
		trends:   trends,
		period:   period,
		diskPath: diskPath,
		log:      log,
	}
}

// Run loops until the context is cancelled.
func (f *Fast) Run(ctx context.Context) {
	runEvery(ctx, f.period, f.cycle)
}

// cycle samples every host metric, pushes trends, correlates ports
// against the current container table and publishes both owned field
// groups. Any provider failure leaves the previous group value in
// place; stale-but-valid beats stale-but-blank.
func (f *Fast) cycle(ctx context.Context) {
	if metrics, ok := f.sampleHost(ctx); ok {
		f.trends.Push(trend.KeyCPU, metrics.CPUPercent)
		f.trends.Push(trend.KeyMemory, metrics.Memory.UsedPercent())
		f.trends.Push(trend.KeyDisk, metrics.Disk.UsedPercent)
		f.store.SetHost(metrics)
	}

	ports, err := f.provider.ListenPorts(ctx)
	if err != nil {
		f.log.WithError(err).Warn("listen port sampling failed, keeping previous mapping")
		return
	}

	// Read-only access to the container group the container collector owns.
	f.store.SetPortMap(Correlate(ports, f.store.Containers()))
}

// sampleHost gathers the whole host group or reports failure. The
// group is published all-or-nothing so a reader never sees a frame
// mixing this cycle's CPU with last cycle's memory.
func (f *Fast) sampleHost(ctx context.Context) (model.HostMetrics, bool) {
	cpuPercent, err := f.provider.CPUPercent(ctx)
	if err != nil {
		f.log.WithError(err).Warn("cpu sampling failed, keeping previous host metrics")
		return model.HostMetrics{}, false
	}

	memory, err := f.provider.Memory(ctx)
	if err != nil {
		f.log.WithError(err).Warn("memory sampling failed, keeping previous host metrics")
		return model.HostMetrics{}, false
	}

	swap, err := f.provider.Swap(ctx)
	if err != nil {
		f.log.WithError(err).Warn("swap sampling failed, keeping previous host metrics")
		return model.HostMetrics{}, false
	}

	diskInfo, err := f.provider.DiskUsage(ctx, f.diskPath)
	if err != nil {
		f.log.WithError(err).Warn("disk sampling failed, keeping previous host metrics")
		return model.HostMetrics{}, false
	}

	uptime, err := f.provider.Uptime(ctx)
	if err != nil {
		f.log.WithError(err).Warn("uptime sampling failed, keeping previous host metrics")
		return model.HostMetrics{}, false
	}

	osInfo, err := f.provider.OSInfo(ctx)
	if err != nil {
		f.log.WithError(err).Warn("os info sampling failed, keeping previous host metrics")
		return model.HostMetrics{}, false
	}

	return model.HostMetrics{
		CPUPercent: cpuPercent,
		Memory:     memory,
		Swap:       swap,
		Disk:       diskInfo,
		Uptime:     uptime,
		OS:         osInfo,
		SampledAt:  time.Now(),
	}, true
}
