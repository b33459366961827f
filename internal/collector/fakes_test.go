package collector

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rusenback/sysmon/internal/model"
)

var errUnavailable = errors.New("provider unavailable")

// testLog returns a silent logger entry for collector tests.
func testLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// fakeHost implements host.Provider with canned values and per-call
// failure switches.
type fakeHost struct {
	cpu    float64
	memory model.MemoryInfo
	swap   model.SwapInfo
	disk   model.DiskInfo
	uptime time.Duration
	osInfo model.OSInfo
	ports  []model.ListenPort

	failCPU   bool
	failPorts bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		cpu:    32.5,
		memory: model.MemoryInfo{Used: 4 << 30, Free: 12 << 30, Total: 16 << 30},
		swap:   model.SwapInfo{Used: 1 << 28, Total: 2 << 30},
		disk:   model.DiskInfo{Used: 54 << 30, Free: 46 << 30, Total: 100 << 30, UsedPercent: 54.0},
		uptime: 42 * time.Hour,
		osInfo: model.OSInfo{Kernel: "6.8.0", Distro: "debian 12", Arch: "x86_64"},
		ports: []model.ListenPort{
			{Address: "0.0.0.0", Port: 22},
			{Address: "0.0.0.0", Port: 80},
		},
	}
}

func (f *fakeHost) CPUPercent(context.Context) (float64, error) {
	if f.failCPU {
		return 0, errUnavailable
	}
	return f.cpu, nil
}

func (f *fakeHost) Memory(context.Context) (model.MemoryInfo, error) {
	return f.memory, nil
}

func (f *fakeHost) Swap(context.Context) (model.SwapInfo, error) {
	return f.swap, nil
}

func (f *fakeHost) DiskUsage(context.Context, string) (model.DiskInfo, error) {
	return f.disk, nil
}

func (f *fakeHost) Uptime(context.Context) (time.Duration, error) {
	return f.uptime, nil
}

func (f *fakeHost) OSInfo(context.Context) (model.OSInfo, error) {
	return f.osInfo, nil
}

func (f *fakeHost) ListenPorts(context.Context) ([]model.ListenPort, error) {
	if f.failPorts {
		return nil, errUnavailable
	}
	return f.ports, nil
}

// fakeDocker implements docker.API with canned containers and
// failure switches.
type fakeDocker struct {
	containers []model.Container
	stats      map[string]*model.ContainerStats
	diskUsed   uint64

	failList  bool
	failStats map[string]bool
	failDisk  bool

	diskCalls atomic.Int32
}

func newFakeDocker() *fakeDocker {
	return &fakeDocker{
		stats:     make(map[string]*model.ContainerStats),
		failStats: make(map[string]bool),
	}
}

func (f *fakeDocker) ListContainers(context.Context) ([]model.Container, error) {
	if f.failList {
		return nil, errUnavailable
	}
	// Fresh copies, like a real listing would produce.
	out := make([]model.Container, len(f.containers))
	copy(out, f.containers)
	return out, nil
}

func (f *fakeDocker) ContainerStats(_ context.Context, id string) (*model.ContainerStats, error) {
	if f.failStats[id] {
		return nil, errUnavailable
	}
	return f.stats[id], nil
}

func (f *fakeDocker) DiskUsage(context.Context) (uint64, error) {
	f.diskCalls.Add(1)
	if f.failDisk {
		return 0, errUnavailable
	}
	return f.diskUsed, nil
}

func (f *fakeDocker) Close() error { return nil }
