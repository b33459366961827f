// internal/host/sampler.go
package host

import (
	"context"
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	gopshost "github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	gopsnet "github.com/shirou/gopsutil/v3/net"

	"github.com/rusenback/sysmon/internal/model"
)

// Sampler reads host metrics through gopsutil.
type Sampler struct{}

func NewSampler() *Sampler {
	return &Sampler{}
}

// CPUPercent returns total CPU usage since the previous call.
// gopsutil keeps the previous counters internally when interval is 0,
// so the call never sleeps.
func (s *Sampler) CPUPercent(ctx context.Context) (float64, error) {
	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, nil
	}
	return percents[0], nil
}

func (s *Sampler) Memory(ctx context.Context) (model.MemoryInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return model.MemoryInfo{}, err
	}
	return model.MemoryInfo{
		Used:  vm.Used,
		Free:  vm.Available,
		Total: vm.Total,
	}, nil
}

func (s *Sampler) Swap(ctx context.Context) (model.SwapInfo, error) {
	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return model.SwapInfo{}, err
	}
	return model.SwapInfo{
		Used:  sw.Used,
		Total: sw.Total,
	}, nil
}

func (s *Sampler) DiskUsage(ctx context.Context, path string) (model.DiskInfo, error) {
	du, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return model.DiskInfo{}, err
	}
	return model.DiskInfo{
		Used:        du.Used,
		Free:        du.Free,
		Total:       du.Total,
		UsedPercent: du.UsedPercent,
	}, nil
}

func (s *Sampler) Uptime(ctx context.Context) (time.Duration, error) {
	secs, err := gopshost.UptimeWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

func (s *Sampler) OSInfo(ctx context.Context) (model.OSInfo, error) {
	info, err := gopshost.InfoWithContext(ctx)
	if err != nil {
		return model.OSInfo{}, err
	}
	return model.OSInfo{
		Kernel: info.KernelVersion,
		Distro: info.Platform + " " + info.PlatformVersion,
		Arch:   info.KernelArch,
	}, nil
}

// ListenPorts returns listening inet sockets sorted by port number.
// Needs net-namespace visibility; on permission errors the caller
// keeps its previous list.
func (s *Sampler) ListenPorts(ctx context.Context) ([]model.ListenPort, error) {
	conns, err := gopsnet.ConnectionsWithContext(ctx, "inet")
	if err != nil {
		return nil, err
	}

	seen := make(map[model.ListenPort]struct{})
	ports := make([]model.ListenPort, 0, len(conns))
	for _, conn := range conns {
		if conn.Status != "LISTEN" {
			continue
		}
		lp := model.ListenPort{
			Address: conn.Laddr.IP,
			Port:    int(conn.Laddr.Port),
		}
		// Sama portti voi näkyä useasti (esim. IPv4 + IPv6)
		if _, ok := seen[lp]; ok {
			continue
		}
		seen[lp] = struct{}{}
		ports = append(ports, lp)
	}

	sort.Slice(ports, func(i, j int) bool {
		if ports[i].Port != ports[j].Port {
			return ports[i].Port < ports[j].Port
		}
		return ports[i].Address < ports[j].Address
	})

	return ports, nil
}
