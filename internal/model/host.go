package model

import "time"

// MemoryInfo holds virtual memory usage in bytes.
type MemoryInfo struct {
	Used  uint64
	Free  uint64
	Total uint64
}

// UsedPercent returns used memory as a percentage of total.
func (m MemoryInfo) UsedPercent() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Used) / float64(m.Total) * 100.0
}

// SwapInfo holds swap usage in bytes.
type SwapInfo struct {
	Used  uint64
	Total uint64
}

// UsedPercent returns used swap as a percentage of total.
func (s SwapInfo) UsedPercent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Used) / float64(s.Total) * 100.0
}

// DiskInfo holds filesystem usage for one mount point in bytes.
type DiskInfo struct {
	Used        uint64
	Free        uint64
	Total       uint64
	UsedPercent float64
}

// OSInfo describes the host operating system.
type OSInfo struct {
	Kernel string
	Distro string
	Arch   string
}

// ListenPort is one listening socket on the host.
type ListenPort struct {
	Address string
	Port    int
}

// HostMetrics is the host-metrics field group: everything the fast
// collector samples in one cycle.
type HostMetrics struct {
	CPUPercent float64
	Memory     MemoryInfo
	Swap       SwapInfo
	Disk       DiskInfo
	Uptime     time.Duration
	OS         OSInfo
	SampledAt  time.Time
}
