// internal/docker/stats.go
package docker

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/docker/docker/api/types"

	"github.com/rusenback/sysmon/internal/model"
)

// ContainerStats hakee containerin resurssitiedot (yksi sample)
func (c *Client) ContainerStats(ctx context.Context, id string) (*model.ContainerStats, error) {
	statsCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Hae stats (stream: false = hae vain kerran)
	resp, err := c.cli.ContainerStats(statsCtx, id, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var stats types.StatsJSON
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	// Laske CPU prosentti
	cpuPercent := calculateCPUPercent(&stats)

	// Memory tiedot
	memUsage := stats.MemoryStats.Usage
	memLimit := stats.MemoryStats.Limit
	memPercent := float64(0)
	if memLimit > 0 {
		memPercent = float64(memUsage) / float64(memLimit) * 100.0
	}

	// Network tiedot
	var networkRx, networkTx uint64
	for _, network := range stats.Networks {
		networkRx += network.RxBytes
		networkTx += network.TxBytes
	}

	return &model.ContainerStats{
		CPUPercent:    cpuPercent,
		MemoryUsage:   memUsage,
		MemoryLimit:   memLimit,
		MemoryPercent: memPercent,
		NetworkRx:     networkRx,
		NetworkTx:     networkTx,
		SampledAt:     time.Now(),
	}, nil
}

// calculateCPUPercent laskee CPU käytön prosentteina
func calculateCPUPercent(stats *types.StatsJSON) float64 {
	cpuDelta := float64(stats.CPUStats.CPUUsage.TotalUsage - stats.PreCPUStats.CPUUsage.TotalUsage)
	systemDelta := float64(stats.CPUStats.SystemUsage - stats.PreCPUStats.SystemUsage)

	if systemDelta > 0.0 && cpuDelta > 0.0 {
		cpuPercent := (cpuDelta / systemDelta) * float64(
			len(stats.CPUStats.CPUUsage.PercpuUsage),
		) * 100.0
		return cpuPercent
	}
	return 0.0
}
