package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/rusenback/sysmon/internal/model"
	"github.com/rusenback/sysmon/internal/trend"
)

const (
	maxContainerRows = 10
	maxPortRows      = 10
	sparkWidth       = 30
)

// View renders the full frame from the snapshot taken on the last
// tick. The frame is always complete: missing data renders as
// explicit placeholders, never as a partially drawn screen.
func (m Model) View() string {
	header := m.renderHeader()
	hostPanel := panelStyle.Render(m.renderHostContent())
	dockerPanel := panelStyle.Render(m.renderDockerContent())
	portsPanel := panelStyle.Render(m.renderPortsContent())
	help := helpStyle.Render("[q] quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		hostPanel,
		dockerPanel,
		portsPanel,
		help,
	)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("System Monitor") + dimStyle.Render(" — "+m.view.ReadAt.Format("15:04:05"))
	if !m.view.HostValid {
		return title
	}

	host := m.view.Host
	info := fmt.Sprintf("up %s | %s (%s, %s)",
		formatUptime(host.Uptime), host.OS.Distro, host.OS.Kernel, host.OS.Arch)
	return title + "\n" + dimStyle.Render(info)
}

func (m Model) renderHostContent() string {
	var s strings.Builder

	if !m.view.HostValid {
		s.WriteString(labelStyle.Render("Host") + "\n")
		s.WriteString("Collecting host metrics...")
		return s.String()
	}

	host := m.view.Host

	s.WriteString(labelStyle.Render("CPU") + "\n")
	s.WriteString(colorize(host.CPUPercent, renderBar(host.CPUPercent, barWidth)) + "\n")
	s.WriteString(sparkStyle.Render(m.trends.Sparkline(trend.KeyCPU, sparkWidth)) + "\n\n")

	memPercent := host.Memory.UsedPercent()
	s.WriteString(labelStyle.Render("Memory") +
		dimStyle.Render(fmt.Sprintf("  used %s of %s", formatGB(host.Memory.Used), formatGB(host.Memory.Total))) + "\n")
	s.WriteString(colorize(memPercent, renderBar(memPercent, barWidth)) + "\n")
	s.WriteString(sparkStyle.Render(m.trends.Sparkline(trend.KeyMemory, sparkWidth)) + "\n\n")

	s.WriteString(labelStyle.Render("Swap"))
	if host.Swap.Total == 0 {
		// No swap configured: not applicable rather than 0%.
		s.WriteString(dimStyle.Render("  -") + "\n\n")
	} else {
		swapPercent := host.Swap.UsedPercent()
		s.WriteString(dimStyle.Render(fmt.Sprintf("  used %s of %s", formatGB(host.Swap.Used), formatGB(host.Swap.Total))) + "\n")
		s.WriteString(colorize(swapPercent, renderBar(swapPercent, barWidth)) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Disk") +
		dimStyle.Render(fmt.Sprintf("  free %s of %s", formatGB(host.Disk.Free), formatGB(host.Disk.Total))) + "\n")
	s.WriteString(colorize(host.Disk.UsedPercent, renderBar(host.Disk.UsedPercent, barWidth)) + "\n")
	s.WriteString(sparkStyle.Render(m.trends.Sparkline(trend.KeyDisk, sparkWidth)))

	return s.String()
}

func (m Model) renderDockerContent() string {
	var s strings.Builder

	s.WriteString(labelStyle.Render("Docker Storage") + dimStyle.Render("  (updates every 60s)") + "\n")
	if m.view.DockerDisk.Valid {
		s.WriteString(fmt.Sprintf("Used: %s", formatGB(m.view.DockerDisk.UsedBytes)) + "\n\n")
	} else {
		s.WriteString("Initializing..." + "\n\n")
	}

	containers := sortedContainers(m.view.Containers)
	s.WriteString(labelStyle.Render(fmt.Sprintf("Containers (%d)", len(containers))) + "\n")
	s.WriteString(sparkStyle.Render(m.trends.Sparkline(trend.KeyContainers, sparkWidth)) + "\n")

	if len(containers) == 0 {
		s.WriteString("No running containers")
		return s.String()
	}

	header := fmt.Sprintf("%-18s %-10s %-10s %7s %9s %9s %9s",
		"NAME", "STATE", "HEALTH", "CPU%", "MEM", "RX", "TX")
	s.WriteString(headerStyle.Render(header) + "\n")

	for i, cont := range containers {
		if i >= maxContainerRows {
			s.WriteString(dimStyle.Render(fmt.Sprintf("... and %d more", len(containers)-maxContainerRows)))
			break
		}
		s.WriteString(renderContainerRow(cont) + "\n")
	}

	return strings.TrimRight(s.String(), "\n")
}

// renderContainerRow formats one table row. A container with no stats
// sample yet shows N/A so "no data" never reads as "measured zero".
func renderContainerRow(cont model.Container) string {
	cpu, mem, rx, tx := "N/A", "N/A", "N/A", "N/A"
	if cont.Stats != nil {
		cpu = fmt.Sprintf("%.1f", cont.Stats.CPUPercent)
		mem = humanize.IBytes(cont.Stats.MemoryUsage)
		rx = humanize.IBytes(cont.Stats.NetworkRx)
		tx = humanize.IBytes(cont.Stats.NetworkTx)
	}

	return fmt.Sprintf("%-18s %-10s %-10s %7s %9s %9s %9s",
		truncate(cont.Name, 18),
		truncate(cont.State, 10),
		renderHealth(cont.Health),
		cpu, mem, rx, tx)
}

// renderHealth colors the healthcheck state; containers without a
// healthcheck show a dash.
func renderHealth(h model.Health) string {
	switch h {
	case model.HealthHealthy:
		return healthyStyle.Render("healthy")
	case model.HealthUnhealthy:
		return unhealthyStyle.Render("unhealthy")
	case model.HealthStarting:
		return startingStyle.Render("starting")
	default:
		return dimStyle.Render("-")
	}
}

func (m Model) renderPortsContent() string {
	var s strings.Builder

	ports := m.view.PortMap
	s.WriteString(labelStyle.Render(fmt.Sprintf("Used Network Ports (%d)", len(ports))) + "\n")

	if len(ports) == 0 {
		s.WriteString(dimStyle.Render("none"))
		return s.String()
	}

	for i, p := range ports {
		if i >= maxPortRows {
			s.WriteString(dimStyle.Render(fmt.Sprintf("... and %d more", len(ports)-maxPortRows)))
			break
		}
		addr := fmt.Sprintf("%s:%d", p.Address, p.Port)
		if p.Container != "" {
			s.WriteString(fmt.Sprintf("%-22s → %s\n", addr, healthyStyle.Render(p.Container)))
		} else {
			s.WriteString(fmt.Sprintf("%-22s\n", addr))
		}
	}

	return strings.TrimRight(s.String(), "\n")
}

// sortedContainers returns the table ordered by name for a stable
// display, with ID as tiebreak.
func sortedContainers(containers []model.Container) []model.Container {
	sorted := make([]model.Container, len(containers))
	copy(sorted, containers)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// formatUptime renders a duration as "3d 4h 5m".
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
