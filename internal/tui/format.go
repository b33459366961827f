package tui

import (
	"fmt"
	"strings"
)

const barWidth = 30

// renderBar draws a percentage bar: [██████░░░░] 54.9%
func renderBar(percent float64, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %.1f%%", bar, percent)
}

// gigabytes converts bytes to GiB.
func gigabytes(b uint64) float64 {
	return float64(b) / (1 << 30)
}

// formatGB renders a byte count as gigabytes with one decimal.
func formatGB(b uint64) string {
	return fmt.Sprintf("%.1fGB", gigabytes(b))
}

// truncate shortens a string to a maximum length
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
