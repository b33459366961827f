package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1E1E2E")).
		Background(lipgloss.Color("#CBA6F7"))

	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5C2E7"))

	sparkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	healthyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))

	unhealthyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))

	startingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8")).Padding(1, 0)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#585B70")).
		Padding(0, 2)
)

// colorize picks a threshold color for a percentage value.
func colorize(percent float64, text string) string {
	var color string
	switch {
	case percent > 80:
		color = "#F38BA8" // red/pink
	case percent > 50:
		color = "#FAB387" // orange
	default:
		color = "#A6E3A1" // green
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}
