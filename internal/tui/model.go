package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/sysmon/internal/snapshot"
	"github.com/rusenback/sysmon/internal/trend"
)

// Model is the render side of the dashboard. It never talks to a
// provider: every frame is drawn from one snapshot read, so a slow
// Docker call can delay a metric's freshness but never a frame.
type Model struct {
	store  *snapshot.Store
	trends trend.Set

	refresh time.Duration
	view    snapshot.View

	width  int
	height int
}

// tickMsg fires once per display period.
type tickMsg time.Time

// NewModel creates the render model. The store and trend set are read
// only from here on.
func NewModel(store *snapshot.Store, trends trend.Set, refresh time.Duration) Model {
	if refresh <= 0 {
		refresh = time.Second
	}
	return Model{
		store:   store,
		trends:  trends,
		refresh: refresh,
		view:    store.Read(),
	}
}

// Init starts the display tick.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// tickCmd schedules the next frame.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
