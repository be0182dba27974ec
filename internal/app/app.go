// Package app provides the Bubble Tea application model for the VATScope viewer
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vatscope/vatscope/internal/browser"
	"github.com/vatscope/vatscope/internal/config"
	"github.com/vatscope/vatscope/internal/logging"
	"github.com/vatscope/vatscope/internal/theme"
	"github.com/vatscope/vatscope/internal/vatsim"
)

// statsURLFormat is the member stats page opened by the 'o' key.
const statsURLFormat = "https://stats.vatsim.net/stats/%d"

// Model is the main application model. The snapshot is fetched before
// the program starts and never changes afterwards; all mutation goes
// through the nav state.
type Model struct {
	// Data
	data    *vatsim.Data
	dataURL string

	// Navigation
	nav nav

	// UI state
	theme  *theme.Theme
	keys   keyMap
	help   help.Model
	width  int
	height int

	// openURL launches the stats page. Tests swap in a recorder.
	openURL func(url string) error
}

// NewModel creates the application model for a loaded snapshot.
// dataURL is the endpoint the snapshot came from, shown in the
// sources panel.
func NewModel(cfg *config.Config, data *vatsim.Data, dataURL string) *Model {
	return &Model{
		data:    data,
		dataURL: dataURL,
		theme:   theme.Get(cfg.Display.Theme),
		keys:    defaultKeyMap,
		help:    help.New(),
		openURL: browser.Open,
	}
}

// Init implements tea.Model. The snapshot is static, so there is
// nothing to schedule.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey routes a key press by state: quit keys apply everywhere,
// everything else depends on whether the detail popup is open.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.nav.popupOpen {
		return m.handleDetailKey(msg)
	}
	return m.handleBrowseKey(msg)
}

// handleBrowseKey handles keys while the entity lists are in focus.
func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		// esc quits from the list view
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.nav.moveUp(m.activeLength())
	case key.Matches(msg, m.keys.Down):
		m.nav.moveDown(m.activeLength())
	case key.Matches(msg, m.keys.SwitchTab):
		m.nav.switchTab()
	case key.Matches(msg, m.keys.PageUp):
		m.nav.pageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.nav.pageDown(m.activeLength())
	case key.Matches(msg, m.keys.Open):
		// no details to show for an empty list
		if m.activeLength() > 0 {
			m.nav.openPopup()
		}
	}
	return m, nil
}

// handleDetailKey handles keys while the popup is open. Navigation
// keys are ignored so the selection cannot change under the popup.
func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.nav.closePopup()
	case key.Matches(msg, m.keys.Stats):
		m.openStatsPage()
	}
	return m, nil
}

// openStatsPage launches the stats page for the highlighted entity.
// Launch failures are logged and otherwise ignored; the viewer keeps
// running either way.
func (m *Model) openStatsPage() {
	sel, ok := m.selection()
	if !ok {
		return
	}
	url := fmt.Sprintf(statsURLFormat, sel.cid())
	logging.Info("opening %s", url)
	if err := m.openURL(url); err != nil {
		logging.Error("open browser: %v", err)
	}
}

// activeLength returns the row count of the active tab's list.
func (m *Model) activeLength() int {
	if m.nav.tab == tabPilots {
		return len(m.data.Pilots)
	}
	return len(m.data.Controllers)
}

// selection returns the entity under the cursor. ok is false when the
// active list is empty.
func (m *Model) selection() (selectedRow, bool) {
	switch m.nav.tab {
	case tabPilots:
		idx := m.nav.cursor(len(m.data.Pilots))
		if idx < 0 {
			return selectedRow{}, false
		}
		return selectedRow{kind: tabPilots, pilot: &m.data.Pilots[idx]}, true
	default:
		idx := m.nav.cursor(len(m.data.Controllers))
		if idx < 0 {
			return selectedRow{}, false
		}
		return selectedRow{kind: tabControllers, controller: &m.data.Controllers[idx]}, true
	}
}
