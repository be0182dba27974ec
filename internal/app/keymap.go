package app

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard contract for the viewer.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	SwitchTab key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Open      key.Binding
	Close     key.Binding
	Stats     key.Binding
	Quit      key.Binding
}

// browseHelp returns the footer bindings for the list view.
func (k keyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SwitchTab, k.Open, k.Quit}
}

// detailHelp returns the footer bindings while the popup is open.
func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Stats, k.Close, k.Quit}
}

var defaultKeyMap = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	SwitchTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch list"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "details"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Stats: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open stats page"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
