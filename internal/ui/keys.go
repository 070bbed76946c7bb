package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the status panel's key bindings.
type KeyMap struct {
	Quit       key.Binding
	ToggleHelp key.Binding
	ToggleShow key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		ToggleShow: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show/hide mascot"),
		),
	}
}

// NewHelpModel returns a configured help model.
func NewHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Current.HelpKey
	h.Styles.FullKey = Current.HelpKey
	h.Styles.ShortDesc = Current.HelpDesc
	h.Styles.FullDesc = Current.HelpDesc
	return h
}

type stateKeyMap struct {
	keys  KeyMap
	state State
}

// ForState returns a contextual key map implementing help.KeyMap for the given state.
func (k KeyMap) ForState(s State) help.KeyMap {
	return stateKeyMap{keys: k, state: s}
}

// ShortHelp implements help.KeyMap.
func (s stateKeyMap) ShortHelp() []key.Binding {
	switch s.state {
	case StateRunning:
		return []key.Binding{s.keys.ToggleShow, s.keys.ToggleHelp, s.keys.Quit}
	default:
		return []key.Binding{s.keys.ToggleHelp, s.keys.Quit}
	}
}

// FullHelp implements help.KeyMap.
func (s stateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{s.keys.ToggleShow}, {s.keys.ToggleHelp, s.keys.Quit}}
}
