package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/mascot-overlay/internal/overlay"
)

// Model holds the event loop state. The overlay it drives is only touched
// from Update.
type Model struct {
	State        State
	Overlay      Overlay
	Broker       Dispatcher
	Inbox        *Inbox
	Keys         KeyMap
	Help         help.Model
	Status       overlay.Status
	ErrorMessage string
	StartTime    time.Time
	Width        int
}

// NewModel returns the model for an overlay. inbox may be nil.
func NewModel(win Overlay, broker Dispatcher, inbox *Inbox) Model {
	return Model{
		State:   StateStarting,
		Overlay: win,
		Broker:  broker,
		Inbox:   inbox,
		Keys:    DefaultKeys(),
		Help:    NewHelpModel(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// Dropped returns the number of samples the inbox discarded.
func (m Model) Dropped() int64 {
	if m.Inbox == nil {
		return 0
	}
	return m.Inbox.Dropped()
}
