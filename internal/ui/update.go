package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/mascot-overlay/internal/overlay"
	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// tickMsg refreshes the status snapshot.
type tickMsg time.Time

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	if m.State == StateClosed {
		return m, nil
	}

	switch msg := msg.(type) {
	case startMsg:
		m.StartTime = time.Now()
		if err := m.Overlay.Configure(); err != nil {
			m.ErrorMessage = err.Error()
		}
		if err := m.Overlay.Show(); err != nil {
			m.ErrorMessage = err.Error()
		}
		m.State = StateRunning
		m.Status = m.Overlay.Status()
		return m, tick()

	case SampleMsg:
		m.Broker.Dispatch(pointer.Sample(msg))
		return m, nil

	case NativeMsg:
		m.Overlay.HandleNative(overlay.NativeEvent(msg))
		return m, nil

	case ReadyMsg:
		m.Overlay.ContentReady()
		m.Status = m.Overlay.Status()
		return m, nil

	case ViewClosedMsg:
		log.Printf("ui: web view closed")
		return quit(m)

	case ShutdownMsg:
		log.Printf("ui: shutdown requested")
		return quit(m)

	case tickMsg:
		m.Status = m.Overlay.Status()
		return m, tick()

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return quit(m)
		case key.Matches(msg, m.Keys.ToggleHelp):
			if m.State == StateHelp {
				m.State = StateRunning
			} else {
				m.State = StateHelp
			}
			return m, nil
		case key.Matches(msg, m.Keys.ToggleShow):
			return toggleShow(m), nil
		}
	}

	return m, nil
}

func toggleShow(m Model) Model {
	if m.State == StateStarting {
		return m
	}
	var err error
	if m.Overlay.Status().Visible {
		err = m.Overlay.Hide()
	} else {
		err = m.Overlay.Show()
	}
	if err != nil {
		m.ErrorMessage = err.Error()
	} else {
		m.ErrorMessage = ""
	}
	m.Status = m.Overlay.Status()
	return m
}

func quit(m Model) (Model, tea.Cmd) {
	m.Overlay.Close()
	m.Status = m.Overlay.Status()
	m.State = StateClosed
	return m, tea.Quit
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
