package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/mascot-overlay/internal/drag"
	"github.com/stigoleg/mascot-overlay/internal/forward"
	"github.com/stigoleg/mascot-overlay/internal/overlay"
	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

type fakeOverlay struct {
	configured int
	shows      int
	hides      int
	closes     int
	ready      int
	natives    []overlay.NativeEvent
	visible    bool
	showErr    error
}

func (f *fakeOverlay) Configure() error { f.configured++; return nil }
func (f *fakeOverlay) Show() error {
	f.shows++
	if f.showErr != nil {
		return f.showErr
	}
	f.visible = true
	return nil
}
func (f *fakeOverlay) Hide() error   { f.hides++; f.visible = false; return nil }
func (f *fakeOverlay) Close()        { f.closes++; f.visible = false }
func (f *fakeOverlay) ContentReady() { f.ready++ }
func (f *fakeOverlay) HandleNative(ev overlay.NativeEvent) {
	f.natives = append(f.natives, ev)
}
func (f *fakeOverlay) Status() overlay.Status {
	return overlay.Status{
		Title:   "Mascota Live2D",
		Visible: f.visible,
		Ready:   f.ready > 0,
		Closed:  f.closes > 0,
		Drag:    drag.StateIdle,
		Outcomes: map[forward.Outcome]int{
			forward.Forwarded: 3,
		},
	}
}

type fakeBroker struct {
	samples []pointer.Sample
}

func (b *fakeBroker) Dispatch(s pointer.Sample) { b.samples = append(b.samples, s) }

func started(t *testing.T) (Model, *fakeOverlay, *fakeBroker) {
	t.Helper()
	win := &fakeOverlay{}
	broker := &fakeBroker{}
	m := NewModel(win, broker, NewInbox(4))
	if _, ok := m.Init()().(startMsg); !ok {
		t.Fatal("expected Init to produce the start message")
	}
	m, cmd := Update(startMsg{}, m)
	if cmd == nil {
		t.Error("expected a refresh tick after start")
	}
	return m, win, broker
}

func TestNewModel(t *testing.T) {
	m := NewModel(&fakeOverlay{}, &fakeBroker{}, nil)
	if m.State != StateStarting {
		t.Errorf("expected initial state Starting, got %s", m.State)
	}
	if m.Dropped() != 0 {
		t.Error("expected no dropped samples without an inbox")
	}
	if !strings.Contains(View(m), "starting") {
		t.Error("expected starting view")
	}
}

func TestStartConfiguresAndShows(t *testing.T) {
	m, win, _ := started(t)
	if win.configured != 1 || win.shows != 1 {
		t.Errorf("expected one configure and one show, got %d and %d", win.configured, win.shows)
	}
	if m.State != StateRunning {
		t.Errorf("expected Running, got %s", m.State)
	}
	if !m.Status.Visible {
		t.Error("expected status snapshot after start")
	}
}

func TestStartShowError(t *testing.T) {
	win := &fakeOverlay{showErr: errors.New("closed")}
	m := NewModel(win, &fakeBroker{}, nil)
	m, _ = Update(startMsg{}, m)
	if m.ErrorMessage != "closed" {
		t.Errorf("expected error message to be shown, got %q", m.ErrorMessage)
	}
}

func TestRouting(t *testing.T) {
	m, win, broker := started(t)

	m, _ = Update(SampleMsg{X: 5, Y: 6, Button: pointer.ButtonUp}, m)
	m, _ = Update(NativeMsg{Kind: overlay.NativeDown, ScreenX: 1, ScreenY: 2}, m)
	m, _ = Update(ReadyMsg{}, m)

	if len(broker.samples) != 1 || broker.samples[0] != (pointer.Sample{X: 5, Y: 6, Button: pointer.ButtonUp}) {
		t.Errorf("expected sample dispatched on the broker, got %v", broker.samples)
	}
	if len(win.natives) != 1 || win.natives[0].Kind != overlay.NativeDown {
		t.Errorf("expected native event handed to the overlay, got %v", win.natives)
	}
	if win.ready != 1 || !m.Status.Ready {
		t.Error("expected readiness forwarded and reflected in the status")
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.KeyMsg
		wantState State
		wantQuit  bool
	}{
		{"help", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, StateHelp, false},
		{"question mark", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, StateHelp, false},
		{"quit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, StateClosed, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, StateClosed, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, StateClosed, true},
		{"other", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, StateRunning, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, win, _ := started(t)
			m, cmd := Update(tt.msg, m)
			if m.State != tt.wantState {
				t.Errorf("expected state %s, got %s", tt.wantState, m.State)
			}
			if tt.wantQuit {
				if cmd == nil {
					t.Fatal("expected quit command")
				}
				if _, ok := cmd().(tea.QuitMsg); !ok {
					t.Error("expected tea.QuitMsg")
				}
				if win.closes != 1 {
					t.Error("expected the overlay to be closed on quit")
				}
			}
		})
	}
}

func TestToggleShow(t *testing.T) {
	m, win, _ := started(t)
	s := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}

	m, _ = Update(s, m)
	if win.hides != 1 || m.Status.Visible {
		t.Error("expected first toggle to hide")
	}
	m, _ = Update(s, m)
	if win.shows != 2 || !m.Status.Visible {
		t.Error("expected second toggle to show again")
	}
}

func TestHelpToggleReturns(t *testing.T) {
	m, _, _ := started(t)
	h := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}
	m, _ = Update(h, m)
	if !strings.Contains(View(m), "Forward counters") {
		t.Error("expected help view")
	}
	m, _ = Update(h, m)
	if m.State != StateRunning {
		t.Errorf("expected Running after second toggle, got %s", m.State)
	}
}

func TestViewClosed(t *testing.T) {
	m, win, broker := started(t)
	m, cmd := Update(ViewClosedMsg{}, m)
	if cmd == nil || win.closes != 1 {
		t.Fatal("expected close and quit when the web view goes away")
	}
	// Messages after close are ignored.
	Update(SampleMsg{X: 1}, m)
	if len(broker.samples) != 0 {
		t.Error("expected no dispatch after close")
	}
}

func TestShutdownClosesInLoop(t *testing.T) {
	m, win, _ := started(t)
	m, cmd := Update(ShutdownMsg{}, m)
	if cmd == nil {
		t.Fatal("expected quit command on shutdown")
	}
	if win.closes != 1 || m.State != StateClosed {
		t.Errorf("expected the overlay closed by the loop, got closes=%d state=%s", win.closes, m.State)
	}
	// A later close notification does not close twice.
	Update(ViewClosedMsg{}, m)
	if win.closes != 1 {
		t.Errorf("expected a single close, got %d", win.closes)
	}
}

func TestStatusView(t *testing.T) {
	m, _, _ := started(t)
	view := View(m)
	for _, want := range []string{"Mascot overlay", "Mascota Live2D", "visible", "forwarded", "Idle", "dropped"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected status view to contain %q", want)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateStarting: "Starting",
		StateRunning:  "Running",
		StateHelp:     "Help",
		StateClosed:   "Closed",
		State(42):     "Unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
