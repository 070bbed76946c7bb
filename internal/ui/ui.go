package ui

import (
	"github.com/stigoleg/mascot-overlay/internal/overlay"
	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// Overlay is the window the event loop drives.
type Overlay interface {
	Configure() error
	Show() error
	Hide() error
	Close()
	ContentReady()
	HandleNative(ev overlay.NativeEvent)
	Status() overlay.Status
}

// Dispatcher fans a global sample out to listeners.
type Dispatcher interface {
	Dispatch(s pointer.Sample)
}

// SampleMsg carries one global pointer sample into the loop.
type SampleMsg pointer.Sample

// NativeMsg carries a pointer event the content surface received itself.
type NativeMsg overlay.NativeEvent

// ReadyMsg reports that the content finished loading.
type ReadyMsg struct{}

// ViewClosedMsg reports that the web view window went away.
type ViewClosedMsg struct{}

// ShutdownMsg asks the loop to close the overlay and quit, for example on a
// signal.
type ShutdownMsg struct{}

// startMsg configures and shows the window once the loop runs.
type startMsg struct{}
