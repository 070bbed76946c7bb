// Package platform wraps the OS facilities the overlay needs: a global raw
// pointer source and control over the host top-level window.
package platform

import (
	"errors"
	"fmt"
	"time"
	"unsafe"

	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// ErrUnsupported is returned by operations the current platform cannot
// perform.
var ErrUnsupported = errors.New("unsupported platform")

// PointerSource delivers pointer samples for the whole screen, regardless of
// which window has focus or capture.
type PointerSource interface {
	// Start installs the OS hook. emit must not block. Calling Start on a
	// running source is a no-op.
	Start(emit func(pointer.Sample)) error
	// Stop removes the hook. Safe to call more than once.
	Stop()
	// Environment describes the backend.
	Environment() Environment
}

// HostWindow controls the top-level window that hosts the web content.
type HostWindow interface {
	SetFrameless() error
	SetAlwaysOnTop() error
	ExcludeFromTaskSwitcher() error
	MoveTo(p pointer.Point) error
	Resize(width, height int) error
	// Position returns the client area's top-left corner in screen coordinates.
	Position() (pointer.Point, error)
	// ClientRect returns the client area in screen coordinates.
	ClientRect() (pointer.Rect, error)
	// StartSystemMove hands the remainder of a drag to the window manager.
	StartSystemMove(at pointer.Point) error
	CapturePointer() error
	ReleasePointer() error
	Show() error
	Hide() error
	// RegisterRawInput subscribes the window to raw pointer input.
	RegisterRawInput() error
}

// Options configures the platform backends.
type Options struct {
	// Title identifies the host window on platforms that look it up by name.
	Title string
	// Native is the toolkit window handle: a GtkWindow* on Linux, an HWND
	// on Windows.
	Native unsafe.Pointer
	// Dispatch runs f on the thread that owns the native window.
	Dispatch func(f func())
	// BeginMoveDrag starts a toolkit-driven window move at a screen point.
	// Optional.
	BeginMoveDrag func(at pointer.Point)
	// PollInterval is the sampling period of polling sources.
	PollInterval time.Duration
}

func (o Options) dispatch(f func()) {
	if o.Dispatch == nil {
		f()
		return
	}
	o.Dispatch(f)
}

func (o Options) pollInterval() time.Duration {
	if o.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return o.PollInterval
}

// Environment reports what a pointer source can do on this machine.
type Environment struct {
	// Provider names the backend, for example "x11" or "win32-raw-input".
	Provider string
	// Available is false when the source cannot deliver global samples.
	Available bool
	// Message is a one-line summary for logs and the status panel.
	Message string
	// Guidance tells the operator how to restore full tracking, if needed.
	Guidance string
}

func (e Environment) String() string {
	state := "available"
	if !e.Available {
		state = "unavailable"
	}
	if e.Message == "" {
		return fmt.Sprintf("%s (%s)", e.Provider, state)
	}
	return fmt.Sprintf("%s (%s): %s", e.Provider, state, e.Message)
}
