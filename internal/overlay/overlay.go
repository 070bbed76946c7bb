// Package overlay composes the host window, the content surface, the drag
// gesture controller and the pointer forwarder into one overlay window.
package overlay

import (
	"errors"
	"fmt"
	"log"

	"github.com/stigoleg/mascot-overlay/internal/drag"
	"github.com/stigoleg/mascot-overlay/internal/forward"
	"github.com/stigoleg/mascot-overlay/internal/platform"
	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// ErrClosed is returned by operations on a closed window.
var ErrClosed = errors.New("overlay window closed")

// Surface is the embedded web content.
type Surface interface {
	forward.Surface
	Navigate(url string)
	SetTransparent() error
}

// Options configures a window.
type Options struct {
	Title    string
	URL      string
	Position pointer.Point
	Width    int
	Height   int
	// Threshold is the drag threshold in device pixels.
	Threshold int
	// Scale converts content CSS pixels to device pixels.
	Scale float64
	// Emit receives raw samples from the pointer source. It must not block.
	// When nil, samples are dispatched on the broker directly.
	Emit func(pointer.Sample)
}

// Window is one overlay. Apart from OnGlobalPointer, which the broker calls,
// all methods are called from the UI loop.
type Window struct {
	opts    Options
	host    platform.HostWindow
	surface Surface
	source  platform.PointerSource
	broker  *pointer.Broker

	drag *drag.Controller
	fwd  *forward.Forwarder

	visible       bool
	listening     bool
	closed        bool
	rawInput      bool
	rawInputErr   error
	sourceStarted bool
	sourceErr     error
	// sawDown records a global ButtonDown sample since the current press.
	sawDown bool

	samples  int
	outcomes map[forward.Outcome]int
}

// New creates a window. Nothing is shown until Show.
func New(opts Options, host platform.HostWindow, surface Surface, source platform.PointerSource, broker *pointer.Broker) *Window {
	if broker == nil {
		broker = pointer.Global()
	}
	w := &Window{
		opts:     opts,
		host:     host,
		surface:  surface,
		source:   source,
		broker:   broker,
		fwd:      forward.New(surface),
		outcomes: make(map[forward.Outcome]int),
	}
	w.drag = drag.New(host, opts.Threshold)
	return w
}

// Configure applies the window chrome, size and position, then loads the
// content. Individual failures are logged and returned joined; the window
// remains usable.
func (w *Window) Configure() error {
	if w.closed {
		return ErrClosed
	}
	var errs []error
	step := func(name string, err error) {
		if err != nil {
			log.Printf("overlay: %s failed: %v", name, err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	step("frameless", w.host.SetFrameless())
	step("always on top", w.host.SetAlwaysOnTop())
	step("exclude from task switcher", w.host.ExcludeFromTaskSwitcher())
	step("transparent background", w.surface.SetTransparent())
	if w.opts.Width > 0 && w.opts.Height > 0 {
		step("resize", w.host.Resize(w.opts.Width, w.opts.Height))
	}
	step("move", w.host.MoveTo(w.opts.Position))
	if w.opts.URL != "" {
		w.surface.Navigate(w.opts.URL)
		log.Printf("overlay: navigating to %s", w.opts.URL)
	}
	return errors.Join(errs...)
}

// Show maps the window and starts global tracking. Raw input registration
// is attempted until it succeeds once.
func (w *Window) Show() error {
	if w.closed {
		return ErrClosed
	}
	if err := w.host.Show(); err != nil {
		log.Printf("overlay: show failed: %v", err)
	}
	w.visible = true

	if !w.rawInput {
		if err := w.host.RegisterRawInput(); err != nil {
			w.rawInputErr = err
			log.Printf("overlay: raw input registration failed, retrying on next show: %v", err)
		} else {
			w.rawInput = true
			w.rawInputErr = nil
			log.Printf("overlay: raw input registered")
		}
	}

	w.startSource()
	w.broker.Add(w)
	w.listening = true
	return nil
}

func (w *Window) startSource() {
	if w.sourceStarted || w.source == nil {
		return
	}
	emit := w.opts.Emit
	if emit == nil {
		emit = w.broker.Dispatch
	}
	if err := w.source.Start(emit); err != nil {
		// Not retried: local content events still drive the window.
		w.sourceErr = err
		w.sourceStarted = true
		log.Printf("overlay: global pointer source unavailable, using local events only: %v", err)
		return
	}
	w.sourceStarted = true
	log.Printf("overlay: global pointer source started: %s", w.source.Environment())
}

// Hide unmaps the window and stops listening for global samples.
func (w *Window) Hide() error {
	if w.closed {
		return ErrClosed
	}
	w.stopListening()
	w.drag.Cancel()
	w.visible = false
	if err := w.host.Hide(); err != nil {
		log.Printf("overlay: hide failed: %v", err)
		return err
	}
	return nil
}

// Close tears the window down. It is safe to call more than once.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.stopListening()
	w.drag.Cancel()
	if w.source != nil {
		w.source.Stop()
	}
	w.visible = false
	log.Printf("overlay: window %q closed", w.opts.Title)
}

func (w *Window) stopListening() {
	w.broker.Remove(w)
	w.listening = false
}

// ContentReady marks the content as loaded. A repeated call after a reload
// resets deduplication.
func (w *Window) ContentReady() {
	if w.closed {
		return
	}
	w.fwd.SetReady(true)
	log.Printf("overlay: content ready")
}

// HandleNative feeds a pointer event the content surface received itself.
func (w *Window) HandleNative(ev NativeEvent) {
	if w.closed {
		return
	}
	pos := ev.point(w.opts.Scale)
	switch ev.Kind {
	case NativeDown:
		if w.drag.State() == drag.StateIdle {
			w.sawDown = false
		}
		w.drag.Press(ev.dragButton(), pos)
	case NativeMove:
		w.drag.Move(pos, ev.primaryHeld())
	case NativeUp:
		w.drag.Release(ev.dragButton())
	default:
		log.Printf("overlay: ignoring native event %s", ev)
	}
}

// OnGlobalPointer receives samples from the broker.
func (w *Window) OnGlobalPointer(s pointer.Sample) {
	if w.closed {
		return
	}
	w.samples++

	if w.drag.State() != drag.StateIdle {
		switch s.Button {
		case pointer.ButtonDown:
			w.sawDown = true
		case pointer.ButtonUp:
			// An OS-assisted move can swallow the native release.
			if w.sawDown {
				w.drag.Release(drag.ButtonPrimary)
				w.sawDown = false
			}
		}
	}
	if w.drag.State() == drag.StateDraggingManual {
		w.drag.Move(s.Point(), s.Button != pointer.ButtonUp)
	}

	w.outcomes[w.fwd.Forward(s, w)]++
}

// Visible reports whether the window is shown.
func (w *Window) Visible() bool { return w.visible }

// Dragging reports whether a press gesture is in progress, including a
// press that has not yet crossed the drag threshold. The forwarder stays
// quiet for the whole gesture.
func (w *Window) Dragging() bool { return w.drag.State() != drag.StateIdle }

// Bounds returns the client rectangle in screen coordinates.
func (w *Window) Bounds() (pointer.Rect, error) { return w.host.ClientRect() }
