// Package forward injects synthetic pointer movement into the overlay's
// web content when the cursor is somewhere the content cannot see it.
package forward

import (
	"log"

	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// Outcome is the result of evaluating one global sample.
type Outcome int

const (
	Forwarded Outcome = iota
	SkippedNotReady
	SkippedHidden
	SkippedDragging
	SkippedDuplicate
	SkippedInside
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Forwarded:
		return "forwarded"
	case SkippedNotReady:
		return "not-ready"
	case SkippedHidden:
		return "hidden"
	case SkippedDragging:
		return "dragging"
	case SkippedDuplicate:
		return "duplicate"
	case SkippedInside:
		return "inside"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Surface runs script inside the embedded content.
type Surface interface {
	Eval(js string) error
}

// Window is the view of the overlay window the forwarder needs at the time
// of each sample.
type Window interface {
	Visible() bool
	Dragging() bool
	// Bounds returns the client area in screen coordinates.
	Bounds() (pointer.Rect, error)
}

// Forwarder decides per sample whether to synthesize a pointer-move into the
// content surface. It is owned by a single window and used from the UI loop.
type Forwarder struct {
	surface Surface

	ready   bool
	last    pointer.Point
	hasLast bool

	// boundsFailures counts consecutive Bounds errors for log throttling.
	boundsFailures int
}

// New returns a forwarder that is not yet ready.
func New(surface Surface) *Forwarder {
	return &Forwarder{surface: surface}
}

// SetReady records content readiness. Becoming ready forgets the last
// forwarded position so the first sample after a load is always delivered.
func (f *Forwarder) SetReady(ready bool) {
	f.ready = ready
	f.hasLast = false
}

// Ready reports content readiness.
func (f *Forwarder) Ready() bool {
	return f.ready
}

// Last returns the last forwarded global position.
func (f *Forwarder) Last() (pointer.Point, bool) {
	return f.last, f.hasLast
}

// Forward evaluates s against w and injects a synthetic event when the
// content would otherwise miss the movement.
func (f *Forwarder) Forward(s pointer.Sample, w Window) Outcome {
	if !f.ready {
		return SkippedNotReady
	}
	if !w.Visible() {
		return SkippedHidden
	}
	if w.Dragging() {
		return SkippedDragging
	}

	global := s.Point()
	if f.hasLast && f.last == global {
		return SkippedDuplicate
	}

	bounds, err := w.Bounds()
	if err != nil {
		f.boundsFailures++
		if f.boundsFailures == 1 || f.boundsFailures%100 == 0 {
			log.Printf("forward: window bounds unavailable (%d times): %v", f.boundsFailures, err)
		}
		return Failed
	}
	f.boundsFailures = 0
	local := global.Sub(pointer.Point{X: bounds.X, Y: bounds.Y})
	if (pointer.Rect{Width: bounds.Width, Height: bounds.Height}).Contains(local) {
		// Native events cover on-window movement.
		f.hasLast = false
		return SkippedInside
	}

	f.last = global
	f.hasLast = true

	if err := f.surface.Eval(MoveScript(local, global)); err != nil {
		log.Printf("forward: inject pointer move: %v", err)
		return Failed
	}
	return Forwarded
}
