// Package drag classifies press-then-move sequences on the overlay window
// as either a window drag or pass-through pointer tracking.
package drag

import (
	"errors"
	"log"

	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// DefaultThreshold is the movement, in device-independent pixels, that turns
// a press into a drag.
const DefaultThreshold = 6

// State is the gesture state of one window.
type State int

const (
	StateIdle State = iota
	StateCandidate
	StateDraggingManual
	StateDraggingSystem
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateCandidate:
		return "Candidate"
	case StateDraggingManual:
		return "DraggingManual"
	case StateDraggingSystem:
		return "DraggingSystem"
	default:
		return "Unknown"
	}
}

// Button identifies the mouse button of a press or release.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// ErrSystemMoveUnsupported is returned by a Mover that has no OS-assisted
// interactive move.
var ErrSystemMoveUnsupported = errors.New("os-assisted move unsupported")

// Mover is the part of the host window the controller drives.
type Mover interface {
	Position() (pointer.Point, error)
	MoveTo(p pointer.Point) error
	StartSystemMove(at pointer.Point) error
	CapturePointer() error
	ReleasePointer() error
}

// Controller is the per-window drag state machine. It is not safe for
// concurrent use; all calls come from the UI loop.
type Controller struct {
	win       Mover
	threshold int

	state    State
	origin   pointer.Point
	topLeft  pointer.Point
	offset   pointer.Point
	captured bool
}

// New returns an idle controller. A threshold below one falls back to
// DefaultThreshold.
func New(win Mover, threshold int) *Controller {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	return &Controller{win: win, threshold: threshold}
}

// State returns the current gesture state.
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a manual or OS-assisted drag is in progress.
func (c *Controller) Dragging() bool {
	return c.state == StateDraggingManual || c.state == StateDraggingSystem
}

// Offset returns the press offset recorded when a manual drag started.
func (c *Controller) Offset() pointer.Point {
	return c.offset
}

// Press handles a button-down at global position pos.
func (c *Controller) Press(b Button, pos pointer.Point) {
	if b != ButtonPrimary || c.state != StateIdle {
		return
	}
	topLeft, err := c.win.Position()
	if err != nil {
		log.Printf("drag: window position unavailable at press: %v", err)
		return
	}
	c.state = StateCandidate
	c.origin = pos
	c.topLeft = topLeft
}

// Move handles pointer movement to global position pos. held reports
// whether the primary button is down.
func (c *Controller) Move(pos pointer.Point, held bool) {
	if !held {
		return
	}
	switch c.state {
	case StateCandidate:
		if manhattan(pos, c.origin) < c.threshold {
			return
		}
		c.beginDrag(pos)
	case StateDraggingManual:
		if err := c.win.MoveTo(pos.Sub(c.offset)); err != nil {
			log.Printf("drag: move window: %v", err)
		}
	}
}

func (c *Controller) beginDrag(pos pointer.Point) {
	err := c.win.StartSystemMove(pos)
	if err == nil {
		c.state = StateDraggingSystem
		log.Printf("drag: system move started at %v", pos)
		return
	}
	if !errors.Is(err, ErrSystemMoveUnsupported) {
		log.Printf("drag: system move failed, falling back to manual: %v", err)
	}

	c.state = StateDraggingManual
	c.offset = c.origin.Sub(c.topLeft)
	if err := c.win.CapturePointer(); err != nil {
		log.Printf("drag: capture pointer: %v", err)
	} else {
		c.captured = true
	}
	log.Printf("drag: manual drag started, offset %v", c.offset)
}

// Release handles a button-up. Any non-idle state returns to Idle.
func (c *Controller) Release(b Button) {
	if b != ButtonPrimary {
		return
	}
	c.reset()
}

// Cancel returns to Idle regardless of button, releasing capture. It is
// used when the window goes away mid-gesture.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	if c.state == StateIdle {
		return
	}
	if c.captured {
		if err := c.win.ReleasePointer(); err != nil {
			log.Printf("drag: release pointer: %v", err)
		}
		c.captured = false
	}
	if c.state != StateCandidate {
		log.Printf("drag: %s ended", c.state)
	}
	c.state = StateIdle
	c.origin = pointer.Point{}
	c.topLeft = pointer.Point{}
	c.offset = pointer.Point{}
}

func manhattan(a, b pointer.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
