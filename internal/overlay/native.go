package overlay

import (
	"fmt"
	"math"

	"github.com/stigoleg/mascot-overlay/internal/drag"
	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// NativeKind is the phase of a pointer event the content surface saw itself.
type NativeKind string

const (
	NativeDown NativeKind = "down"
	NativeMove NativeKind = "move"
	NativeUp   NativeKind = "up"
)

// NativeEvent is a trusted pointer event reported by the content surface.
// Button and Buttons follow the DOM MouseEvent conventions; coordinates are
// screen coordinates in CSS pixels.
type NativeEvent struct {
	Kind    NativeKind
	Button  int
	Buttons int
	ScreenX float64
	ScreenY float64
}

func (e NativeEvent) String() string {
	return fmt.Sprintf("%s button=%d buttons=%d at (%.0f,%.0f)", e.Kind, e.Button, e.Buttons, e.ScreenX, e.ScreenY)
}

// point converts the event position to device pixels.
func (e NativeEvent) point(scale float64) pointer.Point {
	if scale <= 0 {
		scale = 1
	}
	return pointer.Point{
		X: int(math.Round(e.ScreenX * scale)),
		Y: int(math.Round(e.ScreenY * scale)),
	}
}

// dragButton maps a DOM button number.
func (e NativeEvent) dragButton() drag.Button {
	switch e.Button {
	case 0:
		return drag.ButtonPrimary
	case 1:
		return drag.ButtonMiddle
	default:
		return drag.ButtonSecondary
	}
}

func (e NativeEvent) primaryHeld() bool {
	return e.Buttons&1 != 0
}
