// Package pointer carries global pointer samples from the platform hook to
// the overlay windows that want them.
package pointer

import "fmt"

// ButtonState reports the primary button as seen by the source that
// produced a sample.
type ButtonState int

const (
	// ButtonUnknown means the source cannot observe button state.
	ButtonUnknown ButtonState = iota
	ButtonUp
	ButtonDown
)

func (b ButtonState) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	default:
		return "unknown"
	}
}

// Point is a pair of integer coordinates.
type Point struct {
	X, Y int
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Sample is one raw pointer notification in screen coordinates.
type Sample struct {
	X, Y   int
	Button ButtonState
}

// Point returns the sample position.
func (s Sample) Point() Point {
	return Point{X: s.X, Y: s.Y}
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive, matching client-area pixel addressing.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}
