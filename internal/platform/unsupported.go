package platform

import "github.com/stigoleg/mascot-overlay/internal/pointer"

// unsupportedSource is the pointer source on platforms without a global
// hook. The overlay keeps working with the content surface's own events.
type unsupportedSource struct {
	env Environment
}

func newUnsupportedSource(provider, message, guidance string) *unsupportedSource {
	return &unsupportedSource{env: Environment{
		Provider: provider,
		Message:  message,
		Guidance: guidance,
	}}
}

func (s *unsupportedSource) Start(func(pointer.Sample)) error { return ErrUnsupported }

func (s *unsupportedSource) Stop() {}

func (s *unsupportedSource) Environment() Environment { return s.env }

// unsupportedHost is the host window when no native backend fits.
type unsupportedHost struct{}

func (unsupportedHost) SetFrameless() error                 { return ErrUnsupported }
func (unsupportedHost) SetAlwaysOnTop() error               { return ErrUnsupported }
func (unsupportedHost) ExcludeFromTaskSwitcher() error      { return ErrUnsupported }
func (unsupportedHost) MoveTo(pointer.Point) error          { return ErrUnsupported }
func (unsupportedHost) Resize(int, int) error               { return ErrUnsupported }
func (unsupportedHost) Position() (pointer.Point, error)    { return pointer.Point{}, ErrUnsupported }
func (unsupportedHost) ClientRect() (pointer.Rect, error)   { return pointer.Rect{}, ErrUnsupported }
func (unsupportedHost) StartSystemMove(pointer.Point) error { return ErrUnsupported }
func (unsupportedHost) CapturePointer() error               { return ErrUnsupported }
func (unsupportedHost) ReleasePointer() error               { return ErrUnsupported }
func (unsupportedHost) Show() error                         { return ErrUnsupported }
func (unsupportedHost) Hide() error                         { return ErrUnsupported }
func (unsupportedHost) RegisterRawInput() error             { return ErrUnsupported }
