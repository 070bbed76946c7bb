package overlay

import (
	"github.com/stigoleg/mascot-overlay/internal/drag"
	"github.com/stigoleg/mascot-overlay/internal/forward"
	"github.com/stigoleg/mascot-overlay/internal/platform"
	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// Status is a snapshot of a window for display.
type Status struct {
	Title       string
	Visible     bool
	Ready       bool
	Closed      bool
	Listening   bool
	Drag        drag.State
	RawInput    bool
	RawInputErr error
	SourceErr   error
	Environment platform.Environment
	Samples     int
	Outcomes    map[forward.Outcome]int
	Last        pointer.Point
	HasLast     bool
}

// Status returns the current snapshot.
func (w *Window) Status() Status {
	outcomes := make(map[forward.Outcome]int, len(w.outcomes))
	for k, v := range w.outcomes {
		outcomes[k] = v
	}
	last, hasLast := w.fwd.Last()
	st := Status{
		Title:       w.opts.Title,
		Visible:     w.visible,
		Ready:       w.fwd.Ready(),
		Closed:      w.closed,
		Listening:   w.listening,
		Drag:        w.drag.State(),
		RawInput:    w.rawInput,
		RawInputErr: w.rawInputErr,
		SourceErr:   w.sourceErr,
		Samples:     w.samples,
		Outcomes:    outcomes,
		Last:        last,
		HasLast:     hasLast,
	}
	if w.source != nil {
		st.Environment = w.source.Environment()
	}
	return st
}
