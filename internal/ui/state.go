package ui

// State is the panel's view mode.
type State int

const (
	StateStarting State = iota
	StateRunning
	StateHelp
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateHelp:
		return "Help"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}
