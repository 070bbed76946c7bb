package platform

import "time"

const (
	// DefaultPollInterval is the sampling period of polling pointer sources.
	// About one sample per 60 Hz frame.
	DefaultPollInterval = 16 * time.Millisecond

	// MinPollInterval bounds how fast a polling source may sample.
	MinPollInterval = 4 * time.Millisecond

	// windowLookupAttempts bounds how often the X11 host searches the client
	// list for its own window before giving up on one operation.
	windowLookupAttempts = 20

	// windowLookupDelay separates two client list searches.
	windowLookupDelay = 50 * time.Millisecond
)
