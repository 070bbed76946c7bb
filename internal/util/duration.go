package util

import (
	"fmt"
	"strconv"
	"time"
)

const durationHelp = "Valid formats: a Go duration such as \"16ms\" or \"1s\", or a number of milliseconds such as \"16\""

// ParseDuration accepts a Go duration ("16ms", "1s") or a bare number of
// milliseconds. The error text carries a short format guide after a blank
// line.
func ParseDuration(input string) (time.Duration, error) {
	if ms, err := strconv.Atoi(input); err == nil {
		if ms <= 0 {
			return 0, fmt.Errorf("invalid duration format: %s must be positive\n\n%s", input, durationHelp)
		}
		return time.Duration(ms) * time.Millisecond, nil
	}

	duration, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %q\n\n%s", input, durationHelp)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("invalid duration format: %s must be positive\n\n%s", input, durationHelp)
	}
	return duration, nil
}
