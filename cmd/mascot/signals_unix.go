//go:build !windows
// +build !windows

package main

import (
	"os"
	"syscall"
)

func getSignalsForPlatform() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGHUP,
	}
}

// isHangupForPlatform reports whether sig means the controlling terminal went
// away, in which case the status panel can no longer be drawn.
func isHangupForPlatform(sig os.Signal) bool {
	return sig == syscall.SIGHUP
}
