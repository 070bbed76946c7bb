//go:build !linux && !windows

package platform

import "runtime"

// NewPointerSource returns a source that reports ErrUnsupported.
func NewPointerSource(Options) PointerSource {
	return newUnsupportedSource(runtime.GOOS, "no global pointer hook on this platform", "")
}

// NewHostWindow returns a host whose operations report ErrUnsupported.
func NewHostWindow(Options) HostWindow {
	return unsupportedHost{}
}

// PrepareEnvironment is a no-op on this platform.
func PrepareEnvironment() {}
