//go:build linux

package platform

import (
	"log"
	"os"

	"github.com/stigoleg/mascot-overlay/internal/platform/linux"
)

// PrepareEnvironment must run before the web view toolkit initialises.
// Under Wayland with XWayland available it pins GTK to the X11 backend so
// the host window stays reachable through the X server.
func PrepareEnvironment() {
	session := linux.DetectSession()
	if session.DisplayServer != linux.DisplayServerWayland || !session.X11Reachable() {
		return
	}
	if os.Getenv("GDK_BACKEND") != "" {
		return
	}
	if err := os.Setenv("GDK_BACKEND", "x11"); err != nil {
		log.Printf("platform: failed to select the GTK X11 backend: %v", err)
		return
	}
	log.Printf("platform: wayland session, using GTK X11 backend via XWayland")
}

// NewPointerSource returns the X11 cursor poller, or an unsupported source
// when no X server is reachable.
func NewPointerSource(opts Options) PointerSource {
	session := linux.DetectSession()
	if !session.X11Reachable() {
		return newUnsupportedSource("x11", "no X server for session "+session.String(), session.Guidance())
	}
	return newX11Source(opts.pollInterval(), session)
}

// NewHostWindow returns the X11 host window, or an unsupported host when no
// X server is reachable.
func NewHostWindow(opts Options) HostWindow {
	if !linux.DetectSession().X11Reachable() {
		return unsupportedHost{}
	}
	return newX11Host(opts)
}
