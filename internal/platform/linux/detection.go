//go:build linux

// Package linux inspects the Linux graphical session the overlay runs in.
package linux

import (
	"fmt"
	"os"
	"strings"
)

// Display server types.
const (
	DisplayServerWayland = "wayland"
	DisplayServerX11     = "x11"
	DisplayServerUnknown = "unknown"
)

// Desktop environment types.
const (
	DesktopCosmic  = "cosmic"
	DesktopGNOME   = "gnome"
	DesktopKDE     = "kde"
	DesktopXFCE    = "xfce"
	DesktopMATE    = "mate"
	DesktopUnknown = "unknown"
)

// Session describes the graphical session.
type Session struct {
	DisplayServer string
	Desktop       string
	// XDisplay is the value of DISPLAY. It is set under native X11 and
	// under XWayland.
	XDisplay string
}

// X11Reachable reports whether an X server can be contacted.
func (s Session) X11Reachable() bool {
	return s.XDisplay != ""
}

// Guidance returns operator advice when global pointer tracking is limited
// by the session, or an empty string.
func (s Session) Guidance() string {
	switch {
	case !s.X11Reachable() && s.DisplayServer == DisplayServerWayland:
		return "Wayland without XWayland cannot report the global cursor; log in to an X11 session or enable XWayland"
	case !s.X11Reachable():
		return "DISPLAY is not set; start the overlay from a graphical session"
	case s.DisplayServer == DisplayServerWayland:
		return "running through XWayland: the cursor is only reported while it is over X11 windows"
	}
	return ""
}

func (s Session) String() string {
	return fmt.Sprintf("%s/%s", s.DisplayServer, s.Desktop)
}

// DetectSession reads the session from the process environment.
func DetectSession() Session {
	return detectSession(os.Getenv)
}

func detectSession(getenv func(string) string) Session {
	return Session{
		DisplayServer: detectDisplayServer(getenv),
		Desktop:       detectDesktopEnvironment(getenv),
		XDisplay:      getenv("DISPLAY"),
	}
}

// DetectDisplayServer detects whether running on Wayland or X11.
func DetectDisplayServer() string {
	return detectDisplayServer(os.Getenv)
}

func detectDisplayServer(getenv func(string) string) string {
	if getenv("WAYLAND_DISPLAY") != "" {
		return DisplayServerWayland
	}
	if getenv("XDG_SESSION_TYPE") == DisplayServerWayland {
		return DisplayServerWayland
	}
	if getenv("DISPLAY") != "" {
		return DisplayServerX11
	}
	if getenv("XDG_SESSION_TYPE") == DisplayServerX11 {
		return DisplayServerX11
	}
	return DisplayServerUnknown
}

func detectDesktopEnvironment(getenv func(string) string) string {
	xdgDesktop := strings.ToLower(getenv("XDG_CURRENT_DESKTOP"))
	desktopSession := strings.ToLower(getenv("DESKTOP_SESSION"))

	for _, de := range []string{DesktopCosmic, DesktopGNOME, DesktopKDE, DesktopXFCE, DesktopMATE} {
		if strings.Contains(xdgDesktop, de) || strings.Contains(desktopSession, de) {
			return de
		}
	}
	if strings.Contains(xdgDesktop, "plasma") || strings.Contains(desktopSession, "plasma") {
		return DesktopKDE
	}
	return DesktopUnknown
}
