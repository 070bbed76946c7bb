//go:build windows

package platform

import (
	"log"
	"os"

	"golang.org/x/sys/windows"
)

const (
	wsCaption     = 0x00C00000
	wsThickFrame  = 0x00040000
	wsSysMenu     = 0x00080000
	wsMinimizeBox = 0x00020000
	wsMaximizeBox = 0x00010000
	wsPopup       = 0x80000000

	wsExToolWindow = 0x00000080
	wsExAppWindow  = 0x00040000

	hwndTopmost = ^uintptr(0)

	swpNoSize           = 0x0001
	swpNoMove           = 0x0002
	swpNoZOrder         = 0x0004
	swpNoActivate       = 0x0010
	swpFrameChanged     = 0x0020
	swpAsyncWindowPos   = 0x4000
	swHide              = 0
	swShowNoActivate    = 4
	wmInput             = 0x00FF
	wmNCLButtonDown     = 0x00A1
	htCaption           = 2
	vkLButton           = 0x01
	ridevInputSink      = 0x00000100
	hidUsagePageGeneric = 0x01
	hidUsageMouse       = 0x02
)

// Negative window-long indices; variables so the uintptr conversion wraps.
var (
	gwlStyle    = -16
	gwlExStyle  = -20
	gwlpWndProc = -4
)

var (
	moduser32                   = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongPtrW       = moduser32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW       = moduser32.NewProc("SetWindowLongPtrW")
	procSetWindowPos            = moduser32.NewProc("SetWindowPos")
	procGetClientRect           = moduser32.NewProc("GetClientRect")
	procClientToScreen          = moduser32.NewProc("ClientToScreen")
	procShowWindow              = moduser32.NewProc("ShowWindow")
	procSetCapture              = moduser32.NewProc("SetCapture")
	procReleaseCapture          = moduser32.NewProc("ReleaseCapture")
	procPostMessageW            = moduser32.NewProc("PostMessageW")
	procCallWindowProcW         = moduser32.NewProc("CallWindowProcW")
	procGetCursorPos            = moduser32.NewProc("GetCursorPos")
	procGetAsyncKeyState        = moduser32.NewProc("GetAsyncKeyState")
	procRegisterRawInputDevices = moduser32.NewProc("RegisterRawInputDevices")
)

type rawInputDevice struct {
	UsagePage uint16
	Usage     uint16
	Flags     uint32
	Target    windows.HWND
}

// PrepareEnvironment makes WebView2 paint a transparent default background.
// It must run before the web view is created.
func PrepareEnvironment() {
	if os.Getenv("WEBVIEW2_DEFAULT_BACKGROUND_COLOR") != "" {
		return
	}
	if err := os.Setenv("WEBVIEW2_DEFAULT_BACKGROUND_COLOR", "00000000"); err != nil {
		log.Printf("platform: failed to request a transparent WebView2 background: %v", err)
	}
}

// NewPointerSource returns the raw-input source bound to the overlay window.
func NewPointerSource(opts Options) PointerSource {
	if opts.Native == nil {
		return newUnsupportedSource("win32-raw-input", "no native window handle", "")
	}
	return newWin32Source(opts)
}

// NewHostWindow returns the Win32 host for the overlay window.
func NewHostWindow(opts Options) HostWindow {
	if opts.Native == nil {
		return unsupportedHost{}
	}
	return &win32Host{hwnd: uintptr(opts.Native), opts: opts}
}
