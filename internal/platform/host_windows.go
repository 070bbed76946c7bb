//go:build windows

package platform

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// win32Host drives the web view's top-level HWND. Calls that must run on the
// window's thread go through Options.Dispatch; repositioning uses
// asynchronous SetWindowPos so the caller never waits on the UI thread.
type win32Host struct {
	hwnd uintptr
	opts Options
}

func (h *win32Host) updateLong(index int, clear, set uintptr) {
	h.opts.dispatch(func() {
		cur, _, _ := procGetWindowLongPtrW.Call(h.hwnd, uintptr(index))
		procSetWindowLongPtrW.Call(h.hwnd, uintptr(index), cur&^clear|set)
		procSetWindowPos.Call(h.hwnd, 0, 0, 0, 0, 0,
			swpNoMove|swpNoSize|swpNoZOrder|swpNoActivate|swpFrameChanged)
	})
}

func (h *win32Host) SetFrameless() error {
	h.updateLong(gwlStyle, wsCaption|wsThickFrame|wsSysMenu|wsMinimizeBox|wsMaximizeBox, wsPopup)
	return nil
}

func (h *win32Host) SetAlwaysOnTop() error {
	return h.setWindowPos(hwndTopmost, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
}

func (h *win32Host) ExcludeFromTaskSwitcher() error {
	h.updateLong(gwlExStyle, wsExAppWindow, wsExToolWindow)
	return nil
}

func (h *win32Host) MoveTo(p pointer.Point) error {
	return h.setWindowPos(0, p.X, p.Y, 0, 0, swpNoSize|swpNoZOrder|swpNoActivate)
}

func (h *win32Host) Resize(width, height int) error {
	return h.setWindowPos(0, 0, 0, width, height, swpNoMove|swpNoZOrder|swpNoActivate)
}

func (h *win32Host) setWindowPos(after uintptr, x, y, cx, cy int, flags uintptr) error {
	r, _, err := procSetWindowPos.Call(h.hwnd, after,
		uintptr(x), uintptr(y), uintptr(cx), uintptr(cy), flags|swpAsyncWindowPos)
	if r == 0 {
		return fmt.Errorf("SetWindowPos: %w", err)
	}
	return nil
}

func (h *win32Host) Position() (pointer.Point, error) {
	var pt windows.Point
	r, _, err := procClientToScreen.Call(h.hwnd, uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return pointer.Point{}, fmt.Errorf("ClientToScreen: %w", err)
	}
	return pointer.Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

func (h *win32Host) ClientRect() (pointer.Rect, error) {
	var rc windows.Rect
	r, _, err := procGetClientRect.Call(h.hwnd, uintptr(unsafe.Pointer(&rc)))
	if r == 0 {
		return pointer.Rect{}, fmt.Errorf("GetClientRect: %w", err)
	}
	pos, err := h.Position()
	if err != nil {
		return pointer.Rect{}, err
	}
	return pointer.Rect{
		X:      pos.X,
		Y:      pos.Y,
		Width:  int(rc.Right - rc.Left),
		Height: int(rc.Bottom - rc.Top),
	}, nil
}

// StartSystemMove hands the drag to the window manager's modal move loop as
// if the caption had been pressed.
func (h *win32Host) StartSystemMove(at pointer.Point) error {
	lparam := uintptr(uint16(int16(at.X))) | uintptr(uint16(int16(at.Y)))<<16
	h.opts.dispatch(func() {
		procReleaseCapture.Call()
		procPostMessageW.Call(h.hwnd, wmNCLButtonDown, htCaption, lparam)
	})
	return nil
}

func (h *win32Host) CapturePointer() error {
	h.opts.dispatch(func() { procSetCapture.Call(h.hwnd) })
	return nil
}

func (h *win32Host) ReleasePointer() error {
	h.opts.dispatch(func() { procReleaseCapture.Call() })
	return nil
}

func (h *win32Host) Show() error {
	h.opts.dispatch(func() { procShowWindow.Call(h.hwnd, swShowNoActivate) })
	return nil
}

func (h *win32Host) Hide() error {
	h.opts.dispatch(func() { procShowWindow.Call(h.hwnd, swHide) })
	return nil
}

// RegisterRawInput subscribes the window to mouse raw input even while it
// is in the background. The returned error carries the Win32 error code.
func (h *win32Host) RegisterRawInput() error {
	rid := rawInputDevice{
		UsagePage: hidUsagePageGeneric,
		Usage:     hidUsageMouse,
		Flags:     ridevInputSink,
		Target:    windows.HWND(h.hwnd),
	}
	r, _, err := procRegisterRawInputDevices.Call(uintptr(unsafe.Pointer(&rid)), 1, unsafe.Sizeof(rid))
	if r == 0 {
		if errno, ok := err.(syscall.Errno); ok {
			return fmt.Errorf("RegisterRawInputDevices failed with code %d: %w", uintptr(errno), errno)
		}
		return fmt.Errorf("RegisterRawInputDevices: %w", err)
	}
	return nil
}
