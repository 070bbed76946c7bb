//go:build windows

package platform

import (
	"log"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// win32Source subclasses the overlay's window procedure and turns every
// WM_INPUT notification into a sample at the current cursor position.
type win32Source struct {
	hwnd uintptr
	opts Options

	mu       sync.Mutex
	running  bool
	emit     func(pointer.Sample)
	prevProc uintptr
	callback uintptr
}

func newWin32Source(opts Options) *win32Source {
	return &win32Source{hwnd: uintptr(opts.Native), opts: opts}
}

func (s *win32Source) Start(emit func(pointer.Sample)) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	if s.callback == 0 {
		s.callback = windows.NewCallback(s.wndProc)
	}
	s.emit = emit
	s.running = true
	callback := s.callback
	s.mu.Unlock()

	s.opts.dispatch(func() {
		prev, _, err := procSetWindowLongPtrW.Call(s.hwnd, uintptr(gwlpWndProc), callback)
		if prev == 0 {
			log.Printf("platform: subclassing overlay window failed: %v", err)
			return
		}
		s.mu.Lock()
		s.prevProc = prev
		s.mu.Unlock()
		log.Printf("platform: raw input hook installed")
	})
	return nil
}

func (s *win32Source) wndProc(hwnd, msg, wparam, lparam uintptr) uintptr {
	s.mu.Lock()
	prev, emit, running := s.prevProc, s.emit, s.running
	s.mu.Unlock()

	if msg == wmInput && running && emit != nil {
		if sample, ok := cursorSample(); ok {
			emit(sample)
		}
	}
	if prev == 0 {
		return 0
	}
	r, _, _ := procCallWindowProcW.Call(prev, hwnd, msg, wparam, lparam)
	return r
}

func cursorSample() (pointer.Sample, bool) {
	var pt windows.Point
	if r, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt))); r == 0 {
		return pointer.Sample{}, false
	}
	state, _, _ := procGetAsyncKeyState.Call(vkLButton)
	button := pointer.ButtonUp
	if state&0x8000 != 0 {
		button = pointer.ButtonDown
	}
	return pointer.Sample{X: int(pt.X), Y: int(pt.Y), Button: button}, true
}

func (s *win32Source) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.emit = nil
	prev := s.prevProc
	s.mu.Unlock()
	if prev == 0 {
		return
	}
	s.opts.dispatch(func() {
		procSetWindowLongPtrW.Call(s.hwnd, uintptr(gwlpWndProc), prev)
		s.mu.Lock()
		s.prevProc = 0
		s.mu.Unlock()
		log.Printf("platform: raw input hook removed")
	})
}

func (s *win32Source) Environment() Environment {
	return Environment{
		Provider:  "win32-raw-input",
		Available: true,
		Message:   "WM_INPUT on the overlay window",
	}
}
