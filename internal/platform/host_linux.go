//go:build linux

package platform

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

var errWindowNotFound = errors.New("overlay window not found in the client list")

// x11Host manages the toolkit's top-level window through the X server. The
// window is found by its title the first time it is needed.
type x11Host struct {
	opts Options

	mu        sync.Mutex
	xu        *xgbutil.XUtil
	lookup    windowLookup
	moveKnown bool
	moveOK    bool
}

func newX11Host(opts Options) *x11Host {
	return &x11Host{opts: opts}
}

func (h *x11Host) conn() (*xgbutil.XUtil, error) {
	if h.xu != nil {
		return h.xu, nil
	}
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}
	h.xu = xu
	return xu, nil
}

// windowLookup finds the overlay's XID by title. A failed search is
// remembered until retry so callers on the event loop do not wait again.
type windowLookup struct {
	sleep func(time.Duration)
	win   xproto.Window
	err   error
}

func (l *windowLookup) resolve(title string, find func() (xproto.Window, bool)) (xproto.Window, error) {
	if l.win != 0 {
		return l.win, nil
	}
	if l.err != nil {
		return 0, l.err
	}
	sleep := l.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	for attempt := 0; attempt < windowLookupAttempts; attempt++ {
		if win, ok := find(); ok {
			l.win = win
			return win, nil
		}
		if attempt < windowLookupAttempts-1 {
			sleep(windowLookupDelay)
		}
	}
	l.err = fmt.Errorf("%w: title %q", errWindowNotFound, title)
	return 0, l.err
}

// retry forgets a failed search.
func (l *windowLookup) retry() { l.err = nil }

// window resolves the overlay's XID, waiting briefly for the window manager
// to list it after the toolkit maps it.
func (h *x11Host) window() (*xgbutil.XUtil, xproto.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	xu, err := h.conn()
	if err != nil {
		return nil, 0, err
	}
	known := h.lookup.win != 0
	win, err := h.lookup.resolve(h.opts.Title, func() (xproto.Window, bool) {
		return findWindowByName(xu, h.opts.Title)
	})
	if err != nil {
		return nil, 0, err
	}
	if !known {
		log.Printf("platform: overlay window %q is 0x%x", h.opts.Title, uint32(win))
	}
	return xu, win, nil
}

func findWindowByName(xu *xgbutil.XUtil, title string) (xproto.Window, bool) {
	wnds, err := ewmh.ClientListGet(xu)
	if err != nil {
		return 0, false
	}
	for _, w := range wnds {
		name, err := ewmh.WmNameGet(xu, w)
		if err != nil || name == "" {
			name, _ = icccm.WmNameGet(xu, w)
		}
		if name == title {
			return w, true
		}
	}
	return 0, false
}

func (h *x11Host) SetFrameless() error {
	xu, win, err := h.window()
	if err != nil {
		return err
	}
	hints := &motif.Hints{Flags: motif.HintDecorations, Decoration: motif.DecorationNone}
	if err := motif.WmHintsSet(xu, win, hints); err != nil {
		return fmt.Errorf("set motif hints: %w", err)
	}
	return nil
}

func (h *x11Host) SetAlwaysOnTop() error {
	xu, win, err := h.window()
	if err != nil {
		return err
	}
	if err := ewmh.WmStateReq(xu, win, ewmh.StateAdd, "_NET_WM_STATE_ABOVE"); err != nil {
		return fmt.Errorf("request _NET_WM_STATE_ABOVE: %w", err)
	}
	return nil
}

func (h *x11Host) ExcludeFromTaskSwitcher() error {
	xu, win, err := h.window()
	if err != nil {
		return err
	}
	err = ewmh.WmStateReqExtra(xu, win, ewmh.StateAdd,
		"_NET_WM_STATE_SKIP_TASKBAR", "_NET_WM_STATE_SKIP_PAGER", 1)
	if err != nil {
		return fmt.Errorf("request skip taskbar: %w", err)
	}
	return nil
}

func (h *x11Host) MoveTo(p pointer.Point) error {
	xu, win, err := h.window()
	if err != nil {
		return err
	}
	xwindow.New(xu, win).Move(p.X, p.Y)
	return nil
}

func (h *x11Host) Resize(width, height int) error {
	xu, win, err := h.window()
	if err != nil {
		return err
	}
	xwindow.New(xu, win).Resize(width, height)
	return nil
}

func (h *x11Host) Position() (pointer.Point, error) {
	xu, win, err := h.window()
	if err != nil {
		return pointer.Point{}, err
	}
	reply, err := xproto.TranslateCoordinates(xu.Conn(), win, xu.RootWin(), 0, 0).Reply()
	if err != nil {
		return pointer.Point{}, fmt.Errorf("translate coordinates: %w", err)
	}
	return pointer.Point{X: int(reply.DstX), Y: int(reply.DstY)}, nil
}

func (h *x11Host) ClientRect() (pointer.Rect, error) {
	pos, err := h.Position()
	if err != nil {
		return pointer.Rect{}, err
	}
	xu, win, err := h.window()
	if err != nil {
		return pointer.Rect{}, err
	}
	geom, err := xproto.GetGeometry(xu.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return pointer.Rect{}, fmt.Errorf("get geometry: %w", err)
	}
	return pointer.Rect{X: pos.X, Y: pos.Y, Width: int(geom.Width), Height: int(geom.Height)}, nil
}

// supportsMoveResize reports whether the window manager implements
// _NET_WM_MOVERESIZE. The answer is cached.
func (h *x11Host) supportsMoveResize(xu *xgbutil.XUtil) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.moveKnown {
		return h.moveOK
	}
	h.moveKnown = true
	supported, err := ewmh.SupportedGet(xu)
	if err != nil {
		log.Printf("platform: reading _NET_SUPPORTED failed: %v", err)
		return false
	}
	for _, atom := range supported {
		if atom == "_NET_WM_MOVERESIZE" {
			h.moveOK = true
			break
		}
	}
	return h.moveOK
}

func (h *x11Host) StartSystemMove(at pointer.Point) error {
	xu, win, err := h.window()
	if err != nil {
		return err
	}
	if !h.supportsMoveResize(xu) {
		return fmt.Errorf("window manager lacks _NET_WM_MOVERESIZE: %w", ErrUnsupported)
	}
	if h.opts.BeginMoveDrag != nil {
		// The toolkit owns the implicit button grab and must hand it over.
		begin := h.opts.BeginMoveDrag
		h.opts.dispatch(func() { begin(at) })
		return nil
	}
	xproto.UngrabPointer(xu.Conn(), xproto.TimeCurrentTime)
	if err := ewmh.WmMoveresizeExtra(xu, win, ewmh.Move, at.X, at.Y, 1, 1); err != nil {
		return fmt.Errorf("request _NET_WM_MOVERESIZE: %w", err)
	}
	return nil
}

func (h *x11Host) CapturePointer() error {
	xu, win, err := h.window()
	if err != nil {
		return err
	}
	mask := uint16(xproto.EventMaskPointerMotion | xproto.EventMaskButtonRelease)
	reply, err := xproto.GrabPointer(xu.Conn(), false, win, mask,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, 0, xproto.TimeCurrentTime).Reply()
	if err != nil {
		return fmt.Errorf("grab pointer: %w", err)
	}
	switch reply.Status {
	case xproto.GrabStatusSuccess, xproto.GrabStatusAlreadyGrabbed:
		// AlreadyGrabbed: the toolkit's implicit button grab already routes
		// motion to this client.
		return nil
	default:
		return fmt.Errorf("grab pointer: status %d", reply.Status)
	}
}

func (h *x11Host) ReleasePointer() error {
	xu, err := h.lockedConn()
	if err != nil {
		return err
	}
	if err := xproto.UngrabPointerChecked(xu.Conn(), xproto.TimeCurrentTime).Check(); err != nil {
		return fmt.Errorf("ungrab pointer: %w", err)
	}
	return nil
}

func (h *x11Host) lockedConn() (*xgbutil.XUtil, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.conn()
}

// Show searches for the window again if an earlier search failed.
func (h *x11Host) Show() error {
	h.mu.Lock()
	h.lookup.retry()
	h.mu.Unlock()

	xu, win, err := h.window()
	if err != nil {
		return err
	}
	xwindow.New(xu, win).Map()
	return nil
}

func (h *x11Host) Hide() error {
	xu, win, err := h.window()
	if err != nil {
		return err
	}
	xwindow.New(xu, win).Unmap()
	return nil
}

// RegisterRawInput resolves the window and verifies that the server answers
// root pointer queries, which is all the X11 source needs.
func (h *x11Host) RegisterRawInput() error {
	xu, _, err := h.window()
	if err != nil {
		return err
	}
	if _, err := xproto.QueryPointer(xu.Conn(), xu.RootWin()).Reply(); err != nil {
		return fmt.Errorf("query root pointer: %w", err)
	}
	return nil
}
