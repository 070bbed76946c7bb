// Package view hosts the content page in a native web view window.
package view

import (
	"errors"
	"log"
	"sync"
	"unsafe"

	webview "github.com/webview/webview_go"

	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

// ErrClosed is returned once the web view has been terminated.
var ErrClosed = errors.New("web view terminated")

var errCreate = errors.New("web view could not be created")

// Options configures the web view window.
type Options struct {
	Title  string
	Width  int
	Height int
	Debug  bool
}

// View owns a web view. Run must be called from the main OS thread; every
// other method is safe from any goroutine.
type View struct {
	w webview.WebView

	mu         sync.Mutex
	terminated bool
}

// New creates the window. Call it on the main OS thread.
func New(opts Options) (*View, error) {
	w := newWebView(opts.Debug)
	if w == nil {
		return nil, errCreate
	}
	w.SetTitle(opts.Title)
	if opts.Width > 0 && opts.Height > 0 {
		w.SetSize(opts.Width, opts.Height, webview.HintNone)
	}
	return &View{w: w}, nil
}

// Run blocks in the toolkit main loop until Terminate.
func (v *View) Run() {
	v.w.Run()
	v.mu.Lock()
	v.terminated = true
	v.mu.Unlock()
}

// Destroy releases the native window after Run returns.
func (v *View) Destroy() {
	v.w.Destroy()
}

// Terminate stops the main loop. Safe to call more than once.
func (v *View) Terminate() {
	v.mu.Lock()
	if v.terminated {
		v.mu.Unlock()
		return
	}
	v.terminated = true
	v.mu.Unlock()
	v.w.Dispatch(v.w.Terminate)
	log.Printf("view: terminate requested")
}

// Dispatch runs f on the web view thread. Calls after Terminate are dropped.
func (v *View) Dispatch(f func()) {
	v.mu.Lock()
	done := v.terminated
	v.mu.Unlock()
	if done {
		return
	}
	v.w.Dispatch(f)
}

// Native returns the toolkit window handle.
func (v *View) Native() unsafe.Pointer {
	return v.w.Window()
}

// Init registers a script that runs before page scripts. Call before Run.
func (v *View) Init(js string) {
	v.w.Init(js)
}

// Bind exposes f to the page under name. Call before Run.
func (v *View) Bind(name string, f interface{}) error {
	return v.w.Bind(name, f)
}

// Navigate loads url.
func (v *View) Navigate(url string) {
	v.Dispatch(func() { v.w.Navigate(url) })
}

// Eval runs js in the page without waiting for it.
func (v *View) Eval(js string) error {
	v.mu.Lock()
	done := v.terminated
	v.mu.Unlock()
	if done {
		return ErrClosed
	}
	v.w.Dispatch(func() { v.w.Eval(js) })
	return nil
}

// SetTransparent clears the window and page backgrounds. The change is
// applied on the web view thread; failures are logged there.
func (v *View) SetTransparent() error {
	v.Dispatch(func() {
		if err := setTransparent(v.w.Window()); err != nil {
			log.Printf("view: transparent background: %v", err)
		}
	})
	return nil
}

// BeginMoveDrag asks the toolkit to start an interactive window move at a
// screen position. It must run on the web view thread.
func (v *View) BeginMoveDrag(at pointer.Point) {
	beginMoveDrag(v.w.Window(), at)
}
