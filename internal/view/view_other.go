//go:build !linux

package view

import (
	"unsafe"

	webview "github.com/webview/webview_go"

	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

func newWebView(debug bool) webview.WebView {
	return webview.New(debug)
}

// WebView2 takes its transparent default background from the environment,
// set before the web view is created.
func setTransparent(unsafe.Pointer) error { return nil }

func beginMoveDrag(unsafe.Pointer, pointer.Point) {}
