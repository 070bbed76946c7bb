//go:build linux

package view

/*
#cgo pkg-config: gtk+-3.0 webkit2gtk-4.0
#include <gtk/gtk.h>
#include <webkit2/webkit2.h>

// The RGBA visual must be chosen before the window is realized, so the
// window is created here and handed to the web view.
static void *mascot_new_window(void) {
	if (!gtk_init_check(NULL, NULL)) {
		return NULL;
	}
	GtkWidget *window = gtk_window_new(GTK_WINDOW_TOPLEVEL);
	GdkVisual *visual = gdk_screen_get_rgba_visual(gtk_widget_get_screen(window));
	if (visual != NULL) {
		gtk_widget_set_visual(window, visual);
		gtk_widget_set_app_paintable(window, TRUE);
	}
	return window;
}

static int mascot_clear_background(void *handle) {
	GtkWidget *window = GTK_WIDGET(handle);
	GtkWidget *child = gtk_bin_get_child(GTK_BIN(window));
	if (child != NULL && WEBKIT_IS_WEB_VIEW(child)) {
		GdkRGBA clear = {0, 0, 0, 0};
		webkit_web_view_set_background_color(WEBKIT_WEB_VIEW(child), &clear);
	}
	return gtk_widget_get_visual(window) == gdk_screen_get_rgba_visual(gtk_widget_get_screen(window));
}

static void mascot_begin_move_drag(void *handle, int x, int y) {
	gtk_window_begin_move_drag(GTK_WINDOW(handle), 1, x, y, GDK_CURRENT_TIME);
}
*/
import "C"

import (
	"errors"
	"unsafe"

	webview "github.com/webview/webview_go"

	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

var errNoRGBAVisual = errors.New("screen has no RGBA visual; is a compositor running?")

func newWebView(debug bool) webview.WebView {
	window := C.mascot_new_window()
	if window == nil {
		return nil
	}
	return webview.NewWindow(debug, window)
}

func setTransparent(handle unsafe.Pointer) error {
	if handle == nil {
		return errCreate
	}
	if C.mascot_clear_background(handle) == 0 {
		return errNoRGBAVisual
	}
	return nil
}

func beginMoveDrag(handle unsafe.Pointer, at pointer.Point) {
	if handle == nil {
		return
	}
	C.mascot_begin_move_drag(handle, C.int(at.X), C.int(at.Y))
}
