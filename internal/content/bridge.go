// Package content connects the embedded web page to the overlay: it installs
// the script that reports trusted pointer events and page readiness, and
// decodes those reports.
package content

import (
	"errors"
	"fmt"

	"github.com/stigoleg/mascot-overlay/internal/overlay"
)

// Names of the functions bound into the page.
const (
	PointerBinding = "__mascotPointer"
	ReadyBinding   = "__mascotReady"
)

// Script runs before any page script on every navigation.
const Script = `(function () {
  if (window.__mascotBridge) { return; }
  window.__mascotBridge = true;

  function clearBackground() {
    var style = document.createElement('style');
    style.textContent = 'html, body { background: transparent !important; }';
    (document.head || document.documentElement).appendChild(style);
  }
  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', clearBackground);
  } else {
    clearBackground();
  }

  function send(kind, e) {
    if (!e.isTrusted || e.isPrimary === false) { return; }
    window.` + PointerBinding + `(kind, e.button, e.buttons, e.screenX, e.screenY);
  }
  window.addEventListener('pointerdown', function (e) { send('down', e); }, true);
  window.addEventListener('pointermove', function (e) { if (e.buttons & 1) { send('move', e); } }, true);
  window.addEventListener('pointerup', function (e) { send('up', e); }, true);
  window.addEventListener('load', function () { window.` + ReadyBinding + `(); });
})();`

var errUnknownKind = errors.New("unknown pointer event kind")

// Binder is the part of a web view the bridge installs itself into.
type Binder interface {
	Init(js string)
	Bind(name string, f interface{}) error
}

// Bridge receives decoded reports from the page. Both callbacks run on the
// web view thread and must not block.
type Bridge struct {
	OnPointer func(overlay.NativeEvent)
	OnReady   func()
}

// Install binds the callbacks and registers the init script.
func (b Bridge) Install(v Binder) error {
	if err := v.Bind(PointerBinding, b.pointer); err != nil {
		return fmt.Errorf("bind %s: %w", PointerBinding, err)
	}
	if err := v.Bind(ReadyBinding, b.ready); err != nil {
		return fmt.Errorf("bind %s: %w", ReadyBinding, err)
	}
	v.Init(Script)
	return nil
}

func (b Bridge) pointer(kind string, button, buttons int, screenX, screenY float64) error {
	ev := overlay.NativeEvent{
		Kind:    overlay.NativeKind(kind),
		Button:  button,
		Buttons: buttons,
		ScreenX: screenX,
		ScreenY: screenY,
	}
	switch ev.Kind {
	case overlay.NativeDown, overlay.NativeMove, overlay.NativeUp:
	default:
		return fmt.Errorf("%w: %q", errUnknownKind, kind)
	}
	if b.OnPointer != nil {
		b.OnPointer(ev)
	}
	return nil
}

func (b Bridge) ready() {
	if b.OnReady != nil {
		b.OnReady()
	}
}
