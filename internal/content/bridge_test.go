package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/mascot-overlay/internal/overlay"
)

type fakeBinder struct {
	scripts []string
	bound   map[string]interface{}
	failOn  string
}

func (f *fakeBinder) Init(js string) { f.scripts = append(f.scripts, js) }

func (f *fakeBinder) Bind(name string, fn interface{}) error {
	if name == f.failOn {
		return errors.New("binding exists")
	}
	if f.bound == nil {
		f.bound = make(map[string]interface{})
	}
	f.bound[name] = fn
	return nil
}

func TestInstall(t *testing.T) {
	var events []overlay.NativeEvent
	ready := 0
	b := Bridge{
		OnPointer: func(ev overlay.NativeEvent) { events = append(events, ev) },
		OnReady:   func() { ready++ },
	}
	v := &fakeBinder{}
	require.NoError(t, b.Install(v))

	require.Len(t, v.scripts, 1)
	require.Contains(t, v.bound, PointerBinding)
	require.Contains(t, v.bound, ReadyBinding)

	pointerFn, ok := v.bound[PointerBinding].(func(string, int, int, float64, float64) error)
	require.True(t, ok, "pointer binding has the expected signature")
	readyFn, ok := v.bound[ReadyBinding].(func())
	require.True(t, ok, "ready binding has the expected signature")

	require.NoError(t, pointerFn("down", 0, 1, 150, 150.5))
	require.NoError(t, pointerFn("move", -1, 1, 160, 150))
	require.NoError(t, pointerFn("up", 0, 0, 160, 150))
	readyFn()

	require.Len(t, events, 3)
	assert.Equal(t, overlay.NativeEvent{Kind: overlay.NativeDown, Button: 0, Buttons: 1, ScreenX: 150, ScreenY: 150.5}, events[0])
	assert.Equal(t, overlay.NativeMove, events[1].Kind)
	assert.Equal(t, overlay.NativeUp, events[2].Kind)
	assert.Equal(t, 1, ready)
}

func TestPointerRejectsUnknownKind(t *testing.T) {
	called := false
	b := Bridge{OnPointer: func(overlay.NativeEvent) { called = true }}

	err := b.pointer("wheel", 0, 0, 1, 1)
	assert.ErrorIs(t, err, errUnknownKind)
	assert.False(t, called)
}

func TestInstallBindFailure(t *testing.T) {
	v := &fakeBinder{failOn: ReadyBinding}
	err := Bridge{}.Install(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ReadyBinding)
	assert.Empty(t, v.scripts, "script is not installed without its bindings")
}

func TestNilCallbacks(t *testing.T) {
	b := Bridge{}
	assert.NoError(t, b.pointer("down", 0, 1, 0, 0))
	b.ready()
}

func TestScript(t *testing.T) {
	for _, want := range []string{
		"window." + PointerBinding + "(kind, e.button, e.buttons, e.screenX, e.screenY)",
		"window." + ReadyBinding + "()",
		"e.isTrusted",
		"'pointerdown'",
		"'pointermove'",
		"'pointerup'",
		"background: transparent",
	} {
		assert.Contains(t, Script, want)
	}
}
