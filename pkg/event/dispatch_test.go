// pkg/event/dispatch_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package event

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchNoReceiver(t *testing.T) {
	var d Dispatcher
	d.Dispatch("resize", Event{Type: Resize}) // must not panic

	d.Register(struct{ Name string }{"no emit here"})
	d.Dispatch("resize", Event{Type: Resize})

	d.Register(nil)
	d.DispatchAll([]Event{{Type: Quit}})

	d.Register(EmitterFunc(nil))
	assert.NotPanics(t, func() { d.Dispatch("quit", Event{Type: Quit}) })
}

func TestDispatchReplacesReceiver(t *testing.T) {
	var d Dispatcher
	first, second := &recorder{}, &recorder{}

	d.Register(first)
	d.Dispatch("focused", Event{Type: Focused, Focused: true})
	d.Register(second)
	d.Dispatch("resize", Event{Type: Resize, Width: 3, Height: 4})

	assert.Equal(t, []string{"focused"}, first.names)
	assert.Equal(t, []string{"resize"}, second.names)
	assert.Same(t, second, d.Receiver())
}

func TestEmitterFunc(t *testing.T) {
	var d Dispatcher
	var got []string
	d.Register(EmitterFunc(func(name string, ev Event) { got = append(got, name+":"+ev.Name()) }))

	d.DispatchAll([]Event{{Type: MouseEnter}, {Type: KeyPress}})
	assert.Equal(t, []string{"mouseenter:mouseenter", "keypress:keypress"}, got)
}

func TestTypeString(t *testing.T) {
	for typ, name := range map[Type]string{
		WindowPos: "window_pos", Resize: "resize", FramebufferResize: "framebuffer_resize",
		Quit: "quit", Refresh: "refresh", Iconified: "iconified", Focused: "focused",
		KeyUp: "keyup", KeyDown: "keydown", KeyPress: "keypress", MouseMove: "mousemove",
		MouseEnter: "mouseenter", MouseDown: "mousedown", MouseUp: "mouseup",
		MouseWheel: "mousewheel",
	} {
		assert.Equal(t, name, typ.String())
	}
	assert.Equal(t, "Type(99)", Type(99).String())
}

func TestRecordFields(t *testing.T) {
	for _, c := range []struct {
		ev   Event
		keys []string
	}{
		{Event{Type: WindowPos}, []string{"type", "xpos", "ypos"}},
		{Event{Type: Resize}, []string{"type", "width", "height"}},
		{Event{Type: FramebufferResize}, []string{"type", "width", "height"}},
		{Event{Type: Quit}, []string{"type"}},
		{Event{Type: Refresh}, []string{"type", "window"}},
		{Event{Type: Iconified}, []string{"type", "iconified"}},
		{Event{Type: Focused}, []string{"type", "focused"}},
		{Event{Type: KeyDown}, []string{"type", "ctrlKey", "shiftKey", "altKey", "metaKey",
			"which", "keyCode", "charCode"}},
		{Event{Type: MouseMove}, []string{"type", "pageX", "pageY", "x", "y"}},
		{Event{Type: MouseEnter}, []string{"type", "entered"}},
		{Event{Type: MouseUp}, []string{"type", "button", "which", "x", "y", "pageX", "pageY"}},
		{Event{Type: MouseWheel}, []string{"type", "wheelDeltaX", "wheelDeltaY", "wheelDelta"}},
	} {
		assert.Equal(t, c.keys, c.ev.Record().Keys(), "%s", c.ev.Name())
	}
}

func TestRecordJSON(t *testing.T) {
	ev := Event{Type: KeyDown, KeyCode: 65, Which: 65, CharCode: 65, CtrlKey: true}
	b, err := json.Marshal(ev.Record())
	require.NoError(t, err)
	assert.Equal(t, `{"type":"keydown","ctrlKey":true,"shiftKey":false,"altKey":false,`+
		`"metaKey":false,"which":65,"keyCode":65,"charCode":65}`, string(b))
}
