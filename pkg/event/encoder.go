// pkg/event/encoder.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package event

import (
	gomath "math"

	"github.com/kjunichi/node-glfw/pkg/keymap"
	"github.com/kjunichi/node-glfw/pkg/log"
)

// wheelScale converts scroll offsets to the conventional 120-per-notch
// wheel delta.
const wheelScale = 120

// State is the input bookkeeping shared by the callbacks of one window.
type State struct {
	// Position of the last in-bounds cursor move; button events report it.
	LastX, LastY int
	// WindowCreated records that the native window exists, so that a
	// second create request becomes a resize.
	WindowCreated bool
}

// KeyConsumer, CursorConsumer, ButtonConsumer and WheelConsumer are the
// capabilities an overlay may implement to get first refusal on raw
// input. Each returns true if it consumed the input, in which case no
// event is produced.
type KeyConsumer interface {
	ConsumeKey(key keymap.Key, action Action) bool
}

type CursorConsumer interface {
	ConsumeCursor(x, y float64) bool
}

type ButtonConsumer interface {
	ConsumeButton(button int, action Action) bool
}

type WheelConsumer interface {
	ConsumeWheel(xoff, yoff float64) bool
}

// Encoder builds Events from native callback parameters. Events are queued
// until Drain is called.
type Encoder struct {
	state   *State
	size    func() (int, int)
	overlay any
	pending []Event
	lg      *log.Logger
}

// NewEncoder returns an Encoder that records cursor state in st. size must
// report the current window size; it is consulted for cursor bounds.
func NewEncoder(st *State, size func() (int, int), lg *log.Logger) *Encoder {
	return &Encoder{state: st, size: size, lg: lg}
}

// SetOverlay sets the overlay that is offered input before encoding. It may
// implement any subset of the consumer interfaces; nil removes it.
func (e *Encoder) SetOverlay(o any) { e.overlay = o }

// Drain returns the queued events in callback order and empties the queue.
func (e *Encoder) Drain() []Event {
	ev := e.pending
	e.pending = nil
	return ev
}

func (e *Encoder) push(ev Event) { e.pending = append(e.pending, ev) }

// WindowPos encodes a window move to (x, y) in screen coordinates.
func (e *Encoder) WindowPos(x, y int) {
	e.push(Event{Type: WindowPos, XPos: x, YPos: y})
}

// WindowSize encodes a resize of the window's content area.
func (e *Encoder) WindowSize(w, h int) {
	e.push(Event{Type: Resize, Width: w, Height: h})
}

// FramebufferSize encodes a resize of the framebuffer, in pixels.
func (e *Encoder) FramebufferSize(w, h int) {
	e.push(Event{Type: FramebufferResize, Width: w, Height: h})
}

// Close encodes a close request as a quit event.
func (e *Encoder) Close() {
	e.push(Event{Type: Quit})
}

// Refresh encodes a request to redraw the given window.
func (e *Encoder) Refresh(window uint64) {
	e.push(Event{Type: Refresh, Window: window})
}

// Iconify encodes the window being iconified or restored.
func (e *Encoder) Iconify(iconified bool) {
	e.push(Event{Type: Iconified, Iconified: iconified})
}

// Focus encodes the window gaining or losing input focus.
func (e *Encoder) Focus(focused bool) {
	e.push(Event{Type: Focused, Focused: focused})
}

var keyActionTypes = [...]Type{Release: KeyUp, Press: KeyDown, Repeat: KeyPress}

// Key encodes a key transition. scancode is accepted to match the native
// callback but is not reported.
func (e *Encoder) Key(key keymap.Key, scancode int, action Action, mods Modifiers) {
	if kc, ok := e.overlay.(KeyConsumer); ok && kc.ConsumeKey(key, action) {
		return
	}
	if action < 0 || int(action) >= len(keyActionTypes) {
		e.lg.Debugf("key %d: ignoring unknown action %d", key, action)
		return
	}

	e.push(Event{
		Type:     keyActionTypes[action],
		CtrlKey:  mods.Control(),
		ShiftKey: mods.Shift(),
		AltKey:   mods.Alt(),
		MetaKey:  mods.Super(),
		Which:    int(key),
		KeyCode:  keymap.Map(key),
		CharCode: int(key),
	})
}

// CursorPos encodes a cursor move. Positions outside the window, and NaN
// positions, are dropped without touching the cursor state.
func (e *Encoder) CursorPos(x, y float64) {
	if cc, ok := e.overlay.(CursorConsumer); ok && cc.ConsumeCursor(x, y) {
		return
	}

	w, h := e.size()
	// Written so that NaN coordinates fail too.
	if !(x >= 0 && x < float64(w)) || !(y >= 0 && y < float64(h)) {
		return
	}

	e.state.LastX, e.state.LastY = int(x), int(y)
	e.push(Event{
		Type:  MouseMove,
		PageX: e.state.LastX,
		PageY: e.state.LastY,
		X:     e.state.LastX,
		Y:     e.state.LastY,
	})
}

// CursorEnter encodes the cursor entering or leaving the window.
func (e *Encoder) CursorEnter(entered bool) {
	e.push(Event{Type: MouseEnter, Entered: entered})
}

// MouseButton encodes a button transition. The reported position is the
// last cursor move that was encoded, not a fresh query.
func (e *Encoder) MouseButton(button int, action Action, mods Modifiers) {
	if bc, ok := e.overlay.(ButtonConsumer); ok && bc.ConsumeButton(button, action) {
		return
	}

	typ := MouseUp
	if action != Release {
		typ = MouseDown
	}
	e.push(Event{
		Type:   typ,
		Button: button,
		Which:  button,
		X:      e.state.LastX,
		Y:      e.state.LastY,
		PageX:  e.state.LastX,
		PageY:  e.state.LastY,
	})
}

// Scroll encodes a wheel or trackpad scroll, scaled to wheel deltas.
func (e *Encoder) Scroll(xoff, yoff float64) {
	if wc, ok := e.overlay.(WheelConsumer); ok && wc.ConsumeWheel(xoff, yoff) {
		return
	}

	dy := int(gomath.Round(yoff * wheelScale))
	e.push(Event{
		Type:        MouseWheel,
		WheelDeltaX: int(gomath.Round(xoff * wheelScale)),
		WheelDeltaY: dy,
		WheelDelta:  dy,
	})
}
