// pkg/event/event.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package event turns native window and input callbacks into web-style
// event records and delivers them to a single registered receiver.
package event

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/kjunichi/node-glfw/pkg/keymap"
)

// Type identifies the kind of an Event.
type Type int

const (
	WindowPos Type = iota
	Resize
	FramebufferResize
	Quit
	Refresh
	Iconified
	Focused
	KeyUp
	KeyDown
	KeyPress
	MouseMove
	MouseEnter
	MouseDown
	MouseUp
	MouseWheel
)

var typeNames = [...]string{
	WindowPos:         "window_pos",
	Resize:            "resize",
	FramebufferResize: "framebuffer_resize",
	Quit:              "quit",
	Refresh:           "refresh",
	Iconified:         "iconified",
	Focused:           "focused",
	KeyUp:             "keyup",
	KeyDown:           "keydown",
	KeyPress:          "keypress",
	MouseMove:         "mousemove",
	MouseEnter:        "mouseenter",
	MouseDown:         "mousedown",
	MouseUp:           "mouseup",
	MouseWheel:        "mousewheel",
}

// String returns the event name delivered to the receiver.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Action is the native key/button transition code.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// Modifiers is the native modifier-key bitmask.
type Modifiers int

const (
	ModShift   Modifiers = 0x1
	ModControl Modifiers = 0x2
	ModAlt     Modifiers = 0x4
	ModSuper   Modifiers = 0x8
)

func (m Modifiers) Shift() bool   { return m&ModShift != 0 }
func (m Modifiers) Control() bool { return m&ModControl != 0 }
func (m Modifiers) Alt() bool     { return m&ModAlt != 0 }
func (m Modifiers) Super() bool   { return m&ModSuper != 0 }

// Event is a single translated callback. Which fields are meaningful is
// determined by Type; Record returns exactly those.
type Event struct {
	Type Type

	// window_pos
	XPos, YPos int
	// resize, framebuffer_resize
	Width, Height int
	// refresh: the native window handle as an opaque number.
	Window uint64
	// iconified, focused, mouseenter
	Iconified, Focused, Entered bool

	// Key events. KeyCode is the translated web key code; Which and
	// CharCode both carry the untranslated native key.
	KeyCode, Which, CharCode           int
	CtrlKey, ShiftKey, AltKey, MetaKey bool

	// mousemove, mousedown, mouseup. For button events Which is the
	// button number.
	X, Y, PageX, PageY int
	Button             int

	// mousewheel, in units of 120 per wheel notch.
	WheelDeltaX, WheelDeltaY, WheelDelta int
}

// Name returns the name under which the event is dispatched.
func (e Event) Name() string { return e.Type.String() }

// NativeKey returns the untranslated key of a key event.
func (e Event) NativeKey() keymap.Key { return keymap.Key(e.Which) }

// Record returns the event as the host sees it: an ordered map holding
// "type" followed by the fields of that event type.
func (e Event) Record() *orderedmap.OrderedMap {
	r := orderedmap.New()
	r.Set("type", e.Type.String())

	switch e.Type {
	case WindowPos:
		r.Set("xpos", e.XPos)
		r.Set("ypos", e.YPos)
	case Resize, FramebufferResize:
		r.Set("width", e.Width)
		r.Set("height", e.Height)
	case Quit:
	case Refresh:
		r.Set("window", e.Window)
	case Iconified:
		r.Set("iconified", e.Iconified)
	case Focused:
		r.Set("focused", e.Focused)
	case KeyUp, KeyDown, KeyPress:
		r.Set("ctrlKey", e.CtrlKey)
		r.Set("shiftKey", e.ShiftKey)
		r.Set("altKey", e.AltKey)
		r.Set("metaKey", e.MetaKey)
		r.Set("which", e.Which)
		r.Set("keyCode", e.KeyCode)
		r.Set("charCode", e.CharCode)
	case MouseMove:
		r.Set("pageX", e.PageX)
		r.Set("pageY", e.PageY)
		r.Set("x", e.X)
		r.Set("y", e.Y)
	case MouseEnter:
		r.Set("entered", e.Entered)
	case MouseDown, MouseUp:
		r.Set("button", e.Button)
		r.Set("which", e.Which)
		r.Set("x", e.X)
		r.Set("y", e.Y)
		r.Set("pageX", e.PageX)
		r.Set("pageY", e.PageY)
	case MouseWheel:
		r.Set("wheelDeltaX", e.WheelDeltaX)
		r.Set("wheelDeltaY", e.WheelDeltaY)
		r.Set("wheelDelta", e.WheelDelta)
	}
	return r
}
