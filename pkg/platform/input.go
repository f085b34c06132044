// pkg/platform/input.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjunichi/node-glfw/pkg/event"
	"github.com/kjunichi/node-glfw/pkg/keymap"
)

// Key returns the last reported state of a key: event.Press or
// event.Release.
func (p *Platform) Key(h Handle, k keymap.Key) event.Action {
	if w := p.lookup(h); w != nil {
		return event.Action(w.GetKey(glfw.Key(k)))
	}
	return event.Release
}

// MouseButton returns the last reported state of a mouse button.
func (p *Platform) MouseButton(h Handle, button int) event.Action {
	if w := p.lookup(h); w != nil {
		return event.Action(w.GetMouseButton(glfw.MouseButton(button)))
	}
	return event.Release
}

// CursorPos returns the cursor position in whole screen coordinates
// relative to the window's content area.
func (p *Platform) CursorPos(h Handle) (x, y int) {
	if w := p.lookup(h); w != nil {
		fx, fy := w.GetCursorPos()
		return int(fx), int(fy)
	}
	return 0, 0
}

// SetCursorPos moves the cursor relative to the window's content area.
func (p *Platform) SetCursorPos(h Handle, x, y int) {
	if w := p.lookup(h); w != nil {
		w.SetCursorPos(float64(x), float64(y))
	}
}

///////////////////////////////////////////////////////////////////////////
// Joysticks

func joystick(joy int) (glfw.Joystick, bool) {
	if joy < int(glfw.Joystick1) || joy > int(glfw.JoystickLast) {
		return 0, false
	}
	return glfw.Joystick(joy), true
}

// JoystickPresent reports whether the joystick is connected.
func (p *Platform) JoystickPresent(joy int) bool {
	if j, ok := joystick(joy); ok {
		return j.Present()
	}
	return false
}

// JoystickAxes returns the joystick's axis positions in [-1,1]; it is
// empty if the joystick isn't present.
func (p *Platform) JoystickAxes(joy int) []float32 {
	if j, ok := joystick(joy); ok {
		return j.GetAxes()
	}
	return nil
}

// JoystickButtons returns the joystick's button states as event.Press or
// event.Release values.
func (p *Platform) JoystickButtons(joy int) []int {
	j, ok := joystick(joy)
	if !ok {
		return nil
	}
	b := j.GetButtons()
	buttons := make([]int, len(b))
	for i, a := range b {
		buttons[i] = int(a)
	}
	return buttons
}

// JoystickName returns the joystick's name, or "" if it isn't present.
func (p *Platform) JoystickName(joy int) string {
	if j, ok := joystick(joy); ok {
		return j.GetName()
	}
	return ""
}
