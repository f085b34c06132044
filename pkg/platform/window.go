// pkg/platform/window.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import "github.com/go-gl/glfw/v3.3/glfw"

// The methods here forward to the window named by the handle. A zero or
// stale handle is not an error: setters do nothing and getters return
// zero values.

// SetWindowTitle sets the window's title bar text.
func (p *Platform) SetWindowTitle(h Handle, title string) {
	if w := p.lookup(h); w != nil {
		w.SetTitle(title)
	}
}

// WindowSize returns the size of the window's content area.
func (p *Platform) WindowSize(h Handle) (width, height int) {
	if w := p.lookup(h); w != nil {
		return w.GetSize()
	}
	return 0, 0
}

// SetWindowSize resizes the window's content area.
func (p *Platform) SetWindowSize(h Handle, width, height int) {
	if w := p.lookup(h); w != nil {
		w.SetSize(width, height)
	}
}

// WindowPos returns the screen position of the content area's top left.
func (p *Platform) WindowPos(h Handle) (x, y int) {
	if w := p.lookup(h); w != nil {
		return w.GetPos()
	}
	return 0, 0
}

// SetWindowPos moves the window's content area to (x, y).
func (p *Platform) SetWindowPos(h Handle, x, y int) {
	if w := p.lookup(h); w != nil {
		w.SetPos(x, y)
	}
}

// FramebufferSize returns the window's framebuffer size in pixels.
func (p *Platform) FramebufferSize(h Handle) (width, height int) {
	if w := p.lookup(h); w != nil {
		return w.GetFramebufferSize()
	}
	return 0, 0
}

// IconifyWindow minimizes the window.
func (p *Platform) IconifyWindow(h Handle) {
	if w := p.lookup(h); w != nil {
		w.Iconify()
	}
}

// RestoreWindow undoes IconifyWindow.
func (p *Platform) RestoreWindow(h Handle) {
	if w := p.lookup(h); w != nil {
		w.Restore()
	}
}

// HideWindow makes the window invisible.
func (p *Platform) HideWindow(h Handle) {
	if w := p.lookup(h); w != nil {
		w.Hide()
	}
}

// ShowWindow makes a hidden window visible.
func (p *Platform) ShowWindow(h Handle) {
	if w := p.lookup(h); w != nil {
		w.Show()
	}
}

// WindowShouldClose reports whether closing the window has been requested.
func (p *Platform) WindowShouldClose(h Handle) bool {
	if w := p.lookup(h); w != nil {
		return w.ShouldClose()
	}
	return false
}

// SetWindowShouldClose sets or clears the window's close request.
func (p *Platform) SetWindowShouldClose(h Handle, value bool) {
	if w := p.lookup(h); w != nil {
		w.SetShouldClose(value)
	}
}

// WindowAttrib returns a window attribute such as FOCUSED or RESIZABLE;
// attrib takes the values exported by Constants.
func (p *Platform) WindowAttrib(h Handle, attrib int) int {
	if w := p.lookup(h); w != nil {
		return w.GetAttrib(glfw.Hint(attrib))
	}
	return 0
}
