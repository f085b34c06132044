// pkg/overlay/imgui.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package overlay feeds raw window input to a Dear ImGui context and
// reports whether ImGui wants it, so that input over overlay widgets isn't
// also delivered as application events.
package overlay

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/kjunichi/node-glfw/pkg/event"
	"github.com/kjunichi/node-glfw/pkg/keymap"
	"github.com/kjunichi/node-glfw/pkg/log"
)

// IO is the subset of *imgui.IO that the overlay uses.
type IO interface {
	AddKeyEvent(key imgui.Key, down bool)
	AddMousePosEvent(x, y float32)
	AddMouseButtonEvent(button int32, down bool)
	AddMouseWheelEvent(wheelX, wheelY float32)
	SetDisplaySize(size imgui.Vec2)
	SetDeltaTime(dt float32)
	WantCaptureKeyboard() bool
	WantCaptureMouse() bool
}

// Imgui offers input to ImGui. It implements event.KeyConsumer,
// event.CursorConsumer, event.ButtonConsumer and event.WheelConsumer.
type Imgui struct {
	io    IO
	owned bool
	lg    *log.Logger
}

var (
	_ event.KeyConsumer    = (*Imgui)(nil)
	_ event.CursorConsumer = (*Imgui)(nil)
	_ event.ButtonConsumer = (*Imgui)(nil)
	_ event.WheelConsumer  = (*Imgui)(nil)
)

// New creates an ImGui context and returns an overlay bound to its IO.
// Close destroys the context.
func New(lg *log.Logger) *Imgui {
	imgui.CreateContext()
	io := imgui.CurrentIO()
	// The atlas is built lazily by NewFrame when the renderer claims to
	// manage textures; nothing here ever uploads them.
	io.SetBackendFlags(io.BackendFlags() | imgui.BackendFlagsRendererHasTextures)
	io.Fonts().AddFontDefault()
	lg.Info("created imgui context", "version", imgui.Version())
	return &Imgui{io: io, owned: true, lg: lg}
}

// NewWithIO returns an overlay that feeds an existing IO.
func NewWithIO(io IO, lg *log.Logger) *Imgui {
	return &Imgui{io: io, lg: lg}
}

func (o *Imgui) Close() {
	if o.owned {
		imgui.DestroyContext()
		o.owned = false
	}
}

// Frame runs an empty ImGui frame so that queued input is processed and
// the WantCapture flags track it. Hosts that draw their own ImGui frames
// don't need it; it does nothing for an overlay made by NewWithIO.
func (o *Imgui) Frame(dt float64) {
	if !o.owned {
		return
	}
	o.io.SetDeltaTime(float32(max(dt, 1e-4)))
	imgui.NewFrame()
	imgui.EndFrame()
}

// SetDisplaySize should be called when the window's size changes.
func (o *Imgui) SetDisplaySize(w, h int) {
	o.io.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})
}

func (o *Imgui) ConsumeKey(key keymap.Key, action event.Action) bool {
	down := action != event.Release
	if ik := imguiKey(key); ik != imgui.KeyNone {
		o.io.AddKeyEvent(ik, down)
	}
	if mod, ok := imguiMod(key); ok {
		o.io.AddKeyEvent(mod, down)
	}
	return o.io.WantCaptureKeyboard()
}

func (o *Imgui) ConsumeCursor(x, y float64) bool {
	o.io.AddMousePosEvent(float32(x), float32(y))
	return o.io.WantCaptureMouse()
}

func (o *Imgui) ConsumeButton(button int, action event.Action) bool {
	if button < 0 || button >= int(imgui.MouseButtonCOUNT) {
		o.lg.Debugf("overlay: ignoring mouse button %d", button)
		return false
	}
	o.io.AddMouseButtonEvent(int32(button), action != event.Release)
	return o.io.WantCaptureMouse()
}

func (o *Imgui) ConsumeWheel(xoff, yoff float64) bool {
	o.io.AddMouseWheelEvent(float32(xoff), float32(yoff))
	return o.io.WantCaptureMouse()
}

var namedImguiKeys = map[keymap.Key]imgui.Key{
	keymap.KeySpace:        imgui.KeySpace,
	keymap.KeyApostrophe:   imgui.KeyApostrophe,
	keymap.KeyComma:        imgui.KeyComma,
	keymap.KeyMinus:        imgui.KeyMinus,
	keymap.KeyPeriod:       imgui.KeyPeriod,
	keymap.KeySlash:        imgui.KeySlash,
	keymap.KeySemicolon:    imgui.KeySemicolon,
	keymap.KeyEqual:        imgui.KeyEqual,
	keymap.KeyLeftBracket:  imgui.KeyLeftBracket,
	keymap.KeyBackslash:    imgui.KeyBackslash,
	keymap.KeyRightBracket: imgui.KeyRightBracket,
	keymap.KeyGraveAccent:  imgui.KeyGraveAccent,
	keymap.KeyEscape:       imgui.KeyEscape,
	keymap.KeyEnter:        imgui.KeyEnter,
	keymap.KeyTab:          imgui.KeyTab,
	keymap.KeyBackspace:    imgui.KeyBackspace,
	keymap.KeyInsert:       imgui.KeyInsert,
	keymap.KeyDelete:       imgui.KeyDelete,
	keymap.KeyRight:        imgui.KeyRightArrow,
	keymap.KeyLeft:         imgui.KeyLeftArrow,
	keymap.KeyDown:         imgui.KeyDownArrow,
	keymap.KeyUp:           imgui.KeyUpArrow,
	keymap.KeyPageUp:       imgui.KeyPageUp,
	keymap.KeyPageDown:     imgui.KeyPageDown,
	keymap.KeyHome:         imgui.KeyHome,
	keymap.KeyEnd:          imgui.KeyEnd,
	keymap.KeyCapsLock:     imgui.KeyCapsLock,
	keymap.KeyScrollLock:   imgui.KeyScrollLock,
	keymap.KeyNumLock:      imgui.KeyNumLock,
	keymap.KeyPrintScreen:  imgui.KeyPrintScreen,
	keymap.KeyPause:        imgui.KeyPause,
	keymap.KeyKPDecimal:    imgui.KeyKeypadDecimal,
	keymap.KeyKPDivide:     imgui.KeyKeypadDivide,
	keymap.KeyKPMultiply:   imgui.KeyKeypadMultiply,
	keymap.KeyKPSubtract:   imgui.KeyKeypadSubtract,
	keymap.KeyKPAdd:        imgui.KeyKeypadAdd,
	keymap.KeyKPEnter:      imgui.KeyKeypadEnter,
	keymap.KeyKPEqual:      imgui.KeyKeypadEqual,
	keymap.KeyLeftShift:    imgui.KeyLeftShift,
	keymap.KeyLeftControl:  imgui.KeyLeftCtrl,
	keymap.KeyLeftAlt:      imgui.KeyLeftAlt,
	keymap.KeyLeftSuper:    imgui.KeyLeftSuper,
	keymap.KeyRightShift:   imgui.KeyRightShift,
	keymap.KeyRightControl: imgui.KeyRightCtrl,
	keymap.KeyRightAlt:     imgui.KeyRightAlt,
	keymap.KeyRightSuper:   imgui.KeyRightSuper,
	keymap.KeyMenu:         imgui.KeyMenu,
}

// imguiKey returns the ImGui key for k, or imgui.KeyNone.
func imguiKey(k keymap.Key) imgui.Key {
	switch {
	case k >= keymap.KeyA && k <= keymap.KeyZ:
		return imgui.KeyA + imgui.Key(k-keymap.KeyA)
	case k >= keymap.Key0 && k <= keymap.Key9:
		return imgui.Key0 + imgui.Key(k-keymap.Key0)
	case k >= keymap.KeyF1 && k <= keymap.KeyF12:
		return imgui.KeyF1 + imgui.Key(k-keymap.KeyF1)
	case k >= keymap.KeyKP0 && k <= keymap.KeyKP9:
		return imgui.KeyKeypad0 + imgui.Key(k-keymap.KeyKP0)
	}
	if ik, ok := namedImguiKeys[k]; ok {
		return ik
	}
	return imgui.KeyNone
}

// imguiMod returns the modifier that k holds down, if it is a modifier key.
func imguiMod(k keymap.Key) (imgui.Key, bool) {
	switch k {
	case keymap.KeyLeftControl, keymap.KeyRightControl:
		return imgui.ModCtrl, true
	case keymap.KeyLeftShift, keymap.KeyRightShift:
		return imgui.ModShift, true
	case keymap.KeyLeftAlt, keymap.KeyRightAlt:
		return imgui.ModAlt, true
	case keymap.KeyLeftSuper, keymap.KeyRightSuper:
		return imgui.ModSuper, true
	}
	return imgui.KeyNone, false
}
