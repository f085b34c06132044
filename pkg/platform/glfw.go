// pkg/platform/glfw.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package platform drives GLFW on behalf of a host: it forwards window,
// context and input commands and turns GLFW's callbacks into events via an
// event.Context. A single window is managed; asking for a second one
// resizes the first.
package platform

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjunichi/node-glfw/pkg/event"
	"github.com/kjunichi/node-glfw/pkg/keymap"
	"github.com/kjunichi/node-glfw/pkg/log"
)

func init() {
	// GLFW calls must all come from the main thread.
	runtime.LockOSThread()
}

// Handle identifies a window to the host. It is the native window pointer
// reinterpreted as a number; zero never refers to a window.
type Handle uint64

var (
	ErrNotInitialized = errors.New("platform not initialized")
	ErrInvalidMonitor = errors.New("invalid monitor")
)

// Platform is the GLFW session.
type Platform struct {
	lg *log.Logger

	windows windowSystem
	window  *glfw.Window
	handle  Handle
	ctx     *event.Context

	// overlay, if it wants to know, is told the window size on resize.
	overlay any
}

type displaySizer interface {
	SetDisplaySize(w, h int)
}

// New initializes GLFW.
func New(lg *log.Logger) (*Platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize GLFW: %w", err)
	}
	lg.Infof("GLFW: %s", glfw.GetVersionString())

	p := &Platform{lg: lg}
	p.init(glfwWindows{p: p})
	return p, nil
}

func (p *Platform) init(ws windowSystem) {
	p.windows = ws
	p.ctx = event.NewContext(p.currentSize, p.lg)
}

// Terminate destroys the window, if any, and shuts GLFW down.
func (p *Platform) Terminate() {
	p.DestroyWindow(p.handle)
	glfw.Terminate()
}

// Context returns the event translation state of the window.
func (p *Platform) Context() *event.Context { return p.ctx }

// SetOverlay installs an overlay that is offered raw input before it is
// translated; see event.Encoder.SetOverlay.
func (p *Platform) SetOverlay(o any) {
	p.overlay = o
	p.ctx.Encoder.SetOverlay(o)
	if ds, ok := o.(displaySizer); ok && p.ctx.State.WindowCreated {
		ds.SetDisplaySize(p.currentSize())
	}
}

func (p *Platform) currentSize() (int, int) {
	if p.windows == nil {
		return 0, 0
	}
	return p.windows.size()
}

// Version is the GLFW library version.
type Version struct {
	Major, Minor, Rev int
}

// Version returns the version of the GLFW library in use.
func (p *Platform) Version() Version {
	major, minor, rev := glfw.GetVersion()
	return Version{Major: major, Minor: minor, Rev: rev}
}

// VersionString returns GLFW's version and build description.
func (p *Platform) VersionString() string { return glfw.GetVersionString() }

// Time returns the seconds elapsed since GLFW was initialized or the time
// was last set.
func (p *Platform) Time() float64 { return glfw.GetTime() }

// SetTime resets the GLFW timer to t seconds.
func (p *Platform) SetTime(t float64) { glfw.SetTime(t) }

///////////////////////////////////////////////////////////////////////////
// Window lifecycle

// WindowHint sets a hint for the next CreateWindow; hint and value take
// the values exported by Constants.
func (p *Platform) WindowHint(hint, value int) {
	glfw.WindowHint(glfw.Hint(hint), value)
}

// DefaultWindowHints resets all window hints to GLFW's defaults.
func (p *Platform) DefaultWindowHints() { glfw.DefaultWindowHints() }

// CreateWindow creates the window and registers receiver to get its
// events. monitor is the index of the monitor to go fullscreen on, or -1.
// If the window already exists it is resized instead and only the receiver
// is replaced. The returned Handle addresses the window in later calls.
func (p *Platform) CreateWindow(width, height int, title string, monitor int, receiver any) (Handle, error) {
	if p.ctx == nil || p.windows == nil {
		return 0, ErrNotInitialized
	}

	if n := p.windows.monitorCount(); monitor >= n {
		return 0, fmt.Errorf("%d: %w (%d connected)", monitor, ErrInvalidMonitor, n)
	}

	if !p.ctx.State.WindowCreated {
		h, err := p.windows.create(width, height, title, monitor)
		if err != nil {
			return 0, err
		}
		p.handle = h
		p.ctx.State.WindowCreated = true

		if ds, ok := p.overlay.(displaySizer); ok {
			ds.SetDisplaySize(width, height)
		}
	} else {
		p.windows.resize(width, height)
	}

	p.ctx.Dispatcher.Register(receiver)
	return p.handle, nil
}

// DestroyWindow destroys the window; a later CreateWindow makes a new one.
func (p *Platform) DestroyWindow(h Handle) {
	if h == 0 || h != p.handle || p.ctx == nil || !p.ctx.State.WindowCreated {
		return
	}
	p.windows.destroy()
	p.handle = 0
	p.ctx.State.WindowCreated = false
}

// windowSystem makes, sizes and destroys the one native window. glfwWindows
// is the real one.
type windowSystem interface {
	monitorCount() int
	create(width, height int, title string, monitor int) (Handle, error)
	resize(width, height int)
	size() (int, int)
	destroy()
}

type glfwWindows struct {
	p *Platform
}

func (g glfwWindows) monitorCount() int { return len(glfw.GetMonitors()) }

func (g glfwWindows) create(width, height int, title string, monitor int) (Handle, error) {
	var mon *glfw.Monitor
	if monitor >= 0 {
		mon = glfw.GetMonitors()[monitor]
	}

	w, err := glfw.CreateWindow(width, height, title, mon, nil)
	if err != nil {
		return 0, fmt.Errorf("unable to create GLFW window: %w", err)
	}

	w.MakeContextCurrent()
	// Make sure the cursor is always shown.
	w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	if err := gl.Init(); err != nil {
		w.Destroy()
		return 0, fmt.Errorf("unable to initialize OpenGL: %w", err)
	}
	g.p.lg.Infof("OpenGL: %s / %s", gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.RENDERER)))

	g.p.window = w
	g.p.installCallbacks(w)
	return handleOf(w), nil
}

func (g glfwWindows) resize(width, height int) {
	if g.p.window != nil {
		g.p.window.SetSize(width, height)
	}
}

func (g glfwWindows) size() (int, int) {
	if g.p.window == nil {
		return 0, 0
	}
	return g.p.window.GetSize()
}

func (g glfwWindows) destroy() {
	if g.p.window != nil {
		g.p.window.Destroy()
		g.p.window = nil
	}
}

func handleOf(w *glfw.Window) Handle {
	if w == nil {
		return 0
	}
	return Handle(uintptr(w.Handle()))
}

// lookup returns the window for h, or nil if h doesn't name the live
// window. Every handle-addressed operation is a no-op when it is nil.
func (p *Platform) lookup(h Handle) *glfw.Window {
	if h == 0 || h != p.handle {
		return nil
	}
	return p.window
}

///////////////////////////////////////////////////////////////////////////
// Events

// PollEvents processes pending window system events and returns what
// they translated to, in order.
func (p *Platform) PollEvents() []event.Event {
	glfw.PollEvents()
	return p.ctx.Encoder.Drain()
}

// WaitEvents is like PollEvents but blocks until at least one event
// arrives.
func (p *Platform) WaitEvents() []event.Event {
	glfw.WaitEvents()
	return p.ctx.Encoder.Drain()
}

// Dispatch delivers events to the registered receiver.
func (p *Platform) Dispatch(events []event.Event) {
	p.ctx.Dispatcher.DispatchAll(events)
}

///////////////////////////////////////////////////////////////////////////
// Context

// MakeContextCurrent makes the window's GL context current on this thread.
func (p *Platform) MakeContextCurrent(h Handle) {
	if w := p.lookup(h); w != nil {
		w.MakeContextCurrent()
	}
}

// CurrentContext returns the window whose context is current, or zero.
func (p *Platform) CurrentContext() Handle {
	return handleOf(glfw.GetCurrentContext())
}

// SwapBuffers presents the window's back buffer.
func (p *Platform) SwapBuffers(h Handle) {
	if w := p.lookup(h); w != nil {
		w.SwapBuffers()
	}
}

// SwapInterval sets how many screen updates to wait for before swapping.
func (p *Platform) SwapInterval(interval int) { glfw.SwapInterval(interval) }

// ExtensionSupported reports whether the current context supports the
// named GL extension.
func (p *Platform) ExtensionSupported(name string) bool {
	return glfw.ExtensionSupported(name)
}
