// pkg/platform/monitor.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import "github.com/go-gl/glfw/v3.3/glfw"

// VideoMode is a resolution and refresh rate a monitor supports.
type VideoMode struct {
	Width, Height int
	RefreshRate   int
}

// Monitor describes a connected monitor.
type Monitor struct {
	Index     int
	IsPrimary bool
	Name      string
	// Position of the monitor on the virtual screen.
	X, Y int
	// Physical size in millimetres.
	WidthMM, HeightMM int
	// Current video mode.
	Mode VideoMode
	// All modes the monitor supports.
	Modes []VideoMode
}

// Monitors describes the connected monitors; the index of each may be
// passed to CreateWindow.
func (p *Platform) Monitors() []Monitor {
	primary := glfw.GetPrimaryMonitor()

	var monitors []Monitor
	for i, m := range glfw.GetMonitors() {
		mon := Monitor{
			Index:     i,
			IsPrimary: m == primary,
			Name:      m.GetName(),
		}
		mon.X, mon.Y = m.GetPos()
		mon.WidthMM, mon.HeightMM = m.GetPhysicalSize()
		if vm := m.GetVideoMode(); vm != nil {
			mon.Mode = videoMode(vm)
		}
		for _, vm := range m.GetVideoModes() {
			mon.Modes = append(mon.Modes, videoMode(vm))
		}
		monitors = append(monitors, mon)
	}
	return monitors
}

func videoMode(vm *glfw.VidMode) VideoMode {
	return VideoMode{Width: vm.Width, Height: vm.Height, RefreshRate: vm.RefreshRate}
}
