// pkg/scene/scene.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package scene draws a simple fixed-function OpenGL test scene, useful for
// checking that a window, its context and the event loop are alive.
package scene

import (
	"github.com/go-gl/gl/v2.1/gl"
)

// Transform positions the joystick-driven triangle.
type Transform struct {
	Translate [3]float32
	// Rotation axis and angle in degrees.
	Rotate [3]float32
	Angle  float32
}

// Triangle draws a coloured triangle offset by z along x and rotated by
// 50 degrees per second of t.
func Triangle(width, height int, z float32, t float64) {
	setup(width, height)
	gl.Rotatef(float32(t)*50, 0, 0, 1)
	triangle(z)
}

// Joystick draws the triangle under an explicit transform.
func Joystick(width, height int, xf Transform) {
	setup(width, height)
	gl.Rotatef(xf.Angle, xf.Rotate[0], xf.Rotate[1], xf.Rotate[2])
	gl.Translatef(xf.Translate[0], xf.Translate[1], xf.Translate[2])
	triangle(0)
}

// TransformFromAxes maps the first joystick axes to a Transform: axes 0
// and 1 translate, axis 2 (if present) spins about z.
func TransformFromAxes(axes []float32) Transform {
	var xf Transform
	if len(axes) > 0 {
		xf.Translate[0] = axes[0]
	}
	if len(axes) > 1 {
		xf.Translate[1] = -axes[1]
	}
	if len(axes) > 2 {
		xf.Rotate = [3]float32{0, 0, 1}
		xf.Angle = axes[2] * 180
	}
	return xf
}

func setup(width, height int) {
	if height == 0 {
		height = 1
	}
	ratio := float64(width) / float64(height)

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(-ratio, ratio, -1, 1, 1, -1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

func triangle(z float32) {
	gl.Begin(gl.TRIANGLES)
	gl.Color3f(1, 0, 0)
	gl.Vertex3f(-0.6+z, -0.4, 0)
	gl.Color3f(0, 1, 0)
	gl.Vertex3f(0.6+z, -0.4, 0)
	gl.Color3f(0, 0, 1)
	gl.Vertex3f(z, 0.6, 0)
	gl.End()
}
