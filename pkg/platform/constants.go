// pkg/platform/constants.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/iancoleman/orderedmap"
	"github.com/kjunichi/node-glfw/pkg/config"
	"github.com/kjunichi/node-glfw/pkg/keymap"
)

type constant struct {
	name  string
	value int
}

var versionConstants = []constant{
	{"VERSION_MAJOR", int(glfw.VersionMajor)},
	{"VERSION_MINOR", int(glfw.VersionMinor)},
	{"VERSION_REVISION", int(glfw.VersionRevision)},
}

var actionConstants = []constant{
	{"RELEASE", int(glfw.Release)},
	{"PRESS", int(glfw.Press)},
	{"REPEAT", int(glfw.Repeat)},
}

var modConstants = []constant{
	{"MOD_SHIFT", int(glfw.ModShift)},
	{"MOD_CONTROL", int(glfw.ModControl)},
	{"MOD_ALT", int(glfw.ModAlt)},
	{"MOD_SUPER", int(glfw.ModSuper)},
}

var mouseButtonConstants = []constant{
	{"MOUSE_BUTTON_1", int(glfw.MouseButton1)},
	{"MOUSE_BUTTON_2", int(glfw.MouseButton2)},
	{"MOUSE_BUTTON_3", int(glfw.MouseButton3)},
	{"MOUSE_BUTTON_4", int(glfw.MouseButton4)},
	{"MOUSE_BUTTON_5", int(glfw.MouseButton5)},
	{"MOUSE_BUTTON_6", int(glfw.MouseButton6)},
	{"MOUSE_BUTTON_7", int(glfw.MouseButton7)},
	{"MOUSE_BUTTON_8", int(glfw.MouseButton8)},
	{"MOUSE_BUTTON_LAST", int(glfw.MouseButtonLast)},
	{"MOUSE_BUTTON_LEFT", int(glfw.MouseButtonLeft)},
	{"MOUSE_BUTTON_RIGHT", int(glfw.MouseButtonRight)},
	{"MOUSE_BUTTON_MIDDLE", int(glfw.MouseButtonMiddle)},
}

var errorConstants = []constant{
	{"NOT_INITIALIZED", int(glfw.NotInitialized)},
	{"NO_CURRENT_CONTEXT", int(glfw.NoCurrentContext)},
	{"INVALID_ENUM", int(glfw.InvalidEnum)},
	{"INVALID_VALUE", int(glfw.InvalidValue)},
	{"OUT_OF_MEMORY", int(glfw.OutOfMemory)},
	{"API_UNAVAILABLE", int(glfw.APIUnavailable)},
	{"VERSION_UNAVAILABLE", int(glfw.VersionUnavailable)},
	{"PLATFORM_ERROR", int(glfw.PlatformError)},
	{"FORMAT_UNAVAILABLE", int(glfw.FormatUnavailable)},
}

// hintConstants are the window hints and attributes; they are also the
// names accepted for configured hints.
var hintConstants = []constant{
	{"FOCUSED", int(glfw.Focused)},
	{"ICONIFIED", int(glfw.Iconified)},
	{"RESIZABLE", int(glfw.Resizable)},
	{"VISIBLE", int(glfw.Visible)},
	{"DECORATED", int(glfw.Decorated)},

	{"RED_BITS", int(glfw.RedBits)},
	{"GREEN_BITS", int(glfw.GreenBits)},
	{"BLUE_BITS", int(glfw.BlueBits)},
	{"ALPHA_BITS", int(glfw.AlphaBits)},
	{"DEPTH_BITS", int(glfw.DepthBits)},
	{"STENCIL_BITS", int(glfw.StencilBits)},
	{"ACCUM_RED_BITS", int(glfw.AccumRedBits)},
	{"ACCUM_GREEN_BITS", int(glfw.AccumGreenBits)},
	{"ACCUM_BLUE_BITS", int(glfw.AccumBlueBits)},
	{"ACCUM_ALPHA_BITS", int(glfw.AccumAlphaBits)},
	{"AUX_BUFFERS", int(glfw.AuxBuffers)},
	{"STEREO", int(glfw.Stereo)},
	{"SAMPLES", int(glfw.Samples)},
	{"SRGB_CAPABLE", int(glfw.SRGBCapable)},
	{"REFRESH_RATE", int(glfw.RefreshRate)},

	{"CLIENT_API", int(glfw.ClientAPI)},
	{"CONTEXT_VERSION_MAJOR", int(glfw.ContextVersionMajor)},
	{"CONTEXT_VERSION_MINOR", int(glfw.ContextVersionMinor)},
	{"CONTEXT_REVISION", int(glfw.ContextRevision)},
	{"CONTEXT_ROBUSTNESS", int(glfw.ContextRobustness)},
	{"OPENGL_FORWARD_COMPAT", int(glfw.OpenGLForwardCompatible)},
	{"OPENGL_DEBUG_CONTEXT", int(glfw.OpenGLDebugContext)},
	{"OPENGL_PROFILE", int(glfw.OpenGLProfile)},
}

// hintValueConstants are the symbolic values some hints take.
var hintValueConstants = []constant{
	{"OPENGL_API", int(glfw.OpenGLAPI)},
	{"OPENGL_ES_API", int(glfw.OpenGLESAPI)},

	{"NO_ROBUSTNESS", int(glfw.NoRobustness)},
	{"NO_RESET_NOTIFICATION", int(glfw.NoResetNotification)},
	{"LOSE_CONTEXT_ON_RESET", int(glfw.LoseContextOnReset)},

	{"OPENGL_ANY_PROFILE", int(glfw.OpenGLAnyProfile)},
	{"OPENGL_CORE_PROFILE", int(glfw.OpenGLCoreProfile)},
	{"OPENGL_COMPAT_PROFILE", int(glfw.OpenGLCompatProfile)},
}

var inputModeConstants = []constant{
	{"CURSOR", int(glfw.CursorMode)},
	{"STICKY_KEYS", int(glfw.StickyKeysMode)},
	{"STICKY_MOUSE_BUTTONS", int(glfw.StickyMouseButtonsMode)},

	{"CURSOR_NORMAL", int(glfw.CursorNormal)},
	{"CURSOR_HIDDEN", int(glfw.CursorHidden)},
	{"CURSOR_DISABLED", int(glfw.CursorDisabled)},

	{"CONNECTED", int(glfw.Connected)},
	{"DISCONNECTED", int(glfw.Disconnected)},
}

func joystickConstants() []constant {
	var c []constant
	for j := glfw.Joystick1; j <= glfw.JoystickLast; j++ {
		c = append(c, constant{fmt.Sprintf("JOYSTICK_%d", int(j-glfw.Joystick1)+1), int(j)})
	}
	return append(c, constant{"JOYSTICK_LAST", int(glfw.JoystickLast)})
}

// Constants returns the name/value table of GLFW constants a host needs to
// talk to the platform: versions, actions, keys, modifiers, mouse buttons,
// joysticks, error codes, window hints and their values, and input modes.
func Constants() *orderedmap.OrderedMap {
	m := orderedmap.New()
	add := func(cs []constant) {
		for _, c := range cs {
			m.Set(c.name, c.value)
		}
	}

	add(versionConstants)
	add(actionConstants)
	for _, nk := range keymap.Names() {
		m.Set(nk.Name, int(nk.Key))
	}
	add(modConstants)
	add(mouseButtonConstants)
	add(joystickConstants())
	add(errorConstants)
	add(hintConstants)
	add(hintValueConstants)
	add(inputModeConstants)
	return m
}

// normalizeName folds "CONTEXT_VERSION_MAJOR", "ContextVersionMajor" and
// "context-version-major" to the same key.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToLower(s))
}

func lookupConstant(cs []constant, name string) (int, bool) {
	n := normalizeName(name)
	for _, c := range cs {
		if normalizeName(c.name) == n {
			return c.value, true
		}
	}
	return 0, false
}

// resolveHint maps a configured hint to a GLFW hint and value.
func resolveHint(h config.Hint) (glfw.Hint, int, error) {
	hint, ok := lookupConstant(hintConstants, h.Name)
	if !ok {
		return 0, 0, fmt.Errorf("%s: unknown window hint", h.Name)
	}
	if h.Symbol == "" {
		return glfw.Hint(hint), h.Value, nil
	}
	v, ok := lookupConstant(hintValueConstants, h.Symbol)
	if !ok {
		return 0, 0, fmt.Errorf("%s: unknown value %q", h.Name, h.Symbol)
	}
	return glfw.Hint(hint), v, nil
}

// ApplyHints sets each hint in order. Hints that can't be resolved are
// skipped and reported together in the returned error.
func (p *Platform) ApplyHints(hints []config.Hint) error {
	var errs []error
	for _, h := range hints {
		hint, v, err := resolveHint(h)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		p.lg.Debugf("window hint %s = %d", h.Name, v)
		glfw.WindowHint(hint, v)
	}
	return errors.Join(errs...)
}
