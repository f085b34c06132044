// pkg/config/config.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/brunoga/deep"
	"github.com/iancoleman/orderedmap"
)

type Config struct {
	LogLevel string `json:"log_level"`
	LogDir   string `json:"log_dir"`

	Window WindowConfig `json:"window"`

	// Hints are passed to the windowing library, in order, before the
	// window is created. They are opaque here.
	Hints []Hint `json:"-"`

	// Overlay enables the ImGui overlay, which gets first refusal on input.
	Overlay      bool `json:"overlay"`
	SwapInterval int  `json:"swap_interval"`
	// Joystick is the joystick whose axes drive the test scene; -1 for none.
	Joystick int `json:"joystick"`
}

type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	// Monitor is the index of the monitor for a fullscreen window; -1 for
	// a regular window.
	Monitor int `json:"monitor"`
}

// Hint is a single window hint. Numeric and boolean values are resolved
// to Value; anything else is kept in Symbol for the platform to resolve.
type Hint struct {
	Name   string
	Value  int
	Symbol string
}

var defaultConfig = Config{
	LogLevel: "info",
	Window: WindowConfig{
		Width:   800,
		Height:  600,
		Title:   "glfwbridge",
		Monitor: -1,
	},
	Hints: []Hint{
		{Name: "ContextVersionMajor", Value: 2},
		{Name: "ContextVersionMinor", Value: 1},
		{Name: "Resizable", Value: 1},
	},
	Overlay:      true,
	SwapInterval: 1,
	Joystick:     -1,
}

// Default returns a fresh copy of the default configuration.
func Default() *Config {
	c := deep.MustCopy(defaultConfig)
	return &c
}

// Load reads a JSON configuration file. Fields not present in the file
// keep their default values; a "hints" object replaces the default hints.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Parse(b []byte) (*Config, error) {
	c := Default()
	if err := json.Unmarshal(b, c); err != nil {
		return nil, err
	}

	var raw struct {
		Hints *orderedmap.OrderedMap `json:"hints"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	if raw.Hints != nil {
		hints, err := parseHints(raw.Hints)
		if err != nil {
			return nil, err
		}
		c.Hints = hints
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseHints(m *orderedmap.OrderedMap) ([]Hint, error) {
	var hints []Hint
	for _, name := range m.Keys() {
		v, _ := m.Get(name)
		h := Hint{Name: name}
		switch val := v.(type) {
		case float64:
			if val != float64(int(val)) {
				return nil, fmt.Errorf("hint %s: %v is not an integer", name, val)
			}
			h.Value = int(val)
		case bool:
			if val {
				h.Value = 1
			}
		case string:
			h.Symbol = val
		default:
			return nil, fmt.Errorf("hint %s: unexpected value %v", name, v)
		}
		hints = append(hints, h)
	}
	return hints, nil
}

var (
	ErrWindowSize = errors.New("window width and height must be positive")
	ErrMonitor    = errors.New("monitor must be -1 or a monitor index")
)

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, ErrWindowSize)
	}
	if c.Window.Monitor < -1 {
		errs = append(errs, ErrMonitor)
	}
	return errors.Join(errs...)
}
