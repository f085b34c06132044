// cmd/glfwbridge/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// glfwbridge opens a window through pkg/platform, logs the events it
// translates, and draws a test scene: a spinning triangle, or one driven
// by a joystick's axes if one is configured and present.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/kjunichi/node-glfw/pkg/config"
	"github.com/kjunichi/node-glfw/pkg/log"
	"github.com/kjunichi/node-glfw/pkg/overlay"
	"github.com/kjunichi/node-glfw/pkg/platform"
	"github.com/kjunichi/node-glfw/pkg/scene"
	"github.com/ncruces/zenity"
)

var (
	configFile    = flag.String("config", "", "JSON configuration file")
	logLevel      = flag.String("loglevel", "", "logging level: debug, info, warn, error (overrides config)")
	logDir        = flag.String("logdir", "", "log file directory (overrides config)")
	dumpEvents    = flag.Bool("dump", false, "print each event record to stdout")
	waitEvents    = flag.Bool("wait", false, "block for events rather than redrawing continuously")
	listConstants = flag.Bool("constants", false, "print the GLFW constant table as JSON and exit")
	listMonitors  = flag.Bool("monitors", false, "print the connected monitors and exit")
)

func main() {
	flag.Parse()
	attachConsole()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	lg := log.New(cfg.LogLevel, cfg.LogDir)

	if *listConstants {
		b, err := json.MarshalIndent(platform.Constants(), "", "  ")
		if err != nil {
			fatal(lg, err)
		}
		fmt.Println(string(b))
		return
	}

	if err := runPlatform(cfg, lg); err != nil {
		fatal(lg, err)
	}
}

// runPlatform runs a GLFW session; GLFW has been terminated by the time it
// returns.
func runPlatform(cfg *config.Config, lg *log.Logger) error {
	logSystemInfo(lg)

	open := func() (*platform.Platform, error) { return platform.New(lg) }
	return withPlatform(open, func(p *platform.Platform) error {
		if *listMonitors {
			for _, m := range p.Monitors() {
				fmt.Printf("%d: %s%s %dx%d@%dHz at (%d,%d), %dx%dmm\n", m.Index, m.Name,
					primaryTag(m.IsPrimary), m.Mode.Width, m.Mode.Height, m.Mode.RefreshRate,
					m.X, m.Y, m.WidthMM, m.HeightMM)
			}
			return nil
		}
		return run(p, cfg, lg)
	})
}

type terminator interface {
	Terminate()
}

// withPlatform opens a session, runs body with it and terminates it before
// returning body's error.
func withPlatform[P terminator](open func() (P, error), body func(P) error) error {
	p, err := open()
	if err != nil {
		return err
	}
	defer p.Terminate()
	return body(p)
}

// loadConfig returns the defaults, or the file's configuration merged over
// them, with command-line overrides applied.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logDir != "" {
		cfg.LogDir = *logDir
	}
	return cfg, cfg.Validate()
}

func run(p *platform.Platform, cfg *config.Config, lg *log.Logger) error {
	p.DefaultWindowHints()
	if err := p.ApplyHints(cfg.Hints); err != nil {
		lg.Warnf("window hints: %v", err)
	}

	var ov *overlay.Imgui
	if cfg.Overlay {
		ov = overlay.New(lg)
		defer ov.Close()
		p.SetOverlay(ov)
	}

	stats := newEventStats(&logReceiver{lg: lg, dump: *dumpEvents, skipMoves: !*dumpEvents}, lg)
	stats.StartSession()
	defer stats.EndSession()

	w := cfg.Window
	h, err := p.CreateWindow(w.Width, w.Height, w.Title, w.Monitor, stats)
	if err != nil {
		return err
	}
	defer p.DestroyWindow(h)
	p.SwapInterval(cfg.SwapInterval)

	if cfg.Joystick >= 0 {
		if p.JoystickPresent(cfg.Joystick) {
			lg.Infof("joystick %d: %s", cfg.Joystick, p.JoystickName(cfg.Joystick))
		} else {
			lg.Warnf("joystick %d: not present", cfg.Joystick)
		}
	}

	last := p.Time()
	for !p.WindowShouldClose(h) && !stats.QuitRequested() {
		if *waitEvents {
			p.Dispatch(p.WaitEvents())
		} else {
			p.Dispatch(p.PollEvents())
		}

		now := p.Time()
		if ov != nil {
			ov.Frame(now - last)
		}
		last = now

		fw, fh := p.FramebufferSize(h)
		if cfg.Joystick >= 0 && p.JoystickPresent(cfg.Joystick) {
			scene.Joystick(fw, fh, scene.TransformFromAxes(p.JoystickAxes(cfg.Joystick)))
		} else {
			scene.Triangle(fw, fh, 0, now)
		}
		p.SwapBuffers(h)
	}
	return nil
}

func primaryTag(primary bool) string {
	if primary {
		return " (primary)"
	}
	return ""
}

// fatal reports an unrecoverable error both in the log and in a dialog box,
// since we may not have a console to write to. Platform sessions must
// already be shut down; it exits without running deferred calls.
func fatal(lg *log.Logger, err error) {
	lg.Errorf("%v", err)
	msg := fatalMessage(lg, err)
	if zerr := zenity.Error(msg, zenity.Title("glfwbridge"), zenity.ErrorIcon); zerr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", msg)
	}
	os.Exit(1)
}

func fatalMessage(lg *log.Logger, err error) string {
	msg := err.Error()
	if errors.Is(err, platform.ErrInvalidMonitor) {
		msg += "\n\nRun with -monitors to list the available monitors."
	}
	if lg != nil && lg.LogFile != "" {
		msg += "\n\nSee " + lg.LogFile + " for details."
	}
	return msg
}
