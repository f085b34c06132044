// cmd/glfwbridge/stats_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kjunichi/node-glfw/pkg/event"
)

func TestEventStats(t *testing.T) {
	var forwarded []string
	stats := newEventStats(event.EmitterFunc(func(name string, ev event.Event) {
		forwarded = append(forwarded, name)
	}), nil)

	// Nothing is counted outside a session, but events are still forwarded.
	stats.Emit("keydown", event.Event{Type: event.KeyDown})
	if stats.Count(event.KeyDown) != 0 {
		t.Errorf("counted an event with no session")
	}

	stats.StartSession()
	for _, ty := range []event.Type{event.KeyDown, event.KeyUp, event.KeyDown, event.MouseMove} {
		stats.Emit(ty.String(), event.Event{Type: ty})
	}
	if n := stats.Count(event.KeyDown); n != 2 {
		t.Errorf("keydown count %d, expected 2", n)
	}
	if n := stats.Count(event.MouseMove); n != 1 {
		t.Errorf("mousemove count %d, expected 1", n)
	}
	if stats.QuitRequested() {
		t.Errorf("quit requested before quit event")
	}

	stats.Emit("quit", event.Event{Type: event.Quit})
	if !stats.QuitRequested() {
		t.Errorf("quit event not noticed")
	}
	if len(forwarded) != 6 || forwarded[5] != "quit" {
		t.Errorf("forwarded %v", forwarded)
	}

	// A new session starts from zero.
	stats.StartSession()
	if stats.Count(event.KeyDown) != 0 || stats.QuitRequested() {
		t.Errorf("session state carried over")
	}
	stats.EndSession()
	if stats.Count(event.KeyDown) != 0 {
		t.Errorf("counts survive EndSession")
	}
}

func TestFormatSession(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, c := range []struct {
		counts map[event.Type]int
		d      time.Duration
		want   string
	}{
		{map[event.Type]int{}, 5 * time.Second, "5s: none"},
		{map[event.Type]int{event.MouseMove: 40, event.KeyDown: 3}, 12 * time.Second,
			"12s: keydown=3 mousemove=40"},
		{map[event.Type]int{event.Quit: 1, event.Resize: 2}, 125 * time.Second,
			"2m05s: resize=2 quit=1"},
	} {
		sess := &eventSession{Start: start, Counts: c.counts}
		if got := formatSession(sess, start.Add(c.d)); got != c.want {
			t.Errorf("formatSession = %q, expected %q", got, c.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("default window %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	fn := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(fn, []byte(`{"window": {"width": 0, "height": 10}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(fn); err == nil {
		t.Errorf("expected error for zero window width")
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestLogReceiverSkipsMoves(t *testing.T) {
	// A nil logger is fine; this just must not panic.
	r := &logReceiver{skipMoves: true}
	r.Emit("mousemove", event.Event{Type: event.MouseMove})
	r.Emit("keydown", event.Event{Type: event.KeyDown, KeyCode: 65, Which: 65})
}
