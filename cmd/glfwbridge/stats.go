// cmd/glfwbridge/stats.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/kjunichi/node-glfw/pkg/event"
	"github.com/kjunichi/node-glfw/pkg/log"
)

// eventSession tracks the events seen since the window was created.
type eventSession struct {
	Start  time.Time
	Counts map[event.Type]int
	Quit   bool
}

// eventStats is a receiver that counts events by type and forwards them
// to next, if set.
type eventStats struct {
	session *eventSession
	next    event.Emitter
	mu      sync.Mutex
	lg      *log.Logger
}

func newEventStats(next event.Emitter, lg *log.Logger) *eventStats {
	return &eventStats{next: next, lg: lg}
}

func (s *eventStats) StartSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil {
		s.reportSessionLocked()
	}
	s.session = &eventSession{Start: time.Now(), Counts: make(map[event.Type]int)}
}

// EndSession logs a summary of the current session and clears it.
func (s *eventStats) EndSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reportSessionLocked()
}

// Must be called with s.mu held.
func (s *eventStats) reportSessionLocked() {
	if s.session == nil {
		return
	}
	s.lg.Infof("events: %s", formatSession(s.session, time.Now()))
	s.session = nil
}

func (s *eventStats) Emit(name string, ev event.Event) {
	s.mu.Lock()
	if s.session != nil {
		s.session.Counts[ev.Type]++
		if ev.Type == event.Quit {
			s.session.Quit = true
		}
	}
	s.mu.Unlock()

	if s.next != nil {
		s.next.Emit(name, ev)
	}
}

func (s *eventStats) Count(t event.Type) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return 0
	}
	return s.session.Counts[t]
}

// QuitRequested reports whether a quit event has been seen this session.
func (s *eventStats) QuitRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil && s.session.Quit
}

// formatSession gives the counts in event type order, e.g.
// "12s: keydown=3 mousemove=40".
func formatSession(sess *eventSession, now time.Time) string {
	var types []event.Type
	for t := range sess.Counts {
		types = append(types, t)
	}
	slices.Sort(types)

	var b strings.Builder
	b.WriteString(formatDuration(now.Sub(sess.Start)))
	b.WriteString(":")
	if len(types) == 0 {
		b.WriteString(" none")
	}
	for _, t := range types {
		fmt.Fprintf(&b, " %s=%d", t, sess.Counts[t])
	}
	return b.String()
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}
