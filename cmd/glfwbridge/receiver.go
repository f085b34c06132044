// cmd/glfwbridge/receiver.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"github.com/goforj/godump"
	"github.com/kjunichi/node-glfw/pkg/event"
	"github.com/kjunichi/node-glfw/pkg/log"
)

// logReceiver logs every event it gets; with dump set it also prints the
// host record of each one.
type logReceiver struct {
	lg   *log.Logger
	dump bool
	// skipMoves suppresses mousemove logging, which is noisy.
	skipMoves bool
}

func (r *logReceiver) Emit(name string, ev event.Event) {
	if r.skipMoves && ev.Type == event.MouseMove {
		return
	}
	rec := ev.Record()
	if b, err := rec.MarshalJSON(); err == nil {
		r.lg.Debug("event", "name", name, "record", string(b))
	} else {
		r.lg.Warnf("%s: unable to encode record: %v", name, err)
	}
	if r.dump {
		godump.Dump(rec)
	}
}
