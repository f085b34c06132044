// pkg/event/dispatch.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package event

import "github.com/kjunichi/node-glfw/pkg/log"

// Emitter is the capability a receiver must have for events to reach it.
type Emitter interface {
	Emit(name string, ev Event)
}

// EmitterFunc adapts a function to the Emitter interface. A nil
// EmitterFunc drops events.
type EmitterFunc func(name string, ev Event)

func (f EmitterFunc) Emit(name string, ev Event) {
	if f != nil {
		f(name, ev)
	}
}

// Dispatcher delivers events to at most one receiver. The receiver is
// referenced, not owned.
type Dispatcher struct {
	receiver any
}

// Register makes h the receiver, silently replacing any previous one. h
// need not implement Emitter, but if it doesn't, events are dropped.
func (d *Dispatcher) Register(h any) { d.receiver = h }

// Receiver returns the registered receiver, if any.
func (d *Dispatcher) Receiver() any { return d.receiver }

// Dispatch hands ev to the receiver under the given name. It is a no-op
// if there is no receiver or it can't emit.
func (d *Dispatcher) Dispatch(name string, ev Event) {
	if em, ok := d.receiver.(Emitter); ok {
		em.Emit(name, ev)
	}
}

// DispatchAll dispatches each event, in order, under its own name.
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, ev := range events {
		d.Dispatch(ev.Name(), ev)
	}
}

// Context bundles the translation state of one window: its input State,
// the Encoder that updates it and the Dispatcher that delivers the result.
type Context struct {
	State      State
	Encoder    *Encoder
	Dispatcher Dispatcher
}

// NewContext returns a Context whose Encoder bounds cursor moves by size.
func NewContext(size func() (int, int), lg *log.Logger) *Context {
	c := &Context{}
	c.Encoder = NewEncoder(&c.State, size, lg)
	return c
}

// Flush drains the Encoder and dispatches what it had, returning the
// events for callers that also want to inspect them.
func (c *Context) Flush() []Event {
	ev := c.Encoder.Drain()
	c.Dispatcher.DispatchAll(ev)
	return ev
}
