// SPDX-License-Identifier: Unlicense OR MIT

/*
Package router implements the responder chain that delivers pointer
events to a tree of listeners.

A Listener returns the listener that consumed an event, or nil to let
the event continue to the next candidate. Containers forward events to
their children through a Chain, which tries candidates in order and
stops at the first consumer. Up and Cancel events are the exception:
every candidate observes them, so that a listener that lost the
gesture still sees the pointer go away.
*/
package router

import (
	"github.com/sliderkit/slider/f64"
	"github.com/sliderkit/slider/io/pointer"
)

// Listener processes pointer events.
type Listener interface {
	// ProcessGesture handles e and returns the consuming listener,
	// or nil if e was not consumed.
	ProcessGesture(e pointer.Event, info Info) Listener
}

// Info is the coordinate context of a dispatch.
type Info struct {
	// Offset is added to event positions to translate them from
	// window device pixels into the space the listener was
	// drawn in.
	Offset f64.Point
}

// Chain is an ordered list of candidate listeners, topmost first.
type Chain []Listener

// Router delivers events to a root listener and tracks the consumer
// of the current gesture.
type Router struct {
	Root Listener

	captured Listener
}

// Dispatch delivers e to the listeners of c and returns the first
// consumer.
func (c Chain) Dispatch(e pointer.Event, info Info) Listener {
	release := e.Kind == pointer.Up || e.Kind == pointer.Cancel
	var consumed Listener
	for _, l := range c {
		if l == nil {
			continue
		}
		r := l.ProcessGesture(e, info)
		if r == nil {
			continue
		}
		if consumed == nil {
			consumed = r
		}
		if !release {
			break
		}
	}
	return consumed
}

// Queue delivers e to the root listener and returns the consumer.
func (r *Router) Queue(e pointer.Event) Listener {
	if r.Root == nil {
		return nil
	}
	consumer := r.Root.ProcessGesture(e, Info{})
	switch e.Kind {
	case pointer.Down:
		if e.Touches < 2 {
			r.captured = consumer
		}
	case pointer.Panning:
		if consumer != nil {
			r.captured = consumer
		}
	case pointer.Up:
		if e.Touches == 0 {
			r.captured = nil
		}
	case pointer.Cancel:
		r.captured = nil
	}
	return consumer
}

// Captured returns the listener that consumed the current gesture, if
// any.
func (r *Router) Captured() Listener {
	return r.captured
}
