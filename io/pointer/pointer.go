// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pointer implements pointer events for gesture handlers.

Events are produced by a gesture recognizer (see package gesture) from
raw device input and carry, besides the position, the distance the
pointer travelled since the gesture began and since the previous event.
*/
package pointer

import (
	"strings"
	"time"

	"github.com/sliderkit/slider/f64"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID is the id for the pointer and can be used
	// to track a particular pointer from Down to
	// Up or Cancel.
	PointerID ID
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Position is the location of the event in window
	// device pixels.
	Position f64.Point
	// Distance is the travel of the pointer in device pixels.
	Distance Distance
	// Touches is the number of pointers down when the event
	// was generated. For Up events it counts the pointers
	// that remain down.
	Touches int
}

// Distance is the travel of a pointer during a gesture.
type Distance struct {
	// Total is the distance since the Down event.
	Total f64.Point
	// Delta is the distance since the previous event of the
	// same pointer.
	Delta f64.Point
}

type ID uint16

// Kind of an Event.
type Kind uint

// Source of an Event.
type Source uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by other handlers or the system.
	Cancel Kind = 1 << iota
	// Down is the press of a pointer.
	Down
	// Panning is the move of a pressed pointer.
	Panning
	// Up is the release of a pointer.
	Up
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt > 0; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Cancel:
		return "Cancel"
	case Down:
		return "Down"
	case Panning:
		return "Panning"
	case Up:
		return "Up"
	default:
		panic("unknown Type")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown source")
	}
}
