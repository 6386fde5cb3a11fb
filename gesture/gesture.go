// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Pan accepts low level device input (press, move and release of
identified pointers) and reduces it to pointer Events that carry the
travelled distance and the number of active touches. DominantAxis
classifies the direction of such a travel so that a handler can release
gestures that move the wrong way.
*/
package gesture

import (
	"math"
	"time"

	"github.com/sliderkit/slider/f64"
	"github.com/sliderkit/slider/io/pointer"
)

// DirectionBias is the share of the travel that must lie along one
// axis for DominantAxis to report it.
const DirectionBias = 0.8

type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// RawKind is the kind of a device input sample.
type RawKind uint8

const (
	RawPress RawKind = iota
	RawMove
	RawRelease
	RawCancel
)

// Raw is a device input sample in window device pixels.
type Raw struct {
	Kind     RawKind
	ID       pointer.ID
	Source   pointer.Source
	Position f64.Point
	Time     time.Duration
}

// Pan turns Raw samples into pointer events of kind Down, Panning, Up
// and Cancel.
type Pan struct {
	pointers []panPointer
}

type panPointer struct {
	id    pointer.ID
	start f64.Point
	last  f64.Point
}

// DominantAxis reports the axis that carries at least bias of the
// travel d, measured as the share of |dx|+|dy|. It reports false when
// neither axis dominates or d is zero.
func DominantAxis(d f64.Point, bias float64) (Axis, bool) {
	dx, dy := math.Abs(d.X), math.Abs(d.Y)
	sum := dx + dy
	if sum == 0 {
		return Horizontal, false
	}
	switch {
	case dx/sum >= bias:
		return Horizontal, true
	case dy/sum >= bias:
		return Vertical, true
	}
	return Horizontal, false
}

// Update feeds a sample to the recognizer. It returns false for samples
// that produce no event: moves of pointers that are not down, moves
// without travel and releases of unknown pointers.
func (p *Pan) Update(r Raw) (pointer.Event, bool) {
	e := pointer.Event{
		Source:    r.Source,
		PointerID: r.ID,
		Time:      r.Time,
		Position:  r.Position,
	}
	switch r.Kind {
	case RawPress:
		if i := p.index(r.ID); i >= 0 {
			p.pointers = append(p.pointers[:i], p.pointers[i+1:]...)
		}
		p.pointers = append(p.pointers, panPointer{id: r.ID, start: r.Position, last: r.Position})
		e.Kind = pointer.Down
		e.Touches = len(p.pointers)
		return e, true
	case RawMove:
		i := p.index(r.ID)
		if i < 0 {
			return e, false
		}
		pp := &p.pointers[i]
		if r.Position == pp.last {
			return e, false
		}
		e.Kind = pointer.Panning
		e.Distance = pointer.Distance{
			Total: r.Position.Sub(pp.start),
			Delta: r.Position.Sub(pp.last),
		}
		e.Touches = len(p.pointers)
		pp.last = r.Position
		return e, true
	case RawRelease:
		i := p.index(r.ID)
		if i < 0 {
			return e, false
		}
		pp := p.pointers[i]
		p.pointers = append(p.pointers[:i], p.pointers[i+1:]...)
		e.Kind = pointer.Up
		e.Distance = pointer.Distance{
			Total: r.Position.Sub(pp.start),
			Delta: r.Position.Sub(pp.last),
		}
		e.Touches = len(p.pointers)
		return e, true
	case RawCancel:
		if len(p.pointers) == 0 {
			return e, false
		}
		p.pointers = p.pointers[:0]
		e.Kind = pointer.Cancel
		return e, true
	default:
		panic("unknown RawKind")
	}
}

// Active reports the number of pointers down.
func (p *Pan) Active() int {
	return len(p.pointers)
}

func (p *Pan) index(id pointer.ID) int {
	for i, pp := range p.pointers {
		if pp.id == id {
			return i
		}
	}
	return -1
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}
