// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"

	"github.com/sliderkit/slider/f64"
	"github.com/sliderkit/slider/unit"
)

// Context carries the state needed by almost all layouts and widgets.
// A zero value Context never returns events, uses a rendering scale
// of 1 and places widgets at the window origin.
type Context struct {
	// Constraints track the constraints for the active widget or
	// layout, in device pixels.
	Constraints Constraints

	// Metric is the rendering scale of the surface.
	unit.Metric
	// Offset is the position of the active widget in window device
	// pixels.
	Offset f64.Point
}

// NewContext returns a Context for a surface of the given size.
func NewContext(m unit.Metric, size image.Point) Context {
	return Context{
		Metric:      m,
		Constraints: Exact(size),
	}
}

// At returns a copy of c offset by d device pixels and with the
// constraints cs.
func (c Context) At(d f64.Point, cs Constraints) Context {
	c.Offset = c.Offset.Add(d)
	c.Constraints = cs
	return c
}

// Rect returns the rectangle of a widget of size sz laid out at the
// context offset.
func (c Context) Rect(sz image.Point) f64.Rectangle {
	return f64.FRect(image.Rectangle{Max: sz}).Add(c.Offset)
}
