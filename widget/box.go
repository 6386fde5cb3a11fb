// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/sliderkit/slider/f64"
	"github.com/sliderkit/slider/io/pointer"
	"github.com/sliderkit/slider/io/router"
)

// Element is a child of a container that can be looked up by tag and
// hit tested.
type Element interface {
	router.Listener
	Tag() string
	// HitTest reports whether p, in window device pixels, lies
	// inside the element.
	HitTest(p f64.Point) bool
}

// Box is a rectangular Element, such as the trail of a slider. Its
// owner updates Rect when it lays the box out.
type Box struct {
	Name string
	// Rect is the area of the box in window device pixels.
	Rect f64.Rectangle
	// Consume makes the box consume presses inside Rect.
	Consume bool

	pressed bool
}

// Tag implements Element.
func (b *Box) Tag() string {
	return b.Name
}

// HitTest implements Element.
func (b *Box) HitTest(p f64.Point) bool {
	return b.Rect.Contains(p)
}

// Pressed reports whether a pointer pressed inside the box is still
// down.
func (b *Box) Pressed() bool {
	return b.pressed
}

// ProcessGesture implements router.Listener.
func (b *Box) ProcessGesture(e pointer.Event, info router.Info) router.Listener {
	switch e.Kind {
	case pointer.Down:
		if !b.HitTest(e.Position.Add(info.Offset)) {
			return nil
		}
		b.pressed = true
		if b.Consume {
			return b
		}
	case pointer.Up, pointer.Cancel:
		if e.Touches < 2 {
			b.pressed = false
		}
	}
	return nil
}
