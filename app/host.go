// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"image/draw"

	"github.com/sliderkit/slider/f64"
	"github.com/sliderkit/slider/gesture"
	"github.com/sliderkit/slider/io/pointer"
	"github.com/sliderkit/slider/io/router"
	"github.com/sliderkit/slider/layout"
	"github.com/sliderkit/slider/unit"
	"github.com/sliderkit/slider/widget"
	"github.com/sliderkit/slider/widget/material"
)

// Layout of the sliders of a Host, in dp.
const (
	inset     = unit.Dp(16)
	rowHeight = unit.Dp(56)
	colWidth  = unit.Dp(72)
)

// Host owns the sliders of a window. Horizontal sliders are stacked
// in rows at the top, vertical sliders stand side by side below them.
type Host struct {
	app    *App
	size   image.Point
	metric unit.Metric

	items  []*item
	pan    gesture.Pan
	router router.Router
	frame  *image.RGBA
	dirty  bool

	// target is the slider hit by the first pointer of the gesture.
	target *item
	// released is set when the target gave up the gesture.
	released bool
}

type item struct {
	slider *widget.Slider
	style  material.SliderStyle
	rect   image.Rectangle
}

// NewHost returns a host for a window of the given size in device
// pixels.
func NewHost(a *App, size image.Point, m unit.Metric) *Host {
	h := &Host{app: a}
	h.router.Root = h
	h.Resize(size, m)
	return h
}

// Resize changes the window size and metric.
func (h *Host) Resize(size image.Point, m unit.Metric) {
	if size == h.size && m == h.metric {
		return
	}
	h.size, h.metric = size, m
	h.app.Debug.Printf("resize %v scale %g", size, m.Scale())
	h.dirty = true
}

// Size returns the window size in device pixels.
func (h *Host) Size() image.Point {
	return h.size
}

// AddSlider adds a slider configured with cfg.
func (h *Host) AddSlider(cfg widget.Config) *widget.Slider {
	s := widget.NewSlider(cfg)
	h.items = append(h.items, &item{
		slider: s,
		style:  material.Slider(h.app.Theme, s),
	})
	h.dirty = true
	return s
}

// Sliders returns the sliders of the host in the order they were
// added.
func (h *Host) Sliders() []*widget.Slider {
	sliders := make([]*widget.Slider, len(h.items))
	for i, it := range h.items {
		sliders[i] = it.slider
	}
	return sliders
}

// Input feeds a device sample to the host and returns the listener
// that consumed the resulting event, if any.
func (h *Host) Input(r gesture.Raw) router.Listener {
	e, ok := h.pan.Update(r)
	if !ok {
		return nil
	}
	if h.dirty {
		h.layout()
	}
	c := h.router.Queue(e)
	h.app.Debug.Printf("%v id=%d at %v touches=%d: consumer %T", e.Kind, e.PointerID, e.Position, e.Touches, c)
	return c
}

// Active reports the number of pointers down.
func (h *Host) Active() int {
	return h.pan.Active()
}

// Captured returns the listener that consumed the current gesture.
func (h *Host) Captured() router.Listener {
	return h.router.Captured()
}

// ProcessGesture implements router.Listener. The first Down of a
// gesture selects the topmost slider under the pointer, excluding the
// right and bottom edges; the rest of the
// gesture goes to that slider until it releases the gesture.
func (h *Host) ProcessGesture(e pointer.Event, info router.Info) router.Listener {
	if e.Kind == pointer.Down && e.Touches < 2 {
		h.target, h.released = h.hit(e.Position), false
	}
	t := h.target
	release := e.Kind == pointer.Up || e.Kind == pointer.Cancel
	if release && (e.Touches == 0 || e.Kind == pointer.Cancel) {
		h.target = nil
	}
	if t == nil || (h.released && !release) {
		return nil
	}
	c := t.slider.ProcessGesture(e, info)
	if c == nil && e.Kind == pointer.Panning {
		h.app.Debug.Printf("gesture released by slider at %v", t.rect)
		h.released = true
	}
	return c
}

func (h *Host) hit(p f64.Point) *item {
	for i := len(h.items) - 1; i >= 0; i-- {
		it := h.items[i]
		if p.In(it.slider.Bounds()) {
			return it
		}
	}
	return nil
}

// layout assigns the slider rectangles and lays the sliders out.
func (h *Host) layout() {
	in := h.metric.Dp(inset)
	row := h.metric.Dp(rowHeight)
	col := h.metric.Dp(colWidth)
	y := in
	for _, it := range h.items {
		if it.slider.Config().Orientation != layout.Horizontal {
			continue
		}
		it.rect = image.Rect(in, y, h.size.X-in, y+row)
		y += row
	}
	x := in
	for _, it := range h.items {
		if it.slider.Config().Orientation != layout.Vertical {
			continue
		}
		it.rect = image.Rect(x, y, x+col, h.size.Y-in)
		x += col
	}
	for _, it := range h.items {
		it.slider.Layout(h.context(it))
		it.style.Trail.Rect = it.slider.Bounds()
	}
	h.dirty = false
}

func (h *Host) context(it *item) layout.Context {
	gtx := layout.NewContext(h.metric, h.size)
	sz := it.rect.Size()
	if sz.X < 0 {
		sz.X = 0
	}
	if sz.Y < 0 {
		sz.Y = 0
	}
	return gtx.At(f64.FPt(it.rect.Min), layout.Exact(sz))
}

// Frame lays out and draws the sliders and returns the frame. The
// returned image is reused by the next call.
func (h *Host) Frame() *image.RGBA {
	if h.frame == nil || h.frame.Bounds().Size() != h.size {
		h.frame = image.NewRGBA(image.Rectangle{Max: h.size})
	}
	h.layout()
	bg := image.NewUniform(h.app.Theme.Color.Background)
	draw.Draw(h.frame, h.frame.Bounds(), bg, image.Point{}, draw.Src)
	for _, it := range h.items {
		it.style.Layout(h.context(it), h.frame)
	}
	return h.frame
}
