// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/sliderkit/slider/f64"
	"github.com/sliderkit/slider/gesture"
	"github.com/sliderkit/slider/io/pointer"
	"github.com/sliderkit/slider/io/router"
	"github.com/sliderkit/slider/layout"
	"github.com/sliderkit/slider/unit"
)

// TrailTag is the tag of the child element a Slider uses as its
// trail.
const TrailTag = "Trail"

// TouchArea identifies the thumb that owns the active gesture.
type TouchArea uint8

const (
	Unknown TouchArea = iota
	StartThumb
	EndThumb
)

// Config is the configuration of a Slider. Lengths are in dp.
type Config struct {
	// Min and Max bound the values of the slider.
	Min, Max float64
	// Step quantizes values. Zero disables quantization.
	Step float64
	// RangeMin is the minimum distance between Start and End of
	// a ranged slider, in value units.
	RangeMin float64
	// SliderHeight is the size of a thumb.
	SliderHeight unit.Dp
	// HotspotMargin enlarges the thumb hit areas along the
	// slider.
	HotspotMargin unit.Dp
	// AvailableWidthAdjustment pads the thumb travel on both
	// ends.
	AvailableWidthAdjustment unit.Dp
	Orientation              layout.Axis
	// Invert maps Max to the leading edge.
	Invert bool
	// EnableRange enables the Start thumb.
	EnableRange bool
	// ClickOnTrailEnabled moves the nearest thumb to a press on
	// the trail.
	ClickOnTrailEnabled bool
	// IgnoreWrongDirection releases gestures that start moving
	// across the slider so that an enclosing scroller can take
	// them.
	IgnoreWrongDirection bool
	// RespondsToGestures enables pointer input.
	RespondsToGestures bool
	// ValueFormat and MinMaxFormat are the numeric masks of the
	// value and bound descriptions.
	ValueFormat  string
	MinMaxFormat string
}

// State is a snapshot of the state of a Slider.
type State struct {
	Start, End             float64
	StartThumbX, EndThumbX float64
	StepValue              float64
	IsPressed              bool
	IsUserPanning          bool
	TouchArea              TouchArea
	StartDesc, EndDesc     string
	MinDesc, MaxDesc       string
}

// Slider selects a value, or a range of values, by dragging thumbs
// along a trail. For a non-ranged slider End is the value.
//
// Offsets are the positions of the thumbs along the slider in dp.
// While the user drags, offsets are authoritative and values follow
// them; otherwise values are authoritative and offsets follow.
type Slider struct {
	// StartChanged and EndChanged, if set, are called when the
	// respective value is committed.
	StartChanged func(start float64)
	EndChanged   func(end float64)

	cfg Config

	start, end       float64
	startX, endX     float64
	stepValue        float64
	startDesc        string
	endDesc          string
	minDesc, maxDesc string

	pressed   bool
	panning   bool
	dragging  bool
	touchArea TouchArea
	anchor    float64
	downAt    f64.Point

	// Geometry from the last Layout.
	length, cross float64
	scale         float64
	drawn         f64.Rectangle

	children  router.Chain
	trail     Element
	observers observers
	locked    bool
	changed   bool
}

// DefaultConfig returns the configuration of a horizontal slider from
// 0 to 100 in steps of 1.
func DefaultConfig() Config {
	return Config{
		Min:                  0,
		Max:                  100,
		Step:                 1,
		SliderHeight:         22,
		HotspotMargin:        10,
		ClickOnTrailEnabled:  true,
		IgnoreWrongDirection: true,
		RespondsToGestures:   true,
		ValueFormat:          DefaultFormat,
		MinMaxFormat:         DefaultFormat,
	}
}

// NewSlider returns a slider with Start at cfg.Min and End at
// cfg.Max.
func NewSlider(cfg Config) *Slider {
	s := &Slider{
		cfg:   cfg,
		start: cfg.Min,
		end:   cfg.Max,
		scale: 1,
	}
	s.updateBoundDescs()
	s.recoerce()
	return s
}

// Config returns the configuration of s.
func (s *Slider) Config() Config {
	return s.cfg
}

// SetConfig replaces the configuration of s. Start and End are
// coerced into the new bounds and the thumbs are repositioned.
func (s *Slider) SetConfig(cfg Config) {
	s.cfg = cfg
	s.notify(PropConfig)
	s.updateBoundDescs()
	s.recoerce()
}

// SetMin sets the lower bound.
func (s *Slider) SetMin(v float64) {
	if s.cfg.Min == v {
		return
	}
	s.cfg.Min = v
	s.updateBoundDescs()
	s.recoerce()
}

// SetMax sets the upper bound.
func (s *Slider) SetMax(v float64) {
	if s.cfg.Max == v {
		return
	}
	s.cfg.Max = v
	s.updateBoundDescs()
	s.recoerce()
}

// SetStep sets the quantization step.
func (s *Slider) SetStep(v float64) {
	if s.cfg.Step == v {
		return
	}
	s.cfg.Step = v
	s.recoerce()
}

// Start returns the start value of a ranged slider.
func (s *Slider) Start() float64 {
	return s.start
}

// End returns the end value, the value of a non-ranged slider.
func (s *Slider) End() float64 {
	return s.end
}

// SetStart quantizes v to the step, clamps it to the bounds and
// commits it as the start value.
func (s *Slider) SetStart(v float64) {
	v = s.coerce(v)
	if v == s.start {
		return
	}
	s.start = v
	s.changed = true
	s.notify(PropStart)
	if s.StartChanged != nil {
		s.StartChanged(v)
	}
	s.update()
}

// SetEnd quantizes v to the step, clamps it to the bounds and commits
// it as the end value.
func (s *Slider) SetEnd(v float64) {
	v = s.coerce(v)
	if v == s.end {
		return
	}
	s.end = v
	s.changed = true
	s.notify(PropEnd)
	if s.EndChanged != nil {
		s.EndChanged(v)
	}
	s.update()
}

// State returns a snapshot of the state of s.
func (s *Slider) State() State {
	return State{
		Start:         s.start,
		End:           s.end,
		StartThumbX:   s.startX,
		EndThumbX:     s.endX,
		StepValue:     s.stepValue,
		IsPressed:     s.pressed,
		IsUserPanning: s.panning,
		TouchArea:     s.touchArea,
		StartDesc:     s.startDesc,
		EndDesc:       s.endDesc,
		MinDesc:       s.minDesc,
		MaxDesc:       s.maxDesc,
	}
}

// Dragging reports whether a thumb is being dragged.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// Changed reports whether a value has changed since the last call to
// Changed.
func (s *Slider) Changed() bool {
	changed := s.changed
	s.changed = false
	return changed
}

// Add appends a child element. Children receive pointer events before
// the slider unless a thumb is being dragged.
func (s *Slider) Add(l router.Listener) {
	s.children = append(s.children, l)
	s.trail = nil
}

// Find returns the first child element with the tag, or nil.
func (s *Slider) Find(tag string) Element {
	for _, c := range s.children {
		if e, ok := c.(Element); ok && e.Tag() == tag {
			return e
		}
	}
	return nil
}

// Layout records the geometry of the slider. The slider fills the
// minimum constraints; its length is the main axis of that size.
func (s *Slider) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Min
	scale := gtx.Metric.Scale()
	s.drawn = gtx.Rect(size)
	if s.trail == nil {
		s.trail = s.Find(TrailTag)
	}
	sz := s.cfg.Orientation.Convert(size)
	length := float64(gtx.Metric.PxToDp(float64(sz.X)))
	cross := float64(gtx.Metric.PxToDp(float64(sz.Y)))
	if length != s.length || cross != s.cross || scale != s.scale {
		s.length, s.cross, s.scale = length, cross, scale
		s.update()
	}
	return layout.Dimensions{Size: size}
}

// Bounds returns the rectangle of the last Layout in window device
// pixels.
func (s *Slider) Bounds() f64.Rectangle {
	return s.drawn
}

// ProcessGesture implements router.Listener.
func (s *Slider) ProcessGesture(e pointer.Event, info router.Info) router.Listener {
	passed := false
	passToChildren := func() router.Listener {
		passed = true
		return s.children.Dispatch(e, info)
	}

	release := e.Kind == pointer.Up || e.Kind == pointer.Cancel
	var consumed router.Listener
	// Releases always reach the children first.
	if release || !s.panning || !s.cfg.RespondsToGestures {
		if e.Touches < 2 {
			s.dragging = false
		}
		consumed = passToChildren()
		if consumed != nil && !release {
			return consumed
		}
	}
	if !s.cfg.RespondsToGestures {
		return consumed
	}

	switch e.Kind {
	case pointer.Down:
		if e.Touches < 2 {
			s.panning = false
			s.downAt = e.Position
		}
		if s.press(e, info) {
			consumed = s
		}
	case pointer.Panning:
		if e.Touches != 1 {
			break
		}
		if !s.panning && s.cfg.IgnoreWrongDirection && !s.alongAxis(e) {
			return nil
		}
		s.panning = true
		if s.touchArea != Unknown {
			s.dragging = true
			s.drag(e)
		}
		consumed = s
	case pointer.Up, pointer.Cancel:
		if e.Touches < 2 {
			s.panning = false
			s.setPressed(false)
		}
	}

	if consumed != nil || s.panning {
		if consumed == nil {
			return s
		}
		return consumed
	}
	if !passed {
		return passToChildren()
	}
	return nil
}

// press classifies a Down event and reports whether a thumb captured
// it.
func (s *Slider) press(e pointer.Event, info router.Info) bool {
	p := e.Position.Add(info.Offset)
	loc := p.Sub(s.drawn.Min).Div(s.scale)
	main := s.cfg.Orientation.Main(loc.X, loc.Y)
	cross := s.cfg.Orientation.Cross(loc.X, loc.Y)

	switch {
	case s.cfg.EnableRange && s.hotspot(s.startX).Contains(f64.Pt(main, cross)):
		s.touchArea = StartThumb
	case s.hotspot(s.endX).Contains(f64.Pt(main, cross)):
		s.touchArea = EndThumb
	default:
		s.touchArea = Unknown
	}

	if s.trail == nil {
		s.trail = s.Find(TrailTag)
	}
	onTrail := true
	if s.trail != nil {
		onTrail = s.trail.HitTest(p)
	}
	if onTrail || s.touchArea != Unknown {
		s.setPressed(true)
	}

	if s.touchArea == Unknown && s.cfg.ClickOnTrailEnabled && onTrail {
		half := float64(s.cfg.SliderHeight) / 2
		if s.cfg.EnableRange && main <= (s.length+s.pad())/2 {
			s.MoveStartThumb(main - half)
		} else {
			s.MoveEndThumb(main - half)
		}
	}

	switch s.touchArea {
	case StartThumb:
		s.anchor = s.startX
	case EndThumb:
		s.anchor = s.endX
	default:
		return false
	}
	return true
}

// alongAxis reports whether the travel of the gesture so far runs
// along the slider.
func (s *Slider) alongAxis(e pointer.Event) bool {
	travel := e.Distance.Total
	if travel == (f64.Point{}) {
		travel = e.Position.Sub(s.downAt)
	}
	axis, ok := gesture.DominantAxis(travel, gesture.DirectionBias)
	return ok && axis == gesture.Axis(s.cfg.Orientation)
}

// drag moves the active thumb by the frame delta of e.
func (s *Slider) drag(e pointer.Event) {
	d := e.Distance.Delta
	delta := s.cfg.Orientation.Main(d.X, d.Y) / s.scale
	switch s.touchArea {
	case StartThumb:
		s.anchor = s.startX
		s.SetStartOffsetClamped(s.anchor + delta)
	case EndThumb:
		s.anchor = s.endX
		s.SetEndOffsetClamped(s.anchor + delta)
	}
	s.recalculateValues()
}

// hotspot returns the hit area of a thumb at offset x in (main, cross)
// coordinates.
func (s *Slider) hotspot(x float64) f64.Rectangle {
	h := float64(s.cfg.SliderHeight)
	m := float64(s.cfg.HotspotMargin)
	cross := s.cross
	if cross < h {
		cross = h
	}
	return f64.Rect(x-m, 0, x+h+m, cross)
}

// MoveStartThumb moves the start thumb to offset x, updates the values
// and makes the start thumb the active one. It does nothing unless
// ClickOnTrailEnabled is set.
func (s *Slider) MoveStartThumb(x float64) {
	if !s.cfg.ClickOnTrailEnabled {
		return
	}
	s.touchArea = StartThumb
	func() {
		defer s.suspend()()
		s.SetStartOffsetClamped(x)
	}()
	s.recalculateValues()
}

// MoveEndThumb is like MoveStartThumb for the end thumb.
func (s *Slider) MoveEndThumb(x float64) {
	if !s.cfg.ClickOnTrailEnabled {
		return
	}
	s.touchArea = EndThumb
	func() {
		defer s.suspend()()
		s.SetEndOffsetClamped(x)
	}()
	s.recalculateValues()
}

func (s *Slider) setPressed(v bool) {
	if s.pressed == v {
		return
	}
	s.pressed = v
	s.notify(PropIsPressed)
}
