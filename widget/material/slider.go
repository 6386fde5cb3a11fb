// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/sliderkit/slider/f64"
	"github.com/sliderkit/slider/layout"
	"github.com/sliderkit/slider/unit"
	"github.com/sliderkit/slider/widget"
)

// Slider is for selecting a value, or a range of values, between the
// bounds of s. It attaches a trail to s unless s already has one.
func Slider(th *Theme, s *widget.Slider) SliderStyle {
	trail, ok := s.Find(widget.TrailTag).(*widget.Box)
	if !ok {
		trail = &widget.Box{Name: widget.TrailTag}
		s.Add(trail)
	}
	return SliderStyle{
		Color:      th.Color.Primary,
		TextColor:  th.Color.Text,
		TrackWidth: unit.Dp(2),
		ShowLabels: true,
		Slider:     s,
		Trail:      trail,
		th:         th,
	}
}

type SliderStyle struct {
	Color      color.RGBA
	TextColor  color.RGBA
	TrackWidth unit.Dp
	// ShowLabels draws the value and bound descriptions.
	ShowLabels bool
	Slider     *widget.Slider
	Trail      *widget.Box

	th *Theme
}

// Layout lays out the slider in the minimum constraints, extended to
// fit a thumb and the labels, and draws it into dst.
func (s SliderStyle) Layout(gtx layout.Context, dst draw.Image) layout.Dimensions {
	cfg := s.Slider.Config()
	o := cfg.Orientation
	scale := gtx.Metric.Scale()
	h := float64(cfg.SliderHeight) * scale

	face := s.th.face(gtx.Metric)
	labelExtent := 0
	if s.ShowLabels && face != nil {
		m := face.Metrics()
		labelExtent = (m.Height + m.Descent).Ceil()
	}

	// Keep a minimum cross size so that a thumb always fits.
	size := o.Convert(gtx.Constraints.Min)
	if minCross := int(math.Ceil(h)) + labelExtent; size.Y < minCross {
		size.Y = minCross
	}
	gtx.Constraints.Min = gtx.Constraints.Constrain(o.Convert(size))
	size = o.Convert(gtx.Constraints.Min)
	dims := s.Slider.Layout(gtx)

	b := s.Slider.Bounds()
	s.Trail.Rect = b
	st := s.Slider.State()

	// pt maps a position along and across the slider to window
	// device pixels.
	pt := func(main, cross float64) f64.Point {
		if o == layout.Horizontal {
			return b.Min.Add(f64.Pt(main, cross))
		}
		return b.Min.Add(f64.Pt(cross, main))
	}
	span := func(m0, m1, c0, c1 float64) f64.Rectangle {
		return f64.Rectangle{Min: pt(m0, c0), Max: pt(m1, c1)}.Canon()
	}
	// center is the main axis position of the middle of a thumb at
	// offset x.
	center := func(x float64) float64 {
		return (x + float64(cfg.SliderHeight)/2) * scale
	}

	col := s.Color
	if !cfg.RespondsToGestures {
		col = mulAlpha(col, 150)
	}
	length := float64(size.X)
	pad := float64(cfg.AvailableWidthAdjustment) * scale
	lo := math.Max(h/2-pad, 0)
	hi := math.Min(length+pad-h/2, length)
	mid := h / 2
	tw := math.Max(float64(s.TrackWidth)*scale, 1) / 2

	// Draw track before thumbs.
	fillRect(dst, span(lo, hi, mid-tw, mid+tw), mulAlpha(col, 96))

	endC := center(st.EndThumbX)
	var fillFrom, fillTo float64
	switch {
	case cfg.EnableRange:
		fillFrom, fillTo = center(st.StartThumbX), endC
	case cfg.Invert:
		fillFrom, fillTo = endC, hi
	default:
		fillFrom, fillTo = lo, endC
	}
	if fillFrom > fillTo {
		fillFrom, fillTo = fillTo, fillFrom
	}
	fillRect(dst, span(fillFrom, fillTo, mid-tw, mid+tw), col)

	// Draw thumbs.
	icon := s.th.Icon.SwapHoriz
	if o == layout.Vertical {
		icon = s.th.Icon.SwapVert
	}
	thumb := func(x float64, area widget.TouchArea) {
		c := pt(center(x), mid)
		if st.IsPressed && st.TouchArea == area {
			fillCircle(dst, c, h*0.75, mulAlpha(col, 60))
		}
		fillCircle(dst, c, h/2, col)
		if icon == nil {
			return
		}
		isz := int(h * 0.6)
		icon.Color = s.th.Color.InvText
		at := c.Sub(f64.Pt(float64(isz)/2, float64(isz)/2)).Round()
		icon.Draw(dst, image.Rectangle{Min: at, Max: at.Add(image.Pt(isz, isz))})
	}
	if cfg.EnableRange {
		thumb(st.StartThumbX, widget.StartThumb)
	}
	thumb(st.EndThumbX, widget.EndThumb)

	if labelExtent == 0 {
		return dims
	}
	ascent := float64(face.Metrics().Ascent.Ceil())
	// Horizontal labels center below a thumb; vertical labels start
	// beside it.
	label := func(text string, main float64) {
		if o == layout.Horizontal {
			p := pt(main, h+ascent)
			drawText(dst, face, s.TextColor, text, p.X, p.Y, 0)
			return
		}
		p := pt(main, h)
		drawText(dst, face, s.TextColor, text, p.X, p.Y+ascent/2, -1)
	}
	minDesc, maxDesc := st.MinDesc, st.MaxDesc
	if cfg.Invert {
		minDesc, maxDesc = maxDesc, minDesc
	}
	hint := s.th.Color.Hint
	if o == layout.Horizontal {
		p := pt(0, h+ascent)
		drawText(dst, face, hint, minDesc, p.X, p.Y, -1)
		p = pt(length, h+ascent)
		drawText(dst, face, hint, maxDesc, p.X, p.Y, 1)
	}
	if cfg.EnableRange {
		label(st.StartDesc, center(st.StartThumbX))
	}
	label(st.EndDesc, endC)
	return dims
}
