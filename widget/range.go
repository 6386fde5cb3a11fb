// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"
)

// AdjustToStepValue rounds v to the nearest multiple of step counted
// from min. A step <= 0 returns v unchanged.
func AdjustToStepValue(v, min, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round((v-min)/step)*step + min
}

// ValueFromPosition converts a thumb offset to a value. It returns Min
// while the slider has no room for the thumbs to travel.
func (s *Slider) ValueFromPosition(p float64) float64 {
	l := s.travel()
	min, max := s.cfg.Min, s.cfg.Max
	if l <= 0 {
		return min
	}
	ratio := p / l
	if s.cfg.Invert {
		return max - ratio*(max-min)
	}
	return min + ratio*(max-min)
}

// PositionFromValue converts a value to a thumb offset. It returns 0
// while the slider has no room for the thumbs to travel.
func (s *Slider) PositionFromValue(v float64) float64 {
	l := s.travel()
	min, max := s.cfg.Min, s.cfg.Max
	if l <= 0 || max == min {
		return 0
	}
	var ratio float64
	if s.cfg.Invert {
		ratio = (max - v) / (max - min)
	} else {
		ratio = (v - min) / (max - min)
	}
	return ratio * l
}

// SetStartOffsetClamped moves the start thumb to offset x, limited by
// the slider ends and, for ranged sliders, by the end thumb.
func (s *Slider) SetStartOffsetClamped(x float64) {
	s.setStartX(clamp(x, s.startMin(), s.startMax()))
}

// SetEndOffsetClamped moves the end thumb to offset x, limited by the
// slider ends and, for ranged sliders, by the start thumb.
func (s *Slider) SetEndOffsetClamped(x float64) {
	s.setEndX(clamp(x, s.endMin(), s.endMax()))
}

// clamp limits v to [min, max], testing min first. NaN maps to min.
func clamp(v, min, max float64) float64 {
	if v < min || math.IsNaN(v) {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (s *Slider) pad() float64 {
	return float64(s.cfg.AvailableWidthAdjustment)
}

// travel is the distance a thumb can move.
func (s *Slider) travel() float64 {
	return s.length + s.pad() - float64(s.cfg.SliderHeight)
}

func (s *Slider) lowest() float64 {
	return -s.pad()
}

func (s *Slider) highest() float64 {
	return s.length + s.pad() - float64(s.cfg.SliderHeight)
}

// gap is the minimum thumb separation in dp.
func (s *Slider) gap() float64 {
	if s.stepValue <= 0 {
		return 0
	}
	return s.cfg.RangeMin / s.stepValue
}

func (s *Slider) startMin() float64 {
	if s.cfg.Invert && s.cfg.EnableRange {
		return s.endX + s.gap()
	}
	return s.lowest()
}

func (s *Slider) startMax() float64 {
	if !s.cfg.Invert && s.cfg.EnableRange {
		return s.endX - s.gap()
	}
	return s.highest()
}

func (s *Slider) endMin() float64 {
	if !s.cfg.Invert && s.cfg.EnableRange {
		return s.startX + s.gap()
	}
	return s.lowest()
}

func (s *Slider) endMax() float64 {
	if s.cfg.Invert && s.cfg.EnableRange {
		return s.startX - s.gap()
	}
	return s.highest()
}

// computeStepValue returns the value units per dp of thumb travel.
// Non-ranged sliders subtract the padding on both ends.
func (s *Slider) computeStepValue() float64 {
	l := s.length + s.pad() - float64(s.cfg.SliderHeight)
	if !s.cfg.EnableRange {
		l += s.pad()
	}
	if l <= 0 {
		return 0
	}
	return (s.cfg.Max - s.cfg.Min) / l
}

// coerce quantizes and clamps an externally set value. NaN becomes
// the lower bound.
func (s *Slider) coerce(v float64) float64 {
	v = AdjustToStepValue(v, s.cfg.Min, s.cfg.Step)
	min, max := s.cfg.Min, s.cfg.Max
	if min > max {
		min, max = max, min
	}
	return clamp(v, min, max)
}

// recoerce applies the current bounds and step to both values and
// repositions the thumbs.
func (s *Slider) recoerce() {
	func() {
		defer s.suspend()()
		s.SetStart(s.start)
		s.SetEnd(s.end)
	}()
	s.update()
}

// suspend holds the reentrancy guard until the returned function is
// called. While held, committing a value does not reposition the
// thumbs.
func (s *Slider) suspend() (resume func()) {
	prev := s.locked
	s.locked = true
	return func() {
		s.locked = prev
	}
}

// update recomputes the derived state after a change of geometry,
// bounds or values.
func (s *Slider) update() {
	if s.locked {
		return
	}
	s.setStepValue(s.computeStepValue())
	if s.dragging {
		s.updateValueDescs()
		return
	}
	defer s.suspend()()
	if s.cfg.EnableRange {
		s.setStartX(clamp(s.PositionFromValue(s.start)-s.pad(), s.lowest(), s.highest()))
		s.setEndX(clamp(s.PositionFromValue(s.end)+s.pad(), s.lowest(), s.highest()))
	} else {
		s.setEndX(clamp(s.PositionFromValue(s.end)-s.pad(), s.lowest(), s.highest()))
	}
	s.updateValueDescs()
}

// recalculateValues derives the values from the thumb offsets.
func (s *Slider) recalculateValues() {
	defer s.suspend()()
	s.convertOffsetsToValues()
	s.updateValueDescs()
}

func (s *Slider) convertOffsetsToValues() {
	min, step := s.cfg.Min, s.cfg.Step
	if s.cfg.EnableRange {
		s.SetStart(AdjustToStepValue(s.ValueFromPosition(s.startX+s.pad()), min, step))
		s.SetEnd(AdjustToStepValue(s.ValueFromPosition(s.endX-s.pad()), min, step))
	} else {
		s.SetEnd(AdjustToStepValue(s.ValueFromPosition(s.endX+s.pad()), min, step))
	}
}

func (s *Slider) updateValueDescs() {
	if s.cfg.EnableRange {
		s.setDesc(&s.startDesc, PropStartDesc, FormatValue(s.cfg.ValueFormat, s.start))
	}
	s.setDesc(&s.endDesc, PropEndDesc, FormatValue(s.cfg.ValueFormat, s.end))
}

func (s *Slider) updateBoundDescs() {
	s.setDesc(&s.minDesc, PropMinDesc, FormatValue(s.cfg.MinMaxFormat, s.cfg.Min))
	s.setDesc(&s.maxDesc, PropMaxDesc, FormatValue(s.cfg.MinMaxFormat, s.cfg.Max))
}

func (s *Slider) setDesc(field *string, p Property, v string) {
	if *field == v {
		return
	}
	*field = v
	s.notify(p)
}

func (s *Slider) setStartX(x float64) {
	if s.startX == x {
		return
	}
	s.startX = x
	s.notify(PropStartThumbX)
}

func (s *Slider) setEndX(x float64) {
	if s.endX == x {
		return
	}
	s.endX = x
	s.notify(PropEndThumbX)
}

func (s *Slider) setStepValue(v float64) {
	if s.stepValue == v {
		return
	}
	s.stepValue = v
	s.notify(PropStepValue)
}
