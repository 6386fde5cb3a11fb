// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/sliderkit/slider/f64"
	"github.com/sliderkit/slider/io/pointer"
	"github.com/sliderkit/slider/io/router"
	"github.com/sliderkit/slider/layout"
	"github.com/sliderkit/slider/unit"
	"github.com/sliderkit/slider/widget"
)

const tolerance = 1e-9

func testConfig() widget.Config {
	cfg := widget.DefaultConfig()
	cfg.SliderHeight = 20
	return cfg
}

// layoutSlider lays s out at the window origin with a size of
// (w, h) device pixels.
func layoutSlider(s *widget.Slider, scale float64, w, h int) {
	gtx := layout.NewContext(unit.Metric{PxPerDp: scale}, image.Pt(w, h))
	s.Layout(gtx)
}

func newSlider(cfg widget.Config, w, h int) *widget.Slider {
	s := widget.NewSlider(cfg)
	layoutSlider(s, 1, w, h)
	return s
}

func down(x, y float64) pointer.Event {
	return pointer.Event{Kind: pointer.Down, Position: f64.Pt(x, y), Touches: 1}
}

func pan(x, y, dx, dy, tx, ty float64) pointer.Event {
	return pointer.Event{
		Kind:     pointer.Panning,
		Position: f64.Pt(x, y),
		Distance: pointer.Distance{Total: f64.Pt(tx, ty), Delta: f64.Pt(dx, dy)},
		Touches:  1,
	}
}

func up(x, y float64) pointer.Event {
	return pointer.Event{Kind: pointer.Up, Position: f64.Pt(x, y)}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestValuePositionRoundTrip(t *testing.T) {
	for _, invert := range []bool{false, true} {
		cfg := testConfig()
		cfg.Invert = invert
		s := newSlider(cfg, 200, 20)
		for _, v := range []float64{0, 12.5, 33.3, 50, 99.9, 100} {
			p := s.PositionFromValue(v)
			if got := s.ValueFromPosition(p); !near(got, v) {
				t.Errorf("invert=%v: ValueFromPosition(PositionFromValue(%v)) = %v", invert, v, got)
			}
		}
	}
}

func TestInvertedPositions(t *testing.T) {
	cfg := testConfig()
	cfg.Invert = true
	s := newSlider(cfg, 200, 20)
	if got := s.PositionFromValue(100); got != 0 {
		t.Errorf("inverted PositionFromValue(Max) = %v, want 0", got)
	}
	if got := s.ValueFromPosition(180); got != 0 {
		t.Errorf("inverted ValueFromPosition(180) = %v, want Min", got)
	}
}

func TestDegenerateLayout(t *testing.T) {
	cfg := testConfig()
	cfg.Min = 5
	s := newSlider(cfg, 10, 20)
	if got := s.ValueFromPosition(3); got != 5 {
		t.Errorf("ValueFromPosition on degenerate layout = %v, want Min", got)
	}
	if got := s.PositionFromValue(50); got != 0 {
		t.Errorf("PositionFromValue on degenerate layout = %v, want 0", got)
	}
	if st := s.State(); st.StepValue != 0 {
		t.Errorf("StepValue on degenerate layout = %v, want 0", st.StepValue)
	}

	// An unmeasured slider behaves the same.
	s = widget.NewSlider(cfg)
	if got := s.ValueFromPosition(40); got != 5 {
		t.Errorf("ValueFromPosition before Layout = %v, want Min", got)
	}
}

func TestAdjustToStepValue(t *testing.T) {
	for _, tc := range []struct {
		v, min, step, want float64
	}{
		{10.4, 0, 1, 10},
		{10.5, 0, 1, 11},
		{7, 1, 3, 7},
		{8.6, 1, 3, 10},
		{0.26, 0, 0.25, 0.25},
		{42.42, 0, 0, 42.42},
		{42.42, 0, -1, 42.42},
	} {
		got := widget.AdjustToStepValue(tc.v, tc.min, tc.step)
		if !near(got, tc.want) {
			t.Errorf("AdjustToStepValue(%v, %v, %v) = %v, want %v", tc.v, tc.min, tc.step, got, tc.want)
		}
		if again := widget.AdjustToStepValue(got, tc.min, tc.step); again != got {
			t.Errorf("AdjustToStepValue not idempotent for %v: %v then %v", tc.v, got, again)
		}
	}
}

func TestZeroStepClampsOnly(t *testing.T) {
	cfg := testConfig()
	cfg.Step = 0
	s := newSlider(cfg, 200, 20)
	s.SetEnd(33.3333)
	if got := s.End(); got != 33.3333 {
		t.Errorf("End = %v, want unquantized 33.3333", got)
	}
	s.SetEnd(150)
	if got := s.End(); got != 100 {
		t.Errorf("End = %v, want clamped 100", got)
	}
	s.SetEnd(-3)
	if got := s.End(); got != 0 {
		t.Errorf("End = %v, want clamped 0", got)
	}
}

func TestNaNIsCoerced(t *testing.T) {
	s := newSlider(testConfig(), 200, 20)
	s.SetEnd(50)
	s.SetEnd(math.NaN())
	st := s.State()
	if st.End != 0 || st.EndThumbX != 0 || st.EndDesc != "0" {
		t.Errorf("after SetEnd(NaN):\n%s", spew.Sdump(st))
	}
	s.SetEndOffsetClamped(math.NaN())
	if got := s.State().EndThumbX; got != 0 {
		t.Errorf("EndThumbX = %v after a NaN offset, want 0", got)
	}

	cfg := testConfig()
	cfg.EnableRange = true
	cfg.AvailableWidthAdjustment = 10
	r := newSlider(cfg, 200, 20)
	r.SetStart(30)
	r.SetStart(math.NaN())
	st = r.State()
	if st.Start != 0 || st.StartThumbX != -10 {
		t.Errorf("after SetStart(NaN):\n%s", spew.Sdump(st))
	}
	r.SetStartOffsetClamped(math.NaN())
	if got := r.State().StartThumbX; got != -10 {
		t.Errorf("StartThumbX = %v after a NaN offset, want -10", got)
	}
}

func TestDragEndThumb(t *testing.T) {
	s := newSlider(testConfig(), 200, 20)
	s.SetEnd(0)
	if st := s.State(); st.EndThumbX != 0 {
		t.Fatalf("EndThumbX = %v after SetEnd(0)", st.EndThumbX)
	}

	if got := s.ProcessGesture(down(5, 10), router.Info{}); got != s {
		t.Fatalf("Down on the end thumb consumed by %v", got)
	}
	if st := s.State(); st.TouchArea != widget.EndThumb || !st.IsPressed {
		t.Fatalf("Down did not capture the end thumb:\n%s", spew.Sdump(st))
	}
	if got := s.ProcessGesture(pan(23, 10, 18, 0, 18, 0), router.Info{}); got != s {
		t.Fatalf("Panning consumed by %v", got)
	}
	st := s.State()
	if st.EndThumbX != 18 || st.End != 10 {
		t.Errorf("after drag EndThumbX = %v, End = %v; want 18, 10\n%s", st.EndThumbX, st.End, spew.Sdump(st))
	}
	if !near(st.StepValue, 100.0/180) {
		t.Errorf("StepValue = %v, want %v", st.StepValue, 100.0/180)
	}
	if !st.IsUserPanning || !s.Dragging() {
		t.Errorf("drag not active: panning=%v dragging=%v", st.IsUserPanning, s.Dragging())
	}

	s.ProcessGesture(up(23, 10), router.Info{})
	st = s.State()
	if st.IsPressed || st.IsUserPanning || s.Dragging() {
		t.Errorf("Up left the gesture active:\n%s", spew.Sdump(st))
	}
}

func TestDragOffsetIsAuthoritative(t *testing.T) {
	s := newSlider(testConfig(), 200, 20)
	s.SetEnd(0)
	s.ProcessGesture(down(5, 10), router.Info{})
	s.ProcessGesture(pan(24, 10, 19, 0, 19, 0), router.Info{})
	st := s.State()
	// 19 dp is 10.56 units; the value snaps, the thumb does not.
	if st.End != 11 || st.EndThumbX != 19 {
		t.Fatalf("EndThumbX = %v, End = %v; want 19, 11", st.EndThumbX, st.End)
	}
	s.SetEnd(50)
	if st := s.State(); st.EndThumbX != 19 || st.End != 50 {
		t.Errorf("external set during drag moved the thumb: EndThumbX = %v, End = %v", st.EndThumbX, st.End)
	}
	s.ProcessGesture(up(24, 10), router.Info{})
	s.SetEnd(0)
	if st := s.State(); st.EndThumbX != 0 {
		t.Errorf("after release EndThumbX = %v, want 0", st.EndThumbX)
	}
}

func TestDragScaledAndOffset(t *testing.T) {
	s := widget.NewSlider(testConfig())
	gtx := layout.NewContext(unit.Metric{PxPerDp: 2}, image.Pt(1000, 1000))
	gtx = gtx.At(f64.Pt(100, 50), layout.Exact(image.Pt(400, 40)))
	s.Layout(gtx)
	s.SetEnd(0)

	info := router.Info{Offset: f64.Pt(-100, -50)}
	if got := s.ProcessGesture(down(210, 120), info); got != s {
		t.Fatalf("Down consumed by %v\n%s", got, spew.Sdump(s.State()))
	}
	s.ProcessGesture(pan(246, 120, 36, 0, 36, 0), info)
	if st := s.State(); st.EndThumbX != 18 || st.End != 10 {
		t.Errorf("EndThumbX = %v, End = %v; want 18, 10", st.EndThumbX, st.End)
	}
}

func TestRangedClamp(t *testing.T) {
	cfg := testConfig()
	cfg.EnableRange = true
	cfg.RangeMin = 10
	s := newSlider(cfg, 120, 20)
	s.SetStart(50)
	st := s.State()
	if st.StepValue != 1 || st.StartThumbX != 50 || st.EndThumbX != 100 {
		t.Fatalf("unexpected initial state:\n%s", spew.Sdump(st))
	}
	s.SetEndOffsetClamped(55)
	if got := s.State().EndThumbX; got != 60 {
		t.Errorf("EndThumbX = %v, want 60", got)
	}
	s.SetStartOffsetClamped(95)
	if got := s.State().StartThumbX; got != 50 {
		t.Errorf("StartThumbX = %v, want 50", got)
	}
	s.SetStartOffsetClamped(-40)
	if got := s.State().StartThumbX; got != 0 {
		t.Errorf("StartThumbX = %v, want 0", got)
	}
	s.SetEndOffsetClamped(400)
	if got := s.State().EndThumbX; got != 100 {
		t.Errorf("EndThumbX = %v, want 100", got)
	}
}

// With padding, a ranged end thumb at Max sits at the outer bound, and
// the values dragging can reach stop short of Max.
func TestRangedPaddedTopBound(t *testing.T) {
	cfg := testConfig()
	cfg.EnableRange = true
	cfg.AvailableWidthAdjustment = 10
	s := newSlider(cfg, 200, 20)
	st := s.State()
	if st.End != 100 || st.EndThumbX != 190 {
		t.Fatalf("unexpected initial state:\n%s", spew.Sdump(st))
	}

	if got := s.ProcessGesture(down(200, 10), router.Info{}); got != s {
		t.Fatalf("Down on the end thumb consumed by %v", got)
	}
	s.ProcessGesture(pan(230, 10, 30, 0, 30, 0), router.Info{})
	st = s.State()
	if st.EndThumbX != 190 || st.End != 95 {
		t.Errorf("after dragging right EndThumbX = %v, End = %v; want 190, 95", st.EndThumbX, st.End)
	}
	s.ProcessGesture(up(230, 10), router.Info{})

	s.SetEnd(100)
	st = s.State()
	if st.End != 100 || st.EndThumbX != 190 {
		t.Errorf("after SetEnd(100) End = %v, EndThumbX = %v; want 100, 190", st.End, st.EndThumbX)
	}
}

func TestRangedInvertedClamp(t *testing.T) {
	cfg := testConfig()
	cfg.EnableRange = true
	cfg.Invert = true
	cfg.RangeMin = 10
	s := newSlider(cfg, 120, 20)
	st := s.State()
	if st.StartThumbX != 100 || st.EndThumbX != 0 {
		t.Fatalf("unexpected initial offsets:\n%s", spew.Sdump(st))
	}
	s.SetStartOffsetClamped(5)
	if got := s.State().StartThumbX; got != 10 {
		t.Errorf("StartThumbX = %v, want 10", got)
	}
	s.SetEndOffsetClamped(95)
	if got := s.State().EndThumbX; got != 0 {
		t.Errorf("EndThumbX = %v, want 0", got)
	}
}

func TestRangedSeparationInvariant(t *testing.T) {
	for _, invert := range []bool{false, true} {
		cfg := testConfig()
		cfg.EnableRange = true
		cfg.Invert = invert
		cfg.RangeMin = 15
		cfg.AvailableWidthAdjustment = 4
		s := newSlider(cfg, 220, 20)
		gap := cfg.RangeMin / s.State().StepValue
		for i, p := range []float64{-30, 10, 75, 140, 190, 260, 3, 120} {
			if i%2 == 0 {
				s.SetStartOffsetClamped(p)
			} else {
				s.SetEndOffsetClamped(p)
			}
			st := s.State()
			ok := st.StartThumbX <= st.EndThumbX-gap+tolerance
			if invert {
				ok = st.StartThumbX >= st.EndThumbX+gap-tolerance
			}
			if !ok {
				t.Fatalf("invert=%v: separation violated after moving to %v:\n%s", invert, p, spew.Sdump(st))
			}
		}
	}
}

func TestTrailClickJumps(t *testing.T) {
	s := newSlider(testConfig(), 200, 20)
	if got := s.State().EndThumbX; got != 180 {
		t.Fatalf("EndThumbX = %v, want 180", got)
	}
	if got := s.ProcessGesture(down(120, 10), router.Info{}); got != s {
		t.Fatalf("trail click consumed by %v", got)
	}
	st := s.State()
	if st.EndThumbX != 110 || st.End != 61 || st.TouchArea != widget.EndThumb || !st.IsPressed {
		t.Errorf("trail click state:\n%s", spew.Sdump(st))
	}
	if st.EndDesc != "61" {
		t.Errorf("EndDesc = %q, want %q", st.EndDesc, "61")
	}
}

func TestTrailClickDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.ClickOnTrailEnabled = false
	s := newSlider(cfg, 200, 20)
	if got := s.ProcessGesture(down(120, 10), router.Info{}); got != nil {
		t.Errorf("click with ClickOnTrailEnabled=false consumed by %v", got)
	}
	if st := s.State(); st.EndThumbX != 180 || st.TouchArea != widget.Unknown {
		t.Errorf("click moved the thumb:\n%s", spew.Sdump(st))
	}
}

func TestRangedTrailClick(t *testing.T) {
	cfg := testConfig()
	cfg.EnableRange = true

	s := newSlider(cfg, 200, 20)
	s.ProcessGesture(down(60, 10), router.Info{})
	if st := s.State(); st.TouchArea != widget.StartThumb || st.StartThumbX != 50 || st.Start != 28 {
		t.Errorf("click before the middle:\n%s", spew.Sdump(st))
	}

	s = newSlider(cfg, 200, 20)
	s.ProcessGesture(down(150, 10), router.Info{})
	if st := s.State(); st.TouchArea != widget.EndThumb || st.EndThumbX != 140 || st.End != 78 {
		t.Errorf("click past the middle:\n%s", spew.Sdump(st))
	}
}

func TestTrailElement(t *testing.T) {
	s := widget.NewSlider(testConfig())
	trail := &widget.Box{Name: widget.TrailTag, Rect: f64.Rect(0, 5, 200, 15)}
	s.Add(trail)
	layoutSlider(s, 1, 200, 20)
	if s.Find(widget.TrailTag) != trail {
		t.Fatalf("Find did not return the trail")
	}

	// Below the trail: neither pressed nor moved.
	if got := s.ProcessGesture(down(120, 18), router.Info{}); got != nil {
		t.Errorf("press off the trail consumed by %v", got)
	}
	if st := s.State(); st.IsPressed || st.EndThumbX != 180 {
		t.Errorf("press off the trail changed state:\n%s", spew.Sdump(st))
	}
	s.ProcessGesture(up(120, 18), router.Info{})

	if got := s.ProcessGesture(down(120, 10), router.Info{}); got != s {
		t.Errorf("press on the trail consumed by %v", got)
	}
	if !trail.Pressed() {
		t.Errorf("trail did not see the press")
	}
	s.ProcessGesture(up(120, 10), router.Info{})
	if trail.Pressed() {
		t.Errorf("trail did not see the release")
	}
}

func TestWrongDirectionReleases(t *testing.T) {
	cfg := testConfig()
	cfg.Orientation = layout.Vertical
	s := newSlider(cfg, 20, 200)
	if got := s.State().EndThumbX; got != 180 {
		t.Fatalf("EndThumbX = %v, want 180", got)
	}
	if got := s.ProcessGesture(down(10, 185), router.Info{}); got != s {
		t.Fatalf("Down on vertical end thumb consumed by %v", got)
	}
	if got := s.ProcessGesture(pan(20, 186, 10, 1, 10, 1), router.Info{}); got != nil {
		t.Errorf("horizontal pan on vertical slider consumed by %v", got)
	}
	if st := s.State(); st.IsUserPanning || st.EndThumbX != 180 {
		t.Errorf("released pan changed state:\n%s", spew.Sdump(st))
	}

	if got := s.ProcessGesture(pan(10, 167, 0, -18, 0, -18), router.Info{}); got != s {
		t.Errorf("vertical pan consumed by %v", got)
	}
	if st := s.State(); st.EndThumbX != 162 || st.End != 90 {
		t.Errorf("vertical drag: EndThumbX = %v, End = %v; want 162, 90", st.EndThumbX, st.End)
	}
}

func TestDirectionCheckedOnce(t *testing.T) {
	s := newSlider(testConfig(), 200, 20)
	s.SetEnd(0)
	s.ProcessGesture(down(5, 10), router.Info{})
	s.ProcessGesture(pan(15, 10, 10, 0, 10, 0), router.Info{})
	// Later samples may wander off axis.
	if got := s.ProcessGesture(pan(20, 40, 5, 30, 15, 30), router.Info{}); got != s {
		t.Errorf("second sample consumed by %v", got)
	}
	if got := s.State().EndThumbX; got != 15 {
		t.Errorf("EndThumbX = %v, want 15", got)
	}
}

func TestIgnoreWrongDirectionDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.IgnoreWrongDirection = false
	s := newSlider(cfg, 200, 20)
	s.SetEnd(0)
	s.ProcessGesture(down(5, 10), router.Info{})
	if got := s.ProcessGesture(pan(5, 30, 0, 20, 0, 20), router.Info{}); got != s {
		t.Errorf("cross-axis pan consumed by %v", got)
	}
}

func TestMultiTouchPanIgnored(t *testing.T) {
	s := newSlider(testConfig(), 200, 20)
	s.SetEnd(0)
	s.ProcessGesture(down(5, 10), router.Info{})
	e := pan(25, 10, 20, 0, 20, 0)
	e.Touches = 2
	if got := s.ProcessGesture(e, router.Info{}); got != nil {
		t.Errorf("two-finger pan consumed by %v", got)
	}
	if got := s.State().EndThumbX; got != 0 {
		t.Errorf("two-finger pan moved the thumb to %v", got)
	}
}

func TestConsumingChildWinsDown(t *testing.T) {
	s := newSlider(testConfig(), 200, 20)
	child := &widget.Box{Name: "badge", Rect: f64.Rect(100, 0, 140, 20), Consume: true}
	s.Add(child)
	if got := s.ProcessGesture(down(120, 10), router.Info{}); got != child {
		t.Errorf("Down over a consuming child consumed by %v", got)
	}
	if st := s.State(); st.EndThumbX != 180 {
		t.Errorf("slider reacted to a consumed Down:\n%s", spew.Sdump(st))
	}
}

func TestReleaseReachesChildrenWhilePanning(t *testing.T) {
	s := newSlider(testConfig(), 200, 20)
	child := &widget.Box{Name: "overlay", Rect: f64.Rect(0, 0, 200, 20)}
	s.Add(child)
	s.SetEnd(0)
	s.ProcessGesture(down(5, 10), router.Info{})
	s.ProcessGesture(pan(15, 10, 10, 0, 10, 0), router.Info{})
	if !child.Pressed() {
		t.Fatalf("child did not see the Down")
	}
	if got := s.ProcessGesture(up(15, 10), router.Info{}); got != nil {
		t.Errorf("Up consumed by %v", got)
	}
	if child.Pressed() {
		t.Errorf("child did not see the Up")
	}
}

func TestNotRespondingToGestures(t *testing.T) {
	cfg := testConfig()
	cfg.RespondsToGestures = false
	s := newSlider(cfg, 200, 20)
	if got := s.ProcessGesture(down(185, 10), router.Info{}); got != nil {
		t.Errorf("Down consumed by %v", got)
	}
	if st := s.State(); st.IsPressed || st.TouchArea != widget.Unknown {
		t.Errorf("disabled slider changed state:\n%s", spew.Sdump(st))
	}
}

func TestObservers(t *testing.T) {
	s := newSlider(testConfig(), 200, 20)
	var props []widget.Property
	cancel := s.Watch(func(p widget.Property) {
		props = append(props, p)
	})
	var ends []float64
	s.EndChanged = func(v float64) { ends = append(ends, v) }

	s.SetEnd(50)
	want := map[widget.Property]bool{widget.PropEnd: true, widget.PropEndThumbX: true, widget.PropEndDesc: true}
	for _, p := range props {
		delete(want, p)
	}
	if len(want) != 0 {
		t.Errorf("missing notifications %v in %v", want, props)
	}
	if len(ends) != 1 || ends[0] != 50 {
		t.Errorf("EndChanged calls: %v", ends)
	}
	if !s.Changed() || s.Changed() {
		t.Errorf("Changed did not report exactly once")
	}

	cancel()
	props = nil
	s.SetEnd(20)
	if len(props) != 0 {
		t.Errorf("cancelled observer notified: %v", props)
	}
	s.SetEnd(20)
	if len(ends) != 2 {
		t.Errorf("unchanged value fired EndChanged: %v", ends)
	}
}

func TestObserverDuringDrag(t *testing.T) {
	s := newSlider(testConfig(), 200, 20)
	s.SetEnd(0)
	var seen []widget.State
	s.Watch(func(p widget.Property) {
		if p == widget.PropEnd {
			seen = append(seen, s.State())
		}
	})
	s.ProcessGesture(down(5, 10), router.Info{})
	s.ProcessGesture(pan(24, 10, 19, 0, 19, 0), router.Info{})
	if len(seen) != 1 {
		t.Fatalf("End notified %d times", len(seen))
	}
	if st := seen[0]; st.End != 11 || st.EndThumbX != 19 {
		t.Errorf("observer saw EndThumbX = %v, End = %v; want 19, 11", st.EndThumbX, st.End)
	}
}

func TestSetConfigCoerces(t *testing.T) {
	s := newSlider(testConfig(), 200, 20)
	cfg := s.Config()
	cfg.Max = 50
	cfg.Step = 5
	s.SetConfig(cfg)
	st := s.State()
	if st.End != 50 || st.EndThumbX != 180 || st.MaxDesc != "50" {
		t.Errorf("after SetConfig:\n%s", spew.Sdump(st))
	}
	s.SetEnd(12)
	if got := s.End(); got != 10 {
		t.Errorf("End = %v, want 10", got)
	}
	s.SetMin(20)
	if st := s.State(); st.End != 20 || st.MinDesc != "20" || st.EndThumbX != 0 {
		t.Errorf("after SetMin:\n%s", spew.Sdump(st))
	}
}

func TestPaddedNonRangedRoundTrip(t *testing.T) {
	cfg := testConfig()
	cfg.AvailableWidthAdjustment = 6
	s := newSlider(cfg, 200, 20)
	s.SetEnd(40)
	x := s.State().EndThumbX
	s.ProcessGesture(down(x+5, 10), router.Info{})
	s.ProcessGesture(pan(x+5, 10, 0.001, 0, 0.001, 0), router.Info{})
	if got := s.End(); got != 40 {
		t.Errorf("a tiny drag moved End from 40 to %v", got)
	}
}
