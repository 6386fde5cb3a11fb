// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"github.com/sliderkit/slider/unit"
)

func TestMetric_PxToDp(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}
	exp := unit.Dp(5)
	got := m.PxToDp(m.DpToPx(5))
	if got != exp {
		t.Errorf("PxToDp conversion mismatch %v != %v", exp, got)
	}
}

func TestMetric_ZeroScale(t *testing.T) {
	var m unit.Metric
	if got := m.Scale(); got != 1 {
		t.Errorf("zero Metric scale = %v, want 1", got)
	}
	if got := m.PxToDp(18); got != 18 {
		t.Errorf("zero Metric PxToDp(18) = %v, want 18", got)
	}
	if got := unit.Dp(2.5).String(); got != "2.5dp" {
		t.Errorf("Dp.String() = %q", got)
	}
}
