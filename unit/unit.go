// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. The slider widgets measure thumbs,
paddings and offsets in dp, also called points.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays. Pointer events arrive in
pixels.

To maintain a constant visual size across platforms and displays, always
use dps or sps to define user interfaces. Only use pixels for derived
values.
*/
package unit

import (
	"math"
	"strconv"
)

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp. It is the
	// rendering scale of a surface.
	PxPerDp float64
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float64
}

type (
	// Dp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	Dp float64
	// Sp is like UnitDp but for font sizes.
	Sp float64
)

// Dp converts v to rounded pixels.
func (c Metric) Dp(v Dp) int {
	return int(math.Round(c.DpToPx(v)))
}

// Sp converts v to rounded pixels.
func (c Metric) Sp(v Sp) int {
	return int(math.Round(float64(v) * nonZero(c.PxPerSp)))
}

// DpToPx converts v to fractional pixels.
func (c Metric) DpToPx(v Dp) float64 {
	return float64(v) * c.Scale()
}

// PxToDp converts fractional pixels to dp.
func (c Metric) PxToDp(px float64) Dp {
	return Dp(px / c.Scale())
}

// Scale returns the rendering scale, the number of device pixels per
// dp. A zero PxPerDp reports 1.
func (c Metric) Scale() float64 {
	return nonZero(c.PxPerDp)
}

func nonZero(v float64) float64 {
	if v <= 0 {
		return 1.0
	}
	return v
}

func (v Dp) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64) + "dp"
}

func (v Sp) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64) + "sp"
}
