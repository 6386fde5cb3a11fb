// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/sliderkit/slider/f64"
)

// circleK is the distance of the cubic control points from the ends of
// a quarter circle of radius 1.
const circleK = 0.5522847498

// fill paints the shape traced by path in bounds b with c. Path
// coordinates are relative to the origin of the rasterizer.
func fill(dst draw.Image, b f64.Rectangle, c color.RGBA, path func(z *vector.Rasterizer, org f64.Point)) {
	r := b.Round().Intersect(dst.Bounds())
	if r.Empty() || c.A == 0 {
		return
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	path(z, f64.FPt(r.Min))
	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}

func fillRect(dst draw.Image, rect f64.Rectangle, c color.RGBA) {
	fill(dst, rect, c, func(z *vector.Rasterizer, org f64.Point) {
		r := rect.Sub(org)
		z.MoveTo(float32(r.Min.X), float32(r.Min.Y))
		z.LineTo(float32(r.Max.X), float32(r.Min.Y))
		z.LineTo(float32(r.Max.X), float32(r.Max.Y))
		z.LineTo(float32(r.Min.X), float32(r.Max.Y))
		z.ClosePath()
	})
}

func fillCircle(dst draw.Image, center f64.Point, radius float64, c color.RGBA) {
	b := f64.Rect(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	fill(dst, b, c, func(z *vector.Rasterizer, org f64.Point) {
		p := center.Sub(org)
		x, y := float32(p.X), float32(p.Y)
		r := float32(radius)
		k := r * circleK
		z.MoveTo(x+r, y)
		z.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
		z.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
		z.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
		z.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
		z.ClosePath()
	})
}

// drawText draws s with its baseline at y. The horizontal position is
// x for align < 0, the center of s for align == 0 and the end of s for
// align > 0.
func drawText(dst draw.Image, face font.Face, c color.RGBA, s string, x, y float64, align int) {
	if face == nil || s == "" {
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	w := float64(d.MeasureString(s)) / 64
	switch {
	case align == 0:
		x -= w / 2
	case align > 0:
		x -= w
	}
	d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
	d.DrawString(s)
}
