// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"
)

// Icon is a vector glyph decoded from IconVG data and rasterized on
// demand.
type Icon struct {
	Color color.RGBA
	src   []byte
	// Cached values.
	img      *image.RGBA
	imgSize  int
	imgColor color.RGBA
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	_, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	return &Icon{src: data, Color: color.RGBA{A: 0xff}}, nil
}

// Draw composites the icon over dst, scaled to the width of r and
// vertically centered in r.
func (ic *Icon) Draw(dst draw.Image, r image.Rectangle) {
	if r.Dx() <= 0 {
		return
	}
	img := ic.image(r.Dx())
	sz := img.Bounds().Size()
	at := r.Min.Add(image.Pt(0, (r.Dy()-sz.Y)/2))
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(sz)}, img, image.Point{}, draw.Over)
}

func (ic *Icon) image(sz int) *image.RGBA {
	if sz == ic.imgSize && ic.Color == ic.imgColor {
		return ic.img
	}
	m, _ := iconvg.DecodeMetadata(ic.src)
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: sz, Y: int(float32(sz) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = ic.Color
	iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
	ic.img = img
	ic.imgSize = sz
	ic.imgColor = ic.Color
	return img
}
