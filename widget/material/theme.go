// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"golang.org/x/exp/shiny/materialdesign/icons"
	xfont "golang.org/x/image/font"

	"github.com/sliderkit/slider/font"
	"github.com/sliderkit/slider/unit"
	"github.com/sliderkit/slider/widget"
)

type Theme struct {
	Fonts    *font.Registry
	Typeface font.Typeface
	Color    struct {
		Primary    color.RGBA
		Text       color.RGBA
		Hint       color.RGBA
		InvText    color.RGBA
		Background color.RGBA
	}
	TextSize unit.Sp
	Icon     struct {
		SwapHoriz *widget.Icon
		SwapVert  *widget.Icon
	}
}

// NewTheme returns a theme drawing text with the default typeface of
// fonts.
func NewTheme(fonts *font.Registry) *Theme {
	t := &Theme{
		Fonts: fonts,
	}
	t.Color.Primary = rgb(0x3f51b5)
	t.Color.Text = rgb(0x000000)
	t.Color.Hint = rgb(0xbbbbbb)
	t.Color.InvText = rgb(0xffffff)
	t.Color.Background = rgb(0xfafafa)
	t.TextSize = unit.Sp(12)

	t.Icon.SwapHoriz = mustIcon(widget.NewIcon(icons.ActionSwapHoriz))
	t.Icon.SwapVert = mustIcon(widget.NewIcon(icons.ActionSwapVert))

	return t
}

// face returns the text face of the theme, or nil if no font is
// registered.
func (t *Theme) face(m unit.Metric) xfont.Face {
	if t.Fonts == nil {
		return nil
	}
	f, err := t.Fonts.Face(t.Typeface, t.TextSize, m)
	if err != nil {
		return nil
	}
	return f
}

func mustIcon(ic *widget.Icon, err error) *widget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}

func rgb(c uint32) color.RGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.RGBA {
	return color.RGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// mulAlpha scales all color components by alpha/255.
func mulAlpha(c color.RGBA, alpha uint8) color.RGBA {
	a := uint16(alpha)
	return color.RGBA{
		A: uint8(uint16(c.A) * a / 255),
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
	}
}
