// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont registers the Go fonts with a font.Registry.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/sliderkit/slider/font"
)

// Aliases of the registered Go fonts.
const (
	Regular font.Typeface = "GoRegular"
	Bold    font.Typeface = "GoBold"
	Mono    font.Typeface = "GoMono"
)

// Register adds the Go regular, bold and mono fonts to r. Regular
// becomes the default typeface unless r already has one.
func Register(r *font.Registry) error {
	for _, f := range []struct {
		alias font.Typeface
		ttf   []byte
	}{
		{Regular, goregular.TTF},
		{Bold, gobold.TTF},
		{Mono, gomono.TTF},
	} {
		if err := r.Add(f.alias, f.ttf); err != nil {
			return err
		}
	}
	return nil
}
