// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/sliderkit/slider/font"
	"github.com/sliderkit/slider/font/gofont"
	"github.com/sliderkit/slider/widget/material"
)

// App is a configured application.
type App struct {
	Fonts *font.Registry
	Theme *material.Theme
	// Log reports errors and lifecycle events.
	Log *log.Logger
	// Debug traces input routing. It discards output unless debug
	// logging is configured.
	Debug *log.Logger
}

// Builder configures an App.
type Builder struct {
	fonts  []func(f *Fonts)
	out    io.Writer
	debug  bool
	prefix string
	flags  int
	theme  []func(th *material.Theme)
}

// Fonts registers the fonts of an application. Errors are reported by
// Builder.Build.
type Fonts struct {
	r   *font.Registry
	err error
}

// NewBuilder returns a builder that registers the Go fonts and logs
// to standard error.
func NewBuilder() *Builder {
	return &Builder{
		out:    os.Stderr,
		prefix: "slider: ",
		flags:  log.LstdFlags,
	}
}

// ConfigureFonts adds a font configuration step.
func (b *Builder) ConfigureFonts(fn func(f *Fonts)) *Builder {
	b.fonts = append(b.fonts, fn)
	return b
}

// ConfigureLogging directs the log to out. Debug output is enabled by
// debug.
func (b *Builder) ConfigureLogging(out io.Writer, debug bool) *Builder {
	b.out = out
	b.debug = debug
	return b
}

// ConfigureLogPrefix sets the prefix and flags of the loggers, as in
// log.New.
func (b *Builder) ConfigureLogPrefix(prefix string, flags int) *Builder {
	b.prefix = prefix
	b.flags = flags
	return b
}

// ConfigureTheme adds a theme configuration step, run after the fonts
// are registered.
func (b *Builder) ConfigureTheme(fn func(th *material.Theme)) *Builder {
	b.theme = append(b.theme, fn)
	return b
}

// Build registers the fonts and creates the theme and loggers.
func (b *Builder) Build() (*App, error) {
	f := &Fonts{r: font.NewRegistry()}
	if err := gofont.Register(f.r); err != nil {
		return nil, errors.Wrap(err, "app: register Go fonts")
	}
	for _, fn := range b.fonts {
		fn(f)
		if f.err != nil {
			return nil, f.err
		}
	}
	a := &App{
		Fonts: f.r,
		Theme: material.NewTheme(f.r),
		Log:   log.New(b.out, b.prefix, b.flags),
		Debug: log.New(io.Discard, b.prefix, b.flags),
	}
	if b.debug {
		a.Debug.SetOutput(b.out)
	}
	for _, fn := range b.theme {
		fn(a.Theme)
	}
	return a, nil
}

// AddFont registers the font file at path under alias. The first
// added font becomes the theme typeface.
func (f *Fonts) AddFont(path string, alias font.Typeface) {
	f.add(alias, func() error { return f.r.AddFile(path, alias) })
}

// AddFontData registers TrueType or OpenType data under alias.
func (f *Fonts) AddFontData(alias font.Typeface, data []byte) {
	f.add(alias, func() error { return f.r.Add(alias, data) })
}

func (f *Fonts) add(alias font.Typeface, register func() error) {
	if f.err != nil {
		return
	}
	if err := register(); err != nil {
		f.err = errors.Wrapf(err, "app: font %s", alias)
		return
	}
	if f.r.Default == gofont.Regular {
		f.r.Default = alias
	}
}
