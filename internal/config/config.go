// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the configuration of the slider demo and its
// gesture scripts.
package config

import (
	"bytes"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sliderkit/slider/layout"
	"github.com/sliderkit/slider/unit"
	"github.com/sliderkit/slider/widget"
)

// Format is the syntax of a configuration file.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

type Demo struct {
	Window  Window   `toml:"window" yaml:"window"`
	Theme   Theme    `toml:"theme" yaml:"theme"`
	Fonts   []Font   `toml:"fonts" yaml:"fonts"`
	Sliders []Slider `toml:"sliders" yaml:"sliders"`
}

type Window struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	// Scale overrides the device scale factor when positive.
	Scale float64 `toml:"scale" yaml:"scale"`
}

type Theme struct {
	Typeface string  `toml:"typeface" yaml:"typeface"`
	TextSize float64 `toml:"text_size" yaml:"text_size"`
	// Primary is a color in #rrggbb notation.
	Primary string `toml:"primary" yaml:"primary"`
	// Color is Primary parsed by Validate, nil if unset.
	Color *color.RGBA `toml:"-" yaml:"-"`
}

// Font is a font file registered under an alias. Relative paths are
// resolved against the directory of the configuration file.
type Font struct {
	Path  string `toml:"path" yaml:"path"`
	Alias string `toml:"alias" yaml:"alias"`
}

// Slider configures one slider. Unset fields take the values of
// widget.DefaultConfig.
type Slider struct {
	Min                  *float64 `toml:"min" yaml:"min"`
	Max                  *float64 `toml:"max" yaml:"max"`
	Step                 *float64 `toml:"step" yaml:"step"`
	RangeMin             float64  `toml:"range_min" yaml:"range_min"`
	Start                *float64 `toml:"start" yaml:"start"`
	End                  *float64 `toml:"end" yaml:"end"`
	Height               *float64 `toml:"height" yaml:"height"`
	HotspotMargin        *float64 `toml:"hotspot_margin" yaml:"hotspot_margin"`
	Padding              float64  `toml:"padding" yaml:"padding"`
	Orientation          string   `toml:"orientation" yaml:"orientation"`
	Invert               bool     `toml:"invert" yaml:"invert"`
	Range                bool     `toml:"range" yaml:"range"`
	ClickOnTrail         *bool    `toml:"click_on_trail" yaml:"click_on_trail"`
	IgnoreWrongDirection *bool    `toml:"ignore_wrong_direction" yaml:"ignore_wrong_direction"`
	Gestures             *bool    `toml:"gestures" yaml:"gestures"`
	ValueFormat          *string  `toml:"value_format" yaml:"value_format"`
	MinMaxFormat         *string  `toml:"min_max_format" yaml:"min_max_format"`
}

// Default returns the configuration of a window with one horizontal
// and one ranged slider.
func Default() *Demo {
	return &Demo{
		Window: Window{Title: "Sliders", Width: 480, Height: 320},
		Theme:  Theme{TextSize: 12},
		Sliders: []Slider{
			{},
			{Range: true, Start: float64Ptr(20), End: float64Ptr(80)},
		},
	}
}

// Load reads the configuration file at path. The format is chosen by
// the file extension.
func Load(path string) (*Demo, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read")
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	dir := filepath.Dir(path)
	for i, f := range d.Fonts {
		if !filepath.IsAbs(f.Path) {
			d.Fonts[i].Path = filepath.Join(dir, f.Path)
		}
	}
	return d, nil
}

// FormatOf returns the format of a configuration file by its
// extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", errors.Errorf("config: unknown format of %s", path)
}

// Parse decodes and validates a configuration. Window and theme
// settings missing from data keep their defaults; an empty slider list
// keeps the default sliders.
func Parse(data []byte, format Format) (*Demo, error) {
	d := Default()
	sliders := d.Sliders
	d.Sliders = nil
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(d); err != nil {
			return nil, errors.Wrap(err, "parse toml")
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "parse yaml")
		}
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}
	if len(d.Sliders) == 0 {
		d.Sliders = sliders
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate reports the first invalid setting.
func (d *Demo) Validate() error {
	if d.Window.Width <= 0 || d.Window.Height <= 0 {
		return errors.Errorf("window: size %dx%d is not positive", d.Window.Width, d.Window.Height)
	}
	if d.Window.Scale < 0 {
		return errors.Errorf("window.scale: %v is negative", d.Window.Scale)
	}
	if d.Theme.TextSize <= 0 {
		return errors.Errorf("theme.text_size: %v is not positive", d.Theme.TextSize)
	}
	c, err := parseColor(d.Theme.Primary)
	if err != nil {
		return errors.Wrap(err, "theme.primary")
	}
	d.Theme.Color = c
	for i, f := range d.Fonts {
		if f.Path == "" {
			return errors.Errorf("fonts[%d].path: empty", i)
		}
		if f.Alias == "" {
			return errors.Errorf("fonts[%d].alias: empty", i)
		}
	}
	for i, s := range d.Sliders {
		if err := s.validate(); err != nil {
			return errors.Wrapf(err, "sliders[%d]", i)
		}
	}
	return nil
}

// parseColor parses #rrggbb. An empty string yields nil.
func parseColor(s string) (*color.RGBA, error) {
	if s == "" {
		return nil, nil
	}
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return nil, errors.Errorf("%q is not a #rrggbb color", s)
	}
	return &color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func (s Slider) validate() error {
	cfg := s.Widget()
	if cfg.Min >= cfg.Max {
		return errors.Errorf("max: %v not above min %v", cfg.Max, cfg.Min)
	}
	if cfg.Step < 0 {
		return errors.Errorf("step: %v is negative", cfg.Step)
	}
	if cfg.RangeMin < 0 {
		return errors.Errorf("range_min: %v is negative", cfg.RangeMin)
	}
	if cfg.SliderHeight <= 0 {
		return errors.Errorf("height: %v is not positive", cfg.SliderHeight)
	}
	if cfg.HotspotMargin < 0 {
		return errors.Errorf("hotspot_margin: %v is negative", cfg.HotspotMargin)
	}
	if _, err := parseOrientation(s.Orientation); err != nil {
		return err
	}
	return nil
}

func parseOrientation(s string) (layout.Axis, error) {
	switch strings.ToLower(s) {
	case "", "horizontal":
		return layout.Horizontal, nil
	case "vertical":
		return layout.Vertical, nil
	}
	return 0, errors.Errorf("orientation: unknown value %q", s)
}

// Widget returns the widget configuration of s.
func (s Slider) Widget() widget.Config {
	cfg := widget.DefaultConfig()
	setFloat(&cfg.Min, s.Min)
	setFloat(&cfg.Max, s.Max)
	setFloat(&cfg.Step, s.Step)
	cfg.RangeMin = s.RangeMin
	if s.Height != nil {
		cfg.SliderHeight = unit.Dp(*s.Height)
	}
	if s.HotspotMargin != nil {
		cfg.HotspotMargin = unit.Dp(*s.HotspotMargin)
	}
	cfg.AvailableWidthAdjustment = unit.Dp(s.Padding)
	cfg.Orientation, _ = parseOrientation(s.Orientation)
	cfg.Invert = s.Invert
	cfg.EnableRange = s.Range
	setBool(&cfg.ClickOnTrailEnabled, s.ClickOnTrail)
	setBool(&cfg.IgnoreWrongDirection, s.IgnoreWrongDirection)
	setBool(&cfg.RespondsToGestures, s.Gestures)
	if s.ValueFormat != nil {
		cfg.ValueFormat = *s.ValueFormat
	}
	if s.MinMaxFormat != nil {
		cfg.MinMaxFormat = *s.MinMaxFormat
	}
	return cfg
}

// Apply sets the initial values of sl from s.
func (s Slider) Apply(sl *widget.Slider) {
	if s.Start != nil {
		sl.SetStart(*s.Start)
	}
	if s.End != nil {
		sl.SetEnd(*s.End)
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}
