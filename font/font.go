// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font registers typefaces under aliases and hands out sized
faces for text drawing.

Applications register fonts once at start up, typically from embedded
TrueType data or font files, and widgets look faces up by alias.
*/
package font

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/sliderkit/slider/unit"
)

// Typeface identifies a registered font. The empty string denotes the
// default typeface of a Registry.
type Typeface string

// Registry maps typeface aliases to parsed fonts.
type Registry struct {
	// Default is used when a lookup names no typeface. The first
	// registered font becomes the default.
	Default Typeface

	fonts map[Typeface]*opentype.Font
	faces map[faceKey]xfont.Face
}

type faceKey struct {
	typeface Typeface
	px       int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fonts: make(map[Typeface]*opentype.Font),
		faces: make(map[faceKey]xfont.Face),
	}
}

// Add parses TrueType or OpenType data and registers it as alias.
func (r *Registry) Add(alias Typeface, data []byte) error {
	if alias == "" {
		return errors.New("font: empty typeface alias")
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return errors.Wrapf(err, "font: parse %s", alias)
	}
	r.fonts[alias] = f
	for k := range r.faces {
		if k.typeface == alias {
			delete(r.faces, k)
		}
	}
	if r.Default == "" {
		r.Default = alias
	}
	return nil
}

// AddFile registers the font file at path as alias.
func (r *Registry) AddFile(path string, alias Typeface) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "font: read %s", path)
	}
	return r.Add(alias, data)
}

// Typefaces returns the registered aliases in sorted order.
func (r *Registry) Typefaces() []Typeface {
	tfs := make([]Typeface, 0, len(r.fonts))
	for tf := range r.fonts {
		tfs = append(tfs, tf)
	}
	sort.Slice(tfs, func(i, j int) bool { return tfs[i] < tfs[j] })
	return tfs
}

// Face returns a face of typeface tf for text of size sz on a surface
// with metric m. Faces are cached per typeface and pixel size.
func (r *Registry) Face(tf Typeface, sz unit.Sp, m unit.Metric) (xfont.Face, error) {
	if tf == "" {
		tf = r.Default
	}
	f, ok := r.fonts[tf]
	if !ok {
		return nil, errors.Errorf("font: typeface %q not registered", tf)
	}
	px := m.Sp(sz)
	if px < 1 {
		px = 1
	}
	key := faceKey{typeface: tf, px: px}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "font: face %s at %dpx", tf, px)
	}
	r.faces[key] = face
	return face, nil
}
