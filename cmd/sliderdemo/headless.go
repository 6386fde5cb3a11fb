// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/png"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/sliderkit/slider/internal/config"
)

// renderHeadless replays the gesture script, if any, and writes a
// frame of the sliders of d to the output file.
func renderHeadless(d *config.Demo) error {
	a, err := newApp(d)
	if err != nil {
		return err
	}
	m := metricFor(d, 1)
	size := image.Pt(
		int(math.Round(float64(d.Window.Width)*m.PxPerDp)),
		int(math.Round(float64(d.Window.Height)*m.PxPerDp)),
	)
	h := newHost(a, d, size, m)
	if *scriptFile != "" {
		s, err := config.LoadScript(*scriptFile)
		if err != nil {
			return err
		}
		for _, r := range s.Samples(m.PxPerDp) {
			h.Input(r)
		}
	}
	frame := h.Frame()

	f, err := os.Create(*outFile)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", *outFile)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "write %s", *outFile)
	}
	for i, s := range h.Sliders() {
		a.Log.Printf("slider %d: %s", i, describe(s))
	}
	a.Log.Printf("wrote %s (%dx%d)", *outFile, size.X, size.Y)
	return nil
}
