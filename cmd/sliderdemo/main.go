// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/sliderkit/slider/app"
	"github.com/sliderkit/slider/font"
	"github.com/sliderkit/slider/internal/config"
	"github.com/sliderkit/slider/unit"
	"github.com/sliderkit/slider/widget"
	"github.com/sliderkit/slider/widget/material"
)

var (
	configFile = flag.String("config", "", "configuration file (.toml, .yaml or .yml)")
	headless   = flag.Bool("headless", false, "render one frame to -out instead of opening a window")
	scriptFile = flag.String("script", "", "gesture script (.yaml) to replay in -headless mode")
	outFile    = flag.String("out", "sliders.png", "output image of -headless mode")
	watch      = flag.Bool("watch", false, "reload the -config file when it changes")
	scale      = flag.Float64("scale", 0, "device pixels per dp; 0 selects the configured or monitor scale")
	debug      = flag.Bool("debug", false, "log pointer event routing")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "sliderdemo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	d := config.Default()
	if *configFile != "" {
		var err error
		d, err = config.Load(*configFile)
		if err != nil {
			return err
		}
	} else if *watch {
		return errors.New("-watch requires -config")
	}
	if *scriptFile != "" && !*headless {
		return errors.New("-script requires -headless")
	}
	if *headless {
		return renderHeadless(d)
	}
	return runWindow(d)
}

// newApp builds the application for the configuration d.
func newApp(d *config.Demo) (*app.App, error) {
	a, err := app.NewBuilder().
		ConfigureFonts(func(f *app.Fonts) {
			for _, fnt := range d.Fonts {
				f.AddFont(fnt.Path, font.Typeface(fnt.Alias))
			}
		}).
		ConfigureLogging(os.Stderr, *debug).
		ConfigureLogPrefix("sliderdemo: ", log.LstdFlags).
		ConfigureTheme(func(th *material.Theme) {
			if d.Theme.Typeface != "" {
				th.Typeface = font.Typeface(d.Theme.Typeface)
			}
			th.TextSize = unit.Sp(d.Theme.TextSize)
			if c := d.Theme.Color; c != nil {
				th.Color.Primary = *c
			}
		}).
		Build()
	if err != nil {
		return nil, err
	}
	if tf := a.Theme.Typeface; tf != "" && !registered(a.Fonts, tf) {
		return nil, errors.Errorf("theme.typeface: %q is not a registered font", tf)
	}
	return a, nil
}

func registered(r *font.Registry, tf font.Typeface) bool {
	for _, t := range r.Typefaces() {
		if t == tf {
			return true
		}
	}
	return false
}

// newHost creates a host with the sliders of d.
func newHost(a *app.App, d *config.Demo, size image.Point, m unit.Metric) *app.Host {
	h := app.NewHost(a, size, m)
	for i, sc := range d.Sliders {
		s := h.AddSlider(sc.Widget())
		sc.Apply(s)
		s.StartChanged = func(v float64) {
			a.Debug.Printf("slider %d: start %v", i, v)
		}
		s.EndChanged = func(v float64) {
			a.Debug.Printf("slider %d: end %v", i, v)
		}
	}
	return h
}

// metricFor returns the metric of the demo. device is the scale of
// the output device.
func metricFor(d *config.Demo, device float64) unit.Metric {
	s := device
	switch {
	case *scale > 0:
		s = *scale
	case d.Window.Scale > 0:
		s = d.Window.Scale
	}
	if s <= 0 {
		s = 1
	}
	return unit.Metric{PxPerDp: s, PxPerSp: s}
}

func describe(s *widget.Slider) string {
	st := s.State()
	if s.Config().EnableRange {
		return fmt.Sprintf("%s - %s", st.StartDesc, st.EndDesc)
	}
	return st.EndDesc
}
