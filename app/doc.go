// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app assembles slider applications.

A Builder collects the fonts, logging and theme of an application and
builds an App. A Host owns the sliders of one window: it turns device
input into pointer events, routes them to the sliders and renders
frames into an image that a window or a PNG encoder can consume.

	a, err := app.NewBuilder().
		ConfigureFonts(func(f *app.Fonts) {
			f.AddFont("OpenSans-Regular.ttf", "OpenSansRegular")
		}).
		ConfigureLogging(os.Stderr, true).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	h := app.NewHost(a, image.Pt(800, 600), unit.Metric{PxPerDp: 1, PxPerSp: 1})
	h.AddSlider(widget.DefaultConfig())
	frame := h.Frame()

Hosts are not safe for concurrent use; drive them from one goroutine.
*/
package app
