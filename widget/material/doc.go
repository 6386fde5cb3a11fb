// SPDX-License-Identifier: Unlicense OR MIT

// Package material implements the Material design look of the slider
// widget.
//
// Styles are created from a Theme and drawn directly into an image:
//
//	th := material.NewTheme(fonts)
//	material.Slider(th, slider).Layout(gtx, frame)
//
// Drawing is CPU rasterization with golang.org/x/image/vector.
package material
