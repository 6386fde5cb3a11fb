// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the slider control. Widgets contain
// persistent state and process pointer events. Theme packages such as
// `widget/material` implement drawing of widgets.
//
// A Slider keeps two views of the same selection: thumb offsets along
// the slider in dp, and values between Min and Max. Pointer gestures
// move the offsets and the values follow; setting a value moves the
// offsets.
package widget
