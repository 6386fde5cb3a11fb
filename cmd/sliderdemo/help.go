// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The sliderdemo command shows a window of sliders.

Usage:

	sliderdemo [flags]

The -config flag names a configuration file in TOML (.toml) or YAML (.yaml,
.yml) format. It sets the window size and title, the theme, additional font
files and the sliders. Without -config, one plain and one ranged slider are
shown.

The -watch flag reloads the configuration file whenever it changes.

The -headless flag renders one frame without opening a window and writes it
as a PNG image to the file named by -out. The -script flag names a YAML
gesture script that is replayed before the frame is rendered.

The -scale flag overrides the number of device pixels per dp. It defaults to
the scale of the configuration, or the monitor scale.

The -debug flag logs the routing of every pointer event.

Flags:

`
