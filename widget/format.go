// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultFormat groups thousands with spaces and shows up to two
// decimals.
const DefaultFormat = "### ### ##0.##"

// groupMark stands in for the group separator while humanize formats.
const groupMark = "'"

// maxPrecision is the largest precision humanize rounds correctly.
const maxPrecision = 9

// numberMask is a parsed custom numeric mask.
type numberMask struct {
	group     string
	precision int
	minFrac   int
}

// FormatValue formats v with a custom numeric mask and trims
// surrounding whitespace. In a mask '#' is an optional digit, '0' a
// required digit and the first '.' the decimal point; any other
// character in the integer part selects digit grouping in threes with
// that character as separator. An empty mask formats v in the
// shortest exact form.
func FormatValue(mask string, v float64) string {
	mask = strings.TrimSpace(mask)
	if mask == "" {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	m := parseMask(mask)
	hf := "#" + groupMark + "###."
	if m.precision > 0 {
		hf += strings.Repeat("#", m.precision)
	}
	out := humanize.FormatFloat(hf, v)
	out = strings.ReplaceAll(out, groupMark, m.group)
	if m.precision > m.minFrac {
		out = trimFraction(out, m.minFrac)
	}
	return strings.TrimSpace(out)
}

func parseMask(mask string) numberMask {
	var m numberMask
	intPart, fracPart := mask, ""
	if i := strings.IndexByte(mask, '.'); i >= 0 {
		intPart, fracPart = mask[:i], mask[i+1:]
	}
	for _, r := range intPart {
		if r != '#' && r != '0' {
			m.group = string(r)
			break
		}
	}
	leading := true
	for _, r := range fracPart {
		switch r {
		case '0':
			if leading {
				m.minFrac++
			}
			m.precision++
		case '#':
			leading = false
			m.precision++
		}
	}
	if m.precision > maxPrecision {
		m.precision = maxPrecision
	}
	if m.minFrac > m.precision {
		m.minFrac = m.precision
	}
	return m
}

// trimFraction drops trailing zeros of the fraction of a formatted
// number, keeping at least keep digits.
func trimFraction(s string, keep int) string {
	dot := strings.LastIndexByte(s, '.')
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+1+keep && s[end-1] == '0' {
		end--
	}
	if end == dot+1 {
		end = dot
	}
	return s[:end]
}
