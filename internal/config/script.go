// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sliderkit/slider/f64"
	"github.com/sliderkit/slider/gesture"
	"github.com/sliderkit/slider/io/pointer"
)

const (
	defaultInterval = 16
	defaultMoves    = 10
)

// Script is a sequence of pointer input for replay, for example:
//
//	interval: 16
//	steps:
//	  - {action: drag, at: [373, 27], to: [200, 27]}
//	  - {action: press, pointer: 1, at: [40, 27]}
//	  - {action: release, pointer: 1, at: [40, 27]}
//
// Positions are in dp from the window origin.
type Script struct {
	// Interval is the time between samples in milliseconds.
	Interval int    `yaml:"interval"`
	Steps    []Step `yaml:"steps"`
}

// Step is one action of a Script. Actions are press, move, release,
// cancel and drag. A drag presses at At, moves to To in Moves equal
// steps and releases.
type Step struct {
	Action  string    `yaml:"action"`
	Pointer int       `yaml:"pointer"`
	Touch   bool      `yaml:"touch"`
	At      []float64 `yaml:"at"`
	To      []float64 `yaml:"to"`
	Moves   int       `yaml:"moves"`
}

// LoadScript reads the YAML script at path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "script: read")
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, errors.Wrapf(err, "script: %s", path)
	}
	return s, nil
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	s := new(Script)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parse yaml")
	}
	if s.Interval == 0 {
		s.Interval = defaultInterval
	}
	if s.Interval < 0 {
		return nil, errors.Errorf("interval: %d is negative", s.Interval)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, errors.Wrapf(err, "steps[%d]", i)
		}
	}
	return s, nil
}

func (st Step) validate() error {
	switch st.Action {
	case "press", "move", "release", "drag":
	case "cancel":
		return nil
	default:
		return errors.Errorf("action: unknown value %q", st.Action)
	}
	if len(st.At) != 2 {
		return errors.Errorf("at: want [x, y], got %v", st.At)
	}
	if st.Action != "drag" {
		return nil
	}
	if len(st.To) != 2 {
		return errors.Errorf("to: want [x, y], got %v", st.To)
	}
	if st.Moves < 0 {
		return errors.Errorf("moves: %d is negative", st.Moves)
	}
	return nil
}

// Samples expands the script into device input for a window with the
// given number of device pixels per dp.
func (s *Script) Samples(scale float64) []gesture.Raw {
	var raws []gesture.Raw
	var now time.Duration
	step := time.Duration(s.Interval) * time.Millisecond
	emit := func(k gesture.RawKind, st Step, p f64.Point) {
		src := pointer.Mouse
		if st.Touch {
			src = pointer.Touch
		}
		raws = append(raws, gesture.Raw{
			Kind:     k,
			ID:       pointer.ID(st.Pointer),
			Source:   src,
			Position: p.Mul(scale),
			Time:     now,
		})
		now += step
	}
	pt := func(v []float64) f64.Point {
		return f64.Pt(v[0], v[1])
	}
	for _, st := range s.Steps {
		switch st.Action {
		case "press":
			emit(gesture.RawPress, st, pt(st.At))
		case "move":
			emit(gesture.RawMove, st, pt(st.At))
		case "release":
			emit(gesture.RawRelease, st, pt(st.At))
		case "cancel":
			emit(gesture.RawCancel, st, f64.Point{})
		case "drag":
			from, to := pt(st.At), pt(st.To)
			n := st.Moves
			if n == 0 {
				n = defaultMoves
			}
			emit(gesture.RawPress, st, from)
			for i := 1; i <= n; i++ {
				emit(gesture.RawMove, st, from.Add(to.Sub(from).Mul(float64(i)/float64(n))))
			}
			emit(gesture.RawRelease, st, to)
		}
	}
	return raws
}
