// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher reloads a configuration file when it changes.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
	// OnLoad is called with every valid configuration read after a
	// change.
	OnLoad func(d *Demo)
	// OnError is called with load and watch errors.
	OnError func(err error)
}

// NewWatcher starts watching the configuration file at path. The
// directory of the file is watched so that editors that replace the
// file are noticed.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "config: watch")
	}
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "config: watch %s", path)
	}
	return &Watcher{path: path, w: w}, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close() // closes w.w.{Events,Errors}
}

// EventLoop dispatches file events until ctx is done or the watcher
// is closed.
func (w *Watcher) EventLoop(ctx context.Context) error {
	const changed = fsnotify.Create | fsnotify.Write | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&changed == 0 {
				continue
			}
			d, err := Load(w.path)
			if err != nil {
				w.onError(err)
				continue
			}
			if w.OnLoad != nil {
				w.OnLoad(d)
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			w.onError(errors.Wrap(err, "config: watch"))
		}
	}
}

func (w *Watcher) onError(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}
