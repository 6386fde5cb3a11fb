// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"context"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/sync/errgroup"

	"github.com/sliderkit/slider/app"
	"github.com/sliderkit/slider/f64"
	"github.com/sliderkit/slider/gesture"
	"github.com/sliderkit/slider/internal/config"
	"github.com/sliderkit/slider/io/pointer"
)

// window implements ebiten.Game for a Host. The game screen has the
// resolution of the device, so ebiten positions are device pixels.
type window struct {
	app     *app.App
	demo    *config.Demo
	host    *app.Host
	reloads <-chan *config.Demo
	// pending holds a reload until no pointer is down.
	pending *config.Demo
	start   time.Time
	ids     []ebiten.TouchID
}

func runWindow(d *config.Demo) error {
	a, err := newApp(d)
	if err != nil {
		return err
	}
	m := metricFor(d, deviceScale())
	size := image.Pt(int(float64(d.Window.Width)*m.PxPerDp), int(float64(d.Window.Height)*m.PxPerDp))
	w := &window{
		app:   a,
		demo:  d,
		host:  newHost(a, d, size, m),
		start: time.Now(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	if *watch {
		cw, err := config.NewWatcher(*configFile)
		if err != nil {
			return err
		}
		reloads := make(chan *config.Demo, 1)
		w.reloads = reloads
		cw.OnLoad = func(d *config.Demo) {
			select {
			case reloads <- d:
			case <-ctx.Done():
			}
		}
		cw.OnError = func(err error) {
			a.Log.Print(err)
		}
		g.Go(func() error {
			defer cw.Close()
			if err := cw.EventLoop(ctx); err != context.Canceled {
				return err
			}
			return nil
		})
	}

	ebiten.SetWindowSize(d.Window.Width, d.Window.Height)
	ebiten.SetWindowTitle(d.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	a.Log.Printf("window %dx%d dp at scale %g", d.Window.Width, d.Window.Height, m.PxPerDp)
	err = ebiten.RunGame(w)
	cancel()
	if werr := g.Wait(); err == nil {
		err = werr
	}
	return err
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if w.pending == nil {
		select {
		case w.pending = <-w.reloads:
		default:
		}
	}
	if w.pending != nil && w.host.Active() == 0 {
		w.reload(w.pending)
		w.pending = nil
	}
	w.input(time.Since(w.start))
	return nil
}

// reload replaces the sliders and theme with those of d. The window
// keeps its size.
func (w *window) reload(d *config.Demo) {
	a, err := newApp(d)
	if err != nil {
		w.app.Log.Printf("reload: %v", err)
		return
	}
	w.app, w.demo = a, d
	size := w.host.Size()
	w.host = newHost(a, d, size, metricFor(d, deviceScale()))
	ebiten.SetWindowTitle(d.Window.Title)
	a.Log.Printf("reloaded %s", *configFile)
}

// input feeds the mouse and touch input of the tick to the host.
// Touches use pointer ids from 1, the mouse uses 0.
func (w *window) input(now time.Duration) {
	send := func(k gesture.RawKind, id pointer.ID, src pointer.Source, x, y int) {
		w.host.Input(gesture.Raw{
			Kind:     k,
			ID:       id,
			Source:   src,
			Position: f64.Pt(float64(x), float64(y)),
			Time:     now,
		})
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		send(gesture.RawPress, 0, pointer.Mouse, x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		send(gesture.RawRelease, 0, pointer.Mouse, x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		send(gesture.RawMove, 0, pointer.Mouse, x, y)
	}

	touchID := func(id ebiten.TouchID) pointer.ID {
		return pointer.ID(id) + 1
	}
	w.ids = inpututil.AppendJustPressedTouchIDs(w.ids[:0])
	for _, id := range w.ids {
		x, y := ebiten.TouchPosition(id)
		send(gesture.RawPress, touchID(id), pointer.Touch, x, y)
	}
	w.ids = ebiten.AppendTouchIDs(w.ids[:0])
	for _, id := range w.ids {
		x, y := ebiten.TouchPosition(id)
		send(gesture.RawMove, touchID(id), pointer.Touch, x, y)
	}
	w.ids = inpututil.AppendJustReleasedTouchIDs(w.ids[:0])
	for _, id := range w.ids {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		send(gesture.RawRelease, touchID(id), pointer.Touch, x, y)
	}
}

func (w *window) Draw(screen *ebiten.Image) {
	frame := w.host.Frame()
	if frame.Bounds().Size() != screen.Bounds().Size() {
		return
	}
	screen.WritePixels(frame.Pix)
}

// Layout sizes the screen to the device resolution of the window.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	m := metricFor(w.demo, deviceScale())
	size := image.Pt(int(float64(outsideWidth)*m.PxPerDp), int(float64(outsideHeight)*m.PxPerDp))
	w.host.Resize(size, m)
	return size.X, size.Y
}
