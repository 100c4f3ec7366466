// Package ebiten provides an Ebiten-based window backend.
//
// Ebiten owns the main loop: Update runs the game tick into a display list
// and Draw replays the most recent complete list onto the screen.
package ebiten

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"raycaster/pkg/game/renderer"
)

// EbitenRenderer is a renderer.Backend drawing into an Ebiten window
type EbitenRenderer struct {
	log *logrus.Entry

	windowWidth  int
	windowHeight int
	tps          int

	opened bool
	closed bool

	// Run-time state, valid while Run is active
	ctx     context.Context
	tick    renderer.TickFunc
	keys    *keyPoller
	frames  *frameBuffer
	stopped bool

	windowOpenedLogged bool
	mu                 sync.Mutex
}

// New creates a new Ebiten renderer running at tps ticks per second
func New(log *logrus.Entry, tps int) *EbitenRenderer {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &EbitenRenderer{log: log, tps: tps}
}

func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Open sizes and titles the window. Ebiten creates the window itself when
// Run starts, so window creation failures surface from Run.
func (e *EbitenRenderer) Open(title string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", renderer.ErrWindowCreation, width, height)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.windowWidth, e.windowHeight = width, height
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(e.tps)
	e.opened = true
	e.closed = false
	return nil
}

// Run starts the Ebiten game loop and blocks until the tick stops it,
// the window is closed or ctx is cancelled.
func (e *EbitenRenderer) Run(ctx context.Context, tick renderer.TickFunc) error {
	e.mu.Lock()
	if !e.opened || e.closed {
		e.mu.Unlock()
		return fmt.Errorf("%w: backend is not open", renderer.ErrInit)
	}
	e.ctx = ctx
	e.tick = tick
	e.keys = newKeyPoller()
	e.frames = newFrameBuffer()
	e.stopped = false
	e.mu.Unlock()

	err := ebiten.RunGame(e)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("%w: %v", renderer.ErrWindowCreation, err)
	}
	return nil
}

// Close marks the backend closed. Ebiten tears the window down itself when
// RunGame returns.
func (e *EbitenRenderer) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.opened = false
	return nil
}

// Update polls input and runs one tick (ebiten.Game)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("window opened")
	}

	if e.stopped {
		return ebiten.Termination
	}
	if err := e.ctx.Err(); err != nil {
		e.log.WithError(err).Info("context done, stopping")
		return ebiten.Termination
	}

	keys := e.keys.Held()
	events := e.keys.Events()

	back := e.frames.Back()
	if !e.tick(events, keys, back) {
		e.stopped = true
		return ebiten.Termination
	}
	e.frames.Swap()
	return nil
}

// Draw replays the last completed frame (ebiten.Game)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.frames.Front(func(frame *renderer.DisplayList) {
		frame.Replay(newScreenCanvas(screen))
	})
}

// Layout returns the game's logical screen size (ebiten.Game)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}
