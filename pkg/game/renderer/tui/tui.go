// Package tui provides a terminal backend built on tcell.
//
// Frames are rasterised into an image and shown with half-block characters,
// two pixels per terminal cell. Terminals report key presses but not
// releases, so a key counts as held for the frame its press arrives in.
package tui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	engineinput "raycaster/pkg/engine/input"
	"raycaster/pkg/engine/terminal"
	"raycaster/pkg/game/renderer"
)

// halfBlock draws the top half of a cell in the foreground colour
const halfBlock = '▀'

// TUIRenderer is a renderer.Backend drawing into the terminal
type TUIRenderer struct {
	log        *logrus.Entry
	frameDelay time.Duration

	screen tcell.Screen
	canvas *renderer.ImageCanvas

	closeOnce sync.Once
}

// New creates a terminal backend that ticks every frameDelay
func New(log *logrus.Entry, frameDelay time.Duration) *TUIRenderer {
	if frameDelay <= 0 {
		frameDelay = time.Second / 60
	}
	return &TUIRenderer{log: log, frameDelay: frameDelay}
}

func (t *TUIRenderer) Name() string {
	return "tui"
}

// Open takes over the terminal. The logical width and height size the
// off-screen image frames are drawn into.
func (t *TUIRenderer) Open(title string, width, height int) error {
	if !terminal.IsTerminal() {
		return fmt.Errorf("%w: stdin/stdout is not a terminal", renderer.ErrInit)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", renderer.ErrRendererCreation, width, height)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: %v", renderer.ErrInit, err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("%w: %v", renderer.ErrWindowCreation, err)
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.SetTitle(title)
	s.HideCursor()
	s.Clear()

	t.screen = s
	t.canvas = renderer.NewImageCanvas(width, height)
	t.closeOnce = sync.Once{}

	cols, rows := terminal.GetSize()
	t.log.WithFields(logrus.Fields{"cols": cols, "rows": rows}).Info("terminal opened")
	return nil
}

// Run ticks at the configured frame delay until tick returns false or ctx is done.
func (t *TUIRenderer) Run(ctx context.Context, tick renderer.TickFunc) error {
	if t.screen == nil {
		return fmt.Errorf("%w: backend is not open", renderer.ErrInit)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan tcell.Event, 64)
	go t.pumpEvents(ctx, events)

	ticker := time.NewTicker(t.frameDelay)
	defer ticker.Stop()

	var codes []string
	for {
		select {
		case <-ctx.Done():
			t.log.WithError(ctx.Err()).Info("context done, stopping")
			return nil
		case <-ticker.C:
		}

		codes = codes[:0]
		var quit bool
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if ev.Key() == tcell.KeyCtrlC {
						quit = true
						continue
					}
					if code := KeyCode(ev); code != "" {
						codes = append(codes, code)
					}
				case *tcell.EventResize:
					t.screen.Sync()
				}
			default:
				break drain
			}
		}

		frameEvents := engineinput.EventsFromCodes(codes)
		if quit {
			frameEvents = append([]engineinput.Event{engineinput.QuitEvent}, frameEvents...)
		}
		if !tick(frameEvents, engineinput.StateFromCodes(codes), t.canvas) {
			return nil
		}
		t.present()
	}
}

// pumpEvents forwards tcell events until the screen is finalised or ctx ends.
func (t *TUIRenderer) pumpEvents(ctx context.Context, out chan<- tcell.Event) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		default:
			// Channel full, drop input
		}
	}
}

// present blits the frame image onto the terminal
func (t *TUIRenderer) present() {
	cols, rows := t.screen.Size()
	img := t.canvas.Image()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, bottom := SampleCell(img, x, y, cols, rows)
			style := tcell.StyleDefault.Foreground(toTCell(top)).Background(toTCell(bottom))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

// Close restores the terminal. It is safe to call more than once.
func (t *TUIRenderer) Close() error {
	if t.screen == nil {
		return nil
	}
	t.closeOnce.Do(func() {
		t.screen.Fini()
	})
	return nil
}

// SampleCell returns the colours of the upper and lower half of terminal
// cell x, y when img is scaled to a cols x rows cell grid.
func SampleCell(img *image.RGBA, x, y, cols, rows int) (top, bottom color.RGBA) {
	b := img.Bounds()
	px := b.Min.X + x*b.Dx()/cols
	pyTop := b.Min.Y + (2*y)*b.Dy()/(2*rows)
	pyBottom := b.Min.Y + (2*y+1)*b.Dy()/(2*rows)
	return img.RGBAAt(px, pyTop), img.RGBAAt(px, pyBottom)
}

// KeyCode converts a tcell key event to the raw code used by the input package
func KeyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyF9:
		return "f9"
	case tcell.KeyF12:
		return "f12"
	case tcell.KeyRune:
		return string(unicode.ToLower(ev.Rune()))
	}
	return ""
}

func toTCell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
