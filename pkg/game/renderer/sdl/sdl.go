//go:build sdl

// Package sdl provides an SDL2 window backend. It needs cgo and the SDL2
// development libraries, so it is only built with the "sdl" build tag.
package sdl

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	engineinput "raycaster/pkg/engine/input"
	"raycaster/pkg/game/renderer"
)

func init() {
	// SDL video calls must stay on the main thread
	runtime.LockOSThread()
}

// scancodes maps SDL scancodes to the raw codes used by the input package
var scancodes = map[sdl.Scancode]string{
	sdl.SCANCODE_LEFT:   "arrow_left",
	sdl.SCANCODE_RIGHT:  "arrow_right",
	sdl.SCANCODE_UP:     "arrow_up",
	sdl.SCANCODE_DOWN:   "arrow_down",
	sdl.SCANCODE_A:      "a",
	sdl.SCANCODE_D:      "d",
	sdl.SCANCODE_W:      "w",
	sdl.SCANCODE_S:      "s",
	sdl.SCANCODE_Q:      "q",
	sdl.SCANCODE_ESCAPE: "escape",
	sdl.SCANCODE_O:      "o",
	sdl.SCANCODE_H:      "h",
	sdl.SCANCODE_P:      "p",
	sdl.SCANCODE_M:      "m",
	sdl.SCANCODE_F9:     "f9",
	sdl.SCANCODE_F12:    "f12",
}

// SDLRenderer is a renderer.Backend using an SDL2 window and accelerated renderer
type SDLRenderer struct {
	log        *logrus.Entry
	frameDelay time.Duration

	initialized bool
	window      *sdl.Window
	renderer    *sdl.Renderer

	glyphs *image.Alpha
}

// New creates an SDL backend that waits frameDelay between frames
func New(log *logrus.Entry, frameDelay time.Duration) *SDLRenderer {
	return &SDLRenderer{log: log, frameDelay: frameDelay}
}

func (s *SDLRenderer) Name() string {
	return "sdl"
}

// Open initialises SDL video, then creates the window and renderer. If a
// step fails everything created before it is released.
func (s *SDLRenderer) Open(title string, width, height int) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("%w: %v", renderer.ErrInit, err)
	}
	s.initialized = true

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		s.Close()
		return fmt.Errorf("%w: %v", renderer.ErrWindowCreation, err)
	}
	s.window = window

	r, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		s.Close()
		return fmt.Errorf("%w: %v", renderer.ErrRendererCreation, err)
	}
	s.renderer = r

	s.log.WithFields(logrus.Fields{"width": width, "height": height}).Info("window opened")
	return nil
}

// Run polls events, ticks and presents until tick returns false or ctx is done.
func (s *SDLRenderer) Run(ctx context.Context, tick renderer.TickFunc) error {
	if s.renderer == nil {
		return fmt.Errorf("%w: backend is not open", renderer.ErrInit)
	}

	var codes, held []string
	for {
		if err := ctx.Err(); err != nil {
			s.log.WithError(err).Info("context done, stopping")
			return nil
		}

		var events []engineinput.Event
		codes = codes[:0]
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				events = append(events, engineinput.QuitEvent)
			case *sdl.KeyboardEvent:
				if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
					continue
				}
				if code, ok := scancodes[ev.Keysym.Scancode]; ok {
					codes = append(codes, code)
				}
			}
		}
		events = append(events, engineinput.EventsFromCodes(codes)...)

		state := sdl.GetKeyboardState()
		held = held[:0]
		for sc, code := range scancodes {
			if int(sc) < len(state) && state[sc] != 0 {
				held = append(held, code)
			}
		}

		if !tick(events, engineinput.StateFromCodes(held), s) {
			return nil
		}
		s.renderer.Present()
		sdl.Delay(uint32(s.frameDelay / time.Millisecond))
	}
}

// Close destroys the renderer and window and shuts SDL down. It is safe to
// call more than once and after a partial Open.
func (s *SDLRenderer) Close() error {
	var firstErr error
	if s.renderer != nil {
		if err := s.renderer.Destroy(); err != nil {
			firstErr = err
		}
		s.renderer = nil
	}
	if s.window != nil {
		if err := s.window.Destroy(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.window = nil
	}
	if s.initialized {
		sdl.Quit()
		s.initialized = false
	}
	return firstErr
}

func (s *SDLRenderer) SetDrawColor(c color.RGBA) {
	s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (s *SDLRenderer) Clear() {
	s.renderer.Clear()
}

func (s *SDLRenderer) FillRect(x, y, w, h float64) {
	s.renderer.FillRectF(&sdl.FRect{X: float32(x), Y: float32(y), W: float32(w), H: float32(h)})
}

func (s *SDLRenderer) DrawLine(x1, y1, x2, y2 float64) {
	s.renderer.DrawLineF(float32(x1), float32(y1), float32(x2), float32(y2))
}

func (s *SDLRenderer) DrawPoint(x, y float64) {
	s.renderer.DrawPointF(float32(x), float32(y))
}

// DrawText rasterises s with the basic bitmap font and plots the lit pixels
func (s *SDLRenderer) DrawText(x, y int, text string) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	h := face.Height
	if w == 0 {
		return
	}
	if s.glyphs == nil || s.glyphs.Bounds().Dx() < w || s.glyphs.Bounds().Dy() < h {
		s.glyphs = image.NewAlpha(image.Rect(0, 0, max(w, 256), h))
	}
	clear(s.glyphs.Pix)

	d := &font.Drawer{
		Dst:  s.glyphs,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			if s.glyphs.AlphaAt(px, py).A > 127 {
				s.renderer.DrawPoint(int32(x+px), int32(y+py))
			}
		}
	}
}

var _ renderer.Canvas = (*SDLRenderer)(nil)
var _ renderer.Backend = (*SDLRenderer)(nil)
