package renderer

import (
	"context"
	"errors"
	"image/color"

	"raycaster/pkg/engine/input"
)

// Startup failures. Backends wrap these with the platform error text.
var (
	ErrInit             = errors.New("graphics subsystem could not initialize")
	ErrWindowCreation   = errors.New("window could not be created")
	ErrRendererCreation = errors.New("renderer could not be created")
)

// Canvas is the set of drawing primitives a frame is built from.
// Coordinates are in logical pixels; implementations clip anything
// outside their surface.
type Canvas interface {
	// SetDrawColor sets the colour used by the following calls
	SetDrawColor(c color.RGBA)

	// Clear fills the whole surface with the draw colour
	Clear()

	FillRect(x, y, w, h float64)
	DrawLine(x1, y1, x2, y2 float64)
	DrawPoint(x, y float64)

	// DrawText writes a single line of debug text with its top-left at x, y
	DrawText(x, y int, s string)
}

// TickFunc runs one frame. events are the input events drained since the
// previous frame, keys the actions held right now. It returns false once the
// game wants to stop.
type TickFunc func(events []input.Event, keys input.State, canvas Canvas) bool

// Backend is a windowing and drawing implementation.
// Implementations can include Ebiten, a terminal, SDL, etc.
type Backend interface {
	// Name identifies the backend in logs
	Name() string

	// Open acquires the window and drawing surface. On failure everything
	// acquired so far has been released already.
	Open(title string, width, height int) error

	// Run calls tick once per frame, presenting and pacing between frames,
	// until tick returns false or ctx is cancelled.
	Run(ctx context.Context, tick TickFunc) error

	// Close releases everything Open acquired. It is safe to call more than once.
	Close() error
}
