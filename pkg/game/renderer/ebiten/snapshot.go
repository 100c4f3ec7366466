package ebiten

import (
	"sync"

	"raycaster/pkg/game/renderer"
)

// frameBuffer holds two display lists: Update records into the back one and
// Draw replays the front one. A swap publishes a complete frame.
type frameBuffer struct {
	mu    sync.Mutex
	front *renderer.DisplayList
	back  *renderer.DisplayList
}

func newFrameBuffer() *frameBuffer {
	return &frameBuffer{
		front: renderer.NewDisplayList(),
		back:  renderer.NewDisplayList(),
	}
}

// Back returns the list for the next frame, emptied
func (f *frameBuffer) Back() *renderer.DisplayList {
	f.back.Reset()
	return f.back
}

// Swap publishes the back list as the current frame
func (f *frameBuffer) Swap() {
	f.mu.Lock()
	f.front, f.back = f.back, f.front
	f.mu.Unlock()
}

// Front calls fn with the current frame under the lock
func (f *frameBuffer) Front(fn func(*renderer.DisplayList)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.front)
}
