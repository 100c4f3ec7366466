// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"raycaster/pkg/game/renderer"
)

// ScreenshotName returns the file name used for a screenshot taken at t
func ScreenshotName(t time.Time) string {
	return fmt.Sprintf("screenshot-%s.png", t.Format("20060102-150405"))
}

// SaveScreenshotPNG rasterises a recorded frame and writes it to dir as a PNG.
// Returns the path written.
func SaveScreenshotPNG(frame *renderer.DisplayList, width, height int, dir string) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid screenshot size %dx%d", width, height)
	}

	canvas := renderer.NewImageCanvas(width, height)
	frame.Replay(canvas)

	path := filepath.Join(dir, ScreenshotName(time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, f.Close()
}
