// Package renderer defines the drawing surface and window backends the game
// renders through, plus two backend-independent canvases: a display list
// that records draw calls and an image canvas that rasterises them.
package renderer

import (
	"image/color"
)

// Color palette
var (
	ColorBackground = color.RGBA{0, 0, 0, 255}       // Black
	ColorSky        = color.RGBA{135, 206, 235, 255} // Sky blue ceiling
	ColorGround     = color.RGBA{124, 252, 0, 255}   // Lawn green floor
	ColorWall       = color.RGBA{255, 255, 255, 255} // Wall cells on the 2D map
	ColorFloor      = color.RGBA{0, 0, 0, 255}       // Empty cells on the 2D map
	ColorPlayer     = color.RGBA{0, 255, 0, 255}     // Player marker
	ColorHitCell    = color.RGBA{255, 0, 0, 255}     // Cells struck by a ray
	ColorRay        = color.RGBA{0, 0, 255, 255}     // Ray lines on the 2D map
	ColorText       = color.RGBA{255, 255, 0, 255}   // HUD text
)

// Gray returns an opaque grey of the given level
func Gray(level uint8) color.RGBA {
	return color.RGBA{level, level, level, 255}
}

// Tee returns a canvas that forwards every call to each of canvases.
func Tee(canvases ...Canvas) Canvas {
	return teeCanvas(canvases)
}

type teeCanvas []Canvas

func (t teeCanvas) SetDrawColor(c color.RGBA) {
	for _, cv := range t {
		cv.SetDrawColor(c)
	}
}

func (t teeCanvas) Clear() {
	for _, cv := range t {
		cv.Clear()
	}
}

func (t teeCanvas) FillRect(x, y, w, h float64) {
	for _, cv := range t {
		cv.FillRect(x, y, w, h)
	}
}

func (t teeCanvas) DrawLine(x1, y1, x2, y2 float64) {
	for _, cv := range t {
		cv.DrawLine(x1, y1, x2, y2)
	}
}

func (t teeCanvas) DrawPoint(x, y float64) {
	for _, cv := range t {
		cv.DrawPoint(x, y)
	}
}

func (t teeCanvas) DrawText(x, y int, s string) {
	for _, cv := range t {
		cv.DrawText(x, y, s)
	}
}
