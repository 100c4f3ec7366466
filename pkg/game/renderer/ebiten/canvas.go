package ebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"raycaster/pkg/game/renderer"
)

// hudFace is the bitmap font used for debug text
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// screenCanvas draws renderer.Canvas calls onto an Ebiten image
type screenCanvas struct {
	dst   *ebiten.Image
	color color.RGBA
}

func newScreenCanvas(dst *ebiten.Image) *screenCanvas {
	return &screenCanvas{dst: dst}
}

var _ renderer.Canvas = (*screenCanvas)(nil)

func (c *screenCanvas) SetDrawColor(col color.RGBA) {
	c.color = col
}

func (c *screenCanvas) Clear() {
	c.dst.Fill(c.color)
}

func (c *screenCanvas) FillRect(x, y, w, h float64) {
	x, y, w, h = clipRect(x, y, w, h, c.dst.Bounds().Dx(), c.dst.Bounds().Dy())
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), c.color, false)
}

func (c *screenCanvas) DrawLine(x1, y1, x2, y2 float64) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, c.color, false)
}

func (c *screenCanvas) DrawPoint(x, y float64) {
	c.dst.Set(int(x), int(y), c.color)
}

func (c *screenCanvas) DrawText(x, y int, s string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c.color)
	text.Draw(c.dst, s, hudFace, op)
}

// clipRect limits a rectangle to the screen so very tall wall slices stay
// within float32 range.
func clipRect(x, y, w, h float64, width, height int) (float64, float64, float64, float64) {
	if math.IsNaN(x + y + w + h) {
		return 0, 0, 0, 0
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, float64(width)), min(y+h, float64(height))
	return x0, y0, x1 - x0, y1 - y0
}
