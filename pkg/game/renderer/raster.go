package renderer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageCanvas rasterises draw calls into an RGBA image.
// It backs screenshots and the terminal backend.
type ImageCanvas struct {
	img   *image.RGBA
	color color.RGBA
	src   *image.Uniform
}

// NewImageCanvas creates a canvas of the given size
func NewImageCanvas(width, height int) *ImageCanvas {
	return WrapImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// WrapImage draws onto an existing image
func WrapImage(img *image.RGBA) *ImageCanvas {
	return &ImageCanvas{img: img, src: image.NewUniform(color.RGBA{})}
}

// Image returns the backing image
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

func (c *ImageCanvas) SetDrawColor(col color.RGBA) {
	c.color = col
	c.src = image.NewUniform(col)
}

func (c *ImageCanvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), c.src, image.Point{}, draw.Src)
}

func (c *ImageCanvas) FillRect(x, y, w, h float64) {
	if math.IsNaN(x + y + w + h) {
		return
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}

	b := c.img.Bounds()
	r := image.Rect(
		clampCoord(math.Floor(x), b.Min.X, b.Max.X),
		clampCoord(math.Floor(y), b.Min.Y, b.Max.Y),
		clampCoord(math.Floor(x+w), b.Min.X, b.Max.X),
		clampCoord(math.Floor(y+h), b.Min.Y, b.Max.Y),
	)
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, c.src, image.Point{}, draw.Over)
}

func (c *ImageCanvas) DrawLine(x1, y1, x2, y2 float64) {
	b := c.img.Bounds()
	x1, y1, x2, y2, ok := clipLine(x1, y1, x2, y2, b)
	if !ok {
		return
	}

	// Bresenham on the clipped segment
	ix1, iy1 := int(math.Floor(x1)), int(math.Floor(y1))
	ix2, iy2 := int(math.Floor(x2)), int(math.Floor(y2))
	dx, dy := abs(ix2-ix1), -abs(iy2-iy1)
	sx, sy := 1, 1
	if ix1 > ix2 {
		sx = -1
	}
	if iy1 > iy2 {
		sy = -1
	}
	e := dx + dy
	for {
		c.plot(ix1, iy1)
		if ix1 == ix2 && iy1 == iy2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ix1 += sx
		}
		if e2 <= dx {
			e += dx
			iy1 += sy
		}
	}
}

func (c *ImageCanvas) DrawPoint(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	b := c.img.Bounds()
	c.plot(clampCoord(math.Floor(x), b.Min.X-1, b.Max.X), clampCoord(math.Floor(y), b.Min.Y-1, b.Max.Y))
}

func (c *ImageCanvas) DrawText(x, y int, s string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.img,
		Src:  c.src,
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(s)
}

func (c *ImageCanvas) plot(x, y int) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(x, y, c.color)
}

// clampCoord converts v to an int limited to [lo, hi], which keeps huge
// slice heights from overflowing the conversion.
func clampCoord(v float64, lo, hi int) int {
	if v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}

// clipLine clips a segment to r with Liang-Barsky.
func clipLine(x1, y1, x2, y2 float64, r image.Rectangle) (float64, float64, float64, float64, bool) {
	if math.IsNaN(x1 + y1 + x2 + y2) {
		return 0, 0, 0, 0, false
	}
	minX, minY := float64(r.Min.X), float64(r.Min.Y)
	maxX, maxY := float64(r.Max.X)-0.5, float64(r.Max.Y)-0.5

	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1 - minX},
		{dx, maxX - x1},
		{-dy, y1 - minY},
		{dy, maxY - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
