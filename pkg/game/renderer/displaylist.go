package renderer

import (
	"image/color"
)

// OpKind identifies a recorded draw call
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpLine
	OpPoint
	OpText
)

// String returns the string representation of an op kind
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpFillRect:
		return "fill_rect"
	case OpLine:
		return "line"
	case OpPoint:
		return "point"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call with the colour that was current when it was made.
// FillRect uses X, Y, W, H; DrawLine uses X, Y, X2, Y2; DrawPoint and DrawText use X, Y.
type Op struct {
	Kind  OpKind
	Color color.RGBA

	X, Y   float64
	W, H   float64
	X2, Y2 float64

	Text string
}

// DisplayList is a Canvas that records draw calls so they can be replayed
// later, on another goroutine's schedule or onto another surface.
type DisplayList struct {
	ops   []Op
	color color.RGBA
}

// NewDisplayList creates an empty display list
func NewDisplayList() *DisplayList {
	return &DisplayList{ops: make([]Op, 0, 512)}
}

// Reset drops all recorded ops, keeping the allocated storage
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
	d.color = color.RGBA{}
}

// Ops returns the recorded ops in call order
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Len returns the number of recorded ops
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Replay issues the recorded calls against c in order
func (d *DisplayList) Replay(c Canvas) {
	var current color.RGBA
	first := true
	for _, op := range d.ops {
		if first || op.Color != current {
			c.SetDrawColor(op.Color)
			current = op.Color
			first = false
		}
		switch op.Kind {
		case OpClear:
			c.Clear()
		case OpFillRect:
			c.FillRect(op.X, op.Y, op.W, op.H)
		case OpLine:
			c.DrawLine(op.X, op.Y, op.X2, op.Y2)
		case OpPoint:
			c.DrawPoint(op.X, op.Y)
		case OpText:
			c.DrawText(int(op.X), int(op.Y), op.Text)
		}
	}
}

func (d *DisplayList) SetDrawColor(c color.RGBA) {
	d.color = c
}

func (d *DisplayList) Clear() {
	d.ops = append(d.ops, Op{Kind: OpClear, Color: d.color})
}

func (d *DisplayList) FillRect(x, y, w, h float64) {
	d.ops = append(d.ops, Op{Kind: OpFillRect, Color: d.color, X: x, Y: y, W: w, H: h})
}

func (d *DisplayList) DrawLine(x1, y1, x2, y2 float64) {
	d.ops = append(d.ops, Op{Kind: OpLine, Color: d.color, X: x1, Y: y1, X2: x2, Y2: y2})
}

func (d *DisplayList) DrawPoint(x, y float64) {
	d.ops = append(d.ops, Op{Kind: OpPoint, Color: d.color, X: x, Y: y})
}

func (d *DisplayList) DrawText(x, y int, s string) {
	d.ops = append(d.ops, Op{Kind: OpText, Color: d.color, X: float64(x), Y: float64(y), Text: s})
}
