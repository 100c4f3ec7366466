// Package raycast marches rays through the grid and projects the hits into
// wall slices for the first-person view.
package raycast

import (
	"iter"
	"math"

	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/state"
)

// HitKind says what stopped a ray
type HitKind int

const (
	// HitWall is a wall cell inside the grid
	HitWall HitKind = iota
	// HitBoundary means the ray left the grid; the edge acts as a wall
	HitBoundary
	// HitMaxDepth means the march ran out of steps
	HitMaxDepth
)

// String returns the string representation of a hit kind
func (k HitKind) String() string {
	switch k {
	case HitWall:
		return "wall"
	case HitBoundary:
		return "boundary"
	case HitMaxDepth:
		return "max_depth"
	default:
		return "unknown"
	}
}

// Params are the fixed settings for casting and projecting rays.
type Params struct {
	FOV      float64
	RayCount int

	// BlockSize is the pixel size of a grid cell
	BlockSize float64
	// MaxDepth bounds the march, in pixels
	MaxDepth int

	ProjectionConstant float64
	ShadeFalloff       float64

	// ViewOriginX is the left edge of the 3D panel
	ViewOriginX float64
	// ViewHeight is the height (and width) of the 3D panel
	ViewHeight float64
}

// HalfFOV returns half the field of view
func (p Params) HalfFOV() float64 {
	return p.FOV / 2
}

// StepAngle returns the angle between neighbouring rays
func (p Params) StepAngle() float64 {
	return p.FOV / float64(p.RayCount)
}

// SliceWidth returns the screen width of one wall slice
func (p Params) SliceWidth() float64 {
	return p.ViewHeight / float64(p.RayCount)
}

// RayAngle returns the angle of ray i for a player facing heading.
// Ray 0 is the rightmost ray; higher indices sweep to the left.
func (p Params) RayAngle(heading float64, i int) float64 {
	return heading - p.HalfFOV() + float64(i)*p.StepAngle()
}

// RayHit is where a single ray stopped.
type RayHit struct {
	Index int
	// Angle is the ray's own angle, before fisheye correction
	Angle float64

	HitX float64
	HitY float64

	// Depth is the number of one-pixel steps taken, uncorrected
	Depth float64

	Row int
	Col int

	Kind HitKind
}

// CastRay marches one ray from the player at the given angle until it
// enters a wall cell, leaves the grid or reaches params.MaxDepth.
func CastRay(p state.Player, grid *world.Grid, angle float64, params Params) RayHit {
	cos, sin := math.Cos(angle), math.Sin(angle)

	hit := RayHit{Angle: angle, HitX: p.X, HitY: p.Y, Kind: HitMaxDepth}
	for depth := 0; depth <= params.MaxDepth; depth++ {
		d := float64(depth)
		hitX := p.X + cos*d
		hitY := p.Y - sin*d
		row, col := world.CellAt(hitX, hitY, params.BlockSize)

		hit.HitX, hit.HitY, hit.Depth = hitX, hitY, d
		hit.Row, hit.Col = row, col

		if depth == params.MaxDepth {
			hit.Kind = HitMaxDepth
			break
		}
		if !grid.IsValidPosition(row, col) {
			hit.Kind = HitBoundary
			break
		}
		if grid.IsWall(row, col) {
			hit.Kind = HitWall
			break
		}
	}
	return hit
}

// CastRays returns the hits for every ray across the field of view, in ray
// index order. The sequence is lazy and can be ranged over any number of times.
func CastRays(p state.Player, grid *world.Grid, params Params) iter.Seq[RayHit] {
	return func(yield func(RayHit) bool) {
		for i := 0; i < params.RayCount; i++ {
			hit := CastRay(p, grid, params.RayAngle(p.Angle, i), params)
			hit.Index = i
			if !yield(hit) {
				return
			}
		}
	}
}
