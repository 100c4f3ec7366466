package raycast

import (
	"math"
)

// Epsilon keeps the wall height finite at zero depth
const Epsilon = 0.00001

// WallSlice is one vertical strip of the first-person view.
// Height may be far larger than the view; canvases clip it.
type WallSlice struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Shade  uint8
}

// CorrectDepth converts a ray's straight-line depth into the perpendicular
// distance to the camera plane, removing the fisheye bulge.
func CorrectDepth(depth, playerAngle, rayAngle float64) float64 {
	return depth * math.Cos(playerAngle-rayAngle)
}

// WallHeight maps a corrected depth to an on-screen height.
// Negative depths are treated as zero.
func WallHeight(correctedDepth, projection float64) float64 {
	if correctedDepth < 0 {
		correctedDepth = 0
	}
	return projection / (correctedDepth + Epsilon)
}

// Shade returns the grey level for a wall at the given uncorrected depth,
// in (0, 255].
func Shade(depth, falloff float64) float64 {
	return 255 / (1 + depth*depth*falloff)
}

// Project turns a hit into the slice drawn for it. Shade is computed from the
// raw depth and height from the corrected depth.
func Project(hit RayHit, playerAngle float64, params Params) WallSlice {
	shade := Shade(hit.Depth, params.ShadeFalloff)
	corrected := CorrectDepth(hit.Depth, playerAngle, hit.Angle)
	height := WallHeight(corrected, params.ProjectionConstant)

	width := params.SliceWidth()
	return WallSlice{
		X:      params.ViewOriginX + float64(hit.Index)*width,
		Y:      params.ViewHeight/2 - height/2,
		Width:  width,
		Height: height,
		Shade:  uint8(shade),
	}
}
