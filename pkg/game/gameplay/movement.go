// Package gameplay provides core game logic for player movement and the frame loop.
package gameplay

import (
	"math"

	engineinput "raycaster/pkg/engine/input"
	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/state"
)

// MoveParams are the per-frame movement rates
type MoveParams struct {
	TurnRate  float64
	Speed     float64
	BlockSize float64
}

// CheckCollision reports whether the world point x, y lies in a wall cell.
// Points outside the grid collide.
func CheckCollision(grid *world.Grid, x, y, blockSize float64) bool {
	row, col := world.CellAt(x, y, blockSize)
	return grid.IsWall(row, col)
}

// ApplyInput turns and moves the player for one frame of held keys.
// Keys are handled in a fixed order (left, right, forward, backward) and a
// move whose destination collides is dropped entirely.
func ApplyInput(g *state.Game, keys engineinput.State, p MoveParams) {
	if g == nil || g.Grid == nil {
		return
	}

	if keys.Has(engineinput.ActionTurnLeft) {
		g.Player.Angle -= p.TurnRate
	}
	if keys.Has(engineinput.ActionTurnRight) {
		g.Player.Angle += p.TurnRate
	}
	if keys.Has(engineinput.ActionMoveForward) {
		tryMove(g, p.Speed, p.BlockSize)
	}
	if keys.Has(engineinput.ActionMoveBackward) {
		tryMove(g, -p.Speed, p.BlockSize)
	}
}

// tryMove steps the player along its heading by distance units.
func tryMove(g *state.Game, distance, blockSize float64) bool {
	x := g.Player.X + math.Cos(g.Player.Angle)*distance
	y := g.Player.Y - math.Sin(g.Player.Angle)*distance

	if CheckCollision(g.Grid, x, y, blockSize) {
		g.Blocked++
		return false
	}

	g.Player.X = x
	g.Player.Y = y
	return true
}
