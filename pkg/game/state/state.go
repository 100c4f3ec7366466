// Package state holds the mutable game state owned by the frame loop.
package state

import (
	"math"

	"raycaster/pkg/engine/world"
)

// RunState is the orchestrator's lifecycle state
type RunState int

// Run states
const (
	StateRunning RunState = iota
	StateQuit
)

// String returns the string representation of a run state
func (s RunState) String() string {
	if s == StateQuit {
		return "Quit"
	}
	return "Running"
}

// Player is the camera: a world position plus a heading.
// Angle is in radians, 0 points along +x and positive turns counter-clockwise.
// It is never normalised.
type Player struct {
	X     float64
	Y     float64
	Angle float64
}

// Cell returns the grid cell containing the player
func (p Player) Cell(blockSize float64) (row, col int) {
	return world.CellAt(p.X, p.Y, blockSize)
}

// Heading returns the unit direction vector in screen space (y grows downwards)
func (p Player) Heading() (dx, dy float64) {
	return math.Cos(p.Angle), -math.Sin(p.Angle)
}

// Game represents the state of a running session
type Game struct {
	Grid   *world.Grid
	Player Player

	State RunState

	// Frame counts completed ticks
	Frame uint64

	// Blocked counts movement attempts rejected by collision
	Blocked uint64

	// ShowOverlay draws hit cells and ray lines on the 2D map
	ShowOverlay bool

	// ShowHUD draws the text status line
	ShowHUD bool
}

// NewGame creates a new game on the given grid with the player at p
func NewGame(grid *world.Grid, p Player) *Game {
	return &Game{
		Grid:        grid,
		Player:      p,
		State:       StateRunning,
		ShowOverlay: true,
	}
}

// Running returns true until a quit has been requested
func (g *Game) Running() bool {
	return g.State == StateRunning
}

// Quit transitions the game to StateQuit
func (g *Game) Quit() {
	g.State = StateQuit
}
