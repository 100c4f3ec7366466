// Package gameplay provides core game logic for player movement and the frame loop.
package gameplay

import (
	"errors"
	"fmt"

	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/config"
	"raycaster/pkg/game/raycast"
	"raycaster/pkg/game/state"
)

// ErrStartInWall is returned when the configured start position is inside a wall
var ErrStartInWall = errors.New("player start position is inside a wall")

// Settings are the derived per-game constants used every frame
type Settings struct {
	Ray  raycast.Params
	Move MoveParams
}

// NewSettings derives ray and movement parameters for a grid
func NewSettings(cfg config.Config, grid *world.Grid) (Settings, error) {
	blockSize := cfg.BlockSize(grid.Size())
	if blockSize < 1 {
		return Settings{}, fmt.Errorf("map of %dx%d cells does not fit a %d px screen",
			grid.Rows(), grid.Cols(), cfg.ScreenHeight)
	}

	height := float64(cfg.ScreenHeight)
	return Settings{
		Ray: raycast.Params{
			FOV:                cfg.FOV,
			RayCount:           cfg.RayCount,
			BlockSize:          blockSize,
			MaxDepth:           grid.Size() * int(blockSize),
			ProjectionConstant: cfg.ProjectionConstant,
			ShadeFalloff:       cfg.ShadeFalloff,
			ViewOriginX:        height,
			ViewHeight:         height,
		},
		Move: MoveParams{
			TurnRate:  cfg.TurnRate,
			Speed:     cfg.MoveSpeed,
			BlockSize: blockSize,
		},
	}, nil
}

// LoadGrid returns the map named in the config, or the built-in map
func LoadGrid(cfg config.Config) (*world.Grid, error) {
	if cfg.MapFile == "" {
		return world.DefaultGrid(), nil
	}
	return world.LoadGrid(cfg.MapFile)
}

// BuildGame creates a new game on grid. The player starts at the map's start
// marker when it has one, otherwise at the configured position.
func BuildGame(cfg config.Config, grid *world.Grid) (*state.Game, Settings, error) {
	settings, err := NewSettings(cfg, grid)
	if err != nil {
		return nil, Settings{}, err
	}

	player := state.Player{X: cfg.StartX, Y: cfg.StartY, Angle: cfg.StartAngle}
	if row, col, ok := grid.Start(); ok {
		bs := settings.Move.BlockSize
		player.X = (float64(col) + 0.5) * bs
		player.Y = (float64(row) + 0.5) * bs
	}

	if CheckCollision(grid, player.X, player.Y, settings.Move.BlockSize) {
		row, col := player.Cell(settings.Move.BlockSize)
		return nil, Settings{}, fmt.Errorf("%w: (%.1f, %.1f) is in cell (%d, %d)",
			ErrStartInWall, player.X, player.Y, row, col)
	}

	g := state.NewGame(grid, player)
	g.ShowOverlay = cfg.ShowOverlay
	g.ShowHUD = cfg.ShowHUD
	return g, settings, nil
}
