package devtools

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zyedidia/generic/mapset"

	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/raycast"
	"raycaster/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// Symbols used on top of the map glyphs in a dump
const (
	SymbolPlayer = '@'
	SymbolHit    = '*'
)

type cellKey struct {
	row, col int
}

// RenderMap draws the grid as text with the player and the cells struck by
// hits marked. The player marker wins when both apply.
func RenderMap(g *state.Game, hits []raycast.RayHit, blockSize float64) []string {
	struck := mapset.New[cellKey]()
	for _, h := range hits {
		if h.Kind == raycast.HitWall {
			struck.Put(cellKey{h.Row, h.Col})
		}
	}
	playerRow, playerCol := g.Player.Cell(blockSize)

	lines := make([]string, g.Grid.Rows())
	row := make([]rune, g.Grid.Cols())
	for r := range lines {
		for c := range row {
			switch {
			case r == playerRow && c == playerCol:
				row[c] = SymbolPlayer
			case struck.Has(cellKey{r, c}):
				row[c] = SymbolHit
			default:
				row[c] = g.Grid.Kind(r, c).Rune()
			}
		}
		lines[r] = string(row)
	}
	return lines
}

// DumpMapToFile writes the rendered map plus a short header to map.txt in dir.
// Returns the path written.
func DumpMapToFile(g *state.Game, hits []raycast.RayHit, blockSize float64, dir string) (string, error) {
	path := filepath.Join(dir, mapDumpFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	w := bufio.NewWriter(f)
	row, col := g.Player.Cell(blockSize)
	fmt.Fprintf(w, "# frame %d  player (%.1f, %.1f) cell (%d, %d) angle %.3f\n",
		g.Frame, g.Player.X, g.Player.Y, row, col, g.Player.Angle)
	fmt.Fprintf(w, "# %c player  %c ray hit  %c wall\n", SymbolPlayer, SymbolHit, world.GlyphWall)
	for _, line := range RenderMap(g, hits, blockSize) {
		fmt.Fprintln(w, line)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
