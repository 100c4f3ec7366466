package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultMap is the built-in 8x8 level
var DefaultMap = []string{
	"########",
	"#    # #",
	"# #    #",
	"#    # #",
	"###  # #",
	"# #    #",
	"#      #",
	"########",
}

// ErrEmptyMap is returned when map data contains no rows
var ErrEmptyMap = errors.New("map has no rows")

// DefaultGrid returns a fresh copy of the built-in level
func DefaultGrid() *Grid {
	g, err := ParseGrid(DefaultMap)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseGrid builds a grid from text rows. '#' is a wall, ' ' and '.' are
// empty and 'P' is an empty start cell. Every row must have the same width.
func ParseGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	cols := len([]rune(lines[0]))
	if cols == 0 {
		return nil, ErrEmptyMap
	}

	g := NewGrid(len(lines), cols)
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("row %d has width %d, want %d", row, len(runes), cols)
		}

		for col, r := range runes {
			switch r {
			case GlyphWall:
				g.SetWall(row, col, true)
			case GlyphEmpty, GlyphFloor:
			case GlyphStart:
				if _, _, ok := g.Start(); ok {
					return nil, fmt.Errorf("row %d col %d: more than one start marker", row, col)
				}
				g.SetStart(row, col)
			default:
				return nil, fmt.Errorf("row %d col %d: unknown map glyph %q", row, col, r)
			}
		}
	}

	return g, nil
}

// ReadGrid parses map rows from r. Trailing blank lines are ignored.
func ReadGrid(r io.Reader) (*Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return ParseGrid(lines)
}

// LoadGrid reads a map file from disk
func LoadGrid(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ReadGrid(f)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	return g, nil
}

// String renders the grid with the same glyphs ParseGrid accepts
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if r, c, ok := g.Start(); ok && r == row && c == col {
				sb.WriteRune(GlyphStart)
				continue
			}
			if g.IsWall(row, col) {
				sb.WriteRune(GlyphWall)
			} else {
				sb.WriteRune(GlyphEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
