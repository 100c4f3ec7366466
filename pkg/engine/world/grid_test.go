package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGrid_IsWallMatchesMap(t *testing.T) {
	g := DefaultGrid()
	if g.Rows() != 8 || g.Cols() != 8 {
		t.Fatalf("DefaultGrid size = %dx%d, want 8x8", g.Rows(), g.Cols())
	}
	for row, line := range DefaultMap {
		for col, r := range line {
			want := r == '#'
			if got := g.IsWall(row, col); got != want {
				t.Errorf("IsWall(%d, %d) = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestIsWall_OutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(3, 3)
	cases := []struct{ row, col int }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-100, 100}, {3, 3},
	}
	for _, c := range cases {
		if !g.IsWall(c.row, c.col) {
			t.Errorf("IsWall(%d, %d) = false on out-of-bounds cell, want true", c.row, c.col)
		}
	}
	if g.IsWall(1, 1) {
		t.Error("IsWall(1, 1) = true on empty grid, want false")
	}
}

func TestSetWall(t *testing.T) {
	g := NewGrid(2, 3)
	if !g.SetWall(1, 2, true) {
		t.Fatal("SetWall(1, 2) = false, want true")
	}
	if !g.IsWall(1, 2) {
		t.Error("IsWall(1, 2) = false after SetWall, want true")
	}
	if g.SetWall(2, 0, true) {
		t.Error("SetWall(2, 0) = true for out-of-bounds cell, want false")
	}
	g.SetWall(1, 2, false)
	if g.IsWall(1, 2) {
		t.Error("IsWall(1, 2) = true after clearing, want false")
	}
}

func TestAddBorder(t *testing.T) {
	g := NewGrid(4, 5)
	g.AddBorder()
	if got, want := g.CountWalls(), 2*5+2*2; got != want {
		t.Errorf("CountWalls after AddBorder = %d, want %d", got, want)
	}
	if g.IsWall(1, 1) || g.IsWall(2, 3) {
		t.Error("interior cell became a wall")
	}
}

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y     float64
		row, col int
	}{
		{0, 0, 0, 0},
		{59.9, 59.9, 0, 0},
		{60, 0, 0, 1},
		{420, 100, 1, 7},
		{-0.5, 10, 0, -1},
		{10, -60.1, -2, 0},
	}
	for _, c := range cases {
		row, col := CellAt(c.x, c.y, 60)
		if row != c.row || col != c.col {
			t.Errorf("CellAt(%v, %v, 60) = (%d, %d), want (%d, %d)", c.x, c.y, row, col, c.row, c.col)
		}
	}
}

func TestParseGrid_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
	}{
		{"no rows", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"###", "##"}},
		{"unknown glyph", []string{"#x#"}},
		{"two starts", []string{"#PP#"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseGrid(c.lines); err == nil {
				t.Errorf("ParseGrid(%q) error = nil, want error", c.lines)
			}
		})
	}

	if _, err := ParseGrid(nil); !errors.Is(err, ErrEmptyMap) {
		t.Errorf("ParseGrid(nil) error = %v, want ErrEmptyMap", err)
	}
}

func TestParseGrid_StartMarker(t *testing.T) {
	g, err := ParseGrid([]string{
		"####",
		"#.P#",
		"####",
	})
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	row, col, ok := g.Start()
	if !ok || row != 1 || col != 2 {
		t.Errorf("Start() = (%d, %d, %v), want (1, 2, true)", row, col, ok)
	}
	if g.IsWall(1, 2) {
		t.Error("start cell is a wall")
	}
}

func TestReadGrid_RoundTripsString(t *testing.T) {
	src := strings.Join(DefaultMap, "\n") + "\n\n"
	g, err := ReadGrid(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	if got, want := g.String(), strings.Join(DefaultMap, "\n")+"\n"; got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestLoadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.txt")
	if err := os.WriteFile(path, []byte("###\n#P#\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGrid(path)
	if err != nil {
		t.Fatalf("LoadGrid: %v", err)
	}
	if g.CountWalls() != 8 {
		t.Errorf("CountWalls = %d, want 8", g.CountWalls())
	}

	if _, err := LoadGrid(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("LoadGrid on missing file: error = nil, want error")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	g := DefaultGrid()
	c := g.Clone()
	c.SetWall(1, 1, true)
	if g.IsWall(1, 1) {
		t.Error("modifying clone changed original")
	}
}
