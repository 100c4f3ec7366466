package world

import (
	"math"
)

// Grid represents the map as a flat row-major array of cells.
// Lookups outside the grid report a wall, so the map edge always behaves as
// an unbroken border even when the map data has a gap in it.
type Grid struct {
	cells []CellKind
	rows  int
	cols  int

	startRow int
	startCol int
	hasStart bool
}

// NewGrid creates a new all-empty grid with the given dimensions
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	return &Grid{
		cells: make([]CellKind, rows*cols),
		rows:  rows,
		cols:  cols,
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the larger of the two grid dimensions
func (g *Grid) Size() int {
	if g.rows > g.cols {
		return g.rows
	}
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) &&
		(row == 0 || col == 0 || row == g.rows-1 || col == g.cols-1)
}

// Kind returns the kind of the cell at row/col. Out-of-bounds positions are walls.
func (g *Grid) Kind(row, col int) CellKind {
	if !g.IsValidPosition(row, col) {
		return CellWall
	}
	return g.cells[row*g.cols+col]
}

// IsWall reports whether the cell at row/col is a wall.
// Positions outside the grid count as walls.
func (g *Grid) IsWall(row, col int) bool {
	return g.Kind(row, col).IsWall()
}

// SetWall sets or clears a wall. Returns false if out of bounds.
func (g *Grid) SetWall(row, col int, wall bool) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	kind := CellEmpty
	if wall {
		kind = CellWall
	}
	g.cells[row*g.cols+col] = kind
	return true
}

// AddBorder turns every perimeter cell into a wall
func (g *Grid) AddBorder() {
	g.ForEachCell(func(row, col int, _ CellKind) {
		if g.IsOnPerimeter(row, col) {
			g.SetWall(row, col, true)
		}
	})
}

// Start returns the start cell marked in the map data, if any
func (g *Grid) Start() (row, col int, ok bool) {
	return g.startRow, g.startCol, g.hasStart
}

// SetStart marks the start cell. Returns false if the cell is out of bounds or a wall.
func (g *Grid) SetStart(row, col int) bool {
	if !g.IsValidPosition(row, col) || g.IsWall(row, col) {
		return false
	}
	g.startRow, g.startCol, g.hasStart = row, col, true
	return true
}

// CellAt maps a world coordinate to the row/col containing it.
// The result may lie outside the grid; callers check it with IsWall or IsValidPosition.
func CellAt(x, y, blockSize float64) (row, col int) {
	return int(math.Floor(y / blockSize)), int(math.Floor(x / blockSize))
}

// ForEachCell calls fn for every cell in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, kind CellKind)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row*g.cols+col])
		}
	}
}

// CountWalls returns the number of wall cells
func (g *Grid) CountWalls() int {
	n := 0
	for _, k := range g.cells {
		if k.IsWall() {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]CellKind, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}
