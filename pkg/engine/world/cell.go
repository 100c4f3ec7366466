// Package world provides the 2D grid map the raycaster walks through.
// These are engine-level constructs with no knowledge of rendering.
package world

// CellKind is the content of a single grid cell.
type CellKind uint8

// Cell kinds
const (
	CellEmpty CellKind = iota
	CellWall
)

// Map glyphs understood by ParseGrid
const (
	GlyphWall  = '#'
	GlyphEmpty = ' '
	GlyphFloor = '.'
	GlyphStart = 'P'
)

// IsWall returns true if the cell blocks rays and movement
func (k CellKind) IsWall() bool {
	return k == CellWall
}

// Rune returns the glyph used for this kind in map files and dumps
func (k CellKind) Rune() rune {
	if k == CellWall {
		return GlyphWall
	}
	return GlyphFloor
}

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "Empty"
	case CellWall:
		return "Wall"
	default:
		return "Unknown"
	}
}
