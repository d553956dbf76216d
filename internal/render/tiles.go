package render

import "minesweeper/internal/field"

// Tile is what the player sees at a position.
type Tile uint8

// TileOpen0..TileOpen8 are consecutive so TileOpen0+n is an open cell with n
// neighbouring mines.
const (
	TileClosed Tile = iota
	TileFlag
	TileOpen0
	TileOpen1
	TileOpen2
	TileOpen3
	TileOpen4
	TileOpen5
	TileOpen6
	TileOpen7
	TileOpen8
	TileMine

	numTiles
)

// TileAt classifies (row, col). Off-grid positions read as closed.
func TileAt(f *field.Field, row, col int) Tile {
	st, err := f.StateAt(row, col)
	if err != nil {
		return TileClosed
	}
	switch st {
	case field.Flagged:
		return TileFlag
	case field.Open:
		if cell, _ := f.CellAt(row, col); cell == field.Mine {
			return TileMine
		}
		n, _ := f.CountNeighborMines(row, col)
		return TileOpen0 + Tile(n)
	default:
		return TileClosed
	}
}

// Tiles classifies the whole field in row-major order, reusing buf when it
// is large enough.
func Tiles(f *field.Field, buf []Tile) []Tile {
	total := f.Rows() * f.Cols()
	if cap(buf) < total {
		buf = make([]Tile, total)
	}
	buf = buf[:total]
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Cols(); c++ {
			buf[r*f.Cols()+c] = TileAt(f, r, c)
		}
	}
	return buf
}

// Symbol returns the single-character glyph for t.
func (t Tile) Symbol() string {
	switch {
	case t == TileFlag:
		return "F"
	case t == TileMine:
		return "@"
	case t == TileOpen0:
		return " "
	case t > TileOpen0 && t <= TileOpen8:
		return string(rune('0' + int(t-TileOpen0)))
	default:
		return "."
	}
}
