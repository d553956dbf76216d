package field

import (
	"fmt"

	"minesweeper/internal/core"
)

// Field is the minesweeper board: mine layout, per-cell visibility and the
// player's cursor. The zero value is not usable; call New.
type Field struct {
	cells  *core.Grid[Cell]
	states *core.Grid[State]
	cursor core.Pos
	rng    *core.RNG

	numMines  int
	numClosed int
}

// New returns an empty 0x0 field drawing mine positions from rng.
func New(rng *core.RNG) *Field {
	if rng == nil {
		rng = core.NewRNG(core.TimeSeed())
	}
	return &Field{
		cells:  core.NewGrid[Cell](0, 0),
		states: core.NewGrid[State](0, 0),
		rng:    rng,
	}
}

// Resize reallocates the board as rows*cols closed, empty cells and puts the
// cursor back at the origin.
func (f *Field) Resize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	f.cells = core.NewGrid[Cell](rows, cols)
	f.states = core.NewGrid[State](rows, cols)
	f.states.Fill(Closed)
	f.cursor = core.Pos{}
	f.numMines = 0
	f.numClosed = rows * cols
	return nil
}

// Rows returns the number of rows.
func (f *Field) Rows() int { return f.cells.Rows() }

// Cols returns the number of columns.
func (f *Field) Cols() int { return f.cells.Cols() }

// Cursor returns the selected cell.
func (f *Field) Cursor() core.Pos { return f.cursor }

// NumMines returns the number of mined cells.
func (f *Field) NumMines() int { return f.numMines }

// NumClosed returns the number of unopened cells. Flagged cells count as
// closed.
func (f *Field) NumClosed() int { return f.numClosed }

// NumFlagged returns the number of flagged cells.
func (f *Field) NumFlagged() int { return f.states.Count(Flagged) }

// CellAt returns the content of (row, col).
func (f *Field) CellAt(row, col int) (Cell, error) {
	if !f.cells.InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	return f.cells.At(f.cells.Index(row, col)), nil
}

// StateAt returns the visibility of (row, col).
func (f *Field) StateAt(row, col int) (State, error) {
	if !f.states.InBounds(row, col) {
		return Closed, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	return f.states.At(f.states.Index(row, col)), nil
}

// SetCell overwrites the content of (row, col) and keeps the mine count in
// step. It exists for hand-built layouts.
func (f *Field) SetCell(row, col int, c Cell) error {
	if !f.cells.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	idx := f.cells.Index(row, col)
	prev := f.cells.At(idx)
	switch {
	case prev == Empty && c == Mine:
		f.numMines++
	case prev == Mine && c == Empty:
		f.numMines--
	}
	f.cells.Set(idx, c)
	return nil
}

// CountNeighborMines counts mines among the up to eight cells adjacent to
// (row, col).
func (f *Field) CountNeighborMines(row, col int) (int, error) {
	if !f.cells.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	return f.neighborMines(core.Pos{Row: row, Col: col}), nil
}

// neighborMines expects p to be in bounds.
func (f *Field) neighborMines(p core.Pos) int {
	n := 0
	f.cells.Neighbors(p.Row, p.Col, func(idx int) {
		if f.cells.At(idx) == Mine {
			n++
		}
	})
	return n
}

// MoveCursor shifts the cursor one cell in d. Steps past an edge are ignored.
func (f *Field) MoveCursor(d Direction) {
	switch d {
	case Up:
		if f.cursor.Row > 0 {
			f.cursor.Row--
		}
	case Down:
		if f.cursor.Row < f.Rows()-1 {
			f.cursor.Row++
		}
	case Left:
		if f.cursor.Col > 0 {
			f.cursor.Col--
		}
	case Right:
		if f.cursor.Col < f.Cols()-1 {
			f.cursor.Col++
		}
	}
}

func (f *Field) cursorIndex() int { return f.cells.Index(f.cursor.Row, f.cursor.Col) }

// OpenAtCursor opens the cursor cell if it is closed and returns its content.
// Open and flagged cells are left alone and report Empty, which carries no
// information about the real content.
func (f *Field) OpenAtCursor() Cell {
	idx := f.cursorIndex()
	if f.states.At(idx) != Closed {
		return Empty
	}
	f.states.Set(idx, Open)
	f.numClosed--
	return f.cells.At(idx)
}

// FlagAtCursor toggles the flag on a closed or flagged cursor cell.
func (f *Field) FlagAtCursor() {
	idx := f.cursorIndex()
	switch f.states.At(idx) {
	case Closed:
		f.states.Set(idx, Flagged)
	case Flagged:
		f.states.Set(idx, Closed)
	}
}

// IsWon reports whether only mines remain closed.
func (f *Field) IsWon() bool { return f.numClosed == f.numMines }

// IsLost reports whether last, the result of the latest open, was a mine.
func (f *Field) IsLost(last Cell) bool { return last == Mine }

// MineOpened reports whether any mine is open. A finished game without one
// was won.
func (f *Field) MineOpened() bool {
	for i, c := range f.cells.Cells() {
		if c == Mine && f.states.At(i) == Open {
			return true
		}
	}
	return false
}

// RevealAllMines opens every mine, flagged ones included, for the final
// display of a lost game. Other cells keep their state.
func (f *Field) RevealAllMines() {
	for i, c := range f.cells.Cells() {
		if c != Mine {
			continue
		}
		if f.states.At(i) != Open {
			f.numClosed--
		}
		f.states.Set(i, Open)
	}
}
