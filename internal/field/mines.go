package field

import "fmt"

// GenerateMines clears the layout and places rows*cols*percent/100 mines at
// random, redrawing any position that already holds one.
func (f *Field) GenerateMines(percent int) error {
	if percent < 0 || percent > MaxMinePercentage {
		return fmt.Errorf("%w: %d%% (max %d%%)", ErrMinePercentage, percent, MaxMinePercentage)
	}
	f.cells.Fill(Empty)
	f.numMines = f.cells.Len() * percent / 100

	rows, cols := f.Rows(), f.Cols()
	for placed := 0; placed < f.numMines; {
		p := f.rng.Pos(rows, cols)
		idx := f.cells.Index(p.Row, p.Col)
		if f.cells.At(idx) == Mine {
			continue
		}
		f.cells.Set(idx, Mine)
		placed++
	}
	return nil
}

// GenerateMinesAvoidingCursor regenerates the layout until neither the
// cursor cell nor any of its neighbours is a mine, so the first open always
// shows zero. It returns the number of layouts drawn.
func (f *Field) GenerateMinesAvoidingCursor(percent int) (int, error) {
	if percent < 0 || percent > MaxMinePercentage {
		return 0, fmt.Errorf("%w: %d%% (max %d%%)", ErrMinePercentage, percent, MaxMinePercentage)
	}
	if mines, free := f.cells.Len()*percent/100, f.cells.Len()-f.safeZoneSize(); mines > free {
		return 0, fmt.Errorf("%w: %d mines, %d cells outside the start area", ErrNoSafeLayout, mines, free)
	}

	attempts := 0
	for {
		attempts++
		if err := f.GenerateMines(percent); err != nil {
			return attempts, err
		}
		if f.cells.At(f.cursorIndex()) == Empty && f.neighborMines(f.cursor) == 0 {
			return attempts, nil
		}
	}
}

// safeZoneSize is the cursor cell plus its in-bounds neighbours.
func (f *Field) safeZoneSize() int {
	n := 1
	f.cells.Neighbors(f.cursor.Row, f.cursor.Col, func(int) { n++ })
	return n
}
