package field

import (
	"errors"
	"testing"

	"minesweeper/internal/core"
)

func newField(t *testing.T, rows, cols int) *Field {
	t.Helper()
	f := New(core.NewRNG(42))
	if err := f.Resize(rows, cols); err != nil {
		t.Fatalf("Resize(%d,%d): %v", rows, cols, err)
	}
	return f
}

func countStates(f *Field, s State) int {
	n := 0
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Cols(); c++ {
			if st, _ := f.StateAt(r, c); st == s {
				n++
			}
		}
	}
	return n
}

func countMines(f *Field) int {
	n := 0
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Cols(); c++ {
			if cell, _ := f.CellAt(r, c); cell == Mine {
				n++
			}
		}
	}
	return n
}

func TestNewFieldIsEmpty(t *testing.T) {
	f := New(nil)
	if f.Rows() != 0 || f.Cols() != 0 || f.NumClosed() != 0 || f.NumMines() != 0 {
		t.Fatalf("expected empty field, got %dx%d closed=%d mines=%d", f.Rows(), f.Cols(), f.NumClosed(), f.NumMines())
	}
}

func TestResizeResetsEverything(t *testing.T) {
	f := newField(t, 6, 9)
	if err := f.GenerateMines(30); err != nil {
		t.Fatal(err)
	}
	f.MoveCursor(Down)
	f.MoveCursor(Right)
	f.OpenAtCursor()

	if err := f.Resize(4, 5); err != nil {
		t.Fatal(err)
	}
	if f.NumClosed() != 20 {
		t.Fatalf("expected numClosed 20, got %d", f.NumClosed())
	}
	if f.NumMines() != 0 || countMines(f) != 0 {
		t.Fatalf("expected no mines after resize, got %d/%d", f.NumMines(), countMines(f))
	}
	if n := countStates(f, Closed); n != 20 {
		t.Fatalf("expected all 20 cells closed, got %d", n)
	}
	if f.Cursor() != (core.Pos{}) {
		t.Fatalf("expected cursor at origin, got %+v", f.Cursor())
	}
}

func TestResizeRejectsZeroDimensions(t *testing.T) {
	f := newField(t, 3, 3)
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {0, 0}, {-2, 4}} {
		if err := f.Resize(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("Resize(%d,%d): expected ErrInvalidSize, got %v", dims[0], dims[1], err)
		}
	}
	if f.Rows() != 3 || f.Cols() != 3 {
		t.Fatalf("failed resize must not touch the field, got %dx%d", f.Rows(), f.Cols())
	}
}

func TestGenerateMinesExactCount(t *testing.T) {
	cases := []struct {
		rows, cols, pct int
	}{
		{10, 10, 20},
		{10, 10, 50},
		{7, 3, 33},
		{5, 5, 0},
		{1, 1, 50},
		{9, 13, 17},
	}
	for _, tc := range cases {
		f := newField(t, tc.rows, tc.cols)
		if err := f.GenerateMines(tc.pct); err != nil {
			t.Fatalf("%+v: %v", tc, err)
		}
		want := tc.rows * tc.cols * tc.pct / 100
		if f.NumMines() != want {
			t.Fatalf("%+v: NumMines=%d, want %d", tc, f.NumMines(), want)
		}
		if got := countMines(f); got != want {
			t.Fatalf("%+v: %d mined cells, want %d", tc, got, want)
		}
	}
}

func TestGenerateMinesOverwritesPreviousLayout(t *testing.T) {
	f := newField(t, 8, 8)
	for i := 0; i < 20; i++ {
		if err := f.GenerateMines(25); err != nil {
			t.Fatal(err)
		}
		if got := countMines(f); got != 16 {
			t.Fatalf("round %d: expected 16 mines, got %d", i, got)
		}
	}
}

func TestGenerateMinesRejectsHighDensity(t *testing.T) {
	f := newField(t, 10, 10)
	for _, pct := range []int{51, 75, 100, -1} {
		if err := f.GenerateMines(pct); !errors.Is(err, ErrMinePercentage) {
			t.Fatalf("GenerateMines(%d): expected ErrMinePercentage, got %v", pct, err)
		}
		if f.NumMines() != 0 || countMines(f) != 0 {
			t.Fatalf("GenerateMines(%d) must not place mines", pct)
		}
	}
}

func TestGenerateMinesAvoidingCursorKeepsStartSafe(t *testing.T) {
	f := newField(t, 10, 10)
	positions := []struct{ down, right int }{{0, 0}, {4, 5}, {9, 9}, {0, 7}}
	for _, p := range positions {
		if err := f.Resize(10, 10); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < p.down; i++ {
			f.MoveCursor(Down)
		}
		for i := 0; i < p.right; i++ {
			f.MoveCursor(Right)
		}
		attempts, err := f.GenerateMinesAvoidingCursor(20)
		if err != nil {
			t.Fatal(err)
		}
		if attempts < 1 {
			t.Fatalf("expected at least one attempt, got %d", attempts)
		}
		cur := f.Cursor()
		if cell, _ := f.CellAt(cur.Row, cur.Col); cell != Empty {
			t.Fatalf("cursor %+v sits on a mine", cur)
		}
		if n, _ := f.CountNeighborMines(cur.Row, cur.Col); n != 0 {
			t.Fatalf("cursor %+v has %d neighbouring mines", cur, n)
		}
		if f.NumMines() != 20 {
			t.Fatalf("expected 20 mines, got %d", f.NumMines())
		}
	}
}

func TestGenerateMinesAvoidingCursorImpossible(t *testing.T) {
	f := newField(t, 2, 2)
	// 4 cells at 50% is 2 mines, but the start area covers the whole board.
	if _, err := f.GenerateMinesAvoidingCursor(50); !errors.Is(err, ErrNoSafeLayout) {
		t.Fatalf("expected ErrNoSafeLayout, got %v", err)
	}
	if _, err := f.GenerateMinesAvoidingCursor(60); !errors.Is(err, ErrMinePercentage) {
		t.Fatalf("expected ErrMinePercentage, got %v", err)
	}
}

func TestMoveCursorClamps(t *testing.T) {
	f := newField(t, 1, 3)
	for i := 0; i < 5; i++ {
		f.MoveCursor(Up)
		f.MoveCursor(Down)
		if f.Cursor().Row != 0 {
			t.Fatalf("row moved on a 1-row grid: %+v", f.Cursor())
		}
	}
	f.MoveCursor(Left)
	if f.Cursor().Col != 0 {
		t.Fatalf("cursor left the grid: %+v", f.Cursor())
	}
	for i := 0; i < 10; i++ {
		f.MoveCursor(Right)
	}
	if f.Cursor().Col != 2 {
		t.Fatalf("expected cursor clamped at col 2, got %+v", f.Cursor())
	}
}

func TestOpenAtCursorTransitionsOnce(t *testing.T) {
	f := newField(t, 3, 3)
	if err := f.SetCell(2, 2, Mine); err != nil {
		t.Fatal(err)
	}
	before := f.NumClosed()
	if got := f.OpenAtCursor(); got != Empty {
		t.Fatalf("expected Empty, got %v", got)
	}
	if f.NumClosed() != before-1 {
		t.Fatalf("expected numClosed %d, got %d", before-1, f.NumClosed())
	}
	if st, _ := f.StateAt(0, 0); st != Open {
		t.Fatalf("expected cell open, got %v", st)
	}
	if n := countStates(f, Open); n != 1 {
		t.Fatalf("expected exactly one open cell, got %d", n)
	}

	f.OpenAtCursor()
	f.OpenAtCursor()
	if f.NumClosed() != before-1 {
		t.Fatalf("repeated opens changed numClosed to %d", f.NumClosed())
	}
}

func TestOpenFlaggedCellIsNoop(t *testing.T) {
	f := newField(t, 2, 2)
	if err := f.SetCell(0, 0, Mine); err != nil {
		t.Fatal(err)
	}
	f.FlagAtCursor()
	if got := f.OpenAtCursor(); got != Empty {
		t.Fatalf("opening a flagged mine must report Empty, got %v", got)
	}
	if st, _ := f.StateAt(0, 0); st != Flagged {
		t.Fatalf("expected cell to stay flagged, got %v", st)
	}
	if f.NumClosed() != 4 {
		t.Fatalf("expected numClosed 4, got %d", f.NumClosed())
	}
}

func TestFlagAtCursorToggles(t *testing.T) {
	f := newField(t, 2, 2)
	f.FlagAtCursor()
	if st, _ := f.StateAt(0, 0); st != Flagged {
		t.Fatalf("expected flagged, got %v", st)
	}
	if f.NumFlagged() != 1 {
		t.Fatalf("expected one flag, got %d", f.NumFlagged())
	}
	f.FlagAtCursor()
	if st, _ := f.StateAt(0, 0); st != Closed {
		t.Fatalf("expected closed after second toggle, got %v", st)
	}
	if f.NumClosed() != 4 {
		t.Fatalf("flagging must not touch numClosed, got %d", f.NumClosed())
	}

	f.OpenAtCursor()
	f.FlagAtCursor()
	if st, _ := f.StateAt(0, 0); st != Open {
		t.Fatalf("flagging an open cell must be a no-op, got %v", st)
	}
}

func TestCountNeighborMinesAtEdges(t *testing.T) {
	f := newField(t, 4, 5)
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			if err := f.SetCell(r, c, Mine); err != nil {
				t.Fatal(err)
			}
		}
	}
	cases := []struct {
		row, col, want int
	}{
		{0, 0, 3},
		{3, 4, 3},
		{0, 4, 3},
		{0, 2, 5},
		{2, 0, 5},
		{1, 2, 8},
	}
	for _, tc := range cases {
		n, err := f.CountNeighborMines(tc.row, tc.col)
		if err != nil {
			t.Fatal(err)
		}
		if n != tc.want {
			t.Fatalf("(%d,%d): expected %d, got %d", tc.row, tc.col, tc.want, n)
		}
	}
}

func TestCountNeighborMinesIgnoresSelf(t *testing.T) {
	f := newField(t, 3, 3)
	if err := f.SetCell(1, 1, Mine); err != nil {
		t.Fatal(err)
	}
	if n, _ := f.CountNeighborMines(1, 1); n != 0 {
		t.Fatalf("center mine counted as its own neighbour: %d", n)
	}
	if n, _ := f.CountNeighborMines(0, 0); n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
}

func TestAccessorsReportOutOfRange(t *testing.T) {
	f := newField(t, 2, 3)
	checks := map[string]error{}
	_, checks["CellAt"] = f.CellAt(2, 0)
	_, checks["StateAt"] = f.StateAt(0, 3)
	_, checks["CountNeighborMines"] = f.CountNeighborMines(-1, 0)
	checks["SetCell"] = f.SetCell(0, -1, Mine)
	for name, err := range checks {
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("%s: expected ErrOutOfRange, got %v", name, err)
		}
	}
	if f.NumMines() != 0 {
		t.Fatal("rejected SetCell must not change the mine count")
	}
}

func TestWinOnTwoByTwo(t *testing.T) {
	f := newField(t, 2, 2)
	if err := f.SetCell(1, 1, Mine); err != nil {
		t.Fatal(err)
	}
	if f.IsWon() {
		t.Fatal("fresh board must not be won")
	}
	if f.IsLost(f.OpenAtCursor()) {
		t.Fatal("opened a mine at (0,0)")
	}
	f.MoveCursor(Right)
	if f.IsLost(f.OpenAtCursor()) {
		t.Fatal("opened a mine at (0,1)")
	}
	f.MoveCursor(Left)
	f.MoveCursor(Down)
	if f.IsLost(f.OpenAtCursor()) {
		t.Fatal("opened a mine at (1,0)")
	}
	if !f.IsWon() {
		t.Fatalf("expected win, numClosed=%d numMines=%d", f.NumClosed(), f.NumMines())
	}
	if f.MineOpened() {
		t.Fatal("no mine should be open")
	}
}

func TestLossAndReveal(t *testing.T) {
	f := newField(t, 3, 3)
	mines := []core.Pos{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}
	for _, m := range mines {
		if err := f.SetCell(m.Row, m.Col, Mine); err != nil {
			t.Fatal(err)
		}
	}
	// Flag one mine and open a safe cell so reveal has mixed input.
	f.MoveCursor(Down)
	f.MoveCursor(Down)
	f.MoveCursor(Right)
	f.FlagAtCursor()
	f.MoveCursor(Left)
	if f.IsLost(f.OpenAtCursor()) {
		t.Fatal("(2,0) is safe")
	}
	f.MoveCursor(Up)
	f.MoveCursor(Up)
	if !f.IsLost(f.OpenAtCursor()) {
		t.Fatal("opening (0,0) must lose")
	}
	if !f.MineOpened() {
		t.Fatal("MineOpened must report the opened mine")
	}

	f.RevealAllMines()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cell, _ := f.CellAt(r, c)
			st, _ := f.StateAt(r, c)
			switch {
			case cell == Mine && st != Open:
				t.Fatalf("mine at (%d,%d) not revealed: %v", r, c, st)
			case cell == Empty && r == 2 && c == 0 && st != Open:
				t.Fatalf("opened safe cell changed state: %v", st)
			case cell == Empty && !(r == 2 && c == 0) && st != Closed:
				t.Fatalf("safe cell (%d,%d) changed state to %v", r, c, st)
			}
		}
	}
	if unopened := countStates(f, Closed) + countStates(f, Flagged); f.NumClosed() != unopened {
		t.Fatalf("numClosed %d out of step with %d unopened cells", f.NumClosed(), unopened)
	}
}
