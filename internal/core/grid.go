package core

// Pos addresses a grid cell by row and column.
type Pos struct {
	Row, Col int
}

// Grid stores a 2D grid of small cell values in row-major order.
type Grid[T ~uint8] struct {
	rows, cols int
	data       []T
}

// NewGrid allocates a rows*cols grid with every cell set to the zero value.
// Non-positive dimensions yield an empty grid.
func NewGrid[T ~uint8](rows, cols int) *Grid[T] {
	if rows <= 0 || cols <= 0 {
		return &Grid[T]{}
	}
	return &Grid[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid[T]) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the value stored at idx.
func (g *Grid[T]) At(idx int) T { return g.data[idx] }

// Set stores v at idx.
func (g *Grid[T]) Set(idx int, v T) { g.data[idx] = v }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Count returns how many cells hold v.
func (g *Grid[T]) Count(v T) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Neighbors calls fn with the index of every in-bounds cell adjacent to
// (row, col), diagonals included. Edges are not wrapped.
func (g *Grid[T]) Neighbors(row, col int, fn func(idx int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if !g.InBounds(r, c) {
				continue
			}
			fn(r*g.cols + c)
		}
	}
}
