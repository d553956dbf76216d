package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// TimeSeed returns a seed derived from the wall clock.
func TimeSeed() int64 { return time.Now().UnixNano() }

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Pos returns a uniformly random position on a rows*cols grid.
func (r *RNG) Pos(rows, cols int) Pos {
	return Pos{Row: r.IntN(rows), Col: r.IntN(cols)}
}
