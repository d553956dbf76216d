package field

import "errors"

// MaxMinePercentage caps mine density. Denser boards degenerate into guessing.
const MaxMinePercentage = 50

// Cell is the ground-truth content of a position.
type Cell uint8

const (
	Empty Cell = iota
	Mine
)

func (c Cell) String() string {
	if c == Mine {
		return "mine"
	}
	return "empty"
}

// State is the visibility of a position.
type State uint8

const (
	Closed State = iota
	Open
	Flagged
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Flagged:
		return "flagged"
	default:
		return "closed"
	}
}

// Direction is a single cursor step.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var (
	// ErrInvalidSize is returned by Resize for a zero or negative dimension.
	ErrInvalidSize = errors.New("field: grid dimensions must be positive")
	// ErrMinePercentage is returned for densities outside 0..MaxMinePercentage.
	ErrMinePercentage = errors.New("field: mine percentage out of range")
	// ErrOutOfRange is returned by accessors for coordinates off the grid.
	ErrOutOfRange = errors.New("field: coordinates out of range")
	// ErrNoSafeLayout means no layout can keep the cursor cell and its
	// neighbours clear at the requested density.
	ErrNoSafeLayout = errors.New("field: no mine layout leaves the cursor safe")
)
