package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"minesweeper/internal/field"
)

// State is the controller's position in the game lifecycle.
type State int

const (
	// Pregame means no cell has been opened and no mines exist yet.
	Pregame State = iota
	Playing
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Pregame:
		return "pregame"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Ended reports whether s is terminal.
func (s State) Ended() bool { return s == Won || s == Lost }

var (
	// ErrInterrupted is returned when the player presses Ctrl-C.
	ErrInterrupted = errors.New("game: interrupted")
	// ErrInputClosed is returned by Run when input ends mid-game.
	ErrInputClosed = errors.New("game: input closed")
)

// Renderer draws the field. It is called once per turn and once more with
// the outcome.
type Renderer interface {
	Frame(f *field.Field) error
	Result(f *field.Field, won bool) error
}

// Controller drives a Field through one game. Mines are generated on the
// first open so the starting cell is always safe.
type Controller struct {
	field       *field.Field
	minePercent int
	state       State
	logger      *log.Logger
}

// New returns a controller for a resized field. A nil logger discards output.
func New(f *field.Field, minePercent int, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{field: f, minePercent: minePercent, logger: logger}
}

// Field returns the controlled field.
func (c *Controller) Field() *field.Field { return c.field }

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Apply performs a on the field. Errors are limited to mine generation
// failures and ErrInterrupted; invalid moves are silently ignored.
func (c *Controller) Apply(a Action) error {
	if a == ActionInterrupt {
		return ErrInterrupted
	}
	if c.state.Ended() {
		return nil
	}
	switch a {
	case ActionUp:
		c.field.MoveCursor(field.Up)
	case ActionDown:
		c.field.MoveCursor(field.Down)
	case ActionLeft:
		c.field.MoveCursor(field.Left)
	case ActionRight:
		c.field.MoveCursor(field.Right)
	case ActionFlag:
		c.field.FlagAtCursor()
	case ActionOpen:
		return c.open()
	}
	return nil
}

func (c *Controller) open() error {
	if c.state == Pregame {
		attempts, err := c.field.GenerateMinesAvoidingCursor(c.minePercent)
		if err != nil {
			return fmt.Errorf("generate mines: %w", err)
		}
		cur := c.field.Cursor()
		c.logger.Debug("mines generated", "mines", c.field.NumMines(), "attempts", attempts, "row", cur.Row, "col", cur.Col)
		c.state = Playing
	}

	last := c.field.OpenAtCursor()
	switch {
	case c.field.IsLost(last):
		c.state = Lost
	case c.field.IsWon():
		c.state = Won
	}
	if c.state.Ended() {
		c.logger.Debug("game over", "state", c.state, "closed", c.field.NumClosed())
	}
	return nil
}

// Run renders, reads one keystroke and applies it until the game ends. A lost
// game has its mines revealed before the result is drawn.
func (c *Controller) Run(in io.Reader, r Renderer) error {
	br := bufio.NewReaderSize(in, 16)
	for !c.state.Ended() {
		if err := r.Frame(c.field); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrInputClosed
			}
			return fmt.Errorf("read key: %w", err)
		}
		a := ParseKey(b)
		c.logger.Debug("key", "byte", b, "action", a)
		if err := c.Apply(a); err != nil {
			return err
		}
	}

	if c.state == Lost {
		c.field.RevealAllMines()
	}
	if err := r.Result(c.field, !c.field.MineOpened()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
