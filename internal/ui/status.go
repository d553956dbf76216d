package ui

import (
	"fmt"

	"minesweeper/internal/field"
	"minesweeper/internal/game"
)

// StatusLines describes the game for the window frontend: a mine counter and
// a hint or outcome line.
func StatusLines(state game.State, f *field.Field) []string {
	counter := fmt.Sprintf("Mines: %d  Flags: %d", f.NumMines(), f.NumFlagged())
	hint := "WASD move, SPACE open, F flag"
	switch state {
	case game.Pregame:
		// Mines are not placed until the first open.
		counter = fmt.Sprintf("%dx%d  Flags: %d", f.Rows(), f.Cols(), f.NumFlagged())
	case game.Won:
		hint = "Congratulations, you win!"
	case game.Lost:
		hint = "OOPS! You lost..."
	}
	return []string{counter, hint}
}
