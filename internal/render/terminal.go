package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"minesweeper/internal/field"
)

const (
	lossBanner = "OOPS! You lost..."
	winBanner  = "Congratulations, you win!"
)

// Terminal draws the field as text, redrawing in place each turn.
type Terminal struct {
	out   io.Writer
	drawn int // rows printed by the previous frame

	flag lipgloss.Style
	mine lipgloss.Style
	win  lipgloss.Style
	hint lipgloss.Style
}

// NewTerminal returns a renderer writing to out. With color false every
// style renders as plain text.
func NewTerminal(out io.Writer, color bool) *Terminal {
	r := lipgloss.NewRenderer(out)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Terminal{
		out:  out,
		flag: r.NewStyle().Foreground(lipgloss.Color("1")),
		mine: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		win:  r.NewStyle().Foreground(lipgloss.Color("2")),
		hint: r.NewStyle().Faint(true),
	}
}

// Frame draws the field, overwriting the previous frame if there was one.
func (t *Terminal) Frame(f *field.Field) error {
	var b strings.Builder
	if t.drawn > 0 {
		fmt.Fprintf(&b, "\033[%dA\r", t.drawn)
	}
	t.grid(&b, f)
	t.drawn = f.Rows()
	_, err := io.WriteString(t.out, b.String())
	return err
}

// Result draws the final field followed by the outcome banner.
func (t *Terminal) Result(f *field.Field, won bool) error {
	if err := t.Frame(f); err != nil {
		return err
	}
	t.drawn = 0
	banner := lossBanner
	if won {
		banner = t.win.Render(winBanner)
	}
	_, err := fmt.Fprintf(t.out, "\n%s\n", banner)
	return err
}

func (t *Terminal) grid(b *strings.Builder, f *field.Field) {
	cur := f.Cursor()
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Cols(); c++ {
			left, right := " ", " "
			if cur.Row == r && cur.Col == c {
				left, right = "[", "]"
			}
			b.WriteString(left)
			b.WriteString(t.glyph(TileAt(f, r, c)))
			b.WriteString(right)
		}
		b.WriteByte('\n')
	}
}

func (t *Terminal) glyph(tile Tile) string {
	switch tile {
	case TileFlag:
		return t.flag.Render(tile.Symbol())
	case TileMine:
		return t.mine.Render(tile.Symbol())
	default:
		return tile.Symbol()
	}
}

// Controls prints the key bindings.
func (t *Terminal) Controls() error {
	lines := []string{
		"",
		"------ MINESWEEPER ------",
		"Move: W, S, A, D",
		"Open a field: <SPACE>",
		"Flag a suspected mine: F",
		t.hint.Render("Quit: Ctrl-C"),
		"-------------------------",
		"",
		"",
	}
	_, err := io.WriteString(t.out, strings.Join(lines, "\n"))
	return err
}
