package render

import (
	"bytes"
	"strings"
	"testing"

	"minesweeper/internal/field"
)

func TestTerminalFrame(t *testing.T) {
	f := layout(t,
		"*..",
		"...",
	)
	f.MoveCursor(field.Right)
	f.OpenAtCursor()
	f.MoveCursor(field.Right)
	f.OpenAtCursor()
	f.MoveCursor(field.Left)
	f.MoveCursor(field.Left)
	f.FlagAtCursor()

	var out bytes.Buffer
	term := NewTerminal(&out, false)
	if err := term.Frame(f); err != nil {
		t.Fatal(err)
	}
	want := "[F] 1    \n .  .  . \n"
	if got := out.String(); got != want {
		t.Fatalf("frame mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestTerminalRedrawsInPlace(t *testing.T) {
	f := layout(t, "..", "..", "..")
	var out bytes.Buffer
	term := NewTerminal(&out, false)
	if err := term.Frame(f); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := term.Frame(f); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\033[3A\r") {
		t.Fatalf("second frame must move up 3 lines, got %q", out.String())
	}
}

func TestTerminalResult(t *testing.T) {
	f := layout(t, ".*")
	f.MoveCursor(field.Right)
	f.OpenAtCursor()
	f.RevealAllMines()

	var out bytes.Buffer
	term := NewTerminal(&out, false)
	if err := term.Result(f, false); err != nil {
		t.Fatal(err)
	}
	want := " . [@]\n\n" + lossBanner + "\n"
	if got := out.String(); got != want {
		t.Fatalf("loss output mismatch:\n got %q\nwant %q", got, want)
	}

	out.Reset()
	if err := NewTerminal(&out, false).Result(f, true); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), winBanner+"\n") {
		t.Fatalf("expected win banner, got %q", out.String())
	}
}

func TestTerminalColorHighlightsFlags(t *testing.T) {
	f := layout(t, "..")
	f.FlagAtCursor()
	var out bytes.Buffer
	if err := NewTerminal(&out, true).Frame(f); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\033[") || !strings.Contains(out.String(), "F") {
		t.Fatalf("expected an ANSI-colored flag, got %q", out.String())
	}
}

func TestTerminalControls(t *testing.T) {
	var out bytes.Buffer
	if err := NewTerminal(&out, false).Controls(); err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"W, S, A, D", "<SPACE>", "F"} {
		if !strings.Contains(out.String(), s) {
			t.Fatalf("controls missing %q: %q", s, out.String())
		}
	}
}
