package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"minesweeper/internal/app"
	"minesweeper/internal/game"
	"minesweeper/internal/render"
	"minesweeper/internal/term"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(2)
	}
	// Raw mode turns off newline translation for stderr too.
	logger, closer, err := app.NewLogger(cfg, term.NewCRLFWriter(os.Stderr))
	if err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(2)
	}
	code := run(cfg, logger)
	closer.Close()
	os.Exit(code)
}

func run(cfg *app.Config, logger *log.Logger) int {
	f, err := app.NewField(cfg)
	if err != nil {
		logger.Error("create field", "err", err)
		return 1
	}

	var out io.Writer = os.Stdout
	guard, err := term.Acquire(os.Stdin)
	switch {
	case err == nil:
		defer guard.Restore()
		stop := guard.RestoreOnSignal()
		defer stop()
		out = term.NewCRLFWriter(os.Stdout)
	case errors.Is(err, term.ErrNotTerminal):
		logger.Warn("stdin is not a terminal; keys are read as typed, press enter to send")
	default:
		logger.Error("enter raw mode", "err", err)
		return 1
	}

	r := render.NewTerminal(out, !cfg.NoColor)
	if err := r.Controls(); err != nil {
		logger.Error("write controls", "err", err)
		return 1
	}

	ctrl := game.New(f, cfg.MinePercent, logger)
	err = ctrl.Run(os.Stdin, r)
	if rerr := guard.Restore(); rerr != nil {
		logger.Warn("restore terminal", "err", rerr)
	}
	switch {
	case errors.Is(err, game.ErrInterrupted):
		return 130
	case err != nil:
		logger.Error("game aborted", "err", err)
		return 1
	}
	return 0
}
