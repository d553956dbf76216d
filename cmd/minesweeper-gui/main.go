//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"minesweeper/internal/app"
	"minesweeper/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(2)
	}
	logger, closer, err := app.NewLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "minesweeper:", err)
		os.Exit(2)
	}
	defer closer.Close()

	f, err := app.NewField(cfg)
	if err != nil {
		logger.Fatal("create field", "err", err)
	}

	g := app.New(game.New(f, cfg.MinePercent, logger), cfg.Scale)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("minesweeper %dx%d", cfg.Rows, cfg.Cols))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game aborted", "err", err)
	}
}
