//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The window build of minesweeper requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/minesweeper-gui` or play in the terminal with `go run ./cmd/minesweeper`.")
	os.Exit(2)
}
