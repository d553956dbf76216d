//go:build ebiten

package app

import (
	"minesweeper/internal/game"
	"minesweeper/internal/render"
	"minesweeper/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = []struct {
	key    ebiten.Key
	action game.Action
}{
	{ebiten.KeyW, game.ActionUp},
	{ebiten.KeyArrowUp, game.ActionUp},
	{ebiten.KeyS, game.ActionDown},
	{ebiten.KeyArrowDown, game.ActionDown},
	{ebiten.KeyA, game.ActionLeft},
	{ebiten.KeyArrowLeft, game.ActionLeft},
	{ebiten.KeyD, game.ActionRight},
	{ebiten.KeyArrowRight, game.ActionRight},
	{ebiten.KeySpace, game.ActionOpen},
	{ebiten.KeyF, game.ActionFlag},
}

// Game adapts a game.Controller to the ebiten.Game interface.
type Game struct {
	ctrl     *game.Controller
	painter  *render.FieldPainter
	hud      *ui.HUD
	revealed bool
}

// New constructs a Game for the provided controller.
func New(ctrl *game.Controller, scale int) *Game {
	f := ctrl.Field()
	painter := render.NewFieldPainter(f.Rows(), f.Cols(), scale)
	w, _ := painter.Size()
	return &Game{ctrl: ctrl, painter: painter, hud: ui.NewHUD(w)}
}

// Update applies at most one key action per frame, mirroring the one
// keystroke per turn of the terminal frontend.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, ka := range keyActions {
		if !inpututil.IsKeyJustPressed(ka.key) {
			continue
		}
		if err := g.ctrl.Apply(ka.action); err != nil {
			return err
		}
		break
	}
	if g.ctrl.State() == game.Lost && !g.revealed {
		g.ctrl.Field().RevealAllMines()
		g.revealed = true
	}
	return nil
}

// Draw renders the field and the status panel beneath it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.ctrl.Field())
	_, h := g.painter.Size()
	g.hud.Draw(screen, h, ui.StatusLines(g.ctrl.State(), g.ctrl.Field()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w, h + g.hud.Height()
}
