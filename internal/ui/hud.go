//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
	panelLines   = 2
)

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// HUD renders the status panel below the field.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Height returns the panel height in pixels.
func (h *HUD) Height() int {
	if h == nil {
		return 0
	}
	return 2*panelPadding + panelLines*lineHeight
}

// Draw paints lines into the panel anchored at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int, lines []string) {
	if h == nil || h.width <= 0 {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, h.Height())
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13
	for i, line := range lines {
		if i >= panelLines {
			break
		}
		y := panelPadding + (i+1)*lineHeight - face.Descent
		text.Draw(h.panel, line, face, panelPadding, y, textColor)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
