package render

import "image/color"

// Palette maps each Tile to the color used by the window frontend.
var Palette = buildPalette()

func buildPalette() []color.RGBA {
	closed := color.RGBA{R: 110, G: 110, B: 120, A: 255}
	open := color.RGBA{R: 200, G: 200, B: 190, A: 255}
	p := make([]color.RGBA, numTiles)
	p[TileClosed] = closed
	p[TileFlag] = color.RGBA{R: 200, G: 60, B: 50, A: 255}
	for t := TileOpen0; t <= TileOpen8; t++ {
		p[t] = open
	}
	p[TileMine] = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	return p
}

// fillPaletteRGBA converts tiles into RGBA pixels using a palette. When the
// palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, tiles []Tile, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range tiles {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, t := range tiles {
		idx := int(t)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
