//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"minesweeper/internal/field"
)

var (
	gridLineColor = color.RGBA{R: 60, G: 60, B: 66, A: 255}
	cursorColor   = color.RGBA{R: 250, G: 210, B: 40, A: 255}
	digitColor    = color.RGBA{R: 20, G: 40, B: 140, A: 255}
	glyphColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// FieldPainter draws a field with one palette pixel per cell, scaled up to
// cellSize, with glyphs and the cursor drawn on top.
type FieldPainter struct {
	rows, cols int
	cellSize   int
	img        *ebiten.Image
	pixel      *ebiten.Image
	buf        []byte
	tiles      []Tile
}

// NewFieldPainter allocates a painter for a rows*cols field.
func NewFieldPainter(rows, cols, cellSize int) *FieldPainter {
	if cellSize < 14 {
		cellSize = 14
	}
	p := &FieldPainter{rows: rows, cols: cols, cellSize: cellSize, buf: make([]byte, 4*rows*cols)}
	p.img = ebiten.NewImage(cols, rows)
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Size returns the painted area in pixels.
func (p *FieldPainter) Size() (int, int) { return p.cols * p.cellSize, p.rows * p.cellSize }

// Draw paints f onto dst at the origin.
func (p *FieldPainter) Draw(dst *ebiten.Image, f *field.Field) {
	if f.Rows() != p.rows || f.Cols() != p.cols {
		return
	}
	p.tiles = Tiles(f, p.tiles)
	fillPaletteRGBA(p.buf, p.tiles, Palette)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.cellSize), float64(p.cellSize))
	dst.DrawImage(p.img, op)

	w, h := p.Size()
	for r := 0; r <= p.rows; r++ {
		p.rect(dst, 0, r*p.cellSize, w, 1, gridLineColor)
	}
	for c := 0; c <= p.cols; c++ {
		p.rect(dst, c*p.cellSize, 0, 1, h, gridLineColor)
	}

	face := basicfont.Face7x13
	for i, t := range p.tiles {
		if t == TileClosed || t == TileOpen0 {
			continue
		}
		var clr color.Color = glyphColor
		if t > TileOpen0 && t <= TileOpen8 {
			clr = digitColor
		}
		r, c := i/p.cols, i%p.cols
		x := c*p.cellSize + (p.cellSize-face.Advance)/2
		y := r*p.cellSize + (p.cellSize+face.Ascent-face.Descent)/2
		text.Draw(dst, t.Symbol(), face, x, y, clr)
	}

	cur := f.Cursor()
	x, y, s := cur.Col*p.cellSize, cur.Row*p.cellSize, p.cellSize
	p.rect(dst, x, y, s, 2, cursorColor)
	p.rect(dst, x, y+s-2, s, 2, cursorColor)
	p.rect(dst, x, y, 2, s, cursorColor)
	p.rect(dst, x+s-2, y, 2, s, cursorColor)
}

func (p *FieldPainter) rect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(p.pixel, op)
}
