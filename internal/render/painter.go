//go:build ebiten

package render

import (
	"image/color"

	"gol-duel/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a single RGBA image of the viewport.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a viewport of w*h cells.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Blit paints the live cells inside v and draws the result scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, v Viewport, live []core.Coord, stateOf func(core.Coord) uint8, palette []color.RGBA, scale int) {
	gp.resize(v.W, v.H)
	v.W, v.H = gp.w, gp.h
	fillSparseRGBA(gp.buf, v, live, stateOf, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
