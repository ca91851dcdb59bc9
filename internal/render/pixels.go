package render

import (
	"image/color"

	"gol-duel/internal/core"
)

// Viewport is the window of the unbounded grid that is painted.
type Viewport struct {
	Origin core.Coord
	W, H   int
}

// Contains reports whether c falls inside the viewport.
func (v Viewport) Contains(c core.Coord) bool {
	x, y := c.X-v.Origin.X, c.Y-v.Origin.Y
	return x >= 0 && x < v.W && y >= 0 && y < v.H
}

// CellAt maps a screen pixel to the grid cell under it.
func (v Viewport) CellAt(px, py, scale int) core.Coord {
	if scale <= 0 {
		scale = 1
	}
	return core.Coord{X: v.Origin.X + floorDiv(px, scale), Y: v.Origin.Y + floorDiv(py, scale)}
}

// Pan moves the viewport origin by d.
func (v Viewport) Pan(d core.Coord) Viewport {
	v.Origin = v.Origin.Add(d)
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// LifePalette colors dead and alive cells.
var LifePalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// DuelPalette colors dead cells and each player's cells.
var DuelPalette = []color.RGBA{
	{R: 16, G: 16, B: 24, A: 255},
	{R: 255, G: 0, B: 255, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
}

// fillSparseRGBA clears buf to palette[0] and paints every live cell inside v
// using the palette entry returned by stateOf. Values past the end of the
// palette use its last entry.
func fillSparseRGBA(buf []byte, v Viewport, live []core.Coord, stateOf func(core.Coord) uint8, palette []color.RGBA) {
	if len(palette) == 0 || len(buf) < 4*v.W*v.H {
		return
	}
	bg := palette[0]
	for i := 0; i < v.W*v.H; i++ {
		base := i * 4
		buf[base+0] = bg.R
		buf[base+1] = bg.G
		buf[base+2] = bg.B
		buf[base+3] = bg.A
	}

	last := len(palette) - 1
	for _, c := range live {
		if !v.Contains(c) {
			continue
		}
		idx := int(stateOf(c))
		if idx > last {
			idx = last
		}
		col := palette[idx]
		base := ((c.Y-v.Origin.Y)*v.W + (c.X - v.Origin.X)) * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
