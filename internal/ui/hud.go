//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 8
	hudLineHeight = 15
)

// HUD draws status text over the top-left corner of the board.
type HUD struct {
	lines []string
	fg    color.Color
}

// NewHUD constructs an empty HUD.
func NewHUD() *HUD {
	return &HUD{fg: color.RGBA{R: 220, G: 220, B: 230, A: 255}}
}

// Update replaces the lines shown on the next Draw.
func (h *HUD) Update(lines []string) {
	if h == nil {
		return
	}
	h.lines = lines
}

// Draw renders the current lines onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	for i, line := range h.lines {
		text.Draw(screen, line, face, hudPadding, hudPadding+(i+1)*hudLineHeight, h.fg)
	}
}
