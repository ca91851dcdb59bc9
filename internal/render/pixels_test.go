package render

import (
	"testing"

	"gol-duel/internal/core"
)

func TestCellAtFloorsNegativeOrigins(t *testing.T) {
	v := Viewport{Origin: core.Coord{X: -10, Y: -5}, W: 20, H: 10}
	cases := []struct {
		px, py, scale int
		want          core.Coord
	}{
		{0, 0, 4, core.Coord{X: -10, Y: -5}},
		{7, 9, 4, core.Coord{X: -9, Y: -3}},
		{-1, -1, 4, core.Coord{X: -11, Y: -6}},
		{3, 3, 0, core.Coord{X: -7, Y: -2}},
	}
	for _, tc := range cases {
		if got := v.CellAt(tc.px, tc.py, tc.scale); got != tc.want {
			t.Fatalf("CellAt(%d,%d,%d): expected %v, got %v", tc.px, tc.py, tc.scale, tc.want, got)
		}
	}
}

func TestContainsAndPan(t *testing.T) {
	v := Viewport{W: 3, H: 2}
	if !v.Contains(core.Coord{X: 2, Y: 1}) || v.Contains(core.Coord{X: 3, Y: 0}) || v.Contains(core.Coord{X: -1, Y: 0}) {
		t.Fatal("unexpected Contains result at the viewport edge")
	}
	moved := v.Pan(core.Coord{X: -4, Y: 1})
	if moved.Origin != (core.Coord{X: -4, Y: 1}) || v.Origin != (core.Coord{}) {
		t.Fatalf("expected Pan to return a moved copy, got %v", moved.Origin)
	}
}

func TestFillSparseRGBA(t *testing.T) {
	v := Viewport{Origin: core.Coord{X: -1, Y: -1}, W: 3, H: 2}
	buf := make([]byte, 4*v.W*v.H)
	live := []core.Coord{{X: -1, Y: -1}, {X: 1, Y: 0}, {X: 5, Y: 5}}
	owners := map[core.Coord]uint8{{X: -1, Y: -1}: 1, {X: 1, Y: 0}: 7}

	fillSparseRGBA(buf, v, live, func(c core.Coord) uint8 { return owners[c] }, DuelPalette)

	pixel := func(x, y int) [4]byte {
		base := (y*v.W + x) * 4
		return [4]byte{buf[base], buf[base+1], buf[base+2], buf[base+3]}
	}
	rgba := func(i int) [4]byte {
		c := DuelPalette[i]
		return [4]byte{c.R, c.G, c.B, c.A}
	}
	if pixel(0, 0) != rgba(1) {
		t.Fatalf("expected player 1 color at origin, got %v", pixel(0, 0))
	}
	if pixel(2, 1) != rgba(2) {
		t.Fatalf("expected out-of-range state to use the last color, got %v", pixel(2, 1))
	}
	if pixel(1, 0) != rgba(0) {
		t.Fatalf("expected background on a dead cell, got %v", pixel(1, 0))
	}
}
