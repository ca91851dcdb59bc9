package core

import (
	"context"
	"testing"
)

func TestBoardAbsentCellsReadAsZero(t *testing.T) {
	b := NewBoard[uint8]()
	if got := b.Get(Coord{X: -1000, Y: 1_000_000}); got != 0 {
		t.Fatalf("expected absent cell to read 0, got %d", got)
	}
	b.Set(Coord{X: 3, Y: 4}, 2)
	if got := b.Get(Coord{X: 3, Y: 4}); got != 2 {
		t.Fatalf("expected stored state 2, got %d", got)
	}
	b.Reset()
	if b.Len() != 0 || b.scratchLen() != 0 {
		t.Fatalf("expected Reset to empty both buffers, got %d/%d", b.Len(), b.scratchLen())
	}
}

func TestSwapLeavesScratchEmpty(t *testing.T) {
	b, live := seededBoard(Coord{0, 0}, Coord{1, 0}, Coord{2, 0})
	for gen := 0; gen < 4; gen++ {
		front := Frontier(live)
		if _, err := Advance(context.Background(), b, live, testConway, 1); err != nil {
			t.Fatalf("generation %d: unexpected error %v", gen, err)
		}
		if n := b.scratchLen(); n != 0 {
			t.Fatalf("generation %d: expected empty scratch buffer, got %d entries", gen, n)
		}
		// every entry of the new current buffer was written by this transition
		if b.Len() != front.Len() {
			t.Fatalf("generation %d: expected %d entries in current, got %d", gen, front.Len(), b.Len())
		}
		for c := range b.bufs[b.cur] {
			if !front.Has(c) {
				t.Fatalf("generation %d: stale entry %v outside the frontier", gen, c)
			}
		}
		if !liveMatchesBoard(b, live) {
			t.Fatalf("generation %d: live set out of sync with board", gen)
		}
	}
}

func TestSwapIsIndexFlip(t *testing.T) {
	b := NewBoard[uint8]()
	first := b.bufs[0]
	b.swap()
	if b.cur != 1 {
		t.Fatalf("expected current index 1 after swap, got %d", b.cur)
	}
	b.swap()
	b.Set(Coord{}, 1)
	if _, ok := first[Coord{}]; !ok {
		t.Fatal("expected buffers to be reused rather than reallocated")
	}
}
