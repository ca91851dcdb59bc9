package core

import "slices"

// testConway is a binary Conway rule over uint8 states used by the core tests.
func testConway(b *Board[uint8], c Coord) uint8 {
	n := 0
	for _, nb := range c.Neighbors() {
		if b.Get(nb) == 1 {
			n++
		}
	}
	cur := b.Get(c)
	switch {
	case cur == 0 && n == 3:
		return 1
	case cur == 1 && (n < 2 || n > 3):
		return 0
	default:
		return cur
	}
}

func seededBoard(cells ...Coord) (*Board[uint8], CellSet) {
	b := NewBoard[uint8]()
	live := NewCellSet()
	for _, c := range cells {
		b.Set(c, 1)
		live.Add(c)
	}
	return b, live
}

// liveMatchesBoard reports whether live holds exactly the non-dead cells of b.
func liveMatchesBoard(b *Board[uint8], live CellSet) bool {
	var alive []Coord
	for c, s := range b.bufs[b.cur] {
		if s != 0 {
			alive = append(alive, c)
		}
	}
	SortCoords(alive)
	return slices.Equal(alive, live.Sorted())
}
