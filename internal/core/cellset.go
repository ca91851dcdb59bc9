package core

import (
	"cmp"
	"slices"
)

// CellSet is the set of coordinates currently alive.
type CellSet map[Coord]struct{}

// NewCellSet returns a set holding the given coordinates.
func NewCellSet(cells ...Coord) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set.
func (s CellSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Add inserts c.
func (s CellSet) Add(c Coord) { s[c] = struct{}{} }

// Remove deletes c.
func (s CellSet) Remove(c Coord) { delete(s, c) }

// Len returns the number of live cells.
func (s CellSet) Len() int { return len(s) }

// Clear removes every coordinate.
func (s CellSet) Clear() { clear(s) }

// Sorted returns the coordinates ordered by Y, then X.
func (s CellSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	SortCoords(out)
	return out
}

// SortCoords orders cells by Y, then X.
func SortCoords(cells []Coord) {
	slices.SortFunc(cells, func(a, b Coord) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
}

// Frontier returns every coordinate that can change state next generation:
// each live cell together with its eight neighbors.
func Frontier(live CellSet) CellSet {
	out := make(CellSet, len(live)*9)
	for c := range live {
		out.Add(c)
		for _, n := range c.Neighbors() {
			out.Add(n)
		}
	}
	return out
}
