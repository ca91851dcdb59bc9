package core

// Pattern is a named shape given as offsets relative to (0,0).
type Pattern struct {
	Name  string
	Cells []Coord
}

// Len returns the number of cells the pattern places.
func (p Pattern) Len() int { return len(p.Cells) }

// Center returns the midpoint of the pattern's bounding box.
func (p Pattern) Center() Coord {
	if len(p.Cells) == 0 {
		return Coord{}
	}
	lo, hi := p.Cells[0], p.Cells[0]
	for _, c := range p.Cells[1:] {
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	return Coord{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2}
}

// Translate returns a copy of the pattern shifted by d.
func (p Pattern) Translate(d Coord) Pattern {
	cells := make([]Coord, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = c.Add(d)
	}
	return Pattern{Name: p.Name, Cells: cells}
}

// Centered returns a copy of the pattern with its center moved to (0,0).
func (p Pattern) Centered() Pattern {
	c := p.Center()
	return p.Translate(Coord{X: -c.X, Y: -c.Y})
}

// SingleCell is the one-cell pattern used for manual toggles.
var SingleCell = Pattern{Name: "Cell", Cells: []Coord{{0, 0}}}

// Fits reports whether every cell of p placed at target is currently dead.
func Fits(live CellSet, target Coord, p Pattern) bool {
	for _, off := range p.Cells {
		if live.Has(target.Add(off)) {
			return false
		}
	}
	return true
}

// Stamp writes s at every cell of p placed at target. Callers check Fits first.
func Stamp[S comparable](b *Board[S], live CellSet, target Coord, p Pattern, s S) {
	for _, off := range p.Cells {
		c := target.Add(off)
		b.Set(c, s)
		live.Add(c)
	}
}

// Kill sets c to the dead state and drops it from live.
func Kill[S comparable](b *Board[S], live CellSet, c Coord) {
	var dead S
	b.Set(c, dead)
	live.Remove(c)
}
