package core

// Board holds the current and next generation of a sparse grid. Absent keys
// read as the zero value of S, which engines define as their dead state.
type Board[S comparable] struct {
	bufs [2]map[Coord]S
	cur  int
}

// NewBoard allocates an empty board.
func NewBoard[S comparable]() *Board[S] {
	return &Board[S]{bufs: [2]map[Coord]S{make(map[Coord]S), make(map[Coord]S)}}
}

// Get returns the state of c in the current generation.
func (b *Board[S]) Get(c Coord) S { return b.bufs[b.cur][c] }

// Set writes s at c in the current generation.
func (b *Board[S]) Set(c Coord, s S) { b.bufs[b.cur][c] = s }

// Len reports how many entries the current buffer holds, dead ones included.
func (b *Board[S]) Len() int { return len(b.bufs[b.cur]) }

// Range calls fn for every entry of the current buffer until fn returns false.
func (b *Board[S]) Range(fn func(c Coord, s S) bool) {
	for c, s := range b.bufs[b.cur] {
		if !fn(c, s) {
			return
		}
	}
}

// Reset empties both buffers.
func (b *Board[S]) Reset() {
	clear(b.bufs[0])
	clear(b.bufs[1])
}

func (b *Board[S]) setNext(c Coord, s S) { b.bufs[b.cur^1][c] = s }

func (b *Board[S]) scratchLen() int { return len(b.bufs[b.cur^1]) }

// swap promotes next to current and clears the new scratch buffer.
func (b *Board[S]) swap() {
	b.cur ^= 1
	clear(b.bufs[b.cur^1])
}
