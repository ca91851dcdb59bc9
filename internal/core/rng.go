package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Coord returns a random coordinate in [-radius, radius) on both axes.
func (r *RNG) Coord(radius int) Coord {
	return Coord{X: r.IntN(2*radius) - radius, Y: r.IntN(2*radius) - radius}
}

// Scatter returns every cell of the square [-radius, radius)² that a fair coin
// flip marks alive, in row-major order.
func Scatter(r *RNG, radius int) []Coord {
	var out []Coord
	for y := -radius; y < radius; y++ {
		for x := -radius; x < radius; x++ {
			if r.Bool() {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}
