package duel

import "gol-duel/internal/core"

// maxSetupMisses bounds consecutive rejected stamps before RandomSetup gives up.
const maxSetupMisses = 64

// RandomSetup stamps random figures inside [-radius, radius)² for both
// players in turn until stamps keep getting rejected. It returns the number
// of figures placed and does nothing once the match has started.
func (e *Engine) RandomSetup(rng *core.RNG, radius int, figures []core.Pattern) int {
	if e.started || len(figures) == 0 || radius <= 0 {
		return 0
	}
	player := Player1
	if rng.Bool() {
		player = Player2
	}
	stamped, misses := 0, 0
	for misses < maxSetupMisses {
		fig := figures[rng.IntN(len(figures))]
		if e.StampPattern(rng.Coord(radius), fig, player) {
			stamped++
			misses = 0
		} else {
			misses++
		}
		player = player.Opponent()
	}
	return stamped
}
