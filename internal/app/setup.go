package app

import (
	"github.com/pkg/errors"

	"gol-duel/internal/core"
	"gol-duel/internal/patterns"
	"gol-duel/internal/sims/duel"
	"gol-duel/internal/sims/life"
)

// Seed prepares the initial board for sim according to cfg. Single-owner
// engines get the configured pattern or a random fill; territorial engines get
// a random setup for both players only when the pattern is PatternRandom,
// otherwise they start empty for the players to fill.
func Seed(sim core.Sim, cfg *Config) error {
	pattern, ok, err := cfg.InitialPattern()
	if err != nil {
		return err
	}
	switch s := sim.(type) {
	case *life.Engine:
		if !ok {
			s.Randomize(cfg.Seed, cfg.Radius)
			return nil
		}
		if !s.LoadPattern(pattern) {
			return errors.Errorf("[Seed] could not place pattern %q", pattern.Name)
		}
	case *duel.Engine:
		s.Clear()
		if !ok {
			s.RandomSetup(core.NewRNG(cfg.Seed), cfg.Radius, patterns.Figures())
		}
	default:
		return errors.Errorf("[Seed] unsupported sim %q", sim.Name())
	}
	return nil
}
