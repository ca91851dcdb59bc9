package life

import (
	"runtime"
	"strconv"
	"time"

	"gol-duel/internal/core"
)

// Config controls the single-owner engine.
type Config struct {
	Workers  int
	Interval time.Duration
	// Radius bounds the square filled by Randomize.
	Radius int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		Interval: core.DefaultInterval,
		Radius:   20,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			if d, ok := core.SecondsToInterval(parsed); ok {
				c.Interval = d
			}
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Radius = parsed
		}
	}
	return c
}
