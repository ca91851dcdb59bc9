package ui

import (
	"slices"
	"testing"

	"gol-duel/internal/sims/life"
)

func TestStatusLines(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Workers = 2
	lines := StatusLines(life.New(cfg), "", "Figure: Glider")

	if lines[0] != "Life" {
		t.Fatalf("expected title Life, got %q", lines[0])
	}
	for _, want := range []string{"[Engine]", "Workers: 2", "[Board]", "Generation: 0", "Population: 0", "Figure: Glider"} {
		if !slices.Contains(lines, want) {
			t.Fatalf("expected line %q in %v", want, lines)
		}
	}
	if lines[len(lines)-1] != "Figure: Glider" {
		t.Fatalf("expected extras last, got %q", lines[len(lines)-1])
	}
}
