package ui

import (
	"fmt"
	"strings"

	"gol-duel/internal/core"
)

// StatusLines renders the sim's parameter snapshot as "Label: value" lines,
// one header per group, followed by any extra lines.
func StatusLines(sim core.Sim, extra ...string) []string {
	lines := []string{buildTitle(sim)}
	for _, g := range sim.Parameters().Groups {
		lines = append(lines, "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return append(lines, extra...)
}

func buildTitle(sim core.Sim) string {
	name := strings.TrimSpace(sim.Name())
	if name == "" {
		return "Simulation"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
