package ui

import (
	"fmt"
	"strings"

	"emergent-ca/internal/core"
)

const keyHelp = "spc pause  n step  r reset  s reseed\n1 mask  2 oscillator  q quit"

// panelLines flattens a parameter snapshot into the text rows shown by the HUD.
func panelLines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title, ""}
	for _, g := range snap.Groups {
		lines = append(lines, fmt.Sprintf("[%s]", g.Name))
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
		lines = append(lines, "")
	}
	return append(lines, strings.Split(keyHelp, "\n")...)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
