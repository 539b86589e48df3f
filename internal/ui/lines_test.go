package ui

import (
	"slices"
	"testing"

	"emergent-ca/internal/core"
)

func TestPanelLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Run",
		Params: []core.Parameter{
			{Key: "tick", Label: "Tick", Value: "12"},
		},
	}}}
	lines := panelLines("Emergent", snap)
	want := []string{"Emergent", "", "[Run]", "  Tick: 12", ""}
	if !slices.Equal(lines[:len(want)], want) {
		t.Fatalf("unexpected lines %q", lines)
	}
	if len(lines) != len(want)+2 {
		t.Fatalf("expected two key help rows, got %q", lines[len(want):])
	}
}

func TestBuildTitle(t *testing.T) {
	if got := buildTitle(nil); got != "Parameters" {
		t.Fatalf("nil sim title = %q", got)
	}
}
