package ui

import (
	"fmt"
	"strings"

	"github.com/BrandonReyes0609/Lab2-GraficasXComputadoras/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUDLines flattens a snapshot into the text rows shown on the overlay.
func HUDLines(name string, snapshot core.ParameterSnapshot, paused bool) []string {
	title := name
	if title == "" {
		title = "sim"
	}
	if paused {
		title += " (paused)"
	}
	lines := []string{title}
	for _, group := range snapshot.Groups {
		for _, p := range group.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, fmt.Sprintf("%-11s %s", label+":", p.Value))
		}
	}
	return lines
}

// snapshotOf returns the sim's parameters, or an empty snapshot for sims that
// expose none.
func snapshotOf(sim core.Sim) core.ParameterSnapshot {
	if provider, ok := sim.(parameterProvider); ok {
		return provider.Parameters()
	}
	return core.ParameterSnapshot{}
}

func longest(lines []string) int {
	n := 0
	for _, l := range lines {
		if w := len(strings.TrimRight(l, " ")); w > n {
			n = w
		}
	}
	return n
}
