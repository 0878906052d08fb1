package ui

import (
	"fmt"

	"mad-life/pkg/core"
)

// Stats is the run state shown under the parameter list.
type Stats struct {
	Generation int
	Population int
	Streak     int
	Limit      int
	Paused     bool
	Stable     bool
	Message    string
}

// panelLines lays out the HUD text: parameter groups first, then run stats.
func panelLines(title string, snapshot core.ParameterSnapshot, s Stats) []string {
	lines := []string{title, ""}
	for _, group := range snapshot.Groups {
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"Run",
		fmt.Sprintf("  Generation: %d", s.Generation),
		fmt.Sprintf("  Live cells: %d", s.Population),
		fmt.Sprintf("  Streak: %d/%d", s.Streak, s.Limit),
	)
	switch {
	case s.Stable:
		lines = append(lines, fmt.Sprintf("  Stable since gen %d", s.Generation-s.Limit))
	case s.Paused:
		lines = append(lines, "  Paused")
	}
	if s.Message != "" {
		lines = append(lines, "", s.Message)
	}
	return lines
}
