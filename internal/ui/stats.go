package ui

import (
	"fmt"

	"majority-ca/internal/core"
)

type generationReporter interface {
	Generation() int
}

type liveCounter interface {
	LiveCount() int
}

type periodReporter interface {
	Period() int
}

// statsLines describes the sim's progress for the overlay.
func statsLines(sim core.Sim) []string {
	var lines []string
	if g, ok := sim.(generationReporter); ok {
		lines = append(lines, fmt.Sprintf("generation %d", g.Generation()))
	}
	if l, ok := sim.(liveCounter); ok {
		size := sim.Size()
		total := size.W * size.H
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(l.LiveCount()) / float64(total)
		}
		lines = append(lines, fmt.Sprintf("alive %d (%.1f%%)", l.LiveCount(), pct))
	}
	if p, ok := sim.(periodReporter); ok {
		switch period := p.Period(); period {
		case 0:
			lines = append(lines, "evolving")
		case 1:
			lines = append(lines, "stable")
		default:
			lines = append(lines, fmt.Sprintf("oscillating, period %d", period))
		}
	}
	return lines
}

var keyHints = []string{
	"space  run/pause",
	"n      step",
	"r      reset",
	"s      reseed",
	"i      stats",
	"q      quit",
}
