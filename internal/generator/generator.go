// Package generator provides the three interchangeable strategies that
// drive the placement engine to build a whole road network: a bounded
// random walk, a frontier-expansion network and a deterministic
// spine-and-branch builder.
package generator

import (
	"github.com/creativehubiion/roadforge/internal/model"
	"github.com/creativehubiion/roadforge/internal/placement"
)

// Generator runs one generation strategy to completion. Generate always
// starts a fresh run: prior pieces and road occupancy are cleared
// first. A stalled run is reported, not returned as an error; callers
// inspect RunReport.Placed.
type Generator interface {
	Strategy() model.Strategy
	State() model.RunState
	Generate(e *placement.Engine) model.RunReport
}

// ForSettings returns the generator selected by the settings' strategy,
// defaulting to the deterministic spine-and-branch builder.
func ForSettings(s model.Settings) Generator {
	switch s.Strategy {
	case model.StrategyRandomWalk:
		return NewRandomWalk(s)
	case model.StrategyFrontier:
		return NewFrontier(s)
	default:
		return NewSpineBranch(s)
	}
}
