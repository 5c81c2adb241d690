package generator

import (
	"github.com/creativehubiion/roadforge/internal/model"
	"github.com/creativehubiion/roadforge/internal/placement"
)

// SpineBranch is the deterministic strategy: a seeded draw builds one
// continuous spine of fixed length, placing an intersection instead of
// a straight at a fixed probability (never at the first or last
// position). Each intersection's side sockets are recorded and, after
// the spine completes, extended into fixed-length straight branches.
//
// No collision checking happens here: the seeded draw plus the piece
// set's physical layout guarantee the same non-overlapping network for
// the same seed, so pieces are committed directly.
type SpineBranch struct {
	settings model.Settings
	state    model.RunState
}

// NewSpineBranch creates the deterministic generator; all randomness
// comes from the seed in the settings.
func NewSpineBranch(s model.Settings) *SpineBranch {
	return &SpineBranch{settings: s}
}

func (g *SpineBranch) Strategy() model.Strategy { return model.StrategySpineBranch }

func (g *SpineBranch) State() model.RunState { return g.state }

// Generate builds the spine and then every recorded branch.
func (g *SpineBranch) Generate(e *placement.Engine) model.RunReport {
	e.Reset()
	g.state = model.RunPlacing

	rng := newMulberry32(g.settings.Seed)
	report := model.RunReport{
		Strategy:  model.StrategySpineBranch,
		Requested: g.settings.SpineLength,
		Seed:      g.settings.Seed,
	}

	var branches []model.Transform
	cursor := model.Identity()

	for i := 0; i < g.settings.SpineLength; i++ {
		typeID := model.TypeStraight
		// The ends of the spine stay linear; each eligible interior
		// step draws once against the intersection probability.
		if i > 0 && i < g.settings.SpineLength-1 &&
			rng.float64() < g.settings.IntersectionProbability {
			typeID = model.TypeIntersection
		}

		report.Attempts++
		piece, err := e.Place(typeID, cursor)
		if err != nil {
			g.state = model.RunStalled
			report.Stalled = true
			return report
		}
		report.Count(typeID)

		if typeID == model.TypeIntersection {
			if left, ok := piece.SocketWorld(model.SocketBranchLeft); ok {
				branches = append(branches, left)
			}
			if right, ok := piece.SocketWorld(model.SocketBranchRight); ok {
				branches = append(branches, right)
			}
		}

		out, ok := piece.SocketWorld(model.SocketOut)
		if !ok {
			g.state = model.RunStalled
			report.Stalled = true
			return report
		}
		cursor = out
	}

	report.Branches = len(branches)
	report.Requested = g.settings.SpineLength + len(branches)*g.settings.BranchLength

	for _, start := range branches {
		cursor := start
		for j := 0; j < g.settings.BranchLength; j++ {
			report.Attempts++
			piece, err := e.Place(model.TypeStraight, cursor)
			if err != nil {
				g.state = model.RunStalled
				report.Stalled = true
				return report
			}
			report.Count(model.TypeStraight)
			out, ok := piece.SocketWorld(model.SocketOut)
			if !ok {
				break
			}
			cursor = out
		}
	}

	g.state = model.RunDone
	return report
}
