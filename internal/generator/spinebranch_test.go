package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creativehubiion/roadforge/internal/model"
	"gonum.org/v1/gonum/spatial/r3"
)

type placedKey struct {
	TypeID   string
	Position r3.Vec
	Heading  float64
}

func keysOf(pieces []*model.PlacedPiece) []placedKey {
	keys := make([]placedKey, len(pieces))
	for i, p := range pieces {
		keys[i] = placedKey{TypeID: p.TypeID, Position: p.World.Position, Heading: p.World.Heading}
	}
	return keys
}

func TestSpineBranchReproducible(t *testing.T) {
	s := model.DefaultSettings()
	s.Seed = 12345
	s.SpineLength = 20
	s.BranchLength = 4
	s.IntersectionProbability = 0.2

	e1 := newEngine(s)
	r1 := NewSpineBranch(s).Generate(e1)
	e2 := newEngine(s)
	r2 := NewSpineBranch(s).Generate(e2)

	// Same seed, same network: identical type/position/heading sequence
	// on two independent worlds.
	assert.Equal(t, keysOf(e1.Pieces()), keysOf(e2.Pieces()))
	assert.Equal(t, r1.Placed, r2.Placed)
	assert.Equal(t, r1.Branches, r2.Branches)
	assert.Equal(t, r1.ByType, r2.ByType)

	// This seed draws exactly one intersection on the spine, which
	// grows two branches of four straights each.
	assert.Equal(t, 1, r1.ByType[model.TypeIntersection])
	assert.Equal(t, 2, r1.Branches)
	assert.Equal(t, 28, r1.Placed)
	require.Greater(t, len(e1.Pieces()), 7)
	assert.Equal(t, model.TypeIntersection, e1.Pieces()[7].TypeID)
}

func TestSpineBranchSeedChangesNetwork(t *testing.T) {
	s := model.DefaultSettings()
	s.IntersectionProbability = 0.5

	e1 := newEngine(s)
	NewSpineBranch(s).Generate(e1)

	s.Seed = s.Seed + 1
	e2 := newEngine(s)
	NewSpineBranch(s).Generate(e2)

	assert.NotEqual(t, keysOf(e1.Pieces()), keysOf(e2.Pieces()),
		"a different seed should change the layout")
}

func TestSpineBranchCounts(t *testing.T) {
	s := model.DefaultSettings()
	s.SpineLength = 20
	s.BranchLength = 4
	s.IntersectionProbability = 0.5

	g := NewSpineBranch(s)
	e := newEngine(s)
	report := g.Generate(e)

	require.Equal(t, model.RunDone, g.State())
	assert.False(t, report.Stalled)

	intersections := report.ByType[model.TypeIntersection]
	assert.Equal(t, 2*intersections, report.Branches,
		"every intersection contributes a left and a right branch")
	assert.Equal(t, s.SpineLength+report.Branches*s.BranchLength, report.Placed)
	assert.Equal(t, report.Requested, report.Placed)
	assert.Len(t, e.Pieces(), report.Placed)
	assert.Equal(t, s.Seed, report.Seed)
}

func TestSpineBranchEndsStayLinear(t *testing.T) {
	s := model.DefaultSettings()
	s.SpineLength = 8
	s.IntersectionProbability = 1.0 // force an intersection on every eligible draw

	e := newEngine(s)
	report := NewSpineBranch(s).Generate(e)

	pieces := e.Pieces()
	require.GreaterOrEqual(t, len(pieces), s.SpineLength)

	assert.Equal(t, model.TypeStraight, pieces[0].TypeID, "spine start is always straight")
	assert.Equal(t, model.TypeStraight, pieces[s.SpineLength-1].TypeID, "spine end is always straight")
	for i := 1; i < s.SpineLength-1; i++ {
		assert.Equal(t, model.TypeIntersection, pieces[i].TypeID, "interior piece %d", i)
	}
	assert.Equal(t, s.SpineLength-2, report.ByType[model.TypeIntersection])
}

func TestSpineBranchZeroProbability(t *testing.T) {
	s := model.DefaultSettings()
	s.SpineLength = 10
	s.IntersectionProbability = 0

	e := newEngine(s)
	report := NewSpineBranch(s).Generate(e)

	assert.Zero(t, report.Branches)
	assert.Equal(t, s.SpineLength, report.Placed)
	assert.Equal(t, s.SpineLength, report.ByType[model.TypeStraight])
}

func TestSpineBranchContinuity(t *testing.T) {
	s := model.DefaultSettings()
	s.SpineLength = 12
	s.IntersectionProbability = 0.4

	e := newEngine(s)
	NewSpineBranch(s).Generate(e)

	// Each spine piece starts exactly at the previous piece's exit.
	pieces := e.Pieces()[:s.SpineLength]
	for i := 1; i < len(pieces); i++ {
		out, ok := pieces[i-1].SocketWorld(model.SocketOut)
		require.True(t, ok)
		assert.InDelta(t, out.Position.X, pieces[i].World.Position.X, 1e-9, "piece %d X", i)
		assert.InDelta(t, out.Position.Z, pieces[i].World.Position.Z, 1e-9, "piece %d Z", i)
		assert.InDelta(t, out.Heading, pieces[i].World.Heading, 1e-9, "piece %d heading", i)
	}
}
