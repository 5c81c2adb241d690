package model

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform places an object in world space: a position, a heading
// (rotation about +Y in radians, 0 = facing +Z, positive turns toward
// +X) and a uniform scale. Road pieces never pitch or roll, so a single
// heading angle fully describes their orientation.
type Transform struct {
	Position r3.Vec  `json:"position"`
	Heading  float64 `json:"heading"`
	Scale    float64 `json:"scale"`
}

// Identity returns the neutral transform at the world origin.
func Identity() Transform {
	return Transform{Scale: 1}
}

// At returns an identity-scale transform at the given position and heading.
func At(pos r3.Vec, heading float64) Transform {
	return Transform{Position: pos, Heading: heading, Scale: 1}
}

// Apply maps a point from the transform's local space into world space.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	sin, cos := math.Sincos(t.Heading)
	sx := p.X * t.Scale
	sy := p.Y * t.Scale
	sz := p.Z * t.Scale
	return r3.Vec{
		X: t.Position.X + sx*cos + sz*sin,
		Y: t.Position.Y + sy,
		Z: t.Position.Z - sx*sin + sz*cos,
	}
}

// Compose combines a parent transform with a child local transform,
// returning the child's world transform. The result depends only on the
// operands, so resolving the same chain twice yields identical values.
func (t Transform) Compose(child Transform) Transform {
	scale := child.Scale
	if scale == 0 {
		scale = 1
	}
	return Transform{
		Position: t.Apply(child.Position),
		Heading:  t.Heading + child.Heading,
		Scale:    t.Scale * scale,
	}
}

// Forward returns the unit vector the transform is facing.
func (t Transform) Forward() r3.Vec {
	sin, cos := math.Sincos(t.Heading)
	return r3.Vec{X: sin, Z: cos}
}

// Strategy selects which generator drives the placement engine.
type Strategy string

const (
	StrategyRandomWalk  Strategy = "randomwalk"  // bounded random walk, local rules
	StrategyFrontier    Strategy = "frontier"    // open-socket queue network
	StrategySpineBranch Strategy = "spinebranch" // deterministic spine and branches
)

// Built-in piece type identifiers. The catalog ships templates for all
// of these; external piece files may add more.
const (
	TypeStraight     = "straight"
	TypeCurveLeft    = "curve-left"
	TypeCurveRight   = "curve-right"
	TypeIntersection = "intersection"
	TypeGroundTile   = "ground-tile"
	TypePole         = "pole"
)

// Settings holds every recognized generation parameter.
type Settings struct {
	Strategy Strategy `json:"strategy"`

	// Shared placement parameters
	PieceCount     int     `json:"piece_count"`      // total pieces to attempt
	FineCellSize   float64 `json:"fine_cell_size"`   // collision grid resolution
	CoarseCellSize float64 `json:"coarse_cell_size"` // tile grid resolution
	SampleStep     float64 `json:"sample_step"`      // centerline sample spacing
	SeamWindow     int     `json:"seam_window"`      // trailing pieces excluded from self-collision

	// Random walk rules
	WarmupStraights int `json:"warmup_straights"` // straight-only opening steps
	MinStraightRun  int `json:"min_straight_run"` // straights required between curves
	MaxSameTurn     int `json:"max_same_turn"`    // consecutive same-direction curve cap

	// Frontier network
	IntersectionShare float64 `json:"intersection_share"` // weighted chance of an intersection draw
	MaxAttempts       int     `json:"max_attempts"`       // attempt ceiling; 0 = 10x piece count

	// Spine and branch (deterministic)
	Seed                    uint32  `json:"seed"`
	SpineLength             int     `json:"spine_length"`
	BranchLength            int     `json:"branch_length"`
	IntersectionProbability float64 `json:"intersection_probability"`

	// Ground fill extent in coarse cells
	GroundWidth int `json:"ground_width"`
	GroundDepth int `json:"ground_depth"`
}

// DefaultSettings returns the parameter set used by the CLI and viewer
// when no config file overrides them.
func DefaultSettings() Settings {
	return Settings{
		Strategy:                StrategySpineBranch,
		PieceCount:              40,
		FineCellSize:            2.0,
		CoarseCellSize:          20.0,
		SampleStep:              1.0,
		SeamWindow:              2,
		WarmupStraights:         3,
		MinStraightRun:          2,
		MaxSameTurn:             2,
		IntersectionShare:       0.2,
		Seed:                    12345,
		SpineLength:             20,
		BranchLength:            4,
		IntersectionProbability: 0.2,
		GroundWidth:             16,
		GroundDepth:             16,
	}
}

// AttemptCeiling returns the effective frontier attempt budget.
func (s Settings) AttemptCeiling() int {
	if s.MaxAttempts > 0 {
		return s.MaxAttempts
	}
	return s.PieceCount * 10
}
