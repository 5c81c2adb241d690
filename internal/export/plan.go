// Package export writes the generated network to deliverable formats:
// a DXF plan, a PDF site plan, a QR-coded plan card and an XLSX piece
// schedule.
package export

import (
	"math"

	"github.com/creativehubiion/roadforge/internal/decor"
	"github.com/creativehubiion/roadforge/internal/grid"
	"github.com/creativehubiion/roadforge/internal/model"
)

// Plan bundles everything the exporters consume: the run report, the
// settings that produced it, and the placed geometry.
type Plan struct {
	Report   model.RunReport
	Settings model.Settings
	Pieces   []*model.PlacedPiece
	Tiles    map[grid.Cell]*model.PlacedPiece
	Line     *decor.Line
}

// Bounds returns the world-space extent of the plan on the ground
// plane, with a margin.
func (p Plan) Bounds(margin float64) (minX, minZ, maxX, maxZ float64) {
	minX, minZ = math.Inf(1), math.Inf(1)
	maxX, maxZ = math.Inf(-1), math.Inf(-1)

	grow := func(x, z float64) {
		minX = math.Min(minX, x)
		minZ = math.Min(minZ, z)
		maxX = math.Max(maxX, x)
		maxZ = math.Max(maxZ, z)
	}

	for _, piece := range p.Pieces {
		for _, seg := range piece.Segments {
			grow(seg[0].X, seg[0].Z)
			grow(seg[1].X, seg[1].Z)
		}
	}
	half := p.Settings.CoarseCellSize / 2
	for cell := range p.Tiles {
		c := cell.Center(p.Settings.CoarseCellSize)
		grow(c.X-half, c.Z-half)
		grow(c.X+half, c.Z+half)
	}
	if p.Line != nil {
		for _, pole := range p.Line.Poles {
			grow(pole.World.Position.X, pole.World.Position.Z)
		}
	}

	if math.IsInf(minX, 1) {
		return -margin, -margin, margin, margin
	}
	return minX - margin, minZ - margin, maxX + margin, maxZ + margin
}
