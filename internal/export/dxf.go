package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"
)

// DXF layer names. Roads carry centerline segments, tiles their cell
// outlines, poles a vertical marker, cables their sagging polylines.
const (
	layerRoads  = "ROADS"
	layerTiles  = "TILES"
	layerPoles  = "POLES"
	layerCables = "CABLES"
)

// ExportDXF writes the plan's geometry as a layered DXF drawing. The
// ground plane maps to DXF X/Y; heights go to Z.
func ExportDXF(path string, plan Plan) error {
	if len(plan.Pieces) == 0 && len(plan.Tiles) == 0 {
		return fmt.Errorf("nothing to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer(layerRoads, color.Red, table.LT_CONTINUOUS, true); err != nil {
		return err
	}
	for _, piece := range plan.Pieces {
		for _, seg := range piece.Segments {
			if _, err := d.Line(seg[0].X, seg[0].Z, 0, seg[1].X, seg[1].Z, 0); err != nil {
				return err
			}
		}
	}

	if _, err := d.AddLayer(layerTiles, color.Green, table.LT_CONTINUOUS, true); err != nil {
		return err
	}
	half := plan.Settings.CoarseCellSize / 2
	for cell := range plan.Tiles {
		c := cell.Center(plan.Settings.CoarseCellSize)
		corners := [4][2]float64{
			{c.X - half, c.Z - half},
			{c.X + half, c.Z - half},
			{c.X + half, c.Z + half},
			{c.X - half, c.Z + half},
		}
		for i := 0; i < 4; i++ {
			a, b := corners[i], corners[(i+1)%4]
			if _, err := d.Line(a[0], a[1], 0, b[0], b[1], 0); err != nil {
				return err
			}
		}
	}

	if plan.Line != nil {
		if _, err := d.AddLayer(layerPoles, color.Yellow, table.LT_CONTINUOUS, true); err != nil {
			return err
		}
		for _, pole := range plan.Line.Poles {
			p := pole.World.Position
			if _, err := d.Line(p.X, p.Z, 0, p.X, p.Z, poleMarkerHeight); err != nil {
				return err
			}
		}

		if _, err := d.AddLayer(layerCables, color.Cyan, table.LT_CONTINUOUS, true); err != nil {
			return err
		}
		for _, group := range plan.Line.Groups {
			for _, cable := range group.Cables {
				for i := 0; i+1 < len(cable.Points); i++ {
					a, b := cable.Points[i], cable.Points[i+1]
					if _, err := d.Line(a.X, a.Z, a.Y, b.X, b.Z, b.Y); err != nil {
						return err
					}
				}
			}
		}
	}

	return d.SaveAs(path)
}

const poleMarkerHeight = 8.0
