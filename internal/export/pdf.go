package export

import (
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders the plan as a PDF site plan: a top-down drawing of
// the network followed by a run summary page.
func ExportPDF(path string, plan Plan) error {
	if len(plan.Pieces) == 0 && len(plan.Tiles) == 0 {
		return fmt.Errorf("nothing to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 8,
		fmt.Sprintf("RoadForge site plan — %s strategy", plan.Report.Strategy),
		"", 1, "L", false, 0, "")

	drawPlan(pdf, plan)
	writeSummary(pdf, plan)

	return pdf.OutputFileAndClose(path)
}

// drawPlan scales the world bounds into the page draw area and renders
// tiles, road centerlines and poles.
func drawPlan(pdf *fpdf.Fpdf, plan Plan) {
	minX, minZ, maxX, maxZ := plan.Bounds(plan.Settings.CoarseCellSize)
	worldW := maxX - minX
	worldH := maxZ - minZ

	areaW := pageWidth - marginLeft - marginRight
	areaH := pageHeight - drawAreaTop - marginBottom
	scale := areaW / worldW
	if s := areaH / worldH; s < scale {
		scale = s
	}

	// World Z runs up the plan; PDF Y runs down the page.
	px := func(x float64) float64 { return marginLeft + (x-minX)*scale }
	py := func(z float64) float64 { return drawAreaTop + (maxZ-z)*scale }

	// Ground tiles first, as the backdrop.
	half := plan.Settings.CoarseCellSize / 2
	pdf.SetFillColor(205, 225, 180)
	pdf.SetDrawColor(170, 190, 150)
	pdf.SetLineWidth(0.1)
	for cell := range plan.Tiles {
		c := cell.Center(plan.Settings.CoarseCellSize)
		pdf.Rect(px(c.X-half), py(c.Z+half), 2*half*scale, 2*half*scale, "FD")
	}

	// Road centerlines.
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.8)
	for _, piece := range plan.Pieces {
		for _, seg := range piece.Segments {
			pdf.Line(px(seg[0].X), py(seg[0].Z), px(seg[1].X), py(seg[1].Z))
		}
	}

	// Poles and cables.
	if plan.Line != nil {
		pdf.SetDrawColor(120, 85, 40)
		pdf.SetFillColor(120, 85, 40)
		for _, pole := range plan.Line.Poles {
			p := pole.World.Position
			pdf.Circle(px(p.X), py(p.Z), 1.0, "F")
		}
		pdf.SetDrawColor(90, 90, 120)
		pdf.SetLineWidth(0.2)
		for _, group := range plan.Line.Groups {
			for _, cable := range group.Cables {
				for i := 0; i+1 < len(cable.Points); i++ {
					a, b := cable.Points[i], cable.Points[i+1]
					pdf.Line(px(a.X), py(a.Z), px(b.X), py(b.Z))
				}
			}
		}
	}
}

// writeSummary adds a page with run statistics and the piece tally.
func writeSummary(pdf *fpdf.Fpdf, plan Plan) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(0, 8, "Run summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	report := plan.Report

	lines := []string{
		fmt.Sprintf("Strategy: %s", report.Strategy),
		fmt.Sprintf("Pieces placed: %d of %d requested", report.Placed, report.Requested),
		fmt.Sprintf("Attempts: %d", report.Attempts),
		fmt.Sprintf("Branches: %d", report.Branches),
		fmt.Sprintf("Ground tiles: %d", len(plan.Tiles)),
	}
	if report.Seed != 0 {
		lines = append(lines, fmt.Sprintf("Seed: %d", report.Seed))
	}
	if report.Stalled {
		lines = append(lines, fmt.Sprintf("Run stalled with a shortfall of %d pieces", report.Shortfall()))
	}

	y := marginTop + 12.0
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		y += 6
	}

	if len(report.ByType) > 0 {
		y += 4
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(0, 6, "Pieces by type", "", 1, "L", false, 0, "")
		y += 7

		types := make([]string, 0, len(report.ByType))
		for t := range report.ByType {
			types = append(types, t)
		}
		sort.Strings(types)

		pdf.SetFont("Helvetica", "", 10)
		for _, t := range types {
			pdf.SetXY(marginLeft, y)
			pdf.CellFormat(0, 5.5, fmt.Sprintf("%-20s %d", t, report.ByType[t]), "", 1, "L", false, 0, "")
			y += 5.5
		}
	}
}
