package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Plan card layout (A6 landscape in mm).
const (
	cardWidth   = 148.0
	cardHeight  = 105.0
	cardPadding = 8.0
	cardQRSize  = 60.0
)

// ExportPlanCard writes a single-card PDF whose QR code encodes the
// generation settings as JSON. Scanning the card recovers everything
// needed to regenerate the same network with a deterministic strategy.
func ExportPlanCard(path string, plan Plan) error {
	payload, err := json.Marshal(plan.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(payload), qrcode.Medium, 512)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	pdf := fpdf.New("L", "mm", "A6", "")
	pdf.AddPage()

	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.2)
	pdf.Rect(cardPadding/2, cardPadding/2, cardWidth-cardPadding, cardHeight-cardPadding, "D")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(cardPadding, cardPadding)
	pdf.CellFormat(0, 6, "RoadForge plan card", "", 1, "L", false, 0, "")

	pdf.RegisterImageOptionsReader("plan_qr",
		fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions("plan_qr",
		cardWidth-cardQRSize-cardPadding, (cardHeight-cardQRSize)/2,
		cardQRSize, cardQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(60, 60, 60)
	y := cardPadding + 12.0
	lines := []string{
		fmt.Sprintf("Strategy: %s", plan.Settings.Strategy),
		fmt.Sprintf("Seed: %d", plan.Settings.Seed),
		fmt.Sprintf("Spine: %d  Branch: %d", plan.Settings.SpineLength, plan.Settings.BranchLength),
		fmt.Sprintf("Intersection p: %.2f", plan.Settings.IntersectionProbability),
		fmt.Sprintf("Placed: %d pieces", plan.Report.Placed),
	}
	for _, line := range lines {
		pdf.SetXY(cardPadding, y)
		pdf.CellFormat(0, 4.5, line, "", 1, "L", false, 0, "")
		y += 4.5
	}

	return pdf.OutputFileAndClose(path)
}
