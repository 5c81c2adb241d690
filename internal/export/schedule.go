package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportSchedule writes an XLSX piece schedule: one row per committed
// piece with its ID, type and final transform, in commit order.
func ExportSchedule(path string, plan Plan) error {
	if len(plan.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Pieces"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headers := []string{"#", "ID", "Type", "X", "Y", "Z", "Heading (rad)", "Scale"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, piece := range plan.Pieces {
		values := []interface{}{
			row + 1,
			piece.ID,
			piece.TypeID,
			piece.World.Position.X,
			piece.World.Position.Y,
			piece.World.Position.Z,
			piece.World.Heading,
			piece.World.Scale,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
