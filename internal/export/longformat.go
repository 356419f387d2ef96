package export

import (
	"fmt"
	"io"

	"esgboard/internal/metrics"

	"github.com/xuri/excelize/v2"
)

const longSheetName = "Unpivoted Headcount"

// WriteLongFormatXLSX exports the headcount matrix unpivoted to long
// format: one row per (group, month, headcount), as a spreadsheet.
func WriteLongFormatXLSX(w io.Writer, matrix *metrics.HeadcountMatrix) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(longSheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := append(append([]string{}, matrix.Dimensions...), "Month", "Headcount")
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(longSheetName, cell, name); err != nil {
			return err
		}
	}

	for i, row := range matrix.Unpivot() {
		values := make([]interface{}, 0, len(row.Keys)+2)
		for _, k := range row.Keys {
			values = append(values, k)
		}
		values = append(values, row.Month, row.Headcount)

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(longSheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}
