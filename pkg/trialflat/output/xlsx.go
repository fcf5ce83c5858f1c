// Package output serializes flattened tables.
package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/langcoglab/trialflat/pkg/trialflat/models"
)

// DefaultSheetName is the sheet a new excelize workbook starts with.
const DefaultSheetName = "Sheet1"

// ToXLSX builds a workbook holding the table. Headers go to row 1 and each
// record to the row numbered by its OutputRow.
func ToXLSX(t models.Table) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSheet(f, DefaultSheetName, t); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteXLSX writes the table as an xlsx workbook to w.
func WriteXLSX(w io.Writer, t models.Table) error {
	f, err := ToXLSX(t)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, t models.Table) error {
	for col, h := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for _, r := range t.Rows {
		for col, h := range t.Headers {
			v := t.Cell(r, h)
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r.OutputRow)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}
	return nil
}
