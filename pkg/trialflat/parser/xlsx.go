package parser

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// xlsxSheet reads one sheet of an OOXML workbook through excelize.
type xlsxSheet struct {
	f    *excelize.File
	name string

	rows, cols int
}

// NewXLSXSheet binds an opened excelize workbook to a sheet.
// An empty name selects the active sheet.
func NewXLSXSheet(f *excelize.File, name string) (Document, error) {
	if name == "" {
		name = f.GetSheetName(f.GetActiveSheetIndex())
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoSheet, name)
	}

	s := &xlsxSheet{f: f, name: name}

	// Extent is advisory; a sheet that cannot be scanned still reads by cell.
	if rows, err := f.GetRows(name, excelize.Options{RawCellValue: true}); err == nil {
		s.rows, s.cols = extentOf(rows)
	}
	return s, nil
}

func openXLSX(r io.Reader, sheet string) (Document, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	doc, err := NewXLSXSheet(f, sheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	return doc, nil
}

func openXLSXFile(path, sheet string) (Document, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := NewXLSXSheet(f, sheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	return doc, nil
}

func (s *xlsxSheet) Name() string {
	return s.name
}

func (s *xlsxSheet) Value(row, col int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return s.f.GetCellValue(s.name, cell, excelize.Options{RawCellValue: true})
}

func (s *xlsxSheet) Extent() (rows, cols int) {
	return s.rows, s.cols
}

func (s *xlsxSheet) Close() error {
	return s.f.Close()
}
