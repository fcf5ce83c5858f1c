package parser

import (
	"fmt"
	"io"

	"github.com/extrame/xls"
)

// xlsCharset is used for BIFF5 string records lacking a code page.
const xlsCharset = "utf-8"

// xlsSheet reads one sheet of a legacy BIFF workbook.
type xlsSheet struct {
	ws *xls.WorkSheet
}

func openXLS(r io.ReadSeeker, sheet string) (Document, error) {
	wb, err := xls.OpenReader(r, xlsCharset)
	if err != nil {
		return nil, err
	}
	return newXLSSheet(wb, sheet)
}

func openXLSFile(path, sheet string) (Document, error) {
	wb, err := xls.Open(path, xlsCharset)
	if err != nil {
		return nil, err
	}
	return newXLSSheet(wb, sheet)
}

// newXLSSheet selects the named sheet, or the first sheet when name is empty.
func newXLSSheet(wb *xls.WorkBook, name string) (Document, error) {
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		if name == "" || ws.Name == name {
			return &xlsSheet{ws: ws}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoSheet, name)
}

func (s *xlsSheet) Name() string {
	return s.ws.Name
}

func (s *xlsSheet) Value(row, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", &CoordinateError{Row: row, Col: col}
	}
	r := s.ws.Row(row - 1)
	if r == nil || col-1 > r.LastCol() {
		return "", nil
	}
	return r.Col(col - 1), nil
}

func (s *xlsSheet) Extent() (rows, cols int) {
	for i := 0; i <= int(s.ws.MaxRow); i++ {
		r := s.ws.Row(i)
		if r == nil {
			continue
		}
		for c := r.FirstCol(); c <= r.LastCol(); c++ {
			if r.Col(c) == "" {
				continue
			}
			rows = i + 1
			if c+1 > cols {
				cols = c + 1
			}
		}
	}
	return rows, cols
}

func (s *xlsSheet) Close() error {
	return nil
}
