package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CoordinateError reports an unusable cell coordinate.
type CoordinateError struct {
	Row, Col int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid cell coordinate (row %d, col %d)", e.Row, e.Col)
}

// ParseAddress converts an A1-style address such as "A12" or "$A$12"
// to 1-based row and column.
func ParseAddress(addr string) (row, col int, err error) {
	addr = strings.ReplaceAll(strings.TrimSpace(addr), "$", "")
	col, row, err = excelize.CellNameToCoordinates(addr)
	if err != nil {
		return 0, 0, fmt.Errorf("parse cell address %q: %w", addr, err)
	}
	return row, col, nil
}

// CellName converts 1-based coordinates to an A1-style address.
func CellName(row, col int) (string, error) {
	return excelize.CoordinatesToCellName(col, row)
}
