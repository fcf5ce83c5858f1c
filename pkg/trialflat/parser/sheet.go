// Package parser provides worksheet access for instrument exports.
package parser

import (
	"errors"
	"io"
)

// ErrNoSheet indicates the requested sheet does not exist in the workbook.
var ErrNoSheet = errors.New("sheet not found")

// Sheet is a worksheet addressable by 1-based row and column.
//
// Value returns "" with a nil error for absent or blank cells. A non-nil
// error means the cell could not be read at all.
type Sheet interface {
	Name() string
	Value(row, col int) (string, error)
}

// Extenter is implemented by sheets that know their data extent.
type Extenter interface {
	// Extent returns the last row and column holding data (1-based),
	// or zeros for an empty sheet.
	Extent() (rows, cols int)
}

// Document is an opened workbook bound to one sheet.
type Document interface {
	Sheet
	io.Closer
}

// Grid is an in-memory sheet. Grid[r][c] holds the cell at row r+1, column c+1.
type Grid struct {
	SheetName string
	Cells     [][]string
}

// NewGrid builds a Grid from rows of cells.
func NewGrid(name string, rows [][]string) *Grid {
	return &Grid{SheetName: name, Cells: rows}
}

// Name returns the sheet name.
func (g *Grid) Name() string {
	return g.SheetName
}

// Value returns the cell at (row, col). Cells outside the grid are blank.
func (g *Grid) Value(row, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", &CoordinateError{Row: row, Col: col}
	}
	if row > len(g.Cells) || col > len(g.Cells[row-1]) {
		return "", nil
	}
	return g.Cells[row-1][col-1], nil
}

// Set stores a value at (row, col), growing the grid as needed.
func (g *Grid) Set(row, col int, value string) {
	for len(g.Cells) < row {
		g.Cells = append(g.Cells, nil)
	}
	for len(g.Cells[row-1]) < col {
		g.Cells[row-1] = append(g.Cells[row-1], "")
	}
	g.Cells[row-1][col-1] = value
}

// Extent returns the data bounds of the grid.
func (g *Grid) Extent() (rows, cols int) {
	return extentOf(g.Cells)
}

// Close is a no-op.
func (g *Grid) Close() error {
	return nil
}
