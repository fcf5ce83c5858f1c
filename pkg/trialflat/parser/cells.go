package parser

import (
	"fmt"
	"strings"

	"github.com/langcoglab/trialflat/pkg/trialflat/models"
)

// artifactMarkup lists instrument markup stripped from every read value,
// in removal order.
var artifactMarkup = []string{".PICT @ :Pictures:", "[", "]"}

// CleanString removes instrument artifact markup from s.
func CleanString(s string) string {
	for _, m := range artifactMarkup {
		s = strings.ReplaceAll(s, m, "")
	}
	return s
}

// CellResult is the outcome of one cell read.
type CellResult struct {
	Value  string
	Status models.FieldStatus
	Err    error
}

// Reader gives failure-tolerant access to a sheet.
type Reader struct {
	sheet Sheet
}

// NewReader wraps a sheet.
func NewReader(sheet Sheet) *Reader {
	return &Reader{sheet: sheet}
}

// Sheet returns the wrapped sheet.
func (r *Reader) Sheet() Sheet {
	return r.sheet
}

// Read returns the cleaned value at (row, col) together with how it was
// obtained. It never panics; adapter failures are reported as FieldFailed.
func (r *Reader) Read(row, col int) CellResult {
	raw, err := r.raw(row, col)
	switch {
	case err != nil:
		return CellResult{Status: models.FieldFailed, Err: err}
	case raw == "":
		return CellResult{Status: models.FieldEmpty}
	default:
		return CellResult{Value: CleanString(raw), Status: models.FieldPresent}
	}
}

// ReadSafely returns the cleaned value at (row, col), or "" when the cell
// is absent, blank or unreadable.
func (r *Reader) ReadSafely(row, col int) string {
	return r.Read(row, col).Value
}

// raw reads an uncleaned value, converting adapter panics into errors.
func (r *Reader) raw(row, col int) (value string, err error) {
	defer func() {
		if p := recover(); p != nil {
			value, err = "", fmt.Errorf("read (row %d, col %d): %v", row, col, p)
		}
	}()
	if r.sheet == nil {
		return "", fmt.Errorf("read (row %d, col %d): no sheet", row, col)
	}
	return r.sheet.Value(row, col)
}
