package transform

import (
	"errors"
	"fmt"

	"github.com/langcoglab/trialflat/pkg/trialflat/models"
	"github.com/langcoglab/trialflat/pkg/trialflat/parser"
)

// Validate reports every inconsistency in the layout, joined.
func Validate(l models.Layout) error {
	var errs []error

	if l.TrialsPerSample < 1 {
		errs = append(errs, fmt.Errorf("trials_per_sample must be positive, got %d", l.TrialsPerSample))
	}
	// Output row 1 holds the headers and each sample writes to the row of its index.
	if l.StartSample < 2 {
		errs = append(errs, fmt.Errorf("start_sample must be at least 2, got %d", l.StartSample))
	}
	if l.EndSample < l.StartSample {
		errs = append(errs, fmt.Errorf("end_sample %d is before start_sample %d", l.EndSample, l.StartSample))
	}
	if l.AnchorSample < 1 {
		errs = append(errs, fmt.Errorf("anchor_sample must be positive, got %d", l.AnchorSample))
	}

	if row, _, err := parser.ParseAddress(l.SubjectNumberCell); err != nil {
		errs = append(errs, fmt.Errorf("subject_number_cell: %w", err))
	} else if l.HeaderEndRow > 0 && row > l.HeaderEndRow {
		errs = append(errs, fmt.Errorf("subject_number_cell %s lies below header_end_row %d", l.SubjectNumberCell, l.HeaderEndRow))
	}

	if len(l.Columns) == 0 {
		errs = append(errs, errors.New("columns must not be empty"))
	}
	columns := make(map[string]bool, len(l.Columns))
	for _, c := range l.Columns {
		if columns[c] {
			errs = append(errs, fmt.Errorf("duplicate column %q", c))
		}
		columns[c] = true
	}

	mapped := make(map[string]bool, len(l.Fields))
	for _, f := range l.Fields {
		switch {
		case f.Column == models.SubjectNumberColumn:
			errs = append(errs, fmt.Errorf("field %q is filled from subject_number_cell and cannot be mapped", f.Column))
		case !columns[f.Column]:
			errs = append(errs, fmt.Errorf("field %q is not an output column", f.Column))
		case mapped[f.Column]:
			errs = append(errs, fmt.Errorf("field %q is mapped twice", f.Column))
		}
		mapped[f.Column] = true

		if f.RowOffset < 0 || (l.TrialsPerSample > 0 && f.RowOffset >= l.TrialsPerSample) {
			errs = append(errs, fmt.Errorf("field %q: row_offset %d outside block of %d rows", f.Column, f.RowOffset, l.TrialsPerSample))
		}
		if f.Col < 1 {
			errs = append(errs, fmt.Errorf("field %q: col must be positive, got %d", f.Column, f.Col))
		}
	}

	return errors.Join(errs...)
}
