// Package transform flattens sample blocks of an instrument export into
// one output row per sample.
package transform

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/langcoglab/trialflat/pkg/trialflat/models"
	"github.com/langcoglab/trialflat/pkg/trialflat/parser"
)

// Sampler produces the output table for a layout.
type Sampler struct {
	layout models.Layout
	log    logrus.FieldLogger
}

// New validates the layout and returns a Sampler. A nil logger uses the
// logrus standard logger.
func New(layout models.Layout, log logrus.FieldLogger) (*Sampler, error) {
	if err := Validate(layout); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Sampler{layout: layout, log: log}, nil
}

// Layout returns the sampler's layout.
func (s *Sampler) Layout() models.Layout {
	return s.layout
}

// StartRow returns the first source row of the sample's block.
//
// The anchor sample's block starts at row 1; every later block starts
// TrialsPerSample rows after the previous one. Samples at or before the
// anchor all start at row 1.
func StartRow(l models.Layout, sample int) int {
	if sample <= l.AnchorSample {
		return 1
	}
	return (sample-l.AnchorSample)*l.TrialsPerSample + 1
}

// Run reads every sample in range and returns the table with its warnings.
// Cell failures never fail the run; only a cancelled ctx does, and then no
// partial result is returned.
func (s *Sampler) Run(ctx context.Context, r *parser.Reader) (*models.Result, error) {
	res := &models.Result{
		Table: models.Table{
			Headers: append([]string(nil), s.layout.Columns...),
			Rows:    make([]models.SampleRecord, 0, s.layout.SampleCount()),
		},
	}

	subject, err := r.SubjectNumber(s.layout.SubjectNumberCell)
	if err != nil {
		s.log.WithError(err).Warn("Using default subject number 0")
		res.Warnings = append(res.Warnings, models.Warning{
			Message: fmt.Sprintf("Could not find subject number in cell %s. Using default value 0.", s.layout.SubjectNumberCell),
		})
		subject = 0
	}

	for sample := s.layout.StartSample; sample <= s.layout.EndSample; sample++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res.Table.Rows = append(res.Table.Rows, s.Sample(r, sample, subject))
	}

	if w, ok := s.truncation(r.Sheet()); ok {
		res.Warnings = append(res.Warnings, w)
	}
	return res, nil
}

// Sample reads one sample block. Unreadable fields are left empty and
// marked failed.
func (s *Sampler) Sample(r *parser.Reader, sample, subject int) models.SampleRecord {
	start := StartRow(s.layout, sample)
	rec := models.SampleRecord{
		Sample:        sample,
		OutputRow:     sample,
		StartRow:      start,
		SubjectNumber: subject,
		Fields:        make([]models.FieldValue, 0, len(s.layout.Fields)),
	}

	for _, f := range s.layout.Fields {
		row, col := start+f.RowOffset, f.Col
		cell := r.Read(row, col)
		fv := models.FieldValue{
			Column: f.Column,
			Value:  cell.Value,
			Status: cell.Status,
			Row:    row,
			Col:    col,
		}
		if cell.Err != nil {
			fv.Reason = cell.Err.Error()
			s.log.WithFields(logrus.Fields{
				"sample": sample,
				"field":  f.Column,
				"row":    row,
				"col":    col,
			}).WithError(cell.Err).Debug("Field unreadable, left empty")
		}
		rec.Fields = append(rec.Fields, fv)
	}
	return rec
}

// truncation reports sample blocks lying wholly below the sheet's data.
func (s *Sampler) truncation(sheet parser.Sheet) (models.Warning, bool) {
	ext, ok := sheet.(parser.Extenter)
	if !ok {
		return models.Warning{}, false
	}
	lastRow, _ := ext.Extent()

	var missing, first int
	for sample := s.layout.StartSample; sample <= s.layout.EndSample; sample++ {
		if StartRow(s.layout, sample) > lastRow {
			if missing == 0 {
				first = sample
			}
			missing++
		}
	}
	if missing == 0 {
		return models.Warning{}, false
	}

	s.log.WithFields(logrus.Fields{
		"last_row": lastRow,
		"missing":  missing,
	}).Info("Sample blocks beyond end of sheet")
	return models.Warning{
		Sample:  first,
		Message: fmt.Sprintf("Sheet ends at row %d; %d sample(s) from sample %d on have no data and were left empty.", lastRow, missing, first),
	}, true
}
