package transform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/langcoglab/trialflat/pkg/trialflat/models"
	"github.com/langcoglab/trialflat/pkg/trialflat/parser"
)

// buildExport lays out an instrument export with the subject cell and
// every field of samples [from, to] filled with "<column>/<sample>".
func buildExport(l models.Layout, subject string, from, to int) *parser.Grid {
	g := parser.NewGrid("export", nil)
	if subject != "" {
		row, col, _ := parser.ParseAddress(l.SubjectNumberCell)
		g.Set(row, col, subject)
	}
	for s := from; s <= to; s++ {
		start := StartRow(l, s)
		for _, f := range l.Fields {
			g.Set(start+f.RowOffset, f.Col, fmt.Sprintf("%s/%d", f.Column, s))
		}
	}
	return g
}

func newSampler(t *testing.T, l models.Layout) (*Sampler, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s, err := New(l, logger)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s, hook
}

func TestStartRow(t *testing.T) {
	l := models.DefaultLayout()

	tests := []struct {
		sample   int
		expected int
	}{
		{2, 1},
		{3, 10},
		{4, 19},
		{10, 73},
		{25, 208},
	}

	for _, tt := range tests {
		if got := StartRow(l, tt.sample); got != tt.expected {
			t.Errorf("StartRow(%d) = %d, expected %d", tt.sample, got, tt.expected)
		}
	}
}

func TestRunFullExport(t *testing.T) {
	l := models.DefaultLayout()
	s, _ := newSampler(t, l)
	grid := buildExport(l, "Subject Number: 31", l.StartSample, l.EndSample)

	res, err := s.Run(context.Background(), parser.NewReader(grid))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(res.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %+v", res.Warnings)
	}
	if len(res.Table.Headers) != 18 || res.Table.Headers[0] != models.SubjectNumberColumn {
		t.Errorf("Unexpected headers %q", res.Table.Headers)
	}
	if len(res.Table.Rows) != 24 {
		t.Fatalf("Expected 24 rows, got %d", len(res.Table.Rows))
	}

	for i, rec := range res.Table.Rows {
		sample := l.StartSample + i
		if rec.Sample != sample || rec.OutputRow != sample {
			t.Errorf("Row %d: sample %d output row %d, expected %d", i, rec.Sample, rec.OutputRow, sample)
		}
		if rec.SubjectNumber != 31 {
			t.Errorf("Sample %d: subject %d, expected 31", sample, rec.SubjectNumber)
		}
		if len(rec.Fields) != 12 {
			t.Errorf("Sample %d: %d fields, expected 12", sample, len(rec.Fields))
		}
		for _, f := range rec.Fields {
			want := fmt.Sprintf("%s/%d", f.Column, sample)
			if f.Value != want || f.Status != models.FieldPresent {
				t.Errorf("Sample %d %q = (%q, %s), expected %q", sample, f.Column, f.Value, f.Status, want)
			}
		}
	}
}

func TestSampleCoordinates(t *testing.T) {
	l := models.DefaultLayout()
	s, _ := newSampler(t, l)

	rec := s.Sample(parser.NewReader(parser.NewGrid("empty", nil)), 3, 0)
	if rec.StartRow != 10 {
		t.Fatalf("StartRow = %d, expected 10", rec.StartRow)
	}

	expected := map[string][2]int{
		"trial":                     {10, 3},
		"condition":                 {10, 6},
		"Relationship":              {10, 5},
		"ControlQ1 Copy 2":          {11, 14},
		"ControlQ1 Copy - 2 - 2":    {12, 14},
		"FirstMoozleProp Copy 13":   {13, 5},
		"SecondMoozleProp Copy 13":  {14, 5},
		"SecondMoozleProp2 Copy 13": {15, 5},
		"time":                      {16, 12},
		"ChoiceResponse Copy 2":     {16, 14},
		"ControlQ2 Copy 2":          {17, 14},
		"ControlQ2 Copy-2 - 2":      {18, 14},
	}
	if len(rec.Fields) != len(expected) {
		t.Fatalf("Expected %d fields, got %d", len(expected), len(rec.Fields))
	}
	for _, f := range rec.Fields {
		want, ok := expected[f.Column]
		if !ok {
			t.Errorf("Unexpected field %q", f.Column)
			continue
		}
		if f.Row != want[0] || f.Col != want[1] {
			t.Errorf("%q read at (%d, %d), expected (%d, %d)", f.Column, f.Row, f.Col, want[0], want[1])
		}
	}
}

func TestRunMalformedSubject(t *testing.T) {
	l := models.DefaultLayout()

	for _, subject := range []string{"", "Subject Number: n/a"} {
		s, hook := newSampler(t, l)
		grid := buildExport(l, subject, l.StartSample, l.EndSample)

		res, err := s.Run(context.Background(), parser.NewReader(grid))
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if len(res.Table.Rows) != l.SampleCount() {
			t.Errorf("Expected %d rows, got %d", l.SampleCount(), len(res.Table.Rows))
		}
		for _, rec := range res.Table.Rows {
			if rec.SubjectNumber != 0 {
				t.Errorf("Sample %d: subject %d, expected 0", rec.Sample, rec.SubjectNumber)
			}
		}
		if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0].Message, "A12") {
			t.Errorf("Expected one subject warning, got %+v", res.Warnings)
		}

		var warned bool
		for _, e := range hook.AllEntries() {
			if e.Level == logrus.WarnLevel {
				warned = true
			}
		}
		if !warned {
			t.Errorf("Expected a warn log entry for subject %q", subject)
		}
	}
}

func TestRunTruncatedSheet(t *testing.T) {
	l := models.DefaultLayout()
	s, _ := newSampler(t, l)

	// Only samples 2 and 3 are present: rows 1-18.
	grid := buildExport(l, "Subject Number: 5", 2, 3)

	res, err := s.Run(context.Background(), parser.NewReader(grid))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Table.Rows) != 24 {
		t.Fatalf("Expected 24 rows, got %d", len(res.Table.Rows))
	}

	last := res.Table.Rows[len(res.Table.Rows)-1]
	if last.SubjectNumber != 5 {
		t.Errorf("Last sample subject %d, expected 5", last.SubjectNumber)
	}
	for _, f := range last.Fields {
		if f.Value != "" || f.Status != models.FieldEmpty {
			t.Errorf("Sample 25 %q = (%q, %s), expected empty", f.Column, f.Value, f.Status)
		}
	}

	if len(res.Warnings) != 1 {
		t.Fatalf("Expected one truncation warning, got %+v", res.Warnings)
	}
	w := res.Warnings[0]
	if w.Sample != 4 || !strings.Contains(w.Message, "22 sample(s)") {
		t.Errorf("Unexpected truncation warning %+v", w)
	}
}

// flakySheet fails every read in one column.
type flakySheet struct {
	*parser.Grid
	badCol int
}

func (s flakySheet) Value(row, col int) (string, error) {
	if col == s.badCol {
		return "", errors.New("unreadable record")
	}
	return s.Grid.Value(row, col)
}

func TestRunFailedFields(t *testing.T) {
	l := models.DefaultLayout()
	s, hook := newSampler(t, l)
	grid := buildExport(l, "Subject Number: 8", l.StartSample, l.EndSample)

	res, err := s.Run(context.Background(), parser.NewReader(flakySheet{Grid: grid, badCol: 14}))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Table.Rows) != 24 {
		t.Fatalf("Expected 24 rows, got %d", len(res.Table.Rows))
	}

	rec := res.Table.Rows[0]
	failed := rec.Failed()
	if len(failed) != 5 {
		t.Errorf("Expected 5 failed fields in column 14, got %d", len(failed))
	}
	for _, f := range failed {
		if f.Col != 14 || f.Value != "" || f.Reason == "" {
			t.Errorf("Unexpected failed field %+v", f)
		}
	}
	if v, _ := rec.Value("trial"); v != "trial/2" {
		t.Errorf("trial = %q, expected %q", v, "trial/2")
	}

	var debug int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.DebugLevel && e.Data["col"] == 14 {
			debug++
		}
	}
	if debug != 5*24 {
		t.Errorf("Expected %d debug entries, got %d", 5*24, debug)
	}
}

func TestRunCancelled(t *testing.T) {
	l := models.DefaultLayout()
	s, _ := newSampler(t, l)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := s.Run(ctx, parser.NewReader(parser.NewGrid("export", nil)))
	if !errors.Is(err, context.Canceled) || res != nil {
		t.Errorf("Run(cancelled) = (%v, %v), expected (nil, context.Canceled)", res, err)
	}
}

func TestRunCustomRange(t *testing.T) {
	l := models.DefaultLayout()
	l.StartSample, l.EndSample = 5, 7
	s, _ := newSampler(t, l)

	grid := buildExport(l, "Subject Number: 1", 5, 7)
	res, err := s.Run(context.Background(), parser.NewReader(grid))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Table.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(res.Table.Rows))
	}
	if rec := res.Table.Rows[0]; rec.Sample != 5 || rec.OutputRow != 5 || rec.StartRow != 28 {
		t.Errorf("First record %+v, expected sample 5 at output row 5 from source row 28", rec)
	}
}
