// Package models defines data structures for trial sheet flattening.
package models

// FieldSpec maps one output column to a cell inside a sample block.
type FieldSpec struct {
	// Column is the output header the value is written under.
	Column string `json:"column" yaml:"column"`
	// RowOffset is the row offset from the block's start row.
	RowOffset int `json:"row_offset" yaml:"row_offset"`
	// Col is the source column (1-based).
	Col int `json:"col" yaml:"col"`
}

// Layout describes where the instrument export keeps its data.
type Layout struct {
	// HeaderEndRow is the last row of the export's header block.
	HeaderEndRow int `json:"header_end_row" yaml:"header_end_row"`
	// SubjectNumberCell is the address holding "Subject Number: <n>".
	SubjectNumberCell string `json:"subject_number_cell" yaml:"subject_number_cell"`
	// TrialsPerSample is the number of raw rows per sample block.
	TrialsPerSample int `json:"trials_per_sample" yaml:"trials_per_sample"`
	// StartSample is the first sample index (inclusive).
	StartSample int `json:"start_sample" yaml:"start_sample"`
	// EndSample is the last sample index (inclusive).
	EndSample int `json:"end_sample" yaml:"end_sample"`
	// AnchorSample is the sample whose block starts at row 1.
	// Later samples start TrialsPerSample rows apart, counted from it.
	AnchorSample int `json:"anchor_sample" yaml:"anchor_sample"`
	// Sheet is the source sheet name. Empty selects the active sheet.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
	// OutputFilename is the suggested name of the converted workbook.
	OutputFilename string `json:"output_filename" yaml:"output_filename"`
	// Columns is the ordered list of output headers.
	Columns []string `json:"columns" yaml:"columns"`
	// Fields maps output columns to block cells.
	Fields []FieldSpec `json:"fields" yaml:"fields"`
}

// SampleCount returns the number of samples the layout produces.
func (l Layout) SampleCount() int {
	if l.EndSample < l.StartSample {
		return 0
	}
	return l.EndSample - l.StartSample + 1
}

// DefaultColumns is the output header row of the lab's analysis sheet.
var DefaultColumns = []string{
	SubjectNumberColumn, "trial", "null", "condition", "time",
	"Relationship", "ControlQ1 Copy 2", "ControlQ1 Copy - 2 - 2",
	"FirstMoozleProp Copy 13", "SecondMoozleProp Copy 13",
	"SecondMoozleProp2 Copy 13", "ChoiceResponse Copy 2",
	"ControlQ2 Copy 2", "ControlQ2 Copy-2 - 2", "Choice",
	"SameChoice", "BeliefType", "AgeGroup",
}

// DefaultFields is the cell map of one sample block in the instrument export.
var DefaultFields = []FieldSpec{
	{Column: "trial", RowOffset: 0, Col: 3},
	{Column: "condition", RowOffset: 0, Col: 6},
	{Column: "time", RowOffset: 6, Col: 12},
	{Column: "Relationship", RowOffset: 0, Col: 5},
	{Column: "ControlQ1 Copy 2", RowOffset: 1, Col: 14},
	{Column: "ControlQ1 Copy - 2 - 2", RowOffset: 2, Col: 14},
	{Column: "FirstMoozleProp Copy 13", RowOffset: 3, Col: 5},
	{Column: "SecondMoozleProp Copy 13", RowOffset: 4, Col: 5},
	{Column: "SecondMoozleProp2 Copy 13", RowOffset: 5, Col: 5},
	{Column: "ChoiceResponse Copy 2", RowOffset: 6, Col: 14},
	{Column: "ControlQ2 Copy 2", RowOffset: 7, Col: 14},
	{Column: "ControlQ2 Copy-2 - 2", RowOffset: 8, Col: 14},
}

// DefaultLayout returns the layout of the instrument's standard export.
// The returned value owns its slices.
func DefaultLayout() Layout {
	return Layout{
		HeaderEndRow:      17,
		SubjectNumberCell: "A12",
		TrialsPerSample:   9,
		StartSample:       2,
		EndSample:         25,
		AnchorSample:      2,
		OutputFilename:    "edited_.xlsx",
		Columns:           append([]string(nil), DefaultColumns...),
		Fields:            append([]FieldSpec(nil), DefaultFields...),
	}
}
