package models

// SubjectNumberColumn is the header of the run-wide subject identifier.
const SubjectNumberColumn = "Subject Number"

// FieldStatus tells how a field value was obtained.
type FieldStatus string

const (
	// FieldPresent means the cell held a value.
	FieldPresent FieldStatus = "present"
	// FieldEmpty means the cell was absent or blank.
	FieldEmpty FieldStatus = "empty"
	// FieldFailed means the cell could not be read; Value is empty.
	FieldFailed FieldStatus = "failed"
)

// FieldValue is the outcome of reading one mapped field.
type FieldValue struct {
	Column string      `json:"column"`
	Value  string      `json:"value"`
	Status FieldStatus `json:"status"`
	// Reason describes the failure when Status is FieldFailed.
	Reason string `json:"reason,omitempty"`
	// Row and Col are the source coordinates (1-based).
	Row int `json:"row"`
	Col int `json:"col"`
}

// SampleRecord is one flattened output row.
type SampleRecord struct {
	// Sample is the logical sample index.
	Sample int `json:"sample"`
	// OutputRow is the 1-based row in the output sheet. It equals Sample.
	OutputRow int `json:"output_row"`
	// StartRow is the first source row of the sample block.
	StartRow      int          `json:"start_row"`
	SubjectNumber int          `json:"subject_number"`
	Fields        []FieldValue `json:"fields"`
}

// Value returns the value of the named column and whether the record maps it.
func (r SampleRecord) Value(column string) (string, bool) {
	for _, f := range r.Fields {
		if f.Column == column {
			return f.Value, true
		}
	}
	return "", false
}

// Failed returns the fields that could not be read.
func (r SampleRecord) Failed() []FieldValue {
	var failed []FieldValue
	for _, f := range r.Fields {
		if f.Status == FieldFailed {
			failed = append(failed, f)
		}
	}
	return failed
}

// Table is the flattened output: a header row plus one record per sample.
type Table struct {
	Headers []string       `json:"headers"`
	Rows    []SampleRecord `json:"rows"`
}

// Cell returns the value rendered under header for the record.
// The subject number is an int; mapped fields are strings;
// unmapped headers are nil.
func (t Table) Cell(r SampleRecord, header string) interface{} {
	if header == SubjectNumberColumn {
		return r.SubjectNumber
	}
	if v, ok := r.Value(header); ok {
		return v
	}
	return nil
}

// Records renders the header row followed by one row per record,
// in header order.
func (t Table) Records() [][]interface{} {
	out := make([][]interface{}, 0, len(t.Rows)+1)
	header := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	out = append(out, header)

	for _, r := range t.Rows {
		row := make([]interface{}, len(t.Headers))
		for i, h := range t.Headers {
			row[i] = t.Cell(r, h)
		}
		out = append(out, row)
	}
	return out
}

// Column returns the values of one output column, one entry per record.
// Unmapped columns yield empty strings.
func (t Table) Column(header string) []string {
	values := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		switch v := t.Cell(r, header).(type) {
		case string:
			values[i] = v
		case int:
			values[i] = itoa(v)
		}
	}
	return values
}
