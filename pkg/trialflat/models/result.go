package models

import "strconv"

// Warning is an operator-facing notice produced during a run.
type Warning struct {
	// Sample is the sample index the warning concerns, or 0 for the whole run.
	Sample  int    `json:"sample,omitempty"`
	Message string `json:"message"`
}

// Result is the outcome of one transform run.
type Result struct {
	Table    Table     `json:"table"`
	Warnings []Warning `json:"warnings,omitempty"`
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
