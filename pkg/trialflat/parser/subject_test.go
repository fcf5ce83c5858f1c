package parser

import (
	"errors"
	"testing"
)

func TestSubjectNumber(t *testing.T) {
	tests := []struct {
		name     string
		cell     string
		expected int
		wantErr  bool
	}{
		{"labelled", "Subject Number: 42", 42, false},
		{"trailing space", "Subject Number: 7 ", 7, false},
		{"bare number", "15", 15, false},
		{"empty", "", 0, true},
		{"wrong label", "Participant: 3", 0, true},
		{"non-numeric", "Subject Number: abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewGrid("data", nil)
			grid.Set(12, 1, tt.cell)

			n, err := NewReader(grid).SubjectNumber("A12")
			if n != tt.expected {
				t.Errorf("SubjectNumber() = %d, expected %d", n, tt.expected)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrSubjectNumber) {
					t.Errorf("SubjectNumber() error = %v, expected ErrSubjectNumber", err)
				}
			} else if err != nil {
				t.Errorf("SubjectNumber() unexpected error: %v", err)
			}
		})
	}
}

func TestSubjectNumberBadAddress(t *testing.T) {
	n, err := NewReader(NewGrid("data", nil)).SubjectNumber("not a cell")
	if n != 0 || !errors.Is(err, ErrSubjectNumber) {
		t.Errorf("SubjectNumber(bad address) = (%d, %v), expected (0, ErrSubjectNumber)", n, err)
	}
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		addr     string
		row, col int
		wantErr  bool
	}{
		{"A12", 12, 1, false},
		{"$N$3", 3, 14, false},
		{" L7 ", 7, 12, false},
		{"12A", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		row, col, err := ParseAddress(tt.addr)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAddress(%q) error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			continue
		}
		if row != tt.row || col != tt.col {
			t.Errorf("ParseAddress(%q) = (%d, %d), expected (%d, %d)", tt.addr, row, col, tt.row, tt.col)
		}
	}
}
