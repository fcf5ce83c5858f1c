package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SubjectNumberPrefix precedes the identifier in the subject cell.
const SubjectNumberPrefix = "Subject Number: "

// ErrSubjectNumber indicates the subject cell could not be parsed.
var ErrSubjectNumber = errors.New("subject number not found")

// SubjectNumber reads the subject identifier at the A1-style address.
// On any failure it returns 0 and an error wrapping ErrSubjectNumber.
func (r *Reader) SubjectNumber(addr string) (int, error) {
	row, col, err := ParseAddress(addr)
	if err != nil {
		return 0, fmt.Errorf("%w in cell %s: %v", ErrSubjectNumber, addr, err)
	}
	raw, err := r.raw(row, col)
	if err != nil {
		return 0, fmt.Errorf("%w in cell %s: %v", ErrSubjectNumber, addr, err)
	}
	return ParseSubjectNumber(raw, addr)
}

// ParseSubjectNumber parses a value of the form "Subject Number: <int>".
// addr only decorates the error.
func ParseSubjectNumber(value, addr string) (int, error) {
	if strings.TrimSpace(value) == "" {
		return 0, fmt.Errorf("%w in cell %s: cell is empty", ErrSubjectNumber, addr)
	}
	digits := strings.TrimSpace(strings.Replace(value, SubjectNumberPrefix, "", 1))
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w in cell %s: unexpected value %q", ErrSubjectNumber, addr, value)
	}
	return n, nil
}
