package trialflat

import (
	"errors"
	"fmt"

	"github.com/langcoglab/trialflat/pkg/trialflat/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input is not a known spreadsheet format.
var ErrUnsupportedFormat = parser.ErrUnsupportedFormat

// ErrInvalidLayout indicates the layout failed validation.
var ErrInvalidLayout = errors.New("invalid layout")

// Stages at which a run can fail.
const (
	StageLoad      = "load"
	StageLayout    = "layout"
	StageTransform = "transform"
	StageSave      = "save"
)

// TransformError represents a failure that aborts a run.
type TransformError struct {
	Stage string
	// Source names the input, when known.
	Source string
	Err    error
}

func (e *TransformError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s failed for %q: %v", e.Stage, e.Source, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(stage, source string, err error) *TransformError {
	return &TransformError{
		Stage:  stage,
		Source: source,
		Err:    err,
	}
}
