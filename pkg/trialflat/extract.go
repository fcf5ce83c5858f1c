package trialflat

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/langcoglab/trialflat/pkg/trialflat/models"
	"github.com/langcoglab/trialflat/pkg/trialflat/parser"
	"github.com/langcoglab/trialflat/pkg/trialflat/transform"
)

// Transform flattens an already loaded sheet.
func Transform(ctx context.Context, sheet parser.Sheet, opts Options) (*models.Result, error) {
	s, err := transform.New(opts.Layout, opts.logger())
	if err != nil {
		return nil, NewTransformError(StageLayout, "", fmt.Errorf("%w: %w", ErrInvalidLayout, err))
	}

	res, err := s.Run(ctx, parser.NewReader(sheet))
	if err != nil {
		return nil, NewTransformError(StageTransform, sheet.Name(), err)
	}
	return res, nil
}

// TransformFile loads the workbook at path and flattens its layout sheet.
func TransformFile(ctx context.Context, path string, opts Options) (*models.Result, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, NewTransformError(StageLoad, path, fmt.Errorf("%w: %s", ErrFileNotFound, path))
	}

	doc, err := parser.OpenFile(path, opts.Layout.Sheet)
	if err != nil {
		return nil, NewTransformError(StageLoad, filepath.Base(path), err)
	}
	defer doc.Close()

	opts.Logger = opts.logger().WithField("source", filepath.Base(path))
	return Transform(ctx, doc, opts)
}

// TransformReader decodes a workbook from r and flattens it. name selects
// the input format by its extension.
func TransformReader(ctx context.Context, r io.Reader, name string, opts Options) (*models.Result, error) {
	doc, err := parser.OpenReader(r, name, opts.Layout.Sheet)
	if err != nil {
		return nil, NewTransformError(StageLoad, name, err)
	}
	defer doc.Close()

	opts.Logger = opts.logger().WithField("source", name)
	return Transform(ctx, doc, opts)
}
