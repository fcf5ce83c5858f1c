// Package trialflat flattens instrument trial exports into one row per sample.
package trialflat

import (
	"github.com/sirupsen/logrus"

	"github.com/langcoglab/trialflat/pkg/trialflat/models"
)

// Options configures a transform run.
type Options struct {
	// Layout describes the source sheet and the output columns.
	Layout models.Layout
	// Logger receives per-field diagnostics.
	// If nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

// DefaultOptions returns options for the instrument's standard export.
func DefaultOptions() Options {
	return Options{
		Layout: models.DefaultLayout(),
	}
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}
