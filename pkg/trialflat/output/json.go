package output

import (
	"encoding/json"

	"github.com/langcoglab/trialflat/pkg/trialflat/models"
)

// resultView is the JSON shape of a run: rendered rows plus warnings.
type resultView struct {
	Headers  []string              `json:"headers"`
	Rows     []map[string]interface{}      `json:"rows"`
	Samples  []models.SampleRecord `json:"samples,omitempty"`
	Warnings []models.Warning      `json:"warnings,omitempty"`
}

// ToJSON serializes a result. Rows are keyed by header; when verbose is set
// the per-field read outcomes are included as well.
func ToJSON(res *models.Result, pretty, verbose bool) ([]byte, error) {
	t := res.Table
	view := resultView{
		Headers:  t.Headers,
		Rows:     make([]map[string]interface{}, 0, len(t.Rows)),
		Warnings: res.Warnings,
	}
	for _, r := range t.Rows {
		row := make(map[string]interface{}, len(t.Headers))
		for _, h := range t.Headers {
			row[h] = t.Cell(r, h)
		}
		view.Rows = append(view.Rows, row)
	}
	if verbose {
		view.Samples = t.Rows
	}

	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}
