package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/langcoglab/trialflat/pkg/trialflat/models"
)

// WriteCSV writes the header row followed by one line per record.
func WriteCSV(w io.Writer, t models.Table) error {
	cw := csv.NewWriter(w)
	for _, rec := range t.Records() {
		line := make([]string, len(rec))
		for i, v := range rec {
			if v != nil {
				line[i] = fmt.Sprint(v)
			}
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
