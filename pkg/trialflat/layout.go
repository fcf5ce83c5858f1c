package trialflat

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/langcoglab/trialflat/pkg/trialflat/models"
)

// LoadLayout reads a YAML layout. Keys missing from the document keep
// their default values.
func LoadLayout(path string) (models.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Layout{}, err
	}
	defer f.Close()

	return DecodeLayout(f)
}

// DecodeLayout decodes a YAML layout over the default layout.
func DecodeLayout(r io.Reader) (models.Layout, error) {
	layout := models.DefaultLayout()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil && err != io.EOF {
		return models.Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	return layout, nil
}

// EncodeLayout writes the layout as YAML.
func EncodeLayout(w io.Writer, layout models.Layout) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(layout); err != nil {
		return err
	}
	return enc.Close()
}
