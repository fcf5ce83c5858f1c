package parser

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func openCSV(r io.Reader, name string) (Document, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return NewGrid(strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)), rows), nil
}

func openCSVFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return openCSV(f, path)
}
