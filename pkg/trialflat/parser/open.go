package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat indicates a file extension no adapter handles.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Format identifies an input container.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatCSV  Format = "csv"
)

// DetectFormat picks the input format from a file name.
func DetectFormat(name string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// OpenFile opens a workbook from disk and binds it to sheet.
// An empty sheet selects the active (xlsx) or first (xls) sheet.
func OpenFile(path, sheet string) (Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatXLS:
		return openXLSFile(path, sheet)
	case FormatCSV:
		return openCSVFile(path)
	default:
		return openXLSXFile(path, sheet)
	}
}

// OpenReader decodes a workbook from r. name is only used to detect the format.
func OpenReader(r io.Reader, name, sheet string) (Document, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatXLS:
		rs, ok := r.(io.ReadSeeker)
		if !ok {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			rs = bytes.NewReader(data)
		}
		return openXLS(rs, sheet)
	case FormatCSV:
		return openCSV(r, name)
	default:
		return openXLSX(r, sheet)
	}
}
