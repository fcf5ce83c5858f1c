package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/langcoglab/trialflat/pkg/trialflat"
	"github.com/langcoglab/trialflat/pkg/trialflat/models"
	"github.com/langcoglab/trialflat/pkg/trialflat/output"
)

type convertFlags struct {
	outputPath string
	format     string
	pretty     bool
	details    bool
}

func newConvertCmd(lf *layoutFlags) *cobra.Command {
	cf := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [input.xlsx]",
		Short: "Convert an instrument export",
		Long: `Convert reads a .xlsx, .xls or .csv export and writes the flattened
table. The output format follows --format, or the extension of --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := lf.options(cmd)
			if err != nil {
				return err
			}
			return runConvert(cmd, args[0], cf, opts)
		},
	}

	cmd.Flags().StringVarP(&cf.outputPath, "output", "o", "", "Output file path, \"-\" for stdout (default: layout output filename)")
	cmd.Flags().StringVar(&cf.format, "format", "", "Output format: xlsx, csv, json (default: from output extension)")
	cmd.Flags().BoolVar(&cf.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&cf.details, "details", false, "Include per-field read outcomes in JSON output")
	return cmd
}

func runConvert(cmd *cobra.Command, inputPath string, cf *convertFlags, opts trialflat.Options) error {
	outputPath := cf.outputPath
	if outputPath == "" {
		outputPath = filepath.Join(filepath.Dir(inputPath), opts.Layout.OutputFilename)
	}

	format, err := resolveFormat(cf.format, outputPath)
	if err != nil {
		return err
	}

	res, err := trialflat.TransformFile(cmd.Context(), inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	printWarnings(cmd, res.Warnings)

	if outputPath == "-" {
		return writeResult(cmd.OutOrStdout(), format, res, cf)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := writeResult(f, format, res, cf); err != nil {
		f.Close()
		os.Remove(outputPath)
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d samples to %s\n", len(res.Table.Rows), outputPath)
	return nil
}

func resolveFormat(flag, outputPath string) (string, error) {
	format := strings.ToLower(flag)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
		if format == "" {
			format = "xlsx"
		}
	}
	switch format {
	case "xlsx", "csv", "json":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be xlsx, csv, or json)", format)
	}
}

func writeResult(w io.Writer, format string, res *models.Result, cf *convertFlags) error {
	switch format {
	case "csv":
		return output.WriteCSV(w, res.Table)
	case "json":
		data, err := output.ToJSON(res, cf.pretty, cf.details)
		if err != nil {
			return err
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	default:
		return output.WriteXLSX(w, res.Table)
	}
}
