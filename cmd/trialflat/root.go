package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/langcoglab/trialflat/pkg/trialflat"
	"github.com/langcoglab/trialflat/pkg/trialflat/models"
)

// layoutFlags are the layout overrides shared by every subcommand.
type layoutFlags struct {
	path          string
	sheet         string
	subjectCell   string
	startSample   int
	endSample     int
	trialsPerSmpl int
	verbose       bool
}

func (lf *layoutFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&lf.path, "layout", "", "YAML layout file (default: built-in instrument layout)")
	flags.StringVar(&lf.sheet, "sheet", "", "Source sheet name (default: active sheet)")
	flags.StringVar(&lf.subjectCell, "subject-cell", "", "Cell holding \"Subject Number: <n>\"")
	flags.IntVar(&lf.startSample, "start-sample", 0, "First sample index")
	flags.IntVar(&lf.endSample, "end-sample", 0, "Last sample index (inclusive)")
	flags.IntVar(&lf.trialsPerSmpl, "trials-per-sample", 0, "Source rows per sample block")
	flags.BoolVarP(&lf.verbose, "verbose", "v", false, "Log per-field diagnostics")
}

// options resolves the layout file and flag overrides into transform options.
func (lf *layoutFlags) options(cmd *cobra.Command) (trialflat.Options, error) {
	if lf.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	opts := trialflat.DefaultOptions()
	if lf.path != "" {
		layout, err := trialflat.LoadLayout(lf.path)
		if err != nil {
			return opts, fmt.Errorf("load layout: %w", err)
		}
		opts.Layout = layout
	}

	flags := cmd.Flags()
	apply := func(name string, set func()) {
		if flags.Changed(name) {
			set()
		}
	}
	apply("sheet", func() { opts.Layout.Sheet = lf.sheet })
	apply("subject-cell", func() { opts.Layout.SubjectNumberCell = lf.subjectCell })
	apply("start-sample", func() { opts.Layout.StartSample = lf.startSample })
	apply("end-sample", func() { opts.Layout.EndSample = lf.endSample })
	apply("trials-per-sample", func() { opts.Layout.TrialsPerSample = lf.trialsPerSmpl })

	return opts, nil
}

func newRootCmd() *cobra.Command {
	lf := &layoutFlags{}

	rootCmd := &cobra.Command{
		Use:   "trialflat",
		Short: "Flatten instrument trial exports into one row per sample",
		Long: `trialflat reads the fixed-layout workbook exported by the testing
instrument and writes one row per sample with named columns.

The Choice, SameChoice, BeliefType and AgeGroup columns are left empty
and are filled in during analysis.`,
		SilenceUsage: true,
	}
	lf.register(rootCmd)

	rootCmd.AddCommand(
		newConvertCmd(lf),
		newServeCmd(lf),
		newLayoutCmd(lf),
	)
	return rootCmd
}

func newLayoutCmd(lf *layoutFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the effective layout as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := lf.options(cmd)
			if err != nil {
				return err
			}
			return trialflat.EncodeLayout(cmd.OutOrStdout(), opts.Layout)
		},
	}
}

func printWarnings(cmd *cobra.Command, warnings []models.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w.Message)
	}
}
