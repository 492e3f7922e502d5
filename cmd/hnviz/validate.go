// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ingham-physics/hnviz/internal/cohort"
	"github.com/ingham-physics/hnviz/internal/config"
)

// Validate-specific flag values.
var (
	validateStrict bool
)

// validateCmd checks the config and the dataset without serving anything.
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate the config and the cohort CSV",
	Long: `Validate the merged configuration and load the cohort CSV, reporting the
row count and every numeric column with blank cells.

Pass a file path as an argument, or use --data / data_path:
  hnviz validate data/hnscc.csv
  hnviz validate --strict

Exits 1 for an invalid config and 2 when the dataset cannot be loaded, or,
with --strict, when any numeric cell is blank.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "fail when any numeric cell is blank")
}

// resetValidateFlags resets validate command flags for testing.
func resetValidateFlags() {
	validateStrict = false
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(config.Config{})
	if err != nil {
		return err
	}
	path := cfg.DataPath
	if len(args) > 0 {
		path = args[0]
	}

	t, err := loadTable(path)
	if err != nil {
		return err
	}

	sum := t.Describe()
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "valid: %d rows in %s\n", sum.Rows, path)

	blank := 0
	for _, col := range []string{
		cohort.ColAge, cohort.ColFollowUp, cohort.ColSurvival,
		cohort.ColRTDays, cohort.ColBMIStart, cohort.ColBMIStop,
	} {
		if n := sum.Missing[col]; n > 0 {
			blank += n
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d blank cell(s) in %q\n", n, col)
		}
	}

	if validateStrict && blank > 0 {
		return exitError(ExitDataLoad, "hnviz: %d blank numeric cell(s) in %s", blank, path)
	}
	return nil
}
