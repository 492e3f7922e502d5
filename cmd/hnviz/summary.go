// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ingham-physics/hnviz/internal/config"
	"github.com/ingham-physics/hnviz/internal/report"
)

// Summary-specific flag values.
var (
	summaryFormat   string
	summarySections string
	summaryOutput   string
)

// summaryCmd prints the cohort tables behind the charts.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a cohort summary in the terminal",
	Long: `Summarize the cohort as terminal tables: size and completeness, survival
by stage, primary sites, causes of death and treatment. Counts match the
dashboard charts, including the published cause-of-death correction.

Sections: ` + strings.Join(report.List(), ", "),
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryFormat, "format", "f", "text", "output format: text or json")
	summaryCmd.Flags().StringVar(&summarySections, "sections", "", "comma-separated list of sections to include")
	summaryCmd.Flags().StringVarP(&summaryOutput, "output", "o", "", "output file path (default: stdout)")
}

// resetSummaryFlags resets summary command flags for testing.
func resetSummaryFlags() {
	summaryFormat = "text"
	summarySections = ""
	summaryOutput = ""
}

func runSummary(cmd *cobra.Command, _ []string) error {
	if summaryFormat != "text" && summaryFormat != "json" {
		return exitError(ExitInvalidArgs, "hnviz: unsupported format %q (must be text or json)", summaryFormat)
	}

	var sections []string
	if summarySections != "" {
		for _, s := range strings.Split(summarySections, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if report.Get(s) == nil {
				return exitError(ExitInvalidArgs, "hnviz: unknown section %q (available: %s)",
					s, strings.Join(report.List(), ", "))
			}
			sections = append(sections, s)
		}
	}

	cfg, err := resolveConfig(config.Config{})
	if err != nil {
		return err
	}
	t, err := loadTable(cfg.DataPath)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if summaryOutput != "" {
		f, err := os.Create(summaryOutput) //nolint:gosec // user-provided output path
		if err != nil {
			return exitError(ExitRuntime, "hnviz: cannot create %q (%v)", summaryOutput, err)
		}
		defer f.Close() //nolint:errcheck // best-effort close; write errors surface below
		w = f
	}

	if summaryFormat == "json" {
		err = report.RenderJSON(t, cfg.DataPath, sections, w)
	} else {
		err = report.RenderText(t, sections, w)
	}
	if err != nil {
		return exitError(ExitRuntime, "hnviz: summary failed (%v)", err)
	}
	if summaryOutput != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "summary written to %s\n", summaryOutput)
	}
	return nil
}
