// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	hnvizlog "github.com/ingham-physics/hnviz/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	dataPath   string
	configPath string
)

// rootCmd is the base command for hnviz.
var rootCmd = &cobra.Command{
	Use:   "hnviz",
	Short: "Head and neck cancer cohort dashboard",
	Long: `hnviz loads a head and neck cancer patient table and presents it as an
interactive single-page dashboard: survival by stage, age against survival,
follow-up by site, causes of death, a demographic breakdown, radiotherapy
time, chemoradiotherapy share and BMI change over treatment.

The same charts can be exported as JSON or PNG, summarized in the terminal,
or served to AI agents over the Model Context Protocol.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		hnvizlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to the cohort CSV (default \"data/hnscc.csv\")")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: .hnviz.yaml or .hnviz.toml in the working directory)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
