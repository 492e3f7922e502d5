// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ingham-physics/hnviz/internal/chart"
	"github.com/ingham-physics/hnviz/internal/config"
	"github.com/ingham-physics/hnviz/internal/dashboard"
	"github.com/ingham-physics/hnviz/internal/render"
)

// Export-specific flag values.
var (
	exportFormats   []string
	exportSex       string
	exportDimension string
	exportNoHTML    bool
	exportCompact   bool
	exportAgeRange  ageRangeValue
)

// exportCmd renders every panel to files.
var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export every chart and a static dashboard page",
	Long: `Render every dashboard panel to <dir>/<panel-id>.<ext> in each requested
format, and write <dir>/index.html, a self-contained copy of the dashboard with
the controls disabled. The demographic pie and the age-filtered scatters use
the given selection, or the configured defaults.

Examples:
  hnviz export out
  hnviz export out --format png --sex Female --dimension Stage
  hnviz export out --age-range 40:70
  hnviz export out --format json --compact`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringSliceVarP(&exportFormats, "format", "f", []string{"json", "png"},
		fmt.Sprintf("output formats (%s)", strings.Join(render.FormatNames(), ", ")))
	exportCmd.Flags().StringVar(&exportSex, "sex", "", "sex shown in the demographic pie")
	exportCmd.Flags().StringVar(&exportDimension, "dimension", "", "diagnostic dimension shown in the demographic pie")
	exportCmd.Flags().Var(&exportAgeRange, "age-range", "inclusive age band for both scatters, as lo:hi")
	exportCmd.Flags().BoolVar(&exportNoHTML, "no-html", false, "skip writing index.html")
	exportCmd.Flags().BoolVar(&exportCompact, "compact", false, "write JSON figures without indentation")
}

// resetExportFlags resets export command flags for testing.
func resetExportFlags() {
	exportFormats = []string{"json", "png"}
	exportSex = ""
	exportDimension = ""
	exportNoHTML = false
	exportCompact = false
	exportAgeRange.reset()
	exportCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
}

func runExport(cmd *cobra.Command, args []string) error {
	dir := "export"
	if len(args) > 0 {
		dir = args[0]
	}

	names := lo.Uniq(lo.Map(exportFormats, func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	}))
	formatters := make([]render.Formatter, 0, len(names))
	for _, name := range names {
		f, err := render.GetFormatter(name)
		if err != nil {
			return exitError(ExitInvalidArgs, "hnviz: %v", err)
		}
		if _, ok := f.(*render.JSONFormatter); ok && exportCompact {
			f = &render.JSONFormatter{Compact: true}
		}
		formatters = append(formatters, f)
	}

	cfg, err := resolveConfig(config.Config{DefaultSex: exportSex, DefaultDimension: exportDimension})
	if err != nil {
		return err
	}
	t, err := loadTable(cfg.DataPath)
	if err != nil {
		return err
	}
	c, r, err := wire(t, cfg)
	if err != nil {
		return err
	}
	if ages, ok := exportAgeRange.Range(); ok {
		c.RTAge.Value = [2]float64{ages.Low, ages.High}
		c.BMIAge.Value = [2]float64{ages.Low, ages.High}
	}

	page, err := dashboard.NewPage(t, c, r, dashboard.PageOptions{Static: true})
	if err != nil {
		return exitError(ExitRuntime, "hnviz: cannot build page (%v)", err)
	}

	figs := make([]chart.Figure, 0, len(page.Figures))
	for _, fig := range page.Figures {
		figs = append(figs, fig)
	}
	sort.Slice(figs, func(i, j int) bool { return figs[i].ID < figs[j].ID })

	paths, err := render.ExportAll(cmd.Context(), figs, dir, formatters...)
	if err != nil {
		return exitError(ExitRuntime, "hnviz: export failed (%v)", err)
	}

	if !exportNoHTML {
		index := filepath.Join(dir, "index.html")
		if err := os.WriteFile(index, page.HTML(), 0o644); err != nil { //nolint:gosec // exported page is meant to be shared
			return exitError(ExitRuntime, "hnviz: write %s (%v)", index, err)
		}
		paths = append(paths, index)
	}

	w := cmd.OutOrStdout()
	for _, p := range paths {
		_, _ = fmt.Fprintln(w, p)
	}
	return nil
}
