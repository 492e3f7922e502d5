// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/ingham-physics/hnviz/internal/config"
	"github.com/ingham-physics/hnviz/internal/dashboard"
	hnvizlog "github.com/ingham-physics/hnviz/internal/log"
)

// Serve-specific flag values.
var (
	serveAddr    string
	serveDebug   bool
	serveMetrics bool
)

// serveCmd runs the interactive dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard",
	Long: `Load the cohort CSV once and serve the dashboard page. Changing the
gender or diagnostic dimension redraws the demographic pie; moving either age
slider redraws its scatter. Other panels are fixed for the life of the process.

Routes:
  GET  /                     dashboard page
  POST /_dash-update         recompute one bound chart
  GET  /_dash-layout         initial figures
  GET  /_dash-dependencies   control to chart bindings (?input=<id> for one control)
  GET  /healthz              liveness
  GET  /metrics              Prometheus metrics (unless --metrics=false)`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default \"127.0.0.1:8050\")")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "verbose logging and error details in callback responses")
	serveCmd.Flags().BoolVar(&serveMetrics, "metrics", true, "expose Prometheus metrics at /metrics")
}

// resetServeFlags resets serve command flags for testing.
func resetServeFlags() {
	serveAddr = ""
	serveDebug = false
	serveMetrics = true
	for _, name := range []string{"addr", "debug", "metrics"} {
		if f := serveCmd.Flags().Lookup(name); f != nil {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cli := config.Config{ListenAddr: serveAddr, Debug: serveDebug}
	if cmd.Flags().Changed("metrics") {
		cli.Metrics = &serveMetrics
	}
	cfg, err := resolveConfig(cli)
	if err != nil {
		return err
	}
	if cfg.Debug {
		hnvizlog.Setup(true, quiet)
	}

	srv, err := newServer(cfg)
	if err != nil {
		return err
	}
	if err := srv.Serve(cmd.Context()); err != nil {
		return exitError(ExitRuntime, "hnviz: serve failed (%v)", err)
	}
	return nil
}

// newServer loads the dataset and assembles the page and server for cfg.
func newServer(cfg config.Config) (*dashboard.Server, error) {
	t, err := loadTable(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	c, r, err := wire(t, cfg)
	if err != nil {
		return nil, err
	}
	page, err := dashboard.NewPage(t, c, r, dashboard.PageOptions{Debug: cfg.Debug})
	if err != nil {
		return nil, exitError(ExitRuntime, "hnviz: cannot build page (%v)", err)
	}
	return dashboard.NewServer(page, r, dashboard.Options{
		Addr:    cfg.ListenAddr,
		Debug:   cfg.Debug,
		Metrics: cfg.MetricsEnabled(),
	}), nil
}
