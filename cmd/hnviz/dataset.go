// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/ingham-physics/hnviz/internal/callback"
	"github.com/ingham-physics/hnviz/internal/cohort"
	"github.com/ingham-physics/hnviz/internal/config"
)

// resolveConfig overlays the CLI values on the global and working-directory
// config files, validates the result and fills in the defaults.
func resolveConfig(cli config.Config) (config.Config, error) {
	cli.DataPath = dataPath
	fileCfg, err := config.Resolve(".", configPath)
	if err != nil {
		return config.Config{}, exitError(ExitInvalidArgs, "hnviz: cannot load config (%v)", err)
	}
	merged := config.Merge(fileCfg, cli)
	if err := config.Validate(&merged); err != nil {
		return config.Config{}, exitError(ExitInvalidArgs, "hnviz: %v", err)
	}
	return merged.WithDefaults(), nil
}

// loadTable reads the cohort CSV. Any failure maps to ExitDataLoad.
func loadTable(path string) (*cohort.Table, error) {
	t, err := cohort.Load(path)
	if err != nil {
		return nil, exitError(ExitDataLoad, "hnviz: cannot load dataset %q (%v)", path, err)
	}
	slog.Info("loaded dataset", "path", path, "rows", t.Len())
	return t, nil
}

// wire builds the controls and callback registry for t.
func wire(t *cohort.Table, cfg config.Config) (callback.Controls, *callback.Registry, error) {
	c := callback.NewControls(t, cfg.Settings())
	r, err := callback.Dashboard(t, c)
	if err != nil {
		return callback.Controls{}, nil, exitError(ExitRuntime, "hnviz: cannot wire callbacks (%v)", err)
	}
	return c, r, nil
}
