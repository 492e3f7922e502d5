// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingham-physics/hnviz/internal/config"
)

func TestNewServer_ServesDashboard(t *testing.T) {
	cfg := config.Config{DataPath: samplePath(t)}.WithDefaults()
	srv, err := newServer(cfg)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	for _, path := range []string{"/", "/healthz", "/_dash-layout", "/_dash-dependencies", "/metrics"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err, path)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestNewServer_MetricsDisabled(t *testing.T) {
	off := false
	cfg := config.Config{DataPath: samplePath(t), Metrics: &off}.WithDefaults()
	srv, err := newServer(cfg)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServe_StartupFailures(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := execute(t, "serve", "--data", "missing.csv")
	require.Error(t, err)
	assert.Equal(t, ExitDataLoad, exitCodeOf(err))

	_, _, err = execute(t, "serve", "--data", samplePath(t), "--addr", "no-port")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCodeOf(err))
	assert.Contains(t, err.Error(), "listen_addr")
}

func TestServe_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeTestFile(t, dir, config.FileName, "listen_addr: 127.0.0.1:9999\nmetrics: false\n")

	resetAllFlags()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, serveCmd.ParseFlags([]string{"--addr", "127.0.0.1:7000", "--metrics"}))

	cli := config.Config{ListenAddr: serveAddr}
	if serveCmd.Flags().Changed("metrics") {
		cli.Metrics = &serveMetrics
	}
	cfg, err := resolveConfig(cli)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.ListenAddr)
	assert.True(t, cfg.MetricsEnabled())
	assert.Equal(t, config.DefaultDataPath, cfg.DataPath)
}
