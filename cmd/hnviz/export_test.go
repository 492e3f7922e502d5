// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingham-physics/hnviz/internal/chart"
)

func readFigure(t *testing.T, path string) chart.Figure {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var fig chart.Figure
	require.NoError(t, json.Unmarshal(data, &fig))
	return fig
}

func TestExport_JSONWithSelection(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	out := filepath.Join(dir, "out")

	stdout, _, err := execute(t, "export", out,
		"--data", samplePath(t),
		"--format", "json",
		"--sex", "Female",
		"--age-range", "50:60",
	)
	require.NoError(t, err)

	for _, id := range chart.List() {
		assert.FileExists(t, filepath.Join(out, id+".json"))
		assert.Contains(t, stdout, id+".json")
	}
	assert.FileExists(t, filepath.Join(out, "index.html"))

	pie := readFigure(t, filepath.Join(out, chart.IDDemographic+".json"))
	require.Len(t, pie.Traces, 1)
	assert.Equal(t, []float64{5, 3}, pie.Traces[0].Values)

	rt := readFigure(t, filepath.Join(out, chart.IDAgeRT+".json"))
	assert.Equal(t, 7, rt.Points())

	html, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Regexp(t, `var staticPage =\s*true\s*;`, string(html))
}

func TestExport_PNGDefaultsNoHTML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, _, err := execute(t, "export", "--data", samplePath(t), "--no-html")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "export", chart.IDCauseOfDeath+".png"))
	assert.NoFileExists(t, filepath.Join(dir, "export", "index.html"))
}

func TestExport_CompactJSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	out := filepath.Join(dir, "out")

	_, _, err := execute(t, "export", out, "--data", samplePath(t), "--format", "json", "--compact", "--no-html")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, chart.IDCauseOfDeath+".json"))
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(data, []byte("\n")))
	assert.Equal(t, []float64{2, 4, 9, 1}, readFigure(t, filepath.Join(out, chart.IDCauseOfDeath+".json")).Traces[0].Values)

	_, _, err = execute(t, "export", out, "--data", samplePath(t), "--format", "json", "--no-html")
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(out, chart.IDCauseOfDeath+".json"))
	require.NoError(t, err)
	assert.Greater(t, bytes.Count(data, []byte("\n")), 1)
}

func TestExport_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := execute(t, "export", "--data", samplePath(t), "--format", "svg")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCodeOf(err))

	_, _, err = execute(t, "export", "--data", samplePath(t), "--age-range", "70:40")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age-range")

	_, _, err = execute(t, "export", "--data", samplePath(t), "--dimension", "Grade")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCodeOf(err))

	_, _, err = execute(t, "export", "--data", "missing.csv")
	assert.Equal(t, ExitDataLoad, exitCodeOf(err))
}
