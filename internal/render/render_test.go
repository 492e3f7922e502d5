// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingham-physics/hnviz/internal/chart"
	"github.com/ingham-physics/hnviz/internal/cohort"
)

func sampleFigures(t *testing.T) []chart.Figure {
	t.Helper()
	tbl, err := cohort.Load("../cohort/testdata/hnscc_sample.csv")
	require.NoError(t, err)
	var figs []chart.Figure
	for _, id := range chart.List() {
		figs = append(figs, chart.Get(id).Build(tbl))
	}
	return figs
}

func TestGetFormatter(t *testing.T) {
	for _, name := range []string{"json", "png"} {
		f, err := GetFormatter(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.Name())
	}
	_, err := GetFormatter("svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json, png")
	assert.Equal(t, []string{"json", "png"}, FormatNames())
}

func TestJSONFormatter(t *testing.T) {
	fig := sampleFigures(t)[0]

	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(fig, &buf))
	assert.Contains(t, buf.String(), "\n  ")

	var got chart.Figure
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, fig.ID, got.ID)
	assert.Len(t, got.Traces, len(fig.Traces))

	buf.Reset()
	require.NoError(t, (&JSONFormatter{Compact: true}).Format(fig, &buf))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestPNGFormatter_EveryPanel(t *testing.T) {
	f := NewPNGFormatter()
	for _, fig := range sampleFigures(t) {
		t.Run(fig.ID, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, f.Format(fig, &buf))

			cfg, err := png.DecodeConfig(&buf)
			require.NoError(t, err)
			assert.Equal(t, DefaultWidth, cfg.Width)
			want := DefaultHeight
			if fig.Layout.Height > 0 {
				want = fig.Layout.Height
			}
			assert.Equal(t, want, cfg.Height)
		})
	}
}

func TestPNGFormatter_EmptyFigure(t *testing.T) {
	f := &PNGFormatter{Width: 200, Height: 100}
	img := f.Image(chart.SurvivalByStage(cohort.NewTable(nil)))
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestPNGFormatter_SinglePoint(t *testing.T) {
	tbl := cohort.NewTable([]cohort.Patient{{Sex: cohort.SexMale, Age: 50, RTDays: 40}})
	img := NewPNGFormatter().Image(chart.AgeRT(tbl, &cohort.AgeRange{Low: 20, High: 95}))
	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
}

func TestDotWidths(t *testing.T) {
	p := dotWidths([]float64{100, 25}, 100, 20)
	assert.InDelta(t, 10.0, p(nil, nil, 0, 0, 0), 1e-9)
	assert.InDelta(t, 5.0, p(nil, nil, 1, 0, 0), 1e-9)
	assert.InDelta(t, 4.0, p(nil, nil, 7, 0, 0), 1e-9)
}

func TestPow10Formatter(t *testing.T) {
	assert.Equal(t, "100", pow10Formatter(2.0))
	assert.Empty(t, pow10Formatter("x"))
}

func TestBounds_Padded(t *testing.T) {
	b := newBounds()
	assert.True(t, b.empty())
	b.add(5)
	r := b.padded()
	assert.InDelta(t, 4.0, r.Min, 1e-12)
	assert.InDelta(t, 6.0, r.Max, 1e-12)
}

func TestExportAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	figs := sampleFigures(t)

	paths, err := ExportAll(context.Background(), figs, dir, NewJSONFormatter(), NewPNGFormatter())
	require.NoError(t, err)
	assert.Len(t, paths, 2*len(figs))
	assert.IsNonDecreasing(t, paths)

	for _, fig := range figs {
		for _, ext := range []string{"json", "png"} {
			info, err := os.Stat(filepath.Join(dir, fig.ID+"."+ext))
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		}
	}
}

func TestExportAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ExportAll(ctx, sampleFigures(t), t.TempDir(), NewJSONFormatter())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportAll_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err := ExportAll(context.Background(), nil, filepath.Join(file, "sub"), NewJSONFormatter())
	assert.Error(t, err)
}
