// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ingham-physics/hnviz/internal/callback"
	"github.com/ingham-physics/hnviz/internal/chart"
	"github.com/ingham-physics/hnviz/internal/cohort"
)

func TestMerge_CLIWins(t *testing.T) {
	file := &Config{DataPath: "file.csv", ListenAddr: ":1", DefaultSex: "Female"}
	got := Merge(file, Config{DataPath: "cli.csv"})

	assert.Equal(t, "cli.csv", got.DataPath)
	assert.Equal(t, ":1", got.ListenAddr)
	assert.Equal(t, "Female", got.DefaultSex)
}

func TestMerge_DebugIsSticky(t *testing.T) {
	assert.True(t, Merge(&Config{Debug: true}, Config{}).Debug)
	assert.True(t, Merge(&Config{}, Config{Debug: true}).Debug)
	assert.False(t, Merge(&Config{}, Config{}).Debug)
}

func TestMerge_Metrics(t *testing.T) {
	off, on := false, true
	assert.True(t, Config{}.MetricsEnabled())
	assert.False(t, Merge(&Config{Metrics: &off}, Config{}).MetricsEnabled())
	got := Merge(&Config{Metrics: &off}, Config{Metrics: &on})
	assert.True(t, got.MetricsEnabled())
}

func TestMerge_AgeSliderPerField(t *testing.T) {
	file := &Config{AgeSlider: &SliderConfig{Min: 30, Max: 80, Step: 1}}
	got := Merge(file, Config{AgeSlider: &SliderConfig{Max: 70}})

	assert.Equal(t, &SliderConfig{Min: 30, Max: 70, Step: 1}, got.AgeSlider)
	assert.Equal(t, 80.0, file.AgeSlider.Max, "file config must not be mutated")
}

func TestMerge_NilFile(t *testing.T) {
	cli := Config{DataPath: "x.csv"}
	assert.Equal(t, cli, Merge(nil, cli))
}

func TestOverlay(t *testing.T) {
	got := Overlay(&Config{DataPath: "a.csv", ListenAddr: ":1"}, &Config{ListenAddr: ":2"})
	assert.Equal(t, "a.csv", got.DataPath)
	assert.Equal(t, ":2", got.ListenAddr)

	assert.Equal(t, "a.csv", Overlay(&Config{DataPath: "a.csv"}, nil).DataPath)
}

func TestWithDefaults(t *testing.T) {
	got := Config{}.WithDefaults()
	assert.Equal(t, DefaultDataPath, got.DataPath)
	assert.Equal(t, DefaultListenAddr, got.ListenAddr)

	got = Config{DataPath: "x.csv"}.WithDefaults()
	assert.Equal(t, "x.csv", got.DataPath)
}

func TestSettings(t *testing.T) {
	assert.Equal(t, callback.DefaultSettings(), Config{}.Settings())

	s := Config{
		DefaultSex:       "Female",
		DefaultDimension: string(chart.DimensionStage),
		AgeSlider:        &SliderConfig{Max: 90},
	}.Settings()
	assert.Equal(t, cohort.SexFemale, s.DefaultSex)
	assert.Equal(t, chart.DimensionStage, s.DefaultDimension)
	assert.InDelta(t, 20, s.AgeMin, 1e-9)
	assert.InDelta(t, 90, s.AgeMax, 1e-9)
	assert.InDelta(t, 0.1, s.AgeStep, 1e-9)
}
