// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

func TestList_AllPanels(t *testing.T) {
	assert.ElementsMatch(t, []string{
		IDStageSurvival,
		IDSurvivalByAge,
		IDFollowUpBySite,
		IDCauseOfDeath,
		IDDemographic,
		IDAgeRT,
		IDConcurrentChemo,
		IDBMIDifference,
	}, List())
}

func TestList_ReturnsCopy(t *testing.T) {
	ids := List()
	ids[0] = "mutated"
	assert.NotEqual(t, "mutated", List()[0])
}

func TestRegister_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(funcPanel{id: IDDemographic})
	})
}

func TestGet(t *testing.T) {
	assert.Nil(t, Get("nonexistent"))

	tbl := loadSample(t)
	for _, id := range List() {
		p := Get(id)
		require.NotNil(t, p, id)
		assert.NotEmpty(t, p.Description())
		fig := p.Build(tbl)
		assert.Equal(t, id, fig.ID)
		assert.NotEmpty(t, fig.Layout.Title, id)
		assert.False(t, fig.Empty(), id)
	}
}

func TestBuild_EmptyTableNeverPanics(t *testing.T) {
	empty := cohort.NewTable(nil)
	for _, id := range List() {
		assert.NotPanics(t, func() { Get(id).Build(empty) }, id)
	}
}

func TestFigure_JSONShape(t *testing.T) {
	fig := FollowUpBySite(loadSample(t))
	data, err := json.Marshal(fig)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Contains(t, got, "data")
	assert.Contains(t, got, "layout")
	assert.Equal(t, IDFollowUpBySite, got["id"])
}

func TestFollowUpBySite_Means(t *testing.T) {
	fig := FollowUpBySite(loadSample(t))
	require.Len(t, fig.Traces, 1)
	tr := fig.Traces[0]
	assert.Equal(t, Horizontal, tr.Orientation)
	require.Len(t, tr.Labels, 7)
	assert.Equal(t, "CUP", tr.Labels[0])
	assert.InDelta(t, 900.0, tr.Values[0], 1e-9)
	assert.InDelta(t, 1005.0, tr.Values[1], 1e-9, "Glottis")
	assert.Equal(t, "Sinus", tr.Labels[6])
	assert.InDelta(t, 1800.0, tr.Values[6], 1e-9)
}

func TestConcurrentChemo_Counts(t *testing.T) {
	fig := ConcurrentChemo(loadSample(t))
	female := traceByName(t, fig, "Female")
	male := traceByName(t, fig, "Male")
	assert.Equal(t, []float64{2, 6}, female.Values)
	assert.Equal(t, []float64{6, 10}, male.Values)
	assert.Equal(t, []string{"No", "Yes"}, male.Labels)
}

func TestPalette(t *testing.T) {
	assert.Equal(t, "#dc143c", Hex(ColorCrimson))
	assert.Equal(t, "#87cefa", Hex(ColorLightSkyBlue))
	assert.Equal(t, "#636efa", Hex(SeriesColor(0)))
	assert.Equal(t, SeriesColor(0), SeriesColor(len(qualitative)))
}
