// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

func TestSurvivalByStage_OneDonutPerStage(t *testing.T) {
	fig := SurvivalByStage(loadSample(t))

	require.Len(t, fig.Traces, len(cohort.Stages))
	for i, stage := range cohort.Stages {
		tr := fig.Traces[i]
		assert.Equal(t, TracePie, tr.Type)
		assert.Equal(t, stage.Label(), tr.Name)
		assert.InDelta(t, 0.4, tr.Hole, 1e-12)
		require.NotNil(t, tr.Domain)
		assert.Less(t, tr.Domain.X[0], tr.Domain.X[1])
	}
	assert.Equal(t, "Overall survival rate based on the Stage", fig.Layout.Title)
}

func TestSurvivalByStage_Counts(t *testing.T) {
	fig := SurvivalByStage(loadSample(t))

	stageI := traceByName(t, fig, "Stage I")
	assert.Equal(t, []string{LabelDeath}, stageI.Labels)
	assert.Equal(t, []float64{2}, stageI.Values)
	assert.Equal(t, []string{ColorCrimson}, stageI.Colors)

	tests := []struct {
		name            string
		survival, death float64
	}{
		{"Stage II", 3, 2},
		{"Stage III", 5, 1},
		{"Stage IVA", 3, 3},
		{"Stage IVB", 2, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := traceByName(t, fig, tc.name)
			assert.Equal(t, []string{LabelSurvival, LabelDeath}, tr.Labels)
			assert.Equal(t, []float64{tc.survival, tc.death}, tr.Values)
			assert.Equal(t, []string{ColorLightSkyBlue, ColorCrimson}, tr.Colors)
		})
	}
}

func TestSurvivalByStage_DomainsTileRow(t *testing.T) {
	fig := SurvivalByStage(loadSample(t))
	assert.InDelta(t, 0.0, fig.Traces[0].Domain.X[0], 1e-12)
	assert.InDelta(t, 1.0, fig.Traces[len(fig.Traces)-1].Domain.X[1], 1e-12)
	for i := 1; i < len(fig.Traces); i++ {
		assert.InDelta(t, fig.Traces[i-1].Domain.X[1], fig.Traces[i].Domain.X[0], 1e-12)
	}
}

func TestSurvivalByStage_EmptyTable(t *testing.T) {
	fig := SurvivalByStage(cohort.NewTable(nil))
	assert.Len(t, fig.Traces, len(cohort.Stages))
	assert.True(t, fig.Empty())
}
