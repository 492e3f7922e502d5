// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import "github.com/ingham-physics/hnviz/internal/cohort"

// IDStageSurvival is the region of the survival-by-stage donuts.
const IDStageSurvival = "stage-sur-graph"

func init() {
	Register(funcPanel{
		id:    IDStageSurvival,
		desc:  "Overall survival and death counts per disease stage",
		build: SurvivalByStage,
	})
}

// Wedge labels shared by the survival panels.
const (
	LabelSurvival = "survival"
	LabelDeath    = "death"
)

type stageCensor struct {
	stage  cohort.Stage
	censor cohort.Censor
}

// SurvivalByStage counts rows per (stage, censor) and draws one donut per
// stage in a single row. Stage I carries only a death wedge because the
// cohort records no Stage I survivors.
func SurvivalByStage(t *cohort.Table) Figure {
	counts := cohort.CountBy(t, func(p cohort.Patient) stageCensor {
		return stageCensor{p.Stage, p.SurvivalCensor}
	})

	traces := make([]Trace, 0, len(cohort.Stages))
	for i, stage := range cohort.Stages {
		death := float64(counts[stageCensor{stage, cohort.CensorDeath}])
		tr := Trace{
			Type:      TracePie,
			Name:      stage.Label(),
			Title:     stage.Label(),
			Hole:      0.4,
			HoverInfo: "label+percent+name",
			Domain:    columnDomain(i, len(cohort.Stages)),
		}
		if stage == cohort.StageI {
			tr.Labels = []string{LabelDeath}
			tr.Values = nonEmpty(death)
			tr.Colors = []string{ColorCrimson}
		} else {
			survival := float64(counts[stageCensor{stage, cohort.CensorSurvival}])
			tr.Labels = []string{LabelSurvival, LabelDeath}
			tr.Values = nonEmpty(survival, death)
			tr.Colors = []string{ColorLightSkyBlue, ColorCrimson}
		}
		traces = append(traces, tr)
	}

	return Figure{
		ID:     IDStageSurvival,
		Traces: traces,
		Layout: Layout{
			Title:  "Overall survival rate based on the Stage",
			TitleX: 0.49,
			Legend: topRightLegend(),
		},
	}
}

// nonEmpty returns values, or nil when every value is zero so the renderer
// draws an empty donut instead of a degenerate one.
func nonEmpty(values ...float64) []float64 {
	for _, v := range values {
		if v != 0 {
			return values
		}
	}
	return nil
}
