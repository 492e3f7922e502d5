// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import "github.com/ingham-physics/hnviz/internal/cohort"

// IDSurvivalByAge is the region of the age/survival scatter.
const IDSurvivalByAge = "age-by-cancer-grade"

func init() {
	Register(funcPanel{
		id:    IDSurvivalByAge,
		desc:  "Survival in months against age, colored by vital status",
		build: SurvivalByAge,
	})
}

// SurvivalByAge plots age against survival months with one trace per vital
// status.
func SurvivalByAge(t *cohort.Table) Figure {
	return Figure{
		ID: IDSurvivalByAge,
		Traces: scatterTraces(t, scatterSpec{
			color: byStatus,
			x:     age,
			y:     func(p cohort.Patient) float64 { return p.SurvivalMonths },
		}),
		Layout: Layout{
			Title:  "Survival of months by Age of Patient",
			TitleX: 0.5,
			XAxis:  Axis{Title: cohort.ColAge},
			YAxis:  Axis{Title: cohort.ColSurvival},
		},
	}
}
