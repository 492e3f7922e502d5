// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import "github.com/ingham-physics/hnviz/internal/cohort"

// IDConcurrentChemo is the region of the chemoradiotherapy donuts.
const IDConcurrentChemo = "concurrent-gender"

func init() {
	Register(funcPanel{
		id:    IDConcurrentChemo,
		desc:  "Share of patients receiving concurrent chemoradiotherapy, per sex",
		build: ConcurrentChemo,
	})
}

type sexAnswer struct {
	sex    cohort.Sex
	answer cohort.Answer
}

// ConcurrentChemo counts rows per (sex, received) and draws a Female and a
// Male donut with No/Yes wedges.
func ConcurrentChemo(t *cohort.Table) Figure {
	counts := cohort.CountBy(t, func(p cohort.Patient) sexAnswer {
		return sexAnswer{p.Sex, p.ConcurrentChemo}
	})

	sexes := []cohort.Sex{cohort.SexFemale, cohort.SexMale}
	traces := make([]Trace, 0, len(sexes))
	for i, sex := range sexes {
		traces = append(traces, Trace{
			Type:   TracePie,
			Name:   string(sex),
			Title:  string(sex),
			Labels: []string{string(cohort.AnswerNo), string(cohort.AnswerYes)},
			Values: nonEmpty(
				float64(counts[sexAnswer{sex, cohort.AnswerNo}]),
				float64(counts[sexAnswer{sex, cohort.AnswerYes}]),
			),
			Colors:    []string{ColorCrimson, ColorLightSkyBlue},
			Hole:      0.4,
			HoverInfo: "label+percent+name",
			Domain:    columnDomain(i, len(sexes)),
		})
	}

	return Figure{
		ID:     IDConcurrentChemo,
		Traces: traces,
		Layout: Layout{
			Title:  "Received Concurrent Chemoradiotherapy ratio by Gender",
			TitleX: 0.49,
			Legend: topRightLegend(),
		},
	}
}
