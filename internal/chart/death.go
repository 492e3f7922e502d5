// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"log/slog"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

// IDCauseOfDeath is the region of the cause-of-death bar chart.
const IDCauseOfDeath = "death-causation-graph"

func init() {
	Register(funcPanel{
		id:    IDCauseOfDeath,
		desc:  "Deceased patients counted by cause of death",
		build: CauseOfDeath,
	})
}

// CauseCount is one bar of the cause-of-death chart.
type CauseCount struct {
	Cause string
	Count int
}

// deathCorrection is a one-off adjustment to the published counts: with
// causes sorted by name, the third is reported as 9 and the fourth is
// removed. It is positional and applies to this cohort only.
var deathCorrection = struct {
	overrideIndex int
	overrideCount int
	dropIndex     int
}{overrideIndex: 2, overrideCount: 9, dropIndex: 3}

// CauseCounts counts deceased rows per recorded cause, sorted by cause, and
// applies the historical correction. Deceased rows without a cause are not
// counted.
func CauseCounts(t *cohort.Table) []CauseCount {
	dead := t.Filter(func(p cohort.Patient) bool { return p.IsDead() && p.CauseOfDeath != "" })
	counts := cohort.CountBy(dead, func(p cohort.Patient) string { return p.CauseOfDeath })

	causes := cohort.SortedKeys(counts)
	out := make([]CauseCount, 0, len(causes))
	for _, c := range causes {
		out = append(out, CauseCount{Cause: c, Count: counts[c]})
	}
	return correctCauses(out)
}

func correctCauses(in []CauseCount) []CauseCount {
	c := deathCorrection
	if len(in) <= c.dropIndex {
		if len(in) > 0 {
			slog.Warn("cause of death correction skipped", "categories", len(in))
		}
		return in
	}
	out := make([]CauseCount, 0, len(in)-1)
	for i, cc := range in {
		switch i {
		case c.dropIndex:
			continue
		case c.overrideIndex:
			cc.Count = c.overrideCount
		}
		out = append(out, cc)
	}
	return out
}

// CauseOfDeath draws the corrected cause counts as narrow vertical bars.
func CauseOfDeath(t *cohort.Table) Figure {
	tr := Trace{
		Type:        TraceBar,
		Orientation: Vertical,
		Color:       SeriesColor(0),
		Width:       0.4,
	}
	for _, cc := range CauseCounts(t) {
		tr.Labels = append(tr.Labels, cc.Cause)
		tr.Values = append(tr.Values, float64(cc.Count))
	}

	return Figure{
		ID:     IDCauseOfDeath,
		Traces: []Trace{tr},
		Layout: Layout{
			Title:  "Causation of Death",
			TitleX: 0.49,
			Height: 450,
			XAxis:  Axis{Title: cohort.ColCauseOfDeath},
			YAxis:  Axis{Title: "occurrence"},
		},
	}
}
