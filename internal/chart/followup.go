// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import "github.com/ingham-physics/hnviz/internal/cohort"

// IDFollowUpBySite is the region of the follow-up bar chart.
const IDFollowUpBySite = "average-follow-up-duration-by-site"

func init() {
	Register(funcPanel{
		id:    IDFollowUpBySite,
		desc:  "Mean follow-up duration in days per primary site",
		build: FollowUpBySite,
	})
}

// FollowUpBySite averages follow-up duration per site and draws one
// horizontal bar per site, sites in ascending order.
func FollowUpBySite(t *cohort.Table) Figure {
	means := cohort.MeanBy(t,
		func(p cohort.Patient) string { return p.Site },
		func(p cohort.Patient) float64 { return p.FollowUpDays },
	)

	tr := Trace{
		Type:        TraceBar,
		Orientation: Horizontal,
		Color:       SeriesColor(0),
	}
	for _, site := range cohort.SortedKeys(means) {
		tr.Labels = append(tr.Labels, site)
		tr.Values = append(tr.Values, means[site])
	}

	return Figure{
		ID:     IDFollowUpBySite,
		Traces: []Trace{tr},
		Layout: Layout{
			Title:  "Average Follow Up Duration By Site",
			TitleX: 0.5,
			XAxis:  Axis{Title: cohort.ColFollowUp},
			YAxis:  Axis{Title: cohort.ColSite},
		},
	}
}
