// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import "github.com/ingham-physics/hnviz/internal/cohort"

// scatterSpec describes a scatter colored by a categorical column.
type scatterSpec struct {
	color func(cohort.Patient) string
	x, y  func(cohort.Patient) float64
	size  func(cohort.Patient) float64 // optional
}

// defaultSizeMax is the marker diameter, in pixels, of the largest sized point.
const defaultSizeMax = 20

// scatterTraces emits one trace per color value in order of first appearance.
// Rows with a missing coordinate are skipped; a table with no plottable rows
// yields no traces.
func scatterTraces(t *cohort.Table, spec scatterSpec) []Trace {
	keys, groups := cohort.GroupOrdered(t, spec.color)

	traces := make([]Trace, 0, len(keys))
	for _, key := range keys {
		tr := Trace{
			Type:  TraceScatter,
			Name:  key,
			Color: SeriesColor(len(traces)),
		}
		for _, p := range groups[key] {
			x, y := spec.x(p), spec.y(p)
			if cohort.Missing(x) || cohort.Missing(y) {
				continue
			}
			if spec.size != nil {
				s := spec.size(p)
				if cohort.Missing(s) {
					continue
				}
				tr.Sizes = append(tr.Sizes, s)
			}
			tr.X = append(tr.X, x)
			tr.Y = append(tr.Y, y)
		}
		if len(tr.X) == 0 {
			continue
		}
		if spec.size != nil {
			tr.SizeMax = defaultSizeMax
		}
		traces = append(traces, tr)
	}
	return traces
}

func bySex(p cohort.Patient) string    { return string(p.Sex) }
func byStatus(p cohort.Patient) string { return string(p.Status) }
func age(p cohort.Patient) float64     { return p.Age }
