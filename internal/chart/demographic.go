// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

// IDDemographic is the region of the sex/dimension pie.
const IDDemographic = "pie-chart"

// Selections shown before the user touches the dropdowns.
const (
	DefaultSex       = cohort.SexMale
	DefaultDimension = DimensionCensor
)

func init() {
	Register(funcPanel{
		id:   IDDemographic,
		desc: "Distribution of one diagnostic dimension within one sex",
		build: func(t *cohort.Table) Figure {
			fig, _ := DemographicPie(t, DefaultSex, DefaultDimension)
			return fig
		},
	})
}

// DemographicPie counts the rows of one sex by the chosen dimension. Wedges
// follow the fixed category list for (dim, sex); categories with no rows keep
// their label with a zero value and unlisted values are not drawn.
func DemographicPie(t *cohort.Table, sex cohort.Sex, dim Dimension) (Figure, error) {
	cats, err := categoriesFor(dim, sex)
	if err != nil {
		return Figure{ID: IDDemographic}, err
	}

	rows := t.Filter(func(p cohort.Patient) bool { return p.Sex == sex })
	counts := cohort.CountBy(rows, func(p cohort.Patient) string {
		return normalize(cellValue(dim, p))
	})

	tr := Trace{
		Type:   TracePie,
		Labels: make([]string, len(cats)),
		Values: make([]float64, len(cats)),
	}
	for i, c := range cats {
		tr.Labels[i] = c.label
		tr.Values[i] = float64(counts[normalize(c.value)])
	}

	return Figure{
		ID:     IDDemographic,
		Traces: []Trace{tr},
		Layout: Layout{
			Title:  fmt.Sprintf("%s by %s", dim, sex),
			Legend: &Legend{TraceOrder: "normal"},
		},
	}, nil
}
