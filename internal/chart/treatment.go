// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import "github.com/ingham-physics/hnviz/internal/cohort"

// Regions of the two age-filtered scatters.
const (
	IDAgeRT         = "age-RT-distribution"
	IDBMIDifference = "bmi-difference"
)

func init() {
	Register(funcPanel{
		id:    IDAgeRT,
		desc:  "Total radiotherapy treatment time against age, colored by sex",
		build: func(t *cohort.Table) Figure { return AgeRT(t, nil) },
	})
	Register(funcPanel{
		id:    IDBMIDifference,
		desc:  "BMI change over treatment against age, colored by sex",
		build: func(t *cohort.Table) Figure { return BMIDifference(t, nil) },
	})
}

// AgeRT plots age (log axis) against total RT treatment time, one trace per
// sex. With a non-nil age range the rows are restricted to that band and the
// marker size also encodes treatment time.
func AgeRT(t *cohort.Table, ages *cohort.AgeRange) Figure {
	spec := scatterSpec{
		color: bySex,
		x:     age,
		y:     func(p cohort.Patient) float64 { return p.RTDays },
	}
	if ages != nil {
		t = t.InAgeRange(*ages)
		spec.size = spec.y
	}
	return Figure{
		ID:     IDAgeRT,
		Traces: scatterTraces(t, spec),
		Layout: Layout{
			Title:  "Age Distribution of Total RT treatment time (days)",
			TitleX: 0.5,
			XAxis:  Axis{Title: cohort.ColAge, Log: true},
			YAxis:  Axis{Title: cohort.ColRTDays},
		},
	}
}

// BMIDifference plots age (log axis) against the BMI change over treatment,
// one trace per sex, optionally restricted to an age band.
func BMIDifference(t *cohort.Table, ages *cohort.AgeRange) Figure {
	if ages != nil {
		t = t.InAgeRange(*ages)
	}
	return Figure{
		ID: IDBMIDifference,
		Traces: scatterTraces(t, scatterSpec{
			color: bySex,
			x:     age,
			y:     func(p cohort.Patient) float64 { return p.BMIDiff },
		}),
		Layout: Layout{
			Title:  "The difference in BMI before and after treatment (>0 means an increase in BMI)",
			TitleX: 0.5,
			XAxis:  Axis{Title: cohort.ColAge, Log: true},
			YAxis:  Axis{Title: "difference"},
		},
	}
}
