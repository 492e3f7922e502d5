// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package callback

import (
	"fmt"

	"github.com/ingham-physics/hnviz/internal/chart"
	"github.com/ingham-physics/hnviz/internal/cohort"
)

// Dashboard returns a registry with the three dashboard bindings:
//
//	gender, survival -> pie-chart
//	range-slider     -> age-RT-distribution
//	range-slider1    -> bmi-difference
func Dashboard(t *cohort.Table, c Controls) (*Registry, error) {
	r := NewRegistry()
	bindings := []Binding{
		{
			Output:  chart.IDDemographic,
			Inputs:  []string{InputGender, InputDimension},
			Handler: demographicHandler(t, c.Gender),
		},
		{
			Output: chart.IDAgeRT,
			Inputs: []string{InputRTAge},
			Handler: sliderHandler(InputRTAge, func(ages cohort.AgeRange) chart.Figure {
				return chart.AgeRT(t, &ages)
			}),
		},
		{
			Output: chart.IDBMIDifference,
			Inputs: []string{InputBMIAge},
			Handler: sliderHandler(InputBMIAge, func(ages cohort.AgeRange) chart.Figure {
				return chart.BMIDifference(t, &ages)
			}),
		},
	}
	for _, b := range bindings {
		if err := r.Register(b); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func demographicHandler(t *cohort.Table, gender Dropdown) Handler {
	return func(in Inputs) (chart.Figure, error) {
		sex, err := in.String(InputGender)
		if err != nil {
			return chart.Figure{}, err
		}
		if !gender.Has(sex) && !cohort.Sex(sex).Known() {
			return chart.Figure{}, fmt.Errorf("%w: %s: unknown sex %q", ErrInvalidInput, InputGender, sex)
		}
		v, err := in.String(InputDimension)
		if err != nil {
			return chart.Figure{}, err
		}
		dim, err := chart.ParseDimension(v)
		if err != nil {
			return chart.Figure{}, fmt.Errorf("%w: %s: %w", ErrInvalidInput, InputDimension, err)
		}
		return chart.DemographicPie(t, cohort.Sex(sex), dim)
	}
}

func sliderHandler(id string, build func(cohort.AgeRange) chart.Figure) Handler {
	return func(in Inputs) (chart.Figure, error) {
		ages, err := in.Range(id)
		if err != nil {
			return chart.Figure{}, err
		}
		return build(ages), nil
	}
}

// Initial dispatches every binding with the controls' current values and
// returns the figures keyed by output, as the page shows them on first load.
func Initial(r *Registry, c Controls) (map[string]chart.Figure, error) {
	in := c.Inputs()
	out := make(map[string]chart.Figure)
	for _, o := range r.Outputs() {
		fig, err := r.Dispatch(o, in)
		if err != nil {
			return nil, fmt.Errorf("initial %s: %w", o, err)
		}
		out[o] = fig
	}
	return out, nil
}
