// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package callback

import (
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"github.com/ingham-physics/hnviz/internal/chart"
	"github.com/ingham-physics/hnviz/internal/cohort"
)

// Control IDs as they appear on the page and in callback requests.
const (
	InputGender    = "gender"
	InputDimension = "survival"
	InputRTAge     = "range-slider"
	InputBMIAge    = "range-slider1"
)

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown is a single-select control.
type Dropdown struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Options []Option `json:"options"`
	Value   string   `json:"value"`
}

// Has reports whether v is one of the dropdown's option values.
func (d Dropdown) Has(v string) bool {
	return slices.ContainsFunc(d.Options, func(o Option) bool { return o.Value == v })
}

// Slider is a two-handle range control.
type Slider struct {
	ID    string     `json:"id"`
	Min   float64    `json:"min"`
	Max   float64    `json:"max"`
	Step  float64    `json:"step"`
	Marks []float64  `json:"marks"`
	Value [2]float64 `json:"value"`
}

// Settings are the configurable control defaults.
type Settings struct {
	DefaultSex       cohort.Sex
	DefaultDimension chart.Dimension
	AgeMin           float64
	AgeMax           float64
	AgeStep          float64
}

// DefaultSettings returns the stock control defaults.
func DefaultSettings() Settings {
	return Settings{
		DefaultSex:       chart.DefaultSex,
		DefaultDimension: chart.DefaultDimension,
		AgeMin:           20,
		AgeMax:           95,
		AgeStep:          0.1,
	}
}

// Controls is the full set of page controls.
type Controls struct {
	Gender    Dropdown `json:"gender"`
	Dimension Dropdown `json:"dimension"`
	RTAge     Slider   `json:"rt_age"`
	BMIAge    Slider   `json:"bmi_age"`
}

// NewControls derives the controls from the table and settings. The sex
// options are the sexes present in t, or all known sexes when t records
// none; a default sex absent from the options falls back to the first one.
func NewControls(t *cohort.Table, s Settings) Controls {
	sexes := t.Sexes()
	if len(sexes) == 0 {
		sexes = cohort.KnownSexes
	}
	gender := Dropdown{
		ID:    InputGender,
		Label: "Gender",
		Options: lo.Map(sexes, func(sx cohort.Sex, _ int) Option {
			return Option{Label: string(sx), Value: string(sx)}
		}),
		Value: string(s.DefaultSex),
	}
	if !gender.Has(gender.Value) && len(gender.Options) > 0 {
		slog.Warn("default sex not in dataset, using first option",
			"default", s.DefaultSex, "using", gender.Options[0].Value)
		gender.Value = gender.Options[0].Value
	}

	dim := Dropdown{
		ID:    InputDimension,
		Label: "Diagnostic dimension",
		Options: lo.Map(chart.Dimensions, func(d chart.Dimension, _ int) Option {
			return Option{Label: string(d), Value: string(d)}
		}),
		Value: string(s.DefaultDimension),
	}

	slider := func(id string) Slider {
		return Slider{
			ID:    id,
			Min:   s.AgeMin,
			Max:   s.AgeMax,
			Step:  s.AgeStep,
			Marks: []float64{s.AgeMin, s.AgeMax},
			Value: [2]float64{s.AgeMin, s.AgeMax},
		}
	}

	return Controls{
		Gender:    gender,
		Dimension: dim,
		RTAge:     slider(InputRTAge),
		BMIAge:    slider(InputBMIAge),
	}
}

// Inputs returns the controls' current values keyed by control ID, the
// payload the page sends on first load.
func (c Controls) Inputs() Inputs {
	return Inputs{
		InputGender:    c.Gender.Value,
		InputDimension: c.Dimension.Value,
		InputRTAge:     []float64{c.RTAge.Value[0], c.RTAge.Value[1]},
		InputBMIAge:    []float64{c.BMIAge.Value[0], c.BMIAge.Value[1]},
	}
}
