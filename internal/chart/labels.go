// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

// ErrUnknownDimension indicates a diagnostic dimension outside Dimensions.
var ErrUnknownDimension = errors.New("unknown diagnostic dimension")

// Dimension is a diagnostic attribute selectable in the demographic panel.
type Dimension string

// Selectable dimensions, in dropdown order.
const (
	DimensionCensor     Dimension = "Overall Survival Censor"
	DimensionStage      Dimension = "Stage"
	DimensionSite       Dimension = "Site of diagnosis"
	DimensionRecurrence Dimension = "Site of recurrence"
)

// Dimensions lists the dropdown options in display order.
var Dimensions = []Dimension{DimensionCensor, DimensionStage, DimensionSite, DimensionRecurrence}

// ParseDimension returns the matching Dimension or ErrUnknownDimension.
func ParseDimension(v string) (Dimension, error) {
	for _, d := range Dimensions {
		if string(d) == v {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDimension, v)
}

// category pairs a recorded cell value with its wedge label.
type category struct {
	value string
	label string
}

func same(values ...string) []category {
	out := make([]category, len(values))
	for i, v := range values {
		out[i] = category{value: v, label: v}
	}
	return out
}

type labelKey struct {
	dim Dimension
	sex cohort.Sex
}

var (
	censorCategories = []category{
		{value: "0", label: LabelSurvival},
		{value: "1", label: LabelDeath},
	}
	stageCategories = func() []category {
		out := make([]category, len(cohort.Stages))
		for i, s := range cohort.Stages {
			out[i] = category{value: string(s), label: s.Label()}
		}
		return out
	}()

	femaleSites = same("Glottis", "Hypopharynx", "Nasopharynx", "Oral cavity", "Oropharynx")
	maleSites   = same("CUP", "Glottis", "Hypopharynx", "Nasopharynx", "Oral cavity", "Oropharynx", "Sinus")

	femaleRecurrence = same(
		"Complete response",
		"Distant metastasis",
		"Local recurrence",
		"Regional recurrence",
		"Residual tumor",
	)
	maleRecurrence = same(
		"Complete response",
		"Distant metastasis",
		"Local recurrence",
		"Local recurrence and distant metastasis",
		"Locoregional and distant metastasis",
		"Locoregional recurrence",
		"Regional and distant metastasis",
		"Regional recurrence",
		"Regional recurrence and distant metastasis",
		"Residual tumor",
	)
)

// labelTable fixes the wedge categories per (dimension, sex). The two sexes
// were recorded with different site and recurrence category sets.
var labelTable = map[labelKey][]category{
	{DimensionCensor, cohort.SexFemale}:     censorCategories,
	{DimensionCensor, cohort.SexMale}:       censorCategories,
	{DimensionStage, cohort.SexFemale}:      stageCategories,
	{DimensionStage, cohort.SexMale}:        stageCategories,
	{DimensionSite, cohort.SexFemale}:       femaleSites,
	{DimensionSite, cohort.SexMale}:         maleSites,
	{DimensionRecurrence, cohort.SexFemale}: femaleRecurrence,
	{DimensionRecurrence, cohort.SexMale}:   maleRecurrence,
}

// categoriesFor returns the fixed categories for (dim, sex). Sexes without an
// entry fall back to the male set, which is the superset.
func categoriesFor(dim Dimension, sex cohort.Sex) ([]category, error) {
	if cats, ok := labelTable[labelKey{dim, sex}]; ok {
		return cats, nil
	}
	if cats, ok := labelTable[labelKey{dim, cohort.SexMale}]; ok {
		return cats, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
}

// Labels returns the wedge labels for (dim, sex) in display order.
func Labels(dim Dimension, sex cohort.Sex) ([]string, error) {
	cats, err := categoriesFor(dim, sex)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.label
	}
	return out, nil
}

// cellValue returns the recorded value of dim for p.
func cellValue(dim Dimension, p cohort.Patient) string {
	switch dim {
	case DimensionCensor:
		if p.SurvivalCensor == cohort.CensorUnknown {
			return ""
		}
		return strconv.Itoa(int(p.SurvivalCensor))
	case DimensionStage:
		return string(p.Stage)
	case DimensionSite:
		return p.Site
	case DimensionRecurrence:
		return p.Recurrence
	default:
		return ""
	}
}

// normalize folds case and whitespace so cell values match category values.
func normalize(v string) string {
	return strings.ToLower(strings.Join(strings.Fields(v), " "))
}
