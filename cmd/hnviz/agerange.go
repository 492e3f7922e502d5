// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

// ageRangeValue is a pflag.Value for "lo:hi" inclusive age bands.
type ageRangeValue struct {
	r   cohort.AgeRange
	set bool
}

var _ pflag.Value = (*ageRangeValue)(nil)

func (v *ageRangeValue) String() string {
	if !v.set {
		return ""
	}
	return strconv.FormatFloat(v.r.Low, 'g', -1, 64) + ":" + strconv.FormatFloat(v.r.High, 'g', -1, 64)
}

func (v *ageRangeValue) Set(s string) error {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("want lo:hi, got %q", s)
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return fmt.Errorf("low bound: %w", err)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return fmt.Errorf("high bound: %w", err)
	}
	r := cohort.AgeRange{Low: low, High: high}
	if err := r.Validate(); err != nil {
		return err
	}
	v.r, v.set = r, true
	return nil
}

func (v *ageRangeValue) Type() string { return "lo:hi" }

// Range returns the parsed band and whether the flag was given.
func (v *ageRangeValue) Range() (cohort.AgeRange, bool) { return v.r, v.set }

func (v *ageRangeValue) reset() { *v = ageRangeValue{} }
