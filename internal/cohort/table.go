// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package cohort

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/samber/lo"
)

// ErrInvalidRange indicates an age range whose low bound exceeds its high bound.
var ErrInvalidRange = errors.New("invalid age range")

// Table is a read-only snapshot of patient rows. The zero value is an empty
// table. Methods never modify the receiver; filters return new tables.
type Table struct {
	rows []Patient
}

// NewTable copies rows into a new snapshot and fills in the derived
// BMI-difference column.
func NewTable(rows []Patient) *Table {
	out := make([]Patient, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].BMIDiff = out[i].BMIStart - out[i].BMIStop
	}
	return &Table{rows: out}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns a copy of row i.
func (t *Table) Row(i int) Patient { return t.rows[i] }

// Rows returns a copy of all rows.
func (t *Table) Rows() []Patient {
	if t == nil {
		return nil
	}
	return slices.Clone(t.rows)
}

// Filter returns a table holding the rows for which keep returns true.
func (t *Table) Filter(keep func(Patient) bool) *Table {
	if t == nil {
		return &Table{}
	}
	return &Table{rows: lo.Filter(t.rows, func(p Patient, _ int) bool { return keep(p) })}
}

// AgeRange is an inclusive age band selected with a range slider.
type AgeRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Validate returns ErrInvalidRange when the bounds are reversed or not numbers.
func (r AgeRange) Validate() error {
	if math.IsNaN(r.Low) || math.IsNaN(r.High) || r.Low > r.High {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, r.Low, r.High)
	}
	return nil
}

// Contains reports whether age lies within the band, bounds included.
func (r AgeRange) Contains(age float64) bool {
	return age >= r.Low && age <= r.High
}

// InAgeRange returns the rows whose age lies within r.
func (t *Table) InAgeRange(r AgeRange) *Table {
	return t.Filter(func(p Patient) bool { return r.Contains(p.Age) })
}

// Sexes returns the distinct sexes present, sorted.
func (t *Table) Sexes() []Sex {
	if t == nil {
		return nil
	}
	sexes := lo.Uniq(lo.FilterMap(t.rows, func(p Patient, _ int) (Sex, bool) {
		return p.Sex, p.Sex != ""
	}))
	slices.Sort(sexes)
	return sexes
}

// AgeBounds returns the minimum and maximum recorded age. ok is false when no
// row has an age.
func (t *Table) AgeBounds() (lowest, highest float64, ok bool) {
	for _, p := range t.Rows() {
		if Missing(p.Age) {
			continue
		}
		if !ok {
			lowest, highest, ok = p.Age, p.Age, true
			continue
		}
		lowest = math.Min(lowest, p.Age)
		highest = math.Max(highest, p.Age)
	}
	return lowest, highest, ok
}
