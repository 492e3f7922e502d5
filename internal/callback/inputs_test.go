// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

func TestInputs_String(t *testing.T) {
	in := Inputs{"gender": "Female", "n": 3.0}

	s, err := in.String("gender")
	require.NoError(t, err)
	assert.Equal(t, "Female", s)

	_, err = in.String("n")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = in.String("missing")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInputs_Range(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    cohort.AgeRange
		wantErr bool
	}{
		{name: "json array", value: []any{20.0, 95.0}, want: cohort.AgeRange{Low: 20, High: 95}},
		{name: "json ints", value: []any{30, 40}, want: cohort.AgeRange{Low: 30, High: 40}},
		{name: "float slice", value: []float64{50.5, 60}, want: cohort.AgeRange{Low: 50.5, High: 60}},
		{name: "array", value: [2]float64{1, 2}, want: cohort.AgeRange{Low: 1, High: 2}},
		{name: "degenerate band", value: []any{55.0, 55.0}, want: cohort.AgeRange{Low: 55, High: 55}},
		{name: "reversed", value: []any{95.0, 20.0}, wantErr: true},
		{name: "one bound", value: []any{20.0}, wantErr: true},
		{name: "three bounds", value: []float64{1, 2, 3}, wantErr: true},
		{name: "string bound", value: []any{"20", 95.0}, wantErr: true},
		{name: "scalar", value: 20.0, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Inputs{"s": tc.value}.Range("s")
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInputs_RangeReversedWrapsCohortError(t *testing.T) {
	_, err := Inputs{"s": []float64{9, 1}}.Range("s")
	assert.ErrorIs(t, err, cohort.ErrInvalidRange)
}
