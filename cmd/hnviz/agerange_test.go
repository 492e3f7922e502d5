// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

func TestAgeRangeValue_Set(t *testing.T) {
	var v ageRangeValue
	assert.Equal(t, "", v.String())
	_, ok := v.Range()
	assert.False(t, ok)

	require.NoError(t, v.Set(" 40 : 70.5"))
	r, ok := v.Range()
	assert.True(t, ok)
	assert.Equal(t, cohort.AgeRange{Low: 40, High: 70.5}, r)
	assert.Equal(t, "40:70.5", v.String())
	assert.Equal(t, "lo:hi", v.Type())
}

func TestAgeRangeValue_Invalid(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"40", "want lo:hi"},
		{"x:70", "low bound"},
		{"40:y", "high bound"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var v ageRangeValue
			assert.ErrorContains(t, v.Set(tt.in), tt.want)
		})
	}

	var v ageRangeValue
	assert.ErrorIs(t, v.Set("70:40"), cohort.ErrInvalidRange)
	_, ok := v.Range()
	assert.False(t, ok)
}
