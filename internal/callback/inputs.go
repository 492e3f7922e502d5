// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package callback

import (
	"fmt"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

// Inputs maps control IDs to their current values as decoded from JSON:
// strings for dropdowns and two-element arrays for range sliders.
type Inputs map[string]any

// String returns the string value of control id.
func (in Inputs) String(id string) (string, error) {
	v, ok := in[id]
	if !ok {
		return "", fmt.Errorf("%w: %s: missing value", ErrInvalidInput, id)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s: want string, got %T", ErrInvalidInput, id, v)
	}
	return s, nil
}

// Range returns the [low, high] value of slider id as a validated age range.
func (in Inputs) Range(id string) (cohort.AgeRange, error) {
	v, ok := in[id]
	if !ok {
		return cohort.AgeRange{}, fmt.Errorf("%w: %s: missing value", ErrInvalidInput, id)
	}

	var pair []float64
	switch t := v.(type) {
	case [2]float64:
		pair = t[:]
	case []float64:
		pair = t
	case cohort.AgeRange:
		pair = []float64{t.Low, t.High}
	case []any:
		for _, e := range t {
			f, ok := toFloat(e)
			if !ok {
				return cohort.AgeRange{}, fmt.Errorf("%w: %s: non-numeric bound %v", ErrInvalidInput, id, e)
			}
			pair = append(pair, f)
		}
	default:
		return cohort.AgeRange{}, fmt.Errorf("%w: %s: want [low, high], got %T", ErrInvalidInput, id, v)
	}
	if len(pair) != 2 {
		return cohort.AgeRange{}, fmt.Errorf("%w: %s: want 2 bounds, got %d", ErrInvalidInput, id, len(pair))
	}

	r := cohort.AgeRange{Low: pair[0], High: pair[1]}
	if err := r.Validate(); err != nil {
		return cohort.AgeRange{}, fmt.Errorf("%w: %s: %w", ErrInvalidInput, id, err)
	}
	return r, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
