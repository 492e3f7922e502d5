// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package cohort

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// CountBy counts rows per key.
func CountBy[K comparable](t *Table, key func(Patient) K) map[K]int {
	if t == nil {
		return map[K]int{}
	}
	return lo.CountValuesBy(t.rows, key)
}

// MeanBy averages value per key, skipping missing values. Keys whose values
// are all missing are omitted.
func MeanBy[K comparable](t *Table, key func(Patient) K, value func(Patient) float64) map[K]float64 {
	out := make(map[K]float64)
	if t == nil {
		return out
	}
	for k, rows := range lo.GroupBy(t.rows, key) {
		vals := lo.FilterMap(rows, func(p Patient, _ int) (float64, bool) {
			v := value(p)
			return v, !Missing(v)
		})
		if len(vals) == 0 {
			continue
		}
		out[k] = lo.Sum(vals) / float64(len(vals))
	}
	return out
}

// GroupOrdered partitions rows by key, returning keys in order of first
// appearance alongside their rows.
func GroupOrdered[K comparable](t *Table, key func(Patient) K) ([]K, map[K][]Patient) {
	if t == nil {
		return nil, map[K][]Patient{}
	}
	keys := lo.Uniq(lo.Map(t.rows, func(p Patient, _ int) K { return key(p) }))
	return keys, lo.GroupBy(t.rows, key)
}

// SortedKeys returns the map keys in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
