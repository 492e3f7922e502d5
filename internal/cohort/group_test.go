// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package cohort

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountBy_Sex(t *testing.T) {
	tbl := loadSample(t)
	counts := CountBy(tbl, func(p Patient) Sex { return p.Sex })
	assert.Equal(t, map[Sex]int{SexFemale: 8, SexMale: 16}, counts)
}

func TestCountBy_CompositeKey(t *testing.T) {
	type key struct {
		stage  Stage
		censor Censor
	}
	tbl := loadSample(t)
	counts := CountBy(tbl, func(p Patient) key { return key{p.Stage, p.SurvivalCensor} })

	assert.Equal(t, 2, counts[key{StageI, CensorDeath}])
	assert.Equal(t, 0, counts[key{StageI, CensorSurvival}])
	assert.Equal(t, 5, counts[key{StageIII, CensorSurvival}])
	assert.Equal(t, 3, counts[key{StageIVB, CensorDeath}])
}

func TestMeanBy_SkipsMissing(t *testing.T) {
	tbl := NewTable([]Patient{
		{Site: "A", FollowUpDays: 10},
		{Site: "A", FollowUpDays: math.NaN()},
		{Site: "A", FollowUpDays: 20},
		{Site: "B", FollowUpDays: math.NaN()},
	})
	means := MeanBy(tbl, func(p Patient) string { return p.Site }, func(p Patient) float64 { return p.FollowUpDays })
	assert.Equal(t, map[string]float64{"A": 15}, means)
}

func TestMeanBy_Sample(t *testing.T) {
	tbl := loadSample(t)
	means := MeanBy(tbl, func(p Patient) string { return p.Site }, func(p Patient) float64 { return p.FollowUpDays })
	assert.InDelta(t, 1005.0, means["Glottis"], 1e-9)
	assert.InDelta(t, 900.0, means["CUP"], 1e-9)
	assert.Len(t, means, 7)
}

func TestGroupOrdered_FirstAppearance(t *testing.T) {
	tbl := loadSample(t)
	keys, groups := GroupOrdered(tbl, func(p Patient) Status { return p.Status })
	assert.Equal(t, []Status{StatusDead, StatusAlive}, keys)
	assert.Len(t, groups[StatusDead], 11)
	assert.Len(t, groups[StatusAlive], 13)
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
}
