// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package cohort

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "testdata/hnscc_sample.csv"

const header = "Age,Sex,Site,Stage,Follow up duration (day),Survival  (months),Alive or Dead," +
	"Overall Survival Censor,Site of recurrence (Distal/Local/ Locoregional),Cause of Death," +
	"Total RT treatment time (days),Received Concurrent Chemoradiotherapy?," +
	"BMI start treat (kg/m2),BMI stop treat (kg/m2)\n"

func TestLoad_Sample(t *testing.T) {
	tbl, err := Load(sampleCSV)
	require.NoError(t, err)
	assert.Equal(t, 24, tbl.Len())

	first := tbl.Row(0)
	assert.InDelta(t, 45.2, first.Age, 1e-9)
	assert.Equal(t, SexMale, first.Sex)
	assert.Equal(t, "Oropharynx", first.Site)
	assert.Equal(t, StageI, first.Stage)
	assert.Equal(t, StatusDead, first.Status)
	assert.Equal(t, CensorDeath, first.SurvivalCensor)
	assert.Equal(t, "Index cancer", first.CauseOfDeath)
	assert.Equal(t, AnswerYes, first.ConcurrentChemo)
	assert.InDelta(t, 1.8, first.BMIDiff, 1e-9)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRead_MissingColumn(t *testing.T) {
	_, err := Read(strings.NewReader("Age,Sex\n50,Male\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), `"Stage"`)
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestRead_BadNumber(t *testing.T) {
	in := header + "fifty,Male,Glottis,II,100,3,Alive,0,,,45,No,20,19\n"
	_, err := Read(strings.NewReader(in))
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, ColAge, pe.Column)
	assert.Equal(t, "fifty", pe.Value)
}

func TestRead_BadCensor(t *testing.T) {
	in := header + "50,Male,Glottis,II,100,3,Alive,2,,,45,No,20,19\n"
	_, err := Read(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColCensor)
}

func TestRead_BadAnswer(t *testing.T) {
	in := header + "50,Male,Glottis,II,100,3,Alive,0,,,45,maybe,20,19\n"
	_, err := Read(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColConcurrentChemo)
}

func TestRead_BlankCellsAreMissing(t *testing.T) {
	in := header + "50,Female,Glottis,Stage II,,3,Alive,,,,45,,,\n"
	tbl, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())

	p := tbl.Row(0)
	assert.Equal(t, StageII, p.Stage)
	assert.True(t, Missing(p.FollowUpDays))
	assert.True(t, Missing(p.BMIStart))
	assert.True(t, Missing(p.BMIDiff))
	assert.Equal(t, CensorUnknown, p.SurvivalCensor)
	assert.Equal(t, AnswerUnknown, p.ConcurrentChemo)
}

func TestRead_SkipsBlankLinesAndExtraColumns(t *testing.T) {
	in := "ID," + header +
		"7,50,Male,Glottis,II,100,3,Alive,0,,,45,YES,20,19\n" +
		",,,,,,,,,,,,,,\n"
	tbl, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, AnswerYes, tbl.Row(0).ConcurrentChemo)
}

func TestRead_SingleSpaceSurvivalHeader(t *testing.T) {
	in := strings.Replace(header, "Survival  (months)", "Survival (months)", 1) +
		"50,Male,Glottis,II,100,3.5,Alive,0,,,45,No,20,19\n"
	tbl, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.InDelta(t, 3.5, tbl.Row(0).SurvivalMonths, 1e-9)
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		in   string
		want Stage
	}{
		{"I", StageI},
		{"Stage IVA", StageIVA},
		{"stage ivb", StageIVB},
		{" iii ", StageIII},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseStage(tt.in), tt.in)
	}
	assert.Equal(t, "Stage IVA", StageIVA.Label())
}
