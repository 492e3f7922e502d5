// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingham-physics/hnviz/internal/config"
)

const header = "Patient #,Age,Sex,Site,Stage,Follow up duration (day),Survival  (months),Alive or Dead," +
	"Overall Survival Censor,Site of recurrence (Distal/Local/ Locoregional),Cause of Death," +
	"Total RT treatment time (days),Received Concurrent Chemoradiotherapy?,BMI start treat (kg/m2),BMI stop treat (kg/m2)\n"

func TestValidate_Sample(t *testing.T) {
	t.Chdir(t.TempDir())
	out, stderr, err := execute(t, "validate", samplePath(t))
	require.NoError(t, err)
	assert.Contains(t, out, "valid: 24 rows")
	assert.NotContains(t, stderr, "warning")
}

func TestValidate_BlankCells(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	csv := writeTestFile(t, dir, "blank.csv", header+
		"1,,Male,Glottis,I,100,3.2,Alive,0,Complete response,,40,No,25,24\n")

	_, stderr, err := execute(t, "validate", csv)
	require.NoError(t, err)
	assert.Contains(t, stderr, `1 blank cell(s) in "Age"`)

	_, _, err = execute(t, "validate", "--strict", csv)
	require.Error(t, err)
	assert.Equal(t, ExitDataLoad, exitCodeOf(err))
}

func TestValidate_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	csv := writeTestFile(t, dir, "short.csv", "Age,Sex\n50,Male\n")

	_, _, err := execute(t, "validate", csv)
	require.Error(t, err)
	assert.Equal(t, ExitDataLoad, exitCodeOf(err))
}

func TestValidate_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeTestFile(t, dir, config.FileName, "default_sex: unknown\n")

	_, _, err := execute(t, "validate", samplePath(t))
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCodeOf(err))
	assert.Contains(t, err.Error(), "default_sex")
}

func TestValidate_DataFromConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeTestFile(t, dir, config.FileName, "data_path: "+samplePath(t)+"\n")

	out, _, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "valid: 24 rows")
}

func TestSamplePath_StableAcrossChdir(t *testing.T) {
	before := samplePath(t)
	t.Chdir(t.TempDir())
	assert.Equal(t, before, samplePath(t))
	assert.True(t, filepath.IsAbs(before))
}
