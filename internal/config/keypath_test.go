// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValue(t *testing.T) {
	cfg := &Config{
		DataPath:  "data/hnscc.csv",
		AgeSlider: &SliderConfig{Min: 20, Max: 95},
	}

	v, err := GetValue(cfg, "data_path")
	require.NoError(t, err)
	assert.Equal(t, "data/hnscc.csv", v)

	v, err = GetValue(cfg, "age_slider.max")
	require.NoError(t, err)
	assert.Equal(t, 95, v)

	_, err = GetValue(cfg, "listen_addr")
	assert.ErrorContains(t, err, "not found")
}

func TestSetValue_CreatesIntermediateMaps(t *testing.T) {
	m := map[string]any{}
	require.NoError(t, SetValue(m, "age_slider.step", "0.5"))
	require.NoError(t, SetValue(m, "default_sex", "Female"))

	assert.Equal(t, 0.5, m["age_slider"].(map[string]any)["step"])
	assert.Equal(t, "Female", m["default_sex"])
}

func TestSetValue_ScalarParent(t *testing.T) {
	m := map[string]any{"debug": true}
	assert.Error(t, SetValue(m, "debug.level", "1"))
}

func TestFlattenMap(t *testing.T) {
	flat := FlattenMap(map[string]any{
		"debug":      true,
		"age_slider": map[string]any{"min": 20, "max": 95},
	}, "")
	assert.Equal(t, map[string]any{
		"debug":          true,
		"age_slider.min": 20,
		"age_slider.max": 95,
	}, flat)
}

func TestValidateKeyPath(t *testing.T) {
	tests := []struct {
		key     string
		wantErr string
	}{
		{"data_path", ""},
		{"metrics", ""},
		{"age_slider.step", ""},
		{"", "empty key path"},
		{"colour", "unknown key"},
		{"debug.level", "scalar"},
		{"age_slider", "requires a field"},
		{"age_slider.width", "unknown age_slider field"},
		{"age_slider.min.x", "too deep"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKeyPath(tt.key)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, true, coerceValue("true"))
	assert.Equal(t, 3, coerceValue("3"))
	assert.Equal(t, 0.5, coerceValue("0.5"))
	assert.Equal(t, "Male", coerceValue("Male"))
}

func TestFlatten(t *testing.T) {
	flat, err := Flatten(&Config{DefaultSex: "Male", AgeSlider: &SliderConfig{Step: 0.5}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"default_sex": "Male", "age_slider.step": 0.5}, flat)

	flat, err = Flatten(&Config{})
	require.NoError(t, err)
	assert.Empty(t, flat)
}
