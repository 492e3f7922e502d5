// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package config

import (
	"github.com/ingham-physics/hnviz/internal/callback"
	"github.com/ingham-physics/hnviz/internal/chart"
	"github.com/ingham-physics/hnviz/internal/cohort"
)

// Merge combines file-based config with CLI-provided values.
// CLI values take precedence; zero-value CLI fields fall through to file config.
func Merge(fileCfg *Config, cliCfg Config) Config {
	result := cliCfg
	if fileCfg == nil {
		return result
	}

	if result.DataPath == "" {
		result.DataPath = fileCfg.DataPath
	}
	if result.ListenAddr == "" {
		result.ListenAddr = fileCfg.ListenAddr
	}

	// Debug: CLI wins if true, otherwise file config.
	if !result.Debug && fileCfg.Debug {
		result.Debug = true
	}

	if result.DefaultSex == "" {
		result.DefaultSex = fileCfg.DefaultSex
	}
	if result.DefaultDimension == "" {
		result.DefaultDimension = fileCfg.DefaultDimension
	}
	if result.Metrics == nil && fileCfg.Metrics != nil {
		v := *fileCfg.Metrics
		result.Metrics = &v
	}

	if fileCfg.AgeSlider != nil {
		s := *fileCfg.AgeSlider
		if result.AgeSlider != nil {
			if result.AgeSlider.Min != 0 {
				s.Min = result.AgeSlider.Min
			}
			if result.AgeSlider.Max != 0 {
				s.Max = result.AgeSlider.Max
			}
			if result.AgeSlider.Step != 0 {
				s.Step = result.AgeSlider.Step
			}
		}
		result.AgeSlider = &s
	}

	return result
}

// Overlay returns base with every field set in over replacing it.
func Overlay(base, over *Config) *Config {
	if over == nil {
		over = &Config{}
	}
	merged := Merge(base, *over)
	return &merged
}

// WithDefaults fills unset paths with DefaultDataPath and DefaultListenAddr.
func (c Config) WithDefaults() Config {
	if c.DataPath == "" {
		c.DataPath = DefaultDataPath
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	return c
}

// Settings converts the control fields to callback settings, keeping the
// stock default for every field left unset.
func (c Config) Settings() callback.Settings {
	s := callback.DefaultSettings()
	if c.DefaultSex != "" {
		s.DefaultSex = cohort.Sex(c.DefaultSex)
	}
	if c.DefaultDimension != "" {
		s.DefaultDimension = chart.Dimension(c.DefaultDimension)
	}
	if sl := c.AgeSlider; sl != nil {
		if sl.Min != 0 {
			s.AgeMin = sl.Min
		}
		if sl.Max != 0 {
			s.AgeMax = sl.Max
		}
		if sl.Step != 0 {
			s.AgeStep = sl.Step
		}
	}
	return s
}
