// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/ingham-physics/hnviz/internal/chart"
	"github.com/ingham-physics/hnviz/internal/cohort"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.ListenAddr != "" {
		if _, _, err := net.SplitHostPort(cfg.ListenAddr); err != nil {
			errs = append(errs, fmt.Sprintf("listen_addr: %v", err))
		}
	}

	switch cohort.Sex(cfg.DefaultSex) {
	case "", cohort.SexFemale, cohort.SexMale:
		// valid
	default:
		errs = append(errs, fmt.Sprintf("default_sex: invalid value %q (must be %s or %s)",
			cfg.DefaultSex, cohort.SexFemale, cohort.SexMale))
	}

	if cfg.DefaultDimension != "" {
		if _, err := chart.ParseDimension(cfg.DefaultDimension); err != nil {
			errs = append(errs, fmt.Sprintf("default_dimension: %v", err))
		}
	}

	if cfg.AgeSlider != nil {
		s := cfg.Settings()
		if s.AgeMin < 0 {
			errs = append(errs, fmt.Sprintf("age_slider.min: must be non-negative, got %g", s.AgeMin))
		}
		if s.AgeMin >= s.AgeMax {
			errs = append(errs, fmt.Sprintf("age_slider: min %g must be below max %g", s.AgeMin, s.AgeMax))
		}
		if s.AgeStep < 0 {
			errs = append(errs, fmt.Sprintf("age_slider.step: must be positive, got %g", s.AgeStep))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
