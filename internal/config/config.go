// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

// Package config handles .hnviz.yaml and .hnviz.toml configuration files.
package config

// Config represents the contents of a .hnviz.yaml or .hnviz.toml file.
type Config struct {
	DataPath         string        `yaml:"data_path,omitempty" toml:"data_path,omitempty"`
	ListenAddr       string        `yaml:"listen_addr,omitempty" toml:"listen_addr,omitempty"`
	Debug            bool          `yaml:"debug,omitempty" toml:"debug,omitempty"`
	DefaultSex       string        `yaml:"default_sex,omitempty" toml:"default_sex,omitempty"`
	DefaultDimension string        `yaml:"default_dimension,omitempty" toml:"default_dimension,omitempty"`
	AgeSlider        *SliderConfig `yaml:"age_slider,omitempty" toml:"age_slider,omitempty"`
	Metrics          *bool         `yaml:"metrics,omitempty" toml:"metrics,omitempty"`
}

// SliderConfig sets the bounds and step of both age range sliders.
type SliderConfig struct {
	Min  float64 `yaml:"min,omitempty" toml:"min,omitempty"`
	Max  float64 `yaml:"max,omitempty" toml:"max,omitempty"`
	Step float64 `yaml:"step,omitempty" toml:"step,omitempty"`
}

// Config file names looked up in a directory, in precedence order.
const (
	FileName     = ".hnviz.yaml"
	TOMLFileName = ".hnviz.toml"
)

// Defaults used when neither a flag nor a config file sets a value.
const (
	DefaultDataPath   = "data/hnscc.csv"
	DefaultListenAddr = "127.0.0.1:8050"
)

// MetricsEnabled reports whether /metrics should be served. Unset means on.
func (c Config) MetricsEnabled() bool {
	return c.Metrics == nil || *c.Metrics
}
