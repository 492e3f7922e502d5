// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global hnviz configuration.
// It uses $XDG_CONFIG_HOME/hnviz if set, otherwise ~/.config/hnviz.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hnviz")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hnviz")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	cfg, err := LoadFile(GlobalConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Resolve loads the global config and overlays the config found in dir,
// or the explicit file at path when path is non-empty.
func Resolve(dir, path string) (*Config, error) {
	global, err := LoadGlobal()
	if err != nil {
		return nil, err
	}
	var local *Config
	if path != "" {
		local, err = LoadFile(path)
	} else {
		local, err = Load(dir)
	}
	if err != nil {
		return nil, err
	}
	return Overlay(global, local), nil
}
