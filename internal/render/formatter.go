// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

// Package render writes figures to files: JSON specifications for other
// renderers and PNG images for static reports.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/ingham-physics/hnviz/internal/chart"
)

// Formatter writes one figure in a specific format.
type Formatter interface {
	// Name returns the format name (e.g., "json", "png").
	Name() string

	// Ext returns the file extension, without the dot.
	Ext() string

	// Format writes fig to w.
	Format(fig chart.Figure, w io.Writer) error
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// FormatNames returns the registered format names, sorted.
func FormatNames() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatNames() string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
