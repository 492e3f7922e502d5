// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ingham-physics/hnviz/internal/chart"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONFormatter writes the figure specification as JSON.
type JSONFormatter struct {
	// Compact disables indentation.
	Compact bool
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a JSONFormatter that indents its output.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string { return "json" }

// Ext returns the file extension.
func (f *JSONFormatter) Ext() string { return "json" }

// Format writes fig as JSON to w.
func (f *JSONFormatter) Format(fig chart.Figure, w io.Writer) error {
	enc := json.NewEncoder(w)
	if !f.Compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(fig); err != nil {
		return fmt.Errorf("encode figure %s: %w", fig.ID, err)
	}
	return nil
}
