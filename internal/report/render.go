// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

// ReportJSON is the top-level JSON structure for --format json output.
type ReportJSON struct {
	Dataset   string         `json:"dataset"`
	Generated string         `json:"generated"`
	Summary   cohort.Summary `json:"summary"`
	Sections  []SectionJSON  `json:"sections,omitempty"`
}

// SectionJSON is the JSON representation of a single report section.
type SectionJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`            // "ok", "skipped"
	Content     string `json:"content,omitempty"` // rendered text
}

// RenderText analyzes and renders the named sections to w. Sections with no
// data are noted and skipped.
func RenderText(t *cohort.Table, sections []string, w io.Writer) error {
	for _, name := range ResolveSections(sections) {
		sec := Get(name)
		if sec == nil {
			continue
		}
		var buf bytes.Buffer
		analyzeErr, renderErr := run(sec, t, &buf)
		if analyzeErr != nil {
			if errors.Is(analyzeErr, ErrNoData) {
				_, _ = fmt.Fprintf(w, "%s\n  skipped: %v\n\n", SectionTitle(sec.Description()), analyzeErr)
				continue
			}
			return fmt.Errorf("section %s: %w", name, analyzeErr)
		}
		if renderErr != nil {
			return fmt.Errorf("section %s render: %w", name, renderErr)
		}
		if _, err := buf.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

// RenderJSON writes the summary and sections as machine-readable JSON.
func RenderJSON(t *cohort.Table, dataset string, sections []string, w io.Writer) error {
	out := ReportJSON{
		Dataset:   dataset,
		Generated: time.Now().Format(time.RFC3339),
		Summary:   t.Describe(),
	}

	for _, name := range ResolveSections(sections) {
		sec := Get(name)
		if sec == nil {
			continue
		}

		sj := SectionJSON{
			Name:        sec.Name(),
			Description: sec.Description(),
		}

		var buf bytes.Buffer
		analyzeErr, renderErr := run(sec, t, &buf)
		if analyzeErr != nil {
			if errors.Is(analyzeErr, ErrNoData) {
				sj.Status = "skipped"
				out.Sections = append(out.Sections, sj)
				continue
			}
			return fmt.Errorf("section %s: %w", name, analyzeErr)
		}
		if renderErr != nil {
			return fmt.Errorf("section %s render: %w", name, renderErr)
		}

		sj.Status = "ok"
		sj.Content = buf.String()
		out.Sections = append(out.Sections, sj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// ResolveSections returns the registered sections named in filter, in filter
// order. An empty filter selects every section.
func ResolveSections(filter []string) []string {
	if len(filter) == 0 {
		return List()
	}

	available := make(map[string]bool)
	for _, name := range List() {
		available[name] = true
	}

	var names []string
	for _, name := range filter {
		if available[name] {
			names = append(names, name)
		}
	}
	return names
}
