// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ingham-physics/hnviz/internal/chart"
	"github.com/ingham-physics/hnviz/internal/cohort"
)

func init() {
	Register(&causesSection{})
}

// causesSection reports the cause-of-death counts exactly as charted,
// including the published correction.
type causesSection struct {
	counts []chart.CauseCount
}

func (s *causesSection) Name() string        { return "causes" }
func (s *causesSection) Description() string { return "Deceased patients by cause of death, as charted" }

func (s *causesSection) Analyze(t *cohort.Table) error {
	s.counts = chart.CauseCounts(t)
	if len(s.counts) == 0 {
		return fmt.Errorf("no recorded causes of death: %w", ErrNoData)
	}
	return nil
}

func (s *causesSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Causes of Death"))
	_, _ = fmt.Fprintf(w, "---------------\n")

	tbl := NewTable(
		Column{Header: "Cause", MaxWidth: 40},
		Column{Header: "Patients", Align: AlignRight},
	)
	for _, c := range s.counts {
		tbl.AddRow(c.Cause, strconv.Itoa(c.Count))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
