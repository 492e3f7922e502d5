// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

func init() {
	Register(&overviewSection{})
}

// overviewSection reports cohort size, composition, and data completeness.
type overviewSection struct {
	summary cohort.Summary
}

func (s *overviewSection) Name() string        { return "overview" }
func (s *overviewSection) Description() string { return "Cohort size, sex split, age range and blank cells" }

func (s *overviewSection) Analyze(t *cohort.Table) error {
	if t.Len() == 0 {
		return fmt.Errorf("empty table: %w", ErrNoData)
	}
	s.summary = t.Describe()
	return nil
}

func (s *overviewSection) Render(w io.Writer) error {
	sum := s.summary
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Cohort Overview"))
	_, _ = fmt.Fprintf(w, "---------------\n")
	_, _ = fmt.Fprintf(w, "  Patients:  %d\n", sum.Rows)
	_, _ = fmt.Fprintf(w, "  Age range: %.1f - %.1f\n", sum.AgeMin, sum.AgeMax)
	_, _ = fmt.Fprintf(w, "  %s:     %d\n", ColorStatus(string(cohort.StatusAlive)), sum.Alive)
	_, _ = fmt.Fprintf(w, "  %s:      %d\n\n", ColorStatus(string(cohort.StatusDead)), sum.Dead)

	tbl := NewTable(
		Column{Header: "Sex"},
		Column{Header: "Patients", Align: AlignRight},
	)
	for _, sex := range cohort.SortedKeys(sum.BySex) {
		tbl.AddRow(string(sex), strconv.Itoa(sum.BySex[sex]))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "\n  Blank numeric cells:\n")
	for _, col := range []string{
		cohort.ColAge, cohort.ColFollowUp, cohort.ColSurvival,
		cohort.ColRTDays, cohort.ColBMIStart, cohort.ColBMIStop,
	} {
		_, _ = fmt.Fprintf(w, "    %-32s %s\n", col, colorMissing(sum.Missing[col]))
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
