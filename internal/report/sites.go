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
	Register(&sitesSection{})
}

// sitesSection reports patients and mean follow-up per primary site.
type sitesSection struct {
	counts map[string]int
	means  map[string]float64
}

func (s *sitesSection) Name() string        { return "sites" }
func (s *sitesSection) Description() string { return "Patients and mean follow-up duration per primary site" }

func (s *sitesSection) Analyze(t *cohort.Table) error {
	sited := t.Filter(func(p cohort.Patient) bool { return p.Site != "" })
	if sited.Len() == 0 {
		return fmt.Errorf("no primary sites recorded: %w", ErrNoData)
	}
	s.counts = cohort.CountBy(sited, func(p cohort.Patient) string { return p.Site })
	s.means = cohort.MeanBy(sited,
		func(p cohort.Patient) string { return p.Site },
		func(p cohort.Patient) float64 { return p.FollowUpDays },
	)
	return nil
}

func (s *sitesSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Primary Sites"))
	_, _ = fmt.Fprintf(w, "-------------\n")

	tbl := NewTable(
		Column{Header: "Site", MaxWidth: 40},
		Column{Header: "Patients", Align: AlignRight},
		Column{Header: "Mean follow-up (days)", Align: AlignRight},
	)
	for _, site := range cohort.SortedKeys(s.counts) {
		mean := "-"
		if m, ok := s.means[site]; ok {
			mean = fmt.Sprintf("%.0f", m)
		}
		tbl.AddRow(site, strconv.Itoa(s.counts[site]), mean)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
