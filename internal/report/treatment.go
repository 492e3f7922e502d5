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
	Register(&treatmentSection{})
}

type treatmentRow struct {
	sex           cohort.Sex
	chemo, total  int
	rtDays        float64
	bmiDiff       float64
	hasRT, hasBMI bool
}

// treatmentSection reports concurrent chemoradiotherapy uptake, mean RT
// duration, and mean BMI change per sex.
type treatmentSection struct {
	rows []treatmentRow
}

func (s *treatmentSection) Name() string { return "treatment" }
func (s *treatmentSection) Description() string {
	return "Chemoradiotherapy uptake, RT duration and BMI change per sex"
}

func (s *treatmentSection) Analyze(t *cohort.Table) error {
	sexes := t.Sexes()
	if len(sexes) == 0 {
		return fmt.Errorf("no sexes recorded: %w", ErrNoData)
	}
	bySex := func(p cohort.Patient) cohort.Sex { return p.Sex }
	totals := cohort.CountBy(t, bySex)
	chemo := cohort.CountBy(t.Filter(func(p cohort.Patient) bool {
		return p.ConcurrentChemo == cohort.AnswerYes
	}), bySex)
	rt := cohort.MeanBy(t, bySex, func(p cohort.Patient) float64 { return p.RTDays })
	bmi := cohort.MeanBy(t, bySex, func(p cohort.Patient) float64 { return p.BMIDiff })

	s.rows = s.rows[:0]
	for _, sex := range sexes {
		r := treatmentRow{sex: sex, chemo: chemo[sex], total: totals[sex]}
		r.rtDays, r.hasRT = rt[sex]
		r.bmiDiff, r.hasBMI = bmi[sex]
		s.rows = append(s.rows, r)
	}
	return nil
}

func (s *treatmentSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Treatment"))
	_, _ = fmt.Fprintf(w, "---------\n")

	tbl := NewTable(
		Column{Header: "Sex"},
		Column{Header: "Chemoradiotherapy", Align: AlignRight},
		Column{Header: "Mean RT days", Align: AlignRight},
		Column{Header: "Mean BMI change", Align: AlignRight},
	)
	for _, r := range s.rows {
		rt, bmi := "-", "-"
		if r.hasRT {
			rt = fmt.Sprintf("%.1f", r.rtDays)
		}
		if r.hasBMI {
			bmi = fmt.Sprintf("%+.2f", r.bmiDiff)
		}
		tbl.AddRow(string(r.sex), strconv.Itoa(r.chemo)+"/"+strconv.Itoa(r.total), rt, bmi)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
