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
	Register(&survivalSection{})
}

type stageRow struct {
	stage           cohort.Stage
	survival, death int
}

// survivalSection reports the censor split per stage, the table behind the
// survival-by-stage donuts.
type survivalSection struct {
	rows []stageRow
}

func (s *survivalSection) Name() string        { return "survival" }
func (s *survivalSection) Description() string { return "Overall survival and death counts per stage" }

func (s *survivalSection) Analyze(t *cohort.Table) error {
	type key struct {
		stage  cohort.Stage
		censor cohort.Censor
	}
	counts := cohort.CountBy(t, func(p cohort.Patient) key { return key{p.Stage, p.SurvivalCensor} })

	s.rows = s.rows[:0]
	for _, st := range cohort.Stages {
		r := stageRow{
			stage:    st,
			survival: counts[key{st, cohort.CensorSurvival}],
			death:    counts[key{st, cohort.CensorDeath}],
		}
		if r.survival+r.death > 0 {
			s.rows = append(s.rows, r)
		}
	}
	if len(s.rows) == 0 {
		return fmt.Errorf("no staged patients with a censor: %w", ErrNoData)
	}
	return nil
}

func (s *survivalSection) Render(w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle("Survival by Stage"))
	_, _ = fmt.Fprintf(w, "-----------------\n")

	tbl := NewTable(
		Column{Header: "Stage"},
		Column{Header: "Survival", Align: AlignRight},
		Column{Header: "Death", Align: AlignRight},
		Column{Header: "Survival rate", Align: AlignRight, Color: ColorRate},
	)
	for _, r := range s.rows {
		rate := float64(r.survival) / float64(r.survival+r.death) * 100
		tbl.AddRow(r.stage.Label(), strconv.Itoa(r.survival), strconv.Itoa(r.death), fmt.Sprintf("%.1f%%", rate))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
