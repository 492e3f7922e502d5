// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package cohort

// Summary is an overview of a table used by the summary and validate
// commands.
type Summary struct {
	Rows    int            `json:"rows"`
	BySex   map[Sex]int    `json:"by_sex"`
	ByStage map[Stage]int  `json:"by_stage"`
	BySite  map[string]int `json:"by_site"`
	Dead    int            `json:"dead"`
	Alive   int            `json:"alive"`

	AgeMin float64 `json:"age_min"`
	AgeMax float64 `json:"age_max"`

	// Missing counts blank numeric cells per column header.
	Missing map[string]int `json:"missing"`
}

// Describe computes a Summary of t.
func (t *Table) Describe() Summary {
	s := Summary{
		Rows:    t.Len(),
		BySex:   CountBy(t, func(p Patient) Sex { return p.Sex }),
		ByStage: CountBy(t, func(p Patient) Stage { return p.Stage }),
		BySite:  CountBy(t, func(p Patient) string { return p.Site }),
		Missing: make(map[string]int),
	}
	s.AgeMin, s.AgeMax, _ = t.AgeBounds()

	for _, p := range t.Rows() {
		switch p.Status {
		case StatusDead:
			s.Dead++
		case StatusAlive:
			s.Alive++
		}
		for col, v := range map[string]float64{
			ColAge:      p.Age,
			ColFollowUp: p.FollowUpDays,
			ColSurvival: p.SurvivalMonths,
			ColRTDays:   p.RTDays,
			ColBMIStart: p.BMIStart,
			ColBMIStop:  p.BMIStop,
		} {
			if Missing(v) {
				s.Missing[col]++
			}
		}
	}
	return s
}
