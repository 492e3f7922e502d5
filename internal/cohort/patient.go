// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

// Package cohort loads the head and neck cancer patient table and exposes it
// as an immutable snapshot shared by every chart builder.
package cohort

import (
	"math"
	"slices"
	"strings"
)

// Sex is the recorded patient sex.
type Sex string

// Recorded sex values.
const (
	SexFemale Sex = "Female"
	SexMale   Sex = "Male"
)

// KnownSexes lists the recorded sex values in display order.
var KnownSexes = []Sex{SexFemale, SexMale}

// Known reports whether s is one of KnownSexes.
func (s Sex) Known() bool { return slices.Contains(KnownSexes, s) }

// Stage is the AJCC disease stage without the "Stage " prefix.
type Stage string

// Disease stages in display order.
const (
	StageI   Stage = "I"
	StageII  Stage = "II"
	StageIII Stage = "III"
	StageIVA Stage = "IVA"
	StageIVB Stage = "IVB"
)

// Stages lists every stage in display order.
var Stages = []Stage{StageI, StageII, StageIII, StageIVA, StageIVB}

// Label returns the display label, e.g. "Stage IVA".
func (s Stage) Label() string { return "Stage " + string(s) }

// ParseStage normalizes "IVA", "iva" and "Stage IVA" to StageIVA.
// Unknown values are returned upper-cased and trimmed.
func ParseStage(v string) Stage {
	v = strings.TrimSpace(v)
	if len(v) >= 6 && strings.EqualFold(v[:6], "stage ") {
		v = strings.TrimSpace(v[6:])
	}
	return Stage(strings.ToUpper(v))
}

// Status is the vital status at last follow-up.
type Status string

// Vital status values.
const (
	StatusAlive Status = "Alive"
	StatusDead  Status = "Dead"
)

// Censor is the overall survival censor flag.
type Censor int

// Censor values. CensorUnknown marks an empty cell.
const (
	CensorUnknown  Censor = -1
	CensorSurvival Censor = 0
	CensorDeath    Censor = 1
)

// Answer is a yes/no cell that may be blank.
type Answer string

// Answer values.
const (
	AnswerUnknown Answer = ""
	AnswerNo      Answer = "No"
	AnswerYes     Answer = "Yes"
)

// ParseAnswer maps yes/y/true/1 and no/n/false/0 (any case) to an Answer.
func ParseAnswer(v string) (Answer, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return AnswerUnknown, true
	case "yes", "y", "true", "1":
		return AnswerYes, true
	case "no", "n", "false", "0":
		return AnswerNo, true
	default:
		return AnswerUnknown, false
	}
}

// Patient is one row of the dataset. Numeric fields hold NaN when the source
// cell was blank.
type Patient struct {
	Age             float64
	Sex             Sex
	Site            string
	Stage           Stage
	FollowUpDays    float64
	SurvivalMonths  float64
	Status          Status
	SurvivalCensor  Censor
	Recurrence      string
	CauseOfDeath    string
	RTDays          float64
	ConcurrentChemo Answer
	BMIStart        float64
	BMIStop         float64

	// BMIDiff is BMIStart - BMIStop, filled in by the loader.
	BMIDiff float64
}

// IsDead reports whether the patient was recorded as deceased.
func (p Patient) IsDead() bool { return p.Status == StatusDead }

// Missing reports whether v came from a blank cell.
func Missing(v float64) bool { return math.IsNaN(v) }
