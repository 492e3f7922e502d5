// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package cohort

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrMissingColumn indicates the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// Column headers as they appear in the published dataset.
const (
	ColAge             = "Age"
	ColSex             = "Sex"
	ColSite            = "Site"
	ColStage           = "Stage"
	ColFollowUp        = "Follow up duration (day)"
	ColSurvival        = "Survival  (months)"
	ColStatus          = "Alive or Dead"
	ColCensor          = "Overall Survival Censor"
	ColRecurrence      = "Site of recurrence (Distal/Local/ Locoregional)"
	ColCauseOfDeath    = "Cause of Death"
	ColRTDays          = "Total RT treatment time (days)"
	ColConcurrentChemo = "Received Concurrent Chemoradiotherapy?"
	ColBMIStart        = "BMI start treat (kg/m2)"
	ColBMIStop         = "BMI stop treat (kg/m2)"
)

// requiredColumns lists every header Read needs, in no particular order.
var requiredColumns = []string{
	ColAge, ColSex, ColSite, ColStage, ColFollowUp, ColSurvival, ColStatus,
	ColCensor, ColRecurrence, ColCauseOfDeath, ColRTDays, ColConcurrentChemo,
	ColBMIStart, ColBMIStop,
}

// ParseError reports a cell that could not be converted.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: column %q: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the CSV file at path into a Table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // user-specified data path
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses comma-separated patient records with a header row.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file: %w", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []Patient
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if blankRecord(rec) {
			continue
		}
		p, err := parseRecord(rec, idx, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, p)
	}
	return NewTable(rows), nil
}

func indexHeader(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		idx[h] = i
	}
	// Some exports collapse the double space in the survival header.
	if _, ok := idx[ColSurvival]; !ok {
		if i, ok := idx["Survival (months)"]; ok {
			idx[ColSurvival] = i
		}
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, strconv.Quote(col))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func blankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// cellReader pulls typed values out of one record, remembering the first
// conversion failure.
type cellReader struct {
	rec  []string
	idx  map[string]int
	line int
	err  error
}

func (c *cellReader) text(col string) string {
	i := c.idx[col]
	if i >= len(c.rec) {
		return ""
	}
	return strings.TrimSpace(c.rec[i])
}

func (c *cellReader) number(col string) float64 {
	v := c.text(col)
	if v == "" || strings.EqualFold(v, "nan") {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		c.fail(col, v, err)
		return math.NaN()
	}
	return f
}

func (c *cellReader) fail(col, v string, err error) {
	if c.err == nil {
		c.err = &ParseError{Line: c.line, Column: col, Value: v, Err: err}
	}
}

func parseRecord(rec []string, idx map[string]int, line int) (Patient, error) {
	c := &cellReader{rec: rec, idx: idx, line: line}

	p := Patient{
		Age:            c.number(ColAge),
		Sex:            Sex(c.text(ColSex)),
		Site:           c.text(ColSite),
		Stage:          ParseStage(c.text(ColStage)),
		FollowUpDays:   c.number(ColFollowUp),
		SurvivalMonths: c.number(ColSurvival),
		Status:         Status(c.text(ColStatus)),
		Recurrence:     c.text(ColRecurrence),
		CauseOfDeath:   c.text(ColCauseOfDeath),
		RTDays:         c.number(ColRTDays),
		BMIStart:       c.number(ColBMIStart),
		BMIStop:        c.number(ColBMIStop),
	}

	p.SurvivalCensor = CensorUnknown
	switch v := c.number(ColCensor); {
	case Missing(v):
	case v == 0:
		p.SurvivalCensor = CensorSurvival
	case v == 1:
		p.SurvivalCensor = CensorDeath
	default:
		c.fail(ColCensor, c.text(ColCensor), errors.New("censor must be 0 or 1"))
	}

	chemo, ok := ParseAnswer(c.text(ColConcurrentChemo))
	if !ok {
		c.fail(ColConcurrentChemo, c.text(ColConcurrentChemo), errors.New("expected yes or no"))
	}
	p.ConcurrentChemo = chemo

	if c.err != nil {
		return Patient{}, c.err
	}
	return p, nil
}
