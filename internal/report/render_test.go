// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

func loadSample(t *testing.T) *cohort.Table {
	t.Helper()
	tbl, err := cohort.Load("../cohort/testdata/hnscc_sample.csv")
	require.NoError(t, err)
	return tbl
}

func TestRenderText_AllSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(loadSample(t), nil, &buf))

	out := buf.String()
	assert.Contains(t, out, "Cohort Overview")
	assert.Contains(t, out, "Patients:  24")
	assert.Contains(t, out, "Survival by Stage")
	assert.Contains(t, out, "Stage IVA")
	assert.Contains(t, out, "Primary Sites")
	assert.Contains(t, out, "Oropharynx")
	assert.Contains(t, out, "Causes of Death")
	assert.Contains(t, out, "Other cancer")
	assert.Contains(t, out, "Treatment")
}

func TestRenderText_FilteredSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(loadSample(t), []string{"causes"}, &buf))

	out := buf.String()
	assert.Contains(t, out, "Causes of Death")
	assert.NotContains(t, out, "Cohort Overview")
}

func TestRenderText_EmptyTableSkips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderText(cohort.NewTable(nil), []string{"overview", "causes"}, &buf))
	assert.Contains(t, buf.String(), "skipped")
}

func TestRenderJSON_Sample(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(loadSample(t), "hnscc_sample.csv", nil, &buf))

	var parsed ReportJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "hnscc_sample.csv", parsed.Dataset)
	assert.Equal(t, 24, parsed.Summary.Rows)
	assert.Equal(t, 11, parsed.Summary.Dead)
	assert.Equal(t, 13, parsed.Summary.Alive)

	_, err := time.Parse(time.RFC3339, parsed.Generated)
	require.NoError(t, err)

	require.Len(t, parsed.Sections, len(List()))
	for _, s := range parsed.Sections {
		assert.Equal(t, "ok", s.Status, s.Name)
		assert.NotEmpty(t, s.Content, s.Name)
	}
}

func TestRenderJSON_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(cohort.NewTable(nil), "empty.csv", []string{"overview", "survival"}, &buf))

	var parsed ReportJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, 0, parsed.Summary.Rows)
	require.Len(t, parsed.Sections, 2)
	for _, s := range parsed.Sections {
		assert.Equal(t, "skipped", s.Status)
		assert.Empty(t, s.Content)
	}
}

func TestResolveSections(t *testing.T) {
	assert.Equal(t, List(), ResolveSections(nil))
	assert.Equal(t, []string{"sites", "overview"}, ResolveSections([]string{"sites", "bogus", "overview"}))
	assert.Empty(t, ResolveSections([]string{"bogus"}))
}

func TestCausesSection_AppliesCorrection(t *testing.T) {
	s := &causesSection{}
	require.NoError(t, s.Analyze(loadSample(t)))

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	assert.Contains(t, buf.String(), "Index cancer")
	assert.Contains(t, buf.String(), "Other cancer")
}

func TestTreatmentSection_NoRows(t *testing.T) {
	s := &treatmentSection{}
	assert.ErrorIs(t, s.Analyze(cohort.NewTable(nil)), ErrNoData)
}

func TestRenderText_ConcurrentTables(t *testing.T) {
	full := loadSample(t)
	female := full.Filter(func(p cohort.Patient) bool { return p.Sex == cohort.SexFemale })

	want := make(map[*cohort.Table]string)
	for _, tbl := range []*cohort.Table{full, female} {
		var buf bytes.Buffer
		require.NoError(t, RenderText(tbl, nil, &buf))
		want[tbl] = buf.String()
	}
	require.NotEqual(t, want[full], want[female])

	var wg sync.WaitGroup
	got := make([]string, 20)
	tables := make([]*cohort.Table, len(got))
	for i := range got {
		tables[i] = full
		if i%2 == 1 {
			tables[i] = female
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			if err := RenderText(tables[i], nil, &buf); err == nil {
				got[i] = buf.String()
			}
		}()
	}
	wg.Wait()

	for i, out := range got {
		assert.Equal(t, want[tables[i]], out, "render %d", i)
	}
}
