// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

func loadSample(t *testing.T) *cohort.Table {
	t.Helper()
	tbl, err := cohort.Load("../cohort/testdata/hnscc_sample.csv")
	require.NoError(t, err)
	require.Equal(t, 24, tbl.Len())
	return tbl
}

func traceByName(t *testing.T, fig Figure, name string) Trace {
	t.Helper()
	for _, tr := range fig.Traces {
		if tr.Name == name {
			return tr
		}
	}
	t.Fatalf("no trace named %q in %s", name, fig.ID)
	return Trace{}
}
