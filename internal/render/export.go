// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ingham-physics/hnviz/internal/chart"
)

// ExportAll writes every figure in every format to dir as <id>.<ext>,
// rendering in parallel. It returns the written paths, sorted. The first
// failure cancels the remaining work.
func ExportAll(ctx context.Context, figs []chart.Figure, dir string, formats ...Formatter) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var (
		mu    sync.Mutex
		paths []string
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, fig := range figs {
		for _, f := range formats {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				path := filepath.Join(dir, fig.ID+"."+f.Ext())
				if err := WriteFile(path, fig, f); err != nil {
					return err
				}
				mu.Lock()
				paths = append(paths, path)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.Sort(paths)
	return paths, nil
}

// WriteFile writes fig to path using f.
func WriteFile(path string, fig chart.Figure, f Formatter) (err error) {
	file, err := os.Create(path) //nolint:gosec // path is the user-specified output directory
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(file)
	if err := f.Format(fig, w); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return w.Flush()
}
