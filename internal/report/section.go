// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

// Package report renders cohort summaries for the terminal. Each section
// analyzes the patient table and renders one focused block of tables.
package report

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

// ErrNoData indicates a section has nothing to report for the table, such
// as a cause-of-death breakdown with no deceased patients.
var ErrNoData = errors.New("no data for section")

// Section is a pluggable summary section.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "survival").
	Name() string

	// Description returns a human-readable description of what this section reports.
	Description() string

	// Analyze computes the section from t.
	// Returns ErrNoData (wrapped) if the table holds nothing to report.
	Analyze(t *cohort.Table) error

	// Render writes the section output to w.
	Render(w io.Writer) error
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing

	// locks pairs each registered section with the lock held across its
	// Analyze and Render calls; sections keep state between the two.
	locks = make(map[string]*sync.Mutex)
)

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = s
	locks[name] = new(sync.Mutex)
	order = append(order, name)
}

// sectionLock returns the lock for the named section.
func sectionLock(name string) *sync.Mutex {
	mu.RLock()
	defer mu.RUnlock()
	return locks[name]
}

// run analyzes t with sec and renders the result to w under the section's
// lock. A non-nil analyzeErr means Render was not called.
func run(sec Section, t *cohort.Table, w io.Writer) (analyzeErr, renderErr error) {
	if l := sectionLock(sec.Name()); l != nil {
		l.Lock()
		defer l.Unlock()
	}
	if err := sec.Analyze(t); err != nil {
		return err, nil
	}
	return nil, sec.Render(w)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	locks = make(map[string]*sync.Mutex)
	order = nil
}
