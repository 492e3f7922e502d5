// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"sync"

	"github.com/ingham-physics/hnviz/internal/cohort"
)

// Panel is a registered dashboard chart.
type Panel interface {
	// ID returns the page region the figure is drawn into (e.g., "pie-chart").
	ID() string

	// Description returns a human-readable summary of what the panel shows.
	Description() string

	// Build returns the panel's figure for the full table.
	Build(t *cohort.Table) Figure
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Panel)
	order    []string // insertion order for deterministic listing
)

// Register adds a panel to the global registry.
// It panics if a panel with the same ID is already registered.
func Register(p Panel) {
	mu.Lock()
	defer mu.Unlock()
	id := p.ID()
	if _, exists := registry[id]; exists {
		panic(fmt.Sprintf("chart panel already registered: %s", id))
	}
	registry[id] = p
	order = append(order, id)
}

// Get returns the panel with the given ID, or nil if not found.
func Get(id string) Panel {
	mu.RLock()
	defer mu.RUnlock()
	return registry[id]
}

// List returns the IDs of all registered panels in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// funcPanel adapts a builder function to Panel.
type funcPanel struct {
	id, desc string
	build    func(*cohort.Table) Figure
}

func (p funcPanel) ID() string                   { return p.id }
func (p funcPanel) Description() string          { return p.desc }
func (p funcPanel) Build(t *cohort.Table) Figure { return p.build(t) }
