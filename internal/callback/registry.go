// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

// Package callback binds dashboard controls to the chart regions they
// recompute. Each binding names its inputs, a pure handler, and exactly one
// output region; a control change dispatches one binding synchronously.
package callback

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/ingham-physics/hnviz/internal/chart"
)

// Sentinel errors returned by Dispatch.
var (
	ErrUnknownOutput = errors.New("no callback bound to output")
	ErrInvalidInput  = errors.New("invalid callback input")
)

// Handler recomputes one figure from the current control values.
type Handler func(in Inputs) (chart.Figure, error)

// Binding ties a set of input control IDs to the region they redraw.
type Binding struct {
	Output  string
	Inputs  []string
	Handler Handler
}

// Dependency is the serializable part of a Binding.
type Dependency struct {
	Output string   `json:"output"`
	Inputs []string `json:"inputs"`
}

// Registry holds bindings keyed by output region. It is safe for concurrent
// use; handlers run outside the lock.
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]Binding
	order    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]Binding)}
}

// Register adds b. An output may be bound only once.
func (r *Registry) Register(b Binding) error {
	if b.Output == "" || b.Handler == nil {
		return fmt.Errorf("callback binding needs an output and a handler")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bindings[b.Output]; exists {
		return fmt.Errorf("callback already bound to output %q", b.Output)
	}
	b.Inputs = slices.Clone(b.Inputs)
	r.bindings[b.Output] = b
	r.order = append(r.order, b.Output)
	return nil
}

// Dispatch runs the binding for output against in and returns the new
// figure. Inputs missing from in fail with ErrInvalidInput before the
// handler runs. A handler panic is recovered and returned as an error.
func (r *Registry) Dispatch(output string, in Inputs) (fig chart.Figure, err error) {
	r.mu.RLock()
	b, ok := r.bindings[output]
	r.mu.RUnlock()
	if !ok {
		return chart.Figure{}, fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}

	for _, id := range b.Inputs {
		if _, present := in[id]; !present {
			return chart.Figure{}, fmt.Errorf("%w: %s: missing value", ErrInvalidInput, id)
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			fig = chart.Figure{}
			err = fmt.Errorf("callback %s panicked: %v", output, rec)
		}
		if err != nil {
			slog.Error("callback failed", "output", output, "error", err)
		}
	}()

	slog.Debug("dispatching callback", "output", output, "inputs", len(in))
	return b.Handler(in)
}

// Bindings returns the registered bindings in registration order.
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Binding, 0, len(r.order))
	for _, o := range r.order {
		b := r.bindings[o]
		b.Inputs = slices.Clone(b.Inputs)
		out = append(out, b)
	}
	return out
}

// Outputs returns the bound output regions in registration order.
func (r *Registry) Outputs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Graph returns the input-to-output dependency graph.
func (r *Registry) Graph() []Dependency {
	bindings := r.Bindings()
	out := make([]Dependency, len(bindings))
	for i, b := range bindings {
		out[i] = Dependency{Output: b.Output, Inputs: b.Inputs}
	}
	return out
}

// Triggered returns the outputs recomputed when the control input changes.
func (r *Registry) Triggered(input string) []string {
	var out []string
	for _, b := range r.Bindings() {
		if slices.Contains(b.Inputs, input) {
			out = append(out, b.Output)
		}
	}
	return out
}
