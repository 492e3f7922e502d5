// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the dashboard panels and callbacks as read-only tools.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ingham-physics/hnviz/internal/callback"
	"github.com/ingham-physics/hnviz/internal/cohort"
)

// Source is the loaded dataset the tools answer from. It is read-only once
// the server starts.
type Source struct {
	Dataset  string
	Table    *cohort.Table
	Controls callback.Controls
	Registry *callback.Registry
}

// NewSource wires the dashboard callbacks for t with the given settings.
func NewSource(dataset string, t *cohort.Table, s callback.Settings) (*Source, error) {
	c := callback.NewControls(t, s)
	r, err := callback.Dashboard(t, c)
	if err != nil {
		return nil, fmt.Errorf("wire callbacks: %w", err)
	}
	return &Source{Dataset: dataset, Table: t, Controls: c, Registry: r}, nil
}

// New creates a new MCP server with the hnviz tools registered.
func New(version string, src *Source) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "hnviz",
		Title:   "HNViz: Head and Neck Cancer Cohort Dashboard",
		Version: version,
	}, nil)

	registerTools(server, &tools{src: src})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, src *Source, transport mcp.Transport) error {
	return New(version, src).Run(ctx, transport)
}
