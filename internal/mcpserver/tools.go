// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ingham-physics/hnviz/internal/callback"
	"github.com/ingham-physics/hnviz/internal/chart"
	"github.com/ingham-physics/hnviz/internal/report"
	"github.com/ingham-physics/hnviz/internal/render"
)

// ListPanelsInput is the input schema for the list_panels tool.
type ListPanelsInput struct{}

// PanelInfo describes one panel in the list_panels result.
type PanelInfo struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Inputs      []string `json:"inputs,omitempty"`
}

// ListPanelsOutput is the structured list_panels result.
type ListPanelsOutput struct {
	Panels []PanelInfo `json:"panels"`
}

// GetChartInput is the input schema for the get_chart tool.
type GetChartInput struct {
	Panel     string    `json:"panel" jsonschema:"Panel ID as returned by list_panels (e.g. pie-chart)"`
	Sex       string    `json:"sex,omitempty" jsonschema:"Sex for the demographic panel: Female or Male (default: dashboard default)"`
	Dimension string    `json:"dimension,omitempty" jsonschema:"Diagnostic dimension for the demographic panel (default: Overall Survival Censor)"`
	AgeRange  []float64 `json:"age_range,omitempty" jsonschema:"Inclusive [low, high] age band for the age-filtered scatters"`
	Format    string    `json:"format,omitempty" jsonschema:"Output format: json or png (default: json)"`
}

// SummaryInput is the input schema for the cohort_summary tool.
type SummaryInput struct {
	Sections string `json:"sections,omitempty" jsonschema:"Comma-separated list of report sections to include (default: all)"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

type tools struct {
	src *Source
}

// registerTools adds all hnviz tools to the MCP server.
func registerTools(server *mcp.Server, tl *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_panels",
		Description: "List the dashboard chart panels with their IDs, descriptions, and the controls that recompute them.",
		Annotations: readOnly(),
	}, tl.handleListPanels)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_chart",
		Description: "Build one dashboard chart as figure JSON or a PNG image, optionally with the demographic selection or age band applied.",
		Annotations: readOnly(),
	}, tl.handleGetChart)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "cohort_summary",
		Description: "Summarize the cohort: size, sex split, survival by stage, primary sites, causes of death and treatment.",
		Annotations: readOnly(),
	}, tl.handleSummary)
}

func (tl *tools) handleListPanels(_ context.Context, _ *mcp.CallToolRequest, _ ListPanelsInput) (*mcp.CallToolResult, ListPanelsOutput, error) {
	inputs := make(map[string][]string)
	for _, b := range tl.src.Registry.Bindings() {
		inputs[b.Output] = b.Inputs
	}

	var out ListPanelsOutput
	for _, id := range chart.List() {
		p := chart.Get(id)
		out.Panels = append(out.Panels, PanelInfo{
			ID:          id,
			Description: p.Description(),
			Inputs:      inputs[id],
		})
	}
	return nil, out, nil
}

func (tl *tools) handleGetChart(_ context.Context, _ *mcp.CallToolRequest, input GetChartInput) (*mcp.CallToolResult, any, error) {
	format := "json"
	if input.Format != "" {
		format = strings.ToLower(input.Format)
	}
	formatter, err := render.GetFormatter(format)
	if err != nil {
		return nil, nil, err
	}

	fig, err := tl.figure(input)
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := formatter.Format(fig, &buf); err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}

	var content mcp.Content = &mcp.TextContent{Text: buf.String()}
	if format == "png" {
		content = &mcp.ImageContent{Data: buf.Bytes(), MIMEType: "image/png"}
	}
	return &mcp.CallToolResult{Content: []mcp.Content{content}}, nil, nil
}

// figure builds the requested panel. Bound panels go through the callback
// registry with the dashboard defaults for any input left unset.
func (tl *tools) figure(input GetChartInput) (chart.Figure, error) {
	if input.Panel == "" {
		return chart.Figure{}, fmt.Errorf("panel is required (available: %s)", strings.Join(chart.List(), ", "))
	}
	if !slices.Contains(tl.src.Registry.Outputs(), input.Panel) {
		p := chart.Get(input.Panel)
		if p == nil {
			return chart.Figure{}, fmt.Errorf("unknown panel %q (available: %s)", input.Panel, strings.Join(chart.List(), ", "))
		}
		return p.Build(tl.src.Table), nil
	}

	in := tl.src.Controls.Inputs()
	if input.Sex != "" {
		in[callback.InputGender] = input.Sex
	}
	if input.Dimension != "" {
		in[callback.InputDimension] = input.Dimension
	}
	if input.AgeRange != nil {
		in[callback.InputRTAge] = input.AgeRange
		in[callback.InputBMIAge] = input.AgeRange
	}
	return tl.src.Registry.Dispatch(input.Panel, in)
}

func (tl *tools) handleSummary(_ context.Context, _ *mcp.CallToolRequest, input SummaryInput) (*mcp.CallToolResult, any, error) {
	var sections []string
	if input.Sections != "" {
		sections = splitAndTrim(input.Sections)
		if len(report.ResolveSections(sections)) == 0 {
			return nil, nil, fmt.Errorf("no known sections in %q (available: %s)",
				input.Sections, strings.Join(report.List(), ", "))
		}
	}

	var buf bytes.Buffer
	if err := report.RenderJSON(tl.src.Table, tl.src.Dataset, sections, &buf); err != nil {
		return nil, nil, fmt.Errorf("summary failed: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
