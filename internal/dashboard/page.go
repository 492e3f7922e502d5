// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

// Package dashboard assembles the dashboard page and serves it together with
// the callback endpoint.
package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/ingham-physics/hnviz/internal/callback"
	"github.com/ingham-physics/hnviz/internal/chart"
	"github.com/ingham-physics/hnviz/internal/cohort"
)

// Title is the page heading.
const Title = "Data Visualisation of Ingham Head and Neck Cancer dataset"

// HeaderColor is the heading background.
const HeaderColor = "#6092cd"

// Rows is the card layout, top to bottom. Panels in the same row share it
// equally.
var Rows = [][]string{
	{chart.IDStageSurvival},
	{chart.IDSurvivalByAge},
	{chart.IDFollowUpBySite, chart.IDCauseOfDeath},
	{chart.IDDemographic},
	{chart.IDAgeRT},
	{chart.IDConcurrentChemo},
	{chart.IDBMIDifference},
}

// PageOptions control how the page is rendered.
type PageOptions struct {
	// Static renders a self-contained page with the controls disabled, for
	// export without a server.
	Static bool

	// Debug shows callback error details under the affected chart.
	Debug bool
}

// Page is the dashboard, rendered once.
type Page struct {
	Figures  map[string]chart.Figure
	Controls callback.Controls
	Graph    []callback.Dependency

	html []byte
}

type cardView struct {
	ID        string
	Dropdowns []callback.Dropdown
	Slider    *callback.Slider
}

type pageData struct {
	Title       string
	HeaderColor string
	Rows        [][]cardView
	Figures     map[string]chart.Figure
	Graph       []callback.Dependency
	Static      bool
	Debug       bool
}

var (
	pageTmplOnce sync.Once
	pageTmpl     *template.Template
)

// NewPage builds every panel's initial figure and renders the page. Static
// panels are built from the full table; bound panels come from dispatching
// their bindings with the controls' default values.
func NewPage(t *cohort.Table, c callback.Controls, r *callback.Registry, opts PageOptions) (*Page, error) {
	figs, err := callback.Initial(r, c)
	if err != nil {
		return nil, err
	}
	for _, row := range Rows {
		for _, id := range row {
			if _, ok := figs[id]; ok {
				continue
			}
			p := chart.Get(id)
			if p == nil {
				return nil, fmt.Errorf("page layout names unknown panel %q", id)
			}
			figs[id] = p.Build(t)
		}
	}

	p := &Page{Figures: figs, Controls: c, Graph: r.Graph()}

	pageTmplOnce.Do(func() {
		pageTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // figure data is generated, not user input
			},
		}).Parse(pageTemplate))
	})

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, p.data(opts)); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	p.html = buf.Bytes()
	return p, nil
}

func (p *Page) data(opts PageOptions) pageData {
	rows := make([][]cardView, len(Rows))
	for i, row := range Rows {
		for _, id := range row {
			rows[i] = append(rows[i], p.card(id))
		}
	}
	return pageData{
		Title:       Title,
		HeaderColor: HeaderColor,
		Rows:        rows,
		Figures:     p.Figures,
		Graph:       p.Graph,
		Static:      opts.Static,
		Debug:       opts.Debug,
	}
}

func (p *Page) card(id string) cardView {
	v := cardView{ID: id}
	switch id {
	case chart.IDDemographic:
		v.Dropdowns = []callback.Dropdown{p.Controls.Gender, p.Controls.Dimension}
	case chart.IDAgeRT:
		v.Slider = &p.Controls.RTAge
	case chart.IDBMIDifference:
		v.Slider = &p.Controls.BMIAge
	}
	return v
}

// HTML returns the rendered page.
func (p *Page) HTML() []byte { return p.html }

// WriteTo writes the rendered page to w.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.html)
	return int64(n), err
}
