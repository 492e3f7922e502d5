// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

// Package chart builds renderer-independent chart specifications from the
// patient table. Every builder is a pure function of its inputs.
package chart

// TraceType names the mark used by a trace.
type TraceType string

// Supported trace types.
const (
	TraceBar     TraceType = "bar"
	TraceScatter TraceType = "scatter"
	TracePie     TraceType = "pie"
)

// Bar orientations.
const (
	Vertical   = "v"
	Horizontal = "h"
)

// Figure is a complete chart: traces plus layout. It serializes to the JSON
// consumed by the page renderer.
type Figure struct {
	ID     string  `json:"id"`
	Traces []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one data series.
//
// Bars and pies use Labels/Values. Scatters use X/Y, with optional Sizes
// scaled so the largest value is drawn at SizeMax pixels.
type Trace struct {
	Type        TraceType `json:"type"`
	Name        string    `json:"name,omitempty"`
	Title       string    `json:"title,omitempty"`
	Labels      []string  `json:"labels,omitempty"`
	Values      []float64 `json:"values,omitempty"`
	X           []float64 `json:"x,omitempty"`
	Y           []float64 `json:"y,omitempty"`
	Sizes       []float64 `json:"sizes,omitempty"`
	SizeMax     float64   `json:"sizemax,omitempty"`
	Orientation string    `json:"orientation,omitempty"`
	Color       string    `json:"color,omitempty"`
	Colors      []string  `json:"colors,omitempty"`
	Hole        float64   `json:"hole,omitempty"`
	Width       float64   `json:"width,omitempty"`
	Domain      *Domain   `json:"domain,omitempty"`
	HoverInfo   string    `json:"hoverinfo,omitempty"`
}

// Domain is the horizontal fraction of the plot area a pie occupies.
type Domain struct {
	X [2]float64 `json:"x"`
}

// Layout holds figure-level presentation settings.
type Layout struct {
	Title  string  `json:"title"`
	TitleX float64 `json:"title_x"`
	Height int     `json:"height,omitempty"`
	XAxis  Axis    `json:"xaxis"`
	YAxis  Axis    `json:"yaxis"`
	Legend *Legend `json:"legend,omitempty"`
}

// Axis describes one axis.
type Axis struct {
	Title string `json:"title,omitempty"`
	Log   bool   `json:"log,omitempty"`
}

// Legend places the legend. Zero values leave placement to the renderer.
type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	XAnchor     string  `json:"xanchor,omitempty"`
	YAnchor     string  `json:"yanchor,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	TraceOrder  string  `json:"traceorder,omitempty"`
}

// Points returns the number of plotted points across scatter traces.
func (f Figure) Points() int {
	n := 0
	for _, tr := range f.Traces {
		if tr.Type == TraceScatter {
			n += len(tr.X)
		}
	}
	return n
}

// Empty reports whether no trace carries data.
func (f Figure) Empty() bool {
	for _, tr := range f.Traces {
		if len(tr.Values) > 0 || len(tr.X) > 0 {
			return false
		}
	}
	return true
}

// topRightLegend is the horizontal legend shared by the multi-donut panels.
func topRightLegend() *Legend {
	return &Legend{Orientation: Horizontal, YAnchor: "bottom", Y: 1.02, XAnchor: "right", X: 1}
}

// columnDomain splits the plot area into n equal columns and returns column i.
func columnDomain(i, n int) *Domain {
	w := 1 / float64(n)
	return &Domain{X: [2]float64{float64(i) * w, float64(i+1) * w}}
}
