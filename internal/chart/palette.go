// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package chart

// Named colors used by the fixed two-wedge palettes.
const (
	ColorCrimson      = "crimson"
	ColorLightSkyBlue = "lightskyblue"
)

// qualitative is the default series palette, assigned in trace order.
var qualitative = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// SeriesColor returns the palette color for the i-th series.
func SeriesColor(i int) string {
	return qualitative[i%len(qualitative)]
}

// namedColors maps the CSS color names used in figures to hex.
var namedColors = map[string]string{
	ColorCrimson:      "#dc143c",
	ColorLightSkyBlue: "#87cefa",
}

// Hex resolves a color to #rrggbb. Hex input is returned unchanged.
func Hex(c string) string {
	if h, ok := namedColors[c]; ok {
		return h
	}
	return c
}
