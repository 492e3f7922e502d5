// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Shared color printers for report sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// ColorRate colors a percentage cell such as "62.5%": below 50 red, below 75
// yellow, otherwise green. Other values pass through.
func ColorRate(val string) string {
	f, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
	if err != nil {
		return val
	}
	switch {
	case f < 50:
		return colorRed.Sprint(val)
	case f < 75:
		return colorYellow.Sprint(val)
	default:
		return colorGreen.Sprint(val)
	}
}

// ColorStatus colors vital status labels.
func ColorStatus(val string) string {
	switch val {
	case "Dead":
		return colorRed.Sprint(val)
	case "Alive":
		return colorGreen.Sprint(val)
	default:
		return val
	}
}

// colorMissing colors a missing-cell count: 0 is green, >0 is yellow.
func colorMissing(n int) string {
	s := strconv.Itoa(n)
	if n == 0 {
		return colorGreen.Sprint(s)
	}
	return colorYellow.Sprint(s)
}
