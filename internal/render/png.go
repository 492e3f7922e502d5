// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ingham-physics/hnviz/internal/chart"
)

func init() {
	RegisterFormatter(NewPNGFormatter())
}

// Default image size in pixels. A figure's layout height overrides the
// default height.
const (
	DefaultWidth  = 900
	DefaultHeight = 500
)

// titleBand is the strip above composed pie images that holds the title.
const titleBand = 32

// PNGFormatter rasterizes figures with go-chart.
//
// Bars are always drawn vertically. Log axes are drawn as log10 of the
// value with tick labels converted back. Donut holes are not drawn.
type PNGFormatter struct {
	Width  int
	Height int
}

// Compile-time interface check.
var _ Formatter = (*PNGFormatter)(nil)

// NewPNGFormatter returns a PNGFormatter with the default size.
func NewPNGFormatter() *PNGFormatter {
	return &PNGFormatter{Width: DefaultWidth, Height: DefaultHeight}
}

// Name returns the format name.
func (f *PNGFormatter) Name() string { return "png" }

// Ext returns the file extension.
func (f *PNGFormatter) Ext() string { return "png" }

// Format encodes the figure image as PNG to w.
func (f *PNGFormatter) Format(fig chart.Figure, w io.Writer) error {
	if err := png.Encode(w, f.Image(fig)); err != nil {
		return fmt.Errorf("encode png %s: %w", fig.ID, err)
	}
	return nil
}

// Image renders fig. Figures without data, and figures go-chart cannot
// draw, produce a blank image carrying the title.
func (f *PNGFormatter) Image(fig chart.Figure) image.Image {
	width, height := f.size(fig)
	if fig.Empty() {
		return blank(width, height, fig.Layout.Title)
	}

	var (
		img image.Image
		err error
	)
	switch fig.Traces[0].Type {
	case chart.TracePie:
		img, err = pieImage(fig, width, height)
	case chart.TraceBar:
		img, err = barImage(fig, width, height)
	default:
		img, err = scatterImage(fig, width, height)
	}
	if err != nil {
		slog.Warn("chart render failed, writing blank image", "figure", fig.ID, "error", err)
		return blank(width, height, fig.Layout.Title)
	}
	return img
}

func (f *PNGFormatter) size(fig chart.Figure) (int, int) {
	w, h := f.Width, f.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	if fig.Layout.Height > 0 {
		h = fig.Layout.Height
	}
	return w, h
}

// renderer is satisfied by go-chart's chart types.
type renderer interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

func rasterize(r renderer) (image.Image, error) {
	var buf bytes.Buffer
	if err := r.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

func colorOf(c string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(chart.Hex(c), "#"))
}

func background() gochart.Style {
	return gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}
}

func barImage(fig chart.Figure, width, height int) (image.Image, error) {
	tr := fig.Traces[0]
	col := colorOf(tr.Color)
	if tr.Color == "" {
		col = colorOf(chart.SeriesColor(0))
	}

	bars := make([]gochart.Value, len(tr.Labels))
	for i, l := range tr.Labels {
		bars[i] = gochart.Value{
			Label: l,
			Value: tr.Values[i],
			Style: gochart.Style{FillColor: col, StrokeColor: col},
		}
	}

	share := tr.Width
	if share <= 0 {
		share = 0.8
	}
	slotWidth := float64(width-100) / float64(len(bars))
	bc := &gochart.BarChart{
		Title:      fig.Layout.Title,
		Width:      width,
		Height:     height,
		Background: background(),
		BarWidth:   int(slotWidth * share),
		BarSpacing: int(slotWidth * (1 - share)),
		YAxis:      gochart.YAxis{Name: valueAxisTitle(fig, tr)},
		Bars:       bars,
	}
	return rasterize(bc)
}

// valueAxisTitle returns the title of the axis carrying bar lengths, which
// for horizontal bars is the x axis.
func valueAxisTitle(fig chart.Figure, tr chart.Trace) string {
	if tr.Orientation == chart.Horizontal {
		return fig.Layout.XAxis.Title
	}
	return fig.Layout.YAxis.Title
}

func scatterImage(fig chart.Figure, width, height int) (image.Image, error) {
	logX := fig.Layout.XAxis.Log
	tx := func(v float64) float64 { return v }
	if logX {
		tx = math.Log10
	}

	xr, yr := newBounds(), newBounds()
	smax := 0.0
	for _, tr := range fig.Traces {
		for i := range tr.X {
			if logX && tr.X[i] <= 0 {
				continue
			}
			xr.add(tx(tr.X[i]))
			yr.add(tr.Y[i])
		}
		for _, s := range tr.Sizes {
			smax = math.Max(smax, s)
		}
	}
	if xr.empty() {
		return blank(width, height, fig.Layout.Title), nil
	}

	series := make([]gochart.Series, 0, len(fig.Traces))
	for i, tr := range fig.Traces {
		xs := make([]float64, 0, len(tr.X))
		ys := make([]float64, 0, len(tr.Y))
		var sizes []float64
		for j := range tr.X {
			if logX && tr.X[j] <= 0 {
				continue
			}
			xs = append(xs, tx(tr.X[j]))
			ys = append(ys, tr.Y[j])
			if tr.Sizes != nil {
				sizes = append(sizes, tr.Sizes[j])
			}
		}
		if len(xs) == 0 {
			continue
		}

		c := tr.Color
		if c == "" {
			c = chart.SeriesColor(i)
		}
		style := pointStyle(colorOf(c))
		if sizes != nil && smax > 0 {
			style.DotWidthProvider = dotWidths(sizes, smax, tr.SizeMax)
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    tr.Name,
			XValues: xs,
			YValues: ys,
			Style:   style,
		})
	}

	xAxis := gochart.XAxis{Name: fig.Layout.XAxis.Title, Range: xr.padded()}
	if logX {
		xAxis.ValueFormatter = pow10Formatter
	}
	ch := &gochart.Chart{
		Title:      fig.Layout.Title,
		Width:      width,
		Height:     height,
		Background: background(),
		XAxis:      xAxis,
		YAxis:      gochart.YAxis{Name: fig.Layout.YAxis.Title, Range: yr.padded()},
		Series:     series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(ch)}
	return rasterize(ch)
}

// pointStyle renders points only, without a connecting line.
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    4,
		DotColor:    col,
	}
}

// dotWidths scales marker radius by the square root of the size value so
// marker area is proportional to it, with the largest at sizeMax pixels
// across.
func dotWidths(sizes []float64, smax, sizeMax float64) gochart.SizeProvider {
	if sizeMax <= 0 {
		sizeMax = 20
	}
	return func(_, _ gochart.Range, index int, _, _ float64) float64 {
		if index < 0 || index >= len(sizes) {
			return 4
		}
		return math.Max(1, sizeMax/2*math.Sqrt(sizes[index]/smax))
	}
}

func pow10Formatter(v any) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(math.Pow(10, f), 'g', 3, 64)
}

// bounds tracks the extent of plotted values.
type bounds struct{ lo, hi float64 }

func newBounds() *bounds { return &bounds{lo: math.Inf(1), hi: math.Inf(-1)} }

func (b *bounds) add(v float64) {
	b.lo = math.Min(b.lo, v)
	b.hi = math.Max(b.hi, v)
}

func (b *bounds) empty() bool { return b.lo > b.hi }

// padded returns the range widened by 5% each side, or by 1 when all values
// coincide.
func (b *bounds) padded() *gochart.ContinuousRange {
	pad := (b.hi - b.lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return &gochart.ContinuousRange{Min: b.lo - pad, Max: b.hi + pad}
}

func pieImage(fig chart.Figure, width, height int) (image.Image, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	drawText(canvas, fig.Layout.Title, width/2, titleBand-10)

	for i, tr := range fig.Traces {
		dom := [2]float64{0, 1}
		if tr.Domain != nil {
			dom = tr.Domain.X
		}
		x0, x1 := int(dom[0]*float64(width)), int(dom[1]*float64(width))
		slot := image.Rect(x0, titleBand, x1, height)
		if slot.Dx() < 20 || slot.Dy() < 40 {
			continue
		}

		values := pieValues(tr)
		label := tr.Title
		if label == "" {
			label = tr.Name
		}
		if len(values) > 0 {
			pc := &gochart.PieChart{
				Width:  slot.Dx(),
				Height: slot.Dy() - 20,
				Values: values,
			}
			img, err := rasterize(pc)
			if err != nil {
				return nil, fmt.Errorf("trace %d: %w", i, err)
			}
			draw.Draw(canvas, slot, img, img.Bounds().Min, draw.Over)
		}
		drawText(canvas, label, (x0+x1)/2, height-6)
	}
	return canvas, nil
}

// pieValues returns the non-zero wedges of tr in go-chart form.
func pieValues(tr chart.Trace) []gochart.Value {
	var out []gochart.Value
	for j, l := range tr.Labels {
		if j >= len(tr.Values) || tr.Values[j] <= 0 {
			continue
		}
		c := chart.SeriesColor(j)
		if j < len(tr.Colors) {
			c = tr.Colors[j]
		}
		col := colorOf(c)
		out = append(out, gochart.Value{
			Label: fmt.Sprintf("%s (%g)", l, tr.Values[j]),
			Value: tr.Values[j],
			Style: gochart.Style{FillColor: col, StrokeColor: drawing.ColorWhite},
		})
	}
	return out
}

// drawText draws s centered on cx with its baseline at y.
func drawText(dst draw.Image, s string, cx, y int) {
	if strings.TrimSpace(s) == "" {
		return
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(color.Black), Face: basicfont.Face7x13}
	w := d.MeasureString(s).Ceil()
	d.Dot = fixed.P(cx-w/2, y)
	d.DrawString(s)
}

// blank is a white image with the title and a "No data" note.
func blank(w, h int, title string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	drawText(img, title, w/2, titleBand-10)
	drawText(img, "No data", w/2, h/2)
	return img
}
