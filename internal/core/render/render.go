// Package render draws the scatter and histogram dashboards to PNG or SVG with go-chart
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"vizdash/internal/core/aggregate"
	"vizdash/internal/core/table"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is a raster or vector output format
type Format string

// Supported formats
const (
	// PNG is a raster image, the default
	PNG Format = "png"
	// SVG is a vector image
	SVG Format = "svg"
)

// ParseFormat accepts png or svg in any case, empty means png
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	default:
		return "", fmt.Errorf("render: unsupported format %q", s)
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == SVG {
		return chart.ContentTypeSVG
	}
	return chart.ContentTypePNG
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

// Options sizes and titles the output
type Options struct {
	Title  string
	Width  int
	Height int
}

const (
	defaultWidth  = 800
	defaultHeight = 400
)

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// pointStyle renders points only, no connecting line
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    3,
		DotColor:    col,
	}
}

// Scatter draws two numeric columns as points, rows missing either value are skipped
func Scatter(w io.Writer, t *table.Table, x, y string, f Format, opt Options) error {
	xc, err := t.NumberCol(x)
	if err != nil {
		return err
	}
	yc, err := t.NumberCol(y)
	if err != nil {
		return err
	}

	xs := make([]float64, 0, xc.Len())
	ys := make([]float64, 0, yc.Len())
	for i := 0; i < xc.Len(); i++ {
		xv, yv := xc.At(i), yc.At(i)
		if math.IsNaN(xv) || math.IsNaN(yv) {
			continue
		}
		xs = append(xs, xv)
		ys = append(ys, yv)
	}

	width, height := opt.size()
	ch := chart.Chart{
		Title:      opt.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: x, Range: padded(xs)},
		YAxis:      chart.YAxis{Name: y, Range: padded(ys)},
	}
	if len(xs) == 0 {
		ch.Series = []chart.Series{placeholder(ch.XAxis.Range, ch.YAxis.Range)}
	} else {
		ch.Series = []chart.Series{chart.ContinuousSeries{
			Name:    y,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.GetDefaultColor(0)),
		}}
	}
	if err := ch.Render(f.provider(), w); err != nil {
		return fmt.Errorf("render scatter: %w", err)
	}
	return nil
}

// Histogram draws precomputed bins as overlaid filled step outlines, one per split value
func Histogram(w io.Writer, h aggregate.Histogram, f Format, opt Options) error {
	width, height := opt.size()
	ch := chart.Chart{
		Title:      opt.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: h.Field},
		YAxis:      chart.YAxis{Name: "count", ValueFormatter: chart.IntValueFormatter},
	}

	maxCount := 0
	for _, s := range h.Series {
		for _, c := range s.Counts {
			maxCount = max(maxCount, c)
		}
	}
	ch.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: math.Max(1, float64(maxCount)*1.05)}

	if h.NumBins() == 0 || len(h.Series) == 0 {
		ch.XAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
		ch.Series = []chart.Series{placeholder(ch.XAxis.Range, ch.YAxis.Range)}
	} else {
		ch.XAxis.Range = &chart.ContinuousRange{Min: h.Edges[0], Max: h.Edges[len(h.Edges)-1]}
		for i, s := range h.Series {
			xs, ys := steps(h.Edges, s.Counts)
			col := chart.GetDefaultColor(i)
			name := s.Name
			if name == "" {
				name = h.Field
			}
			ch.Series = append(ch.Series, chart.ContinuousSeries{
				Name:    name,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: col,
					StrokeWidth: 1.5,
					FillColor:   col.WithAlpha(96),
				},
			})
		}
		if h.Split != "" {
			ch.Elements = []chart.Renderable{chart.Legend(&ch)}
		}
	}
	if err := ch.Render(f.provider(), w); err != nil {
		return fmt.Errorf("render histogram: %w", err)
	}
	return nil
}

// steps turns bin counts into a closed step outline starting and ending on zero
func steps(edges []float64, counts []int) (xs, ys []float64) {
	xs = make([]float64, 0, 2*len(counts)+2)
	ys = make([]float64, 0, 2*len(counts)+2)
	xs, ys = append(xs, edges[0]), append(ys, 0)
	for i, c := range counts {
		xs = append(xs, edges[i], edges[i+1])
		ys = append(ys, float64(c), float64(c))
	}
	xs, ys = append(xs, edges[len(counts)]), append(ys, 0)
	return xs, ys
}

// padded returns a range covering vs that never collapses to zero width
func padded(vs []float64) *chart.ContinuousRange {
	if len(vs) == 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(1, math.Abs(lo)*0.05)
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// placeholder is an invisible series that lets go-chart draw empty axes
func placeholder(xr, yr chart.Range) chart.Series {
	return chart.ContinuousSeries{
		XValues: []float64{xr.GetMin(), xr.GetMax()},
		YValues: []float64{yr.GetMin(), yr.GetMin()},
		Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: chart.Disabled},
	}
}
