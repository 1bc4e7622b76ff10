// Package chart maps filtered tables to Vega-Lite v5 chart specifications
//
// Builders are pure: the same view and options always produce the same spec
// Inline data only carries the fields the encoding reads
package chart

import (
	"fmt"
	"math"
	"strings"

	"vizdash/internal/core/table"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SchemaURL is the Vega-Lite schema every spec declares
const SchemaURL = "https://vega.github.io/schema/vega-lite/v5.json"

// Spec is the subset of a Vega-Lite top level or layer spec the builders emit
type Spec struct {
	Schema     string      `json:"$schema,omitempty"`
	Title      string      `json:"title,omitempty"`
	Width      any         `json:"width,omitempty"`
	Height     any         `json:"height,omitempty"`
	Data       *Data       `json:"data,omitempty"`
	Transform  []Transform `json:"transform,omitempty"`
	Projection *Projection `json:"projection,omitempty"`
	Mark       *Mark       `json:"mark,omitempty"`
	Encoding   *Encoding   `json:"encoding,omitempty"`
	Layer      []Spec      `json:"layer,omitempty"`
}

// Data is either inline values or a URL with a format
type Data struct {
	Values []map[string]any `json:"values,omitempty"`
	URL    string           `json:"url,omitempty"`
	Format *Format          `json:"format,omitempty"`
}

// Format describes how a URL data source is parsed
type Format struct {
	Type    string `json:"type"`
	Feature string `json:"feature,omitempty"`
}

// Mark is a mark definition
type Mark struct {
	Type    string   `json:"type"`
	Filled  bool     `json:"filled,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Color   string   `json:"color,omitempty"`
	Fill    string   `json:"fill,omitempty"`
	Stroke  string   `json:"stroke,omitempty"`
	Tooltip bool     `json:"tooltip,omitempty"`
}

// Encoding maps fields to visual channels
type Encoding struct {
	X       *Channel  `json:"x,omitempty"`
	Y       *Channel  `json:"y,omitempty"`
	Color   *Channel  `json:"color,omitempty"`
	Shape   *Channel  `json:"shape,omitempty"`
	Tooltip []Channel `json:"tooltip,omitempty"`
}

// Channel is one field definition
type Channel struct {
	Field     string `json:"field,omitempty"`
	Type      string `json:"type"`
	Aggregate string `json:"aggregate,omitempty"`
	Bin       *Bin   `json:"bin,omitempty"`
	Title     string `json:"title,omitempty"`
	Stack     any    `json:"stack,omitempty"`
	Scale     *Scale `json:"scale,omitempty"`
}

// Bin configures channel binning
type Bin struct {
	MaxBins int     `json:"maxbins,omitempty"`
	Step    float64 `json:"step,omitempty"`
}

// Scale configures a channel scale
type Scale struct {
	Scheme string `json:"scheme,omitempty"`
	Zero   *bool  `json:"zero,omitempty"`
}

// Transform is a lookup transform, the only one the builders need
type Transform struct {
	Lookup string      `json:"lookup"`
	From   *LookupData `json:"from"`
	As     string      `json:"as,omitempty"`
}

// LookupData is the secondary source of a lookup transform
type LookupData struct {
	Data   Data     `json:"data"`
	Key    string   `json:"key"`
	Fields []string `json:"fields,omitempty"`
}

// Projection sets the map projection of geoshape marks
type Projection struct {
	Type string `json:"type"`
}

// Channel types
const (
	Quantitative = "quantitative"
	Nominal      = "nominal"
	Ordinal      = "ordinal"
)

// Options are shared across builders
type Options struct {
	// Title overrides the generated chart title
	Title string
	// Width and Height in pixels, zero lets Vega pick
	Width  int
	Height int
	// Tooltip adds extra fields to the tooltip channel and the inline data
	Tooltip []string
}

func (o Options) apply(s *Spec) {
	s.Schema = SchemaURL
	if o.Title != "" {
		s.Title = o.Title
	}
	if o.Width > 0 {
		s.Width = o.Width
	}
	if o.Height > 0 {
		s.Height = o.Height
	}
}

// AxisTitle turns a column name into a display title
func AxisTitle(field string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(field, "_", " "))
}

// Count formats n with English digit grouping
func Count(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// values collects inline rows for the named fields
// rows where any of the required numeric fields is missing are dropped
func values(t *table.Table, required []string, fields []string) ([]map[string]any, error) {
	nums := make([]table.NumberCol, len(required))
	for i, f := range required {
		c, err := t.NumberCol(f)
		if err != nil {
			return nil, err
		}
		nums[i] = c
	}
	names := dedupe(append(append([]string(nil), required...), fields...))
	all, err := t.Records(names...)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(all))
rows:
	for i, r := range all {
		for _, c := range nums {
			if math.IsNaN(c.At(i)) {
				continue rows
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func tooltip(t *table.Table, fields []string) ([]Channel, error) {
	out := make([]Channel, 0, len(fields))
	for _, f := range fields {
		k, err := t.Kind(f)
		if err != nil {
			return nil, err
		}
		typ := Nominal
		if k == table.Number {
			typ = Quantitative
		}
		out = append(out, Channel{Field: f, Type: typ, Title: AxisTitle(f)})
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }

// Describe renders a one line summary used as the default title
func Describe(what string, n int, unit string) string {
	return fmt.Sprintf("%s (%s %s)", what, Count(n), unit)
}
