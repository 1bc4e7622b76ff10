package chart

import "vizdash/internal/core/table"

// HistogramOptions extends Options with binning
type HistogramOptions struct {
	Options
	// MaxBins caps the bin count, zero uses the Vega-Lite default
	MaxBins int
	// Overlay draws the color groups over each other instead of stacking them
	Overlay bool
}

// Histogram builds a binned bar chart of a numeric column split by a categorical color channel
// an empty color draws a single series
func Histogram(t *table.Table, field, color string, opt HistogramOptions) (Spec, error) {
	var extra []string
	if color != "" {
		if _, err := t.CategoryCol(color); err != nil {
			return Spec{}, err
		}
		extra = append(extra, color)
	}
	vals, err := values(t, []string{field}, extra)
	if err != nil {
		return Spec{}, err
	}

	enc := &Encoding{
		X: &Channel{
			Field: field,
			Type:  Quantitative,
			Bin:   &Bin{MaxBins: opt.MaxBins},
			Title: AxisTitle(field),
		},
		Y: &Channel{Type: Quantitative, Aggregate: "count", Title: "Count"},
	}
	mark := &Mark{Type: "bar", Tooltip: true}
	if color != "" {
		enc.Color = &Channel{Field: color, Type: Nominal, Title: AxisTitle(color)}
		if opt.Overlay {
			enc.Y.Stack = false
			mark.Opacity = ptr(0.6)
		}
	}

	s := Spec{
		Title:    Describe(AxisTitle(field)+" distribution", len(vals), "rows"),
		Data:     &Data{Values: vals},
		Mark:     mark,
		Encoding: enc,
	}
	opt.apply(&s)
	return s, nil
}
