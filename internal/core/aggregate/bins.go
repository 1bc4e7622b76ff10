package aggregate

import (
	"errors"
	"math"
	"sort"

	"vizdash/internal/core/table"
)

// DefaultMaxBins matches the Vega-Lite bin default
const DefaultMaxBins = 10

// BinOptions tunes Bins
type BinOptions struct {
	// MaxBins caps the number of bins, zero means DefaultMaxBins
	MaxBins int
	// Step forces a bin width, zero picks a nice width from the extent
	Step float64
}

// Series is one split value and its count per bin
type Series struct {
	Name   string `json:"name"`
	Counts []int  `json:"counts"`
}

// Histogram holds bin edges and per split counts
// bin i covers [Edges[i], Edges[i+1]), the last bin also includes its upper edge
type Histogram struct {
	Field  string    `json:"field"`
	Split  string    `json:"split,omitempty"`
	Edges  []float64 `json:"edges"`
	Series []Series  `json:"series"`
}

// NumBins returns the number of bins
func (h Histogram) NumBins() int {
	if len(h.Edges) < 2 {
		return 0
	}
	return len(h.Edges) - 1
}

// Total returns the number of binned values
func (h Histogram) Total() int {
	n := 0
	for _, s := range h.Series {
		for _, c := range s.Counts {
			n += c
		}
	}
	return n
}

// Bins buckets a numeric column, optionally split by a categorical column
// missing values are skipped, series are ordered by split value
func Bins(t *table.Table, field, split string, opt BinOptions) (Histogram, error) {
	h := Histogram{Field: field, Split: split}
	col, err := t.NumberCol(field)
	if err != nil {
		return h, err
	}
	var sc table.CategoryCol
	if split != "" {
		if sc, err = t.CategoryCol(split); err != nil {
			return h, err
		}
	}
	if opt.Step < 0 || math.IsNaN(opt.Step) || math.IsInf(opt.Step, 0) {
		return h, errors.New("aggregate: bin step must be a positive number")
	}

	lo, hi, ok, _ := t.Extent(field)
	if !ok {
		h.Series = []Series{}
		return h, nil
	}
	h.Edges = edges(lo, hi, opt)
	nb := len(h.Edges) - 1

	bySplit := make(map[string][]int)
	for i := 0; i < col.Len(); i++ {
		v := col.At(i)
		if math.IsNaN(v) {
			continue
		}
		name := ""
		if split != "" {
			name = sc.At(i)
		}
		counts, ok := bySplit[name]
		if !ok {
			counts = make([]int, nb)
			bySplit[name] = counts
		}
		counts[binOf(h.Edges, v)]++
	}

	names := make([]string, 0, len(bySplit))
	for n := range bySplit {
		names = append(names, n)
	}
	sort.Strings(names)
	h.Series = make([]Series, len(names))
	for i, n := range names {
		h.Series[i] = Series{Name: n, Counts: bySplit[n]}
	}
	return h, nil
}

func binOf(edges []float64, v float64) int {
	// first edge strictly greater than v, minus one
	i := sort.SearchFloat64s(edges, v)
	if i < len(edges) && edges[i] == v {
		i++
	}
	b := i - 1
	if b >= len(edges)-1 {
		b = len(edges) - 2
	}
	if b < 0 {
		b = 0
	}
	return b
}

func edges(lo, hi float64, opt BinOptions) []float64 {
	maxBins := opt.MaxBins
	if maxBins <= 0 {
		maxBins = DefaultMaxBins
	}
	step := opt.Step
	if step == 0 {
		step = NiceStep(hi-lo, maxBins)
	}
	start, n := align(lo, hi, step)
	// aligning to the step can add a bin, widen until the cap holds
	for opt.Step == 0 && n > maxBins {
		step = nextNiceStep(step)
		start, n = align(lo, hi, step)
	}
	out := make([]float64, n+1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// align snaps [lo, hi] outward to multiples of step and returns the first edge and bin count
func align(lo, hi, step float64) (float64, int) {
	start := math.Floor(lo/step) * step
	stop := math.Ceil(hi/step) * step
	if stop <= start {
		stop = start + step
	}
	return start, int(math.Round((stop - start) / step))
}

// nextNiceStep returns the 1, 2 or 5 times power of ten width after step
func nextNiceStep(step float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(step)))
	if step/mag >= 9.5 {
		mag *= 10
	}
	switch m := step / mag; {
	case m < 1.5:
		return 2 * mag
	case m < 3.5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// NiceStep picks a 1, 2 or 5 times power of ten width giving at most maxBins bins over span
func NiceStep(span float64, maxBins int) float64 {
	if span <= 0 || maxBins <= 0 {
		return 1
	}
	raw := span / float64(maxBins)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if s := m * mag; s >= raw {
			return s
		}
	}
	return 10 * mag
}
