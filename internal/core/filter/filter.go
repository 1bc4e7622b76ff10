// Package filter applies a conjunction of independent column constraints to a table
//
// Each constraint compiles to one row predicate against a specific table view
// Apply keeps the rows for which every predicate holds, in their original order
package filter

import (
	"fmt"
	"math"
	"strings"

	"vizdash/internal/core/table"

	"golang.org/x/text/cases"
)

// All is the sentinel selection meaning "no constraint"
const All = "All"

// Both is the season radio sentinel meaning "no constraint"
const Both = "Both"

// Predicate reports whether the row at view position i is kept
type Predicate func(i int) bool

// Constraint is one independent restriction on a single column
type Constraint interface {
	// Field returns the constrained column name
	Field() string
	// Compile resolves the column against t and returns its predicate
	// a nil predicate means the constraint keeps every row
	Compile(t *table.Table) (Predicate, error)
}

// Spec is an ordered conjunction of constraints
type Spec []Constraint

// Apply returns the view of t whose rows satisfy every constraint in spec
// the result shares storage with t and preserves row order
func Apply(t *table.Table, spec Spec) (*table.Table, error) {
	preds := make([]Predicate, 0, len(spec))
	for _, c := range spec {
		if c == nil {
			continue
		}
		p, err := c.Compile(t)
		if err != nil {
			return nil, err
		}
		if p != nil {
			preds = append(preds, p)
		}
	}
	if len(preds) == 0 {
		return t, nil
	}

	keep := make([]int, 0, t.Len())
rows:
	for i := 0; i < t.Len(); i++ {
		for _, p := range preds {
			if !p(i) {
				continue rows
			}
		}
		keep = append(keep, i)
	}
	return t.Select(keep), nil
}

// Range keeps rows whose numeric value lies within [Min, Max]
// a nil bound is unbounded, Exclusive makes both bounds strict
// missing cells never satisfy a bounded range
type Range struct {
	Column    string
	Min       *float64
	Max       *float64
	Exclusive bool
}

// Between returns an inclusive range constraint
func Between(column string, lo, hi float64) Range {
	return Range{Column: column, Min: &lo, Max: &hi}
}

// Open returns a range constraint with strict bounds on both ends
func Open(column string, lo, hi float64) Range {
	return Range{Column: column, Min: &lo, Max: &hi, Exclusive: true}
}

// Field implements Constraint
func (r Range) Field() string { return r.Column }

// Unbounded reports whether the range keeps every row
func (r Range) Unbounded() bool { return r.Min == nil && r.Max == nil }

// Compile implements Constraint
func (r Range) Compile(t *table.Table) (Predicate, error) {
	col, err := t.NumberCol(r.Column)
	if err != nil {
		return nil, err
	}
	if r.Unbounded() {
		return nil, nil
	}
	lo, hi := math.Inf(-1), math.Inf(1)
	if r.Min != nil {
		lo = *r.Min
	}
	if r.Max != nil {
		hi = *r.Max
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, fmt.Errorf("filter: range on %q has a NaN bound", r.Column)
	}
	if r.Exclusive {
		return func(i int) bool {
			v := col.At(i)
			return v > lo && v < hi
		}, nil
	}
	// NaN compares false both ways so missing cells drop out
	return func(i int) bool {
		v := col.At(i)
		return v >= lo && v <= hi
	}, nil
}

// String renders the range in interval notation
func (r Range) String() string {
	lb, rb := "[", "]"
	if r.Exclusive {
		lb, rb = "(", ")"
	}
	lo, hi := "-inf", "+inf"
	if r.Min != nil {
		lo = fmt.Sprint(*r.Min)
	}
	if r.Max != nil {
		hi = fmt.Sprint(*r.Max)
	}
	return fmt.Sprintf("%s in %s%s, %s%s", r.Column, lb, lo, hi, rb)
}

// OneOf keeps rows whose categorical value is in Values
// an empty Values, or any value matching a sentinel, keeps every row
type OneOf struct {
	Column string
	Values []string
	// Sentinels overrides the default {All} escape values, matched case insensitively
	Sentinels []string
}

// In returns a set membership constraint with the default All sentinel
func In(column string, values ...string) OneOf {
	return OneOf{Column: column, Values: values}
}

// Field implements Constraint
func (o OneOf) Field() string { return o.Column }

// IncludesAll reports whether the selection is the "no constraint" escape
func (o OneOf) IncludesAll() bool {
	if len(o.Values) == 0 {
		return true
	}
	sentinels := o.Sentinels
	if len(sentinels) == 0 {
		sentinels = []string{All}
	}
	for _, v := range o.Values {
		for _, s := range sentinels {
			if IsSentinel(v, s) {
				return true
			}
		}
	}
	return false
}

// Compile implements Constraint
func (o OneOf) Compile(t *table.Table) (Predicate, error) {
	col, err := t.CategoryCol(o.Column)
	if err != nil {
		return nil, err
	}
	if o.IncludesAll() {
		return nil, nil
	}
	if len(o.Values) == 1 {
		want := o.Values[0]
		return func(i int) bool { return col.At(i) == want }, nil
	}
	set := make(map[string]struct{}, len(o.Values))
	for _, v := range o.Values {
		set[v] = struct{}{}
	}
	return func(i int) bool {
		_, ok := set[col.At(i)]
		return ok
	}, nil
}

// String renders the selection
func (o OneOf) String() string {
	if o.IncludesAll() {
		return o.Column + " in *"
	}
	return fmt.Sprintf("%s in {%s}", o.Column, strings.Join(o.Values, ", "))
}

// IsSentinel compares a UI value with a sentinel ignoring case and surrounding space
func IsSentinel(v, sentinel string) bool {
	// a Caser is stateful and must not be shared across goroutines
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(v)) == fold.String(sentinel)
}
