// Package table holds the immutable, column oriented record table the dashboards filter and chart
//
// A Table is a schema, shared column storage, and a selection vector of storage row ids
// Views produced by Select share storage with their parent so filtering never copies cells
package table

import (
	"fmt"
	"math"
	"sort"
)

// Kind is the type of a column
type Kind uint8

const (
	// Unknown is the zero kind and is never valid in a schema
	Unknown Kind = iota
	// Number columns hold float64 values, NaN marks a missing cell
	Number
	// Category columns hold strings stored verbatim
	Category
)

// String returns the lowercase kind name
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Category:
		return "category"
	default:
		return "unknown"
	}
}

// Column describes a named typed column
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"-"`
}

// Schema names a table and lists its columns in order
type Schema struct {
	Name    string
	Columns []Column
}

// Index returns the position of a column by name
func (s Schema) Index(name string) (int, bool) {
	for i, c := range s.Columns {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Names returns the column names in order
func (s Schema) Names() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Name
	}
	return out
}

// column is the shared storage for one column, exactly one slice is set
type column struct {
	nums []float64
	cats []string
}

// Table is an immutable view over column storage
type Table struct {
	schema Schema
	cols   []column
	rows   []int
}

// Len returns the number of rows in the view
func (t *Table) Len() int { return len(t.rows) }

// Schema returns the table schema
func (t *Table) Schema() Schema { return t.schema }

// Name returns the schema name
func (t *Table) Name() string { return t.schema.Name }

// RowIDs returns a copy of the storage ids of the rows in the view, in view order
func (t *Table) RowIDs() []int {
	return append([]int(nil), t.rows...)
}

// column resolves a column by name and checks its kind
func (t *Table) column(name string, want Kind) (int, error) {
	i, ok := t.schema.Index(name)
	if !ok {
		return -1, &ColumnError{Table: t.schema.Name, Column: name}
	}
	if got := t.schema.Columns[i].Kind; want != Unknown && got != want {
		return -1, &ColumnError{Table: t.schema.Name, Column: name, Want: want, Got: got}
	}
	return i, nil
}

// Kind returns the kind of a named column
func (t *Table) Kind(name string) (Kind, error) {
	i, err := t.column(name, Unknown)
	if err != nil {
		return Unknown, err
	}
	return t.schema.Columns[i].Kind, nil
}

// NumberCol returns a reader over a numeric column
func (t *Table) NumberCol(name string) (NumberCol, error) {
	i, err := t.column(name, Number)
	if err != nil {
		return NumberCol{}, err
	}
	return NumberCol{vals: t.cols[i].nums, rows: t.rows}, nil
}

// CategoryCol returns a reader over a categorical column
func (t *Table) CategoryCol(name string) (CategoryCol, error) {
	i, err := t.column(name, Category)
	if err != nil {
		return CategoryCol{}, err
	}
	return CategoryCol{vals: t.cols[i].cats, rows: t.rows}, nil
}

// Value returns the cell at view row i as float64 or string
func (t *Table) Value(name string, i int) (any, error) {
	c, err := t.column(name, Unknown)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(t.rows) {
		return nil, fmt.Errorf("table %s: row %d out of range [0,%d)", t.schema.Name, i, len(t.rows))
	}
	id := t.rows[i]
	if t.schema.Columns[c].Kind == Number {
		return t.cols[c].nums[id], nil
	}
	return t.cols[c].cats[id], nil
}

// Select returns a view over the given view positions, in the given order
// positions are relative to t, not to storage
func (t *Table) Select(positions []int) *Table {
	rows := make([]int, len(positions))
	for k, p := range positions {
		rows[k] = t.rows[p]
	}
	return &Table{schema: t.schema, cols: t.cols, rows: rows}
}

// Head returns a view over the first n rows
func (t *Table) Head(n int) *Table {
	if n < 0 || n >= len(t.rows) {
		return t
	}
	return &Table{schema: t.schema, cols: t.cols, rows: t.rows[:n:n]}
}

// Distinct returns the sorted distinct values of a categorical column
func (t *Table) Distinct(name string) ([]string, error) {
	col, err := t.CategoryCol(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for i := 0; i < col.Len(); i++ {
		seen[col.At(i)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

// Extent returns the min and max of a numeric column ignoring NaN
// ok is false when the view has no non missing value
func (t *Table) Extent(name string) (lo, hi float64, ok bool, err error) {
	col, err := t.NumberCol(name)
	if err != nil {
		return 0, 0, false, err
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 0; i < col.Len(); i++ {
		v := col.At(i)
		if math.IsNaN(v) {
			continue
		}
		ok = true
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if !ok {
		return 0, 0, false, nil
	}
	return lo, hi, true, nil
}

// Records returns the view as rows of field -> value for the named columns
// missing numeric cells become nil so they encode as JSON null
func (t *Table) Records(names ...string) ([]map[string]any, error) {
	if len(names) == 0 {
		names = t.schema.Names()
	}
	idx := make([]int, len(names))
	for k, n := range names {
		c, err := t.column(n, Unknown)
		if err != nil {
			return nil, err
		}
		idx[k] = c
	}
	out := make([]map[string]any, len(t.rows))
	for r, id := range t.rows {
		m := make(map[string]any, len(names))
		for k, c := range idx {
			if t.schema.Columns[c].Kind == Number {
				v := t.cols[c].nums[id]
				if math.IsNaN(v) {
					m[names[k]] = nil
				} else {
					m[names[k]] = v
				}
				continue
			}
			m[names[k]] = t.cols[c].cats[id]
		}
		out[r] = m
	}
	return out, nil
}

// NumberCol reads a numeric column through a view
type NumberCol struct {
	vals []float64
	rows []int
}

// Len returns the number of rows
func (c NumberCol) Len() int { return len(c.rows) }

// At returns the value at view row i
func (c NumberCol) At(i int) float64 { return c.vals[c.rows[i]] }

// CategoryCol reads a categorical column through a view
type CategoryCol struct {
	vals []string
	rows []int
}

// Len returns the number of rows
func (c CategoryCol) Len() int { return len(c.rows) }

// At returns the value at view row i
func (c CategoryCol) At(i int) string { return c.vals[c.rows[i]] }

// ColumnError reports a missing column or a kind mismatch
type ColumnError struct {
	Table  string
	Column string
	Want   Kind
	Got    Kind
}

func (e *ColumnError) Error() string {
	if e.Want == Unknown {
		return fmt.Sprintf("table %s: unknown column %q", e.Table, e.Column)
	}
	return fmt.Sprintf("table %s: column %q is %s, want %s", e.Table, e.Column, e.Got, e.Want)
}
