package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Builder accumulates rows for a schema and freezes them into a Table
// a Builder is not safe for concurrent use
type Builder struct {
	schema Schema
	cols   []column
	n      int
	done   bool
}

// NewBuilder validates the schema and returns an empty builder
func NewBuilder(s Schema) (*Builder, error) {
	if len(s.Columns) == 0 {
		return nil, fmt.Errorf("table %s: schema has no columns", s.Name)
	}
	seen := make(map[string]struct{}, len(s.Columns))
	for _, c := range s.Columns {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("table %s: empty column name", s.Name)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("table %s: duplicate column %q", s.Name, c.Name)
		}
		if c.Kind != Number && c.Kind != Category {
			return nil, fmt.Errorf("table %s: column %q has no kind", s.Name, c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return &Builder{schema: s, cols: make([]column, len(s.Columns))}, nil
}

// Len returns the number of rows appended so far
func (b *Builder) Len() int { return b.n }

// AppendStrings appends one row of raw text cells in schema order
// numeric cells that are empty or NA are stored as NaN
func (b *Builder) AppendStrings(cells []string) error {
	if b.done {
		return errors.New("table: builder already frozen")
	}
	if len(cells) != len(b.schema.Columns) {
		return fmt.Errorf("table %s: row %d has %d cells, want %d", b.schema.Name, b.n+1, len(cells), len(b.schema.Columns))
	}
	nums := make([]float64, len(cells))
	for i, c := range b.schema.Columns {
		if c.Kind != Number {
			continue
		}
		v, err := ParseNumber(cells[i])
		if err != nil {
			return fmt.Errorf("table %s: row %d column %q: %w", b.schema.Name, b.n+1, c.Name, err)
		}
		nums[i] = v
	}
	for i, c := range b.schema.Columns {
		if c.Kind == Number {
			b.cols[i].nums = append(b.cols[i].nums, nums[i])
		} else {
			b.cols[i].cats = append(b.cols[i].cats, cells[i])
		}
	}
	b.n++
	return nil
}

// AppendValues appends one row of driver values in schema order
// accepted numeric inputs are any Go int or float type, numeric strings and nil
// categorical inputs are strings, byte slices, fmt.Stringers, numbers and nil
func (b *Builder) AppendValues(vals []any) error {
	if b.done {
		return errors.New("table: builder already frozen")
	}
	if len(vals) != len(b.schema.Columns) {
		return fmt.Errorf("table %s: row %d has %d values, want %d", b.schema.Name, b.n+1, len(vals), len(b.schema.Columns))
	}
	cells := make([]string, len(vals))
	nums := make([]float64, len(vals))
	for i, c := range b.schema.Columns {
		if c.Kind == Number {
			v, err := toNumber(vals[i])
			if err != nil {
				return fmt.Errorf("table %s: row %d column %q: %w", b.schema.Name, b.n+1, c.Name, err)
			}
			nums[i] = v
			continue
		}
		cells[i] = toCategory(vals[i])
	}
	for i, c := range b.schema.Columns {
		if c.Kind == Number {
			b.cols[i].nums = append(b.cols[i].nums, nums[i])
		} else {
			b.cols[i].cats = append(b.cols[i].cats, cells[i])
		}
	}
	b.n++
	return nil
}

// Build freezes the builder into a Table, the builder cannot be used afterwards
func (b *Builder) Build() *Table {
	b.done = true
	rows := make([]int, b.n)
	for i := range rows {
		rows[i] = i
	}
	for i, c := range b.schema.Columns {
		// keep every column addressable even when no rows were appended
		if c.Kind == Number && b.cols[i].nums == nil {
			b.cols[i].nums = []float64{}
		}
		if c.Kind == Category && b.cols[i].cats == nil {
			b.cols[i].cats = []string{}
		}
	}
	return &Table{schema: b.schema, cols: b.cols, rows: rows}
}

// ParseNumber parses a numeric cell, empty and NA (any case) are NaN
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func toNumber(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case *float64:
		if x == nil {
			return math.NaN(), nil
		}
		return *x, nil
	case *int64:
		if x == nil {
			return math.NaN(), nil
		}
		return float64(*x), nil
	case string:
		return ParseNumber(x)
	case []byte:
		return ParseNumber(string(x))
	default:
		return 0, fmt.Errorf("unsupported numeric value %T", v)
	}
}

func toCategory(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
