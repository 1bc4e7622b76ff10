package store

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// Each streams every row to fn as values in column order
// pointer values are dereferenced and the slice is reused between rows
func Each(ctx context.Context, q Querier, fn func(vals []any) error, sql string, args ...any) error {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	var vals, ptrs []any
	for rows.Next() {
		if vals == nil {
			vals, ptrs = scanTargets(len(rows.Columns()))
		}
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		for i := range vals {
			vals[i] = deref(vals[i])
		}
		if err := fn(vals); err != nil {
			return err
		}
	}
	return rows.Err()
}

// StructsByName scans every row into T, matching columns to `db` tags or field names
// case insensitively; unmatched columns are dropped
func StructsByName[T any](ctx context.Context, q Querier, sql string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rt := reflect.TypeOf((*T)(nil)).Elem()
	var (
		out    []T
		fields []int
		vals   []any
		ptrs   []any
	)
	for rows.Next() {
		if fields == nil {
			fields = fieldsFor(rt, rows.Columns())
			vals, ptrs = scanTargets(len(fields))
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rv := reflect.New(rt).Elem()
		for i, f := range fields {
			if f >= 0 {
				assign(rv.Field(f), deref(vals[i]))
			}
		}
		out = append(out, rv.Interface().(T))
	}
	return out, rows.Err()
}

func scanTargets(n int) (vals, ptrs []any) {
	vals = make([]any, n)
	ptrs = make([]any, n)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	return vals, ptrs
}

// fieldsFor maps each column to a struct field index, -1 when no field matches
func fieldsFor(t reflect.Type, cols []string) []int {
	byName := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		key := f.Tag.Get("db")
		if key == "" || key == "-" {
			key = f.Name
		}
		byName[strings.ToLower(key)] = i
	}
	out := make([]int, len(cols))
	for i, c := range cols {
		idx, ok := byName[strings.ToLower(c)]
		if !ok {
			idx = -1
		}
		out[i] = idx
	}
	return out
}

// deref unwraps the pointer shapes drivers hand back for nullable columns
func deref(v any) any {
	switch x := v.(type) {
	case *string:
		if x == nil {
			return nil
		}
		return *x
	case *float64:
		if x == nil {
			return nil
		}
		return *x
	case *int64:
		if x == nil {
			return nil
		}
		return *x
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	default:
		return v
	}
}

func assign(dst reflect.Value, src any) {
	if src == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}
	sv := reflect.ValueOf(src)
	switch {
	case sv.Type().AssignableTo(dst.Type()):
		dst.Set(sv)
	case dst.Kind() == reflect.String:
		if b, ok := src.([]byte); ok {
			dst.SetString(string(b))
		}
	case sv.Kind() != reflect.String && sv.Type().ConvertibleTo(dst.Type()):
		dst.Set(sv.Convert(dst.Type()))
	}
}
