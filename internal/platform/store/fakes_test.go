package store

import (
	"context"
	"errors"
	"reflect"
)

// memRows is an in memory Rows; Scan assigns by reflection like a driver would
type memRows struct {
	cols   []string
	data   [][]any
	i      int
	err    error
	closed bool
}

func (m *memRows) Next() bool {
	if m.i >= len(m.data) {
		return false
	}
	m.i++
	return true
}

func (m *memRows) Scan(dest ...any) error {
	if len(dest) != len(m.cols) {
		return errors.New("memRows: dest count mismatch")
	}
	for i, d := range dest {
		v := m.data[m.i-1][i]
		dv := reflect.ValueOf(d).Elem()
		if v == nil {
			dv.Set(reflect.Zero(dv.Type()))
			continue
		}
		dv.Set(reflect.ValueOf(v))
	}
	return nil
}

func (m *memRows) Err() error        { return m.err }
func (m *memRows) Close()            { m.closed = true }
func (m *memRows) Columns() []string { return m.cols }

// memQuerier answers every query with the same rows and records the sql
type memQuerier struct {
	rows    *memRows
	err     error
	lastSQL string
	args    []any
}

func (q *memQuerier) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	q.lastSQL, q.args = sql, args
	if q.err != nil {
		return nil, q.err
	}
	q.rows.i = 0
	return q.rows, nil
}
