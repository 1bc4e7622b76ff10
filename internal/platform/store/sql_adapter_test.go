package store

import (
	"context"
	"errors"
	"testing"

	"vizdash/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePgxRows struct {
	pgx.Rows
	names  []string
	data   [][]any
	i      int
	closed bool
}

func (f *fakePgxRows) Next() bool {
	if f.i >= len(f.data) {
		return false
	}
	f.i++
	return true
}

func (f *fakePgxRows) Scan(dest ...any) error {
	for i, d := range dest {
		*(d.(*any)) = f.data[f.i-1][i]
	}
	return nil
}

func (f *fakePgxRows) Err() error { return nil }
func (f *fakePgxRows) Close()     { f.closed = true }

func (f *fakePgxRows) FieldDescriptions() []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(f.names))
	for i, n := range f.names {
		out[i] = pgconn.FieldDescription{Name: n}
	}
	return out
}

type fakeRow struct{ err error }

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = 1
	return nil
}

type fakePool struct {
	rows    *fakePgxRows
	qerr    error
	pingErr error
	closed  bool
}

func (p *fakePool) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("INSERT 0 2"), nil
}

func (p *fakePool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	if p.qerr != nil {
		return nil, p.qerr
	}
	return p.rows, nil
}

func (p *fakePool) QueryRow(context.Context, string, ...any) pgx.Row { return fakeRow{} }
func (p *fakePool) Ping(context.Context) error                       { return p.pingErr }
func (p *fakePool) Close()                                           { p.closed = true }

type recTracer struct{ events []pg.QueryEvent }

func (r *recTracer) OnQuery(_ context.Context, ev pg.QueryEvent) { r.events = append(r.events, ev) }

func TestPGAdapter_QueryTracesOnClose(t *testing.T) {
	tr := &recTracer{}
	fp := &fakePool{rows: &fakePgxRows{names: []string{"origin", "distance"}, data: [][]any{{"SJC", 480.0}, {"LAX", 900.0}}}}
	a := &pgAdapter{pool: fp, tracer: tr}

	var got [][]any
	err := Each(context.Background(), a, func(v []any) error {
		got = append(got, append([]any(nil), v...))
		return nil
	}, "SELECT origin, distance FROM flights")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.True(t, fp.rows.closed)

	require.Len(t, tr.events, 1)
	assert.Equal(t, 2, tr.events[0].Rows)
	assert.Equal(t, "SELECT origin, distance FROM flights", tr.events[0].SQL)
	assert.False(t, tr.events[0].Slow)
}

func TestPGAdapter_QueryErrorTracedOnce(t *testing.T) {
	tr := &recTracer{}
	a := &pgAdapter{pool: &fakePool{qerr: errors.New("relation \"cars\" does not exist")}, tracer: tr}
	_, err := a.Query(context.Background(), "SELECT * FROM cars")
	require.Error(t, err)
	require.Len(t, tr.events, 1)
	assert.Error(t, tr.events[0].Err)
}

func TestPGAdapter_ExecQueryRowPingClose(t *testing.T) {
	tr := &recTracer{}
	fp := &fakePool{}
	a := &pgAdapter{pool: fp, tracer: tr, slowUS: 1}

	ct, err := a.Exec(context.Background(), "INSERT INTO flights VALUES ($1), ($2)", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), ct.RowsAffected())

	var one int
	require.NoError(t, a.QueryRow(context.Background(), "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
	assert.Len(t, tr.events, 2)

	assert.NoError(t, a.Ping(context.Background()))
	assert.NoError(t, a.Close())
	assert.True(t, fp.closed)

	var nilAdapter *pgAdapter
	assert.Error(t, nilAdapter.Ping(context.Background()))
}

func TestPGAdapter_NoTracer(t *testing.T) {
	fp := &fakePool{rows: &fakePgxRows{names: []string{"n"}, data: [][]any{{int64(1)}}}}
	a := &pgAdapter{pool: fp}
	type one struct {
		N int64 `db:"n"`
	}
	got, err := StructsByName[one](context.Background(), a, "SELECT 1 AS n")
	require.NoError(t, err)
	assert.Equal(t, []one{{N: 1}}, got)
}
