package store

import (
	"context"
	"errors"
	"time"

	"vizdash/internal/platform/store/pg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pool is the part of *pgxpool.Pool the adapter uses
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// pgAdapter implements RowQuerier over a pool and reports every statement
// to the tracer when one is configured
type pgAdapter struct {
	pool   pool
	tracer pg.QueryTracer
	slowUS int64
}

func newPGAdapter(p *pg.PG) *pgAdapter {
	return &pgAdapter{pool: p.Pool, tracer: p.Tracer, slowUS: int64(p.SlowMs) * 1000}
}

var (
	_ RowQuerier = (*pgAdapter)(nil)
	_ Pinger     = (*pgAdapter)(nil)
)

func (a *pgAdapter) Ping(ctx context.Context) error {
	if a == nil || a.pool == nil {
		return errors.New("pg: nil adapter")
	}
	return a.pool.Ping(ctx)
}

func (a *pgAdapter) Close() error { a.pool.Close(); return nil }

func (a *pgAdapter) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	start := time.Now()
	ct, err := a.pool.Exec(ctx, sql, args...)
	a.emit(ctx, sql, args, start, int(ct.RowsAffected()), err)
	return tag{ct}, err
}

// Query traces on Close so the event covers the full scan and carries the row count
func (a *pgAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := a.pool.Query(ctx, sql, args...)
	if err != nil {
		a.emit(ctx, sql, args, start, 0, err)
		return nil, err
	}
	return &rows{r: rs, done: func(n int, err error) { a.emit(ctx, sql, args, start, n, err) }}, nil
}

func (a *pgAdapter) QueryRow(ctx context.Context, sql string, args ...any) Row {
	start := time.Now()
	r := a.pool.QueryRow(ctx, sql, args...)
	return row{r: r, after: func(err error) { a.emit(ctx, sql, args, start, 1, err) }}
}

func (a *pgAdapter) emit(ctx context.Context, sql string, args []any, start time.Time, n int, err error) {
	if a.tracer == nil {
		return
	}
	elapsedUS := time.Since(start).Microseconds()
	a.tracer.OnQuery(ctx, pg.QueryEvent{
		SQL:       sql,
		Args:      args,
		ElapsedUS: elapsedUS,
		Rows:      n,
		Err:       err,
		Slow:      a.slowUS > 0 && elapsedUS >= a.slowUS,
	})
}

type row struct {
	r     pgx.Row
	after func(error)
}

func (x row) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type rows struct {
	r      pgx.Rows
	n      int
	closed bool
	done   func(n int, err error)
}

func (x *rows) Next() bool {
	if x.r.Next() {
		x.n++
		return true
	}
	return false
}

func (x *rows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x *rows) Err() error            { return x.r.Err() }

func (x *rows) Close() {
	x.r.Close()
	if x.closed {
		return
	}
	x.closed = true
	if x.done != nil {
		x.done(x.n, x.r.Err())
	}
}

func (x *rows) Columns() []string {
	f := x.r.FieldDescriptions()
	out := make([]string, len(f))
	for i := range f {
		out[i] = f[i].Name
	}
	return out
}

type tag struct{ t pgconn.CommandTag }

func (t tag) String() string      { return t.t.String() }
func (t tag) RowsAffected() int64 { return t.t.RowsAffected() }
