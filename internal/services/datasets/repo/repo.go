// Package repo reads dataset tables out of Postgres and ClickHouse
package repo

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"vizdash/internal/core/table"
	"vizdash/internal/modkit/repokit"
	perr "vizdash/internal/platform/errors"
	"vizdash/internal/platform/store"

	"github.com/jackc/pgx/v5"
)

// Dialect selects identifier quoting, casts and the catalog query
type Dialect uint8

// Supported dialects
const (
	Postgres Dialect = iota
	ClickHouse
)

func (d Dialect) String() string {
	if d == ClickHouse {
		return "ch"
	}
	return "pg"
}

// Storage loads a whole table (up to limit rows) shaped by schema
type Storage interface {
	Load(ctx context.Context, s table.Schema, name string, limit int) (*table.Table, error)
}

type (
	sqlRepo struct {
		q repokit.Queryer
		d Dialect
	}
	binder struct{ d Dialect }
)

// New returns a binder for the given dialect
func New(d Dialect) repokit.Binder[Storage] { return binder{d: d} }

// Bind implements repokit.Binder
func (b binder) Bind(q repokit.Queryer) Storage { return &sqlRepo{q: q, d: b.d} }

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

type columnRow struct {
	Name string `db:"column_name"`
}

// Load implements Storage
func (r *sqlRepo) Load(ctx context.Context, s table.Schema, name string, limit int) (*table.Table, error) {
	if !identRe.MatchString(name) {
		return nil, perr.InvalidArgf("%s table %q: want [schema.]table", r.d, name)
	}
	ns, tbl, _ := strings.Cut(name, ".")
	if tbl == "" {
		ns, tbl = "", ns
	}

	cols, err := r.columns(ctx, ns, tbl)
	if err != nil {
		return nil, r.wrap(err, "list columns of "+name)
	}
	if len(cols) == 0 {
		return nil, perr.NotFoundf("%s table %q not found", r.d, name)
	}

	actual := make(map[string]string, len(cols))
	for _, c := range cols {
		actual[strings.ToLower(c.Name)] = c.Name
	}
	exprs := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		col, ok := actual[strings.ToLower(c.Name)]
		if !ok {
			return nil, perr.WithField(perr.Newf(perr.ErrorCodeLoad, "%s table %q has no column %q", r.d, name, c.Name), c.Name)
		}
		exprs[i] = r.cast(col, c.Kind)
	}

	sql := fmt.Sprintf("SELECT %s FROM %s", strings.Join(exprs, ", "), r.quoteTable(ns, tbl))
	if limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", limit)
	}

	b, err := table.NewBuilder(s)
	if err != nil {
		return nil, err
	}
	err = store.Each(ctx, r.q, func(vals []any) error { return b.AppendValues(vals) }, sql)
	if err != nil {
		return nil, r.wrap(err, "read "+name)
	}
	return b.Build(), nil
}

func (r *sqlRepo) columns(ctx context.Context, ns, tbl string) ([]columnRow, error) {
	switch {
	case r.d == ClickHouse && ns == "":
		return store.StructsByName[columnRow](ctx, r.q,
			`SELECT name AS column_name FROM system.columns
			 WHERE database = currentDatabase() AND table = ? ORDER BY position`, tbl)
	case r.d == ClickHouse:
		return store.StructsByName[columnRow](ctx, r.q,
			`SELECT name AS column_name FROM system.columns
			 WHERE database = ? AND table = ? ORDER BY position`, ns, tbl)
	case ns == "":
		return store.StructsByName[columnRow](ctx, r.q,
			`SELECT column_name FROM information_schema.columns
			 WHERE table_schema = current_schema() AND table_name = $1 ORDER BY ordinal_position`, tbl)
	default:
		return store.StructsByName[columnRow](ctx, r.q,
			`SELECT column_name FROM information_schema.columns
			 WHERE table_schema = $1 AND table_name = $2 ORDER BY ordinal_position`, ns, tbl)
	}
}

// cast normalizes storage types so numbers arrive as float64 and categories as strings
func (r *sqlRepo) cast(col string, k table.Kind) string {
	q := r.quote(col)
	switch {
	case r.d == ClickHouse && k == table.Number:
		return fmt.Sprintf("toFloat64OrNull(toString(%s)) AS %s", q, q)
	case r.d == ClickHouse:
		return fmt.Sprintf("toString(%s) AS %s", q, q)
	case k == table.Number:
		return fmt.Sprintf("CAST(%s AS double precision) AS %s", q, q)
	default:
		return fmt.Sprintf("CAST(%s AS text) AS %s", q, q)
	}
}

func (r *sqlRepo) quote(ident string) string {
	if r.d == ClickHouse {
		return "`" + strings.ReplaceAll(ident, "`", "\\`") + "`"
	}
	return pgx.Identifier{ident}.Sanitize()
}

func (r *sqlRepo) quoteTable(ns, tbl string) string {
	if ns == "" {
		return r.quote(tbl)
	}
	if r.d == ClickHouse {
		return r.quote(ns) + "." + r.quote(tbl)
	}
	return pgx.Identifier{ns, tbl}.Sanitize()
}

func (r *sqlRepo) wrap(err error, msg string) error {
	if _, ok := perr.As(err); ok {
		return err
	}
	if r.d == Postgres {
		return perr.FromPostgres(err, msg)
	}
	return perr.Wrap(err, perr.ErrorCodeDB, msg)
}
