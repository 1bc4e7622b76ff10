package errors

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestDBErrorCode(t *testing.T) {
	cases := []struct {
		sqlstate string
		want     ErrorCode
	}{
		{"42P01", ErrorCodeNotFound},
		{"42703", ErrorCodeInvalidArgument},
		{"22P02", ErrorCodeInvalidArgument},
		{"22003", ErrorCodeInvalidArgument},
		{"57P03", ErrorCodeUnavailable},
		{"57P01", ErrorCodeUnavailable},
		{"53300", ErrorCodeUnavailable},
		{"XX000", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(fmt.Errorf("query: %w", &pgconn.PgError{Code: c.sqlstate}))
		if !ok || got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v %v, want %v", c.sqlstate, got, ok, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("plain")); ok {
		t.Fatal("plain error should not classify")
	}
}

func TestPredicates(t *testing.T) {
	undefined := &pgconn.PgError{Code: "42P01"}
	if !IsUndefinedTable(undefined) || IsUndefinedColumn(undefined) {
		t.Fatal("undefined table predicates wrong")
	}
	if !IsUndefinedColumn(&pgconn.PgError{Code: "42703"}) {
		t.Fatal("undefined column predicate wrong")
	}
	if IsSQLState(stderrs.New("x"), "42P01") {
		t.Fatal("plain error matched a SQLSTATE")
	}
}

func TestFromPostgres(t *testing.T) {
	if FromPostgres(nil, "x") != nil {
		t.Fatal("nil should stay nil")
	}

	err := FromPostgres(&pgconn.PgError{Code: "42703", ColumnName: "distance"}, "load flights")
	pe, ok := As(err)
	if !ok || pe.Code() != ErrorCodeInvalidArgument || pe.Field() != "distance" {
		t.Fatalf("FromPostgres = %+v", pe)
	}

	err = FromPostgres(stderrs.New("dial tcp: refused"), "load flights")
	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("non pg error code = %v", CodeOf(err))
	}
}
