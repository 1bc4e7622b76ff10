package errors

// Postgres error classification for the pg dataset source

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the dataset loader can hit
const (
	pgUndefinedTable     = "42P01"
	pgUndefinedColumn    = "42703"
	pgInvalidTextRepr    = "22P02"
	pgNumericOutOfRange  = "22003"
	pgCannotConnectNow   = "57P03"
	pgAdminShutdown      = "57P01"
	pgTooManyConnections = "53300"
)

// ExtractPgError returns the *pgconn.PgError inside err
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsUndefinedTable reports a missing source table
func IsUndefinedTable(err error) bool { return IsSQLState(err, pgUndefinedTable) }

// IsUndefinedColumn reports a source table missing a schema column
func IsUndefinedColumn(err error) bool { return IsSQLState(err, pgUndefinedColumn) }

// DBErrorCode classifies a Postgres error; ok is false for anything else
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgUndefinedTable:
		return ErrorCodeNotFound, true
	case pgUndefinedColumn, pgInvalidTextRepr, pgNumericOutOfRange:
		return ErrorCodeInvalidArgument, true
	case pgCannotConnectNow, pgAdminShutdown, pgTooManyConnections:
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps err with its classified code; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	err2 := Wrap(err, code, msg)
	if pgErr, ok := ExtractPgError(err); ok && pgErr.ColumnName != "" {
		err2 = WithField(err2, pgErr.ColumnName)
	}
	return err2
}
