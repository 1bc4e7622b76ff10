// Package store provides a unified interface to the optional database backends
// that datasets can be loaded from
package store

import (
	"context"
	"errors"

	"vizdash/internal/platform/logger"
)

// Store is the facade for optional backends
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	Log logger.Logger

	// PG is the postgres seam, nil when disabled
	PG RowQuerier

	// CH is the clickhouse seam, nil when disabled
	CH Clickhouse
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// Querier is the read surface shared by every backend
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// RowQuerier is the sql surface of postgres
type RowQuerier interface {
	Querier
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// Clickhouse is the columnar read seam
type Clickhouse interface {
	Querier
	Close() error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Option adjusts a Store before its backends open
type Option func(*Store) error

// WithLogger sets the logger the pg tracer and ch client log through
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// Open constructs a Store with the requested backends and pings each once
// backends not enabled in cfg remain nil on the Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: logger.Logger{}}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}

	if cfg.PG.Enabled {
		p, err := openPG(ctx, cfg, s)
		if err != nil {
			return nil, err
		}
		s.PG = p
	}

	if cfg.CH.Enabled {
		c, err := openCH(ctx, cfg)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.CH = c
	}

	return s, nil
}

// Backend returns the querier a dataset source scheme ("pg" or "ch") reads from
// nil stores and disabled backends report false
func (s *Store) Backend(scheme string) (Querier, bool) {
	if s == nil {
		return nil, false
	}
	switch scheme {
	case "pg":
		if s.PG != nil {
			return s.PG, true
		}
	case "ch":
		if s.CH != nil {
			return s.CH, true
		}
	}
	return nil, false
}

// Close closes all initialized backends
// nil backends are ignored
func (s *Store) Close(_ context.Context) error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.CH != nil {
		if e := s.CH.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	if c, ok := s.PG.(interface{ Close() error }); ok {
		if e := c.Close(); e != nil {
			errs = append(errs, e)
		}
	}
	return errors.Join(errs...)
}
