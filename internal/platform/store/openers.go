package store

import (
	"context"
	"fmt"
	"time"

	chx "vizdash/internal/platform/store/ch"
	"vizdash/internal/platform/store/pg"
)

var (
	pgOpen = pg.Open
	chOpen = chx.Open
)

func pingTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 5 * time.Second
	}
	return d
}

// openPG opens the pool and pings it once before publishing the adapter
func openPG(ctx context.Context, cfg Config, s *Store) (RowQuerier, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pgOpen(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer, nil)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	toCtx, cancel := context.WithTimeout(ctx, pingTimeout(cfg.PG.PingTimeout))
	defer cancel()
	if err := p.Pool.Ping(toCtx); err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	s.Log.Info().Str("backend", "pg").Int32("max_conns", cfg.PG.MaxConns).Msg("store backend ready")
	return newPGAdapter(p), nil
}

// openCH opens the connection and pings it once
func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	c, err := chOpen(ctx, chx.Config{
		URL:        cfg.CH.URL,
		ClientName: cfg.CH.ClientName,
		ClientTag:  cfg.CH.ClientTag,
	})
	if err != nil {
		return nil, fmt.Errorf("clickhouse open: %w", err)
	}

	toCtx, cancel := context.WithTimeout(ctx, pingTimeout(cfg.CH.PingTimeout))
	defer cancel()
	if err := c.Ping(toCtx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("clickhouse ping: %w", err)
	}
	return newCHAdapter(c), nil
}
