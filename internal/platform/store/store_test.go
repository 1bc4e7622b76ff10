package store

import (
	"context"
	"errors"
	"testing"

	"vizdash/internal/platform/config"
	"vizdash/internal/platform/store/pg"
	"vizdash/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_NothingEnabled(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	require.NoError(t, err)
	assert.Nil(t, s.PG)
	assert.Nil(t, s.CH)
	assert.NoError(t, s.Close(context.Background()))

	_, ok := s.Backend("pg")
	assert.False(t, ok)
}

func TestOpen_PGBadURL(t *testing.T) {
	_, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true, URL: "://bad"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres open")
}

func TestOpen_PGOpenError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &pgOpen, func(context.Context, pg.Config, pg.QueryTracer, func(*pgxpool.Config)) (*pg.PG, error) {
		return nil, errors.New("boom")
	})
	_, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true, URL: "postgres://x"}})
	assert.ErrorContains(t, err, "boom")
}

func TestOpen_CHBadURL(t *testing.T) {
	_, err := Open(context.Background(), Config{CH: CHConfig{Enabled: true, URL: "://bad"}})
	assert.ErrorContains(t, err, "clickhouse open")
}

func TestOpen_OptionError(t *testing.T) {
	_, err := Open(context.Background(), Config{}, func(*Store) error { return errors.New("bad option") })
	assert.EqualError(t, err, "bad option")
}

type pingQuerier struct {
	memQuerier
	err    error
	closed bool
}

func (p *pingQuerier) Ping(context.Context) error { return p.err }
func (p *pingQuerier) Close() error               { p.closed = true; return nil }

func TestBackendAndClose(t *testing.T) {
	var nilStore *Store
	_, ok := nilStore.Backend("pg")
	assert.False(t, ok)
	assert.NoError(t, nilStore.Close(context.Background()))

	ch := &pingQuerier{err: errors.New("refused")}
	s := &Store{CH: ch}

	q, ok := s.Backend("ch")
	assert.True(t, ok)
	assert.Same(t, ch, q)
	_, ok = s.Backend("pg")
	assert.False(t, ok)
	_, ok = s.Backend("file")
	assert.False(t, ok)

	require.NoError(t, s.Close(context.Background()))
	assert.True(t, ch.closed)
}

func TestFromEnv(t *testing.T) {
	pgc := PGFromEnv(config.New().Prefix("SERVICE_PGSQL_"))
	assert.False(t, pgc.Enabled)

	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://localhost/vizdash")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "8")
	pgc = PGFromEnv(config.New().Prefix("SERVICE_PGSQL_"))
	assert.True(t, pgc.Enabled)
	assert.Equal(t, int32(8), pgc.MaxConns)
	assert.Equal(t, 500, pgc.SlowQueryMs)

	t.Setenv("SERVICE_CLICKHOUSE_DBURL", "clickhouse://localhost:9000/default")
	chc := CHFromEnv(config.New().Prefix("SERVICE_CLICKHOUSE_"), "api")
	assert.True(t, chc.Enabled)
	assert.Equal(t, "vizdash", chc.ClientName)
	assert.Equal(t, "api", chc.ClientTag)
}
