//go:build integration_pg

package pg

import (
	"context"
	"testing"
	"time"

	"vizdash/internal/platform/testkit"
)

func TestOpen_Integration(t *testing.T) {
	dsn := testkit.StartPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	p, err := Open(ctx, Config{URL: dsn, MaxConns: 2, AppName: "vizdash-pg-it"}, nil, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(p.Close)

	if err := p.Pool.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	var app string
	if err := p.Pool.QueryRow(ctx, `select current_setting('application_name')`).Scan(&app); err != nil {
		t.Fatalf("application_name: %v", err)
	}
	if app != "vizdash-pg-it" {
		t.Fatalf("application_name = %q", app)
	}
}
