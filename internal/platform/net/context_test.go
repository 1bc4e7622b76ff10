package net_test

import (
	"context"
	"testing"

	pnet "vizdash/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestWithRequest(t *testing.T) {
	ctx := pnet.WithRequest(context.Background(), "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID = %q, want req-123", got)
	}
	if got := chimw.GetReqID(ctx); got != "req-123" {
		t.Fatalf("chi GetReqID = %q, want req-123", got)
	}
}

func TestWithRequest_Empty(t *testing.T) {
	base := context.Background()
	if ctx := pnet.WithRequest(base, ""); ctx != base {
		t.Fatal("empty id should return ctx unchanged")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID = %q, want empty", got)
	}
}
