// Package net holds transport neutral request context and reply helpers
package net

import (
	"context"

	"vizdash/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID where both chi and the request logger look for it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	return logger.WithRequest(ctx, reqID)
}

// RequestID returns the request id set by chi's RequestID middleware or WithRequest
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
