package domain

import (
	"context"

	"vizdash/internal/core/render"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Scatter(ctx context.Context, in ScatterInput) (ScatterOutput, error)
	ScatterImage(ctx context.Context, in ScatterInput, f render.Format) ([]byte, error)
}
