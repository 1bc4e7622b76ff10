package domain

import (
	"context"

	"vizdash/internal/core/render"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Histogram(ctx context.Context, in HistogramInput) (HistogramOutput, error)
	HistogramImage(ctx context.Context, in HistogramInput, f render.Format) ([]byte, error)
	Map(ctx context.Context, in MapInput) (MapOutput, error)
	Dashboard(ctx context.Context, in DashboardInput) (DashboardOutput, error)
}
