// Package domain holds DTOs for the flights dashboard
package domain

import "vizdash/internal/services/api/views"

// Dashboard defaults, the first view a visitor sees
const (
	DefaultMinDistance = 0
	DefaultMaxDistance = 2000
	DefaultOrigin      = "SJC"
)

// DistanceRange is the slider selection, both bounds are exclusive
type DistanceRange struct {
	Min float64 `json:"min" validate:"gte=0"          example:"0"`
	Max float64 `json:"max" validate:"gtefield=Min"   example:"2000"`
}

// ScatterInput is the full control state of the flights dashboard
type ScatterInput struct {
	// Distance defaults to (0, 2000)
	Distance *DistanceRange `json:"distance,omitempty"`
	// Origin is one airport code, "All" disables the filter, empty means SJC
	Origin string `json:"origin,omitempty" validate:"omitempty,max=16" example:"SJC"`
	// Format html adds a standalone page next to the spec
	Format  string   `json:"format,omitempty"  validate:"omitempty,oneof=json html" example:"json"`
	Tooltip []string `json:"tooltip,omitempty" validate:"omitempty,max=5,dive,column" example:"destination"`
	Width   int      `json:"width,omitempty"   validate:"omitempty,min=100,max=4000" example:"640"`
	Height  int      `json:"height,omitempty"  validate:"omitempty,min=100,max=4000" example:"400"`
}

// ScatterOutput is the filtered view summary and the distance vs delay chart
type ScatterOutput struct {
	View  views.Summary `json:"view"`
	Chart views.Chart   `json:"chart"`
}
