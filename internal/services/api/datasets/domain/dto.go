// Package domain holds DTOs for the dataset browsing endpoints
package domain

import (
	"context"

	dsdom "vizdash/internal/services/datasets/domain"
)

// DefaultMaxOptions caps the dropdown values returned per categorical column
const DefaultMaxOptions = 500

// Extent is the numeric range a slider covers
type Extent struct {
	Min float64 `json:"min" example:"31"`
	Max float64 `json:"max" example:"2724"`
}

// Info is the catalog description of one dataset snapshot
type Info = dsdom.Info

// Detail is a dataset's info with the values the dashboard controls offer
type Detail struct {
	Info
	// Options holds the sorted distinct values of each categorical column
	Options map[string][]string `json:"options"`
	// Truncated lists the columns whose options were capped
	Truncated []string `json:"truncated,omitempty" example:"Name"`
	// Extents holds the range of each numeric column with at least one value
	Extents map[string]Extent `json:"extents"`
}

// ListOutput lists the loaded datasets
type ListOutput struct {
	Datasets []Info `json:"datasets"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	List(ctx context.Context) ListOutput
	Detail(ctx context.Context, name string) (Detail, error)
	Reload(ctx context.Context, name string) (Info, error)
}
