package domain

import (
	"context"

	"vizdash/internal/core/table"
)

// CatalogPort serves loaded datasets read only
type CatalogPort interface {
	// Names lists the loaded datasets in display order
	Names() []string
	// List returns the info of every loaded dataset
	List() []Info
	// Info returns one dataset's info, perr NotFound when unknown
	Info(name string) (Info, error)
	// Table returns the immutable table with the info of the snapshot it belongs to
	Table(name string) (*table.Table, Info, error)
}

// ReloaderPort replaces a dataset snapshot by reading its source again
type ReloaderPort interface {
	Reload(ctx context.Context, name string) (Info, error)
}
