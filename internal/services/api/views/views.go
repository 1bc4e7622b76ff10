// Package views holds the filter-then-chart plumbing the dashboard modules share
package views

import (
	"context"
	"errors"

	"vizdash/internal/core/filter"
	"vizdash/internal/core/table"
	perr "vizdash/internal/platform/errors"
	"vizdash/internal/platform/logger"
	dsdom "vizdash/internal/services/datasets/domain"
)

// Observer records filtered view sizes, satisfied by *metrics.Metrics
type Observer interface {
	ObserveFilter(dataset string, rows int)
}

// Summary describes a filtered view
type Summary struct {
	Dataset  string   `json:"dataset"  example:"flights"`
	Snapshot string   `json:"snapshot" example:"0b6f4a34-5f1e-4c59-9a59-5b3f0d9e2c11"`
	Total    int      `json:"total"    example:"5000"`
	Rows     int      `json:"rows"     example:"212"`
	Filters  []string `json:"filters"`
}

// Filtered is a filtered view with its summary
type Filtered struct {
	Table   *table.Table
	Summary Summary
}

// Filterer resolves datasets from the catalog and applies filter specs
type Filterer struct {
	Catalog  dsdom.CatalogPort
	Observer Observer
}

// Apply filters the named dataset; an empty result is not an error
func (f Filterer) Apply(ctx context.Context, dataset string, spec filter.Spec) (Filtered, error) {
	tbl, info, err := f.Catalog.Table(dataset)
	if err != nil {
		return Filtered{}, err
	}
	view, err := filter.Apply(tbl, spec)
	if err != nil {
		return Filtered{}, Invalid(err)
	}

	desc := make([]string, 0, len(spec))
	for _, c := range spec {
		if s, ok := c.(interface{ String() string }); ok {
			desc = append(desc, s.String())
		}
	}
	if f.Observer != nil {
		f.Observer.ObserveFilter(dataset, view.Len())
	}
	logger.C(ctx).Debug().
		Str("dataset", dataset).
		Strs("filters", desc).
		Int("rows", view.Len()).
		Int("total", tbl.Len()).
		Msg("filter applied")

	return Filtered{
		Table: view,
		Summary: Summary{
			Dataset:  dataset,
			Snapshot: info.Snapshot,
			Total:    tbl.Len(),
			Rows:     view.Len(),
			Filters:  desc,
		},
	}, nil
}

// Invalid maps filter, aggregate and chart errors to a 422 carrying the offending column
// errors that already carry a code pass through
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := perr.As(err); ok {
		return err
	}
	var ce *table.ColumnError
	if errors.As(err, &ce) {
		return perr.WithField(perr.Wrap(err, perr.ErrorCodeInvalidArgument, ce.Error()), ce.Column)
	}
	return perr.Wrap(err, perr.ErrorCodeInvalidArgument, err.Error())
}
