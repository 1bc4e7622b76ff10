// Package service describes loaded datasets for the dashboard controls
package service

import (
	"context"

	"vizdash/internal/core/table"
	perr "vizdash/internal/platform/errors"
	"vizdash/internal/platform/logger"
	"vizdash/internal/services/api/datasets/domain"
	"vizdash/internal/services/api/views"
	dsdom "vizdash/internal/services/datasets/domain"
)

// Service defines the dataset browsing contract
type Service interface {
	domain.ServicePort
}

// Svc implements the dataset browsing service
type Svc struct {
	catalog    dsdom.CatalogPort
	reloader   dsdom.ReloaderPort
	maxOptions int
}

// New constructs the service, a nil reloader disables Reload
func New(c dsdom.CatalogPort, r dsdom.ReloaderPort, maxOptions int) *Svc {
	if c == nil {
		panic("datasets.Service requires a dataset catalog")
	}
	if maxOptions <= 0 {
		maxOptions = domain.DefaultMaxOptions
	}
	return &Svc{catalog: c, reloader: r, maxOptions: maxOptions}
}

// List implements domain.ServicePort
func (s *Svc) List(context.Context) domain.ListOutput {
	infos := s.catalog.List()
	if infos == nil {
		infos = []dsdom.Info{}
	}
	return domain.ListOutput{Datasets: infos}
}

// Detail implements domain.ServicePort
func (s *Svc) Detail(ctx context.Context, name string) (domain.Detail, error) {
	tbl, info, err := s.catalog.Table(name)
	if err != nil {
		return domain.Detail{}, err
	}
	d := domain.Detail{
		Info:    info,
		Options: make(map[string][]string),
		Extents: make(map[string]domain.Extent),
	}
	for _, c := range tbl.Schema().Columns {
		switch c.Kind {
		case table.Category:
			vals, err := tbl.Distinct(c.Name)
			if err != nil {
				return domain.Detail{}, views.Invalid(err)
			}
			if len(vals) > s.maxOptions {
				vals = vals[:s.maxOptions]
				d.Truncated = append(d.Truncated, c.Name)
			}
			d.Options[c.Name] = vals
		case table.Number:
			lo, hi, ok, err := tbl.Extent(c.Name)
			if err != nil {
				return domain.Detail{}, views.Invalid(err)
			}
			if ok {
				d.Extents[c.Name] = domain.Extent{Min: lo, Max: hi}
			}
		}
	}
	if len(d.Truncated) > 0 {
		logger.C(ctx).Debug().Str("dataset", name).Strs("columns", d.Truncated).Int("max", s.maxOptions).Msg("options truncated")
	}
	return d, nil
}

// Reload implements domain.ServicePort
func (s *Svc) Reload(ctx context.Context, name string) (dsdom.Info, error) {
	if s.reloader == nil {
		return dsdom.Info{}, perr.Unavailablef("dataset %q cannot be reloaded", name)
	}
	info, err := s.reloader.Reload(ctx, name)
	if err != nil {
		return dsdom.Info{}, err
	}
	logger.C(ctx).Info().Str("dataset", name).Str("snapshot", info.Snapshot).Int("rows", info.Rows).Msg("dataset reloaded")
	return info, nil
}
