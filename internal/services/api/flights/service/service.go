// Package service turns flights dashboard input into filtered views and charts
package service

import (
	"bytes"
	"context"

	"vizdash/internal/core/chart"
	"vizdash/internal/core/filter"
	"vizdash/internal/core/render"
	"vizdash/internal/datasets"
	"vizdash/internal/services/api/flights/domain"
	"vizdash/internal/services/api/views"
)

// Service defines the flights service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the flights service
type Svc struct {
	views views.Filterer
}

// New constructs a flights service
func New(f views.Filterer) *Svc {
	if f.Catalog == nil {
		panic("flights.Service requires a dataset catalog")
	}
	return &Svc{views: f}
}

// Spec maps the dashboard controls to a filter spec
// distance bounds are strict, a single origin is matched exactly
func Spec(in domain.ScatterInput) filter.Spec {
	lo, hi := float64(domain.DefaultMinDistance), float64(domain.DefaultMaxDistance)
	if in.Distance != nil {
		lo, hi = in.Distance.Min, in.Distance.Max
	}
	origin := in.Origin
	if origin == "" {
		origin = domain.DefaultOrigin
	}
	return filter.Spec{
		filter.Open("distance", lo, hi),
		filter.In("origin", origin),
	}
}

// Scatter implements domain.ServicePort
func (s *Svc) Scatter(ctx context.Context, in domain.ScatterInput) (domain.ScatterOutput, error) {
	view, err := s.views.Apply(ctx, datasets.Flights, Spec(in))
	if err != nil {
		return domain.ScatterOutput{}, err
	}
	spec, err := chart.Scatter(view.Table, "distance", "delay", chart.Options{
		Width:   in.Width,
		Height:  in.Height,
		Tooltip: in.Tooltip,
	})
	if err != nil {
		return domain.ScatterOutput{}, views.Invalid(err)
	}
	c, err := views.NewChart(spec, in.Format)
	if err != nil {
		return domain.ScatterOutput{}, err
	}
	return domain.ScatterOutput{View: view.Summary, Chart: c}, nil
}

// ScatterImage implements domain.ServicePort
func (s *Svc) ScatterImage(ctx context.Context, in domain.ScatterInput, f render.Format) ([]byte, error) {
	view, err := s.views.Apply(ctx, datasets.Flights, Spec(in))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = render.Scatter(&buf, view.Table, "distance", "delay", f, render.Options{
		Title:  chart.Describe("Delay vs Distance", view.Summary.Rows, "flights"),
		Width:  in.Width,
		Height: in.Height,
	})
	if err != nil {
		return nil, views.Invalid(err)
	}
	return buf.Bytes(), nil
}
