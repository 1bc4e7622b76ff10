// Package service turns olympics dashboard controls into filtered views and charts
package service

import (
	"bytes"
	"context"
	"strings"

	"vizdash/internal/core/aggregate"
	"vizdash/internal/core/chart"
	"vizdash/internal/core/filter"
	"vizdash/internal/core/render"
	"vizdash/internal/core/table"
	"vizdash/internal/datasets"
	"vizdash/internal/services/api/olympics/domain"
	"vizdash/internal/services/api/views"
)

// histograms are split by this column
const splitBy = "Sex"

// Service defines the olympics service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the olympics service
type Svc struct {
	views views.Filterer
}

// New constructs an olympics service
func New(f views.Filterer) *Svc {
	if f.Catalog == nil {
		panic("olympics.Service requires a dataset catalog")
	}
	return &Svc{views: f}
}

// Spec maps the shared controls to a filter spec
// the year range is inclusive, Both disables the season control
func Spec(f domain.Filter) filter.Spec {
	lo, hi := domain.DefaultFirstYear, domain.DefaultLastYear
	if f.Year != nil {
		lo, hi = f.Year.Min, f.Year.Max
	}
	season := f.Season
	if season == "" {
		season = domain.DefaultSeason
	}
	medal := f.Medal
	if medal == "" {
		medal = domain.DefaultMedal
	}
	return filter.Spec{
		filter.Between("Year", float64(lo), float64(hi)),
		filter.OneOf{Column: "Season", Values: []string{season}, Sentinels: []string{filter.Both, filter.All}},
		filter.In("Medal", medal),
		filter.In("Sport", f.Sport...),
		filter.In("Team", f.Country...),
	}
}

// Column maps the histogram field control to a dataset column
func Column(field string) string {
	if strings.EqualFold(field, "age") {
		return "Age"
	}
	return "Height"
}

// Histogram implements domain.ServicePort
func (s *Svc) Histogram(ctx context.Context, in domain.HistogramInput) (domain.HistogramOutput, error) {
	view, err := s.views.Apply(ctx, datasets.Olympics, Spec(in.Filter))
	if err != nil {
		return domain.HistogramOutput{}, err
	}
	h, err := histogram(view.Table, Column(in.Field), in.ChartOptions, in.MaxBins, in.Overlay)
	if err != nil {
		return domain.HistogramOutput{}, err
	}
	return domain.HistogramOutput{View: view.Summary, Histogram: h}, nil
}

// HistogramImage implements domain.ServicePort
func (s *Svc) HistogramImage(ctx context.Context, in domain.HistogramInput, f render.Format) ([]byte, error) {
	view, err := s.views.Apply(ctx, datasets.Olympics, Spec(in.Filter))
	if err != nil {
		return nil, err
	}
	col := Column(in.Field)
	bins, err := aggregate.Bins(view.Table, col, splitBy, aggregate.BinOptions{MaxBins: in.MaxBins})
	if err != nil {
		return nil, views.Invalid(err)
	}
	var buf bytes.Buffer
	err = render.Histogram(&buf, bins, f, render.Options{
		Title:  chart.Describe(col+" distribution", view.Summary.Rows, "athlete entries"),
		Width:  in.Width,
		Height: in.Height,
	})
	if err != nil {
		return nil, views.Invalid(err)
	}
	return buf.Bytes(), nil
}

// Map implements domain.ServicePort
func (s *Svc) Map(ctx context.Context, in domain.MapInput) (domain.MapOutput, error) {
	view, err := s.views.Apply(ctx, datasets.Olympics, Spec(in.Filter))
	if err != nil {
		return domain.MapOutput{}, err
	}
	m, err := countryMap(view.Table, in.ChartOptions, in.Projection, in.Scheme)
	if err != nil {
		return domain.MapOutput{}, err
	}
	return domain.MapOutput{View: view.Summary, Map: m}, nil
}

// Dashboard implements domain.ServicePort, every chart shares one filtered view
func (s *Svc) Dashboard(ctx context.Context, in domain.DashboardInput) (domain.DashboardOutput, error) {
	view, err := s.views.Apply(ctx, datasets.Olympics, Spec(in.Filter))
	if err != nil {
		return domain.DashboardOutput{}, err
	}
	out := domain.DashboardOutput{View: view.Summary}
	if out.Height, err = histogram(view.Table, "Height", in.ChartOptions, in.MaxBins, true); err != nil {
		return domain.DashboardOutput{}, err
	}
	if out.Age, err = histogram(view.Table, "Age", in.ChartOptions, in.MaxBins, true); err != nil {
		return domain.DashboardOutput{}, err
	}
	if out.Map, err = countryMap(view.Table, in.ChartOptions, "", ""); err != nil {
		return domain.DashboardOutput{}, err
	}
	return out, nil
}

func histogram(t *table.Table, col string, o domain.ChartOptions, maxBins int, overlay bool) (domain.Histogram, error) {
	bins, err := aggregate.Bins(t, col, splitBy, aggregate.BinOptions{MaxBins: maxBins})
	if err != nil {
		return domain.Histogram{}, views.Invalid(err)
	}
	spec, err := chart.Histogram(t, col, splitBy, chart.HistogramOptions{
		Options: chart.Options{
			Title:  chart.Describe(col+" distribution", t.Len(), "athlete entries"),
			Width:  o.Width,
			Height: o.Height,
		},
		MaxBins: maxBins,
		Overlay: overlay,
	})
	if err != nil {
		return domain.Histogram{}, views.Invalid(err)
	}
	c, err := views.NewChart(spec, o.Format)
	if err != nil {
		return domain.Histogram{}, err
	}
	return domain.Histogram{Bins: bins, Chart: c}, nil
}

func countryMap(t *table.Table, o domain.ChartOptions, projection, scheme string) (domain.Map, error) {
	groups, err := aggregate.DistinctCount(t, "NOC", "ID")
	if err != nil {
		return domain.Map{}, views.Invalid(err)
	}
	athletes := aggregate.Total(groups)
	spec, unmapped := chart.Choropleth(groups, chart.ChoroplethOptions{
		Options: chart.Options{
			Title:  chart.Describe("Athletes per country", athletes, "athletes"),
			Width:  o.Width,
			Height: o.Height,
		},
		Measure:    "athletes",
		Projection: projection,
		Scheme:     scheme,
	})
	c, err := views.NewChart(spec, o.Format)
	if err != nil {
		return domain.Map{}, err
	}
	if groups == nil {
		groups = []aggregate.Group{}
	}
	return domain.Map{Athletes: athletes, Countries: groups, Unmapped: unmapped, Chart: c}, nil
}
