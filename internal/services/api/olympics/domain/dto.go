// Package domain holds DTOs for the olympics dashboard
package domain

import (
	"vizdash/internal/core/aggregate"
	"vizdash/internal/services/api/views"
)

// Dashboard defaults, together they select every athlete row
const (
	DefaultFirstYear = 1896
	DefaultLastYear  = 2016
	DefaultSeason    = "Both"
	DefaultMedal     = "All"
)

// YearRange is the inclusive slider selection
type YearRange struct {
	Min int `json:"min" validate:"gte=1800,lte=2100"           example:"1896"`
	Max int `json:"max" validate:"gtefield=Min,lte=2100"       example:"2016"`
}

// Filter is the control state shared by every olympics chart
// empty fields fall back to the defaults, "All" (and "Both" for season) disable a control
type Filter struct {
	Year    *YearRange `json:"year,omitempty"`
	Season  string     `json:"season,omitempty"  validate:"omitempty,oneof=Summer Winter Both"  example:"Both"`
	Medal   string     `json:"medal,omitempty"   validate:"omitempty,oneof=Gold Silver Bronze NA All" example:"All"`
	Sport   []string   `json:"sport,omitempty"   validate:"omitempty,max=100,dive,min=1,max=100" example:"All"`
	Country []string   `json:"country,omitempty" validate:"omitempty,max=300,dive,min=1,max=100" example:"All"`
}

// ChartOptions size the charts and pick the output form
type ChartOptions struct {
	Format string `json:"format,omitempty" validate:"omitempty,oneof=json html" example:"json"`
	Width  int    `json:"width,omitempty"  validate:"omitempty,min=100,max=4000" example:"480"`
	Height int    `json:"height,omitempty" validate:"omitempty,min=100,max=4000" example:"300"`
}

// HistogramInput asks for one distribution split by sex
type HistogramInput struct {
	Filter
	ChartOptions
	// Field is height or age, default height
	Field   string `json:"field,omitempty"    validate:"omitempty,oneof=height age" example:"height"`
	MaxBins int    `json:"max_bins,omitempty" validate:"omitempty,min=1,max=100"    example:"20"`
	Overlay bool   `json:"overlay,omitempty"  example:"true"`
}

// MapInput asks for the athletes per country map
type MapInput struct {
	Filter
	ChartOptions
	Projection string `json:"projection,omitempty" validate:"omitempty,oneof=equalEarth naturalEarth1 mercator equirectangular" example:"equalEarth"`
	Scheme     string `json:"scheme,omitempty"     validate:"omitempty,max=32,alphanum" example:"blues"`
}

// DashboardInput asks for every chart at once
type DashboardInput struct {
	Filter
	ChartOptions
	MaxBins int `json:"max_bins,omitempty" validate:"omitempty,min=1,max=100" example:"20"`
}

// Histogram is a distribution chart with its precomputed bins
type Histogram struct {
	Bins  aggregate.Histogram `json:"bins"`
	Chart views.Chart         `json:"chart"`
}

// Map is the distinct athlete count per committee and its choropleth
type Map struct {
	// Athletes sums the distinct athletes of every committee
	Athletes  int               `json:"athletes"  example:"41"`
	Countries []aggregate.Group `json:"countries"`
	// Unmapped lists committee codes with no country shape
	Unmapped []string    `json:"unmapped,omitempty" example:"IOA"`
	Chart    views.Chart `json:"chart"`
}

// HistogramOutput is the filtered view and one histogram
type HistogramOutput struct {
	View      views.Summary `json:"view"`
	Histogram Histogram     `json:"histogram"`
}

// MapOutput is the filtered view and the map
type MapOutput struct {
	View views.Summary `json:"view"`
	Map  Map           `json:"map"`
}

// DashboardOutput carries every olympics chart for one control state
type DashboardOutput struct {
	View   views.Summary `json:"view"`
	Height Histogram     `json:"height"`
	Age    Histogram     `json:"age"`
	Map    Map           `json:"map"`
}
