package chart

import (
	"sort"
	"strings"

	"vizdash/internal/core/aggregate"
)

// WorldAtlasURL is the TopoJSON world map the choropleth draws
const WorldAtlasURL = "https://cdn.jsdelivr.net/npm/vega-datasets@v1.29.0/data/world-110m.json"

// ChoroplethOptions extends Options with the map settings
type ChoroplethOptions struct {
	Options
	// Measure names the value field, default "count"
	Measure string
	// Projection defaults to equalEarth
	Projection string
	// Scheme is the color scheme, default "blues"
	Scheme string
}

// Choropleth shades countries by an aggregated count per IOC code
// codes without an ISO id are reported in unmapped and left off the map
// countries with no count are drawn by a grey base layer
// committees sharing an ISO id are summed into one region
func Choropleth(groups []aggregate.Group, opt ChoroplethOptions) (spec Spec, unmapped []string) {
	measure := opt.Measure
	if measure == "" {
		measure = "count"
	}
	proj := opt.Projection
	if proj == "" {
		proj = "equalEarth"
	}
	scheme := opt.Scheme
	if scheme == "" {
		scheme = "blues"
	}

	byID := make(map[int]*region)
	for _, g := range groups {
		id, ok := ISONumeric(g.Key)
		if !ok {
			unmapped = append(unmapped, g.Key)
			continue
		}
		r, ok := byID[id]
		if !ok {
			r = &region{id: id}
			byID[id] = r
		}
		r.count += g.Count
		r.codes = append(r.codes, g.Key)
	}
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	total := 0
	vals := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		r := byID[id]
		sort.Strings(r.codes)
		total += r.count
		vals = append(vals, map[string]any{
			"id":    id,
			"noc":   strings.Join(r.codes, "/"),
			measure: r.count,
		})
	}

	world := &Data{URL: WorldAtlasURL, Format: &Format{Type: "topojson", Feature: "countries"}}
	spec = Spec{
		Title:      Describe("Athletes by country", total, "athletes"),
		Projection: &Projection{Type: proj},
		Layer: []Spec{
			{
				Data: world,
				Mark: &Mark{Type: "geoshape", Fill: "#e5e5e5", Stroke: "white"},
			},
			{
				Data: &Data{Values: vals},
				Transform: []Transform{{
					Lookup: "id",
					From:   &LookupData{Data: *world, Key: "id"},
					As:     "geo",
				}},
				Mark: &Mark{Type: "geoshape", Stroke: "white"},
				Encoding: &Encoding{
					Shape: &Channel{Field: "geo", Type: "geojson"},
					Color: &Channel{Field: measure, Type: Quantitative, Title: AxisTitle(measure), Scale: &Scale{Scheme: scheme}},
					Tooltip: []Channel{
						{Field: "noc", Type: Nominal, Title: "NOC"},
						{Field: measure, Type: Quantitative, Title: AxisTitle(measure)},
					},
				},
			},
		},
	}
	opt.apply(&spec)
	return spec, unmapped
}

type region struct {
	id    int
	count int
	codes []string
}
