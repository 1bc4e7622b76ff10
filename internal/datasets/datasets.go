// Package datasets carries the dataset schemas and the bundled sample files
package datasets

import (
	"embed"
	"fmt"
	"io"

	"vizdash/internal/core/table"
)

//go:embed samples/*.csv
var samples embed.FS

// Dataset names
const (
	Flights  = "flights"
	Olympics = "olympics"
)

// FlightsSchema follows the vega-datasets flights-10k columns
var FlightsSchema = table.Schema{
	Name: Flights,
	Columns: []table.Column{
		{Name: "date", Kind: table.Category},
		{Name: "delay", Kind: table.Number},
		{Name: "distance", Kind: table.Number},
		{Name: "origin", Kind: table.Category},
		{Name: "destination", Kind: table.Category},
	},
}

// OlympicsSchema follows the athlete_events columns
var OlympicsSchema = table.Schema{
	Name: Olympics,
	Columns: []table.Column{
		{Name: "ID", Kind: table.Number},
		{Name: "Name", Kind: table.Category},
		{Name: "Sex", Kind: table.Category},
		{Name: "Age", Kind: table.Number},
		{Name: "Height", Kind: table.Number},
		{Name: "Weight", Kind: table.Number},
		{Name: "Team", Kind: table.Category},
		{Name: "NOC", Kind: table.Category},
		{Name: "Games", Kind: table.Category},
		{Name: "Year", Kind: table.Number},
		{Name: "Season", Kind: table.Category},
		{Name: "City", Kind: table.Category},
		{Name: "Sport", Kind: table.Category},
		{Name: "Event", Kind: table.Category},
		{Name: "Medal", Kind: table.Category},
	},
}

// Names lists the known datasets in display order
func Names() []string { return []string{Flights, Olympics} }

// Schema returns the schema of a known dataset
func Schema(name string) (table.Schema, bool) {
	switch name {
	case Flights:
		return FlightsSchema, true
	case Olympics:
		return OlympicsSchema, true
	}
	return table.Schema{}, false
}

// OpenSample opens the bundled CSV for a dataset
func OpenSample(name string) (io.ReadCloser, error) {
	if _, ok := Schema(name); !ok {
		return nil, fmt.Errorf("datasets: no sample for %q", name)
	}
	return samples.Open("samples/" + name + ".csv")
}
