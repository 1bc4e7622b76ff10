package chart

import (
	"encoding/json"
	"strings"
	"testing"

	"vizdash/internal/core/aggregate"
	"vizdash/internal/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schema = table.Schema{
	Name: "mixed",
	Columns: []table.Column{
		{Name: "distance", Kind: table.Number},
		{Name: "delay", Kind: table.Number},
		{Name: "origin", Kind: table.Category},
		{Name: "Sex", Kind: table.Category},
	},
}

const rows = `distance,delay,origin,Sex
480,0,SAN,M
342,-16,SJC,F
1999,NA,SJC,F
NA,5,SJC,M
`

func load(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.ReadCSV(strings.NewReader(rows), schema, table.CSVOptions{})
	require.NoError(t, err)
	return tbl
}

func roundTrip(t *testing.T, s Spec) map[string]any {
	t.Helper()
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestScatter(t *testing.T) {
	s, err := Scatter(load(t), "distance", "delay", Options{Width: 400})
	require.NoError(t, err)

	assert.Equal(t, SchemaURL, s.Schema)
	assert.Equal(t, "point", s.Mark.Type)
	assert.Equal(t, "distance", s.Encoding.X.Field)
	assert.Equal(t, Quantitative, s.Encoding.Y.Type)
	assert.Equal(t, "Delay vs Distance (2 points)", s.Title)

	// rows missing a coordinate are dropped, only encoded fields are inlined
	require.Len(t, s.Data.Values, 2)
	assert.Equal(t, map[string]any{"distance": 480.0, "delay": 0.0}, s.Data.Values[0])

	out := roundTrip(t, s)
	assert.Equal(t, 400.0, out["width"])
	assert.NotContains(t, out, "height")
}

func TestScatter_Tooltip(t *testing.T) {
	s, err := Scatter(load(t), "distance", "delay", Options{Tooltip: []string{"origin"}})
	require.NoError(t, err)
	require.Len(t, s.Encoding.Tooltip, 1)
	assert.Equal(t, Nominal, s.Encoding.Tooltip[0].Type)
	assert.Equal(t, "SAN", s.Data.Values[0]["origin"])
}

func TestScatter_Errors(t *testing.T) {
	_, err := Scatter(load(t), "origin", "delay", Options{})
	var ce *table.ColumnError
	require.ErrorAs(t, err, &ce)

	_, err = Scatter(load(t), "distance", "delay", Options{Tooltip: []string{"carrier"}})
	assert.Error(t, err)
}

func TestScatter_EmptyView(t *testing.T) {
	s, err := Scatter(load(t).Select(nil), "distance", "delay", Options{})
	require.NoError(t, err)
	assert.Empty(t, s.Data.Values)
	out := roundTrip(t, s)
	assert.Contains(t, out, "mark")
}

func TestHistogram(t *testing.T) {
	s, err := Histogram(load(t), "distance", "Sex", HistogramOptions{MaxBins: 20})
	require.NoError(t, err)

	assert.Equal(t, "bar", s.Mark.Type)
	assert.Equal(t, 20, s.Encoding.X.Bin.MaxBins)
	assert.Equal(t, "count", s.Encoding.Y.Aggregate)
	assert.Equal(t, "Sex", s.Encoding.Color.Field)
	assert.Nil(t, s.Encoding.Y.Stack)
	require.Len(t, s.Data.Values, 3)
	assert.Len(t, s.Data.Values[0], 2)
}

func TestHistogram_Overlay(t *testing.T) {
	s, err := Histogram(load(t), "delay", "Sex", HistogramOptions{Overlay: true})
	require.NoError(t, err)
	assert.Equal(t, false, s.Encoding.Y.Stack)
	require.NotNil(t, s.Mark.Opacity)

	out := roundTrip(t, s)
	enc := out["encoding"].(map[string]any)
	y := enc["y"].(map[string]any)
	assert.Equal(t, false, y["stack"])
}

func TestHistogram_NoColor(t *testing.T) {
	s, err := Histogram(load(t), "delay", "", HistogramOptions{})
	require.NoError(t, err)
	assert.Nil(t, s.Encoding.Color)
	assert.Len(t, s.Data.Values[0], 1)
}

func TestHistogram_Errors(t *testing.T) {
	_, err := Histogram(load(t), "origin", "Sex", HistogramOptions{})
	assert.Error(t, err)
	_, err = Histogram(load(t), "distance", "delay", HistogramOptions{})
	assert.Error(t, err)
}

func TestChoropleth(t *testing.T) {
	groups := []aggregate.Group{
		{Key: "USA", Count: 5},
		{Key: "GER", Count: 3},
		{Key: "FRG", Count: 2},
		{Key: "XXX", Count: 1},
	}
	s, unmapped := Choropleth(groups, ChoroplethOptions{Measure: "athletes"})

	assert.Equal(t, []string{"XXX"}, unmapped)
	assert.Equal(t, "Athletes by country (10 athletes)", s.Title)
	require.Len(t, s.Layer, 2)
	assert.Equal(t, "equalEarth", s.Projection.Type)

	base := s.Layer[0]
	assert.Equal(t, WorldAtlasURL, base.Data.URL)
	assert.Equal(t, "countries", base.Data.Format.Feature)

	top := s.Layer[1]
	assert.Equal(t, []map[string]any{
		{"id": 276, "noc": "FRG/GER", "athletes": 5},
		{"id": 840, "noc": "USA", "athletes": 5},
	}, top.Data.Values)
	require.Len(t, top.Transform, 1)
	assert.Equal(t, "geo", top.Transform[0].As)
	assert.Equal(t, "athletes", top.Encoding.Color.Field)
}

func TestChoropleth_Empty(t *testing.T) {
	s, unmapped := Choropleth(nil, ChoroplethOptions{})
	assert.Empty(t, unmapped)
	assert.Empty(t, s.Layer[1].Data.Values)
	assert.Equal(t, "count", s.Layer[1].Encoding.Color.Field)
}

func TestISONumeric(t *testing.T) {
	id, ok := ISONumeric("URS")
	assert.True(t, ok)
	assert.Equal(t, 643, id)
	_, ok = ISONumeric("IOA")
	assert.False(t, ok)
}

func TestHTML(t *testing.T) {
	s, err := Scatter(load(t), "distance", "delay", Options{Title: "Flights </script> test"})
	require.NoError(t, err)
	page, err := HTML(s)
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, vegaEmbedJS)
	assert.Contains(t, html, `vegaEmbed("#vis", `)
	assert.Contains(t, html, SchemaURL)
	// the title cannot break out of the script block
	assert.Equal(t, 4, strings.Count(html, "</script>"))
	assert.Contains(t, html, "Flights &lt;/script&gt; test")
}

func TestAxisTitleAndCount(t *testing.T) {
	assert.Equal(t, "Distance", AxisTitle("distance"))
	assert.Equal(t, "Bin Start", AxisTitle("bin_start"))
	assert.Equal(t, "12,345", Count(12345))
}
