package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"vizdash/internal/core/aggregate"
	"vizdash/internal/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schema = table.Schema{
	Name: "render",
	Columns: []table.Column{
		{Name: "distance", Kind: table.Number},
		{Name: "delay", Kind: table.Number},
		{Name: "Sex", Kind: table.Category},
	},
}

const rows = `distance,delay,Sex
480,0,M
342,-16,F
1999,25,F
700,NA,M
`

func load(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.ReadCSV(strings.NewReader(rows), schema, table.CSVOptions{})
	require.NoError(t, err)
	return tbl
}

func TestScatterPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Scatter(&buf, load(t), "distance", "delay", PNG, Options{Title: "flights", Width: 320, Height: 200}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestScatterSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Scatter(&buf, load(t), "distance", "delay", SVG, Options{}))
	assert.Contains(t, buf.String(), "<svg")
}

func TestScatter_EmptyAndSinglePoint(t *testing.T) {
	tbl := load(t)
	var buf bytes.Buffer
	require.NoError(t, Scatter(&buf, tbl.Select(nil), "distance", "delay", PNG, Options{}))
	assert.NotZero(t, buf.Len())

	buf.Reset()
	require.NoError(t, Scatter(&buf, tbl.Select([]int{0}), "distance", "delay", PNG, Options{}))
	assert.NotZero(t, buf.Len())
}

func TestScatter_BadColumn(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Scatter(&buf, load(t), "Sex", "delay", PNG, Options{}))
	assert.Error(t, Scatter(&buf, load(t), "distance", "nope", PNG, Options{}))
}

func TestHistogram(t *testing.T) {
	h, err := aggregate.Bins(load(t), "distance", "Sex", aggregate.BinOptions{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Histogram(&buf, h, PNG, Options{Title: "distance"}))
	_, err = png.Decode(&buf)
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, Histogram(&buf, h, SVG, Options{}))
	assert.Contains(t, buf.String(), "<svg")
}

func TestHistogram_Empty(t *testing.T) {
	h, err := aggregate.Bins(load(t).Select(nil), "distance", "Sex", aggregate.BinOptions{})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Histogram(&buf, h, PNG, Options{}))
	assert.NotZero(t, buf.Len())
}

func TestSteps(t *testing.T) {
	xs, ys := steps([]float64{0, 10, 20}, []int{3, 1})
	assert.Equal(t, []float64{0, 0, 10, 10, 20, 20}, xs)
	assert.Equal(t, []float64{0, 3, 3, 1, 1, 0}, ys)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, "image/png", f.ContentType())

	f, err = ParseFormat("SVG")
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", f.ContentType())

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}
