package views

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"vizdash/internal/core/chart"
	"vizdash/internal/core/filter"
	"vizdash/internal/core/render"
	"vizdash/internal/core/table"
	perr "vizdash/internal/platform/errors"
	dsdom "vizdash/internal/services/datasets/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type oneTable struct{ tbl *table.Table }

func (o oneTable) Names() []string    { return []string{"flights"} }
func (o oneTable) List() []dsdom.Info { return nil }
func (o oneTable) Info(name string) (dsdom.Info, error) {
	_, info, err := o.Table(name)
	return info, err
}

func (o oneTable) Table(name string) (*table.Table, dsdom.Info, error) {
	if name != "flights" {
		return nil, dsdom.Info{}, perr.NotFoundf("dataset %q not found", name)
	}
	return o.tbl, dsdom.Info{Name: name, Rows: o.tbl.Len(), Snapshot: "snap"}, nil
}

type counter map[string]int

func (c counter) ObserveFilter(dataset string, rows int) { c[dataset] += rows }

func flights(t *testing.T) *table.Table {
	t.Helper()
	s := table.Schema{Name: "flights", Columns: []table.Column{
		{Name: "distance", Kind: table.Number},
		{Name: "origin", Kind: table.Category},
	}}
	tbl, err := table.ReadCSV(strings.NewReader("distance,origin\n405,SJC\n1999,SJC\n2500,SJC\n700,LAX\n"), s, table.CSVOptions{})
	require.NoError(t, err)
	return tbl
}

func TestFilterer_Apply(t *testing.T) {
	obs := counter{}
	f := Filterer{Catalog: oneTable{flights(t)}, Observer: obs}

	got, err := f.Apply(context.Background(), "flights", filter.Spec{
		filter.Open("distance", 0, 2000),
		filter.In("origin", "SJC"),
	})
	require.NoError(t, err)
	assert.Equal(t, Summary{
		Dataset:  "flights",
		Snapshot: "snap",
		Total:    4,
		Rows:     2,
		Filters:  []string{"distance in (0, 2000)", "origin in {SJC}"},
	}, got.Summary)
	assert.Equal(t, 2, obs["flights"])

	_, err = f.Apply(context.Background(), "cars", nil)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))

	_, err = f.Apply(context.Background(), "flights", filter.Spec{filter.In("distance", "1")})
	require.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
	e, _ := perr.As(err)
	assert.Equal(t, "distance", e.Field())
}

func TestInvalid(t *testing.T) {
	assert.Nil(t, Invalid(nil))
	nf := perr.NotFoundf("x")
	assert.Equal(t, nf, Invalid(nf))
	assert.True(t, perr.IsCode(Invalid(errors.New("bad bound")), perr.ErrorCodeInvalidArgument))
}

func TestNewChart(t *testing.T) {
	spec := chart.Spec{Title: "Flights"}
	c, err := NewChart(spec, "json")
	require.NoError(t, err)
	assert.Empty(t, c.HTML)

	c, err = NewChart(spec, "html")
	require.NoError(t, err)
	assert.Contains(t, c.HTML, "vegaEmbed")
}

func TestImageFormat(t *testing.T) {
	f, err := ImageFormat(httptest.NewRequest("POST", "/flights/scatter.png", nil))
	require.NoError(t, err)
	assert.Equal(t, render.PNG, f)

	f, err = ImageFormat(httptest.NewRequest("POST", "/flights/scatter.png?format=svg", nil))
	require.NoError(t, err)
	assert.Equal(t, render.SVG, f)

	_, err = ImageFormat(httptest.NewRequest("POST", "/flights/scatter.png?format=gif", nil))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeValidation))
}
