package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"vizdash/internal/core/table"
	"vizdash/internal/datasets"
	perr "vizdash/internal/platform/errors"
	"vizdash/internal/platform/metrics"
	dom "vizdash/internal/services/datasets/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	tbl   *table.Table
	err   error
	calls []string
}

func (f *fakeStorage) Load(_ context.Context, s table.Schema, name string, limit int) (*table.Table, error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return nil, f.err
	}
	return f.tbl, nil
}

func newTestService(cfg Config, b Backends, m *metrics.Metrics) *Service {
	s := New(cfg, b, m)
	ids := 0
	s.newID = func() string {
		ids++
		return []string{"snap-1", "snap-2", "snap-3"}[ids-1]
	}
	s.now = func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestLoadAll_Samples(t *testing.T) {
	m := metrics.New(false)
	s := newTestService(Config{Datasets: []Spec{
		{Name: datasets.Flights, Limit: 10},
		{Name: datasets.Olympics},
	}}, Backends{}, m)

	require.NoError(t, s.LoadAll(context.Background()))
	assert.Equal(t, []string{"flights", "olympics"}, s.Names())

	info, err := s.Info(datasets.Flights)
	require.NoError(t, err)
	assert.Equal(t, 10, info.Rows)
	assert.Equal(t, "sample", info.Source)
	assert.Equal(t, "snap-1", info.Snapshot)
	assert.Equal(t, dom.Column{Name: "date", Kind: "category"}, info.Columns[0])

	tbl, info, err := s.Table(datasets.Olympics)
	require.NoError(t, err)
	assert.Equal(t, tbl.Len(), info.Rows)
	assert.Len(t, s.List(), 2)

	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(`
# HELP vizdash_dataset_rows Rows held in memory per loaded dataset.
# TYPE vizdash_dataset_rows gauge
vizdash_dataset_rows{dataset="flights",source="sample"} 10
vizdash_dataset_rows{dataset="olympics",source="sample"} 44
`), "vizdash_dataset_rows"))
}

func TestTable_Unknown(t *testing.T) {
	s := newTestService(Config{}, Backends{}, nil)
	_, _, err := s.Table("cars")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	_, err = s.Reload(context.Background(), "cars")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
}

func TestLoad_FileSource(t *testing.T) {
	s := newTestService(Config{Datasets: []Spec{
		{Name: datasets.Flights, Source: dom.Source{Kind: dom.SourceFile, Target: "/data/flights.csv"}},
	}}, Backends{}, nil)
	s.openCSV = func(p string) (io.ReadCloser, error) {
		require.Equal(t, "/data/flights.csv", p)
		return io.NopCloser(strings.NewReader("date,delay,distance,origin,destination\n01010600,5,480,SJC,LAX\n")), nil
	}
	require.NoError(t, s.LoadAll(context.Background()))
	info, _ := s.Info(datasets.Flights)
	assert.Equal(t, 1, info.Rows)
	assert.Equal(t, "file:/data/flights.csv", info.Source)

	s.openCSV = func(string) (io.ReadCloser, error) { return nil, errors.New("no such file") }
	_, err := s.Reload(context.Background(), datasets.Flights)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeLoad))
}

type fakeFetcher map[string]string

func (f fakeFetcher) Fetch(_ context.Context, url string) (io.ReadCloser, error) {
	body, ok := f[url]
	if !ok {
		return nil, perr.NotFoundf("fetch %s: not found", url)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func TestLoad_URLSource(t *testing.T) {
	const url = "https://cdn.example/flights.csv"
	src := dom.Source{Kind: dom.SourceURL, Target: url}
	s := newTestService(Config{Datasets: []Spec{{Name: datasets.Flights, Source: src}}}, Backends{
		URL: fakeFetcher{url: "date,delay,distance,origin,destination\n01010600,5,480,SJC,LAX\n01010700,-3,340,OAK,LAX\n"},
	}, nil)
	require.NoError(t, s.LoadAll(context.Background()))
	info, err := s.Info(datasets.Flights)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Rows)
	assert.Equal(t, "url:"+url, info.Source)

	missing := newTestService(Config{Datasets: []Spec{
		{Name: datasets.Flights, Source: dom.Source{Kind: dom.SourceURL, Target: url + ".gone"}},
	}}, Backends{URL: fakeFetcher{}}, nil)
	assert.True(t, perr.IsCode(missing.LoadAll(context.Background()), perr.ErrorCodeNotFound))

	noFetcher := newTestService(Config{Datasets: []Spec{{Name: datasets.Flights, Source: src}}}, Backends{}, nil)
	assert.True(t, perr.IsCode(noFetcher.LoadAll(context.Background()), perr.ErrorCodeUnavailable))
}

func TestLoad_DatabaseSources(t *testing.T) {
	sample, err := datasets.OpenSample(datasets.Flights)
	require.NoError(t, err)
	tbl, err := table.ReadCSV(sample, datasets.FlightsSchema, table.CSVOptions{})
	require.NoError(t, err)
	_ = sample.Close()

	pgStore := &fakeStorage{tbl: tbl}
	s := newTestService(Config{Datasets: []Spec{
		{Name: datasets.Flights, Source: dom.Source{Kind: dom.SourcePG, Target: "public.flights"}, Limit: 5000},
	}}, Backends{PG: pgStore}, nil)
	require.NoError(t, s.LoadAll(context.Background()))
	assert.Equal(t, []string{"public.flights"}, pgStore.calls)

	noCH := newTestService(Config{Datasets: []Spec{
		{Name: datasets.Olympics, Source: dom.Source{Kind: dom.SourceCH, Target: "athlete_events"}},
	}}, Backends{}, nil)
	err = noCH.LoadAll(context.Background())
	assert.True(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
}

func TestReload_KeepsSnapshotOnFailure(t *testing.T) {
	m := metrics.New(false)
	pgStore := &fakeStorage{}
	b, err := table.NewBuilder(datasets.FlightsSchema)
	require.NoError(t, err)
	pgStore.tbl = b.Build()

	s := newTestService(Config{Datasets: []Spec{
		{Name: datasets.Flights, Source: dom.Source{Kind: dom.SourcePG, Target: "flights"}},
	}}, Backends{PG: pgStore}, m)
	require.NoError(t, s.LoadAll(context.Background()))

	info, err := s.Reload(context.Background(), datasets.Flights)
	require.NoError(t, err)
	assert.Equal(t, "snap-2", info.Snapshot)

	pgStore.err = perr.NotFoundf("pg table %q not found", "flights")
	_, err = s.Reload(context.Background(), datasets.Flights)
	require.Error(t, err)
	e, _ := perr.As(err)
	assert.Equal(t, "datasets.load", e.Op())

	info, err = s.Info(datasets.Flights)
	require.NoError(t, err)
	assert.Equal(t, "snap-2", info.Snapshot)
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(`
# HELP vizdash_dataset_loads_total Dataset load attempts by outcome.
# TYPE vizdash_dataset_loads_total counter
vizdash_dataset_loads_total{dataset="flights",outcome="error"} 1
vizdash_dataset_loads_total{dataset="flights",outcome="ok"} 2
`), "vizdash_dataset_loads_total"))
}
