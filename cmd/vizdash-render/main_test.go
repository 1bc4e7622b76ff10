package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"vizdash/internal/datasets"
	perr "vizdash/internal/platform/errors"
	"vizdash/internal/services/api/views"
	dssvc "vizdash/internal/services/datasets/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterer(t *testing.T) views.Filterer {
	t.Helper()
	cat := dssvc.New(dssvc.Config{Datasets: []dssvc.Spec{
		{Name: datasets.Flights},
		{Name: datasets.Olympics},
	}}, dssvc.Backends{}, nil)
	require.NoError(t, cat.LoadAll(context.Background()))
	return views.Filterer{Catalog: cat}
}

func defaults() flags {
	return flags{
		maxDistance: 2000, origin: "SJC",
		firstYear: 1896, lastYear: 2016, season: "Both", medal: "All",
		sport: "All", country: "All", field: "height",
	}
}

func TestRun(t *testing.T) {
	v := filterer(t)
	ctx := context.Background()

	f := defaults()
	f.chart, f.format, f.width = "scatter", "png", 240
	b, err := run(ctx, f, v)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())

	f.chart, f.format = "histogram", "svg"
	b, err = run(ctx, f, v)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")

	f.chart, f.format = "map", "html"
	b, err = run(ctx, f, v)
	require.NoError(t, err)
	assert.Contains(t, string(b), "vegaEmbed")

	f.chart, f.format = "dashboard", "json"
	b, err = run(ctx, f, v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Contains(t, out, "map")
}

func TestRun_Errors(t *testing.T) {
	v := filterer(t)
	for _, tc := range []struct{ chart, format string }{
		{"map", "png"},
		{"dashboard", "html"},
		{"pie", "json"},
		{"scatter", "pdf"},
	} {
		f := defaults()
		f.chart, f.format = tc.chart, tc.format
		_, err := run(context.Background(), f, v)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument), "%s/%s: %v", tc.chart, tc.format, err)
	}
}

func TestCSV(t *testing.T) {
	assert.Equal(t, []string{"Athletics", "Swimming"}, csv(" Athletics, ,Swimming "))
	assert.Nil(t, csv(""))
}

type flakyFile struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (f *flakyFile) Close() error { f.closed = true; return f.closeErr }

func TestWriteClose(t *testing.T) {
	f := &flakyFile{}
	require.NoError(t, writeClose(f, "chart.png", []byte("png")))
	assert.True(t, f.closed)
	assert.Equal(t, "png", f.String())

	f = &flakyFile{closeErr: errors.New("disk full")}
	err := writeClose(f, "chart.png", []byte("png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write chart.png: disk full")
	assert.True(t, f.closed)
}

func TestWrite_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.svg")
	require.NoError(t, write(path, []byte("<svg/>")))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(b))

	assert.Error(t, write(filepath.Join(t.TempDir(), "missing", "chart.svg"), nil))
}
