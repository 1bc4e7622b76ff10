// Command vizdash-render renders one dashboard chart to a file without the HTTP server
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"vizdash/internal/core/render"
	"vizdash/internal/modkit"
	"vizdash/internal/platform/config"
	perr "vizdash/internal/platform/errors"
	"vizdash/internal/platform/logger"
	"vizdash/internal/platform/store"
	"vizdash/internal/services/api/views"
	catalog "vizdash/internal/services/datasets/module"

	flightsdom "vizdash/internal/services/api/flights/domain"
	flightssvc "vizdash/internal/services/api/flights/service"
	olympicsdom "vizdash/internal/services/api/olympics/domain"
	olympicssvc "vizdash/internal/services/api/olympics/service"
)

type flags struct {
	chart, format, out string
	width, height      int

	minDistance, maxDistance float64
	origin                   string

	firstYear, lastYear int
	season, medal       string
	sport, country      string
	field               string
	maxBins             int
}

func main() {
	var f flags
	flag.StringVar(&f.chart, "chart", "scatter", "scatter | histogram | map | dashboard")
	flag.StringVar(&f.format, "format", "png", "json | html | png | svg")
	flag.StringVar(&f.out, "out", "-", "output file, - for stdout")
	flag.IntVar(&f.width, "width", 0, "chart width in pixels")
	flag.IntVar(&f.height, "height", 0, "chart height in pixels")
	flag.Float64Var(&f.minDistance, "min-distance", flightsdom.DefaultMinDistance, "flights: exclusive lower distance bound")
	flag.Float64Var(&f.maxDistance, "max-distance", flightsdom.DefaultMaxDistance, "flights: exclusive upper distance bound")
	flag.StringVar(&f.origin, "origin", flightsdom.DefaultOrigin, "flights: origin airport or All")
	flag.IntVar(&f.firstYear, "first-year", olympicsdom.DefaultFirstYear, "olympics: first year, inclusive")
	flag.IntVar(&f.lastYear, "last-year", olympicsdom.DefaultLastYear, "olympics: last year, inclusive")
	flag.StringVar(&f.season, "season", olympicsdom.DefaultSeason, "olympics: Summer | Winter | Both")
	flag.StringVar(&f.medal, "medal", olympicsdom.DefaultMedal, "olympics: Gold | Silver | Bronze | NA | All")
	flag.StringVar(&f.sport, "sport", "All", "olympics: comma separated sports")
	flag.StringVar(&f.country, "country", "All", "olympics: comma separated teams")
	flag.StringVar(&f.field, "field", "height", "olympics histogram: height | age")
	flag.IntVar(&f.maxBins, "max-bins", 0, "olympics histogram: bin cap")
	flag.Parse()

	l := logger.Get()
	ctx := context.Background()

	root := config.New()
	st, err := store.Open(ctx, store.Config{
		AppName: "vizdash-render",
		PG:      store.PGFromEnv(root.Prefix("SERVICE_PGSQL_")),
		CH:      store.CHFromEnv(root.Prefix("SERVICE_CLICKHOUSE_"), "render"),
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	closeStore := sync.OnceFunc(func() {
		if err := st.Close(ctx); err != nil {
			l.Warn().Err(err).Msg("store close failed")
		}
	})
	defer closeStore()

	cat := catalog.NewWithOptions(modkit.Deps{Log: *l, Store: st}, catalog.FromConfig(root))
	cat.MustLoad(ctx)
	ports := cat.Ports().(catalog.Ports)
	filterer := views.Filterer{Catalog: ports.Catalog}

	body, err := run(ctx, f, filterer)
	if err != nil {
		closeStore()
		l.Fatal().Err(err).Str("chart", f.chart).Str("format", f.format).Msg("render failed")
	}
	if err := write(f.out, body); err != nil {
		closeStore()
		l.Fatal().Err(err).Str("out", f.out).Msg("write failed")
	}
	l.Info().Str("chart", f.chart).Str("format", f.format).Int("bytes", len(body)).Str("out", f.out).Msg("rendered")
}

// run renders the requested chart; json prints the whole response, html the chart page
func run(ctx context.Context, f flags, v views.Filterer) ([]byte, error) {
	size := olympicsdom.ChartOptions{Width: f.width, Height: f.height}
	if f.format == "html" {
		size.Format = "html"
	}
	filter := olympicsdom.Filter{
		Year:    &olympicsdom.YearRange{Min: f.firstYear, Max: f.lastYear},
		Season:  f.season,
		Medal:   f.medal,
		Sport:   csv(f.sport),
		Country: csv(f.country),
	}
	img, raster := render.Format(f.format), f.format == "png" || f.format == "svg"

	switch f.chart {
	case "scatter":
		s := flightssvc.New(v)
		in := flightsdom.ScatterInput{
			Distance: &flightsdom.DistanceRange{Min: f.minDistance, Max: f.maxDistance},
			Origin:   f.origin,
			Format:   size.Format,
			Width:    f.width,
			Height:   f.height,
		}
		if raster {
			return s.ScatterImage(ctx, in, img)
		}
		out, err := s.Scatter(ctx, in)
		return emit(f.format, out, out.Chart, err)
	case "histogram":
		s := olympicssvc.New(v)
		in := olympicsdom.HistogramInput{Filter: filter, ChartOptions: size, Field: f.field, MaxBins: f.maxBins, Overlay: true}
		if raster {
			return s.HistogramImage(ctx, in, img)
		}
		out, err := s.Histogram(ctx, in)
		return emit(f.format, out, out.Histogram.Chart, err)
	case "map":
		if raster {
			return nil, perr.InvalidArgf("the map has no %s form, use json or html", f.format)
		}
		out, err := olympicssvc.New(v).Map(ctx, olympicsdom.MapInput{Filter: filter, ChartOptions: size})
		return emit(f.format, out, out.Map.Chart, err)
	case "dashboard":
		if f.format != "json" {
			return nil, perr.InvalidArgf("the dashboard is json only")
		}
		out, err := olympicssvc.New(v).Dashboard(ctx, olympicsdom.DashboardInput{Filter: filter, ChartOptions: size, MaxBins: f.maxBins})
		return emit(f.format, out, views.Chart{}, err)
	}
	return nil, perr.InvalidArgf("unknown chart %q", f.chart)
}

func emit(format string, out any, c views.Chart, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	switch format {
	case "json":
		return json.MarshalIndent(out, "", "  ")
	case "html":
		return []byte(c.HTML), nil
	}
	return nil, perr.InvalidArgf("unknown format %q", format)
}

func csv(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func write(path string, b []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(b)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return writeClose(f, path, b)
}

// writeClose writes b and closes w, a failed close is reported like a failed write
func writeClose(w io.WriteCloser, path string, b []byte) error {
	_, err := w.Write(b)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
