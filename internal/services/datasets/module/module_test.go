package module

import (
	"context"
	"testing"
	"time"

	"vizdash/internal/adapters/fetch"
	"vizdash/internal/modkit"
	"vizdash/internal/modkit/module"
	"vizdash/internal/platform/config"
	kit "vizdash/internal/platform/testkit"
	dom "vizdash/internal/services/datasets/domain"
)

func TestFromConfig_Defaults(t *testing.T) {
	opts := FromConfig(config.New().Prefix("T1_"))
	if opts.LoadTimeout != time.Minute {
		t.Fatalf("LoadTimeout = %v", opts.LoadTimeout)
	}
	if len(opts.Datasets) != 2 {
		t.Fatalf("datasets = %+v", opts.Datasets)
	}
	flights, olympics := opts.Datasets[0], opts.Datasets[1]
	if flights.Name != "flights" || flights.Limit != 5000 || flights.Source.Kind != dom.SourceSample {
		t.Fatalf("flights = %+v", flights)
	}
	if olympics.Name != "olympics" || olympics.Limit != 0 {
		t.Fatalf("olympics = %+v", olympics)
	}
	if opts.FetchTimeout != 30*time.Second || opts.CacheDir != "" || !opts.Revalidate {
		t.Fatalf("fetch options = %+v", opts)
	}
}

func TestFetcher(t *testing.T) {
	if _, ok := fetcher(Options{}).(*fetch.HTTPFetcher); !ok {
		t.Fatal("no cache dir should fetch directly")
	}
	if _, ok := fetcher(Options{CacheDir: t.TempDir()}).(*fetch.CachedFetcher); !ok {
		t.Fatal("cache dir should cache")
	}
}

func TestFromConfig_Overrides(t *testing.T) {
	t.Setenv("T2_DATASET_FLIGHTS_SOURCE", "file:/srv/flights-10k.csv")
	t.Setenv("T2_DATASET_FLIGHTS_LIMIT", "0")
	t.Setenv("T2_DATASET_OLYMPICS_SOURCE", "pg:public.athlete_events")
	t.Setenv("T2_DATASET_LOAD_TIMEOUT", "5s")
	t.Setenv("T2_DATASET_FETCH_TIMEOUT", "3s")
	t.Setenv("T2_DATASET_CACHE_DIR", "/var/cache/vizdash")
	t.Setenv("T2_DATASET_REVALIDATE", "false")

	opts := FromConfig(config.New().Prefix("T2_"))
	if opts.LoadTimeout != 5*time.Second {
		t.Fatalf("LoadTimeout = %v", opts.LoadTimeout)
	}
	if opts.FetchTimeout != 3*time.Second || opts.CacheDir != "/var/cache/vizdash" || opts.Revalidate {
		t.Fatalf("fetch options = %+v", opts)
	}
	if got := opts.Datasets[0]; got.Source.String() != "file:/srv/flights-10k.csv" || got.Limit != 0 {
		t.Fatalf("flights = %+v", got)
	}
	if got := opts.Datasets[1].Source; got.Kind != dom.SourcePG || got.Target != "public.athlete_events" {
		t.Fatalf("olympics = %+v", got)
	}

	t.Setenv("T2_DATASET_FLIGHTS_SOURCE", "s3:bucket")
	kit.MustPanic(t, func() { _ = FromConfig(config.New().Prefix("T2_")) })
}

func TestModule_LoadAndPorts(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New().Prefix("T3_")})
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name() != "catalog" || m.Prefix() != "" {
		t.Fatalf("name/prefix = %q %q", m.Name(), m.Prefix())
	}

	cat := module.MustPortsOf[dom.CatalogPort](m)
	info, err := cat.Info("flights")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Rows == 0 || info.Snapshot == "" {
		t.Fatalf("info = %+v", info)
	}
	_ = module.MustPortsOf[dom.ReloaderPort](m)
}

func TestModule_MustLoadPanicsWithoutBackend(t *testing.T) {
	t.Setenv("T4_DATASET_OLYMPICS_SOURCE", "ch:athlete_events")
	m := New(modkit.Deps{Cfg: config.New().Prefix("T4_")})
	kit.MustPanic(t, func() { m.MustLoad(context.Background()) })
}
