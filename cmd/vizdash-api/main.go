// @title         vizdash API
// @version       0.1.0
// @description   Filtered views and charts for the flights and olympics dashboards

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"vizdash/internal/modkit"
	"vizdash/internal/platform/config"
	"vizdash/internal/platform/logger"
	"vizdash/internal/platform/metrics"
	phttp "vizdash/internal/platform/net/http"
	"vizdash/internal/platform/store"

	"vizdash/internal/services/api"
	catalog "vizdash/internal/services/datasets/module"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("VIZDASH_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// databases are optional, each opens only when its DBURL is set
	st, err := store.Open(ctx, store.Config{
		AppName: "vizdash-api",
		PG:      store.PGFromEnv(pgCfg),
		CH:      store.CHFromEnv(chCfg, "api"),
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	m := metrics.New(true)
	deps := modkit.Deps{Log: *l, Cfg: apiCfg, Store: st, Metrics: m}

	// datasets load before the server accepts requests
	cat := catalog.NewWithOptions(deps, catalog.FromConfig(root))
	cat.MustLoad(ctx)

	srv := phttp.NewServer(apiCfg)
	api.Mount(srv.Router(), api.Options{
		Config:         apiCfg,
		Store:          st,
		Logger:         l,
		Metrics:        m,
		Catalog:        cat,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		EnableMetrics:  apiCfg.MayBool("METRICS", true),
	})

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
