// Package module implements the dataset catalog service module
package module

import (
	"context"

	"vizdash/internal/adapters/fetch"
	"vizdash/internal/modkit"
	"vizdash/internal/modkit/httpkit"
	"vizdash/internal/modkit/repokit"
	"vizdash/internal/platform/logger"
	dom "vizdash/internal/services/datasets/domain"
	"vizdash/internal/services/datasets/repo"
	"vizdash/internal/services/datasets/service"
)

// Ports exposed by the catalog module
type Ports struct {
	Catalog  dom.CatalogPort
	Reloader dom.ReloaderPort
}

// Module implements the catalog service module
type Module struct {
	deps  modkit.Deps
	opts  Options
	svc   *service.Service
	ports Ports
}

// New constructs the catalog module, Load must run before the ports serve data
func New(deps modkit.Deps) *Module {
	return NewWithOptions(deps, FromConfig(deps.Cfg))
}

// NewWithOptions constructs the catalog module from explicit options
func NewWithOptions(deps modkit.Deps, opts Options) *Module {
	b := service.Backends{URL: fetcher(opts)}
	if q, ok := deps.Store.Backend(string(dom.SourcePG)); ok {
		b.PG = repokit.MustBind(repo.New(repo.Postgres), q)
	}
	if q, ok := deps.Store.Backend(string(dom.SourceCH)); ok {
		b.CH = repokit.MustBind(repo.New(repo.ClickHouse), q)
	}
	svc := service.New(service.Config{Datasets: opts.Datasets}, b, deps.Metrics)

	return &Module{
		deps:  deps,
		opts:  opts,
		svc:   svc,
		ports: Ports{Catalog: svc, Reloader: svc},
	}
}

func fetcher(opts Options) fetch.Fetcher {
	f := fetch.NewHTTPFetcher(opts.FetchTimeout)
	if opts.CacheDir == "" {
		return f
	}
	return fetch.NewCachedFetcher(opts.CacheDir, f, fetch.WithRevalidate(opts.Revalidate))
}

// Load reads every dataset within the configured timeout
func (m *Module) Load(ctx context.Context) error {
	if m.opts.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.opts.LoadTimeout)
		defer cancel()
	}
	return m.svc.LoadAll(ctx)
}

// MustLoad is Load for bootstrap code, a failed load is fatal
func (m *Module) MustLoad(ctx context.Context) {
	if err := m.Load(ctx); err != nil {
		logger.Named("datasets").Panic().Err(err).Msg("dataset catalog failed to load")
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "catalog" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
