// Package api provides the HTTP API for the dashboards
package api

import (
	"context"

	"vizdash/internal/platform/config"
	"vizdash/internal/platform/logger"
	"vizdash/internal/platform/metrics"
	phttp "vizdash/internal/platform/net/http"
	"vizdash/internal/platform/store"

	"vizdash/internal/modkit"
	"vizdash/internal/modkit/httpkit"
	"vizdash/internal/modkit/module"
	"vizdash/internal/modkit/swaggerkit"

	datasetsmod "vizdash/internal/services/api/datasets/module"
	flightsmod "vizdash/internal/services/api/flights/module"
	metamod "vizdash/internal/services/api/meta/module"
	olympicsmod "vizdash/internal/services/api/olympics/module"
	uimod "vizdash/internal/services/api/ui/module"

	catalog "vizdash/internal/services/datasets/module"
)

// Options are the API options
type Options struct {
	Config  config.Conf
	Store   *store.Store
	Logger  *logger.Logger
	Metrics *metrics.Metrics
	// Catalog is the loaded dataset catalog, nil builds and loads one from Config
	Catalog        *catalog.Module
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Store:   opt.Store,
		Metrics: opt.Metrics,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	cat := opt.Catalog
	if cat == nil {
		cat = catalog.NewWithOptions(deps, catalog.FromConfig(config.New()))
		cat.MustLoad(context.Background())
	}
	ports := module.MustPortsOf[catalog.Ports](cat)

	mods := []module.Module{
		cat,
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Catalog: ports.Catalog})),
		datasetsmod.New(deps, modkit.WithPorts(datasetsmod.Ports{Catalog: ports.Catalog, Reloader: ports.Reloader})),
		flightsmod.New(deps, modkit.WithPorts(flightsmod.Ports{Catalog: ports.Catalog})),
		olympicsmod.New(deps, modkit.WithPorts(olympicsmod.Ports{Catalog: ports.Catalog})),
		uimod.New(deps),
	}

	stack := httpkit.StackFromConfig(opt.Config)
	if opt.Metrics != nil {
		stack.Observer = opt.Metrics
	}

	swaggerkit.Mount(r, opt.Config, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.EnableMetrics && opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		for _, m := range mods {
			// ports are registered under the module name for cross-module lookups
			module.Register(m)
			m.MountRoutes(api)
		}
	})
}
