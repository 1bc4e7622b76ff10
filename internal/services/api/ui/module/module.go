// Package module wires the dashboard pages into the API using modkit
package module

import (
	"vizdash/internal/modkit"
	"vizdash/internal/modkit/httpkit"
	uihttp "vizdash/internal/services/api/ui/http"
)

// DefaultAPIBase is where the pages reach the JSON endpoints
const DefaultAPIBase = "/api/v1"

// Module implements the dashboard pages module
type Module struct {
	modkit.Base
	apiBase string
}

// New constructs the pages module, UI_API_BASE overrides the endpoint root
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("ui"), modkit.WithPrefix("/dashboards")}, opts...)...)
	return &Module{
		Base:    modkit.NewBase(b),
		apiBase: deps.Cfg.MayString("UI_API_BASE", DefaultAPIBase),
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { uihttp.Register(rr, m.apiBase) })
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
