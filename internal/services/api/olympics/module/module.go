// Package module wires the olympics dashboard into the API using modkit
package module

import (
	"vizdash/internal/modkit"
	"vizdash/internal/modkit/httpkit"
	olympicshttp "vizdash/internal/services/api/olympics/http"
	olympicssvc "vizdash/internal/services/api/olympics/service"
	"vizdash/internal/services/api/views"
	dsdom "vizdash/internal/services/datasets/domain"
)

// Ports the olympics module consumes from other modules
type Ports struct {
	Catalog dsdom.CatalogPort
}

// Module implements the olympics module
type Module struct {
	modkit.Base
	svc *olympicssvc.Svc
}

// New constructs the olympics module, the catalog arrives through modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("olympics"), modkit.WithPrefix("/olympics")}, opts...)...)

	in, ok := modkit.PortsAs[Ports](b)
	if !ok || in.Catalog == nil {
		panic("olympics module requires Ports{Catalog}")
	}
	return &Module{
		Base: modkit.NewBase(b),
		svc:  olympicssvc.New(views.Filterer{Catalog: in.Catalog, Observer: deps.Metrics}),
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { olympicshttp.Register(rr, m.svc) })
}

// Ports exposes the olympics service
func (m *Module) Ports() any { return m.svc }
