// Package module wires the flights dashboard into the API using modkit
package module

import (
	"vizdash/internal/modkit"
	"vizdash/internal/modkit/httpkit"
	flightshttp "vizdash/internal/services/api/flights/http"
	flightssvc "vizdash/internal/services/api/flights/service"
	"vizdash/internal/services/api/views"
	dsdom "vizdash/internal/services/datasets/domain"
)

// Ports the flights module consumes from other modules
type Ports struct {
	Catalog dsdom.CatalogPort
}

// Module implements the flights module
type Module struct {
	modkit.Base
	svc *flightssvc.Svc
}

// New constructs the flights module, the catalog arrives through modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("flights"), modkit.WithPrefix("/flights")}, opts...)...)

	in, ok := modkit.PortsAs[Ports](b)
	if !ok || in.Catalog == nil {
		panic("flights module requires Ports{Catalog}")
	}
	return &Module{
		Base: modkit.NewBase(b),
		svc:  flightssvc.New(views.Filterer{Catalog: in.Catalog, Observer: deps.Metrics}),
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { flightshttp.Register(rr, m.svc) })
}

// Ports exposes the flights service
func (m *Module) Ports() any { return m.svc }
