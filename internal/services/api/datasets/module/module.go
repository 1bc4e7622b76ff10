// Package module wires dataset browsing into the API using modkit
package module

import (
	"vizdash/internal/modkit"
	"vizdash/internal/modkit/httpkit"
	"vizdash/internal/services/api/datasets/domain"
	dshttp "vizdash/internal/services/api/datasets/http"
	dssvc "vizdash/internal/services/api/datasets/service"
	dsdom "vizdash/internal/services/datasets/domain"
)

// Ports the datasets module consumes, Reloader is optional
type Ports struct {
	Catalog  dsdom.CatalogPort
	Reloader dsdom.ReloaderPort
}

// Module implements the datasets module
type Module struct {
	modkit.Base
	svc *dssvc.Svc
}

// New constructs the datasets module
// MAX_OPTIONS caps the dropdown values returned per column
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("datasets"), modkit.WithPrefix("/datasets")}, opts...)...)

	in, ok := modkit.PortsAs[Ports](b)
	if !ok || in.Catalog == nil {
		panic("datasets module requires Ports{Catalog}")
	}
	return &Module{
		Base: modkit.NewBase(b),
		svc:  dssvc.New(in.Catalog, in.Reloader, deps.Cfg.MayInt("MAX_OPTIONS", domain.DefaultMaxOptions)),
	}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { dshttp.Register(rr, m.svc) })
}

// Ports exposes the datasets service
func (m *Module) Ports() any { return m.svc }
