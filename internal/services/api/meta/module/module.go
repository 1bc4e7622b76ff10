// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"vizdash/internal/datasets"
	"vizdash/internal/modkit"
	"vizdash/internal/modkit/httpkit"
	metahttp "vizdash/internal/services/api/meta/http"
)

// ServiceName is reported by health, version and service
const ServiceName = "vizdash-api"

// Ports the meta module consumes, all optional
type Ports struct {
	Catalog metahttp.Lister
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	deps      metahttp.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	in, _ := modkit.PortsAs[Ports](b)
	m := &Module{Base: modkit.NewBase(b), startedAt: time.Now()}
	m.deps = metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   m.startedAt,
		Catalog:     in.Catalog,
		Datasets:    datasets.Names(),
	}
	if p, ok := deps.PG().(metahttp.Pinger); ok {
		m.deps.PG = p
	}
	if p, ok := deps.CH().(metahttp.Pinger); ok {
		m.deps.CH = p
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
