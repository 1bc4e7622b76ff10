// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"vizdash/internal/core/version"
	"vizdash/internal/modkit/httpkit"
)

// Pinger is satisfied by store seams that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Lister is satisfied by the dataset catalog
type Lister interface {
	Names() []string
}

// Deps are the handler dependencies, nil checks report skipped
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          Pinger
	CH          Pinger
	Catalog     Lister
	// Datasets are the names the catalog must serve to be ready
	Datasets []string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"vizdash-api"`
	Started string `json:"started"  example:"2026-10-16T09:00:00Z"`
	Now     string `json:"now"      example:"2026-10-16T09:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-16T09:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"vizdash-api"`
	Started string `json:"started" example:"2026-10-16T09:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe over the databases and the dataset catalog
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := []ReadyCheck{
		ping(ctx, "pg", h.deps.PG),
		ping(ctx, "ch", h.deps.CH),
		h.catalog(),
	}
	overall := "ok"
	for _, c := range checks {
		if c.Status == "fail" {
			overall = "fail"
		}
	}
	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func ping(ctx stdctx.Context, name string, p Pinger) ReadyCheck {
	if p == nil {
		return ReadyCheck{Name: name, Status: "skipped"}
	}
	if err := p.Ping(ctx); err != nil {
		return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
	}
	return ReadyCheck{Name: name, Status: "ok"}
}

// catalog fails until every configured dataset is loaded
func (h *handlers) catalog() ReadyCheck {
	if h.deps.Catalog == nil {
		return ReadyCheck{Name: "catalog", Status: "skipped"}
	}
	loaded := make(map[string]bool)
	for _, n := range h.deps.Catalog.Names() {
		loaded[n] = true
	}
	for _, want := range h.deps.Datasets {
		if !loaded[want] {
			return ReadyCheck{Name: "catalog", Status: "fail", Error: "dataset " + want + " not loaded"}
		}
	}
	return ReadyCheck{Name: "catalog", Status: "ok"}
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}
