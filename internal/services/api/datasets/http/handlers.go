// Package http provides http transport for dataset browsing
package http

import (
	stdhttp "net/http"

	"vizdash/internal/modkit/httpkit"
	"vizdash/internal/services/api/datasets/domain"
	svc "vizdash/internal/services/api/datasets/service"
)

// Register mounts dataset endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{name}", h.detail)
	r.Post("/{name}/reload", httpkit.Call(h.reload))
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /datasets Datasets datasetsList
// @Summary Loaded datasets
// @Tags Datasets
// @Produce json
// @Success 200 {object} domain.ListOutput "ok"
// @Router /datasets [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context()), nil
}

// swagger:route GET /datasets/{name} Datasets datasetsDetail
// @Summary Dataset info with dropdown options and slider extents
// @Tags Datasets
// @Produce json
// @Param name path string true "Dataset" Enums(flights, olympics)
// @Success 200 {object} domain.Detail "ok"
// @Failure 404 {object} httpkit.Envelope "unknown dataset"
// @Router /datasets/{name} [get]
func (h *handlers) detail(r *stdhttp.Request) (any, error) {
	return h.svc.Detail(r.Context(), httpkit.Param(r, "name"))
}

// swagger:route POST /datasets/{name}/reload Datasets datasetsReload
// @Summary Read a dataset source again and swap the snapshot
// @Tags Datasets
// @Produce json
// @Param name path string true "Dataset" Enums(flights, olympics)
// @Success 200 {object} domain.Info "ok"
// @Failure 404 {object} httpkit.Envelope "unknown dataset"
// @Router /datasets/{name}/reload [post]
func (h *handlers) reload(r *stdhttp.Request) (any, error) {
	return h.svc.Reload(r.Context(), httpkit.Param(r, "name"))
}
