// Package http provides http transport for the flights dashboard
package http

import (
	stdhttp "net/http"

	"vizdash/internal/modkit/httpkit"
	"vizdash/internal/services/api/flights/domain"
	svc "vizdash/internal/services/api/flights/service"
	"vizdash/internal/services/api/views"
)

// Register mounts flights endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ScatterInput](r, "/scatter", h.scatter)
	httpkit.PostJSON[domain.ScatterInput](r, "/scatter.png", h.scatterImage)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /flights/scatter Flights flightsScatter
// @Summary Delay vs distance scatter of the filtered flights
// @Tags Flights
// @Accept json
// @Produce json
// @Param payload body domain.ScatterInput true "Controls"
// @Success 200 {object} domain.ScatterOutput "ok"
// @Router /flights/scatter [post]
func (h *handlers) scatter(r *stdhttp.Request, in domain.ScatterInput) (any, error) {
	return h.svc.Scatter(r.Context(), in)
}

// swagger:route POST /flights/scatter.png Flights flightsScatterImage
// @Summary Server rendered scatter image
// @Tags Flights
// @Accept json
// @Produce png
// @Produce image/svg+xml
// @Param payload body domain.ScatterInput true "Controls"
// @Param format query string false "png or svg" Enums(png, svg)
// @Success 200 {file} binary "image"
// @Router /flights/scatter.png [post]
func (h *handlers) scatterImage(r *stdhttp.Request, in domain.ScatterInput) (any, error) {
	f, err := views.ImageFormat(r)
	if err != nil {
		return nil, err
	}
	img, err := h.svc.ScatterImage(r.Context(), in, f)
	if err != nil {
		return nil, err
	}
	return httpkit.Blob(f.ContentType(), img), nil
}
