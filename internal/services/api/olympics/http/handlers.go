// Package http provides http transport for the olympics dashboard
package http

import (
	stdhttp "net/http"

	"vizdash/internal/modkit/httpkit"
	"vizdash/internal/services/api/olympics/domain"
	svc "vizdash/internal/services/api/olympics/service"
	"vizdash/internal/services/api/views"
)

// Register mounts olympics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.HistogramInput](r, "/histogram", h.histogram)
	httpkit.PostJSON[domain.HistogramInput](r, "/histogram.png", h.histogramImage)
	httpkit.PostJSON[domain.MapInput](r, "/map", h.countryMap)
	httpkit.PostJSON[domain.DashboardInput](r, "/dashboard", h.dashboard)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /olympics/histogram Olympics olympicsHistogram
// @Summary Height or age distribution of the filtered athletes, split by sex
// @Tags Olympics
// @Accept json
// @Produce json
// @Param payload body domain.HistogramInput true "Controls"
// @Success 200 {object} domain.HistogramOutput "ok"
// @Router /olympics/histogram [post]
func (h *handlers) histogram(r *stdhttp.Request, in domain.HistogramInput) (any, error) {
	return h.svc.Histogram(r.Context(), in)
}

// swagger:route POST /olympics/histogram.png Olympics olympicsHistogramImage
// @Summary Server rendered histogram image
// @Tags Olympics
// @Accept json
// @Produce png
// @Produce image/svg+xml
// @Param payload body domain.HistogramInput true "Controls"
// @Param format query string false "png or svg" Enums(png, svg)
// @Success 200 {file} binary "image"
// @Router /olympics/histogram.png [post]
func (h *handlers) histogramImage(r *stdhttp.Request, in domain.HistogramInput) (any, error) {
	f, err := views.ImageFormat(r)
	if err != nil {
		return nil, err
	}
	img, err := h.svc.HistogramImage(r.Context(), in, f)
	if err != nil {
		return nil, err
	}
	return httpkit.Blob(f.ContentType(), img), nil
}

// swagger:route POST /olympics/map Olympics olympicsMap
// @Summary Distinct athletes per country
// @Tags Olympics
// @Accept json
// @Produce json
// @Param payload body domain.MapInput true "Controls"
// @Success 200 {object} domain.MapOutput "ok"
// @Router /olympics/map [post]
func (h *handlers) countryMap(r *stdhttp.Request, in domain.MapInput) (any, error) {
	return h.svc.Map(r.Context(), in)
}

// swagger:route POST /olympics/dashboard Olympics olympicsDashboard
// @Summary Every olympics chart for one control state
// @Tags Olympics
// @Accept json
// @Produce json
// @Param payload body domain.DashboardInput true "Controls"
// @Success 200 {object} domain.DashboardOutput "ok"
// @Router /olympics/dashboard [post]
func (h *handlers) dashboard(r *stdhttp.Request, in domain.DashboardInput) (any, error) {
	return h.svc.Dashboard(r.Context(), in)
}
