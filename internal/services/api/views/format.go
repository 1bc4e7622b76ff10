package views

import (
	"net/http"

	"vizdash/internal/core/chart"
	"vizdash/internal/core/render"
	perr "vizdash/internal/platform/errors"
)

// Chart is a Vega-Lite spec with its optional standalone page
type Chart struct {
	Spec chart.Spec `json:"spec"`
	HTML string     `json:"html,omitempty"`
}

// NewChart wraps spec and renders the page when format is html
func NewChart(spec chart.Spec, format string) (Chart, error) {
	c := Chart{Spec: spec}
	if format != "html" {
		return c, nil
	}
	page, err := chart.HTML(spec)
	if err != nil {
		return Chart{}, perr.Wrap(err, perr.ErrorCodeUnknown, "render chart page")
	}
	c.HTML = string(page)
	return c, nil
}

// ImageFormat reads the format query parameter of image endpoints, default png
func ImageFormat(r *http.Request) (render.Format, error) {
	f, err := render.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		return "", perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, err.Error()), "format")
	}
	return f, nil
}
