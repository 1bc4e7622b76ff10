// Package http serves the dashboard pages
package http

import (
	"bytes"
	"embed"
	"html/template"
	stdhttp "net/http"

	"vizdash/internal/modkit/httpkit"
	perr "vizdash/internal/platform/errors"
	flights "vizdash/internal/services/api/flights/domain"
	olympics "vizdash/internal/services/api/olympics/domain"
)

//go:embed templates/*.html
var files embed.FS

// each page gets its own set since they define the same blocks
var pages = map[string]*template.Template{
	"flights":  template.Must(template.ParseFS(files, "templates/layout.html", "templates/flights.html")),
	"olympics": template.Must(template.ParseFS(files, "templates/layout.html", "templates/olympics.html")),
}

type flightsDefaults struct {
	MinDistance, MaxDistance float64
	Origin                   string
}

type olympicsDefaults struct {
	FirstYear, LastYear int
	Season, Medal       string
	Seasons, Medals     []string
}

type page struct {
	Title    string
	APIBase  string
	Defaults any
}

// Register mounts the dashboard pages, apiBase is where the page scripts send requests
func Register(r httpkit.Router, apiBase string) {
	httpkit.GetPage(r, "/flights", func(*stdhttp.Request) httpkit.Response {
		return render("flights", page{
			Title:   "Flights Dashboard",
			APIBase: apiBase,
			Defaults: flightsDefaults{
				MinDistance: flights.DefaultMinDistance,
				MaxDistance: flights.DefaultMaxDistance,
				Origin:      flights.DefaultOrigin,
			},
		})
	})
	httpkit.GetPage(r, "/olympics", func(*stdhttp.Request) httpkit.Response {
		return render("olympics", page{
			Title:   "Olympics Dashboard",
			APIBase: apiBase,
			Defaults: olympicsDefaults{
				FirstYear: olympics.DefaultFirstYear,
				LastYear:  olympics.DefaultLastYear,
				Season:    olympics.DefaultSeason,
				Medal:     olympics.DefaultMedal,
				Seasons:   []string{"Summer", "Winter", "Both"},
				Medals:    []string{"Gold", "Silver", "Bronze", "NA", "All"},
			},
		})
	})
}

func render(name string, p page) httpkit.Response {
	var buf bytes.Buffer
	if err := pages[name].ExecuteTemplate(&buf, "layout", p); err != nil {
		return httpkit.Error(perr.Wrap(err, perr.ErrorCodeUnknown, "render "+name+" dashboard"))
	}
	return httpkit.HTML(buf.Bytes())
}
