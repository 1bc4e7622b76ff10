package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "vizdash/internal/platform/net/http"
	kit "vizdash/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func serve(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), "/api/v1")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestFlightsPage(t *testing.T) {
	rr := serve(t, "/flights")
	if rr.Code != http.StatusOK || !strings.HasPrefix(rr.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("status = %d ct = %q", rr.Code, rr.Header().Get("Content-Type"))
	}
	body := rr.Body.String()
	kit.MustContain(t, body, "<h1>Flights Dashboard</h1>")
	kit.MustContain(t, body, `<input type="range" id="xmin" min="0" max="2000" step="10" value="0">`)
	kit.MustContain(t, body, `<input type="range" id="xmax" min="0" max="2000" step="10" value="2000">`)
	kit.MustContain(t, body, "d.extents.distance")
	kit.MustContain(t, body, "function slider(")
	kit.MustContain(t, body, "<option selected>SJC</option>")
	kit.MustContain(t, body, "const API = ")
	kit.MustContain(t, body, "v1")
}

func TestOlympicsPage(t *testing.T) {
	rr := serve(t, "/olympics")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	kit.MustContain(t, body, "<h1>Olympics Dashboard</h1>")
	kit.MustContain(t, body, `<input type="range" id="ymin" min="1896" max="2016" step="2" value="1896">`)
	kit.MustContain(t, body, `<input type="range" id="ymax" min="1896" max="2016" step="2" value="2016">`)
	kit.MustContain(t, body, "d.extents.Year")
	kit.MustContain(t, body, `value="Both" checked`)
	kit.MustContain(t, body, `value="All" checked`)
	kit.MustContain(t, body, "/olympics/dashboard")
}
