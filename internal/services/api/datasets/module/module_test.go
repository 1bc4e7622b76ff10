package module

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vizdash/internal/datasets"
	"vizdash/internal/modkit"
	"vizdash/internal/platform/config"
	phttp "vizdash/internal/platform/net/http"
	kit "vizdash/internal/platform/testkit"
	"vizdash/internal/services/api/datasets/domain"
	dssvc "vizdash/internal/services/datasets/service"

	"github.com/go-chi/chi/v5"
)

func newRouter(t *testing.T, cfg config.Conf) http.Handler {
	t.Helper()
	cat := dssvc.New(dssvc.Config{Datasets: []dssvc.Spec{{Name: datasets.Flights}}}, dssvc.Backends{}, nil)
	if err := cat.LoadAll(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	m := New(modkit.Deps{Cfg: cfg}, modkit.WithPorts(Ports{Catalog: cat, Reloader: cat}))
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	return mux
}

func do(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestEndpoints(t *testing.T) {
	h := newRouter(t, config.New().Prefix("DSAPI_"))

	if rr := do(h, http.MethodGet, "/datasets/"); rr.Code != http.StatusOK {
		t.Fatalf("list = %d %s", rr.Code, rr.Body.String())
	}

	rr := do(h, http.MethodGet, "/datasets/flights")
	if rr.Code != http.StatusOK {
		t.Fatalf("detail = %d %s", rr.Code, rr.Body.String())
	}
	var env struct {
		Data domain.Detail `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Name != "flights" || len(env.Data.Options["origin"]) == 0 {
		t.Fatalf("detail = %+v", env.Data)
	}
	if _, ok := env.Data.Extents["distance"]; !ok {
		t.Fatalf("extents = %v", env.Data.Extents)
	}

	if rr := do(h, http.MethodGet, "/datasets/cars"); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown = %d", rr.Code)
	}
	if rr := do(h, http.MethodPost, "/datasets/flights/reload"); rr.Code != http.StatusOK {
		t.Fatalf("reload = %d %s", rr.Code, rr.Body.String())
	}
	if rr := do(h, http.MethodPost, "/datasets/cars/reload"); rr.Code != http.StatusNotFound {
		t.Fatalf("reload unknown = %d", rr.Code)
	}
}

func TestMaxOptionsFromConfig(t *testing.T) {
	t.Setenv("DSAPI_MAX_OPTIONS", "1")
	h := newRouter(t, config.New().Prefix("DSAPI_"))

	rr := do(h, http.MethodGet, "/datasets/flights")
	var env struct {
		Data domain.Detail `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(env.Data.Options["origin"]) != 1 || len(env.Data.Truncated) == 0 {
		t.Fatalf("options = %v truncated = %v", env.Data.Options, env.Data.Truncated)
	}
}

func TestNew_RequiresCatalog(t *testing.T) {
	kit.MustPanic(t, func() { _ = New(modkit.Deps{}) })
}
