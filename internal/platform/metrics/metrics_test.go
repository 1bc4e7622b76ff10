package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New(false)
	m.ObserveRequest("/api/v1/flights/scatter", http.MethodPost, 200, 10*time.Millisecond)
	m.ObserveRequest("/api/v1/flights/scatter", http.MethodPost, 200, 20*time.Millisecond)
	m.ObserveRequest("", http.MethodGet, 404, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/v1/flights/scatter", "POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")))
}

func TestDatasetGauges(t *testing.T) {
	m := New(false)
	m.DatasetLoaded("flights", "sample", 40)
	m.DatasetFailed("olympics")

	assert.Equal(t, 40.0, testutil.ToFloat64(m.datasetRows.WithLabelValues("flights", "sample")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues("olympics", "error")))
}

func TestHandler(t *testing.T) {
	m := New(true)
	m.ObserveFilter("flights", 12)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, _ := io.ReadAll(rr.Body)
	assert.True(t, strings.Contains(string(body), `vizdash_filter_rows_count{dataset="flights"} 1`))
	assert.True(t, strings.Contains(string(body), "go_goroutines"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("/", "GET", 200, time.Millisecond)
	m.ObserveFilter("flights", 1)
	m.DatasetLoaded("flights", "sample", 1)
	m.DatasetFailed("flights")
}
