// Package metrics owns the prometheus registry and the collectors the service exports
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vizdash"

// Metrics is the set of collectors registered on a private registry
type Metrics struct {
	reg *prometheus.Registry

	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	filteredRows *prometheus.HistogramVec
	datasetRows  *prometheus.GaugeVec
	loads        *prometheus.CounterVec
}

// New registers the collectors on a fresh registry
// withRuntime adds the go and process collectors
func New(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		filteredRows: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "rows",
			Help:      "Rows left after applying a filter, by dataset.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"dataset"}),
		datasetRows: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "rows",
			Help:      "Rows held in memory per loaded dataset.",
		}, []string{"dataset", "source"}),
		loads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "loads_total",
			Help:      "Dataset load attempts by outcome.",
		}, []string{"dataset", "outcome"}),
	}
}

// Registry exposes the underlying registry for tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveFilter records the size of a filtered view
func (m *Metrics) ObserveFilter(dataset string, rows int) {
	if m == nil {
		return
	}
	m.filteredRows.WithLabelValues(dataset).Observe(float64(rows))
}

// DatasetLoaded records a successful load
func (m *Metrics) DatasetLoaded(dataset, source string, rows int) {
	if m == nil {
		return
	}
	m.datasetRows.WithLabelValues(dataset, source).Set(float64(rows))
	m.loads.WithLabelValues(dataset, "ok").Inc()
}

// DatasetFailed records a failed load
func (m *Metrics) DatasetFailed(dataset string) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(dataset, "error").Inc()
}
