package middleware

import (
	"net/http"
	"time"
)

// RequestObserver receives one observation per finished request
type RequestObserver interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

// Metrics reports every request to obs labelled by its chi route pattern
// so path parameters do not explode label cardinality
func Metrics(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if obs == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(cw, r)
			obs.ObserveRequest(routePattern(r), r.Method, cw.status, time.Since(start))
		})
	}
}
