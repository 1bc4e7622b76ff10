package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"vizdash/internal/platform/config"
	"vizdash/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// AllowedOrigins enables CORS for the listed origins, empty disables CORS
	AllowedOrigins []string
	Timeout        time.Duration
	Slow           time.Duration
	// Observer receives request metrics, nil disables them
	Observer middleware.RequestObserver
}

// StackFromConfig reads CORS_ORIGINS, REQUEST_TIMEOUT and SLOW_REQUEST under cfg
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		Timeout:        cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Slow:           cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
	}
}

// CommonStack returns the baseline middleware for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	mw := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.Metrics(o.Observer),
		middleware.RecoverJSON,
		middleware.NoCache(),
	}
	if len(o.AllowedOrigins) > 0 {
		mw = append(mw, middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.AllowedOrigins, MaxAge: 300}))
	}
	return append(mw,
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	)
}
