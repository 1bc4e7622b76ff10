package middleware

import (
	"net/http"
	"runtime/debug"

	perr "vizdash/internal/platform/errors"
	"vizdash/internal/platform/logger"
	pnet "vizdash/internal/platform/net"
)

// RecoverJSON converts panics into the JSON error envelope with status 500
// and logs the stack with the request id
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			pnet.WriteError(w, perr.PanicErrf("panic recovered"), reqID)
		}()
		next.ServeHTTP(w, r)
	})
}
