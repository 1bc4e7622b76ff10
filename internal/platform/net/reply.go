package net

import (
	"encoding/json"
	"net/http"

	perr "vizdash/internal/platform/errors"
)

// Wire is the error envelope written by transports that sit below the router,
// such as panic recovery; handlers use the richer phttp.Envelope
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
}

// Error maps err to its status and envelope
func Error(err error, reqID string) (int, Wire) {
	status, w := perr.HTTP(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		Field:      w.Field,
		RequestID:  reqID,
	}
}

// WriteError writes the envelope for err and mirrors the request id header
func WriteError(w http.ResponseWriter, err error, reqID string) {
	status, body := Error(err, reqID)
	if reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
