// Package http is the HTTP transport: router seam, server, handler adapters and the response envelope
package http

import (
	"encoding/json"
	stdhttp "net/http"
	"strconv"

	perr "vizdash/internal/platform/errors"
	"vizdash/internal/platform/logger"
	pnet "vizdash/internal/platform/net"
)

// Envelope is the body of every JSON response
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func success(status int, reqID string, data any) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

func failure(err error, reqID string) (int, Envelope) {
	status, wr := perr.HTTP(err)
	return status, Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		Code:       wr.Code,
		Error:      wr.Message,
		Field:      wr.Field,
		RequestID:  reqID,
	}
}

// RespondOK writes a 200 envelope around data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	JSON(w, stdhttp.StatusOK, success(stdhttp.StatusOK, pnet.RequestID(r.Context()), data))
}

// RespondError writes the envelope for err; server side failures are logged
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, env := failure(err, pnet.RequestID(r.Context()))
	if status >= stdhttp.StatusInternalServerError {
		logger.C(r.Context()).Error().Err(err).Int("status", status).Msg("request failed")
	}
	JSON(w, status, env)
}

// Response is what return style handlers produce
// Raw with ContentType bypasses the envelope for images and pages
type Response struct {
	Status      int
	Body        any
	Header      stdhttp.Header
	ContentType string
	Raw         []byte
}

// Handle adapts a Response returning function to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(resp.Raw)))
		w.WriteHeader(status)
		_, _ = w.Write(resp.Raw)
		return
	}
	JSON(w, status, success(status, pnet.RequestID(r.Context()), resp.Body))
}

// OK returns a 200 envelope around data
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// NoContent returns a bare 204
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns the envelope for err
func Error(err error) Response { return Response{Body: err} }

// Blob returns b verbatim with the given content type
func Blob(contentType string, b []byte) Response {
	return Response{Status: stdhttp.StatusOK, ContentType: contentType, Raw: b}
}

// HTML returns an HTML page
func HTML(page []byte) Response { return Blob("text/html; charset=utf-8", page) }

// Result turns a handler's (value, error) pair into a Response; a Response value passes through
func Result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
