package http

import (
	"net/http"

	"vizdash/internal/platform/net/http/bind"
)

// JSONHandler binds and validates a T from the body, then hands it to fn
// fn may return a Response to take over the reply, e.g. for images
func JSONHandler[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return Result(fn(r, in))
	})
}

// JSONHandlerNoBody calls fn without reading the body
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return Result(fn(r)) })
}
