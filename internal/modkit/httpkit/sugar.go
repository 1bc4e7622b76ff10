package httpkit

import "net/http"

// Get registers a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostJSON registers a JSON body handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// GetPage registers a handler returning a raw Response under GET, used for HTML pages
func GetPage(r Router, path string, h func(*http.Request) Response) {
	r.Get(path, Handle(h))
}
