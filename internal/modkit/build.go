package modkit

import (
	"net/http"

	"vizdash/internal/modkit/httpkit"
	phttp "vizdash/internal/platform/net/http"
	str "vizdash/internal/platform/strings"
)

// Option sets one piece of a module's wiring
type Option func(*buildCfg)

type buildCfg struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	ports     any
	subrouter func(phttp.Router) phttp.Router
	register  func(phttp.Router)
}

// WithName names the module for logs and the ports registry
func WithName(name string) Option { return func(c *buildCfg) { c.name = name } }

// WithPrefix sets the mount path, e.g. "/flights"
func WithPrefix(prefix string) Option { return func(c *buildCfg) { c.prefix = prefix } }

// WithMiddlewares appends middleware run only for this module's routes
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts hands the module the ports of the modules it reads from,
// e.g. the dataset catalog for the chart modules
func WithPorts[T any](p T) Option { return func(c *buildCfg) { c.ports = p } }

// WithSubrouter wraps the module router before routes are added
func WithSubrouter(fn func(phttp.Router) phttp.Router) Option {
	return func(c *buildCfg) { c.subrouter = fn }
}

// WithRegister adds routes after the module's own
func WithRegister(fn func(phttp.Router)) Option { return func(c *buildCfg) { c.register = fn } }

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// router hooks set via options and exposed to modules
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies Option funcs in order and returns a plain struct
// later options override earlier ones, so modules pass their defaults first
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// PortsAs returns the injected ports as T
func PortsAs[T any](b Built) (T, bool) {
	p, ok := b.Ports.(T)
	return p, ok
}

// Base carries the routing state every HTTP module shares
// modules embed it and call Mount from MountRoutes
type Base struct {
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	subrouter func(httpkit.Router) httpkit.Router
	external  func(httpkit.Router)
}

// NewBase copies the routing state out of b
func NewBase(b Built) Base {
	return Base{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		external:  b.Register,
	}
}

// Mount registers routes under the module prefix with the module middlewares
func (b Base) Mount(r httpkit.Router, register func(httpkit.Router)) {
	r.Route(b.Prefix(), func(rr httpkit.Router) {
		if len(b.mws) > 0 {
			rr.Use(b.mws...)
		}
		if b.subrouter != nil {
			rr = b.subrouter(rr)
		}
		register(rr)
		if b.external != nil {
			b.external(rr)
		}
	})
}

// Name returns the module name
func (b Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix returns the normalized mount prefix
func (b Base) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns the module middlewares
func (b Base) Middlewares() []func(http.Handler) http.Handler { return b.mws }
