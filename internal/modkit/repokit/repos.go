// Package repokit binds dataset repositories to a store backend
package repokit

import "vizdash/internal/platform/store"

// Queryer is the read surface every dataset backend offers
type Queryer = store.Querier

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row
)

// Binder turns a backend into a repo, one per SQL dialect
type Binder[T any] interface {
	Bind(Queryer) T
}

// MustBind binds q, a nil backend is a wiring bug and panics
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: bind to nil backend")
	}
	return b.Bind(q)
}
