// Package modkit provides module wiring and core deps
package modkit

import (
	"vizdash/internal/platform/config"
	"vizdash/internal/platform/logger"
	"vizdash/internal/platform/metrics"
	"vizdash/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Store   *store.Store
	Metrics *metrics.Metrics
}

// PG returns the postgres seam or nil when disabled
func (d Deps) PG() store.RowQuerier {
	if d.Store == nil {
		return nil
	}
	return d.Store.PG
}

// CH returns the clickhouse seam or nil when disabled
func (d Deps) CH() store.Clickhouse {
	if d.Store == nil {
		return nil
	}
	return d.Store.CH
}
