// Package ch opens a ClickHouse connection for dataset sources
package ch

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures the connection
type Config struct {
	// URL is a clickhouse DSN, e.g. clickhouse://default:@localhost:9000/default
	URL        string
	ClientName string
	ClientTag  string
	// DialTimeout overrides the driver default when > 0
	DialTimeout time.Duration
}

// CH wraps a native protocol connection
type CH struct {
	conn driver.Conn
}

var openConn = clickhouse.Open

// Open parses cfg.URL and opens the connection, the driver dials lazily
func Open(_ context.Context, cfg Config) (*CH, error) {
	opts, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, err
	}
	opts.ClientInfo = BuildClientInfo(cfg.ClientName, cfg.ClientTag)
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	conn, err := openConn(opts)
	if err != nil {
		return nil, err
	}
	return &CH{conn: conn}, nil
}

// Ping checks the server is reachable
func (c *CH) Ping(ctx context.Context) error {
	if c == nil || c.conn == nil {
		return errors.New("ch: nil connection")
	}
	return c.conn.Ping(ctx)
}

// Query runs a read query
func (c *CH) Query(ctx context.Context, sql string, args ...any) (*Rows, error) {
	if c == nil || c.conn == nil {
		return nil, errors.New("ch: nil connection")
	}
	r, err := c.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return &Rows{r: r}, nil
}

// Close closes the connection
func (c *CH) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Rows iterates a result set; Scan into *any is resolved through the column scan types
// so generic row helpers work without knowing ClickHouse types
type Rows struct {
	r     driver.Rows
	typed []reflect.Value
}

func (x *Rows) Next() bool        { return x.r.Next() }
func (x *Rows) Err() error        { return x.r.Err() }
func (x *Rows) Close() error      { return x.r.Close() }
func (x *Rows) Columns() []string { return x.r.Columns() }

// Scan copies the current row into dest
func (x *Rows) Scan(dest ...any) error {
	if !anyDest(dest) {
		return x.r.Scan(dest...)
	}
	if x.typed == nil {
		for _, ct := range x.r.ColumnTypes() {
			x.typed = append(x.typed, reflect.New(ct.ScanType()))
		}
	}
	if len(dest) != len(x.typed) {
		return errors.New("ch: scan destination count does not match columns")
	}
	ptrs := make([]any, len(dest))
	for i, d := range dest {
		if _, ok := d.(*any); ok {
			ptrs[i] = x.typed[i].Interface()
		} else {
			ptrs[i] = d
		}
	}
	if err := x.r.Scan(ptrs...); err != nil {
		return err
	}
	for i, d := range dest {
		if p, ok := d.(*any); ok {
			*p = plain(x.typed[i].Elem())
		}
	}
	return nil
}

func anyDest(dest []any) bool {
	for _, d := range dest {
		if _, ok := d.(*any); ok {
			return true
		}
	}
	return false
}

// plain unwraps the pointer scan types of Nullable columns
func plain(v reflect.Value) any {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}
