package store

import (
	"context"
	"errors"
	"testing"

	"vizdash/internal/platform/store/ch"

	"github.com/stretchr/testify/assert"
)

type fakeCH struct {
	pingErr error
	closed  bool
}

func (f *fakeCH) Query(context.Context, string, ...any) (*ch.Rows, error) {
	return nil, errors.New("table vega.flights does not exist")
}
func (f *fakeCH) Ping(context.Context) error { return f.pingErr }
func (f *fakeCH) Close() error               { f.closed = true; return nil }

func TestCHAdapter(t *testing.T) {
	f := &fakeCH{pingErr: errors.New("dial tcp: refused")}
	a := newCHAdapter(f)

	_, err := a.Query(context.Background(), "SELECT * FROM flights")
	assert.ErrorContains(t, err, "does not exist")

	assert.ErrorContains(t, a.Ping(context.Background()), "refused")

	assert.NoError(t, a.Close())
	assert.True(t, f.closed)

	var nilAdapter *clickhouseAdapter
	assert.Error(t, nilAdapter.Ping(context.Background()))
}
