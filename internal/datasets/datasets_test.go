package datasets

import (
	"testing"

	"vizdash/internal/core/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSample(t *testing.T, name string) *table.Table {
	t.Helper()
	s, ok := Schema(name)
	require.True(t, ok)
	rc, err := OpenSample(name)
	require.NoError(t, err)
	defer rc.Close()
	tbl, err := table.ReadCSV(rc, s, table.CSVOptions{})
	require.NoError(t, err)
	return tbl
}

func TestSamplesMatchSchemas(t *testing.T) {
	flights := readSample(t, Flights)
	assert.Equal(t, 40, flights.Len())

	olympics := readSample(t, Olympics)
	assert.Equal(t, 44, olympics.Len())

	lo, hi, ok, err := olympics.Extent("Year")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1896.0, lo)
	assert.Equal(t, 2016.0, hi)

	seasons, err := olympics.Distinct("Season")
	require.NoError(t, err)
	assert.Equal(t, []string{"Summer", "Winter"}, seasons)
}

func TestUnknownDataset(t *testing.T) {
	_, ok := Schema("cars")
	assert.False(t, ok)
	_, err := OpenSample("cars")
	assert.Error(t, err)
}
