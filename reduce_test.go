package geodata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregstarr/geodata"
	"github.com/gregstarr/geodata/coords"
)

// TestReduceLocations verifies the in-place restriction: the fields AND the
// location table are rewritten by the same selection, in target order.
func TestReduceLocations(t *testing.T) {
	g := newTestDataset(t)

	require.NoError(t, g.ReduceLocations([][]float64{{1, 1, 0}, {0, 0, 0}}, coords.Cartesian))

	assert.Equal(t, [][]float64{{1, 1, 0}, {0, 0, 0}}, g.DataLoc, "location table must follow the target order")
	assert.Equal(t, 2, g.NumLocations())

	vals := g.Data["ne"].(*geodata.ScalarField).Values
	assert.Equal(t, [][]float64{{10, 11, 12}, {1, 2, 3}}, vals, "field rows must follow the same selection")
	assert.Equal(t, 3, g.NumTimes(), "the time axis is untouched")
}

// TestReduceLocations_NotFound verifies absent rows fail without mutating.
func TestReduceLocations_NotFound(t *testing.T) {
	g := newTestDataset(t)

	err := g.ReduceLocations([][]float64{{0, 0, 0}, {5, 5, 5}}, coords.Cartesian)
	assert.ErrorIs(t, err, geodata.ErrLocationNotFound)
	assert.True(t, g.Equal(newTestDataset(t)), "a failed reduce must leave the dataset untouched")
}

// TestReduceLocations_WrongSystem verifies the coordinate-tag check: exact
// match, no implicit conversion.
func TestReduceLocations_WrongSystem(t *testing.T) {
	g := newTestDataset(t)

	err := g.ReduceLocations([][]float64{{0, 0, 0}}, coords.Spherical)
	assert.ErrorIs(t, err, geodata.ErrValidation)
	assert.True(t, g.Equal(newTestDataset(t)))
}

// TestReduceLocations_ImageField verifies image fields reject location
// selection, atomically.
func TestReduceLocations_ImageField(t *testing.T) {
	g := newTestDataset(t)
	g.Data["optical"] = geodata.NewImageField(2, 2, [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})
	before := g.Clone()

	err := g.ReduceLocations([][]float64{{0, 0, 0}}, coords.Cartesian)
	assert.ErrorIs(t, err, geodata.ErrUnsupportedFieldShape)
	assert.True(t, g.Equal(before), "no field may change when one of them fails")
}

// TestReduceLocationsField verifies the read-only single-field variant.
func TestReduceLocationsField(t *testing.T) {
	g := newTestDataset(t)

	f, err := g.ReduceLocationsField([][]float64{{0, 1, 0}}, coords.Cartesian, "ne")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{7, 8, 9}}, f.(*geodata.ScalarField).Values)
	assert.True(t, g.Equal(newTestDataset(t)), "the dataset itself must be untouched")

	_, err = g.ReduceLocationsField([][]float64{{0, 1, 0}}, coords.Cartesian, "missing")
	assert.ErrorIs(t, err, geodata.ErrUnknownField)
}
