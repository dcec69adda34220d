package geodata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregstarr/geodata"
	"github.com/gregstarr/geodata/coords"
	"github.com/gregstarr/geodata/timegrid"
)

// newMergeCompanion builds a dataset compatible with newTestDataset but
// covering two different time intervals.
func newMergeCompanion(t *testing.T) *geodata.GeoData {
	t.Helper()

	ne := geodata.NewScalarField([][]float64{
		{100, 200},
		{101, 201},
		{102, 202},
		{103, 203},
	})

	g, err := geodata.New(geodata.Tuple{
		Fields:    map[string]geodata.Field{"ne": ne},
		Coords:    coords.Cartesian,
		Locations: testLocations(),
		SensorLoc: [3]float64{65.1, -147.5, 0.2},
		RawTimes:  [][]float64{{-5, 2}, {12, 22}},
		Desc:      "unit square test data",
	}, nil)
	require.NoError(t, err)

	return g
}

// TestAddTimes_SortedMerge verifies the union interval table is sorted by
// start and that every field's columns follow the same permutation.
func TestAddTimes_SortedMerge(t *testing.T) {
	g := newTestDataset(t)
	o := newMergeCompanion(t)

	m, err := g.AddTimes(o)
	require.NoError(t, err)

	wantTimes := timegrid.Table{
		{Start: -5, End: 2},
		{Start: 0, End: 10},
		{Start: 10, End: 20},
		{Start: 12, End: 22},
		{Start: 20, End: 30},
	}
	assert.Equal(t, wantTimes, m.Times, "intervals must merge sorted by start")

	vals := m.Data["ne"].(*geodata.ScalarField).Values
	assert.Equal(t, []float64{100, 1, 2, 200, 3}, vals[0], "field columns must follow the table permutation")
	assert.Equal(t, []float64{103, 10, 11, 203, 12}, vals[3], "every location row permutes the same way")
}

// TestAddTimes_ContentCommutative verifies both merge orders produce equal
// datasets.
func TestAddTimes_ContentCommutative(t *testing.T) {
	g := newTestDataset(t)
	o := newMergeCompanion(t)

	ab, err := g.AddTimes(o)
	require.NoError(t, err)
	ba, err := o.AddTimes(g)
	require.NoError(t, err)

	assert.True(t, ab.Equal(ba), "merge must be commutative up to content")
}

// TestAddTimes_OriginalsUntouched verifies AddTimes returns a new dataset
// and leaves both inputs intact.
func TestAddTimes_OriginalsUntouched(t *testing.T) {
	g := newTestDataset(t)
	o := newMergeCompanion(t)

	m, err := g.AddTimes(o)
	require.NoError(t, err)

	m.Data["ne"].(*geodata.ScalarField).Values[0][0] = -1
	m.DataLoc[0][0] = -1
	assert.True(t, g.Equal(newTestDataset(t)), "first input must be unchanged")
	assert.True(t, o.Equal(newMergeCompanion(t)), "second input must be unchanged")
}

// TestAddTimes_Mismatches covers every precondition, each failing with
// ErrMergeMismatch.
func TestAddTimes_Mismatches(t *testing.T) {
	g := newTestDataset(t)

	o := newMergeCompanion(t)
	o.Data["te"] = o.Data["ne"]
	delete(o.Data, "ne")
	_, err := g.AddTimes(o)
	assert.ErrorIs(t, err, geodata.ErrMergeMismatch, "field-name sets must match")

	o = newMergeCompanion(t)
	o.Coords = coords.Spherical
	_, err = g.AddTimes(o)
	assert.ErrorIs(t, err, geodata.ErrMergeMismatch, "coordinate systems must match")

	o = newMergeCompanion(t)
	o.DataLoc[1][0] = 7
	_, err = g.AddTimes(o)
	assert.ErrorIs(t, err, geodata.ErrMergeMismatch, "location tables must match")

	o = newMergeCompanion(t)
	o.SensorLoc[2] = 99
	_, err = g.AddTimes(o)
	assert.ErrorIs(t, err, geodata.ErrMergeMismatch, "sensor locations must match")
}

// TestTimeRegister pins the overlap matching on a hand-checked pair of
// datasets.
func TestTimeRegister(t *testing.T) {
	g := newTestDataset(t) // intervals [0,10], [10,20], [20,30]

	o, err := geodata.New(geodata.Tuple{
		Fields: map[string]geodata.Field{
			"ne": geodata.NewScalarField([][]float64{{1, 2, 3, 4}}),
		},
		Coords:    coords.Cartesian,
		Locations: [][]float64{{0, 0, 0}},
		RawTimes:  [][]float64{{-5, 2}, {1, 12}, {12, 22}, {22, 35}},
	}, nil)
	require.NoError(t, err)

	got := g.TimeRegister(o)
	require.Len(t, got, g.NumTimes())
	assert.Equal(t, []int{0, 1}, got[0])
	assert.Equal(t, []int{1, 2}, got[1])
	assert.Equal(t, []int{2, 3}, got[2])
}
