package interp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregstarr/geodata/interp"
)

func grid2d() (points [][]float64, values []float64) {
	for x := 0.0; x <= 2; x++ {
		for y := 0.0; y <= 2; y++ {
			points = append(points, []float64{x, y})
			values = append(values, 2*x+3*y+1)
		}
	}

	return points, values
}

// TestGriddata_NearestExactAtSamples verifies the nearest kernel reproduces
// sample values exactly when queried at the sample coordinates.
func TestGriddata_NearestExactAtSamples(t *testing.T) {
	points, values := grid2d()

	got, err := interp.Griddata(points, values, points, interp.Nearest, math.NaN())
	require.NoError(t, err)
	assert.Equal(t, values, got, "nearest must be exact at the sample points")
}

// TestGriddata_NearestPicksClosest verifies a query snaps to its closest
// sample, in three dimensions.
func TestGriddata_NearestPicksClosest(t *testing.T) {
	points := [][]float64{{0, 0, 0}, {10, 0, 0}, {0, 10, 0}, {0, 0, 10}}
	values := []float64{1, 2, 3, 4}

	got, err := interp.Griddata(points, values, [][]float64{{9, 1, 0}, {0.1, 0.2, 9}}, interp.Nearest, math.NaN())
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, got, "queries must snap to the closest sample")
}

// TestGriddata_LinearReproducesAffine verifies the linear kernel is exact
// for affine data inside the sample bounding box.
func TestGriddata_LinearReproducesAffine(t *testing.T) {
	points, values := grid2d()
	targets := [][]float64{{0.5, 0.5}, {1.25, 0.75}, {2, 2}, {0, 1.5}}

	got, err := interp.Griddata(points, values, targets, interp.Linear, math.NaN())
	require.NoError(t, err)
	for i, q := range targets {
		assert.InDelta(t, 2*q[0]+3*q[1]+1, got[i], 1e-6, "affine data must interpolate exactly at %v", q)
	}
}

// TestGriddata_CubicExactAtNodes verifies the cubic kernel interpolates —
// it passes through every sample value.
func TestGriddata_CubicExactAtNodes(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.3}}
	values := []float64{0, 1, 4, -2, 7}

	got, err := interp.Griddata(points, values, points, interp.Cubic, math.NaN())
	require.NoError(t, err)
	for i := range values {
		assert.InDelta(t, values[i], got[i], 1e-6, "cubic must pass through node %d", i)
	}
}

// TestGriddata_FillOutsideBounds verifies the documented out-of-box fill
// policy of the RBF kernels, and that nearest ignores it.
func TestGriddata_FillOutsideBounds(t *testing.T) {
	points, values := grid2d()
	outside := [][]float64{{-1, 1}, {5, 5}}

	got, err := interp.Griddata(points, values, outside, interp.Linear, -999)
	require.NoError(t, err)
	assert.Equal(t, []float64{-999, -999}, got, "linear must fill outside the sample box")

	got, err = interp.Griddata(points, values, outside, interp.Nearest, -999)
	require.NoError(t, err)
	assert.NotContains(t, got, -999.0, "nearest extrapolates instead of filling")
}

// TestGriddata_TooFewSamplesFills verifies linear fills every target when
// the samples cannot support the affine tail.
func TestGriddata_TooFewSamplesFills(t *testing.T) {
	points := [][]float64{{0, 0}, {1, 1}} // 2 samples in 2-D: fewer than dim+1
	values := []float64{1, 2}

	got, err := interp.Griddata(points, values, [][]float64{{0.5, 0.5}}, interp.Linear, math.NaN())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got[0]), "underdetermined system must yield the fill value")
}

// TestGriddata_BadInput covers the validation failures.
func TestGriddata_BadInput(t *testing.T) {
	_, err := interp.Griddata(nil, nil, [][]float64{{0}}, interp.Nearest, math.NaN())
	assert.ErrorIs(t, err, interp.ErrBadInput, "no sample points must error")

	_, err = interp.Griddata([][]float64{{0, 0}}, []float64{1, 2}, nil, interp.Nearest, math.NaN())
	assert.ErrorIs(t, err, interp.ErrBadInput, "value/point count mismatch must error")

	_, err = interp.Griddata([][]float64{{0, 0}, {1}}, []float64{1, 2}, nil, interp.Nearest, math.NaN())
	assert.ErrorIs(t, err, interp.ErrBadInput, "inconsistent point dims must error")

	_, err = interp.Griddata([][]float64{{0, 0}}, []float64{1}, [][]float64{{0, 0, 0}}, interp.Nearest, math.NaN())
	assert.ErrorIs(t, err, interp.ErrBadInput, "inconsistent target dims must error")

	_, err = interp.Griddata([][]float64{{0, 0}}, []float64{1}, [][]float64{{0, 0}}, interp.Method(7), math.NaN())
	assert.ErrorIs(t, err, interp.ErrUnknownMethod, "unknown method must error")
}

// TestMethod_String pins the kernel names.
func TestMethod_String(t *testing.T) {
	assert.Equal(t, "nearest", interp.Nearest.String())
	assert.Equal(t, "linear", interp.Linear.String())
	assert.Equal(t, "cubic", interp.Cubic.String())
	assert.False(t, interp.Method(7).Valid())
}
