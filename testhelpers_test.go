package geodata_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gregstarr/geodata"
	"github.com/gregstarr/geodata/coords"
)

// testLocations is a 2×2 unit square in the z=0 plane.
func testLocations() [][]float64 {
	return [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
}

// newTestDataset builds a 4-location, 3-time Cartesian dataset with a single
// scalar field "ne".
func newTestDataset(t *testing.T) *geodata.GeoData {
	t.Helper()

	ne := geodata.NewScalarField([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{10, 11, 12},
	})

	g, err := geodata.New(geodata.Tuple{
		Fields:    map[string]geodata.Field{"ne": ne},
		Coords:    coords.Cartesian,
		Locations: testLocations(),
		SensorLoc: [3]float64{65.1, -147.5, 0.2},
		RawTimes:  [][]float64{{0, 10}, {10, 20}, {20, 30}},
		Desc:      "unit square test data",
	}, nil)
	require.NoError(t, err, "test dataset must construct")

	return g
}

// warnRecorder captures warnings for deterministic assertions.
type warnRecorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *warnRecorder) warn(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func (r *warnRecorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.msgs...)
}
