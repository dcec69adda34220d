package geodata

import (
	"fmt"

	"github.com/gregstarr/geodata/timegrid"
)

// TimeSliceIndex returns a new dataset restricted to the given time columns,
// in the given order. The result is a structurally independent copy; g is
// not mutated. Scalar fields slice their time (second) axis, image fields
// their frame (first) axis. Out-of-range indices fail with ErrValidation.
func (g *GeoData) TimeSliceIndex(idx []int) (*GeoData, error) {
	for _, t := range idx {
		if t < 0 || t >= len(g.Times) {
			return nil, fmt.Errorf("geodata: time index %d outside [0,%d): %w", t, len(g.Times), ErrValidation)
		}
	}

	times := make(timegrid.Table, len(idx))
	for i, t := range idx {
		times[i] = g.Times[t]
	}

	data := make(map[string]Field, len(g.Data))
	for name, f := range g.Data {
		data[name] = f.SelectTimes(idx)
	}

	return &GeoData{
		Data:      data,
		Coords:    g.Coords,
		DataLoc:   cloneLocs(g.DataLoc),
		SensorLoc: g.SensorLoc,
		Times:     times,
		Desc:      g.Desc,
	}, nil
}

// TimeSliceTimes selects time columns whose interval START exactly equals
// one of the given POSIX times — set membership, no nearest-time fallback —
// and returns the restricted copy. Times that match nothing select nothing;
// a NaN time or NaN start never matches anything (intentional, consistent
// with exact membership).
func (g *GeoData) TimeSliceTimes(starts []float64) (*GeoData, error) {
	want := make(map[float64]struct{}, len(starts))
	for _, s := range starts {
		want[s] = struct{}{}
	}

	var idx []int
	for t, iv := range g.Times {
		if _, ok := want[iv.Start]; ok {
			idx = append(idx, t)
		}
	}

	return g.TimeSliceIndex(idx)
}
