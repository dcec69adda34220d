package geodata

import (
	"fmt"
	"sort"

	"github.com/gregstarr/geodata/timegrid"
)

// AddTimes merges two datasets along the time axis and returns a NEW
// dataset whose interval table is the union of both, sorted ascending by
// interval start. One sort permutation is computed from the merged table
// and applied uniformly to the table and to every field, so columns stay
// aligned across all fields.
//
// Preconditions, each failing with ErrMergeMismatch naming the culprit:
// identical field-name sets, identical coordinate system, masked-equal
// location tables and masked-equal sensor locations (NaN entries are
// ignored; finite entries must match exactly on both sides —
// finite-vs-NaN is a mismatch).
func (g *GeoData) AddTimes(o *GeoData) (*GeoData, error) {
	if len(g.Data) != len(o.Data) {
		return nil, fmt.Errorf("geodata: field names differ: %w", ErrMergeMismatch)
	}
	for name := range g.Data {
		if _, ok := o.Data[name]; !ok {
			return nil, fmt.Errorf("geodata: field names differ (%q missing): %w", name, ErrMergeMismatch)
		}
	}
	if g.Coords != o.Coords {
		return nil, fmt.Errorf("geodata: coordinate systems %s and %s differ: %w", g.Coords, o.Coords, ErrMergeMismatch)
	}
	if !maskedEqual2D(g.DataLoc, o.DataLoc) {
		return nil, fmt.Errorf("geodata: locations differ: %w", ErrMergeMismatch)
	}
	if !maskedEqual3(g.SensorLoc, o.SensorLoc) {
		return nil, fmt.Errorf("geodata: sensor locations differ: %w", ErrMergeMismatch)
	}

	merged := make(timegrid.Table, 0, len(g.Times)+len(o.Times))
	merged = append(merged, g.Times...)
	merged = append(merged, o.Times...)

	perm := make([]int, len(merged))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return merged[perm[a]].Start < merged[perm[b]].Start
	})

	times := make(timegrid.Table, len(merged))
	for i, p := range perm {
		times[i] = merged[p]
	}

	data := make(map[string]Field, len(g.Data))
	for name, f := range g.Data {
		cat, err := f.ConcatTimes(o.Data[name])
		if err != nil {
			return nil, fmt.Errorf("geodata: field %q: %w", name, err)
		}
		data[name] = cat.SelectTimes(perm)
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

// TimeRegister matches every time interval of g against the intervals of o.
// The result has one entry per time column of g, holding the indices of o's
// columns that overlap it (empty when none do). The matching is the
// documented approximation of timegrid.Register, not a true interval join.
func (g *GeoData) TimeRegister(o *GeoData) [][]int {
	return timegrid.Register(g.Times, o.Times)
}
