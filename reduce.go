package geodata

import (
	"fmt"

	"github.com/gregstarr/geodata/coords"
)

// locationIndex maps each target row to the first exactly-equal row of the
// dataset's location table. The coordinate tag must match the dataset's
// exactly. Exact row equality is used, not masked: a NaN coordinate never
// matches.
func (g *GeoData) locationIndex(targets [][]float64, sys coords.System) ([]int, error) {
	if sys != g.Coords {
		return nil, fmt.Errorf("geodata: coordinate system %s does not match dataset's %s: %w", sys, g.Coords, ErrValidation)
	}

	idx := make([]int, len(targets))
	for i, row := range targets {
		j := findRow(g.DataLoc, row)
		if j < 0 {
			return nil, fmt.Errorf("geodata: location row %d %v: %w", i, row, ErrLocationNotFound)
		}
		idx[i] = j
	}

	return idx, nil
}

// ReduceLocations restricts the dataset in place to the given location rows,
// in the given order. Every field's location axis and the location table
// itself are rewritten by the same selection, keeping the location-count
// invariant. A target row absent from the dataset fails with
// ErrLocationNotFound; image fields fail with ErrUnsupportedFieldShape.
// Nothing is modified unless every field succeeds.
func (g *GeoData) ReduceLocations(targets [][]float64, sys coords.System) error {
	idx, err := g.locationIndex(targets, sys)
	if err != nil {
		return err
	}

	data := make(map[string]Field, len(g.Data))
	for name, f := range g.Data {
		reduced, err := f.SelectLocations(idx)
		if err != nil {
			return fmt.Errorf("geodata: field %q: %w", name, err)
		}
		data[name] = reduced
	}

	loc := make([][]float64, len(idx))
	for i, j := range idx {
		loc[i] = append([]float64(nil), g.DataLoc[j]...)
	}

	g.Data = data
	g.DataLoc = loc

	return nil
}

// ReduceLocationsField returns one field reduced to the given location
// rows without mutating the dataset.
func (g *GeoData) ReduceLocationsField(targets [][]float64, sys coords.System, name string) (Field, error) {
	f, ok := g.Data[name]
	if !ok {
		return nil, fmt.Errorf("geodata: %q: %w", name, ErrUnknownField)
	}

	idx, err := g.locationIndex(targets, sys)
	if err != nil {
		return nil, err
	}

	reduced, err := f.SelectLocations(idx)
	if err != nil {
		return nil, fmt.Errorf("geodata: field %q: %w", name, err)
	}

	return reduced, nil
}
