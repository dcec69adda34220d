package geodata

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/gregstarr/geodata/coords"
	"github.com/gregstarr/geodata/timegrid"
)

// WarnFunc receives the runtime warnings of this package (printf
// signature). It is injected rather than taken from a global logger so
// callers — and tests — can observe warnings deterministically.
type WarnFunc func(format string, args ...any)

// defaultWarn routes warnings to the standard logger when no observer was
// injected.
func defaultWarn(format string, args ...any) { log.Printf(format, args...) }

// Tuple is the canonical six-tuple an adapter produces and New consumes.
type Tuple struct {
	// Fields maps unique field names to their measurement arrays.
	Fields map[string]Field
	// Coords tags the coordinate system of Locations.
	Coords coords.System
	// Locations is the (numLocations, 3) sample-location table.
	Locations [][]float64
	// SensorLoc is the sensor's (lat, lon, altitude) in WGS units, or all
	// NaN for satellite (non-point-source) data.
	SensorLoc [3]float64
	// RawTimes holds either (numTimes,1) instants or (numTimes,2)
	// [start,end] pairs; New normalizes it via timegrid.Repair.
	RawTimes [][]float64
	// Desc is free-form experiment text, not semantically load-bearing.
	Desc string
}

// GeoData is the aggregate root: a set of named measurement fields over a
// shared location table and time-interval table. Instances are constructed
// once by New; merge and slice operations produce new instances.
type GeoData struct {
	Data      map[string]Field
	Coords    coords.System
	DataLoc   [][]float64
	SensorLoc [3]float64
	Times     timegrid.Table
	Desc      string
}

// New validates the six-tuple, normalizes its raw times, and builds a
// dataset. Shape violations fail with ErrValidation. warn may be nil
// (warnings then go to log.Printf); it only fires for the single-instant
// time synthesis.
func New(t Tuple, warn WarnFunc) (*GeoData, error) {
	if !t.Coords.Valid() {
		return nil, fmt.Errorf("geodata: coordinate system %q: %w", t.Coords, ErrValidation)
	}
	if len(t.Locations) == 0 {
		return nil, fmt.Errorf("geodata: empty location table: %w", ErrValidation)
	}
	for i, row := range t.Locations {
		if len(row) != 3 {
			return nil, fmt.Errorf("geodata: location row %d has width %d, want 3: %w", i, len(row), ErrValidation)
		}
	}

	times, err := timegrid.Repair(t.RawTimes, warn)
	if err != nil {
		return nil, fmt.Errorf("geodata: raw times: %w: %w", err, ErrValidation)
	}
	for i, iv := range times {
		if iv.Start > iv.End {
			return nil, fmt.Errorf("geodata: interval %d has start %v after end %v: %w", i, iv.Start, iv.End, ErrValidation)
		}
	}

	data := make(map[string]Field, len(t.Fields))
	for name, f := range t.Fields {
		if f == nil {
			return nil, fmt.Errorf("geodata: field %q is nil: %w", name, ErrValidation)
		}
		if f.NumTimes() != len(times) {
			return nil, fmt.Errorf("geodata: field %q has %d time steps, want %d: %w", name, f.NumTimes(), len(times), ErrValidation)
		}
		if f.SamplesPerTime() != len(t.Locations) {
			return nil, fmt.Errorf("geodata: field %q has %d samples per time step, want %d: %w",
				name, f.SamplesPerTime(), len(t.Locations), ErrValidation)
		}
		data[name] = f
	}

	return &GeoData{
		Data:      data,
		Coords:    t.Coords,
		DataLoc:   t.Locations,
		SensorLoc: t.SensorLoc,
		Times:     times,
		Desc:      t.Desc,
	}, nil
}

// FieldNames returns the field names in sorted order, so iteration and
// warning sequences are deterministic.
func (g *GeoData) FieldNames() []string {
	names := make([]string, 0, len(g.Data))
	for name := range g.Data {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// NumLocations returns the number of rows in the location table.
func (g *GeoData) NumLocations() int { return len(g.DataLoc) }

// NumTimes returns the number of time columns.
func (g *GeoData) NumTimes() int { return len(g.Times) }

// IsSatellite reports whether the dataset has no fixed ground sensor, i.e.
// the sensor location is entirely NaN.
func (g *GeoData) IsSatellite() bool {
	for _, v := range g.SensorLoc {
		if !math.IsNaN(v) {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy sharing no mutable storage with g.
func (g *GeoData) Clone() *GeoData {
	data := make(map[string]Field, len(g.Data))
	for name, f := range g.Data {
		data[name] = f.Clone()
	}

	return &GeoData{
		Data:      data,
		Coords:    g.Coords,
		DataLoc:   cloneLocs(g.DataLoc),
		SensorLoc: g.SensorLoc,
		Times:     g.Times.Clone(),
		Desc:      g.Desc,
	}
}

// Equal reports NaN-masked structural equality: matching field-name sets,
// per-field masked equality, exactly matching coordinate tags, and masked
// equality of locations, sensor location and interval table. Finite values
// compare with exact float equality (deliberate, documented choice); an
// index where one side is NaN and the other finite compares unequal.
// Equal is reflexive and symmetric.
func (g *GeoData) Equal(o *GeoData) bool {
	if len(g.Data) != len(o.Data) {
		return false
	}
	for name, f := range g.Data {
		of, ok := o.Data[name]
		if !ok || !f.EqualMasked(of) {
			return false
		}
	}
	if g.Coords != o.Coords {
		return false
	}
	if !maskedEqual2D(g.DataLoc, o.DataLoc) {
		return false
	}
	if !maskedEqual3(g.SensorLoc, o.SensorLoc) {
		return false
	}

	return maskedEqualTable(g.Times, o.Times)
}

// HasLocations reports whether every row of locs appears (by exact
// equality) in the dataset's location table, under the same coordinate tag.
func (g *GeoData) HasLocations(locs [][]float64, sys coords.System) bool {
	if sys != g.Coords {
		return false
	}
	for _, row := range locs {
		if findRow(g.DataLoc, row) < 0 {
			return false
		}
	}

	return true
}

// TransformField applies fn to field name and stores the result as newName,
// removing the old field when rmOld is set. The result must keep the
// dataset's time count.
func (g *GeoData) TransformField(name, newName string, fn func(Field) (Field, error), rmOld bool) error {
	f, ok := g.Data[name]
	if !ok {
		return fmt.Errorf("geodata: %q: %w", name, ErrUnknownField)
	}

	out, err := fn(f)
	if err != nil {
		return err
	}
	if out.NumTimes() != len(g.Times) {
		return fmt.Errorf("geodata: transformed field %q has %d time steps, want %d: %w",
			newName, out.NumTimes(), len(g.Times), ErrValidation)
	}

	g.Data[newName] = out
	if rmOld && newName != name {
		delete(g.Data, name)
	}

	return nil
}

// findRow returns the first index of an exactly-equal row, or -1. Exact
// equality, not masked: NaN never matches here.
func findRow(table [][]float64, row []float64) int {
	for i, r := range table {
		if len(r) != len(row) {
			continue
		}
		match := true
		for k := range r {
			if r[k] != row[k] {
				match = false

				break
			}
		}
		if match {
			return i
		}
	}

	return -1
}

func cloneLocs(locs [][]float64) [][]float64 {
	out := make([][]float64, len(locs))
	for i, row := range locs {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
