package geodata

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/gregstarr/geodata/coords"
	"github.com/gregstarr/geodata/interp"
)

// InterpOptions configures spatial interpolation.
//
// Fields:
//   - Method       — interpolation kernel; Nearest, Linear or Cubic.
//   - FillValue    — the interpolator's own fill for targets it cannot
//     cover (default NaN). Distinct from the all-NaN fill used when a time
//     step has zero finite samples.
//   - TwoDim       — drop axes that are constant across all samples of the
//     new OR the old location table before interpolating (degenerate-axis
//     reduction for data embedded in a 3-D frame with only 2 varying axes).
//   - LocationMask — optional validity mask over the current locations
//     (e.g. a sensor-beam mask); false entries are excluded alongside NaN
//     samples. Must match the current location count.
//   - Warn         — observer for "zero finite samples" warnings; nil means
//     log.Printf.
//   - Workers      — worker-pool size for the per-time-step loop; <= 0
//     means GOMAXPROCS.
type InterpOptions struct {
	Method       interp.Method
	FillValue    float64
	TwoDim       bool
	LocationMask []bool
	Warn         WarnFunc
	Workers      int
}

// DefaultInterpOptions returns the defaults: Nearest kernel, NaN fill,
// no axis reduction, no mask, GOMAXPROCS workers.
func DefaultInterpOptions() InterpOptions {
	return InterpOptions{Method: interp.Nearest, FillValue: math.NaN()}
}

// Interpolate re-interpolates EVERY field onto newLocs (given in newSys) and
// rewrites the dataset in place: Data, DataLoc and Coords are replaced
// together, and only after every field has been computed — a failure partway
// through leaves g untouched. All interpolated fields become scalar
// (locations × times), image fields included.
//
// The dataset's own locations are first converted into newSys, so source and
// target share one frame. Per field and time step, non-finite samples (and
// mask-excluded locations) are dropped before interpolating — except for the
// image-like field named "optical", whose time steps are single full frames
// and bypass masking. A time step with zero finite samples is filled
// entirely with NaN and reported through the warning observer; this is
// expected operational data, not an error.
//
// opts may be nil for DefaultInterpOptions. Bad targets, an unknown method
// or a wrong-length mask fail with ErrInvalidInterpolation; an impossible
// coordinate pair fails with coords.ErrUnsupportedConversion.
func (g *GeoData) Interpolate(newLocs [][]float64, newSys coords.System, opts *InterpOptions) error {
	o := normalizeInterpOptions(opts)
	cur, tgt, err := g.prepareInterp(newLocs, newSys, o)
	if err != nil {
		return err
	}

	// Two-phase: build every field into a fresh map, swap only on full
	// success.
	data := make(map[string]Field, len(g.Data))
	for _, name := range g.FieldNames() {
		out, err := g.interpField(name, cur, tgt, o)
		if err != nil {
			return err
		}
		data[name] = &ScalarField{Values: out}
	}

	g.Data = data
	g.DataLoc = cloneLocs(newLocs)
	g.Coords = newSys

	return nil
}

// InterpolateField interpolates a single field onto newLocs and returns the
// raw (len(newLocs) × numTimes) result without mutating the dataset. The
// masking, warning and fill semantics match Interpolate.
func (g *GeoData) InterpolateField(name string, newLocs [][]float64, newSys coords.System, opts *InterpOptions) ([][]float64, error) {
	if _, ok := g.Data[name]; !ok {
		return nil, fmt.Errorf("geodata: %q: %w", name, ErrUnknownField)
	}

	o := normalizeInterpOptions(opts)
	cur, tgt, err := g.prepareInterp(newLocs, newSys, o)
	if err != nil {
		return nil, err
	}

	return g.interpField(name, cur, tgt, o)
}

func normalizeInterpOptions(opts *InterpOptions) InterpOptions {
	o := DefaultInterpOptions()
	if opts != nil {
		o = *opts
	}
	if o.Warn == nil {
		o.Warn = defaultWarn
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// prepareInterp validates the request, converts the dataset's locations
// into the target frame, and applies degenerate-axis reduction, returning
// the (possibly reduced) source and target coordinate tables.
func (g *GeoData) prepareInterp(newLocs [][]float64, newSys coords.System, o InterpOptions) (cur, tgt [][]float64, err error) {
	if len(newLocs) == 0 {
		return nil, nil, fmt.Errorf("geodata: empty target-location array: %w", ErrInvalidInterpolation)
	}
	for i, row := range newLocs {
		if len(row) != 3 {
			return nil, nil, fmt.Errorf("geodata: target row %d has width %d, want 3: %w", i, len(row), ErrInvalidInterpolation)
		}
	}
	if !o.Method.Valid() {
		return nil, nil, fmt.Errorf("geodata: method %v: %w", o.Method, ErrInvalidInterpolation)
	}
	if o.LocationMask != nil && len(o.LocationMask) != len(g.DataLoc) {
		return nil, nil, fmt.Errorf("geodata: location mask has length %d, want %d: %w",
			len(o.LocationMask), len(g.DataLoc), ErrInvalidInterpolation)
	}

	cur, err = coords.Convert(g.DataLoc, g.Coords, newSys)
	if err != nil {
		return nil, nil, err
	}

	if !o.TwoDim {
		return cur, newLocs, nil
	}

	// An axis is degenerate when constant across every sample of the new
	// table OR every sample of the old one; remaining axes are interpolated
	// over.
	var keep []int
	for k := 0; k < 3; k++ {
		if !columnConstant(newLocs, k) && !columnConstant(cur, k) {
			keep = append(keep, k)
		}
	}

	return projectColumns(cur, keep), projectColumns(newLocs, keep), nil
}

// interpField interpolates one field onto tgt, one scattered-interpolation
// call per time step, fanned out over a bounded worker pool. Each time step
// writes a disjoint output column, so no ordering between steps is needed;
// warnings are buffered per step and emitted in time order afterwards.
func (g *GeoData) interpField(name string, cur, tgt [][]float64, o InterpOptions) ([][]float64, error) {
	f := g.Data[name]
	nt := f.NumTimes()
	nn := len(tgt)

	out := make([][]float64, nn)
	for i := range out {
		out[i] = make([]float64, nt)
	}

	warnings := make([]string, nt)
	errs := make([]error, nt)

	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := o.Workers
	if workers > nt {
		workers = nt
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				col, warning, err := g.interpStep(name, f, t, cur, tgt, o)
				if err != nil {
					errs[t] = err

					continue
				}
				warnings[t] = warning
				for i := range out {
					out[i][t] = col[i]
				}
			}
		}()
	}
	for t := 0; t < nt; t++ {
		jobs <- t
	}
	close(jobs)
	wg.Wait()

	for t := 0; t < nt; t++ {
		if errs[t] != nil {
			return nil, errs[t]
		}
		if warnings[t] != "" {
			o.Warn("%s", warnings[t])
		}
	}

	return out, nil
}

// interpStep computes one target column for one time step. It returns the
// column, a warning message when the step had zero finite samples (the
// column is then all NaN), or an error from the interpolation kernel.
func (g *GeoData) interpStep(name string, f Field, t int, cur, tgt [][]float64, o InterpOptions) ([]float64, string, error) {
	vals := f.TimeStep(t)

	srcPts := cur
	srcVals := vals
	if name != OpticalField {
		srcPts = make([][]float64, 0, len(vals))
		srcVals = make([]float64, 0, len(vals))
		for i, v := range vals {
			if !isFinite(v) {
				continue
			}
			if o.LocationMask != nil && !o.LocationMask[i] {
				continue
			}
			srcPts = append(srcPts, cur[i])
			srcVals = append(srcVals, v)
		}
	}

	if len(srcVals) == 0 {
		col := make([]float64, len(tgt))
		for i := range col {
			col[i] = math.NaN()
		}
		warning := fmt.Sprintf("geodata: no %s data available at %s",
			name, posixTime(g.Times[t].Start).Format(time.RFC3339))

		return col, warning, nil
	}

	col, err := interp.Griddata(srcPts, srcVals, tgt, o.Method, o.FillValue)
	if err != nil {
		return nil, "", fmt.Errorf("geodata: field %q, time step %d: %w", name, t, err)
	}

	return col, "", nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// columnConstant reports whether column k holds one repeated value. NaN is
// never equal to itself, so a NaN entry marks the axis as varying.
func columnConstant(rows [][]float64, k int) bool {
	first := rows[0][k]
	for _, row := range rows {
		if row[k] != first {
			return false
		}
	}

	return true
}

func projectColumns(rows [][]float64, keep []int) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(keep))
		for j, k := range keep {
			out[i][j] = row[k]
		}
	}

	return out
}

func posixTime(s float64) time.Time {
	sec := math.Floor(s)

	return time.Unix(int64(sec), int64((s-sec)*1e9)).UTC()
}
