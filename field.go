package geodata

import "fmt"

// OpticalField is the reserved name of the image-like field that bypasses
// per-location masking during interpolation: each of its time steps is one
// full frame, not per-location samples with possible gaps.
const OpticalField = "optical"

// Field is one named, time-indexed measurement array of a dataset. Two
// shapes exist, and shape dispatch is an interface-level branch rather than
// runtime rank inspection:
//
//	ScalarField — (numLocations, numTimes) per-location samples
//	ImageField  — (numTimes, rows, cols) full frame per time step
//
// NaN values denote missing measurements.
type Field interface {
	// NumTimes returns the length of the field's time axis.
	NumTimes() int
	// SamplesPerTime returns the number of values in one time step: the
	// location count for scalar fields, rows*cols for image fields.
	SamplesPerTime() int
	// TimeStep returns the values of time step t as a flat slice, one entry
	// per location (or pixel). The slice is a view; callers must not modify
	// it.
	TimeStep(t int) []float64
	// SelectTimes returns an independent copy restricted to the given time
	// indices, in order. Indices must be valid; callers validate.
	SelectTimes(idx []int) Field
	// ConcatTimes appends other's time axis after this field's. The shapes
	// must agree (same kind, same location count or frame geometry).
	ConcatTimes(other Field) (Field, error)
	// SelectLocations returns an independent copy restricted to the given
	// location rows, in order. Image fields have no location axis and fail
	// with ErrUnsupportedFieldShape.
	SelectLocations(idx []int) (Field, error)
	// Clone returns an independent deep copy.
	Clone() Field
	// EqualMasked compares two fields under NaN masking: an index is equal
	// iff both values are NaN or both are finite and exactly equal.
	EqualMasked(other Field) bool
}

// ScalarField holds per-location samples: Values[i][j] is location i at
// time step j.
type ScalarField struct {
	Values [][]float64
}

// NewScalarField wraps a (numLocations, numTimes) table as a Field. The
// table is used as-is, not copied.
func NewScalarField(values [][]float64) *ScalarField {
	return &ScalarField{Values: values}
}

// NumTimes implements Field.
func (f *ScalarField) NumTimes() int {
	if len(f.Values) == 0 {
		return 0
	}

	return len(f.Values[0])
}

// SamplesPerTime implements Field.
func (f *ScalarField) SamplesPerTime() int { return len(f.Values) }

// TimeStep implements Field. It gathers column t into a fresh slice.
func (f *ScalarField) TimeStep(t int) []float64 {
	out := make([]float64, len(f.Values))
	for i, row := range f.Values {
		out[i] = row[t]
	}

	return out
}

// SelectTimes implements Field.
func (f *ScalarField) SelectTimes(idx []int) Field {
	out := make([][]float64, len(f.Values))
	for i, row := range f.Values {
		out[i] = make([]float64, len(idx))
		for j, t := range idx {
			out[i][j] = row[t]
		}
	}

	return &ScalarField{Values: out}
}

// ConcatTimes implements Field.
func (f *ScalarField) ConcatTimes(other Field) (Field, error) {
	o, ok := other.(*ScalarField)
	if !ok {
		return nil, fmt.Errorf("geodata: cannot concatenate scalar and image fields: %w", ErrMergeMismatch)
	}
	if len(o.Values) != len(f.Values) {
		return nil, fmt.Errorf("geodata: location counts %d and %d differ: %w", len(f.Values), len(o.Values), ErrMergeMismatch)
	}

	out := make([][]float64, len(f.Values))
	for i, row := range f.Values {
		out[i] = make([]float64, 0, len(row)+len(o.Values[i]))
		out[i] = append(out[i], row...)
		out[i] = append(out[i], o.Values[i]...)
	}

	return &ScalarField{Values: out}, nil
}

// SelectLocations implements Field.
func (f *ScalarField) SelectLocations(idx []int) (Field, error) {
	out := make([][]float64, len(idx))
	for j, i := range idx {
		out[j] = append([]float64(nil), f.Values[i]...)
	}

	return &ScalarField{Values: out}, nil
}

// Clone implements Field.
func (f *ScalarField) Clone() Field {
	out := make([][]float64, len(f.Values))
	for i, row := range f.Values {
		out[i] = append([]float64(nil), row...)
	}

	return &ScalarField{Values: out}
}

// EqualMasked implements Field.
func (f *ScalarField) EqualMasked(other Field) bool {
	o, ok := other.(*ScalarField)
	if !ok {
		return false
	}

	return maskedEqual2D(f.Values, o.Values)
}

// ImageField holds one full frame per time step: Frames[t] is a row-major
// Rows×Cols image. The frame pixels are the dataset's locations, so
// Rows*Cols must equal the location count.
type ImageField struct {
	Rows, Cols int
	Frames     [][]float64
}

// NewImageField wraps a stack of row-major frames as a Field. The frames
// are used as-is, not copied.
func NewImageField(rows, cols int, frames [][]float64) *ImageField {
	return &ImageField{Rows: rows, Cols: cols, Frames: frames}
}

// NumTimes implements Field.
func (f *ImageField) NumTimes() int { return len(f.Frames) }

// SamplesPerTime implements Field.
func (f *ImageField) SamplesPerTime() int { return f.Rows * f.Cols }

// TimeStep implements Field.
func (f *ImageField) TimeStep(t int) []float64 { return f.Frames[t] }

// SelectTimes implements Field. Image stacks slice the frame (first) axis.
func (f *ImageField) SelectTimes(idx []int) Field {
	out := make([][]float64, len(idx))
	for j, t := range idx {
		out[j] = append([]float64(nil), f.Frames[t]...)
	}

	return &ImageField{Rows: f.Rows, Cols: f.Cols, Frames: out}
}

// ConcatTimes implements Field.
func (f *ImageField) ConcatTimes(other Field) (Field, error) {
	o, ok := other.(*ImageField)
	if !ok {
		return nil, fmt.Errorf("geodata: cannot concatenate image and scalar fields: %w", ErrMergeMismatch)
	}
	if o.Rows != f.Rows || o.Cols != f.Cols {
		return nil, fmt.Errorf("geodata: frame geometries %dx%d and %dx%d differ: %w",
			f.Rows, f.Cols, o.Rows, o.Cols, ErrMergeMismatch)
	}

	out := make([][]float64, 0, len(f.Frames)+len(o.Frames))
	for _, fr := range f.Frames {
		out = append(out, append([]float64(nil), fr...))
	}
	for _, fr := range o.Frames {
		out = append(out, append([]float64(nil), fr...))
	}

	return &ImageField{Rows: f.Rows, Cols: f.Cols, Frames: out}, nil
}

// SelectLocations implements Field. Frames have no location axis.
func (f *ImageField) SelectLocations([]int) (Field, error) {
	return nil, fmt.Errorf("geodata: image fields have no location axis: %w", ErrUnsupportedFieldShape)
}

// Clone implements Field.
func (f *ImageField) Clone() Field {
	out := make([][]float64, len(f.Frames))
	for i, fr := range f.Frames {
		out[i] = append([]float64(nil), fr...)
	}

	return &ImageField{Rows: f.Rows, Cols: f.Cols, Frames: out}
}

// EqualMasked implements Field.
func (f *ImageField) EqualMasked(other Field) bool {
	o, ok := other.(*ImageField)
	if !ok {
		return false
	}
	if o.Rows != f.Rows || o.Cols != f.Cols {
		return false
	}

	return maskedEqual2D(f.Frames, o.Frames)
}
