package geodata

import "errors"

// Sentinel errors for dataset operations. All are returned at the point of
// detection, never retried or recovered internally; match with errors.Is.
// Contextual detail is added by wrapping with fmt.Errorf("...: %w", ErrX).
var (
	// ErrValidation indicates a malformed six-tuple at construction, or a
	// malformed argument to an operation (wrong shapes, bad indices).
	ErrValidation = errors.New("geodata: invalid dataset input")

	// ErrMergeMismatch indicates two datasets violate an AddTimes
	// precondition; the wrapped message names which one (field names,
	// coordinate system, locations, sensor location).
	ErrMergeMismatch = errors.New("geodata: datasets cannot be merged")

	// ErrUnsupportedFieldShape indicates a field whose shape cannot carry
	// the requested operation (e.g. location reduction of an image field).
	ErrUnsupportedFieldShape = errors.New("geodata: unsupported field shape")

	// ErrInvalidInterpolation indicates a bad interpolation request: a
	// malformed target-location array, an unknown method, or a location
	// mask of the wrong length.
	ErrInvalidInterpolation = errors.New("geodata: invalid interpolation request")

	// ErrLocationNotFound indicates a location-reduction request naming a
	// row absent from the dataset's location table.
	ErrLocationNotFound = errors.New("geodata: location not present in dataset")

	// ErrUnknownField indicates a field name absent from the dataset.
	ErrUnknownField = errors.New("geodata: unknown field name")
)
