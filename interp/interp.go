package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMethod indicates a Method outside {Nearest, Linear, Cubic}.
	ErrUnknownMethod = errors.New("interp: unknown interpolation method")
	// ErrBadInput indicates empty or dimensionally inconsistent inputs.
	ErrBadInput = errors.New("interp: invalid interpolation input")
	// ErrSolveFailed indicates the RBF system could not be solved even after
	// diagonal regularization (degenerate sample geometry).
	ErrSolveFailed = errors.New("interp: interpolation system could not be solved")
)

// Method selects the interpolation kernel.
type Method int

const (
	// Nearest assigns each target the value of its closest sample.
	Nearest Method = iota
	// Linear uses a radial basis kernel φ(r)=r with an affine tail.
	Linear
	// Cubic uses a radial basis kernel φ(r)=r³ with an affine tail.
	Cubic
)

// Valid reports whether m is one of the supported kernels.
func (m Method) Valid() bool {
	return m == Nearest || m == Linear || m == Cubic
}

// String returns the lower-case kernel name.
func (m Method) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Griddata interpolates values sampled at points onto targets, returning one
// value per target. points and targets share a dimensionality d ≥ 1 (every
// row has the same width); len(values) must equal len(points).
//
// Nearest ignores fill: every target takes the value of its closest sample.
// Linear and Cubic fill targets outside the samples' axis-aligned bounding
// box with fill, and fill every target when fewer than d+1 samples are
// available (too few to support the affine tail).
func Griddata(points [][]float64, values []float64, targets [][]float64, method Method, fill float64) ([]float64, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("interp: method %v: %w", method, ErrUnknownMethod)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("interp: no sample points: %w", ErrBadInput)
	}
	if len(values) != len(points) {
		return nil, fmt.Errorf("interp: %d values for %d points: %w", len(values), len(points), ErrBadInput)
	}

	dim := len(points[0])
	if dim == 0 {
		return nil, fmt.Errorf("interp: zero-dimensional points: %w", ErrBadInput)
	}
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("interp: point %d has dim %d, want %d: %w", i, len(p), dim, ErrBadInput)
		}
	}
	for i, q := range targets {
		if len(q) != dim {
			return nil, fmt.Errorf("interp: target %d has dim %d, want %d: %w", i, len(q), dim, ErrBadInput)
		}
	}

	switch method {
	case Nearest:
		return nearest(points, values, targets), nil
	default:
		return radialBasis(points, values, targets, method, fill)
	}
}
