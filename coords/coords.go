package coords

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnsupportedConversion indicates no conversion exists between the two
// requested systems. The wrapped message names both systems.
var ErrUnsupportedConversion = errors.New("coords: unsupported conversion")

// ErrUnknownSystem indicates a coordinate-system tag outside the closed set.
var ErrUnknownSystem = errors.New("coords: unknown coordinate system")

// System tags the coordinate frame of a location table. It is a string type
// so the tag survives persistence byte-for-byte and compares exactly.
type System string

const (
	// Spherical is the radar frame: (range km, az°, el°).
	Spherical System = "Spherical"
	// Cartesian is the local frame: (x km, y km, z km).
	Cartesian System = "Cartesian"
	// ENU is the sensor-local frame in metres: (east, north, up).
	ENU System = "ENU"
)

// Valid reports whether s is one of the known systems.
func (s System) Valid() bool {
	return s == Spherical || s == Cartesian || s == ENU
}

// ParseSystem folds case and returns the canonical System tag.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(name) {
	case "spherical":
		return Spherical, nil
	case "cartesian":
		return Cartesian, nil
	case "enu":
		return ENU, nil
	default:
		return "", fmt.Errorf("coords: %q: %w", name, ErrUnknownSystem)
	}
}

const degToRad = math.Pi / 180

// Convert transforms an (N,3) location table from one system to another.
// When from == to the input slice is returned unchanged (no copy). All other
// supported pairs allocate a fresh table; NaN coordinates propagate through
// the arithmetic untouched.
func Convert(locs [][]float64, from, to System) ([][]float64, error) {
	if from == to {
		return locs, nil
	}
	switch {
	case from == Spherical && to == Cartesian:
		return mapRows(locs, sphericalToCartesian), nil
	case from == Cartesian && to == Spherical:
		return mapRows(locs, cartesianToSpherical), nil
	case from == ENU && to == Cartesian:
		return mapRows(locs, enuToCartesian), nil
	case from == Cartesian && to == ENU:
		return mapRows(locs, cartesianToENU), nil
	default:
		return nil, fmt.Errorf("coords: %s -> %s: %w", from, to, ErrUnsupportedConversion)
	}
}

func mapRows(locs [][]float64, f func(a, b, c float64) (float64, float64, float64)) [][]float64 {
	out := make([][]float64, len(locs))
	for i, row := range locs {
		x, y, z := f(row[0], row[1], row[2])
		out[i] = []float64{x, y, z}
	}

	return out
}

// sphericalToCartesian maps (range, az, el) to (x east, y north, z up).
// Azimuth is measured east of north, so x uses sin(az) and y uses cos(az).
func sphericalToCartesian(r, az, el float64) (float64, float64, float64) {
	azr, elr := az*degToRad, el*degToRad
	x := r * math.Cos(elr) * math.Sin(azr)
	y := r * math.Cos(elr) * math.Cos(azr)
	z := r * math.Sin(elr)

	return x, y, z
}

func cartesianToSpherical(x, y, z float64) (float64, float64, float64) {
	r := math.Sqrt(x*x + y*y + z*z)
	az := math.Atan2(x, y) / degToRad
	el := math.Asin(z/r) / degToRad

	return r, az, el
}

// enuToCartesian rescales sensor-local metres to kilometres.
func enuToCartesian(e, n, u float64) (float64, float64, float64) {
	return e / 1e3, n / 1e3, u / 1e3
}

func cartesianToENU(x, y, z float64) (float64, float64, float64) {
	return x * 1e3, y * 1e3, z * 1e3
}
