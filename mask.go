package geodata

import (
	"math"

	"github.com/gregstarr/geodata/timegrid"
)

// The masked comparisons below never rely on native float equality for NaN:
// an index compares equal iff both operands are NaN there, or both are
// finite and exactly equal. A finite value against NaN is unequal. Finite
// values compare with exact float equality, no tolerance.

func maskedEqualValue(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}

	return a == b
}

func maskedEqualSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !maskedEqualValue(a[i], b[i]) {
			return false
		}
	}

	return true
}

func maskedEqual2D(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !maskedEqualSlice(a[i], b[i]) {
			return false
		}
	}

	return true
}

func maskedEqual3(a, b [3]float64) bool {
	return maskedEqualSlice(a[:], b[:])
}

func maskedEqualTable(a, b timegrid.Table) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !maskedEqualValue(a[i].Start, b[i].Start) || !maskedEqualValue(a[i].End, b[i].End) {
			return false
		}
	}

	return true
}
