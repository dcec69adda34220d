package interp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// basis returns the radial kernel for the given method.
func basis(method Method) func(r float64) float64 {
	if method == Cubic {
		return func(r float64) float64 { return r * r * r }
	}

	return func(r float64) float64 { return r }
}

// radialBasis interpolates via an RBF expansion with an affine polynomial
// tail. The (n+d+1)×(n+d+1) symmetric system
//
//	| Φ  P | |w|   |v|
//	| Pᵀ 0 | |c| = |0|
//
// with Φ[i][j] = φ(|pᵢ-pⱼ|) and P[i] = (1, pᵢ) is solved once per call; the
// expansion is then evaluated at every target inside the sample bounding
// box. Targets outside the box, or every target when n < d+1, receive fill.
func radialBasis(pts [][]float64, values []float64, targets [][]float64, method Method, fill float64) ([]float64, error) {
	n := len(pts)
	dim := len(pts[0])
	out := make([]float64, len(targets))

	if n < dim+1 {
		for i := range out {
			out[i] = fill
		}

		return out, nil
	}

	phi := basis(method)
	m := n + dim + 1

	sys := mat.NewDense(m, m, nil)
	rhs := mat.NewVecDense(m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			v := phi(dist(pts[i], pts[j]))
			sys.Set(i, j, v)
			sys.Set(j, i, v)
		}
		sys.Set(i, n, 1)
		sys.Set(n, i, 1)
		for k := 0; k < dim; k++ {
			sys.Set(i, n+1+k, pts[i][k])
			sys.Set(n+1+k, i, pts[i][k])
		}
		rhs.SetVec(i, values[i])
	}

	w, err := solve(sys, rhs)
	if err != nil {
		return nil, err
	}

	lo, hi := bounds(pts)
	for t, q := range targets {
		if !inBox(q, lo, hi) {
			out[t] = fill

			continue
		}
		v := w.AtVec(n)
		for k := 0; k < dim; k++ {
			v += w.AtVec(n+1+k) * q[k]
		}
		for i := 0; i < n; i++ {
			v += w.AtVec(i) * phi(dist(q, pts[i]))
		}
		out[t] = v
	}

	return out, nil
}

// solve factorizes with QR and, on failure, retries once with a small
// diagonal regularization before giving up.
func solve(sys *mat.Dense, rhs *mat.VecDense) (*mat.VecDense, error) {
	m, _ := sys.Dims()
	w := mat.NewVecDense(m, nil)

	var qr mat.QR
	qr.Factorize(sys)
	if err := qr.SolveVecTo(w, false, rhs); err == nil {
		return w, nil
	}

	for i := 0; i < m; i++ {
		sys.Set(i, i, sys.At(i, i)+1e-8)
	}
	qr.Factorize(sys)
	if err := qr.SolveVecTo(w, false, rhs); err != nil {
		return nil, fmt.Errorf("interp: %v: %w", err, ErrSolveFailed)
	}

	return w, nil
}

func dist(a, b []float64) float64 {
	var s float64
	for i, v := range a {
		d := v - b[i]
		s += d * d
	}

	return math.Sqrt(s)
}

// bounds returns the per-axis min and max of the sample points, ignoring
// nothing: callers mask non-finite samples before interpolating.
func bounds(pts [][]float64) (lo, hi []float64) {
	dim := len(pts[0])
	lo = make([]float64, dim)
	hi = make([]float64, dim)
	copy(lo, pts[0])
	copy(hi, pts[0])
	for _, p := range pts[1:] {
		for k, v := range p {
			lo[k] = math.Min(lo[k], v)
			hi[k] = math.Max(hi[k], v)
		}
	}

	return lo, hi
}

func inBox(q, lo, hi []float64) bool {
	for k, v := range q {
		if v < lo[k] || v > hi[k] {
			return false
		}
	}

	return true
}
