// Package interp provides scattered-data interpolation of a scalar field
// sampled at arbitrary points onto arbitrary target points.
//
// Three kernels are supported:
//
//	Nearest — value of the closest sample (kd-tree lookup)
//	Linear  — radial basis interpolation with φ(r)=r and an affine tail
//	Cubic   — radial basis interpolation with φ(r)=r³ and an affine tail
//
// The RBF kernels are exact at the sample points and, for Linear, reproduce
// affine data exactly. Targets lying outside the axis-aligned bounding box
// of the samples receive the caller's fill value — a deliberate, documented
// approximation of a convex-hull containment test.
//
// Griddata is a single vectorized call: callers batch all target points in
// one invocation and never interpolate point by point.
package interp
