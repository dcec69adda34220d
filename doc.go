// Package geodata is an in-memory model for time-varying geophysical
// measurements — radar-derived ionospheric parameters and similar data —
// sampled at a set of spatial locations, with operations to merge, slice,
// transform and spatially re-interpolate whole datasets.
//
// The central entity is GeoData: named measurement fields (location × time
// scalar tables or per-time-step image frames), a location table with its
// coordinate-system tag, the sensor location, and a [start,end] interval
// per time column. NaN marks missing measurements everywhere, and every
// comparison in the package masks NaN instead of failing on it.
//
// What you get:
//
//   - Construction from the canonical six-tuple an adapter produces, with
//     full shape validation and time-interval normalization
//   - AddTimes — merge two compatible datasets along the time axis
//   - TimeSliceIndex / TimeSliceTimes — independent sub-dataset copies
//   - TimeRegister — approximate time-overlap matching between datasets
//   - Interpolate / InterpolateField — coordinate-aware scattered-data
//     re-interpolation onto a new location grid (nearest, linear, cubic)
//   - ReduceLocations — restriction to a chosen set of location rows
//   - Equal — NaN-masked structural equality
//
// Supporting concerns live in subpackages:
//
//	coords/   — coordinate systems and conversions between them
//	timegrid/ — interval tables: normalization and overlap registration
//	interp/   — the scattered-data interpolation kernels
//	h5io/     — the hierarchical HDF5 persisted layout
//
// The core is single-threaded and synchronous; the one expensive loop
// (interpolation, field × time step) fans out over a bounded worker pool
// writing disjoint output slots. No operation blocks on I/O and no dataset
// shares mutable state with another.
package geodata
