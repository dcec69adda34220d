// Package coords defines the closed set of coordinate systems used by
// geodata location tables and the pure conversions between them.
//
// A location table is an (N,3) slice of rows whose meaning depends on the
// System tag:
//
//	Spherical — (range km, azimuth° east of north, elevation° above horizon)
//	Cartesian — (x km east, y km north, z km up)
//	ENU       — sensor-local (east m, north m, up m)
//
// Supported conversions are identity (the input is returned unchanged, no
// copy), Spherical↔Cartesian and ENU↔Cartesian. Every other pair fails with
// ErrUnsupportedConversion. All conversions are stateless and vectorized
// over the full table in one call.
package coords
