// Package h5io persists GeoData datasets in their hierarchical HDF5 layout:
// every top-level dataset attribute is a named array at the file root,
// except the fields, which live one level down in a "data" group — one
// array per field. Only that single level of nesting exists; fields never
// contain nested mappings.
//
//	/coordnames  scalar string
//	/dataloc     (numLocations, 3) float64
//	/sensorloc   (3,) float64
//	/times       (numTimes, 2) float64
//	/expdesc     scalar string
//	/data/<name> (numLocations, numTimes) or (numTimes, rows, cols) float64
//
// Write followed by Read yields a dataset Equal to the original.
package h5io
