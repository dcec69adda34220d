// Package timegrid normalizes raw measurement timestamps into canonical
// half-open [start,end] interval tables and matches intervals across two
// tables.
//
// A Table holds one Interval per time column of a dataset. Raw adapter
// output may carry either full (start,end) pairs or bare instants; Repair
// coerces both into the canonical form deterministically (see Repair for
// the exact synthesis rules).
//
// Register matches overlapping intervals across two tables with a documented
// approximation — it is NOT a true interval join. See Register.
package timegrid
