package timegrid

import (
	"errors"
	"fmt"
	"log"

	"gonum.org/v1/gonum/stat"
)

// ErrBadTimes indicates a raw time array whose rows are neither all single
// instants nor all (start,end) pairs.
var ErrBadTimes = errors.New("timegrid: raw times must be rows of width 1 or 2")

// ErrEmptyTimes indicates a raw time array with no rows at all.
var ErrEmptyTimes = errors.New("timegrid: raw times must have at least one row")

// DefaultSpan is the synthesized interval length, in seconds, used when a
// raw time array holds exactly one instant. Policy constant, not inferred.
const DefaultSpan = 60.0

// Interval is one half-open [Start,End] validity span in POSIX seconds.
type Interval struct {
	Start, End float64
}

// Table is the canonical (numTimes,2) interval table of a dataset.
type Table []Interval

// Instants wraps bare POSIX instants as width-1 raw rows for Repair.
func Instants(ts []float64) [][]float64 {
	raw := make([][]float64, len(ts))
	for i, t := range ts {
		raw[i] = []float64{t}
	}

	return raw
}

// Starts returns the start column of the table.
func (t Table) Starts() []float64 {
	out := make([]float64, len(t))
	for i, iv := range t {
		out[i] = iv.Start
	}

	return out
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	copy(out, t)

	return out
}

// Rows flattens the table back into raw (numTimes,2) rows.
func (t Table) Rows() [][]float64 {
	out := make([][]float64, len(t))
	for i, iv := range t {
		out[i] = []float64{iv.Start, iv.End}
	}

	return out
}

// Repair coerces a raw time array into canonical interval form.
//
// Rows of width 2 are taken as (start,end) pairs and pass through unchanged,
// so Repair is idempotent on already-canonical input. Rows of width 1 are
// instants and end times are synthesized:
//
//   - a single instant warns and gets end = start + DefaultSpan;
//   - otherwise end[i] = start[i+1] for i < last, and the last interval is
//     extrapolated with the mean consecutive spacing,
//     end[last] = start[last] + mean(diff), rather than the previous diff,
//     to avoid compounding on ragged ends.
//
// warn may be nil, in which case warnings go to log.Printf. Repair has no
// other side effects.
func Repair(raw [][]float64, warn func(format string, args ...any)) (Table, error) {
	if warn == nil {
		warn = log.Printf
	}
	if len(raw) == 0 {
		return nil, ErrEmptyTimes
	}

	width := len(raw[0])
	for i, row := range raw {
		if len(row) != width {
			return nil, fmt.Errorf("timegrid: row %d has width %d, row 0 has %d: %w", i, len(row), width, ErrBadTimes)
		}
	}

	switch width {
	case 2:
		out := make(Table, len(raw))
		for i, row := range raw {
			out[i] = Interval{Start: row[0], End: row[1]}
		}

		return out, nil
	case 1:
		starts := make([]float64, len(raw))
		for i, row := range raw {
			starts[i] = row[0]
		}

		return repairInstants(starts, warn), nil
	default:
		return nil, fmt.Errorf("timegrid: rows have width %d: %w", width, ErrBadTimes)
	}
}

func repairInstants(starts []float64, warn func(format string, args ...any)) Table {
	if len(starts) == 1 {
		warn("timegrid: single time instant %v, synthesizing end %v seconds ahead", starts[0], DefaultSpan)

		return Table{{Start: starts[0], End: starts[0] + DefaultSpan}}
	}

	diffs := make([]float64, len(starts)-1)
	for i := range diffs {
		diffs[i] = starts[i+1] - starts[i]
	}
	avg := stat.Mean(diffs, nil)

	out := make(Table, len(starts))
	for i, s := range starts {
		if i < len(starts)-1 {
			out[i] = Interval{Start: s, End: starts[i+1]}
		} else {
			out[i] = Interval{Start: s, End: s + avg}
		}
	}

	return out
}
