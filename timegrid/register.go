package timegrid

// Register matches every interval of t1 against the intervals of t2. The
// result has one entry per row of t1: the indices into t2 whose intervals
// overlap that row, or an empty slice when none do.
//
// The matching is an APPROXIMATION: for each [s1,e1] in t1 it takes
//
//	ind1 = the last index in t2 whose start is strictly below s1
//	ind2 = the first index in t2 whose end is strictly above e1
//
// and returns the contiguous inclusive range [ind1,ind2] (empty when either
// side has no candidate, or ind1 > ind2). This assumes t2 is sorted
// ascending by start and roughly contiguous; it is NOT a true interval join.
// For unsorted or gappy t2 the range may include rows that do not overlap,
// or miss rows that do. Callers depend on the contiguous-range shape of the
// output, so do not replace this with an exact join.
func Register(t1, t2 Table) [][]int {
	out := make([][]int, len(t1))
	for k := range out {
		out[k] = []int{}
	}

	for k, iv := range t1 {
		ind1 := -1
		for i := range t2 {
			if t2[i].Start < iv.Start {
				ind1 = i
			}
		}
		ind2 := -1
		for i := range t2 {
			if t2[i].End > iv.End {
				ind2 = i

				break
			}
		}
		if ind1 < 0 || ind2 < 0 {
			continue
		}
		for i := ind1; i <= ind2; i++ {
			out[k] = append(out[k], i)
		}
	}

	return out
}
