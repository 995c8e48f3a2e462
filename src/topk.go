package identrank

import "sort"

// PartialSortResults reorders results so that the best min(k, len) entries
// occupy the front in best-first order. k == 0 means no cap: the whole
// slice is sorted. Everything past the first k entries is left in
// unspecified order.
func PartialSortResults(results []Result, k int) {
	if k <= 0 || k >= len(results) {
		sort.Stable(ByQuality(results))
		return
	}
	selectTop(results, k)
	sort.Stable(ByQuality(results[:k]))
}

// selectTop partitions results so that the k best entries (in some order)
// occupy results[:k]. Classic quickselect with a median-of-three pivot.
func selectTop(results []Result, k int) {
	lo, hi := 0, len(results)-1
	for lo < hi {
		p := partition(results, lo, hi)
		switch {
		case p == k-1:
			return
		case p < k-1:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

func partition(results []Result, lo, hi int) int {
	// Median-of-three: order lo, mid, hi so that the median lands at mid,
	// then use it as the pivot.
	mid := lo + (hi-lo)/2
	if compareResults(&results[mid], &results[lo]) {
		results[lo], results[mid] = results[mid], results[lo]
	}
	if compareResults(&results[hi], &results[lo]) {
		results[lo], results[hi] = results[hi], results[lo]
	}
	if compareResults(&results[hi], &results[mid]) {
		results[mid], results[hi] = results[hi], results[mid]
	}
	results[mid], results[hi] = results[hi], results[mid]

	pivot := results[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if compareResults(&results[j], &pivot) {
			results[i], results[j] = results[j], results[i]
			i++
		}
	}
	results[i], results[hi] = results[hi], results[i]
	return i
}
