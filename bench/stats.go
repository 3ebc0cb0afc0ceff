package bench

import (
	"math"
	"slices"
	"time"
)

// Stats summarizes the results of one benchmark. Confidence intervals are
// the order statistics at n/2 ± 1.96·√n/2, a distribution-free 95 % interval
// for the median.
type Stats struct {
	Completed  int
	Successful int

	// SuccessRate is Successful/Completed in percent.
	SuccessRate float64

	MedianTime           time.Duration
	TimeLower, TimeUpper time.Duration

	// Memory figures are in KiB.
	MedianMemory             float64
	MemoryLower, MemoryUpper float64
}

// Summarize computes Stats over results. Empty input gives zero Stats.
func Summarize(results []Result) Stats {
	n := len(results)
	if n == 0 {
		return Stats{}
	}
	times := make([]float64, n)
	mems := make([]float64, n)
	var st Stats
	for i, r := range results {
		times[i] = float64(r.Elapsed)
		mems[i] = float64(r.PeakBytes) / 1024
		if r.Success() {
			st.Successful++
		}
	}
	slices.Sort(times)
	slices.Sort(mems)
	lo, hi := medianInterval(n)

	st.Completed = n
	st.SuccessRate = 100 * float64(st.Successful) / float64(n)
	st.MedianTime = time.Duration(median(times))
	st.TimeLower = time.Duration(times[lo])
	st.TimeUpper = time.Duration(times[hi])
	st.MedianMemory = median(mems)
	st.MemoryLower = mems[lo]
	st.MemoryUpper = mems[hi]
	return st
}

// median of a sorted, non-empty slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// medianInterval returns the indices of the order statistics bounding the
// 95 % confidence interval of the median of n samples.
func medianInterval(n int) (lo, hi int) {
	d := int(math.Round(1.96 * math.Sqrt(float64(n)) / 2))
	return max(0, n/2-d), min(n-1, n/2+d)
}
