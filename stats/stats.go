// Package stats computes roster-level descriptive statistics over predicted
// percentages. The relative (bell-curve) grading policy is driven entirely
// by the Snapshot produced here.
package stats

import "math"

// Snapshot is the per-roster statistical summary. It is computed once per
// roster and reused for every student's z-score; it must not outlive the
// roster it was computed from — any score change invalidates it.
//
// StdDev is the population standard deviation (divisor n, not n−1). The
// divisor matters: it changes every z-score magnitude, so it is fixed here
// and covered by tests.
type Snapshot struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Count  int     `json:"count"`
}

// Compute summarises a roster of predicted percentages. An empty roster
// yields the zero snapshot.
func Compute(predicted []float64) Snapshot {
	n := len(predicted)
	if n == 0 {
		return Snapshot{}
	}

	var sum float64
	for _, x := range predicted {
		sum += x
	}
	mean := sum / float64(n)

	var sqDiff float64
	for _, x := range predicted {
		d := x - mean
		sqDiff += d * d
	}

	return Snapshot{
		Mean:   mean,
		StdDev: math.Sqrt(sqDiff / float64(n)),
		Count:  n,
	}
}

// ZScore returns how many standard deviations a predicted percentage lies
// from the roster mean. A degenerate roster (StdDev == 0) maps every value
// to 0 rather than dividing by zero.
func (s Snapshot) ZScore(predicted float64) float64 {
	if s.StdDev == 0 {
		return 0
	}
	return (predicted - s.Mean) / s.StdDev
}
