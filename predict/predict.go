// Package predict derives final-grade scenarios from a student's weighted
// aggregate: the projection based on graded work alone, the best and worst
// achievable outcomes, and the average still needed to hit a target.
package predict

import "github.com/smartgrades/gradecore/gradebook"

// DefaultTarget is the target final percentage assumed when the caller does
// not supply one.
const DefaultTarget = 80.0

// Result carries the projected figures for one student.
//
// RequiredAverage is nil when no weight remains — there is nothing left to
// influence the outcome. It is deliberately not clamped to [0,100]: a value
// above 100 means the target is unreachable and a negative value means the
// target is already secured. Both are meaningful and reported as-is; how to
// phrase "impossible" is a presentation concern.
type Result struct {
	Predicted       float64  `json:"predicted"`
	BestCase        float64  `json:"best_case"`
	WorstCase       float64  `json:"worst_case"`
	RequiredAverage *float64 `json:"required_average,omitempty"`
}

// Predict computes the scenario figures for one student from an aggregate
// and a target final percentage. Every division is guarded: a student with
// no graded work projects to 0, and an empty roster (TotalWeight == 0)
// yields the zero result rather than NaN.
func Predict(agg gradebook.StudentAggregate, target float64) Result {
	var r Result

	if agg.TotalWeight == 0 {
		return r
	}

	if agg.CompletedWeight > 0 {
		r.Predicted = agg.WeightedPoints / agg.CompletedWeight * 100
	}

	if agg.RemainingWeight == 0 {
		// Everything is graded: the outcome is fixed.
		final := agg.WeightedPoints / agg.TotalWeight * 100
		r.Predicted = final
		r.BestCase = final
		r.WorstCase = final
		return r
	}

	r.BestCase = (agg.WeightedPoints + agg.RemainingWeight) / agg.TotalWeight * 100
	r.WorstCase = agg.WeightedPoints / agg.TotalWeight * 100

	required := (target/100*agg.TotalWeight - agg.WeightedPoints) / agg.RemainingWeight * 100
	r.RequiredAverage = &required

	return r
}

// PredictDefault is Predict with DefaultTarget.
func PredictDefault(agg gradebook.StudentAggregate) Result {
	return Predict(agg, DefaultTarget)
}
