package gradebook

// StudentAggregate is the weight accounting for one student's assessment
// list. WeightedPoints is the sum of score/100 × weight over graded work,
// so a student who scored 100% on everything ends with WeightedPoints equal
// to CompletedWeight.
//
// TotalWeight == CompletedWeight + RemainingWeight always holds exactly:
// every incoming weight is added to TotalWeight and to exactly one of the
// other two sums.
type StudentAggregate struct {
	WeightedPoints  float64 `json:"weighted_points"`
	CompletedWeight float64 `json:"completed_weight"`
	RemainingWeight float64 `json:"remaining_weight"`
	TotalWeight     float64 `json:"total_weight"`
}

// Aggregate folds a student's assessments into a StudentAggregate. Order is
// irrelevant to the result. Duplicate assessments are summed, not
// deduplicated — callers must not pass the same assessment twice. An empty
// list yields the zero aggregate.
func Aggregate(assessments []Assessment) StudentAggregate {
	var agg StudentAggregate

	for _, a := range assessments {
		agg.TotalWeight += a.Weight
		if a.IsGraded() {
			agg.CompletedWeight += a.Weight
			agg.WeightedPoints += *a.Score / 100 * a.Weight
		} else {
			agg.RemainingWeight += a.Weight
		}
	}

	return agg
}
