// Package gradebook holds the assessment value types and the weighted-score
// aggregation that every projection in gradecore starts from.
package gradebook

// Assessment is one weighted piece of work for a single student. Weight is
// expressed in percentage points of the final grade. Score is nil until the
// work has been graded, so a legitimate score of zero is never confused with
// "not yet graded".
//
// The engine does not validate weights or scores — rosters where weights do
// not sum to 100, or scores fall outside 0–100, flow through arithmetically.
// Rejecting or coercing malformed input is the input boundary's job (see the
// boundary package).
type Assessment struct {
	Name   string   `json:"name"`
	Weight float64  `json:"weight"`
	Score  *float64 `json:"score,omitempty"`
}

// Graded builds an assessment that has already been scored.
func Graded(name string, weight, score float64) Assessment {
	return Assessment{Name: name, Weight: weight, Score: &score}
}

// Ungraded builds an assessment that is still outstanding.
func Ungraded(name string, weight float64) Assessment {
	return Assessment{Name: name, Weight: weight}
}

// IsGraded reports whether the assessment has a recorded score.
func (a Assessment) IsGraded() bool {
	return a.Score != nil
}
