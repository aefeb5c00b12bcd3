package grading

import (
	"fmt"

	"github.com/smartgrades/gradecore/stats"
)

// ZScoreNotApplicable is the display sentinel for rosters too small to
// carry a meaningful z-score.
const ZScoreNotApplicable = "n/a"

// ZScore returns the z-score of a predicted percentage against a roster
// snapshot, and whether a z-score is applicable at all. Rosters smaller
// than MinRelativeRoster have no usable spread, so applicable is false and
// the value must be ignored. A zero standard deviation yields z = 0, the
// same guard the relative policy uses.
func ZScore(predicted float64, snapshot stats.Snapshot) (z float64, applicable bool) {
	if snapshot.Count < MinRelativeRoster {
		return 0, false
	}
	return snapshot.ZScore(predicted), true
}

// FormatZScore renders a z-score for display at fixed two-decimal
// precision, or the ZScoreNotApplicable sentinel when the roster is too
// small.
func FormatZScore(predicted float64, snapshot stats.Snapshot) string {
	z, ok := ZScore(predicted, snapshot)
	if !ok {
		return ZScoreNotApplicable
	}
	return fmt.Sprintf("%.2f", z)
}
