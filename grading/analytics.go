package grading

import "github.com/smartgrades/gradecore/stats"

// PassingThreshold is the minimum predicted percentage counted as passing.
const PassingThreshold = 60.0

// Analytics is the class-wide summary shown on a class dashboard: the
// statistical snapshot the relative policy consumes plus the descriptive
// extras (spread, letter distribution, passing rate).
type Analytics struct {
	stats.Snapshot

	Highest      float64        `json:"highest"`
	Lowest       float64        `json:"lowest"`
	Distribution map[Letter]int `json:"distribution"`
	// PassingRate is the share of students at or above PassingThreshold,
	// expressed as a percentage.
	PassingRate float64 `json:"passing_rate"`
}

// Analyze summarises a roster of predicted percentages. The Distribution
// always carries all five letters, zero-valued where empty, so callers can
// chart it without key checks. An empty roster yields zeroes throughout.
func Analyze(predicted []float64) Analytics {
	a := Analytics{
		Snapshot:     stats.Compute(predicted),
		Distribution: make(map[Letter]int, len(Letters)),
	}
	for _, l := range Letters {
		a.Distribution[l] = 0
	}
	if len(predicted) == 0 {
		return a
	}

	a.Highest = predicted[0]
	a.Lowest = predicted[0]
	passing := 0

	for _, p := range predicted {
		if p > a.Highest {
			a.Highest = p
		}
		if p < a.Lowest {
			a.Lowest = p
		}
		if p >= PassingThreshold {
			passing++
		}
		a.Distribution[ToLetter(p)]++
	}

	a.PassingRate = float64(passing) / float64(len(predicted)) * 100
	return a
}
