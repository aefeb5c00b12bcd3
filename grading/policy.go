package grading

import "github.com/smartgrades/gradecore/stats"

// Mode selects the active grading policy.
type Mode string

const (
	ModeAbsolute Mode = "absolute"
	ModeRelative Mode = "relative"
)

// MinRelativeRoster is the smallest roster the relative policy accepts.
// Below it a standard deviation is meaningless and the policy falls back
// to absolute thresholds.
const MinRelativeRoster = 2

// Policy maps a predicted percentage to a letter grade.
type Policy interface {
	Classify(predicted float64) Letter
}

// Absolute grades on the fixed 90/80/70/60 scale, independent of the class.
type Absolute struct{}

// Classify implements Policy.
func (Absolute) Classify(predicted float64) Letter {
	return ToLetter(predicted)
}

// Relative grades on the class bell curve: the student's z-score against the
// roster snapshot decides the letter (≥1.0 A, ≥0.3 B, ≥−0.3 C, ≥−1.0 D,
// else E). A roster where every student has the same predicted percentage
// has StdDev 0, so every z-score is 0 and everyone grades C. That is the
// defined boundary behaviour, not an accident.
type Relative struct {
	Stats stats.Snapshot
}

// Classify implements Policy.
func (r Relative) Classify(predicted float64) Letter {
	z := r.Stats.ZScore(predicted)
	switch {
	case z >= 1.0:
		return LetterA
	case z >= 0.3:
		return LetterB
	case z >= -0.3:
		return LetterC
	case z >= -1.0:
		return LetterD
	default:
		return LetterE
	}
}

// SelectPolicy resolves the policy for a mode and roster snapshot. Relative
// grading requires a snapshot covering at least MinRelativeRoster students;
// when the precondition fails (or the snapshot is absent) the selection
// silently falls back to Absolute. The fallback is part of the contract, so
// it lives here rather than inside a classify call.
func SelectPolicy(mode Mode, snapshot *stats.Snapshot) Policy {
	if mode == ModeRelative && snapshot != nil && snapshot.Count >= MinRelativeRoster {
		return Relative{Stats: *snapshot}
	}
	return Absolute{}
}

// Classify is the one-shot form of SelectPolicy: it grades a single
// predicted percentage under the given mode, using snapshot when the
// relative policy applies.
func Classify(predicted float64, mode Mode, snapshot *stats.Snapshot) Letter {
	return SelectPolicy(mode, snapshot).Classify(predicted)
}
