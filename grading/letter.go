// Package grading classifies predicted percentages into grades under two
// interchangeable policies — fixed thresholds or class-relative bell curve —
// and exposes the z-scores the relative policy is built on.
package grading

// Letter is an ordinal letter grade, A (highest) through E.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
	LetterE Letter = "E"
)

// Letters lists all grades in descending order.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD, LetterE}

// ToLetter maps a percentage to a letter grade on the fixed scale:
// ≥90 A, ≥80 B, ≥70 C, ≥60 D, else E.
func ToLetter(percentage float64) Letter {
	switch {
	case percentage >= 90:
		return LetterA
	case percentage >= 80:
		return LetterB
	case percentage >= 70:
		return LetterC
	case percentage >= 60:
		return LetterD
	default:
		return LetterE
	}
}
