package boundary

// Clamp coerces a percentage into [0,100] for callers that prefer fixing
// malformed input over rejecting it. Grade-entry surfaces typically clamp
// scores on the way in; the engine never does.
func Clamp(value float64) float64 {
	return ClampRange(value, 0, 100)
}

// ClampRange coerces value into [min, max].
func ClampRange(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
