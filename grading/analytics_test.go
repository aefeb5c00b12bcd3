package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze(nil)

	assert.Equal(t, 0, a.Count)
	assert.Equal(t, 0.0, a.PassingRate)
	// The histogram still carries all five letters for chart rendering.
	assert.Len(t, a.Distribution, 5)
	for _, l := range Letters {
		assert.Equal(t, 0, a.Distribution[l])
	}
}

func TestAnalyzeRoster(t *testing.T) {
	a := Analyze([]float64{95, 82, 71, 55, 90})

	assert.Equal(t, 5, a.Count)
	assert.Equal(t, 95.0, a.Highest)
	assert.Equal(t, 55.0, a.Lowest)
	assert.Equal(t, 2, a.Distribution[LetterA])
	assert.Equal(t, 1, a.Distribution[LetterB])
	assert.Equal(t, 1, a.Distribution[LetterC])
	assert.Equal(t, 0, a.Distribution[LetterD])
	assert.Equal(t, 1, a.Distribution[LetterE])
	assert.InDelta(t, 80.0, a.PassingRate, 1e-9)
}

func TestToBand(t *testing.T) {
	tests := []struct {
		pct  float64
		want Band
	}{
		{95, Band6},
		{90, Band6},
		{85.5, Band5},
		{70, Band4},
		{60, Band3},
		{50, Band2},
		{49.9, Band1},
		{0, Band1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToBand(tt.pct), "ToBand(%v)", tt.pct)
	}
}
