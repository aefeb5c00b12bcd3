package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartgrades/gradecore/gradebook"
)

func TestPredictWorkedExample(t *testing.T) {
	agg := gradebook.Aggregate([]gradebook.Assessment{
		gradebook.Graded("Assignment 1", 15, 85),
		gradebook.Graded("Quiz 1", 25, 92),
		gradebook.Ungraded("Midterm", 30),
		gradebook.Ungraded("Final", 30),
	})

	r := Predict(agg, 80)

	assert.InDelta(t, 89.375, r.Predicted, 1e-9)
	assert.InDelta(t, 95.75, r.BestCase, 1e-9)
	assert.InDelta(t, 35.75, r.WorstCase, 1e-9)
	require.NotNil(t, r.RequiredAverage)
	assert.InDelta(t, 73.75, *r.RequiredAverage, 1e-9)
}

func TestPredictNoGradedWork(t *testing.T) {
	agg := gradebook.Aggregate([]gradebook.Assessment{
		gradebook.Ungraded("Midterm", 50),
		gradebook.Ungraded("Final", 50),
	})

	r := Predict(agg, 80)

	assert.Equal(t, 0.0, r.Predicted)
	assert.InDelta(t, 100.0, r.BestCase, 1e-9)
	assert.Equal(t, 0.0, r.WorstCase)
	require.NotNil(t, r.RequiredAverage)
	assert.InDelta(t, 80.0, *r.RequiredAverage, 1e-9)
}

func TestPredictAllGraded(t *testing.T) {
	agg := gradebook.Aggregate([]gradebook.Assessment{
		gradebook.Graded("a", 40, 90),
		gradebook.Graded("b", 60, 75),
	})

	r := Predict(agg, 80)

	// Nothing outstanding: the three scenarios collapse to the same value
	// and no required average exists.
	assert.InDelta(t, 81.0, r.Predicted, 1e-9)
	assert.Equal(t, r.Predicted, r.BestCase)
	assert.Equal(t, r.Predicted, r.WorstCase)
	assert.Nil(t, r.RequiredAverage)
}

func TestPredictEmptyAggregate(t *testing.T) {
	r := Predict(gradebook.StudentAggregate{}, 80)
	assert.Equal(t, Result{}, r)
}

func TestPredictRequiredAverageUnclamped(t *testing.T) {
	tests := []struct {
		name   string
		agg    gradebook.StudentAggregate
		target float64
		check  func(t *testing.T, required float64)
	}{
		{
			name: "target unreachable reports above 100",
			agg: gradebook.Aggregate([]gradebook.Assessment{
				gradebook.Graded("a", 80, 20),
				gradebook.Ungraded("b", 20),
			}),
			target: 90,
			check: func(t *testing.T, required float64) {
				assert.Greater(t, required, 100.0)
			},
		},
		{
			name: "target already secured reports below 0",
			agg: gradebook.Aggregate([]gradebook.Assessment{
				gradebook.Graded("a", 90, 100),
				gradebook.Ungraded("b", 10),
			}),
			target: 50,
			check: func(t *testing.T, required float64) {
				assert.Less(t, required, 0.0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Predict(tt.agg, tt.target)
			require.NotNil(t, r.RequiredAverage)
			tt.check(t, *r.RequiredAverage)
		})
	}
}

func TestPredictMonotonicInScore(t *testing.T) {
	// Raising one score while everything else stays fixed never lowers any
	// scenario figure.
	build := func(score float64) Result {
		return Predict(gradebook.Aggregate([]gradebook.Assessment{
			gradebook.Graded("a", 30, score),
			gradebook.Graded("b", 30, 70),
			gradebook.Ungraded("c", 40),
		}), 80)
	}

	prev := build(0)
	for score := 5.0; score <= 100; score += 5 {
		cur := build(score)
		assert.GreaterOrEqual(t, cur.Predicted, prev.Predicted)
		assert.GreaterOrEqual(t, cur.BestCase, prev.BestCase)
		assert.GreaterOrEqual(t, cur.WorstCase, prev.WorstCase)
		prev = cur
	}
}

func TestPredictDefaultTarget(t *testing.T) {
	agg := gradebook.Aggregate([]gradebook.Assessment{
		gradebook.Graded("a", 50, 60),
		gradebook.Ungraded("b", 50),
	})

	assert.Equal(t, Predict(agg, DefaultTarget), PredictDefault(agg))
}
