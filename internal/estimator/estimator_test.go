package estimator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tiliavir/study-time-planner/internal/estimator"
)

func TestRegressionCoefficients(t *testing.T) {
	coef := estimator.NewRegression().Coefficients()
	assert.InDelta(t, 14.5230, coef[0], 1e-3)
	assert.InDelta(t, 6.3559, coef[1], 1e-3)
	assert.InDelta(t, -0.18889, coef[2], 1e-4)
	assert.InDelta(t, 0.040941, coef[3], 1e-4)
}

func TestRegressionEstimateHours(t *testing.T) {
	r := estimator.NewRegression()
	tests := []struct {
		difficulty, score, days int
		want                    int
	}{
		{1, 90, 30, 8}, // below the floor
		{3, 75, 30, 21},
		{3, 50, 20, 25},
		{4, 50, 10, 31},
		{5, 40, 20, 40},
		{5, 0, 0, 46},
		{2, 60, 14, 16},
		{1, 100, 365, 17},
	}
	for _, tt := range tests {
		got := r.EstimateHours(tt.difficulty, tt.score, tt.days)
		assert.Equal(t, tt.want, got, "EstimateHours(%d, %d, %d)", tt.difficulty, tt.score, tt.days)
	}
}

func TestRegressionStaysInRange(t *testing.T) {
	r := estimator.NewRegression()
	for d := 1; d <= 5; d++ {
		for score := 0; score <= 100; score += 10 {
			for _, days := range []int{-3, 0, 7, 60, 1000} {
				h := r.EstimateHours(d, score, days)
				assert.GreaterOrEqual(t, h, estimator.MinHours)
				assert.LessOrEqual(t, h, estimator.MaxHours)
			}
		}
	}
	// Days far in the future push the raw prediction above the ceiling.
	assert.Equal(t, estimator.MaxHours, r.EstimateHours(5, 0, 2000))
}

func TestHarderSubjectsNeedMoreHours(t *testing.T) {
	r := estimator.NewRegression()
	assert.Greater(t, r.EstimateHours(5, 60, 20), r.EstimateHours(2, 60, 20))
	assert.Greater(t, r.EstimateHours(3, 40, 20), r.EstimateHours(3, 90, 20))
}
