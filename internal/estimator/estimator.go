// Package estimator predicts how many hours a subject needs before its exam.
package estimator

import "math"

const (
	MinHours = 8
	MaxHours = 50
)

// Estimator turns a subject's difficulty (1-5), past score (0-100) and days
// until the exam into a recommended number of study hours.
type Estimator interface {
	EstimateHours(difficulty, pastScore, daysUntilExam int) int
}

// sample is one row of the training table: inputs and observed hours.
type sample struct {
	difficulty, pastScore, days, hours float64
}

var trainingTable = []sample{
	{1, 90, 30, 8},
	{1, 70, 20, 10},
	{1, 45, 15, 13},
	{2, 85, 25, 12},
	{2, 60, 20, 15},
	{2, 40, 10, 14},
	{3, 90, 40, 15},
	{3, 75, 30, 20},
	{3, 50, 20, 26},
	{3, 30, 15, 28},
	{4, 85, 35, 25},
	{4, 70, 25, 28},
	{4, 45, 20, 35},
	{5, 90, 45, 28},
	{5, 70, 30, 35},
	{5, 40, 20, 42},
	{1, 75, 30, 10},
	{2, 75, 25, 15},
	{3, 75, 30, 20},
	{4, 75, 35, 28},
	{5, 75, 40, 35},
}

// Regression is a linear least-squares model fitted once on the built-in
// training table.
type Regression struct {
	// intercept, difficulty, past score, days until exam
	coef [4]float64
}

// NewRegression fits the model.
func NewRegression() *Regression {
	return &Regression{coef: fit(trainingTable)}
}

// EstimateHours predicts hours, clamped to [MinHours, MaxHours] and rounded
// half to even.
func (r *Regression) EstimateHours(difficulty, pastScore, daysUntilExam int) int {
	if daysUntilExam < 0 {
		daysUntilExam = 0
	}
	x := [4]float64{1, float64(difficulty), float64(pastScore), float64(daysUntilExam)}
	var y float64
	for i := range x {
		y += r.coef[i] * x[i]
	}
	y = math.Max(MinHours, math.Min(MaxHours, y))
	return int(math.RoundToEven(y))
}

// Coefficients returns intercept, difficulty, past score and days weights.
func (r *Regression) Coefficients() [4]float64 {
	return r.coef
}

// fit solves the normal equations (XᵀX)β = Xᵀy by Gauss-Jordan elimination
// with partial pivoting.
func fit(rows []sample) [4]float64 {
	const n = 4
	var m [n][n + 1]float64
	for _, row := range rows {
		x := [n]float64{1, row.difficulty, row.pastScore, row.days}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				m[i][j] += x[i] * x[j]
			}
			m[i][n] += x[i] * row.hours
		}
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		m[col], m[pivot] = m[pivot], m[col]
		for r := 0; r < n; r++ {
			if r == col || m[col][col] == 0 {
				continue
			}
			f := m[r][col] / m[col][col]
			for c := col; c <= n; c++ {
				m[r][c] -= f * m[col][c]
			}
		}
	}

	var coef [n]float64
	for i := 0; i < n; i++ {
		if m[i][i] != 0 {
			coef[i] = m[i][n] / m[i][i]
		}
	}
	return coef
}
