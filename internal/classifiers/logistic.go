package classifiers

import (
	"fmt"
	"math"
)

// LogisticRegression fits a lightly regularized linear logistic model by
// full-batch gradient descent.
type LogisticRegression struct {
	LearningRate float64
	Lambda       float64
	Epochs       int

	W []float64
	B float64
}

func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{LearningRate: 0.5, Lambda: 1e-4, Epochs: 500}
}

func (m *LogisticRegression) Name() string { return "LogisticRegression" }

func sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

func (m *LogisticRegression) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 {
		return fmt.Errorf("logistic regression: empty training set")
	}
	d := len(X[0])
	m.W = make([]float64, d)
	m.B = 0
	inv := 1.0 / float64(n)
	for epoch := 1; epoch <= m.Epochs; epoch++ {
		gw := make([]float64, d)
		gb := 0.0
		for i := range X {
			e := sigmoid(dot(m.W, X[i])+m.B) - float64(y[i])
			for j := range gw {
				gw[j] += e * X[i][j]
			}
			gb += e
		}
		for j := range m.W {
			m.W[j] -= m.LearningRate * (gw[j]*inv + m.Lambda*m.W[j])
		}
		m.B -= m.LearningRate * gb * inv
		if math.IsNaN(m.B) || math.IsNaN(m.W[0]) {
			return fmt.Errorf("logistic regression: diverged at epoch %d", epoch)
		}
	}
	return nil
}

func (m *LogisticRegression) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i := range X {
		if sigmoid(dot(m.W, X[i])+m.B) >= 0.5 {
			out[i] = 1
		}
	}
	return out
}
