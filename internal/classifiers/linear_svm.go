package classifiers

import (
	"fmt"
	"math"
)

// LinearSVM minimizes the L2-regularized hinge loss by projected subgradient
// descent with a 1/(lambda*t) step schedule.
type LinearSVM struct {
	Lambda float64
	Epochs int

	W []float64
	B float64
}

func NewLinearSVM() *LinearSVM {
	return &LinearSVM{Lambda: 0.1, Epochs: 300}
}

func (m *LinearSVM) Name() string { return "LinearSVM" }

func (m *LinearSVM) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 {
		return fmt.Errorf("linear svm: empty training set")
	}
	d := len(X[0])
	m.W = make([]float64, d)
	m.B = 0
	inv := 1.0 / float64(n)
	limit := 1.0 / math.Sqrt(m.Lambda)
	for epoch := 1; epoch <= m.Epochs; epoch++ {
		lr := 1.0 / (m.Lambda * float64(epoch))
		gw := make([]float64, d)
		gb := 0.0
		for i := range X {
			t := signed(y[i])
			if t*(dot(m.W, X[i])+m.B) < 1 {
				for j := range gw {
					gw[j] -= t * X[i][j]
				}
				gb -= t
			}
		}
		for j := range m.W {
			m.W[j] -= lr * (m.Lambda*m.W[j] + gw[j]*inv)
		}
		m.B -= lr * gb * inv
		// the optimum lies inside the 1/sqrt(lambda) ball
		if norm := math.Sqrt(dot(m.W, m.W)); norm > limit {
			scale := limit / norm
			for j := range m.W {
				m.W[j] *= scale
			}
		}
		if math.IsNaN(m.B) || math.IsNaN(m.W[0]) {
			return fmt.Errorf("linear svm: diverged at epoch %d", epoch)
		}
	}
	return nil
}

func (m *LinearSVM) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i := range X {
		if dot(m.W, X[i])+m.B >= 0 {
			out[i] = 1
		}
	}
	return out
}
