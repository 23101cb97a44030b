package classifiers

import (
	"fmt"
	"math"
)

// KernelSVM is an RBF-kernel soft-margin SVM trained with sequential minimal
// optimization. Pair selection is deterministic (largest error gap), so two
// fits on the same data produce the same model.
type KernelSVM struct {
	C         float64
	Gamma     float64
	Tol       float64
	MaxPasses int
	MaxSweeps int

	alpha []float64
	b     float64
	sv    [][]float64
	svT   []float64
}

func NewKernelSVM() *KernelSVM {
	return &KernelSVM{C: 1.0, Gamma: 1.0, Tol: 1e-3, MaxPasses: 5, MaxSweeps: 100}
}

func (m *KernelSVM) Name() string { return "KernelSVM" }

func (m *KernelSVM) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 {
		return fmt.Errorf("kernel svm: empty training set")
	}
	t := make([]float64, n)
	for i := range y {
		t[i] = signed(y[i])
	}
	K := make([][]float64, n)
	for i := range K {
		K[i] = make([]float64, n)
		for j := 0; j <= i; j++ {
			v := rbf(X[i], X[j], m.Gamma)
			K[i][j] = v
			K[j][i] = v
		}
	}

	alpha := make([]float64, n)
	b := 0.0
	// E[k] = f(x_k) - t_k, kept incrementally up to date
	E := make([]float64, n)
	for k := range E {
		E[k] = -t[k]
	}

	passes := 0
	for sweep := 0; passes < m.MaxPasses && sweep < m.MaxSweeps; sweep++ {
		changed := 0
		for i := 0; i < n; i++ {
			if !((t[i]*E[i] < -m.Tol && alpha[i] < m.C) || (t[i]*E[i] > m.Tol && alpha[i] > 0)) {
				continue
			}
			j := pickSecond(E, i)
			if j < 0 {
				continue
			}
			eta := 2*K[i][j] - K[i][i] - K[j][j]
			if eta >= 0 {
				continue
			}
			aiOld, ajOld := alpha[i], alpha[j]
			var lo, hi float64
			if t[i] == t[j] {
				lo = math.Max(0, aiOld+ajOld-m.C)
				hi = math.Min(m.C, aiOld+ajOld)
			} else {
				lo = math.Max(0, ajOld-aiOld)
				hi = math.Min(m.C, m.C+ajOld-aiOld)
			}
			if lo == hi {
				continue
			}
			aj := ajOld - t[j]*(E[i]-E[j])/eta
			if aj > hi {
				aj = hi
			} else if aj < lo {
				aj = lo
			}
			if math.Abs(aj-ajOld) < 1e-5 {
				continue
			}
			ai := aiOld + t[i]*t[j]*(ajOld-aj)

			b1 := b - E[i] - t[i]*(ai-aiOld)*K[i][i] - t[j]*(aj-ajOld)*K[i][j]
			b2 := b - E[j] - t[i]*(ai-aiOld)*K[i][j] - t[j]*(aj-ajOld)*K[j][j]
			bOld := b
			switch {
			case ai > 0 && ai < m.C:
				b = b1
			case aj > 0 && aj < m.C:
				b = b2
			default:
				b = (b1 + b2) / 2
			}

			dai := t[i] * (ai - aiOld)
			daj := t[j] * (aj - ajOld)
			db := b - bOld
			for k := 0; k < n; k++ {
				E[k] += dai*K[i][k] + daj*K[j][k] + db
			}
			alpha[i], alpha[j] = ai, aj
			changed++
		}
		if changed == 0 {
			passes++
		} else {
			passes = 0
		}
	}
	if math.IsNaN(b) {
		return fmt.Errorf("kernel svm: numerical failure")
	}

	m.alpha = m.alpha[:0]
	m.sv = m.sv[:0]
	m.svT = m.svT[:0]
	for i := 0; i < n; i++ {
		if alpha[i] > 0 {
			m.alpha = append(m.alpha, alpha[i])
			m.sv = append(m.sv, X[i])
			m.svT = append(m.svT, t[i])
		}
	}
	m.b = b
	return nil
}

func (m *KernelSVM) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i := range X {
		f := m.b
		for s := range m.sv {
			f += m.alpha[s] * m.svT[s] * rbf(m.sv[s], X[i], m.Gamma)
		}
		if f >= 0 {
			out[i] = 1
		}
	}
	return out
}

// pickSecond returns the index with the largest error gap to i.
func pickSecond(E []float64, i int) int {
	best, bestGap := -1, 0.0
	for j := range E {
		if j == i {
			continue
		}
		if gap := math.Abs(E[i] - E[j]); gap > bestGap {
			best, bestGap = j, gap
		}
	}
	return best
}

func rbf(a, b []float64, gamma float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Exp(-gamma * s)
}
