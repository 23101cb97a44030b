// Package classifiers provides the three classifier variants the simulation
// harness evaluates. All of them are deterministic given the same training
// data, so trial reproducibility is controlled entirely by the data seeds.
package classifiers

import "github.com/mpastell/eaap2017/internal/sim"

// Default returns fresh instances of the three variants with their default
// hyperparameters.
func Default() sim.ClassifierSet {
	return sim.ClassifierSet{
		KernelSVM: NewKernelSVM(),
		LinearSVM: NewLinearSVM(),
		Logistic:  NewLogisticRegression(),
	}
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// signed maps 0/1 labels to the -1/+1 targets the margin classifiers use.
func signed(y int) float64 {
	if y == 1 {
		return 1
	}
	return -1
}
