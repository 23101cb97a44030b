package sim

import "fmt"

// Label identifies which generating distribution a point is attributed to.
// After noise injection the label may disagree with the distribution the
// point was actually drawn from.
type Label int

const (
	ClassA Label = iota
	ClassB
)

func (l Label) String() string {
	if l == ClassA {
		return "A"
	}
	return "B"
}

// LabeledPoint is one 2D observation. Values are never mutated after
// creation; noise injection produces fresh points.
type LabeledPoint struct {
	X1    float64
	X2    float64
	Label Label
}

// Dataset is an ordered sequence of labeled points. Generated sets hold the
// ClassA block first, then the ClassB block, both of equal size.
type Dataset []LabeledPoint

func (d Dataset) Features() [][]float64 {
	out := make([][]float64, len(d))
	for i, p := range d {
		out[i] = []float64{p.X1, p.X2}
	}
	return out
}

func (d Dataset) Labels() []int {
	out := make([]int, len(d))
	for i, p := range d {
		out[i] = int(p.Label)
	}
	return out
}

// TrialParameters defines one simulation configuration: how many points per
// class to train on and which fraction of each class block gets mislabeled.
type TrialParameters struct {
	SampleSize       int
	NoiseProbability float64
}

func (p TrialParameters) Validate() error {
	if p.SampleSize < 1 {
		return fmt.Errorf("%w: sample size %d, need at least 1", ErrInvalidParameters, p.SampleSize)
	}
	if p.NoiseProbability < 0 || p.NoiseProbability > 0.5 {
		return fmt.Errorf("%w: noise probability %g outside [0, 0.5]", ErrInvalidParameters, p.NoiseProbability)
	}
	return nil
}
