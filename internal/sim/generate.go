package sim

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator draws balanced two-class samples from a pair of isotropic
// bivariate normal distributions. The zero value is unusable; use
// NewGenerator or fill every field.
type Generator struct {
	MeanA    [2]float64
	MeanB    [2]float64
	Variance float64
}

func NewGenerator() *Generator {
	return &Generator{
		MeanA:    [2]float64{1, 1},
		MeanB:    [2]float64{2, 2},
		Variance: 0.5,
	}
}

// Generate draws n ClassA points followed by n ClassB points, each feature
// an independent normal draw. The caller owns the rng, which makes the
// generator re-entrant across concurrent trials.
func (g *Generator) Generate(rng *rand.Rand, n int) (Dataset, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: sample size %d, need at least 1 per class", ErrInvalidParameters, n)
	}
	sigma := math.Sqrt(g.Variance)
	ds := make(Dataset, 0, 2*n)
	ds = appendClass(ds, rng, g.MeanA, sigma, ClassA, n)
	ds = appendClass(ds, rng, g.MeanB, sigma, ClassB, n)
	return ds, nil
}

func appendClass(ds Dataset, rng *rand.Rand, mean [2]float64, sigma float64, label Label, n int) Dataset {
	dx := distuv.Normal{Mu: mean[0], Sigma: sigma, Src: rng}
	dy := distuv.Normal{Mu: mean[1], Sigma: sigma, Src: rng}
	for i := 0; i < n; i++ {
		ds = append(ds, LabeledPoint{X1: dx.Rand(), X2: dy.Rand(), Label: label})
	}
	return ds
}
