package sim

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// ApplyNoise relabels floor(p*n) points in each class block of a balanced
// dataset, chosen uniformly without replacement within the block. The two
// selections are independent, modeling annotator error symmetrically in both
// directions. The input dataset is left untouched.
func ApplyNoise(rng *rand.Rand, ds Dataset, p float64) (Dataset, error) {
	if p < 0 || p > 0.5 {
		return nil, fmt.Errorf("%w: noise probability %g outside [0, 0.5]", ErrInvalidParameters, p)
	}
	if len(ds)%2 != 0 {
		return nil, fmt.Errorf("%w: dataset of %d points is not two equal class blocks", ErrInvalidParameters, len(ds))
	}
	out := make(Dataset, len(ds))
	copy(out, ds)
	n := len(ds) / 2
	k := int(p * float64(n))
	if k == 0 {
		return out, nil
	}
	for _, i := range rng.Perm(n)[:k] {
		out[i].Label = ClassB
	}
	for _, i := range rng.Perm(n)[:k] {
		out[n+i].Label = ClassA
	}
	return out, nil
}
