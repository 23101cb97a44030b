package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func cleanDataset(n int) Dataset {
	ds := make(Dataset, 0, 2*n)
	for i := 0; i < n; i++ {
		ds = append(ds, LabeledPoint{X1: float64(i), Label: ClassA})
	}
	for i := 0; i < n; i++ {
		ds = append(ds, LabeledPoint{X1: float64(n + i), Label: ClassB})
	}
	return ds
}

func TestApplyNoiseFlipCounts(t *testing.T) {
	const n = 40
	for _, p := range []float64{0.1, 0.25, 0.4, 0.5} {
		rng := rand.New(rand.NewSource(3))
		out, err := ApplyNoise(rng, cleanDataset(n), p)
		require.NoError(t, err)
		require.Len(t, out, 2*n)

		k := int(math.Floor(p * n))
		flippedA, flippedB := 0, 0
		for i := 0; i < n; i++ {
			if out[i].Label == ClassB {
				flippedA++
			}
		}
		for i := n; i < 2*n; i++ {
			if out[i].Label == ClassA {
				flippedB++
			}
		}
		assert.Equal(t, k, flippedA, "p=%g", p)
		assert.Equal(t, k, flippedB, "p=%g", p)
	}
}

func TestApplyNoiseZeroIsNoop(t *testing.T) {
	in := cleanDataset(10)
	out, err := ApplyNoise(rand.New(rand.NewSource(1)), in, 0)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestApplyNoiseDoesNotMutateInput(t *testing.T) {
	in := cleanDataset(20)
	before := make(Dataset, len(in))
	copy(before, in)
	_, err := ApplyNoise(rand.New(rand.NewSource(5)), in, 0.5)
	require.NoError(t, err)
	require.Equal(t, before, in)
}

func TestApplyNoiseRejectsBadProbability(t *testing.T) {
	for _, p := range []float64{-0.1, 0.51, 1.0} {
		_, err := ApplyNoise(rand.New(rand.NewSource(1)), cleanDataset(10), p)
		require.ErrorIs(t, err, ErrInvalidParameters)
	}
}

func TestApplyNoiseRejectsOddLength(t *testing.T) {
	ds := Dataset{{Label: ClassA}, {Label: ClassA}, {Label: ClassB}}
	_, err := ApplyNoise(rand.New(rand.NewSource(1)), ds, 0.1)
	require.ErrorIs(t, err, ErrInvalidParameters)
}

func TestApplyNoiseReproducible(t *testing.T) {
	a, err := ApplyNoise(rand.New(rand.NewSource(9)), cleanDataset(50), 0.3)
	require.NoError(t, err)
	b, err := ApplyNoise(rand.New(rand.NewSource(9)), cleanDataset(50), 0.3)
	require.NoError(t, err)
	require.Equal(t, a, b)
}
