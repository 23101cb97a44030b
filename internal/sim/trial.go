package sim

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/mpastell/eaap2017/internal/results"
)

// Classifier is the capability the harness consumes: fit on labeled 2D
// points, predict labels for new points. Labels are 0 for ClassA, 1 for
// ClassB. The harness never inspects model internals.
type Classifier interface {
	Fit(X [][]float64, y []int) error
	Predict(X [][]float64) []int
	Name() string
}

// ClassifierSet is one fresh instance of each of the three variants a trial
// evaluates.
type ClassifierSet struct {
	KernelSVM Classifier
	LinearSVM Classifier
	Logistic  Classifier
}

// DefaultGeneralizationSize is the per-class size of the noise-free
// reference set.
const DefaultGeneralizationSize = 10000

// Evaluator runs single trials: draw noisy train and validation sets plus a
// noise-free generalization set, fit each classifier variant on train, and
// score it against the other two sets.
type Evaluator struct {
	Gen                *Generator
	GeneralizationSize int
	NewClassifiers     func() ClassifierSet
}

// Evaluate runs one trial with an independent random stream derived from
// seed. Fitting errors are wrapped in a TrialFailure carrying the trial
// parameters.
func (e *Evaluator) Evaluate(params TrialParameters, seed uint64) (results.TrialResult, error) {
	if err := params.Validate(); err != nil {
		return results.TrialResult{}, err
	}
	rng := rand.New(rand.NewSource(seed))

	train, err := e.noisyDataset(rng, params)
	if err != nil {
		return results.TrialResult{}, err
	}
	// Fresh draw, not a split of train.
	validation, err := e.noisyDataset(rng, params)
	if err != nil {
		return results.TrialResult{}, err
	}
	genSize := e.GeneralizationSize
	if genSize == 0 {
		genSize = DefaultGeneralizationSize
	}
	general, err := e.Gen.Generate(rng, genSize)
	if err != nil {
		return results.TrialResult{}, err
	}

	res := results.TrialResult{
		SampleSize:       params.SampleSize,
		NoiseProbability: params.NoiseProbability,
	}
	set := e.NewClassifiers()
	for _, v := range []struct {
		model Classifier
		out   *results.Accuracy
	}{
		{set.KernelSVM, &res.KernelSVM},
		{set.LinearSVM, &res.LinearSVM},
		{set.Logistic, &res.Logistic},
	} {
		if err := v.model.Fit(train.Features(), train.Labels()); err != nil {
			return results.TrialResult{}, &TrialFailure{Params: params, Err: fmt.Errorf("%s fit: %w", v.model.Name(), err)}
		}
		v.out.Validation = accuracy(v.model.Predict(validation.Features()), validation.Labels())
		v.out.Generalization = accuracy(v.model.Predict(general.Features()), general.Labels())
	}
	return res, nil
}

func (e *Evaluator) noisyDataset(rng *rand.Rand, params TrialParameters) (Dataset, error) {
	ds, err := e.Gen.Generate(rng, params.SampleSize)
	if err != nil {
		return nil, err
	}
	return ApplyNoise(rng, ds, params.NoiseProbability)
}

func accuracy(pred, truth []int) float64 {
	if len(truth) == 0 {
		return 0
	}
	c := 0
	for i := range truth {
		if pred[i] == truth[i] {
			c++
		}
	}
	return float64(c) / float64(len(truth))
}
