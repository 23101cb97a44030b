package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters marks configurations rejected before any randomness
// is consumed.
var ErrInvalidParameters = errors.New("invalid trial parameters")

// TrialFailure wraps a classifier fitting error together with the parameters
// of the trial that hit it. The driver drops such trials and continues.
type TrialFailure struct {
	Params TrialParameters
	Err    error
}

func (f *TrialFailure) Error() string {
	return fmt.Sprintf("trial n=%d p=%.2f: %v", f.Params.SampleSize, f.Params.NoiseProbability, f.Err)
}

func (f *TrialFailure) Unwrap() error { return f.Err }

// InsufficientDataError reports a stratum whose every trial failed. Summary
// statistics over zero rows are undefined, so this is surfaced as a hard
// failure for the stratum.
type InsufficientDataError struct {
	SampleSize       int
	NoiseProbability float64
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("no successful trials for stratum n=%d p=%.2f", e.SampleSize, e.NoiseProbability)
}
