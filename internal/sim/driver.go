package sim

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mpastell/eaap2017/internal/results"
)

// Sweep describes the full experiment: every (sampleSize, noiseLevel) pair
// is evaluated Repetitions times with fresh randomness.
type Sweep struct {
	SampleSizes []int
	NoiseLevels []float64
	Repetitions int
}

func (s Sweep) trials() []TrialParameters {
	out := make([]TrialParameters, 0, len(s.SampleSizes)*len(s.NoiseLevels)*s.Repetitions)
	for _, n := range s.SampleSizes {
		for _, p := range s.NoiseLevels {
			for r := 0; r < s.Repetitions; r++ {
				out = append(out, TrialParameters{SampleSize: n, NoiseProbability: p})
			}
		}
	}
	return out
}

// Stratum identifies one (sampleSize, noiseLevel) pair.
type Stratum struct {
	SampleSize       int
	NoiseProbability float64
}

// StratumCount tallies trial outcomes within one stratum.
type StratumCount struct {
	Stratum
	Attempted int
	Succeeded int
	Failed    int
}

// SweepReport is the per-stratum outcome summary produced beside the result
// table, in sweep enumeration order.
type SweepReport struct {
	Strata []*StratumCount
}

// Dropped is the total number of trials omitted from the table.
func (r *SweepReport) Dropped() int {
	n := 0
	for _, s := range r.Strata {
		n += s.Failed
	}
	return n
}

// Driver fans the sweep out over a bounded worker pool and collects rows in
// trial-index order, so a fixed Seed yields an identical table at any
// Concurrency.
type Driver struct {
	Evaluator   *Evaluator
	Concurrency int
	Seed        uint64
	Logger      *zap.Logger
}

// Run executes every trial of the sweep, dropping trials that fail to fit
// and recording them in the report. It returns an error alongside the table
// when any stratum ends up with zero successful trials; the table still
// holds every successful row. Cancelling ctx abandons the sweep.
func (d *Driver) Run(ctx context.Context, sweep Sweep) (results.Table, *SweepReport, error) {
	if len(sweep.SampleSizes) == 0 || len(sweep.NoiseLevels) == 0 {
		return nil, nil, fmt.Errorf("%w: empty sweep", ErrInvalidParameters)
	}
	if sweep.Repetitions < 1 {
		return nil, nil, fmt.Errorf("%w: repetitions %d", ErrInvalidParameters, sweep.Repetitions)
	}
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := d.Concurrency
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	trials := sweep.trials()
	rows := make([]*results.TrialResult, len(trials))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range trials {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := d.Evaluator.Evaluate(trials[i], DeriveSeed(d.Seed, i))
			if err != nil {
				var tf *TrialFailure
				if errors.As(err, &tf) {
					logger.Warn("dropping failed trial",
						zap.Int("trial", i),
						zap.Int("sample_size", trials[i].SampleSize),
						zap.Float64("noise", trials[i].NoiseProbability),
						zap.Error(err))
					return nil
				}
				// Invalid parameters mean the whole sweep is misconfigured.
				return err
			}
			rows[i] = &res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	report := &SweepReport{}
	counts := make(map[Stratum]*StratumCount)
	for _, n := range sweep.SampleSizes {
		for _, p := range sweep.NoiseLevels {
			c := &StratumCount{Stratum: Stratum{SampleSize: n, NoiseProbability: p}}
			counts[c.Stratum] = c
			report.Strata = append(report.Strata, c)
		}
	}

	table := make(results.Table, 0, len(trials))
	for i, tp := range trials {
		c := counts[Stratum{tp.SampleSize, tp.NoiseProbability}]
		c.Attempted++
		if rows[i] != nil {
			c.Succeeded++
			table = append(table, *rows[i])
		} else {
			c.Failed++
		}
	}

	var err error
	for _, c := range report.Strata {
		if c.Succeeded == 0 {
			err = multierr.Append(err, &InsufficientDataError{
				SampleSize:       c.SampleSize,
				NoiseProbability: c.NoiseProbability,
			})
		}
	}
	return table, report, err
}
