package sim_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpastell/eaap2017/internal/classifiers"
	"github.com/mpastell/eaap2017/internal/sim"
)

func TestRunRowCountAndEcho(t *testing.T) {
	drv := &sim.Driver{Evaluator: newStubEvaluator(), Concurrency: 4, Seed: 1}
	sweep := sim.Sweep{SampleSizes: []int{10, 20}, NoiseLevels: []float64{0, 0.1}, Repetitions: 3}
	table, report, err := drv.Run(context.Background(), sweep)
	require.NoError(t, err)
	require.Len(t, table, 12)

	counts := make(map[sim.Stratum]int)
	for _, row := range table {
		counts[sim.Stratum{SampleSize: row.SampleSize, NoiseProbability: row.NoiseProbability}]++
	}
	require.Len(t, counts, 4)
	for s, c := range counts {
		assert.Equal(t, 3, c, "stratum %+v", s)
	}
	require.Len(t, report.Strata, 4)
	for _, s := range report.Strata {
		assert.Equal(t, 3, s.Attempted)
		assert.Equal(t, 3, s.Succeeded)
		assert.Zero(t, s.Failed)
	}
	assert.Zero(t, report.Dropped())
}

func TestRunSingleStratumReference(t *testing.T) {
	drv := &sim.Driver{Evaluator: newStubEvaluator(), Seed: 1}
	sweep := sim.Sweep{SampleSizes: []int{100}, NoiseLevels: []float64{0}, Repetitions: 1000}
	table, _, err := drv.Run(context.Background(), sweep)
	require.NoError(t, err)
	require.Len(t, table, 1000)
	for _, row := range table {
		require.Equal(t, 100, row.SampleSize)
		require.Zero(t, row.NoiseProbability)
	}
}

func TestRunDeterministicAcrossConcurrency(t *testing.T) {
	sweep := sim.Sweep{SampleSizes: []int{15}, NoiseLevels: []float64{0, 0.2}, Repetitions: 4}
	newDriver := func(workers int) *sim.Driver {
		return &sim.Driver{
			Evaluator: &sim.Evaluator{
				Gen:                sim.NewGenerator(),
				GeneralizationSize: 200,
				NewClassifiers:     classifiers.Default,
			},
			Concurrency: workers,
			Seed:        42,
		}
	}
	serial, _, err := newDriver(1).Run(context.Background(), sweep)
	require.NoError(t, err)
	parallel, _, err := newDriver(4).Run(context.Background(), sweep)
	require.NoError(t, err)
	require.Equal(t, serial, parallel)
}

func TestRunDropsFailedTrialsAndReports(t *testing.T) {
	ev := newStubEvaluator()
	ev.NewClassifiers = failingSet(20) // every size-10 trial fails to fit
	drv := &sim.Driver{Evaluator: ev, Concurrency: 2, Seed: 1}
	sweep := sim.Sweep{SampleSizes: []int{10, 20}, NoiseLevels: []float64{0}, Repetitions: 5}
	table, report, err := drv.Run(context.Background(), sweep)

	require.Len(t, table, 5)
	for _, row := range table {
		require.Equal(t, 20, row.SampleSize)
	}
	assert.Equal(t, 5, report.Dropped())

	var ins *sim.InsufficientDataError
	require.ErrorAs(t, err, &ins)
	assert.Equal(t, 10, ins.SampleSize)
}

func TestRunAllStrataEmpty(t *testing.T) {
	ev := newStubEvaluator()
	ev.NewClassifiers = failingSet(20)
	drv := &sim.Driver{Evaluator: ev, Seed: 1}
	sweep := sim.Sweep{SampleSizes: []int{10}, NoiseLevels: []float64{0, 0.1}, Repetitions: 2}
	table, report, err := drv.Run(context.Background(), sweep)
	require.Error(t, err)
	require.Empty(t, table)
	assert.Equal(t, 4, report.Dropped())
}

func TestRunRejectsEmptySweep(t *testing.T) {
	drv := &sim.Driver{Evaluator: newStubEvaluator(), Seed: 1}
	_, _, err := drv.Run(context.Background(), sim.Sweep{Repetitions: 1})
	require.ErrorIs(t, err, sim.ErrInvalidParameters)

	_, _, err = drv.Run(context.Background(), sim.Sweep{
		SampleSizes: []int{10}, NoiseLevels: []float64{0}, Repetitions: 0,
	})
	require.ErrorIs(t, err, sim.ErrInvalidParameters)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	drv := &sim.Driver{Evaluator: newStubEvaluator(), Seed: 1}
	sweep := sim.Sweep{SampleSizes: []int{10}, NoiseLevels: []float64{0}, Repetitions: 10}
	table, _, err := drv.Run(ctx, sweep)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, table)
}
