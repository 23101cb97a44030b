package results

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes one accuracy column within a stratum.
type Stats struct {
	Mean   float64
	Median float64
	Q05    float64
	Q95    float64
}

// PairStats holds the validation and generalization summaries for one
// classifier variant.
type PairStats struct {
	Validation     Stats
	Generalization Stats
}

// StratumSummary aggregates all rows sharing one (sampleSize, noiseLevel)
// pair.
type StratumSummary struct {
	SampleSize       int
	NoiseProbability float64
	Trials           int
	KernelSVM        PairStats
	LinearSVM        PairStats
	Logistic         PairStats
}

// Summarize groups the table by stratum, in first-seen order, and computes
// mean, median and 5/95 percentiles of every accuracy column.
func Summarize(t Table) []StratumSummary {
	type key struct {
		n int
		p float64
	}
	order := make([]key, 0)
	groups := make(map[key][]TrialResult)
	for _, row := range t {
		k := key{row.SampleSize, row.NoiseProbability}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], row)
	}

	out := make([]StratumSummary, 0, len(order))
	for _, k := range order {
		rows := groups[k]
		s := StratumSummary{
			SampleSize:       k.n,
			NoiseProbability: k.p,
			Trials:           len(rows),
			KernelSVM:        pairStats(rows, func(r TrialResult) Accuracy { return r.KernelSVM }),
			LinearSVM:        pairStats(rows, func(r TrialResult) Accuracy { return r.LinearSVM }),
			Logistic:         pairStats(rows, func(r TrialResult) Accuracy { return r.Logistic }),
		}
		out = append(out, s)
	}
	return out
}

func pairStats(rows []TrialResult, pick func(TrialResult) Accuracy) PairStats {
	val := make([]float64, len(rows))
	gen := make([]float64, len(rows))
	for i, r := range rows {
		a := pick(r)
		val[i] = a.Validation
		gen[i] = a.Generalization
	}
	return PairStats{Validation: columnStats(val), Generalization: columnStats(gen)}
}

func columnStats(xs []float64) Stats {
	sort.Float64s(xs)
	return Stats{
		Mean:   stat.Mean(xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		Q05:    stat.Quantile(0.05, stat.Empirical, xs, nil),
		Q95:    stat.Quantile(0.95, stat.Empirical, xs, nil),
	}
}
