// Package results holds the strongly typed result schema of a sweep, its
// persisted artifact format and per-stratum summary statistics.
package results

// Accuracy is the pair of scores one classifier earns in one trial: against
// the noisy validation set and against the large noise-free reference set.
type Accuracy struct {
	Validation     float64 `json:"validation"`
	Generalization float64 `json:"generalization"`
}

// TrialResult is one row of the result table.
type TrialResult struct {
	SampleSize       int      `json:"sample_size"`
	NoiseProbability float64  `json:"noise_probability"`
	KernelSVM        Accuracy `json:"kernel_svm"`
	LinearSVM        Accuracy `json:"linear_svm"`
	Logistic         Accuracy `json:"logistic_regression"`
}

// Table collects one row per successful trial, ordered by trial index.
type Table []TrialResult
