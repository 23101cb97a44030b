package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mpastell/eaap2017/internal/results"
)

func newSummarizeCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Print per-stratum median accuracies from a saved result table",
		RunE: func(_ *cobra.Command, _ []string) error {
			table, err := results.Load(in)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "n\tnoise\ttrials\tksvm_val\tksvm_gen\tlsvm_val\tlsvm_gen\tlogit_val\tlogit_gen")
			for _, s := range results.Summarize(table) {
				fmt.Fprintf(w, "%d\t%.2f\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
					s.SampleSize, s.NoiseProbability, s.Trials,
					s.KernelSVM.Validation.Median, s.KernelSVM.Generalization.Median,
					s.LinearSVM.Validation.Median, s.LinearSVM.Generalization.Median,
					s.Logistic.Validation.Median, s.Logistic.Generalization.Median)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "data/results.json", "result artifact to summarize")
	return cmd
}
