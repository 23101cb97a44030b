package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "simulator",
		Short:        "Monte Carlo study of sample size and label noise effects on classifier accuracy",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newSummarizeCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
