package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mpastell/eaap2017/internal/classifiers"
	"github.com/mpastell/eaap2017/internal/config"
	"github.com/mpastell/eaap2017/internal/results"
	"github.com/mpastell/eaap2017/internal/sim"
	"github.com/mpastell/eaap2017/pkg/utils"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		out        string
		seed       uint64
		workers    int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the full sample-size x noise-level sweep and save the result table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := utils.Logger()
			defer logger.Sync()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("workers") {
				cfg.Concurrency = workers
			}
			if out != "" {
				cfg.Output = out
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			drv := &sim.Driver{
				Evaluator: &sim.Evaluator{
					Gen: &sim.Generator{
						MeanA:    [2]float64{cfg.ClassAMean[0], cfg.ClassAMean[1]},
						MeanB:    [2]float64{cfg.ClassBMean[0], cfg.ClassBMean[1]},
						Variance: cfg.Variance,
					},
					GeneralizationSize: cfg.GeneralizationSize,
					NewClassifiers:     classifiers.Default,
				},
				Concurrency: cfg.Concurrency,
				Seed:        cfg.Seed,
				Logger:      logger,
			}
			sweep := sim.Sweep{
				SampleSizes: cfg.SampleSizes,
				NoiseLevels: cfg.NoiseLevels,
				Repetitions: cfg.Repetitions,
			}

			logger.Info("starting sweep",
				zap.Ints("sample_sizes", cfg.SampleSizes),
				zap.Float64s("noise_levels", cfg.NoiseLevels),
				zap.Int("repetitions", cfg.Repetitions),
				zap.Uint64("seed", cfg.Seed))
			start := time.Now()
			table, report, err := drv.Run(ctx, sweep)
			if table == nil {
				return err
			}
			if err != nil {
				// InsufficientData in some strata: report, save what we have.
				logger.Error("sweep finished with empty strata", zap.Error(err))
			}
			logReport(logger, report)
			logger.Info("sweep complete",
				zap.Int("rows", len(table)),
				zap.Int("dropped", report.Dropped()),
				zap.Duration("elapsed", time.Since(start)))

			if err := results.Save(cfg.Output, table); err != nil {
				logger.Error("persisting result table failed, rows retained in memory only",
					zap.Int("rows", len(table)), zap.Error(err))
				return err
			}
			logger.Info("results saved", zap.String("path", cfg.Output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults apply when omitted)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "override the output artifact path")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "override the global random seed")
	cmd.Flags().IntVar(&workers, "workers", 0, "override the worker pool size (0 = one per CPU)")
	return cmd
}

func logReport(logger *zap.Logger, report *sim.SweepReport) {
	for _, s := range report.Strata {
		if s.Failed == 0 {
			continue
		}
		logger.Warn("stratum had dropped trials",
			zap.Int("sample_size", s.SampleSize),
			zap.Float64("noise", s.NoiseProbability),
			zap.Int("attempted", s.Attempted),
			zap.Int("failed", s.Failed))
	}
}
