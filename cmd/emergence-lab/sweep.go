package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mudk-ux/emergence-lab/internal/sims/strategic"
	"github.com/mudk-ux/emergence-lab/internal/sweep"
)

var (
	flagSweepGame      string
	flagSweepSize      int
	flagSweepSteps     int
	flagSweepDensities []float64
	flagSweepSeeds     []int64
	flagSweepWorkers   int
	flagSweepTail      int
	flagSweepOut       string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep initial cooperator densities and summarize runs to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := sweep.DefaultOptions()
		opts.Game = strategic.Game(flagSweepGame)
		opts.Size = flagSweepSize
		opts.Steps = flagSweepSteps
		if len(flagSweepDensities) > 0 {
			opts.Densities = flagSweepDensities
		}
		if len(flagSweepSeeds) > 0 {
			opts.Seeds = flagSweepSeeds
		}
		if flagSweepWorkers > 0 {
			opts.Workers = flagSweepWorkers
		}
		if flagSweepTail > 0 {
			opts.TailWindow = flagSweepTail
		}

		log.Info().Str("game", flagSweepGame).
			Int("densities", len(opts.Densities)).Int("seeds", len(opts.Seeds)).
			Int("workers", opts.Workers).Msg("sweeping")

		records, err := sweep.Run(opts)
		if err != nil {
			return err
		}
		for _, rec := range records {
			log.Debug().Float64("density", rec.Density).Int64("seed", rec.Seed).
				Float64("final_coop_frac", rec.FinalCoopFrac).
				Bool("frozen", rec.Frozen).Msg("run complete")
		}

		if err := sweep.WriteCSV(records, flagSweepOut); err != nil {
			return err
		}
		log.Info().Str("path", flagSweepOut).Int("runs", len(records)).Msg("saved")
		return nil
	},
}

func init() {
	defaults := sweep.DefaultOptions()
	sweepCmd.Flags().StringVar(&flagSweepGame, "game", string(defaults.Game), "game variant (pd, hawkdove, staghunt)")
	sweepCmd.Flags().IntVar(&flagSweepSize, "n", defaults.Size, "grid side length")
	sweepCmd.Flags().IntVar(&flagSweepSteps, "steps", defaults.Steps, "generations per run")
	sweepCmd.Flags().Float64SliceVar(&flagSweepDensities, "densities", nil, "initial cooperator densities")
	sweepCmd.Flags().Int64SliceVar(&flagSweepSeeds, "seeds", nil, "seeds per density")
	sweepCmd.Flags().IntVar(&flagSweepWorkers, "workers", defaults.Workers, "worker goroutines")
	sweepCmd.Flags().IntVar(&flagSweepTail, "tail", defaults.TailWindow, "trailing generations for stability stats")
	sweepCmd.Flags().StringVar(&flagSweepOut, "out", "sweep.csv", "output CSV path")
	rootCmd.AddCommand(sweepCmd)
}
