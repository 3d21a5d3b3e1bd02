// emergence-lab renders spatial evolutionary games as animated GIFs and
// sweeps their parameter space.
//
// Usage:
//
//	emergence-lab render [preset ...]  - Render preset scenarios to GIFs
//	emergence-lab sweep                - Sweep initial densities to CSV
//	emergence-lab sims                 - List registered simulations
//	emergence-lab info                 - Show a configuration's parameters
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	// Import sims to register them.
	_ "github.com/mudk-ux/emergence-lab/internal/sims/strategic"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "emergence-lab",
	Short: "Spatial evolutionary game simulator",
	Long: `emergence-lab simulates spatial evolutionary games (Prisoner's Dilemma,
Hawk-Dove, Stag Hunt) on a toroidal grid with the "best takes over" update
rule and renders the resulting dynamics as animated GIFs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
