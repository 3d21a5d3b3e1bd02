package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mudk-ux/emergence-lab/internal/sims/strategic"
)

var (
	flagInfoGame        string
	flagInfoInit        string
	flagInfoSize        int
	flagInfoDensity     float64
	flagInfoInvaderSize int
	flagInfoSeed        int64
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the effective parameters for a configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := strategic.DefaultConfig()
		cfg.Size = flagInfoSize
		cfg.Seed = flagInfoSeed
		cfg.Params.Game = strategic.Game(flagInfoGame)
		cfg.Params.Init = strategic.Init(flagInfoInit)
		cfg.Params.CoopDensity = flagInfoDensity
		cfg.Params.InvaderSize = flagInfoInvaderSize

		a, err := strategic.New(cfg)
		if err != nil {
			return err
		}

		for _, group := range a.Parameters().Groups {
			fmt.Println(group.Name)
			for _, p := range group.Params {
				fmt.Printf("  %-14s %-22s %s\n", p.Key, p.Label, p.Value)
			}
		}
		return nil
	},
}

func init() {
	defaults := strategic.DefaultConfig()
	infoCmd.Flags().StringVar(&flagInfoGame, "game", string(defaults.Params.Game), "game variant")
	infoCmd.Flags().StringVar(&flagInfoInit, "init", string(defaults.Params.Init), "initial condition")
	infoCmd.Flags().IntVar(&flagInfoSize, "n", defaults.Size, "grid side length")
	infoCmd.Flags().Float64Var(&flagInfoDensity, "density", defaults.Params.CoopDensity, "initial cooperator density")
	infoCmd.Flags().IntVar(&flagInfoInvaderSize, "invader-size", defaults.Params.InvaderSize, "invader block size")
	infoCmd.Flags().Int64Var(&flagInfoSeed, "seed", defaults.Seed, "simulation seed")
	rootCmd.AddCommand(infoCmd)
}
