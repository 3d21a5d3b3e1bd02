package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mudk-ux/emergence-lab/internal/core"
)

var simsCmd = &cobra.Command{
	Use:   "sims",
	Short: "List registered simulations",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range core.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(simsCmd)
}
