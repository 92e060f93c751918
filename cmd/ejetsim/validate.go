package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ouroboros-sim/ejet/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <config.yaml>",
	Short: "Check an aircraft definition file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ac, err := config.Load(args[0])
		if err != nil {
			fatal("invalid definition", err)
		}
		fmt.Printf("%s: %s (%s) ok\n", args[0], ac.Name, ac.Variant)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
