package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the build version, overridable with -ldflags.
var Version = "0.3.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ejetsim",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ejetsim version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
