package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	statsSteps int
	statsDT    float64
)

var statsCmd = &cobra.Command{
	Use:   "stats <config.yaml>",
	Short: "Run a fixed number of steps and print per-system timing",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ac, err := loadAircraft(args[0])
		if err != nil {
			fatal("loading aircraft", err)
		}

		for i := 0; i < statsSteps; i++ {
			ac.Step(statsDT)
		}

		stats := ac.Scheduler().Stats()
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "SYSTEM\tSTEPS\tAVG\tMIN\tMAX\tTOTAL")
		for _, s := range stats.Systems {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
				s.Name, s.ExecutionCount,
				s.AvgDuration, s.MinDuration, s.MaxDuration, s.TotalDuration)
		}
		w.Flush()
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsSteps, "steps", 1000, "Number of steps to run")
	statsCmd.Flags().Float64Var(&statsDT, "dt", 1.0/60, "Delta time per step in seconds")
	rootCmd.AddCommand(statsCmd)
}
