package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/psantana5/lapse/internal/measure"
	"github.com/spf13/cobra"
)

var measureResources bool

// measureCmd represents the measure command
var measureCmd = &cobra.Command{
	Use:   "measure -- <command> [args...]",
	Short: "Time an external command",
	Long: `Runs an external command to completion on a fresh stopwatch, prints
the command line and its elapsed time, and exits with the command's
own exit status (1 when unavailable).

Example:
  lapse measure -- sleep 2
  lapse measure --resources -- make build`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Everything must sit after the -- separator so flags of the
		// measured command are never parsed as ours
		if cmd.ArgsLenAtDash() != 0 {
			return fmt.Errorf("usage: lapse measure [--resources] -- <command> [args...]")
		}

		result, err := measure.Run(context.Background(), measure.Options{
			SampleResources: measureResources,
		}, args[0], args[1:]...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v (cmd: %s)\n", err, args[0])
			os.Exit(1)
		}

		fmt.Printf("%s\n%s\n", result.Command, result.Elapsed)
		if result.Resources != nil {
			fmt.Printf("peak rss: %.1f MiB, cpu: %.1f%%\n",
				float64(result.Resources.PeakRSSBytes)/(1024*1024),
				result.Resources.CPUPercent)
		}

		os.Exit(result.ExitCode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(measureCmd)
	measureCmd.Flags().BoolVar(&measureResources, "resources", false, "sample the command's peak RSS and CPU usage while it runs")
}
