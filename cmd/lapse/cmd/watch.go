package cmd

import (
	"fmt"
	"os"

	"github.com/psantana5/lapse/internal/display"
	"github.com/psantana5/lapse/pkg/stopwatch"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show a live ticking elapsed-time display",
	Long: `Starts a fresh stopwatch and renders its elapsed time in place at a
fixed cadence until Enter is pressed. Inside the REPL, watch attaches
to the session's engine instead and leaves it running on exit.

Example:
  lapse watch
  lapse watch --interval 250ms`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sw := stopwatch.New()
		session := display.NewSession(sw, os.Stdout, os.Stdin,
			display.WithInterval(GetInterval()),
			display.WithLogger(NewLogger()),
		)
		session.Run()
		fmt.Printf("final: %s\n", stopwatch.Format(sw.Elapsed()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
