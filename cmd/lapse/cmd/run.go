package cmd

import (
	"fmt"
	"os"

	"github.com/psantana5/lapse/internal/dispatch"
	"github.com/psantana5/lapse/pkg/stopwatch"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <commands...>",
	Short: "Execute stopwatch commands in batch",
	Long: `Batch mode: run a sequence of stopwatch commands against one engine
and exit. Each argument is one command line; quote commands that take
arguments.

Exit codes: 0 on success, 2 when no commands are given, 1 when any
command fails.

Example:
  lapse run start elapsed stop
  lapse run start "lap first" "lap second" laps "export csv"`,
	DisableFlagsInUseLine: true,
	Run: func(cmd *cobra.Command, args []string) {
		runBatch(args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runBatch executes commands against a fresh engine, stopping at the
// first failure. It owns the process exit code contract.
func runBatch(cmds []string) {
	if len(cmds) == 0 {
		fmt.Fprintln(os.Stderr, "error: no commands. Use `lapse -h` for help.")
		os.Exit(2)
	}

	sw := stopwatch.New()
	d := dispatch.New(sw, os.Stdout, os.Stdin)
	d.WatchInterval = GetInterval()
	d.JSONOutput = IsJSONOutput()
	d.Logger = NewLogger()

	for _, cmd := range cmds {
		if err := d.Dispatch(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v (cmd: %s)\n", err, cmd)
			os.Exit(1)
		}
	}
}
