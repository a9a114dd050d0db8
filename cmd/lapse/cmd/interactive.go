package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/psantana5/lapse/internal/dispatch"
	"github.com/psantana5/lapse/pkg/stopwatch"
	"github.com/spf13/cobra"
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"repl"},
	Short:   "Run the interactive stopwatch REPL",
	Long: `Explicit REPL mode. Running lapse without arguments does the same
thing. One engine lives for the whole session; watch sessions attach
to it without stopping it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runRepl() error {
	fmt.Println("lapse REPL. Commands: start | stop | reset | elapsed | lap [label] | laps | export {json|csv} | watch | measure -- <cmd> | help | exit")

	sw := stopwatch.New()
	// One reader for the whole session so the watch listener and the
	// prompt never fight over buffered stdin
	stdin := bufio.NewReader(os.Stdin)

	d := dispatch.New(sw, os.Stdout, stdin)
	d.WatchInterval = GetInterval()
	d.JSONOutput = IsJSONOutput()
	d.Logger = NewLogger()

	for {
		fmt.Print("> ")
		line, err := stdin.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		cmd := strings.TrimSpace(line)
		switch cmd {
		case "exit", "quit":
			return nil
		case "help":
			printReplHelp()
			continue
		}

		if err := d.Dispatch(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v (cmd: %s)\n", err, cmd)
		}
	}
}

func printReplHelp() {
	fmt.Print(`COMMANDS:
  start                 Start the stopwatch
  stop                  Stop and accumulate elapsed time
  reset                 Reset to 00:00:00.000 and clear laps
  elapsed               Print the cumulative elapsed time
  lap [label]           Record a lap at the current elapsed time
  laps                  Show recorded laps with deltas
  export json|csv       Export the lap log
  watch                 Live ticking display (press Enter to exit)
  measure -- <cmd>      Time an external command on a fresh engine
  help                  This help
  exit/quit             Leave the REPL

MODES:
  lapse run <cmds...>   Batch with strict exit codes
  lapse interactive     Explicit REPL
  lapse <cmds...>       Batch without the run subcommand
  lapse                 REPL by default
`)
}
