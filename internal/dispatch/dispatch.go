package dispatch

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/psantana5/lapse/internal/display"
	"github.com/psantana5/lapse/internal/logging"
	"github.com/psantana5/lapse/internal/measure"
	"github.com/psantana5/lapse/internal/report"
	"github.com/psantana5/lapse/pkg/stopwatch"
)

// Dispatcher routes command lines to stopwatch operations. It is the
// boundary layer: the engine never sees raw input, and Invalid is
// raised here for anything outside the vocabulary.
type Dispatcher struct {
	SW  *stopwatch.Stopwatch
	Out io.Writer
	// In feeds watch sessions their cancellation line. Interactive
	// mode passes its own stdin reader so buffering stays consistent.
	In            io.Reader
	WatchInterval time.Duration
	// JSONOutput switches laps from a table to the JSON export form
	JSONOutput bool
	Logger     *logging.Logger
}

// New creates a dispatcher over sw with the default watch cadence
func New(sw *stopwatch.Stopwatch, out io.Writer, in io.Reader) *Dispatcher {
	return &Dispatcher{
		SW:            sw,
		Out:           out,
		In:            in,
		WatchInterval: display.DefaultInterval,
	}
}

// Dispatch executes one command line. Empty lines are no-ops.
// Vocabulary: start | stop | reset | elapsed | watch | lap [label] |
// laps | export {json|csv} | measure -- <command> [args...]
func (d *Dispatcher) Dispatch(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "start":
		return d.SW.Start()

	case "stop":
		return d.SW.Stop()

	case "reset":
		d.SW.Reset()
		return nil

	case "elapsed":
		fmt.Fprintln(d.Out, stopwatch.Format(d.SW.Elapsed()))
		return nil

	case "watch":
		opts := []display.Option{display.WithInterval(d.WatchInterval)}
		if d.Logger != nil {
			opts = append(opts, display.WithLogger(d.Logger))
		}
		display.NewSession(d.SW, d.Out, d.In, opts...).Run()
		return nil

	case "lap":
		label := strings.Join(fields[1:], " ")
		lap, err := d.SW.Lap(label)
		if err != nil {
			return err
		}
		fmt.Fprintf(d.Out, "lap %d @ %s\n", lap.Index, stopwatch.FormatMs(lap.AtMs))
		return nil

	case "laps":
		if d.JSONOutput {
			return report.WriteJSON(d.Out, d.SW.Laps())
		}
		return report.RenderTable(d.Out, d.SW.Laps())

	case "export":
		if len(fields) != 2 {
			return stopwatch.NewError(stopwatch.Invalid, "dispatch")
		}
		switch fields[1] {
		case "json":
			return report.WriteJSON(d.Out, d.SW.Laps())
		case "csv":
			return report.WriteCSV(d.Out, d.SW.Laps())
		default:
			return stopwatch.NewError(stopwatch.Invalid, "dispatch")
		}

	case "measure":
		return d.runMeasure(fields[1:])

	default:
		return stopwatch.NewError(stopwatch.Invalid, "dispatch")
	}
}

// runMeasure times an external command on a fresh engine without
// touching the session's stopwatch. Inside a session the result is
// printed and the process keeps going; only the top-level measure
// subcommand maps the child's status to a process exit.
func (d *Dispatcher) runMeasure(args []string) error {
	if len(args) < 2 || args[0] != "--" {
		return stopwatch.NewError(stopwatch.Invalid, "measure")
	}
	command := args[1]
	rest := args[2:]

	result, err := measure.Run(context.Background(), measure.Options{}, command, rest...)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.Out, "%s\n%s (exit %d)\n", result.Command, result.Elapsed, result.ExitCode)
	return nil
}
