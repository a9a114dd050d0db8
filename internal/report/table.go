package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/psantana5/lapse/pkg/stopwatch"
)

// RenderTable writes the lap log as a table with absolute offsets and
// per-lap deltas. The first lap's delta is measured from zero.
func RenderTable(w io.Writer, laps []stopwatch.Lap) error {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Time", "Delta", "Label")

	var prev int64
	for _, lap := range laps {
		label := lap.Label
		if label == "" {
			label = "-"
		}
		table.Append(
			fmt.Sprintf("%d", lap.Index),
			stopwatch.FormatMs(lap.AtMs),
			stopwatch.FormatMs(lap.AtMs-prev),
			label,
		)
		prev = lap.AtMs
	}

	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nTotal laps: %d\n", len(laps))
	return nil
}
