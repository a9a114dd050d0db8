package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/psantana5/lapse/pkg/stopwatch"
)

// WriteJSON serializes laps as an array of {index, at_ms, label}
// objects, label omitted when absent. An empty log yields [].
func WriteJSON(w io.Writer, laps []stopwatch.Lap) error {
	if laps == nil {
		laps = []stopwatch.Lap{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(laps)
}

// WriteCSV emits a header row followed by one row per lap. An empty
// log yields exactly the header.
func WriteCSV(w io.Writer, laps []stopwatch.Lap) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"index", "time_ms", "label"}); err != nil {
		return err
	}
	for _, lap := range laps {
		record := []string{
			strconv.Itoa(lap.Index),
			strconv.FormatInt(lap.AtMs, 10),
			lap.Label,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
