package stopwatch

import (
	"fmt"
	"time"
)

// Format renders a duration as zero-padded HH:MM:SS.mmm with truncated
// integer milliseconds. Hours widen beyond two digits as needed.
func Format(d time.Duration) string {
	ms := d.Milliseconds()
	h := ms / 3_600_000
	m := (ms % 3_600_000) / 60_000
	s := (ms % 60_000) / 1_000
	mmm := ms % 1_000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, mmm)
}

// FormatMs renders a millisecond count in the same HH:MM:SS.mmm form
func FormatMs(ms int64) string {
	return Format(time.Duration(ms) * time.Millisecond)
}
