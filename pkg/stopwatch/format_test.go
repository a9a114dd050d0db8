package stopwatch

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00:00.000"},
		{"one millisecond", 1 * time.Millisecond, "00:00:00.001"},
		{"ten milliseconds", 10 * time.Millisecond, "00:00:00.010"},
		{"sub-millisecond truncates", 999 * time.Microsecond, "00:00:00.000"},
		{"one second", time.Second, "00:00:01.000"},
		{"one minute", time.Minute, "00:01:00.000"},
		{"mixed", 3_661_234 * time.Millisecond, "01:01:01.234"},
		{"hours widen", 100*time.Hour + 5*time.Millisecond, "100:00:00.005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.d); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatMs(t *testing.T) {
	if got := FormatMs(3_661_234); got != "01:01:01.234" {
		t.Errorf("FormatMs(3661234) = %q, want 01:01:01.234", got)
	}
}
