package dispatch

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/psantana5/lapse/pkg/stopwatch"
)

func newTestDispatcher() (*Dispatcher, *stopwatch.Stopwatch, *bytes.Buffer) {
	sw := stopwatch.New()
	var out bytes.Buffer
	d := New(sw, &out, strings.NewReader(""))
	d.WatchInterval = time.Millisecond
	return d, sw, &out
}

func TestDispatchStartStop(t *testing.T) {
	d, sw, _ := newTestDispatcher()

	if err := d.Dispatch("start"); err != nil {
		t.Fatalf("start error = %v", err)
	}
	if !sw.Running() {
		t.Error("stopwatch should be running after start")
	}
	if err := d.Dispatch("stop"); err != nil {
		t.Fatalf("stop error = %v", err)
	}
	if sw.Running() {
		t.Error("stopwatch should be stopped after stop")
	}
}

func TestDispatchElapsedFormat(t *testing.T) {
	d, _, out := newTestDispatcher()

	if err := d.Dispatch("elapsed"); err != nil {
		t.Fatalf("elapsed error = %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "00:00:00.000" {
		t.Errorf("elapsed output = %q, want 00:00:00.000", got)
	}
}

func TestDispatchReset(t *testing.T) {
	d, sw, _ := newTestDispatcher()

	d.Dispatch("start")
	d.Dispatch("lap one")
	if err := d.Dispatch("reset"); err != nil {
		t.Fatalf("reset error = %v", err)
	}
	if sw.Running() || sw.Elapsed() != 0 || sw.LapCount() != 0 {
		t.Error("reset did not return stopwatch to initial state")
	}
}

func TestDispatchLap(t *testing.T) {
	d, sw, out := newTestDispatcher()

	// Lap while stopped fails through the engine's own error
	if err := d.Dispatch("lap too early"); !stopwatch.IsKind(err, stopwatch.NotRunning) {
		t.Fatalf("lap while stopped = %v, want NotRunning", err)
	}

	d.Dispatch("start")
	if err := d.Dispatch("lap first split"); err != nil {
		t.Fatalf("lap error = %v", err)
	}

	laps := sw.Laps()
	if len(laps) != 1 {
		t.Fatalf("got %d laps, want 1", len(laps))
	}
	if laps[0].Label != "first split" {
		t.Errorf("label = %q, want %q", laps[0].Label, "first split")
	}
	if !strings.Contains(out.String(), "lap 1 @") {
		t.Errorf("missing lap confirmation: %q", out.String())
	}
}

func TestDispatchExport(t *testing.T) {
	d, _, out := newTestDispatcher()

	if err := d.Dispatch("export json"); err != nil {
		t.Fatalf("export json error = %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "[]" {
		t.Errorf("empty json export = %q, want []", got)
	}

	out.Reset()
	if err := d.Dispatch("export csv"); err != nil {
		t.Fatalf("export csv error = %v", err)
	}
	if got := out.String(); got != "index,time_ms,label\n" {
		t.Errorf("empty csv export = %q", got)
	}
}

func TestDispatchInvalid(t *testing.T) {
	d, _, _ := newTestDispatcher()

	tests := []string{
		"bogus",
		"export",
		"export xml",
		"measure",
		"measure sleep 1", // missing --
	}
	for _, line := range tests {
		if err := d.Dispatch(line); !stopwatch.IsKind(err, stopwatch.Invalid) {
			t.Errorf("Dispatch(%q) = %v, want Invalid", line, err)
		}
	}
}

func TestDispatchEmptyLine(t *testing.T) {
	d, _, out := newTestDispatcher()
	if err := d.Dispatch("   "); err != nil {
		t.Fatalf("blank line error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("blank line produced output: %q", out.String())
	}
}

func TestDispatchWatchLeavesEngineRunning(t *testing.T) {
	d, sw, out := newTestDispatcher()

	// Input reader is exhausted, so the session cancels on EOF
	if err := d.Dispatch("watch"); err != nil {
		t.Fatalf("watch error = %v", err)
	}
	if !sw.Running() {
		t.Error("watch must leave the stopwatch running")
	}
	if !strings.Contains(out.String(), "00:00:00.") {
		t.Errorf("watch output missing rendered time: %q", out.String())
	}
}

func TestDispatchMeasure(t *testing.T) {
	d, sw, out := newTestDispatcher()

	if err := d.Dispatch("measure -- sh -c true"); err != nil {
		t.Fatalf("measure error = %v", err)
	}
	if !strings.Contains(out.String(), "exit 0") {
		t.Errorf("measure output missing exit status: %q", out.String())
	}
	// measure uses its own fresh engine
	if sw.Running() || sw.Elapsed() != 0 {
		t.Error("measure must not touch the session stopwatch")
	}
}
