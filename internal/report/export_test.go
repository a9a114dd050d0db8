package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/psantana5/lapse/pkg/stopwatch"
)

func sampleLaps() []stopwatch.Lap {
	return []stopwatch.Lap{
		{Index: 1, AtMs: 1500, Label: "warmup"},
		{Index: 2, AtMs: 3750},
		{Index: 3, AtMs: 3_661_234, Label: "final"},
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty lap log = %q, want []", got)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleLaps()); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("got %d entries, want 3", len(decoded))
	}
	if decoded[0]["index"].(float64) != 1 {
		t.Errorf("first index = %v, want 1", decoded[0]["index"])
	}
	if decoded[0]["at_ms"].(float64) != 1500 {
		t.Errorf("first at_ms = %v, want 1500", decoded[0]["at_ms"])
	}
	if decoded[0]["label"].(string) != "warmup" {
		t.Errorf("first label = %v, want warmup", decoded[0]["label"])
	}
	// Absent label must be omitted, not empty
	if _, ok := decoded[1]["label"]; ok {
		t.Error("unlabeled lap should omit the label key")
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if got := buf.String(); got != "index,time_ms,label\n" {
		t.Errorf("empty CSV = %q, want header row only", got)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleLaps()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"index,time_ms,label",
		"1,1500,warmup",
		"2,3750,",
		"3,3661234,final",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), buf.String())
	}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTable(&buf, sampleLaps()); err != nil {
		t.Fatalf("RenderTable() error = %v", err)
	}

	out := buf.String()
	for _, fragment := range []string{"warmup", "final", "00:00:01.500", "01:01:01.234", "Total laps: 3"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("table output missing %q:\n%s", fragment, out)
		}
	}
	// Delta column: second lap is 2250ms after the first
	if !strings.Contains(out, "00:00:02.250") {
		t.Errorf("table output missing delta 00:00:02.250:\n%s", out)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTable(&buf, nil); err != nil {
		t.Fatalf("RenderTable() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Total laps: 0") {
		t.Errorf("empty table output = %q", buf.String())
	}
}
