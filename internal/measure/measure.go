package measure

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/psantana5/lapse/pkg/stopwatch"
)

// Result describes one measured external command
type Result struct {
	Command   string        `json:"command"`
	ExitCode  int           `json:"exit_code"`
	Duration  time.Duration `json:"-"`
	ElapsedMs int64         `json:"elapsed_ms"`
	Elapsed   string        `json:"elapsed"`
	Resources *Resources    `json:"resources,omitempty"`
}

// Options controls how the command is measured
type Options struct {
	// SampleResources enables peak RSS / CPU sampling of the child
	SampleResources bool
	// SampleInterval is the resource polling cadence (default 200ms)
	SampleInterval time.Duration
	// Stdout and Stderr default to the parent's streams
	Stdout, Stderr *os.File
}

// Run executes an external command to completion under a fresh
// stopwatch: start, spawn, wait, stop, report. The child's exit
// status is captured in the Result (1 when unavailable); a launch
// failure surfaces as an Invalid stopwatch error so callers report it
// through the same error contract as malformed commands.
func Run(ctx context.Context, opts Options, name string, args ...string) (*Result, error) {
	sw := stopwatch.New()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	}
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}

	if err := sw.Start(); err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, stopwatch.NewError(stopwatch.Invalid, "measure")
	}

	var sampler *sampler
	if opts.SampleResources {
		interval := opts.SampleInterval
		if interval <= 0 {
			interval = 200 * time.Millisecond
		}
		sampler = startSampler(cmd.Process.Pid, interval)
	}

	waitErr := cmd.Wait()
	if err := sw.Stop(); err != nil {
		return nil, err
	}

	exitCode := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) && exitErr.ExitCode() >= 0 {
			exitCode = exitErr.ExitCode()
		} else {
			// Status unavailable (killed, context cancelled, ...)
			exitCode = 1
		}
	}

	result := &Result{
		Command:   commandLine(name, args),
		ExitCode:  exitCode,
		Duration:  sw.Elapsed(),
		ElapsedMs: sw.Elapsed().Milliseconds(),
		Elapsed:   stopwatch.Format(sw.Elapsed()),
	}
	if sampler != nil {
		result.Resources = sampler.stop()
	}
	return result, nil
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
