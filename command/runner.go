package command

import (
	"context"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/grovetools/jj-prompt/errors"
)

// Runner runs external commands synchronously and captures their standard
// output. Failures are mapped to the typed error codes the pipeline keys on:
// SPAWN_FAILED for a binary that could not start, NON_ZERO_EXIT for a command
// that ran and reported failure, OUTPUT_NOT_UTF8 for undecodable output.
//
// There are no retries and no internal timeouts. The prompt runs on every
// redraw, so a failed invocation is reported once and the shell's own
// timeout handling covers a hung external tool.
type Runner struct {
	executor Executor
}

// NewRunner creates a Runner backed by a RealExecutor.
func NewRunner() *Runner {
	return NewRunnerWithExecutor(&RealExecutor{})
}

// NewRunnerWithExecutor creates a Runner with a custom Executor.
func NewRunnerWithExecutor(exec Executor) *Runner {
	return &Runner{executor: exec}
}

// Output runs name with args in dir and returns its standard output with a
// single trailing newline removed. An empty dir runs the command in the
// process's current working directory.
func (r *Runner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := r.executor.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	out, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return "", errors.NonZeroExit(name, err)
		}
		return "", errors.SpawnFailed(name, err)
	}

	if !utf8.Valid(out) {
		return "", errors.OutputNotUTF8(name)
	}

	return strings.TrimSuffix(string(out), "\n"), nil
}
