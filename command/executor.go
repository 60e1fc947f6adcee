package command

import (
	"context"
	"os/exec"
)

// Executor abstracts the construction of exec.Cmd values so tests can swap
// in their own command creation (a PATH pointed at a stub jj binary, say)
// without touching the Runner built on top of it.
type Executor interface {
	// Command returns an exec.Cmd for the given command and arguments.
	Command(name string, args ...string) *exec.Cmd

	// CommandContext returns an exec.Cmd bound to ctx, so cancelling a
	// prompt run kills the child process with it.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor backs Executor with os/exec directly.
type RealExecutor struct{}

// Command returns a standard exec.Cmd.
func (e *RealExecutor) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// CommandContext returns a standard context-aware exec.Cmd.
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
