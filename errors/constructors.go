package errors

import (
	"fmt"
	"os/exec"
)

// SpawnFailed creates an error for a child process that could not be started
// (binary missing from PATH, permission denied).
func SpawnFailed(name string, err error) *PromptError {
	return Wrap(err, ErrCodeSpawnFailed, fmt.Sprintf("failed to spawn '%s'", name)).
		WithDetail("command", name)
}

// NonZeroExit creates an error for a child process that ran but reported
// failure. The exit code and captured stderr are attached as details so
// callers can tell "not a repository" apart from a real crash.
func NonZeroExit(name string, err error) *PromptError {
	promptErr := Wrap(err, ErrCodeNonZeroExit, fmt.Sprintf("command failed: %s", name)).
		WithDetail("command", name)

	if exitErr, ok := err.(*exec.ExitError); ok {
		promptErr = promptErr.WithDetail("exitCode", exitErr.ExitCode())
		if len(exitErr.Stderr) > 0 {
			promptErr = promptErr.WithDetail("stderr", string(exitErr.Stderr))
		}
	}

	return promptErr
}

// OutputNotUTF8 creates an error for command output that is not valid UTF-8.
func OutputNotUTF8(name string) *PromptError {
	return New(ErrCodeOutputNotUTF8, fmt.Sprintf("output of '%s' is not valid UTF-8", name)).
		WithDetail("command", name)
}

// MalformedOutput creates an error for a status line that does not match the
// template contract.
func MalformedOutput(raw string, want, got int) *PromptError {
	return New(ErrCodeMalformedOutput,
		fmt.Sprintf("expected %d template fields, got %d", want, got)).
		WithDetail("raw", raw).
		WithDetail("expectedFields", want).
		WithDetail("actualFields", got)
}

// NotInRepo creates an error for a directory outside any jj workspace.
// The detector treats this as a normal negative result, not a crash.
func NotInRepo(dir string) *PromptError {
	return New(ErrCodeNotInRepo, fmt.Sprintf("not inside a jj repository: %s", dir)).
		WithDetail("dir", dir)
}

// InvalidInput creates an error for a rejected configuration value.
func InvalidInput(reason string) *PromptError {
	return New(ErrCodeInvalidInput, reason)
}
