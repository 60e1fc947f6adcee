package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/jj-prompt/errors"
)

// ErrorHandler provides user-friendly error messages on stderr. Standard
// output is never touched here; a failed run shows no prompt segment.
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle prints a diagnostic for the error and returns it unchanged so the
// caller can still drive the process exit code from it.
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotInRepo:
		// The normal negative result on every redraw outside a repository.
		return err

	case errors.ErrCodeSpawnFailed:
		fmt.Fprintf(os.Stderr, "%s: could not run 'jj'. Is it installed and on PATH?\n", binaryName)

	case errors.ErrCodeNonZeroExit:
		if promptErr, ok := err.(*errors.PromptError); ok {
			if stderr, ok := promptErr.Details["stderr"].(string); ok && stderr != "" {
				fmt.Fprintf(os.Stderr, "%s: jj reported failure: %s", binaryName, stderr)
				break
			}
		}
		fmt.Fprintf(os.Stderr, "%s: jj reported failure\n", binaryName)

	default:
		fmt.Fprintf(os.Stderr, "%s: %v\n", binaryName, err)
	}

	if h.Verbose {
		if promptErr, ok := err.(*errors.PromptError); ok {
			fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", promptErr.ToJSON())
		}
	}

	return err
}
