// Package prompt assembles the one-line jj status summary shown in the
// shell prompt: detect gate, status query, optional file-count probe, and
// the final render. Each run is stateless; nothing is cached across
// invocations.
package prompt

import (
	"context"

	"github.com/grovetools/jj-prompt/errors"
	"github.com/grovetools/jj-prompt/jj"
	"github.com/grovetools/jj-prompt/logging"
)

// Run executes the full pipeline and returns the rendered line. The caller
// writes it to stdout in one shot only after it is fully assembled, so a
// killed process never flushes a partial prompt.
//
// A status-query failure is fatal: there is nothing valid to show. A
// file-count failure is not: the count is supplementary, so the line is
// rendered without it.
func Run(ctx context.Context, inv jj.Invoker, cfg Config) (string, error) {
	log := logging.NewLogger("prompt")

	cwd, err := cfg.WorkingDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInvalidInput, "could not resolve working directory")
	}

	root, ok := jj.FindRoot(cwd)
	if !ok {
		return "", errors.NotInRepo(cwd)
	}

	st, err := jj.QueryStatus(ctx, inv, root)
	if err != nil {
		return "", err
	}

	var fileCount *int
	if cfg.IncludeFileCount {
		if n, err := jj.CountChangedFiles(ctx, inv, root); err != nil {
			log.WithError(err).Debug("file count probe failed, rendering without it")
		} else {
			fileCount = &n
		}
	}

	return Render(st, fileCount, cfg), nil
}
