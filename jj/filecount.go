package jj

import (
	"context"
	"strings"
)

// CountChangedFiles counts files changed in the working-copy change relative
// to its parent, by issuing `jj diff --summary` and counting entry lines.
//
// This is the expensive optional probe: callers skip it entirely (no process
// is spawned) when file counts are disabled, and treat its failure as
// supplementary information going missing rather than a fatal error.
func CountChangedFiles(ctx context.Context, inv Invoker, dir string) (int, error) {
	raw, err := inv.Output(ctx, dir, Binary, "diff", "--summary", "--ignore-working-copy")
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}

	count := 0
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count, nil
}
