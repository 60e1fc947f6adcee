// Package jj queries a jj (Jujutsu) working copy through the jj command-line
// tool and parses its templated output into typed records. It only ever
// issues read-only queries; every invocation passes --ignore-working-copy so
// jj never snapshots or mutates repository state on our behalf.
package jj

import (
	"context"
	"strings"

	"github.com/grovetools/jj-prompt/errors"
)

// Binary is the name of the external jj executable, resolved via PATH.
const Binary = "jj"

// NoDescription is the placeholder jj shows for a change without a
// description. Callers rendering a description head treat it as empty.
const NoDescription = "(no description set)"

// Invoker runs an external command in a directory and returns its standard
// output trimmed of the trailing newline. Satisfied by command.Runner.
type Invoker interface {
	Output(ctx context.Context, dir, name string, args ...string) (string, error)
}

// Status is the parsed state of the working-copy change. It is built from a
// single parse of a single query's output and never mutated afterwards.
type Status struct {
	// ChangeID is the raw change identifier, untruncated.
	ChangeID string

	// Bookmarks lists the bookmark names attached to the change, in the
	// order jj emitted them. Empty when the change has no bookmarks.
	Bookmarks []string

	// HasConflict reports an unresolved conflict on the change.
	HasConflict bool

	// IsDivergent reports that the change has divergent copies.
	IsDivergent bool

	// Description is the first line of the change description, or empty.
	Description string
}

// QueryStatus runs the status query against the working copy rooted at dir
// and parses the result. A failure here is fatal to the prompt run: without
// a status record there is nothing valid to render.
func QueryStatus(ctx context.Context, inv Invoker, dir string) (*Status, error) {
	raw, err := inv.Output(ctx, dir, Binary,
		"log", "-r", "@", "--no-graph", "--ignore-working-copy",
		"--color", "never", "-T", DefaultTemplate.Expr)
	if err != nil {
		return nil, err
	}
	return ParseStatus(raw, DefaultTemplate)
}

// ParseStatus decodes one templated status record. Parsing is purely
// positional: the record is split on the template's field delimiter, with
// the description as the final field so it may itself contain the delimiter.
// Fewer fields than the contract promises is a MALFORMED_OUTPUT error.
func ParseStatus(raw string, t Template) (*Status, error) {
	fields := strings.SplitN(raw, t.FieldSep, statusFieldCount)
	if len(fields) < statusFieldCount {
		return nil, errors.MalformedOutput(raw, statusFieldCount, len(fields))
	}

	st := &Status{
		ChangeID:    fields[0],
		HasConflict: fields[2] == t.TrueToken,
		IsDivergent: fields[3] == t.TrueToken,
		Description: fields[4],
	}
	if fields[1] != "" {
		st.Bookmarks = strings.Split(fields[1], t.BookmarkSep)
	}
	return st, nil
}
