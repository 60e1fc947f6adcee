package jj

// Template describes the wire contract with the jj CLI's template engine:
// the expression passed to `jj log -T` and the delimiters used to carve its
// output back apart. The field order and delimiters are a versioned contract
// with the installed jj binary; if a jj release changes its template
// language, DefaultTemplate is the only thing to update.
type Template struct {
	// Expr is the template expression handed to `jj log -T`.
	Expr string

	// FieldSep separates the top-level fields of the record.
	FieldSep string

	// BookmarkSep separates names inside the bookmark field.
	BookmarkSep string

	// TrueToken is the token the template emits for a true boolean.
	TrueToken string
}

// statusFieldCount is the number of fields Expr emits:
// change id, bookmarks, conflict, divergent, description head.
const statusFieldCount = 5

// DefaultTemplate is the contract used by the status query.
var DefaultTemplate = Template{
	Expr: `change_id ++ "|" ++ bookmarks.join(",") ++ "|" ++` +
		` if(conflict, "true", "false") ++ "|" ++` +
		` if(divergent, "true", "false") ++ "|" ++ description.first_line()`,
	FieldSep:    "|",
	BookmarkSep: ",",
	TrueToken:   "true",
}
