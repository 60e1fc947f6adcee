package prompt

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/grovetools/jj-prompt/jj"
)

// The profile is pinned rather than detected: starship invokes the binary
// with stdout on a pipe, where auto-detection would always strip color.
var profile = termenv.ANSI256

// Colors matching jj's own output: green symbol, magenta change-id accent
// and bookmarks, gray for the remainder of the id.
const (
	colorSymbol   = "2"
	colorIDAccent = "5"
	colorIDRest   = "8"
	colorBookmark = "5"
)

// idAccentLen is how many leading change-id characters get the bold accent.
// jj highlights the shortest unique prefix; a fixed single character
// approximates that without a second repository query.
const idAccentLen = 1

// Render composes the final display line: symbol, change id, bookmarks,
// status glyph, file count, description head. Tokens are joined by single
// spaces and empty tokens are omitted entirely, so the line never carries a
// dangling separator. fileCount is nil when the probe did not run.
func Render(st *jj.Status, fileCount *int, cfg Config) string {
	var b strings.Builder

	b.WriteString(colored(cfg, cfg.Symbol, colorSymbol))
	b.WriteString(renderChangeID(cfg, st.ChangeID))

	if len(st.Bookmarks) > 0 {
		b.WriteString(" ")
		b.WriteString(colored(cfg, strings.Join(st.Bookmarks, " "), colorBookmark))
	}

	if glyph := statusGlyph(st); glyph != "" {
		b.WriteString(" ")
		b.WriteString(glyph)
	}

	if fileCount != nil && *fileCount > 0 {
		b.WriteString(" ")
		b.WriteString(dimmed(cfg, fmt.Sprintf("~%d", *fileCount)))
	}

	if desc := descriptionHead(st); desc != "" {
		b.WriteString(" ")
		b.WriteString(dimmed(cfg, desc))
	}

	return b.String()
}

// statusGlyph picks the single state marker: conflict wins over divergence.
func statusGlyph(st *jj.Status) string {
	switch {
	case st.HasConflict:
		return ">"
	case st.IsDivergent:
		return `\`
	default:
		return ""
	}
}

// descriptionHead hides jj's "(no description set)" placeholder.
func descriptionHead(st *jj.Status) string {
	if st.Description == jj.NoDescription {
		return ""
	}
	return st.Description
}

// renderChangeID truncates the raw identifier to the configured length and,
// with color enabled, applies the two-tone style: a bold accent on the
// leading characters, the remainder muted.
func renderChangeID(cfg Config, id string) string {
	if len(id) > cfg.IDLength {
		id = id[:cfg.IDLength]
	}
	if !cfg.ColorEnabled || id == "" {
		return id
	}

	n := idAccentLen
	if n > len(id) {
		n = len(id)
	}
	out := profile.String(id[:n]).Foreground(profile.Color(colorIDAccent)).Bold().String()
	if n < len(id) {
		out += profile.String(id[n:]).Foreground(profile.Color(colorIDRest)).String()
	}
	return out
}

func colored(cfg Config, s, color string) string {
	if !cfg.ColorEnabled || s == "" {
		return s
	}
	return profile.String(s).Foreground(profile.Color(color)).String()
}

func dimmed(cfg Config, s string) string {
	if !cfg.ColorEnabled || s == "" {
		return s
	}
	return profile.String(s).Faint().String()
}
