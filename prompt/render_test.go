package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/jj-prompt/jj"
)

func plainConfig() Config {
	cfg := Default()
	cfg.ColorEnabled = false
	return cfg
}

func intPtr(n int) *int { return &n }

func TestRenderPlain(t *testing.T) {
	tests := []struct {
		name      string
		status    jj.Status
		fileCount *int
		want      string
	}{
		{
			name: "bookmarks and description",
			status: jj.Status{
				ChangeID:    "ab12",
				Bookmarks:   []string{"feature-x", "main"},
				Description: "Fix bug",
			},
			want: " ab12 feature-x main Fix bug",
		},
		{
			name: "divergent change",
			status: jj.Status{
				ChangeID:    "ab12",
				Bookmarks:   []string{"feature-x", "main"},
				IsDivergent: true,
				Description: "Fix bug",
			},
			want: ` ab12 feature-x main \ Fix bug`,
		},
		{
			name:   "conflict with empty bookmarks and description",
			status: jj.Status{ChangeID: "ab12", HasConflict: true},
			want:   " ab12 >",
		},
		{
			name:   "conflict wins over divergence",
			status: jj.Status{ChangeID: "ab12", HasConflict: true, IsDivergent: true},
			want:   " ab12 >",
		},
		{
			name:      "file count token",
			status:    jj.Status{ChangeID: "ab12", Description: "Fix bug"},
			fileCount: intPtr(3),
			want:      " ab12 ~3 Fix bug",
		},
		{
			name:      "zero file count is omitted",
			status:    jj.Status{ChangeID: "ab12"},
			fileCount: intPtr(0),
			want:      " ab12",
		},
		{
			name:   "bare change id",
			status: jj.Status{ChangeID: "ab12"},
			want:   " ab12",
		},
		{
			name:   "placeholder description is hidden",
			status: jj.Status{ChangeID: "ab12", Description: jj.NoDescription},
			want:   " ab12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(&tt.status, tt.fileCount, plainConfig())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderNeverDoublesSeparators(t *testing.T) {
	statuses := []jj.Status{
		{ChangeID: "ab12"},
		{ChangeID: "ab12", Bookmarks: []string{"main"}},
		{ChangeID: "ab12", HasConflict: true},
		{ChangeID: "ab12", IsDivergent: true, Description: "x"},
		{ChangeID: "ab12", Bookmarks: []string{"a", "b"}, HasConflict: true, Description: "y"},
	}
	counts := []*int{nil, intPtr(0), intPtr(2)}

	cfg := plainConfig()
	cfg.Symbol = "*"
	for _, st := range statuses {
		for _, fc := range counts {
			out := Render(&st, fc, cfg)
			assert.NotContains(t, out, "  ", "status %+v count %v rendered %q", st, fc, out)
			assert.False(t, strings.HasSuffix(out, " "), "trailing separator in %q", out)
		}
	}
}

func TestRenderTruncation(t *testing.T) {
	// min(L, K) leading characters of the raw id, never padded
	tests := []struct {
		id       string
		idLength int
		want     string
	}{
		{"mzvwutvl", 4, " mzvw"},
		{"mz", 4, " mz"},
		{"mzvwutvl", 8, " mzvwutvl"},
		{"mzvwutvl", 1, " m"},
	}

	for _, tt := range tests {
		cfg := plainConfig()
		cfg.IDLength = tt.idLength
		got := Render(&jj.Status{ChangeID: tt.id}, nil, cfg)
		assert.Equal(t, tt.want, got)
	}
}

func TestRenderColor(t *testing.T) {
	cfg := Default()
	st := &jj.Status{
		ChangeID:    "ab12",
		Bookmarks:   []string{"main"},
		Description: "Fix bug",
	}
	out := Render(st, intPtr(2), cfg)

	require.Contains(t, out, "\x1b[", "expected ANSI styling")

	// Two-tone id: bold accent on the first character, muted remainder
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b12")
	assert.Contains(t, out, "1m", "expected a bold sequence")

	// Token text survives styling in order
	stripped := stripANSI(out)
	assert.Equal(t, " ab12 main ~2 Fix bug", stripped)
}

func TestRenderColorDisabledHasNoEscapes(t *testing.T) {
	st := &jj.Status{ChangeID: "ab12", Bookmarks: []string{"main"}, HasConflict: true}
	out := Render(st, intPtr(1), plainConfig())
	assert.NotContains(t, out, "\x1b")
}

// stripANSI removes CSI sequences so color tests can assert on token order.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && !isFinalByte(s[i]) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isFinalByte(c byte) bool {
	return c >= '@' && c <= '~'
}
