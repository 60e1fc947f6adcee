package jj

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/jj-prompt/errors"
)

// fakeInvoker returns canned output and records every invocation.
type fakeInvoker struct {
	out   string
	err   error
	calls [][]string
}

func (f *fakeInvoker) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.out, f.err
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Status
	}{
		{
			name: "full record",
			raw:  "ab12|feature-x,main|false|false|Fix bug",
			want: Status{
				ChangeID:    "ab12",
				Bookmarks:   []string{"feature-x", "main"},
				Description: "Fix bug",
			},
		},
		{
			name: "no bookmarks",
			raw:  "ab12||false|false|Fix bug",
			want: Status{ChangeID: "ab12", Description: "Fix bug"},
		},
		{
			name: "single bookmark",
			raw:  "ab12|main|false|false|",
			want: Status{ChangeID: "ab12", Bookmarks: []string{"main"}},
		},
		{
			name: "conflict flag",
			raw:  "ab12||true|false|",
			want: Status{ChangeID: "ab12", HasConflict: true},
		},
		{
			name: "divergent flag",
			raw:  "ab12||false|true|",
			want: Status{ChangeID: "ab12", IsDivergent: true},
		},
		{
			name: "empty description is not an error",
			raw:  "ab12|main|false|false|",
			want: Status{ChangeID: "ab12", Bookmarks: []string{"main"}},
		},
		{
			name: "description may contain the field delimiter",
			raw:  "ab12||false|false|update a|b matrix",
			want: Status{ChangeID: "ab12", Description: "update a|b matrix"},
		},
		{
			name: "unknown flag tokens decode as false",
			raw:  "ab12||maybe|yes|",
			want: Status{ChangeID: "ab12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.raw, DefaultTemplate)
			require.NoError(t, err)
			assert.Equal(t, &tt.want, got)
		})
	}
}

func TestParseStatusBookmarkCount(t *testing.T) {
	// N bookmarks in always parse to exactly N names out, in input order.
	for n := 0; n <= 8; n++ {
		names := make([]string, 0, n)
		for i := 0; i < n; i++ {
			names = append(names, fmt.Sprintf("bookmark-%d", i))
		}
		raw := "zyxw|" + strings.Join(names, ",") + "|false|false|"

		st, err := ParseStatus(raw, DefaultTemplate)
		require.NoError(t, err)
		assert.Len(t, st.Bookmarks, n, "raw: %q", raw)
		for i, name := range names {
			assert.Equal(t, name, st.Bookmarks[i])
		}
	}
}

func TestParseStatusIdempotent(t *testing.T) {
	raw := "ab12|feature-x,main|true|false|Fix bug"
	first, err := ParseStatus(raw, DefaultTemplate)
	require.NoError(t, err)
	second, err := ParseStatus(raw, DefaultTemplate)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseStatusMalformed(t *testing.T) {
	for _, raw := range []string{"", "ab12", "ab12|main", "ab12|main|false|false"} {
		_, err := ParseStatus(raw, DefaultTemplate)
		require.Error(t, err, "raw: %q", raw)
		assert.Equal(t, errors.ErrCodeMalformedOutput, errors.GetCode(err))
	}
}

func TestQueryStatus(t *testing.T) {
	t.Run("invokes the pinned status query", func(t *testing.T) {
		inv := &fakeInvoker{out: "ab12|main|false|false|Fix bug"}
		st, err := QueryStatus(context.Background(), inv, "/repo")
		require.NoError(t, err)
		assert.Equal(t, "ab12", st.ChangeID)

		require.Len(t, inv.calls, 1)
		call := inv.calls[0]
		assert.Equal(t, Binary, call[0])
		assert.Contains(t, call, "--no-graph")
		assert.Contains(t, call, "--ignore-working-copy")
		assert.Contains(t, call, DefaultTemplate.Expr)
	})

	t.Run("propagates invoker failure", func(t *testing.T) {
		inv := &fakeInvoker{err: errors.NonZeroExit(Binary, fmt.Errorf("exit 1"))}
		_, err := QueryStatus(context.Background(), inv, "/repo")
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeNonZeroExit, errors.GetCode(err))
	})
}
