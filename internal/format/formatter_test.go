package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dbgrep/pkg/dbgrep"
)

func TestFormat_TextMatchPlain(t *testing.T) {
	rec := dbgrep.TextMatch{
		File:    "/var/log/app.log",
		LineNum: 12,
		Line:    "2024-01-01 ERROR: disk full",
		Start:   11,
		End:     16,
	}

	got := New(false).Format(rec)
	assert.Equal(t, "[app.log:12] 2024-01-01 ERROR: disk full", got)
}

func TestFormat_DatabaseMatchPlain(t *testing.T) {
	rec := dbgrep.DatabaseMatch{
		File:    "/data/state.sqlite3",
		Table:   "events",
		Column:  "msg",
		Row:     3,
		Segment: "background error seen",
		Start:   11,
		End:     16,
	}

	got := New(false).Format(rec)
	assert.Equal(t, "[state.sqlite3:events.msg:row3] background error seen", got)
}

func TestFormat_ColorKeepsSurroundingTextIntact(t *testing.T) {
	rec := dbgrep.TextMatch{
		File:    "app.log",
		LineNum: 1,
		Line:    "before MATCH after",
		Start:   7,
		End:     12,
	}

	got := New(true).Format(rec)
	// The emphasis wrapper varies with the terminal profile; the prefix and
	// the text on both sides of the span must survive verbatim.
	assert.True(t, strings.HasPrefix(got, "[app.log:1] before "), "got %q", got)
	assert.True(t, strings.HasSuffix(got, " after"), "got %q", got)
	assert.Contains(t, got, "MATCH")
}

func TestRender_SingleLineWithoutContext(t *testing.T) {
	rec := dbgrep.TextMatch{File: "a.log", LineNum: 1, Line: "x error y", Start: 2, End: 7}

	lines := New(false).Render(rec)
	require.Len(t, lines, 1)
}

func TestRender_ContextLinesSurroundMatch(t *testing.T) {
	rec := dbgrep.TextMatch{
		File:    "/logs/app.log",
		LineNum: 3,
		Line:    "ERROR three",
		Start:   0,
		End:     5,
		Before: []dbgrep.ContextLine{
			{LineNum: 1, Text: "one"},
			{LineNum: 2, Text: "two"},
		},
		After: []dbgrep.ContextLine{
			{LineNum: 4, Text: "four"},
		},
	}

	lines := New(false).Render(rec)
	require.Len(t, lines, 4)
	assert.Equal(t, "[app.log:1] one", lines[0])
	assert.Equal(t, "[app.log:2] two", lines[1])
	assert.Equal(t, "[app.log:3] ERROR three", lines[2])
	assert.Equal(t, "[app.log:4] four", lines[3])
}

func TestRender_DatabaseMatchNeverHasContext(t *testing.T) {
	rec := dbgrep.DatabaseMatch{File: "d.db", Table: "t", Column: "c", Row: 1, Segment: "error", Start: 0, End: 5}

	lines := New(false).Render(rec)
	require.Len(t, lines, 1)
	assert.Equal(t, "[d.db:t.c:row1] error", lines[0])
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name string
		rec  dbgrep.MatchRecord
		want string
	}{
		{
			name: "text match",
			rec:  dbgrep.TextMatch{File: "/a/b/app.log", LineNum: 7},
			want: "[app.log:7]",
		},
		{
			name: "database match",
			rec:  dbgrep.DatabaseMatch{File: "data.db", Table: "users", Column: "name", Row: 42},
			want: "[data.db:users.name:row42]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Location(tt.rec))
		})
	}
}
