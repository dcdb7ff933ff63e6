package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veclint/veclint/pkg/svg"
)

func elements(t *testing.T, markup, selector string) []*svg.Element {
	t.Helper()
	doc, err := svg.Parse([]byte(markup))
	require.NoError(t, err)
	elems, err := doc.Find(selector)
	require.NoError(t, err)
	return elems
}

func TestMerge(t *testing.T) {
	markup := `<svg><g/><rect/><circle/></svg>`
	g := elements(t, markup, "g")[0]
	rect := elements(t, markup, "rect")[0]
	circle := elements(t, markup, "circle")[0]

	tests := []struct {
		name  string
		execs []Execution
		want  []Result
	}{
		{
			name:  "no executions",
			execs: nil,
			want:  nil,
		},
		{
			name: "disallowed survives without an allow",
			execs: []Execution{
				{Disallowed: []Result{{Element: g, Message: "no groups"}}},
			},
			want: []Result{{Element: g, Message: "no groups"}},
		},
		{
			name: "allow in a sibling execution wins",
			execs: []Execution{
				{Disallowed: []Result{{Element: g, Message: "no groups"}}},
				{Allowed: []Result{{Element: g}}},
			},
			want: nil,
		},
		{
			name: "allow in the same execution wins",
			execs: []Execution{
				{
					Allowed:    []Result{{Element: rect}},
					Disallowed: []Result{{Element: rect, Message: "no rects"}},
				},
			},
			want: nil,
		},
		{
			name: "unrelated allow does not rescue",
			execs: []Execution{
				{Disallowed: []Result{{Element: g, Message: "no groups"}}},
				{Allowed: []Result{{Element: circle}}},
			},
			want: []Result{{Element: g, Message: "no groups"}},
		},
		{
			name: "selector-level results are always kept",
			execs: []Execution{
				{Disallowed: []Result{{Message: "expected at least one match"}}},
				{Allowed: []Result{{Element: g}, {Element: rect}, {Element: circle}}},
			},
			want: []Result{{Message: "expected at least one match"}},
		},
		{
			name: "order of surviving results is preserved",
			execs: []Execution{
				{Disallowed: []Result{{Element: g, Message: "a"}, {Element: rect, Message: "b"}}},
				{Disallowed: []Result{{Element: circle, Message: "c"}}},
			},
			want: []Result{
				{Element: g, Message: "a"},
				{Element: rect, Message: "b"},
				{Element: circle, Message: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.execs))
		})
	}
}

func TestMergeUsesHandleIdentity(t *testing.T) {
	// Two documents with identical markup produce distinct handles, so an
	// allow in one never exempts the lookalike element of the other.
	a := elements(t, `<svg><g/></svg>`, "g")[0]
	b := elements(t, `<svg><g/></svg>`, "g")[0]
	require.NotSame(t, a, b)

	got := Merge([]Execution{
		{Disallowed: []Result{{Element: a, Message: "no groups"}}},
		{Allowed: []Result{{Element: b}}},
	})
	assert.Equal(t, []Result{{Element: a, Message: "no groups"}}, got)
}
