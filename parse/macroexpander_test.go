package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func expandAll(t *testing.T, m *MacroExpander) []string {
	t.Helper()
	var texts []string
	for {
		tok, err := m.ExpandNextToken()
		require.NoError(t, err)
		if tok.Text == "EOF" {
			return texts
		}
		texts = append(texts, tok.Text)
	}
}

func TestMacroExpander_ExpandNextToken(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		macros map[string]string
		want   []string
	}{
		{
			name:   "text macro",
			input:  `\foo x`,
			macros: map[string]string{`\foo`: "ab"},
			want:   []string{"a", "b", "x"},
		},
		{
			name:   "arguments substituted",
			input:  `\pair{x}y`,
			macros: map[string]string{`\pair`: "(#1,#2)"},
			want:   []string{"(", "x", ",", "y", ")"},
		},
		{
			name:   "double hash is literal",
			input:  `\h{a}`,
			macros: map[string]string{`\h`: "#1##"},
			want:   []string{"a", "#"},
		},
		{
			name:   "nested macros",
			input:  `\outer`,
			macros: map[string]string{`\outer`: `\inner\inner`, `\inner`: "i"},
			want:   []string{"i", "i"},
		},
		{
			name:  "firstoftwo",
			input: `\@firstoftwo{ab}{cd}`,
			want:  []string{"a", "b"},
		},
		{
			name:  "secondoftwo",
			input: `\@secondoftwo{ab}{cd}`,
			want:  []string{"c", "d"},
		},
		{
			name:  "ifnextchar matches",
			input: `\@ifnextchar x{Y}{N}x`,
			want:  []string{"Y", "x"},
		},
		{
			name:  "ifnextchar skips spaces",
			input: `\@ifnextchar x{Y}{N} z`,
			want:  []string{"N", "z"},
		},
		{
			name:  "bgroup",
			input: `\bgroup a\egroup`,
			want:  []string{"{", "a", "}"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			for name, body := range tt.macros {
				opts = append(opts, WithMacro(name, body))
			}
			s, err := NewSettings(opts...)
			require.NoError(t, err)

			got := expandAll(t, NewMacroExpander(tt.input, s, MathMode))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("expansion mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMacroExpander_MaxExpand(t *testing.T) {
	s, err := NewSettings(WithMaxExpand(5), WithMacro(`\loop`, `\loop`))
	require.NoError(t, err)

	m := NewMacroExpander(`\loop`, s, MathMode)
	_, err = m.ExpandNextToken()
	require.ErrorIs(t, err, ErrTooManyExpansions)
	require.Equal(t, 6, m.ExpansionCount())
}

func TestMacroExpander_Unlimited(t *testing.T) {
	s, err := NewSettings(WithMaxExpand(-1), WithMacro(`\a`, `\b\b`), WithMacro(`\b`, "x"))
	require.NoError(t, err)

	m := NewMacroExpander(`\a\a\a\a`, s, MathMode)
	require.Len(t, expandAll(t, m), 8)
	require.Equal(t, 12, m.ExpansionCount())
}

func TestMacroExpander_ConsumeArg(t *testing.T) {
	m := NewMacroExpander(`{a{b}c} d`, nil, MathMode)
	arg, err := m.ConsumeArg(nil)
	require.NoError(t, err)

	var texts []string
	for i := len(arg.Tokens) - 1; i >= 0; i-- {
		texts = append(texts, arg.Tokens[i].Text)
	}
	require.Equal(t, []string{"a", "{", "b", "}", "c"}, texts)
	require.Equal(t, "{", arg.Start.Text)
	require.Equal(t, "}", arg.End.Text)

	arg, err = m.ConsumeArg(nil)
	require.NoError(t, err)
	require.Len(t, arg.Tokens, 1)
	require.Equal(t, "d", arg.Tokens[0].Text)
}

func TestMacroExpander_ConsumeArgErrors(t *testing.T) {
	_, err := NewMacroExpander(`}`, nil, MathMode).ConsumeArg(nil)
	require.ErrorContains(t, err, "Extra }")

	_, err = NewMacroExpander(`{ab`, nil, MathMode).ConsumeArg(nil)
	require.ErrorContains(t, err, "Unexpected end of input in a macro argument, expected '}'")

	_, err = NewMacroExpander(`ab`, nil, MathMode).ConsumeArg([]string{"."})
	require.ErrorContains(t, err, "expected '.'")
}

func TestMacroExpander_ExpandMacroAsText(t *testing.T) {
	s, err := NewSettings(WithMacro(`\name`, `ab\suffix`), WithMacro(`\suffix`, "c"))
	require.NoError(t, err)
	m := NewMacroExpander("", s, MathMode)

	text, ok, err := m.ExpandMacroAsText(`\name`)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc", text)

	_, ok, err = m.ExpandMacroAsText(`\missing`)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMacroExpander_IsDefined(t *testing.T) {
	m := NewMacroExpander("", nil, MathMode)
	for _, name := range []string{`\frac`, `\alpha`, `\dots`, "^", `\limits`} {
		require.True(t, m.IsDefined(name), name)
	}
	require.False(t, m.IsDefined(`\nosuchthing`))

	require.True(t, m.IsExpandable(`\dots`))
	require.True(t, m.IsExpandable(`\frac`))
	require.False(t, m.IsExpandable(`\kern`))
	require.False(t, m.IsExpandable(`\alpha`))
}
