package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, input string) []string {
	t.Helper()
	l := NewLexer(input, nil)
	var texts []string
	for {
		tok, err := l.Lex()
		require.NoError(t, err)
		if tok.Text == "EOF" {
			return texts
		}
		texts = append(texts, tok.Text)
	}
}

func TestLexer_Lex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "control word and groups",
			input: `\frac{a}{b}`,
			want:  []string{`\frac`, "{", "a", "}", "{", "b", "}"},
		},
		{
			name:  "whitespace run collapses",
			input: "a  \n b",
			want:  []string{"a", " ", "b"},
		},
		{
			name:  "control word eats trailing space",
			input: `\alpha   x`,
			want:  []string{`\alpha`, "x"},
		},
		{
			name:  "control symbol",
			input: `\{\,`,
			want:  []string{`\{`, `\,`},
		},
		{
			name:  "control space",
			input: `a\ b`,
			want:  []string{"a", `\ `, "b"},
		},
		{
			name:  "verb literal",
			input: `\verb|x y|z`,
			want:  []string{`\verb|x y|`, "z"},
		},
		{
			name:  "starred verb",
			input: `\verb*+a+`,
			want:  []string{`\verb*+a+`},
		},
		{
			name:  "comment skipped to end of line",
			input: "x%comment\ny",
			want:  []string{"x", "y"},
		},
		{
			name:  "combining marks stay with base",
			input: "éx",
			want:  []string{"é", "x"},
		},
		{
			name:  "at sign in control word",
			input: `\@firstoftwo`,
			want:  []string{`\@firstoftwo`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexAll(t, tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lex() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	l := NewLexer(`\alpha x`, nil)

	tok, err := l.Lex()
	require.NoError(t, err)
	require.Equal(t, `\alpha`, tok.Text)
	require.Equal(t, 0, tok.Loc.Start)
	require.Equal(t, 7, tok.Loc.End)

	tok, err = l.Lex()
	require.NoError(t, err)
	require.Equal(t, "x", tok.Text)
	require.Equal(t, 7, tok.Loc.Start)
	require.Equal(t, 8, tok.Loc.End)

	tok, err = l.Lex()
	require.NoError(t, err)
	require.Equal(t, "EOF", tok.Text)
	require.Equal(t, 8, tok.Loc.Start)
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	for _, input := range []string{"a\x01", `x\`} {
		l := NewLexer(input, nil)
		_, err := l.Lex()
		require.NoError(t, err)
		_, err = l.Lex()
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		require.Contains(t, perr.RawMessage, "Unexpected character")
		require.Equal(t, 1, perr.Position)
	}
}

func TestLexer_Catcodes(t *testing.T) {
	l := NewLexer("a%b", nil)
	l.SetCatcode("%", CatcodeActive)
	var texts []string
	for {
		tok, err := l.Lex()
		require.NoError(t, err)
		if tok.Text == "EOF" {
			break
		}
		texts = append(texts, tok.Text)
	}
	require.Equal(t, []string{"a", "%", "b"}, texts)

	code, ok := l.Catcode("~")
	require.True(t, ok)
	require.Equal(t, CatcodeActive, code)
}

func TestLexer_CommentAtEnd(t *testing.T) {
	s, err := NewSettings(WithStrict(StrictError))
	require.NoError(t, err)

	l := NewLexer("x%", s)
	_, err = l.Lex()
	require.NoError(t, err)
	_, err = l.Lex()
	require.ErrorContains(t, err, "commentAtEnd")
}
