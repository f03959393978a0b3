package parse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var ignoreLocations = cmpopts.IgnoreTypes((*SourceLocation)(nil))

func mustSettings(t *testing.T, opts ...Option) *Settings {
	t.Helper()
	s, err := NewSettings(opts...)
	require.NoError(t, err)
	return s
}

func mustParse(t *testing.T, input string, opts ...Option) []Node {
	t.Helper()
	tree, err := ParseTree(input, mustSettings(t, opts...))
	require.NoError(t, err, input)
	return tree
}

func mathOrd(text string) *MathOrd {
	return &MathOrd{Base: Base{Mode: MathMode}, Text: text}
}

func textOrd(mode Mode, text string) *TextOrd {
	return &TextOrd{Base: Base{Mode: mode}, Text: text}
}

func ordGroup(body ...Node) *OrdGroup {
	return &OrdGroup{Base: Base{Mode: MathMode}, Body: body}
}

func TestParseTree(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Node
	}{
		{
			name:  "letters and binary operator",
			input: "x+y",
			want: []Node{
				mathOrd("x"),
				&Atom{Base: Base{Mode: MathMode}, Family: FamilyBin, Text: "+"},
				mathOrd("y"),
			},
		},
		{
			name:  "superscript and subscript",
			input: "x^2_i",
			want: []Node{&SupSub{
				Base:    Base{Mode: MathMode},
				Nucleus: mathOrd("x"),
				Sup:     textOrd(MathMode, "2"),
				Sub:     mathOrd("i"),
			}},
		},
		{
			name:  "prime",
			input: "f'",
			want: []Node{&SupSub{
				Base:    Base{Mode: MathMode},
				Nucleus: mathOrd("f"),
				Sup:     ordGroup(textOrd(MathMode, `\prime`)),
			}},
		},
		{
			name:  "fraction",
			input: `\frac{a}{b}`,
			want: []Node{&GenFrac{
				Base:       Base{Mode: MathMode},
				Numer:      ordGroup(mathOrd("a")),
				Denom:      ordGroup(mathOrd("b")),
				HasBarLine: true,
				Size:       "auto",
			}},
		},
		{
			name:  "infix over",
			input: `a \over b`,
			want: []Node{&GenFrac{
				Base:       Base{Mode: MathMode},
				Numer:      ordGroup(mathOrd("a")),
				Denom:      ordGroup(mathOrd("b")),
				HasBarLine: true,
				Size:       "auto",
			}},
		},
		{
			name:  "left right",
			input: `\left(x\right)`,
			want: []Node{&LeftRight{
				Base:  Base{Mode: MathMode},
				Body:  []Node{mathOrd("x")},
				Left:  "(",
				Right: ")",
			}},
		},
		{
			name:  "text ligature",
			input: `\text{--}`,
			want: []Node{&Text{
				Base: Base{Mode: MathMode},
				Font: `\text`,
				Body: []Node{textOrd(TextMode, "--")},
			}},
		},
		{
			name:  "limits on operator",
			input: `\sum\nolimits`,
			want: []Node{&Op{
				Base:               Base{Mode: MathMode},
				AlwaysHandleSupSub: true,
				Symbol:             true,
				Name:               `\sum`,
			}},
		},
		{
			name:  "relax is dropped",
			input: `x\relax`,
			want:  []Node{mathOrd("x")},
		},
		{
			name:  "verb",
			input: `\verb|a b|`,
			want:  []Node{&Verb{Base: Base{Mode: TextMode}, Body: "a b"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.input)
			if diff := cmp.Diff(tt.want, got, ignoreLocations); diff != "" {
				t.Errorf("ParseTree(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

// Macros must be transparent: an expression that uses a macro parses to the
// same tree as the expression with the macro written out.
func TestParseTree_MacroTransparency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expanded string
		macros   map[string]string
	}{
		{
			name:     "def with argument",
			input:    `\def\foo#1{#1+#1}\foo{x}`,
			expanded: `x+x`,
		},
		{
			name:     "def with delimiter",
			input:    `\def\pair#1,#2.{(#2,#1)}\pair a,b.`,
			expanded: `(b,a)`,
		},
		{
			name:     "newcommand with argument count",
			input:    `\newcommand{\sq}[1]{#1^2}\sq{y}`,
			expanded: `y^2`,
		},
		{
			name:     "settings macro",
			input:    `\RR^n`,
			expanded: `\mathbb{R}^n`,
			macros:   map[string]string{`\RR`: `\mathbb{R}`},
		},
		{
			name:     "let",
			input:    `\let\z=z\z`,
			expanded: `z`,
		},
		{
			name:     "char bases",
			input:    "\\char\"41\\char'101\\char65\\char`A",
			expanded: `\@char{65}\@char{65}\@char{65}\@char{65}`,
		},
		{
			name:     "ifstar",
			input:    `\operatorname*{f}`,
			expanded: `\operatornamewithlimits{f}`,
		},
		{
			name:     "noexpand",
			input:    `\def\foo{x}\noexpand\foo y`,
			expanded: `y`,
		},
		{
			name:     "texvc alias",
			input:    `\R\alef`,
			expanded: `\mathbb{R}\aleph`,
		},
		{
			name:     "dots before operator",
			input:    `a+\dots+b`,
			expanded: `a+\@cdots+b`,
		},
		{
			name:     "dots before comma",
			input:    `a,\dots,b`,
			expanded: `a,\ldots,b`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			for name, body := range tt.macros {
				opts = append(opts, WithMacro(name, body))
			}
			got := mustParse(t, tt.input, opts...)
			want := mustParse(t, tt.expanded)
			if diff := cmp.Diff(want, got, ignoreLocations); diff != "" {
				t.Errorf("ParseTree(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseTree_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`x^2^3`, "Double superscript"},
		{`x_2_3`, "Double subscript"},
		{`\nosuch`, `Undefined control sequence: \nosuch`},
		{`{x`, "Expected '}', got 'EOF'"},
		{`x}`, "Expected 'EOF', got '}'"},
		{`\frac{a}`, "Unexpected end of input in a macro argument, expected '}'"},
		{`\sqrt`, "Expected group as argument to '\\sqrt'"},
		{`\left(x`, "Expected '\\right', got 'EOF'"},
		{`\begin{matrix}a\end{pmatrix}`, "Mismatch: \\begin{matrix} matched by \\end{pmatrix}"},
		{`\begin{nosuch}\end{nosuch}`, "No such environment: nosuch"},
		{`x\limits`, "Limit controls must follow a math operator"},
		{`{\def\foo{x}}\foo`, `Undefined control sequence: \foo`},
		{`\newcommand{\frac}{x}`, `\newcommand{\frac} attempting to redefine \frac; use \renewcommand`},
		{`\renewcommand{\nosuch}{x}`, `\renewcommand{\nosuch} when command \nosuch does not yet exist; use \newcommand`},
		{`\char'9`, "Invalid base-8 digit 9"},
		{`a \over b \over c`, "only one infix operator per group"},
		{`x\tag{1}`, `\tag works only in display equations`},
		{`\color{#zzz}x`, "Invalid color: '#zzz'"},
		{`\rule{1xx}{2pt}`, "Invalid unit: 'xx'"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseTree(tt.input, nil)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tt.want, perr.RawMessage)
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := ParseTree(`\nosuch`, nil)
	require.EqualError(t, err,
		"KaTeX parse error: Undefined control sequence: \\nosuch at position 1: "+
			"\\\u0332n\u0332o\u0332s\u0332u\u0332c\u0332h\u0332")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 0, perr.Position)
	require.Equal(t, 7, perr.Length)
}

func TestParseTree_MaxExpand(t *testing.T) {
	s, err := NewSettings(WithMaxExpand(50))
	require.NoError(t, err)
	_, err = ParseTree(`\def\a{\a}\a`, s)
	require.ErrorIs(t, err, ErrTooManyExpansions)
}

func TestParseTree_GlobalDefinitions(t *testing.T) {
	macros := make(map[string]*Macro)
	s, err := NewSettings(WithMacros(macros))
	require.NoError(t, err)

	_, err = ParseTree(`\gdef\foo{x}\def\bar{y}`, s)
	require.NoError(t, err)
	require.Contains(t, macros, `\foo`)
	require.NotContains(t, macros, `\bar`)

	tree, err := ParseTree(`\foo`, s)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Equal(t, "x", tree[0].(*MathOrd).Text)
}

func TestParseTree_GlobalGroup(t *testing.T) {
	macros := make(map[string]*Macro)
	s, err := NewSettings(WithMacros(macros), WithGlobalGroup(true))
	require.NoError(t, err)

	_, err = ParseTree(`\def\bar{y}`, s)
	require.NoError(t, err)
	require.Contains(t, macros, `\bar`)
}

func TestParseTree_Tag(t *testing.T) {
	macros := make(map[string]*Macro)
	tree := mustParse(t, `x\tag{1}`, WithDisplayMode(true), WithMacros(macros))
	require.Len(t, tree, 1)
	tag, ok := tree[0].(*Tag)
	require.True(t, ok)
	require.Equal(t, []Node{mathOrd("x")}, stripLocations(tag.Body))
	require.Len(t, tag.Tag, 1)
	require.IsType(t, &Text{}, tag.Tag[0])

	// The tag does not leak into the next parse.
	tree = mustParse(t, `y`, WithDisplayMode(true), WithMacros(macros))
	require.IsType(t, &MathOrd{}, tree[0])
}

func TestParseTree_Matrix(t *testing.T) {
	tree := mustParse(t, `\begin{matrix}a&b\\c&d\end{matrix}`)
	require.Len(t, tree, 1)
	arr, ok := tree[0].(*Array)
	require.True(t, ok, "got %T", tree[0])
	require.Len(t, arr.Body, 2)
	for _, row := range arr.Body {
		require.Len(t, row, 2)
	}
	require.Len(t, arr.Cols, 2)
	require.Equal(t, "c", arr.Cols[0].Align)

	tree = mustParse(t, `\begin{pmatrix}1\\2\\\end{pmatrix}`)
	lr, ok := tree[0].(*LeftRight)
	require.True(t, ok, "got %T", tree[0])
	require.Equal(t, "(", lr.Left)
	require.Len(t, lr.Body[0].(*Array).Body, 2, "trailing empty row is removed")
}

func TestParseTree_Array(t *testing.T) {
	tree := mustParse(t, `\begin{array}{l|r}\hline a&b\\ \hline\end{array}`)
	arr, ok := tree[0].(*Array)
	require.True(t, ok, "got %T", tree[0])
	require.Equal(t, []string{"align", "separator", "align"},
		[]string{arr.Cols[0].Type, arr.Cols[1].Type, arr.Cols[2].Type})
	require.Equal(t, "|", arr.Cols[1].Separator)
	require.Len(t, arr.Body, 1)
	require.Equal(t, [][]bool{{false}, {false}}, arr.HLinesBeforeRow)
	require.True(t, arr.HSkipBeforeAndAfter)
}

func TestParseTree_Trust(t *testing.T) {
	tree := mustParse(t, `\href{https://katex.org}{x}`)
	c, ok := tree[0].(*Color)
	require.True(t, ok, "untrusted href degrades to a colored placeholder, got %T", tree[0])
	require.Equal(t, "#cc0000", c.Color)

	tree = mustParse(t, `\href{https://katex.org}{x}`, WithTrust(true))
	h, ok := tree[0].(*Href)
	require.True(t, ok, "got %T", tree[0])
	require.Equal(t, "https://katex.org", h.Href)

	tree = mustParse(t, `\url{https://katex.org/~a\%20}`, WithTrust(true))
	h, ok = tree[0].(*Href)
	require.True(t, ok, "got %T", tree[0])
	require.Equal(t, "https://katex.org/~a%20", h.Href)
}

func TestParseTree_ThrowOnErrorFalse(t *testing.T) {
	tree := mustParse(t, `\nosuch x`, WithThrowOnError(false))
	require.Len(t, tree, 2)
	c, ok := tree[0].(*Color)
	require.True(t, ok, "got %T", tree[0])
	require.Equal(t, "#cc0000", c.Color)
}

func TestParseTree_ColorIsTextColor(t *testing.T) {
	tree := mustParse(t, `\color{red}{x}y`, WithColorIsTextColor(true))
	require.Len(t, tree, 2)
	c, ok := tree[0].(*Color)
	require.True(t, ok, "got %T", tree[0])
	require.Len(t, c.Body, 1)

	tree = mustParse(t, `\color{red}{x}y`)
	require.Len(t, tree, 1)
	c, ok = tree[0].(*Color)
	require.True(t, ok, "got %T", tree[0])
	require.Len(t, c.Body, 2)
}

func TestParseTree_Sizes(t *testing.T) {
	tree := mustParse(t, `\rule{1em}{.5ex}\kern-3mu`, WithStrict(StrictIgnore))
	require.Len(t, tree, 2)
	rule := tree[0].(*Rule)
	require.Equal(t, Measurement{1, "em"}, rule.Width)
	require.Equal(t, Measurement{0.5, "ex"}, rule.Height)
	kern := tree[1].(*Kern)
	require.Equal(t, Measurement{-3, "mu"}, kern.Dimension)
}

func stripLocations(nodes []Node) []Node {
	for _, n := range nodes {
		n.base().Loc = nil
	}
	return nodes
}

func ExampleParseTree() {
	tree, err := ParseTree(`\frac{1}{2}+x^2`, nil)
	if err != nil {
		panic(err)
	}
	for _, n := range tree {
		fmt.Println(n.Type())
	}
	// Output:
	// genfrac
	// atom
	// supsub
}

func TestParseTree_IllegalParameterNumber(t *testing.T) {
	inputs := []string{
		`\def\a#1{#2}\a x`,
		`\newcommand{\a}[1]{#1#3}\a x`,
		`\gdef\a#1#2{#9}\a xy`,
	}
	for _, throwOnError := range []bool{true, false} {
		for _, input := range inputs {
			t.Run(fmt.Sprintf("%s/throwOnError=%v", input, throwOnError), func(t *testing.T) {
				_, err := ParseTree(input, mustSettings(t, WithThrowOnError(throwOnError)))
				var perr *ParseError
				require.ErrorAs(t, err, &perr)
				require.Contains(t, perr.RawMessage, `Illegal parameter number in definition of \a`)
			})
		}
	}

	tree := mustParse(t, `\def\a#1#2{#2#1}\a xy`)
	require.Len(t, tree, 2)
	require.Equal(t, "y", tree[0].(*MathOrd).Text)
}

func TestParser_GroupBalance(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: `{\def\a{x}}\a`, wantErr: true},
		{input: `{\def\a{x}\a}`},
		{input: `\begingroup\def\a{x}\endgroup`},
		{input: `\left(\def\a{x}\a\right)`},
		{input: `\frac{\def\a{x}\a}{y}`},
		{input: `\begin{matrix}\def\a{x}\a&y\end{matrix}`},
		{input: `{\def\a{x}`, wantErr: true},
		{input: `\begingroup\def\a{x}`, wantErr: true},
		{input: `\frac{\def\a{x}}`, wantErr: true},
		{input: `\begin{matrix}\def\a{x}`, wantErr: true},
		{input: `\left(\def\a{x}`, wantErr: true},
		{input: `{{\def\a{x}}\endgroup`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			macros := make(map[string]*Macro)
			p := NewParser(tt.input, mustSettings(t, WithMacros(macros)))
			_, err := p.Parse()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Zero(t, p.Gullet().GroupDepth())
			require.NotContains(t, macros, `\a`)
		})
	}
}
