package katex

import (
	"errors"
	"strings"
	"testing"

	"github.com/dpotapov/go-katex/build"
	"github.com/dpotapov/go-katex/parse"
	"github.com/go-shiori/dom"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var ignoreLocations = cmpopts.IgnoreTypes((*parse.SourceLocation)(nil))

func mustSettings(t *testing.T, opts ...parse.Option) *parse.Settings {
	t.Helper()
	s, err := parse.NewSettings(opts...)
	require.NoError(t, err)
	return s
}

// renderDoc renders expression and parses the markup back into a tree.
func renderDoc(t *testing.T, expression string, settings *parse.Settings) *html.Node {
	t.Helper()
	out, err := RenderToString(expression, settings)
	require.NoError(t, err, expression)
	doc, err := dom.FastParse(strings.NewReader(out))
	require.NoError(t, err)
	return doc
}

func TestRender_Superscript(t *testing.T) {
	tree, err := ParseTree("x^2", nil)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	supsub, ok := tree[0].(*parse.SupSub)
	require.True(t, ok, "got %T", tree[0])
	require.Equal(t, "x", supsub.Nucleus.(*parse.MathOrd).Text)
	require.Equal(t, "2", supsub.Sup.(*parse.TextOrd).Text)

	doc := renderDoc(t, "x^2", nil)
	require.Len(t, dom.GetElementsByTagName(doc, "msup"), 1)

	node, err := RenderToHTMLTree("x^2", nil)
	require.NoError(t, err)
	dims := build.Dims(node)
	// Taller than a lone x because the 2 is raised.
	require.Greater(t, dims.Height, 0.5)
	require.GreaterOrEqual(t, dims.Depth, 0.0)
}

func TestRender_Fraction(t *testing.T) {
	tree, err := ParseTree(`\frac{1}{2}`, nil)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	frac, ok := tree[0].(*parse.GenFrac)
	require.True(t, ok, "got %T", tree[0])
	require.True(t, frac.HasBarLine)
	require.Len(t, frac.Numer.(*parse.OrdGroup).Body, 1)
	require.Len(t, frac.Denom.(*parse.OrdGroup).Body, 1)

	doc := renderDoc(t, `\frac{1}{2}`, mustSettings(t, parse.WithOutput(parse.OutputHTML)))
	require.Len(t, dom.GetElementsByClassName(doc, "frac-line"), 1)
	require.Len(t, dom.GetElementsByClassName(doc, "mfrac"), 1)
}

func TestRender_Sqrt(t *testing.T) {
	tree, err := ParseTree(`\sqrt{x}`, nil)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	sqrt, ok := tree[0].(*parse.Sqrt)
	require.True(t, ok, "got %T", tree[0])
	require.Nil(t, sqrt.Index)

	doc := renderDoc(t, `\sqrt{x}`, mustSettings(t, parse.WithOutput(parse.OutputHTML)))
	roots := dom.GetElementsByClassName(doc, "sqrt")
	require.Len(t, roots, 1)
	require.NotEmpty(t, dom.GetElementsByTagName(roots[0], "svg"))
	require.NotEmpty(t, dom.GetElementsByClassName(roots[0], "mathnormal"))
}

func TestRender_Matrix(t *testing.T) {
	const expr = `\begin{matrix}a&b\\c&d\end{matrix}`
	tree, err := ParseTree(expr, nil)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	array, ok := tree[0].(*parse.Array)
	require.True(t, ok, "got %T", tree[0])
	require.Len(t, array.Body, 2)
	for _, row := range array.Body {
		require.Len(t, row, 2)
	}

	settings := mustSettings(t, parse.WithOutput(parse.OutputHTML))
	doc := renderDoc(t, expr, settings)
	require.Len(t, dom.GetElementsByClassName(doc, "mtable"), 1)
	require.Empty(t, dom.GetElementsByClassName(doc, "mopen"))
	require.Empty(t, dom.GetElementsByClassName(doc, "mclose"))

	doc = renderDoc(t, `\begin{pmatrix}a&b\\c&d\end{pmatrix}`, settings)
	require.Len(t, dom.GetElementsByClassName(doc, "mopen"), 1)
	require.Len(t, dom.GetElementsByClassName(doc, "mclose"), 1)
}

func TestRender_MacroTransparency(t *testing.T) {
	got, err := ParseTree(`\newcommand{\foo}{bar}\foo`, nil)
	require.NoError(t, err)
	want, err := ParseTree("bar", nil)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, ignoreLocations); diff != "" {
		t.Errorf("ParseTree() mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_UnsupportedCommand(t *testing.T) {
	settings := mustSettings(t, parse.WithThrowOnError(false))
	node, err := RenderToHTMLTree(`\unknowncmd`, settings)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, html.Render(&sb, node.ToNode()))
	doc, err := dom.FastParse(strings.NewReader(sb.String()))
	require.NoError(t, err)

	texts := dom.GetElementsByClassName(doc, "text")
	require.Len(t, texts, 1)
	require.Contains(t, dom.GetAttribute(texts[0], "style"), "color:#cc0000")
	require.Equal(t, `\unknowncmd`, dom.TextContent(texts[0]))

	_, err = RenderToString(`\unknowncmd`, nil)
	require.ErrorContains(t, err, `Undefined control sequence: \unknowncmd`)
}

func TestRender_Errors(t *testing.T) {
	for _, throwOnError := range []bool{true, false} {
		_, err := ParseTree("a^b^c", mustSettings(t, parse.WithThrowOnError(throwOnError)))
		var pe *parse.ParseError
		require.True(t, errors.As(err, &pe), "throwOnError=%v: %v", throwOnError, err)
		require.Contains(t, pe.Error(), "Double superscript")
	}

	_, err := RenderToString("a^b^c", nil)
	require.ErrorContains(t, err, "Double superscript")

	doc := renderDoc(t, "a^b^c", mustSettings(t, parse.WithThrowOnError(false), parse.WithErrorColor("#f00")))
	errs := dom.GetElementsByClassName(doc, "katex-error")
	require.Len(t, errs, 1)
	require.Equal(t, "a^b^c", dom.TextContent(errs[0]))
	require.Contains(t, dom.GetAttribute(errs[0], "title"), "Double superscript")
	require.Equal(t, "color:#f00;", dom.GetAttribute(errs[0], "style"))
}

func TestRender_OutputFormats(t *testing.T) {
	tests := []struct {
		name       string
		output     parse.OutputFormat
		display    bool
		wantTags   []string
		wantClass  []string
		wantNoTags []string
	}{
		{
			name:      "html and mathml",
			output:    parse.OutputHTMLAndMathML,
			wantTags:  []string{"math", "semantics", "annotation"},
			wantClass: []string{"katex", "katex-mathml", "katex-html"},
		},
		{
			name:       "html",
			output:     parse.OutputHTML,
			wantClass:  []string{"katex", "katex-html"},
			wantNoTags: []string{"math"},
		},
		{
			name:      "mathml",
			output:    parse.OutputMathML,
			wantTags:  []string{"math"},
			wantClass: []string{"katex"},
		},
		{
			name:      "display",
			output:    parse.OutputHTMLAndMathML,
			display:   true,
			wantClass: []string{"katex-display", "katex"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := mustSettings(t, parse.WithOutput(tt.output), parse.WithDisplayMode(tt.display))
			doc := renderDoc(t, `a+b`, settings)
			for _, tag := range tt.wantTags {
				require.NotEmpty(t, dom.GetElementsByTagName(doc, tag), tag)
			}
			for _, tag := range tt.wantNoTags {
				require.Empty(t, dom.GetElementsByTagName(doc, tag), tag)
			}
			for _, class := range tt.wantClass {
				require.NotEmpty(t, dom.GetElementsByClassName(doc, class), class)
			}
		})
	}
}

func TestRenderToMathML(t *testing.T) {
	out, err := RenderToMathML(`x^2`, mustSettings(t, parse.WithDisplayMode(true)))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, `<math display="block" xmlns="http://www.w3.org/1998/Math/MathML">`), out)
	require.Contains(t, out, "<msup>")
	require.Contains(t, out, `<annotation encoding="application/x-tex">x^2</annotation>`)

	_, err = RenderToMathML(`x`, mustSettings(t, parse.WithOutput(parse.OutputHTML)))
	require.ErrorIs(t, err, ErrUnsupportedOutput)

	_, err = RenderToMathML(`\frac{`, nil)
	var pe *parse.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestRender_TrustGating(t *testing.T) {
	tests := []struct {
		name     string
		settings *parse.Settings
		wantHref bool
	}{
		{"untrusted", mustSettings(t, parse.WithThrowOnError(false)), false},
		{"trusted", mustSettings(t, parse.WithTrust(true)), true},
		{"expression", mustSettings(t, parse.WithTrustExpr(`protocol == "https"`)), true},
		{"expression rejects", mustSettings(t, parse.WithThrowOnError(false), parse.WithTrustExpr(`protocol == "http"`)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := renderDoc(t, `\href{https://katex.org}{x}`, tt.settings)
			anchors := dom.GetElementsByTagName(doc, "a")
			if !tt.wantHref {
				require.Empty(t, anchors)
				require.NotContains(t, dom.OuterHTML(doc), `href="https://katex.org"`)
				return
			}
			require.Len(t, anchors, 1)
			require.Equal(t, "https://katex.org", dom.GetAttribute(anchors[0], "href"))
		})
	}

	doc := renderDoc(t, `\href{javascript:alert(1)}{x}`, mustSettings(t, parse.WithThrowOnError(false)))
	require.Empty(t, dom.GetElementsByTagName(doc, "a"))
	require.NotContains(t, dom.OuterHTML(doc), `href="javascript`)
}

func TestRender_EmptyOperatorBase(t *testing.T) {
	tests := []struct {
		expression string
		wantMClass string
	}{
		{`\overset a\relax`, "mord"},
		{`\underset a\relax`, "mord"},
		{`\stackrel{a}\relax`, "mrel"},
		{`\overset a{}`, "mord"},
		{`\mathop{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			doc := renderDoc(t, tt.expression, nil)
			require.NotEmpty(t, dom.GetElementsByClassName(doc, "mop"))
			require.Empty(t, dom.GetElementsByClassName(doc, "katex-error"))
			if tt.wantMClass != "" {
				require.NotEmpty(t, dom.GetElementsByClassName(doc, tt.wantMClass))
			}
			require.NotEmpty(t, dom.GetElementsByTagName(doc, "mo"))
		})
	}
}
