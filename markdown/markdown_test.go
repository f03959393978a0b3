package markdown

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dpotapov/go-katex/parse"
	"github.com/go-shiori/dom"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
)

func convert(t *testing.T, ext *Extension, source string) *html.Node {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(ext))
	var buf bytes.Buffer
	require.NoError(t, md.Convert([]byte(source), &buf))
	doc, err := dom.FastParse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return doc
}

// annotations returns the TeX sources of the rendered expressions.
func annotations(doc *html.Node) []string {
	var out []string
	for _, n := range dom.GetElementsByTagName(doc, "annotation") {
		out = append(out, dom.TextContent(n))
	}
	return out
}

func TestExtension(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		wantTeX     []string
		wantDisplay int
		wantText    string
	}{
		{
			name:     "inline dollar",
			source:   `Euler: $e^{i\pi}+1=0$ holds.`,
			wantTeX:  []string{`e^{i\pi}+1=0`},
			wantText: "holds.",
		},
		{
			name:    "inline paren",
			source:  `Let \(x_1\) be given.`,
			wantTeX: []string{`x_1`},
		},
		{
			name:        "inline display",
			source:      `so $$\sum_i i$$ and \[y\] in text`,
			wantTeX:     []string{`\sum_i i`, `y`},
			wantDisplay: 2,
		},
		{
			name:        "block",
			source:      "Before\n\n$$\n\\frac{a}{b}\n+ c\n$$\n\nAfter",
			wantTeX:     []string{"\\frac{a}{b}\n+ c"},
			wantDisplay: 1,
			wantText:    "After",
		},
		{
			name:        "single line block",
			source:      `\[\int_0^1 x\,dx\]`,
			wantTeX:     []string{`\int_0^1 x\,dx`},
			wantDisplay: 1,
		},
		{
			name:        "block at end of input",
			source:      "$$\nx\n$$",
			wantTeX:     []string{"x"},
			wantDisplay: 1,
		},
		{
			name:     "prices",
			source:   `It costs $5 and $6 today.`,
			wantText: "It costs $5 and $6 today.",
		},
		{
			name:     "spaces inside dollars",
			source:   `a $ b $ c`,
			wantText: "a $ b $ c",
		},
		{
			name:     "escaped dollar",
			source:   `$a\$b$ is math`,
			wantTeX:  []string{`a\$b`},
			wantText: "is math",
		},
		{
			name:     "code span",
			source:   "`$x$`",
			wantText: "$x$",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := convert(t, Math, tt.source)
			require.Equal(t, tt.wantTeX, annotations(doc))
			require.Len(t, dom.GetElementsByClassName(doc, "katex-display"), tt.wantDisplay)
			if tt.wantText != "" {
				require.Contains(t, dom.TextContent(doc), tt.wantText)
			}
		})
	}
}

func TestExtension_Errors(t *testing.T) {
	doc := convert(t, Math, `Broken: $\frac{a}$`)
	errs := dom.GetElementsByClassName(doc, "katex-error")
	require.Len(t, errs, 1)
	require.Equal(t, `\frac{a}`, dom.TextContent(errs[0]))
	require.Contains(t, dom.GetAttribute(errs[0], "title"), "KaTeX parse error")

	// With throwOnError the source is kept as an escaped code span.
	doc = convert(t, New(parse.WithThrowOnError(true)), `Broken: $a<b^$`)
	errs = dom.GetElementsByClassName(doc, "katex-error")
	require.Len(t, errs, 1)
	require.Equal(t, "code", errs[0].Data)
	require.Equal(t, `a<b^`, dom.TextContent(errs[0]))
}

func TestExtension_Options(t *testing.T) {
	doc := convert(t, New(parse.WithMacro(`\RR`, `\mathbb{R}`), parse.WithOutput(parse.OutputMathML)), `$x\in\RR$`)
	require.Empty(t, dom.GetElementsByClassName(doc, "katex-html"))

	mi := dom.GetElementsByTagName(doc, "mi")
	require.Len(t, mi, 2)
	require.Equal(t, "double-struck", dom.GetAttribute(mi[1], "mathvariant"))
}
