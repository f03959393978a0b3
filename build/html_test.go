package build

import (
	"strings"
	"testing"

	"github.com/dpotapov/go-katex/parse"
	"github.com/go-shiori/dom"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// buildDoc builds the HTML output of expression and parses it back.
func buildDoc(t *testing.T, expression string, opts ...parse.Option) *html.Node {
	t.Helper()
	settings, err := parse.NewSettings(opts...)
	require.NoError(t, err)
	tree, err := parse.ParseTree(expression, settings)
	require.NoError(t, err, expression)
	node, err := BuildHTMLTree(tree, settings)
	require.NoError(t, err, expression)

	var sb strings.Builder
	require.NoError(t, html.Render(&sb, node.ToNode()))
	doc, err := dom.FastParse(strings.NewReader(sb.String()))
	require.NoError(t, err)
	return doc
}

func styleAttrs(nodes []*html.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = dom.GetAttribute(n, "style")
	}
	return out
}

func TestBuildHTML(t *testing.T) {
	display := parse.WithDisplayMode(true)

	tests := []struct {
		name       string
		expression string
		opts       []parse.Option
		wantCount  map[string]int
		wantStyles map[string][]string
	}{
		{
			name:       "binary spacing",
			expression: "a+b",
			wantCount:  map[string]int{"base": 2, "mspace": 2, "mbin": 1},
			wantStyles: map[string][]string{"mspace": {"margin-right:0.2222em;", "margin-right:0.2222em;"}},
		},
		{
			name:       "relation spacing",
			expression: "a=b",
			wantCount:  map[string]int{"base": 2, "mrel": 1},
			wantStyles: map[string][]string{"mspace": {"margin-right:0.2778em;", "margin-right:0.2778em;"}},
		},
		{
			name:       "no binary spacing in scripts",
			expression: "a^{b+c}",
			wantCount:  map[string]int{"mspace": 0, "msupsub": 1, "base": 1},
		},
		{
			name:       "unary minus",
			expression: "-a",
			wantCount:  map[string]int{"mspace": 0, "mbin": 0, "mord": 2},
		},
		{
			name:       "newline",
			expression: `a\\b`,
			wantCount:  map[string]int{"newline": 1, "base": 2},
		},
		{
			name:       "fraction",
			expression: `\frac12`,
			opts:       []parse.Option{display},
			wantCount:  map[string]int{"mfrac": 1, "frac-line": 1, "nulldelimiter": 2},
		},
		{
			name:       "binomial",
			expression: `\binom{n}{k}`,
			wantCount:  map[string]int{"mfrac": 1, "frac-line": 0, "mopen": 1, "mclose": 1},
		},
		// The fraction adds a null delimiter on each side.
		{
			name:       "left right",
			expression: `\left(\frac{a}{b}\right)`,
			wantCount:  map[string]int{"minner": 1, "mopen": 2, "mclose": 2, "nulldelimiter": 2},
		},
		{
			name:       "array",
			expression: `\begin{array}{c|c}a&b\\c&d\end{array}`,
			wantCount:  map[string]int{"mtable": 1, "vertical-separator": 1, "col-align-c": 2, "arraycolsep": 4},
		},
		{
			name:       "tag",
			expression: `\tag{1}x`,
			opts:       []parse.Option{display},
			wantCount:  map[string]int{"tag": 1},
		},
		{
			name:       "equation",
			expression: `\begin{equation}x\end{equation}`,
			opts:       []parse.Option{display},
			wantCount:  map[string]int{"eqn-num": 1},
		},
		{
			name:       "color",
			expression: `\color{red}x`,
			wantCount:  map[string]int{"mathnormal": 1},
			wantStyles: map[string][]string{"mathnormal": {"color:red;"}},
		},
		{
			name:       "sizing",
			expression: `\large x`,
			wantCount:  map[string]int{"reset-size6": 1, "size7": 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := buildDoc(t, tt.expression, tt.opts...)
			for class, want := range tt.wantCount {
				require.Len(t, dom.GetElementsByClassName(doc, class), want, class)
			}
			for class, want := range tt.wantStyles {
				require.Equal(t, want, styleAttrs(dom.GetElementsByClassName(doc, class)), class)
			}
		})
	}
}

func TestBuildHTML_Phantom(t *testing.T) {
	doc := buildDoc(t, `\phantom{x}y`)
	letters := dom.GetElementsByClassName(doc, "mathnormal")
	require.Len(t, letters, 2)
	require.Equal(t, "color:transparent;", dom.GetAttribute(letters[0], "style"))
	// y keeps only its italic correction.
	require.Equal(t, "margin-right:0.0359em;", dom.GetAttribute(letters[1], "style"))
}

func TestBuildHTML_Sqrt(t *testing.T) {
	doc := buildDoc(t, `\sqrt[3]{x}`)
	roots := dom.GetElementsByClassName(doc, "sqrt")
	require.Len(t, roots, 1)
	require.Len(t, dom.GetElementsByClassName(roots[0], "root"), 1)
	svgs := dom.GetElementsByTagName(roots[0], "svg")
	require.Len(t, svgs, 1)
	require.NotEmpty(t, dom.GetAttribute(svgs[0], "viewBox"))
	require.Len(t, dom.GetElementsByTagName(svgs[0], "path"), 1)
}

func TestBuildHTML_Dimensions(t *testing.T) {
	settings, err := parse.NewSettings()
	require.NoError(t, err)

	layout := func(expression string) *Box {
		tree, err := parse.ParseTree(expression, settings)
		require.NoError(t, err)
		node, err := BuildHTML(tree, NewOptions(settings))
		require.NoError(t, err)
		return Dims(node)
	}

	x := layout("x")
	require.InDelta(t, 0.43056, x.Height, 1e-5)
	require.InDelta(t, 0, x.Depth, 1e-9)

	y := layout("y")
	require.InDelta(t, 0.19444, y.Depth, 1e-5)

	sup := layout("x^2")
	require.Greater(t, sup.Height, x.Height)

	sub := layout("x_2")
	require.Greater(t, sub.Depth, x.Depth)

	frac := layout(`\frac{a}{b}`)
	require.Greater(t, frac.Height, x.Height)
	require.Greater(t, frac.Depth, 0.0)
}
