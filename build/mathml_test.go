package build

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/dpotapov/go-katex/parse"
	"github.com/stretchr/testify/require"
)

func buildMathElement(t *testing.T, expression string, displayMode bool) *etree.Element {
	t.Helper()
	settings, err := parse.NewSettings(parse.WithDisplayMode(displayMode))
	require.NoError(t, err)
	tree, err := parse.ParseTree(expression, settings)
	require.NoError(t, err, expression)
	math, err := MathMLTree(tree, expression, NewOptions(settings), displayMode)
	require.NoError(t, err, expression)
	return math.ToElement()
}

func TestMathMLTree(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		path       string
		wantAttrs  map[string]string
		wantText   string
	}{
		{name: "fraction", expression: `\frac{a}{b}`, path: "//mfrac/mi", wantText: "a"},
		{name: "binomial", expression: `\binom{n}{k}`, path: "//mfrac", wantAttrs: map[string]string{"linethickness": "0px"}},
		{name: "subsup", expression: `x_1^2`, path: "//msubsup/mn", wantText: "1"},
		{name: "root", expression: `\sqrt[3]{x}`, path: "//mroot/mn", wantText: "3"},
		{name: "sqrt", expression: `\sqrt{x}`, path: "//msqrt/mi", wantText: "x"},
		{name: "double struck", expression: `\mathbb{R}`, path: "//mi", wantAttrs: map[string]string{"mathvariant": "double-struck"}, wantText: "R"},
		{name: "upright digit", expression: `2`, path: "//mn", wantText: "2"},
		{name: "operator", expression: `a+b`, path: "//mo", wantText: "+"},
		{name: "text", expression: `\text{hi}`, path: "//mtext", wantText: "hi"},
		{
			name:       "array lines",
			expression: `\begin{array}{c|c}a&b\end{array}`,
			path:       "//mtable",
			wantAttrs:  map[string]string{"columnalign": "center center", "columnlines": "solid"},
		},
		{name: "color", expression: `\color{red}{x}`, path: "//mstyle", wantAttrs: map[string]string{"mathcolor": "red"}},
		{name: "annotation", expression: `x`, path: "//annotation", wantAttrs: map[string]string{"encoding": "application/x-tex"}, wantText: "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			math := buildMathElement(t, tt.expression, false)
			require.Equal(t, "math", math.Tag)
			require.Equal(t, "http://www.w3.org/1998/Math/MathML", math.SelectAttrValue("xmlns", ""))

			el := math.FindElement(tt.path)
			require.NotNil(t, el, "no element at %s", tt.path)
			for key, want := range tt.wantAttrs {
				require.Equal(t, want, el.SelectAttrValue(key, ""), key)
			}
			if tt.wantText != "" {
				require.Equal(t, tt.wantText, el.Text())
			}
		})
	}
}

func TestMathMLTree_Display(t *testing.T) {
	inline := buildMathElement(t, "x", false)
	require.Nil(t, inline.SelectAttr("display"))

	display := buildMathElement(t, "x", true)
	require.Equal(t, "block", display.SelectAttrValue("display", ""))
}

func TestMathMLTree_Tags(t *testing.T) {
	math := buildMathElement(t, `\begin{equation}x\end{equation}`, true)
	rows := math.FindElements("//mtable/mtr")
	require.Len(t, rows, 1)
	// The body sits between two glue cells, followed by the equation number.
	cells := rows[0].SelectElements("mtd")
	require.Len(t, cells, 4)
	require.Equal(t, "mtr-glue", cells[0].SelectAttrValue("class", ""))
	require.Equal(t, "mtr-glue", cells[2].SelectAttrValue("class", ""))
	require.Equal(t, "mml-eqn-num", cells[3].SelectAttrValue("class", ""))
}
