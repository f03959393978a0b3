package build

import (
	"testing"

	"github.com/go-shiori/dom"
	"github.com/stretchr/testify/require"
)

func TestCSSStyle(t *testing.T) {
	var b Box
	b.setStyle("top", "1em")
	b.setStyle("height", "2em")
	b.setStyle("color", "")
	b.setStyle("top", "3em")
	require.Equal(t, "top:3em;height:2em;", b.Style.String())
	require.Equal(t, "2em", b.Style.Get("height"))
	require.Empty(t, b.Style.Get("width"))

	other := CSSStyle{{Name: "height", Value: "2em"}, {Name: "top", Value: "3em"}}
	require.True(t, b.Style.Equal(other))
	require.True(t, other.Equal(b.Style))
	require.False(t, b.Style.Equal(other[:1]))
	require.False(t, b.Style.Equal(CSSStyle{{Name: "height", Value: "2em"}, {Name: "top", Value: "1em"}}))
}

func TestCSSStyle_Order(t *testing.T) {
	tests := []struct {
		expression string
		class      string
		want       string
	}{
		{`\color{red}y`, "mathnormal", "margin-right:0.0359em;color:red;"},
		{`\textcolor{blue}{f}`, "mathnormal", "margin-right:0.1076em;color:blue;"},
	}
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			doc := buildDoc(t, tt.expression)
			nodes := dom.GetElementsByClassName(doc, tt.class)
			require.Len(t, nodes, 1)
			require.Equal(t, tt.want, dom.GetAttribute(nodes[0], "style"))
		})
	}
}
