package build

import (
	"github.com/dpotapov/go-katex/parse"
)

func displayWrap(node *Span, settings *parse.Settings) *Span {
	if !settings.DisplayMode {
		return node
	}
	classes := []string{"katex-display"}
	if settings.Leqno {
		classes = append(classes, "leqno")
	}
	if settings.Fleqn {
		classes = append(classes, "fleqn")
	}
	return makeSpan(classes, []Node{node}, nil, nil)
}

// BuildTree builds the complete output of a render: a "katex" span holding
// the MathML and/or HTML trees selected by settings.Output, wrapped in a
// "katex-display" span in display mode.
func BuildTree(tree []parse.Node, expression string, settings *parse.Settings) (*Span, error) {
	options := NewOptions(settings)
	switch settings.Output {
	case parse.OutputMathML:
		return BuildMathML(tree, expression, options, settings.DisplayMode, true)
	case parse.OutputHTML:
		htmlNode, err := BuildHTML(tree, options)
		if err != nil {
			return nil, err
		}
		return displayWrap(makeSpan([]string{"katex"}, []Node{htmlNode}, nil, nil), settings), nil
	}
	mathMLNode, err := BuildMathML(tree, expression, options, settings.DisplayMode, false)
	if err != nil {
		return nil, err
	}
	htmlNode, err := BuildHTML(tree, options)
	if err != nil {
		return nil, err
	}
	return displayWrap(makeSpan([]string{"katex"}, []Node{mathMLNode, htmlNode}, nil, nil), settings), nil
}

// BuildHTMLTree is like BuildTree but produces only the HTML tree.
func BuildHTMLTree(tree []parse.Node, settings *parse.Settings) (*Span, error) {
	htmlNode, err := BuildHTML(tree, NewOptions(settings))
	if err != nil {
		return nil, err
	}
	return displayWrap(makeSpan([]string{"katex"}, []Node{htmlNode}, nil, nil), settings), nil
}

// ErrorNode is the placeholder rendered in place of an expression that
// failed to parse: the source text in errorColor, with the error message
// as its title.
func ErrorNode(expression string, err error, errorColor string) *Span {
	node := makeSpan([]string{"katex-error"}, []Node{&SymbolNode{Text: expression}}, nil, nil)
	node.SetAttribute("title", err.Error())
	node.setStyle("color", errorColor)
	return node
}
