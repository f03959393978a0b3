package build

import (
	"slices"
	"strings"

	"github.com/dpotapov/go-katex/parse"
)

func htmlHref(n *parse.Href, options *Options) (Node, error) {
	elements, err := buildExpression(n.Body, options, partialGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeAnchor(n.Href, nil, elements, options), nil
}

func mathmlHref(n *parse.Href, options *Options) (MathMLNode, error) {
	row, err := buildMathMLRow(n.Body, options, false)
	if err != nil {
		return nil, err
	}
	node, ok := row.(*MathNode)
	if !ok {
		node = newMathNode("mrow", row)
	}
	node.SetAttribute("href", n.Href)
	return node, nil
}

// htmlHTML builds \htmlClass, \htmlId, \htmlStyle and \htmlData. The span
// is transparent to spacing.
func htmlHTML(n *parse.HTML, options *Options) (Node, error) {
	elements, err := buildExpression(n.Body, options, partialGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	classes := []string{"enclosing"}
	if class := n.Attributes["class"]; class != "" {
		classes = append(classes, strings.Fields(class)...)
	}
	span := makeSpan(classes, elements, options, nil)
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		if k != "class" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		span.SetAttribute(k, n.Attributes[k])
	}
	return span, nil
}

func htmlHTMLMathML(n *parse.HTMLMathML, options *Options) (Node, error) {
	elements, err := buildExpression(n.HTML, options, partialGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeFragment(elements), nil
}

type graphicSize struct{ width, height, depth float64 }

func measureGraphic(n *parse.IncludeGraphics, options *Options) graphicSize {
	g := graphicSize{height: calcSize(n.Height, options)}
	if n.TotalHeight.Number > 0 {
		g.depth = calcSize(n.TotalHeight, options) - g.height
	}
	if n.Width.Number > 0 {
		g.width = calcSize(n.Width, options)
	}
	return g
}

func htmlIncludeGraphics(n *parse.IncludeGraphics, options *Options) Node {
	size := measureGraphic(n, options)
	img := &Img{Src: n.Src, Alt: n.Alt}
	img.setStyle("height", em(size.height+size.depth))
	if size.width > 0 {
		img.setStyle("width", em(size.width))
	}
	if size.depth > 0 {
		img.setStyle("vertical-align", em(-size.depth))
	}
	img.Height = size.height
	img.Depth = size.depth
	return img
}

func mathmlIncludeGraphics(n *parse.IncludeGraphics, options *Options) MathMLNode {
	size := measureGraphic(n, options)
	node := newMathNode("mglyph")
	node.SetAttribute("alt", n.Alt)
	if n.TotalHeight.Number > 0 {
		node.SetAttribute("valign", em(-size.depth))
	}
	node.SetAttribute("height", em(size.height+size.depth))
	if size.width > 0 {
		node.SetAttribute("width", em(size.width))
	}
	node.SetAttribute("src", n.Src)
	return node
}

// verbText returns the text of a \verb, with spaces made visible by the
// starred form.
func verbText(n *parse.Verb) string {
	if n.Star {
		return strings.ReplaceAll(n.Body, " ", "␣")
	}
	return strings.ReplaceAll(n.Body, " ", "\u00a0")
}

func htmlVerb(n *parse.Verb, options *Options) Node {
	newOptions := options.HavingStyle(options.Style.Text())
	var body []Node
	for _, r := range verbText(n) {
		c := string(r)
		if c == "~" {
			c = `\textasciitilde`
		}
		body = append(body, makeSymbol(c, "Typewriter-Regular", n.Mode, newOptions, []string{"mord", "texttt"}))
	}
	classes := append([]string{"mord", "text"}, newOptions.SizingClasses(options)...)
	return makeSpan(classes, tryCombineChars(body), newOptions, nil)
}

func mathmlVerb(n *parse.Verb, _ *Options) MathMLNode {
	node := newMathNode("mtext", &TextNode{Text: verbText(n)})
	node.SetAttribute("mathvariant", "monospace")
	return node
}

// htmlPmb fakes a bold face by overprinting with a text shadow.
func htmlPmb(n *parse.Pmb, options *Options) (Node, error) {
	elements, err := buildExpression(n.Body, options, realGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	node := makeSpan([]string{n.MClass}, elements, options, nil)
	node.setStyle("text-shadow", "0.02em 0.01em 0.04px")
	return node, nil
}

func mathmlPmb(n *parse.Pmb, options *Options) (MathMLNode, error) {
	inner, err := buildMathMLExpression(n.Body, options, false)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mstyle", inner...)
	node.SetAttribute("style", "text-shadow: 0.02em 0.01em 0.04px")
	return node, nil
}

// chooseMathStyle returns the \mathchoice branch for the current style.
func chooseMathStyle(n *parse.MathChoice, options *Options) []parse.Node {
	switch options.Style.Size() {
	case Display.Size():
		return n.Display
	case Script.Size():
		return n.Script
	case ScriptScript.Size():
		return n.ScriptScript
	}
	return n.Text
}

func htmlMathChoice(n *parse.MathChoice, options *Options) (Node, error) {
	elements, err := buildExpression(chooseMathStyle(n, options), options, partialGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeFragment(elements), nil
}

func htmlCr(n *parse.Cr, options *Options) Node {
	span := makeSpan([]string{"mspace"}, nil, options, nil)
	if n.NewLine {
		span.Classes = append(span.Classes, "newline")
		if n.Size != nil {
			span.setStyle("margin-top", em(calcSize(*n.Size, options)))
		}
	}
	return span
}

func mathmlCr(n *parse.Cr, options *Options) MathMLNode {
	node := newMathNode("mspace")
	if n.NewLine {
		node.SetAttribute("linebreak", "newline")
		if n.Size != nil {
			node.SetAttribute("height", em(calcSize(*n.Size, options)))
		}
	}
	return node
}

func tagPad() *MathNode {
	pad := newMathNode("mtd")
	pad.SetAttribute("width", "50%")
	return pad
}

// mathmlTag lays out a tagged equation as a one-row table with the tag in
// the last column.
func mathmlTag(n *parse.Tag, options *Options) (MathMLNode, error) {
	body, err := buildMathMLRow(n.Body, options, false)
	if err != nil {
		return nil, err
	}
	tag, err := buildMathMLRow(n.Tag, options, false)
	if err != nil {
		return nil, err
	}
	row := newMathNode("mtr", tagPad(), newMathNode("mtd", body), tagPad(), newMathNode("mtd", tag))
	table := newMathNode("mtable", row)
	table.SetAttribute("width", "100%")
	return table, nil
}
