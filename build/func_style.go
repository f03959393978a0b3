package build

import (
	"fmt"
	"slices"

	"github.com/dpotapov/go-katex/parse"
)

func htmlColor(n *parse.Color, options *Options) (Node, error) {
	elements, err := buildExpression(n.Body, options.WithColor(n.Color), partialGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeFragment(elements), nil
}

func mathmlColor(n *parse.Color, options *Options) (MathMLNode, error) {
	inner, err := buildMathMLExpression(n.Body, options.WithColor(n.Color), false)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mstyle", inner...)
	node.SetAttribute("mathcolor", n.Color)
	return node, nil
}

// sizingGroup builds body at the size of options and rescales it to the
// size of baseOptions.
func sizingGroup(body []parse.Node, options, baseOptions *Options) (Node, error) {
	inner, err := buildExpression(body, options, partialGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	multiplier := options.SizeMultiplier / baseOptions.SizeMultiplier
	for _, child := range inner {
		b := child.box()
		pos := slices.Index(b.Classes, "sizing")
		switch {
		case pos < 0:
			b.Classes = append(b.Classes, options.SizingClasses(baseOptions)...)
		case pos+1 < len(b.Classes) && b.Classes[pos+1] == fmt.Sprintf("reset-size%d", options.Size):
			b.Classes[pos+1] = fmt.Sprintf("reset-size%d", baseOptions.Size)
		}
		b.Height *= multiplier
		b.Depth *= multiplier
	}
	return makeFragment(inner), nil
}

func htmlStyling(n *parse.Styling, options *Options) (Node, error) {
	newOptions := options.HavingStyle(StyleByName(n.Style)).WithFont("")
	return sizingGroup(n.Body, newOptions, options)
}

// scriptLevels maps style names to their MathML scriptlevel and
// displaystyle attributes.
var scriptLevels = map[string][2]string{
	"display":      {"0", "true"},
	"text":         {"0", "false"},
	"script":       {"1", "false"},
	"scriptscript": {"2", "false"},
}

func mathmlStyling(n *parse.Styling, options *Options) (MathMLNode, error) {
	inner, err := buildMathMLExpression(n.Body, options.HavingStyle(StyleByName(n.Style)), false)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mstyle", inner...)
	attr := scriptLevels[n.Style]
	node.SetAttribute("scriptlevel", attr[0])
	node.SetAttribute("displaystyle", attr[1])
	return node, nil
}

func htmlSizing(n *parse.Sizing, options *Options) (Node, error) {
	return sizingGroup(n.Body, options.HavingSize(n.Size), options)
}

func mathmlSizing(n *parse.Sizing, options *Options) (MathMLNode, error) {
	newOptions := options.HavingSize(n.Size)
	inner, err := buildMathMLExpression(n.Body, newOptions, false)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mstyle", inner...)
	node.SetAttribute("mathsize", em(newOptions.SizeMultiplier))
	return node, nil
}

func fontOptions(n *parse.Font, options *Options) *Options {
	return options.WithFont(n.Font)
}

var (
	textFontFamilies = map[string]string{
		`\textrm`:     "textrm",
		`\textsf`:     "textsf",
		`\texttt`:     "texttt",
		`\textnormal`: "textrm",
	}
	textFontWeights = map[string]string{`\textbf`: "textbf", `\textmd`: "textmd"}
	textFontShapes  = map[string]string{`\textit`: "textit", `\textup`: "textup"}
)

// textOptions applies the font command of a \text group.
func textOptions(n *parse.Text, options *Options) *Options {
	if family, ok := textFontFamilies[n.Font]; ok {
		return options.WithTextFontFamily(family)
	}
	if weight, ok := textFontWeights[n.Font]; ok {
		return options.WithTextFontWeight(weight)
	}
	if shape, ok := textFontShapes[n.Font]; ok {
		return options.WithTextFontShape(shape)
	}
	if n.Font == `\emph` {
		if options.FontShape == "textit" {
			return options.WithTextFontShape("textup")
		}
		return options.WithTextFontShape("textit")
	}
	return options
}

func htmlText(n *parse.Text, options *Options) (Node, error) {
	newOptions := textOptions(n, options)
	inner, err := buildExpression(n.Body, newOptions, realGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeSpan([]string{"mord", "text"}, inner, newOptions, nil), nil
}

func mathmlText(n *parse.Text, options *Options) (MathMLNode, error) {
	return buildMathMLRow(n.Body, textOptions(n, options), false)
}

func htmlHBox(n *parse.HBox, options *Options) (Node, error) {
	elements, err := buildExpression(n.Body, options, partialGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeFragment(elements), nil
}

func mathmlHBox(n *parse.HBox, options *Options) (MathMLNode, error) {
	inner, err := buildMathMLExpression(n.Body, options, false)
	if err != nil {
		return nil, err
	}
	return newMathNode("mrow", inner...), nil
}
