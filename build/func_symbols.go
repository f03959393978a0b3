package build

import (
	"regexp"

	"github.com/dpotapov/go-katex/parse"
)

// regularSpace maps space symbols to the class of their box.
var regularSpace = map[string]string{
	" ":              "",
	`\ `:            "",
	"~":              "nobreak",
	`\space`:        "",
	`\nobreakspace`: "nobreak",
}

// cssSpace maps spacing commands that only affect line breaking to their
// class.
var cssSpace = map[string]string{
	`\nobreak`:    "nobreak",
	`\allowbreak`: "allowbreak",
}

var defaultVariant = map[string]string{"mi": "italic", "mn": "normal", "mtext": "normal"}

var digitRegexp = regexp.MustCompile(`[0-9]`)

func htmlSpacing(n *parse.Spacing, options *Options) (Node, error) {
	if class, ok := regularSpace[n.Text]; ok {
		if n.Mode == parse.TextMode {
			ord, err := makeOrd(n.Text, n.Mode, options, "textord")
			if err != nil {
				return nil, err
			}
			ord.box().Classes = append(ord.box().Classes, class)
			return ord, nil
		}
		return makeSpan([]string{"mspace", class}, []Node{mathsym(n.Text, n.Mode, options, nil)}, options, nil), nil
	}
	if class, ok := cssSpace[n.Text]; ok {
		return makeSpan([]string{"mspace", class}, nil, options, nil), nil
	}
	return nil, parse.Errorf(n, "Unknown type of space \"%s\"", n.Text)
}

func mathmlSpacing(n *parse.Spacing, _ *Options) (MathMLNode, error) {
	if _, ok := regularSpace[n.Text]; ok {
		return newMathNode("mtext", &TextNode{Text: "\u00a0"}), nil
	}
	if _, ok := cssSpace[n.Text]; ok {
		return newMathNode("mspace"), nil
	}
	return nil, parse.Errorf(n, "Unknown type of space \"%s\"", n.Text)
}

func setVariant(node *MathNode, variant string) {
	if variant != defaultVariant[node.Type] {
		node.SetAttribute("mathvariant", variant)
	}
}

func mathmlMathOrd(n *parse.MathOrd, options *Options) *MathNode {
	node := newMathNode("mi", makeText(n.Text, n.Mode, options))
	variant := mathVariant("mathord", n.Text, n.Mode, options)
	if variant == "" {
		variant = "italic"
	}
	setVariant(node, variant)
	return node
}

func mathmlTextOrd(n *parse.TextOrd, options *Options) *MathNode {
	text := makeText(n.Text, n.Mode, options)
	variant := mathVariant("textord", n.Text, n.Mode, options)
	if variant == "" {
		variant = "normal"
	}
	var node *MathNode
	switch {
	case n.Mode == parse.TextMode:
		node = newMathNode("mtext", text)
	case digitRegexp.MatchString(n.Text):
		node = newMathNode("mn", text)
	case n.Text == `\prime`:
		node = newMathNode("mo", text)
	default:
		node = newMathNode("mi", text)
	}
	setVariant(node, variant)
	return node
}

func mathmlAtom(n *parse.Atom, options *Options) *MathNode {
	node := newMathNode("mo", makeText(n.Text, n.Mode, nil))
	switch n.Family {
	case parse.FamilyBin:
		if v := mathVariant("atom", n.Text, n.Mode, options); v == "bold-italic" {
			node.SetAttribute("mathvariant", v)
		}
	case parse.FamilyPunct:
		node.SetAttribute("separator", "true")
	case parse.FamilyOpen, parse.FamilyClose:
		node.SetAttribute("stretchy", "false")
	}
	return node
}
