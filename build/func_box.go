package build

import (
	"github.com/dpotapov/go-katex/parse"
)

func htmlLap(n *parse.Lap, options *Options) (Node, error) {
	body, err := buildGroup(n.Body, options, nil)
	if err != nil {
		return nil, err
	}
	var inner *Span
	if n.Alignment == "clap" {
		inner = makeSpan([]string{"inner"}, []Node{makeSpan(nil, []Node{body}, nil, nil)}, options, nil)
	} else {
		inner = makeSpan([]string{"inner"}, []Node{body}, nil, nil)
	}
	fix := makeSpan([]string{"fix"}, nil, nil, nil)
	node := makeSpan([]string{n.Alignment}, []Node{inner, fix}, options, nil)

	strut := makeSpan([]string{"strut"}, nil, nil, nil)
	strut.setStyle("height", em(node.Height+node.Depth))
	if node.Depth != 0 {
		strut.setStyle("vertical-align", em(-node.Depth))
	}
	node.Children = append([]Node{strut}, node.Children...)

	thinbox := makeSpan([]string{"thinbox"}, []Node{node}, options, nil)
	return makeSpan([]string{"mord", "vbox"}, []Node{thinbox}, options, nil), nil
}

func mathmlLap(n *parse.Lap, options *Options) (MathMLNode, error) {
	body, err := buildMathMLGroup(n.Body, options)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mpadded", body)
	switch n.Alignment {
	case "llap":
		node.SetAttribute("lspace", "-1width")
	case "clap":
		node.SetAttribute("lspace", "-0.5width")
	}
	node.SetAttribute("width", "0px")
	return node, nil
}

func htmlRaiseBox(n *parse.RaiseBox, options *Options) (Node, error) {
	body, err := buildGroup(n.Body, options, nil)
	if err != nil {
		return nil, err
	}
	dy, err := CalculateSize(n.Dy, options)
	if err != nil {
		return nil, err
	}
	return MakeVList(VListParams{
		PositionType: Shift,
		PositionData: -dy,
		Children:     []VListChild{{Elem: body}},
	}), nil
}

func mathmlRaiseBox(n *parse.RaiseBox, options *Options) (MathMLNode, error) {
	body, err := buildMathMLGroup(n.Body, options)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mpadded", body)
	node.SetAttribute("voffset", ftoa(n.Dy.Number)+n.Dy.Unit)
	return node, nil
}

type ruleSize struct{ width, height, shift float64 }

func measureRule(n *parse.Rule, options *Options) ruleSize {
	r := ruleSize{
		width:  calcSize(n.Width, options),
		height: calcSize(n.Height, options),
	}
	if n.Shift != nil {
		r.shift = calcSize(*n.Shift, options)
	}
	return r
}

func htmlRule(n *parse.Rule, options *Options) Node {
	size := measureRule(n, options)
	rule := makeSpan([]string{"mord", "rule"}, nil, options, nil)
	rule.setStyle("border-right-width", em(size.width))
	rule.setStyle("border-top-width", em(size.height))
	rule.setStyle("bottom", em(size.shift))
	rule.Width = &size.width
	rule.Height = size.height + size.shift
	rule.Depth = -size.shift
	rule.MaxFontSize = size.height * 1.125 * options.SizeMultiplier
	return rule
}

func mathmlRule(n *parse.Rule, options *Options) MathMLNode {
	size := measureRule(n, options)
	color := options.GetColor()
	if color == "" {
		color = "black"
	}
	rule := newMathNode("mspace")
	rule.SetAttribute("mathbackground", color)
	rule.SetAttribute("width", em(size.width))
	rule.SetAttribute("height", em(size.height))

	wrapper := newMathNode("mpadded", rule)
	wrapper.SetAttribute("height", em(size.shift))
	if size.shift < 0 {
		wrapper.SetAttribute("depth", em(-size.shift))
	}
	wrapper.SetAttribute("voffset", em(size.shift))
	return wrapper
}

func htmlPhantom(n *parse.Phantom, options *Options) (Node, error) {
	elements, err := buildExpression(n.Body, options.WithPhantom(), partialGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeFragment(elements), nil
}

func mathmlPhantom(n *parse.Phantom, options *Options) (MathMLNode, error) {
	inner, err := buildMathMLExpression(n.Body, options, false)
	if err != nil {
		return nil, err
	}
	return newMathNode("mphantom", inner...), nil
}

// collapse zeroes the height and, when depth is set, the depth of a span
// and its direct children, then wraps it in a vlist.
func collapse(node *Span, height, depth bool, options *Options) Node {
	if height {
		node.Height = 0
	}
	if depth {
		node.Depth = 0
	}
	for _, child := range node.Children {
		if height {
			child.box().Height = 0
		}
		if depth {
			child.box().Depth = 0
		}
	}
	vlist := MakeVList(VListParams{PositionType: FirstBaseline, Children: []VListChild{{Elem: node}}})
	return makeSpan([]string{"mord"}, []Node{vlist}, options, nil)
}

func htmlHPhantom(n *parse.HPhantom, options *Options) (Node, error) {
	body, err := buildGroup(n.Body, options.WithPhantom(), nil)
	if err != nil {
		return nil, err
	}
	return collapse(makeSpan(nil, []Node{body}, nil, nil), true, true, options), nil
}

func mathmlHPhantom(n *parse.HPhantom, options *Options) (MathMLNode, error) {
	inner, err := buildMathMLExpression(parse.OrdArgument(n.Body), options, false)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mpadded", newMathNode("mphantom", inner...))
	node.SetAttribute("height", "0px")
	node.SetAttribute("depth", "0px")
	return node, nil
}

func htmlVPhantom(n *parse.VPhantom, options *Options) (Node, error) {
	body, err := buildGroup(n.Body, options.WithPhantom(), nil)
	if err != nil {
		return nil, err
	}
	inner := makeSpan([]string{"inner"}, []Node{body}, nil, nil)
	fix := makeSpan([]string{"fix"}, nil, nil, nil)
	return makeSpan([]string{"mord", "rlap"}, []Node{inner, fix}, options, nil), nil
}

func mathmlVPhantom(n *parse.VPhantom, options *Options) (MathMLNode, error) {
	inner, err := buildMathMLExpression(parse.OrdArgument(n.Body), options, false)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mpadded", newMathNode("mphantom", inner...))
	node.SetAttribute("width", "0px")
	return node, nil
}

func htmlSmash(n *parse.Smash, options *Options) (Node, error) {
	body, err := buildGroup(n.Body, options, nil)
	if err != nil {
		return nil, err
	}
	node := makeSpan(nil, []Node{body}, nil, nil)
	if !n.SmashHeight && !n.SmashDepth {
		return node, nil
	}
	return collapse(node, n.SmashHeight, n.SmashDepth, options), nil
}

func mathmlSmash(n *parse.Smash, options *Options) (MathMLNode, error) {
	body, err := buildMathMLGroup(n.Body, options)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mpadded", body)
	if n.SmashHeight {
		node.SetAttribute("height", "0px")
	}
	if n.SmashDepth {
		node.SetAttribute("depth", "0px")
	}
	return node, nil
}

func htmlMClass(n *parse.MClass, options *Options) (Node, error) {
	elements, err := buildExpression(n.Body, options, realGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeSpan([]string{n.MClass}, elements, options, nil), nil
}

// mclassSpacing holds the MathML operator spacing of each atom class.
var mclassSpacing = map[string][][2]string{
	"mbin":   {{"lspace", "0.22em"}, {"rspace", "0.22em"}},
	"mpunct": {{"lspace", "0em"}, {"rspace", "0.17em"}},
	"mopen":  {{"lspace", "0em"}, {"rspace", "0em"}},
	"mclose": {{"lspace", "0em"}, {"rspace", "0em"}},
	"minner": {{"lspace", "0.0556em"}, {"width", "+0.1111em"}},
}

func mathmlMClass(n *parse.MClass, options *Options) (MathMLNode, error) {
	inner, err := buildMathMLExpression(n.Body, options, false)
	if err != nil {
		return nil, err
	}
	if n.MClass == "minner" {
		return newMathNode("mpadded", inner...), nil
	}

	typ := "mo"
	if n.MClass == "mord" {
		typ = "mi"
	}
	var node *MathNode
	if first, ok := firstMathNode(inner); ok && n.IsCharacterBox {
		node = first
		node.Type = typ
	} else {
		node = newMathNode(typ, inner...)
	}
	if typ == "mo" {
		for _, attr := range mclassSpacing[n.MClass] {
			node.SetAttribute(attr[0], attr[1])
		}
	}
	return node, nil
}

func firstMathNode(nodes []MathMLNode) (*MathNode, bool) {
	if len(nodes) == 0 {
		return nil, false
	}
	node, ok := nodes[0].(*MathNode)
	return node, ok
}

func htmlOverline(n *parse.Overline, options *Options) (Node, error) {
	inner, err := buildGroup(n.Body, options.HavingCrampedStyle(), nil)
	if err != nil {
		return nil, err
	}
	line := makeLineSpan("overline-line", options, 0)
	rule := options.FontMetrics().DefaultRuleThickness
	vlist := MakeVList(VListParams{
		PositionType: FirstBaseline,
		Children: []VListChild{
			{Elem: inner},
			kern(3 * rule),
			{Elem: line},
			kern(rule),
		},
	})
	return makeSpan([]string{"mord", "overline"}, []Node{vlist}, options, nil), nil
}

func lineOperator() *MathNode {
	op := newMathNode("mo", &TextNode{Text: "‾"})
	op.SetAttribute("stretchy", "true")
	return op
}

func mathmlOverline(n *parse.Overline, options *Options) (MathMLNode, error) {
	body, err := buildMathMLGroup(n.Body, options)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mover", body, lineOperator())
	node.SetAttribute("accent", "true")
	return node, nil
}

func htmlUnderline(n *parse.Underline, options *Options) (Node, error) {
	inner, err := buildGroup(n.Body, options, nil)
	if err != nil {
		return nil, err
	}
	line := makeLineSpan("underline-line", options, 0)
	rule := options.FontMetrics().DefaultRuleThickness
	vlist := MakeVList(VListParams{
		PositionType: Top,
		PositionData: inner.box().Height,
		Children: []VListChild{
			kern(rule),
			{Elem: line},
			kern(3 * rule),
			{Elem: inner},
		},
	})
	return makeSpan([]string{"mord", "underline"}, []Node{vlist}, options, nil), nil
}

func mathmlUnderline(n *parse.Underline, options *Options) (MathMLNode, error) {
	body, err := buildMathMLGroup(n.Body, options)
	if err != nil {
		return nil, err
	}
	node := newMathNode("munder", body, lineOperator())
	node.SetAttribute("accentunder", "true")
	return node, nil
}

func htmlVCenter(n *parse.VCenter, options *Options) (Node, error) {
	body, err := buildGroup(n.Body, options, nil)
	if err != nil {
		return nil, err
	}
	axisHeight := options.FontMetrics().AxisHeight
	b := body.box()
	dy := 0.5 * ((b.Height - axisHeight) - (b.Depth + axisHeight))
	return MakeVList(VListParams{
		PositionType: Shift,
		PositionData: dy,
		Children:     []VListChild{{Elem: body}},
	}), nil
}

func mathmlVCenter(n *parse.VCenter, options *Options) (MathMLNode, error) {
	body, err := buildMathMLGroup(n.Body, options)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mpadded", body)
	node.Classes = []string{"vcenter"}
	return node, nil
}
