package build

import (
	"math"
	"slices"
	"strings"

	"github.com/dpotapov/go-katex/parse"
)

// Operators drawn at the same size in every style.
var noSuccessor = []string{`\smallint`}

func isNoSuccessor(name string) bool {
	return slices.Contains(noSuccessor, name)
}

// htmlOp builds a big operator or a named function. When ss is not nil, the
// operator draws the scripts of ss as limits.
func htmlOp(n *parse.Op, ss *parse.SupSub, options *Options) (Node, error) {
	style := options.Style
	large := style.Size() == Display.Size() && n.Symbol && !isNoSuccessor(n.Name)

	var base Node
	isOiint := n.Name == `\oiint` || n.Name == `\oiiint`
	switch {
	case n.Symbol:
		font := "Size1-Regular"
		if large {
			font = "Size2-Regular"
		}
		size := "small-op"
		if large {
			size = "large-op"
		}
		name := n.Name
		if isOiint {
			name = strings.Replace(name, `\oi`, `\i`, 1)
		}
		sym := makeSymbol(name, font, parse.MathMode, options, []string{"mop", "op-symbol", size})
		base = sym
		if isOiint {
			ovalName := n.Name[1:] + "Size1"
			shift := 0.0
			if large {
				ovalName = n.Name[1:] + "Size2"
				shift = 0.08
			}
			vlist := MakeVList(VListParams{
				PositionType: IndividualShift,
				Children: []VListChild{
					{Elem: sym},
					{Elem: staticSvg(ovalName), Shift: shift},
				},
			})
			vlist.Classes = append([]string{"mop"}, vlist.Classes...)
			vlist.Italic = sym.Italic
			base = vlist
		}
	case n.Body != nil || n.Name == "":
		inner, err := buildExpression(n.Body, options, realGroup, [2]string{})
		if err != nil {
			return nil, err
		}
		base = makeSpan([]string{"mop"}, inner, options, nil)
		if len(inner) == 1 {
			if sym, ok := inner[0].(*SymbolNode); ok {
				sym.Classes[0] = "mop"
				base = sym
			}
		}
	default:
		var output []Node
		for _, r := range n.Name[1:] {
			output = append(output, mathsym(string(r), n.Mode, options, nil))
		}
		base = makeSpan([]string{"mop"}, output, options, nil)
	}

	var baseShift, slant float64
	if !n.SuppressBaseShift {
		switch b := base.(type) {
		case *SymbolNode:
			baseShift = (b.Height-b.Depth)/2 - options.FontMetrics().AxisHeight
			slant = b.Italic
		case *Span:
			if isOiint {
				baseShift = (b.Height-b.Depth)/2 - options.FontMetrics().AxisHeight
				slant = b.Italic
			}
		}
	}

	if ss != nil {
		return assembleSupSub(base, ss.Sup, ss.Sub, options, style, slant, baseShift)
	}
	if baseShift != 0 {
		base.box().setStyle("position", "relative")
		base.box().setStyle("top", em(baseShift))
	}
	return base, nil
}

// assembleSupSub stacks the limits of an operator above and below it.
func assembleSupSub(base Node, supGroup, subGroup parse.Node, options *Options, style *Style, slant, baseShift float64) (Node, error) {
	wrapped := makeSpan(nil, []Node{base}, nil, nil)
	metrics := options.FontMetrics()
	subIsSingleCharacter := subGroup != nil && parse.IsCharacterBox(subGroup)

	type limit struct {
		elem Node
		kern float64
	}
	var sup, sub *limit
	if supGroup != nil {
		elem, err := buildGroup(supGroup, options.HavingStyle(style.Sup()), options)
		if err != nil {
			return nil, err
		}
		sup = &limit{elem, math.Max(metrics.BigOpSpacing1, metrics.BigOpSpacing3-elem.box().Depth)}
	}
	if subGroup != nil {
		elem, err := buildGroup(subGroup, options.HavingStyle(style.Sub()), options)
		if err != nil {
			return nil, err
		}
		sub = &limit{elem, math.Max(metrics.BigOpSpacing2, metrics.BigOpSpacing4-elem.box().Height)}
	}

	var final *Span
	switch {
	case sup != nil && sub != nil:
		s := sub.elem.box()
		bottom := metrics.BigOpSpacing5 + s.Height + s.Depth + sub.kern + wrapped.Depth + baseShift
		final = MakeVList(VListParams{
			PositionType: Bottom,
			PositionData: bottom,
			Children: []VListChild{
				kern(metrics.BigOpSpacing5),
				{Elem: sub.elem, MarginLeft: em(-slant)},
				kern(sub.kern),
				{Elem: wrapped},
				kern(sup.kern),
				{Elem: sup.elem, MarginLeft: em(slant)},
				kern(metrics.BigOpSpacing5),
			},
		})
	case sub != nil:
		final = MakeVList(VListParams{
			PositionType: Top,
			PositionData: wrapped.Height - baseShift,
			Children: []VListChild{
				kern(metrics.BigOpSpacing5),
				{Elem: sub.elem, MarginLeft: em(-slant)},
				kern(sub.kern),
				{Elem: wrapped},
			},
		})
	case sup != nil:
		final = MakeVList(VListParams{
			PositionType: Bottom,
			PositionData: wrapped.Depth + baseShift,
			Children: []VListChild{
				{Elem: wrapped},
				kern(sup.kern),
				{Elem: sup.elem, MarginLeft: em(slant)},
				kern(metrics.BigOpSpacing5),
			},
		})
	default:
		return wrapped, nil
	}

	parts := []Node{final}
	if sub != nil && slant != 0 && !subIsSingleCharacter {
		spacer := makeSpan([]string{"mspace"}, nil, options, nil)
		spacer.setStyle("margin-right", em(slant))
		parts = []Node{spacer, final}
	}
	return makeSpan([]string{"mop", "op-limits"}, parts, options, nil), nil
}

func mathmlOp(n *parse.Op, options *Options) (MathMLNode, error) {
	return mathmlOpNode(n, options, n.ParentIsSupSub)
}

func mathmlOpNode(n *parse.Op, options *Options, parentIsSupSub bool) (MathMLNode, error) {
	switch {
	case n.Symbol:
		node := newMathNode("mo", makeText(n.Name, n.Mode, nil))
		if isNoSuccessor(n.Name) {
			node.SetAttribute("largeop", "false")
		}
		return node, nil
	case n.Body != nil || n.Name == "":
		body, err := buildMathMLExpression(n.Body, options, false)
		if err != nil {
			return nil, err
		}
		return newMathNode("mo", body...), nil
	}
	node := newMathNode("mi", &TextNode{Text: n.Name[1:]})
	operator := newMathNode("mo", makeText("\u2061", parse.TextMode, nil))
	if parentIsSupSub {
		return newMathNode("mrow", node, operator), nil
	}
	return &MathFragment{Children: []MathMLNode{node, operator}}, nil
}

var operatorNameReplacer = strings.NewReplacer("\u2212", "-", "\u2217", "*")

// operatorNameBody turns the symbols of an operator name into upright
// ordinary characters.
func operatorNameBody(body []parse.Node) []parse.Node {
	out := make([]parse.Node, len(body))
	for i, child := range body {
		if text, ok := parse.SymbolText(child); ok {
			out[i] = &parse.TextOrd{Base: parse.Base{Mode: parse.ModeOf(child), Loc: child.Location()}, Text: text}
		} else {
			out[i] = child
		}
	}
	return out
}

func htmlOperatorName(n *parse.OperatorName, ss *parse.SupSub, options *Options) (Node, error) {
	var base *Span
	if len(n.Body) > 0 {
		expression, err := buildExpression(operatorNameBody(n.Body), options.WithFont("mathrm"), realGroup, [2]string{})
		if err != nil {
			return nil, err
		}
		for _, child := range expression {
			if sym, ok := child.(*SymbolNode); ok {
				sym.Text = operatorNameReplacer.Replace(sym.Text)
			}
		}
		base = makeSpan([]string{"mop"}, expression, options, nil)
	} else {
		base = makeSpan([]string{"mop"}, nil, options, nil)
	}
	if ss != nil {
		return assembleSupSub(base, ss.Sup, ss.Sub, options, options.Style, 0, 0)
	}
	return base, nil
}

func mathmlOperatorName(n *parse.OperatorName, options *Options) (MathMLNode, error) {
	return mathmlOperatorNameNode(n, options, n.ParentIsSupSub)
}

func mathmlOperatorNameNode(n *parse.OperatorName, options *Options, parentIsSupSub bool) (MathMLNode, error) {
	expression, err := buildMathMLExpression(n.Body, options.WithFont("mathrm"), false)
	if err != nil {
		return nil, err
	}
	allString := true
	for _, node := range expression {
		switch node := node.(type) {
		case *SpaceNode:
		case *MathNode:
			switch node.Type {
			case "mi", "mn", "ms", "mspace", "mtext":
			case "mo":
				if len(node.Children) != 1 {
					allString = false
				} else if t, ok := node.Children[0].(*TextNode); ok {
					t.Text = operatorNameReplacer.Replace(t.Text)
				} else {
					allString = false
				}
			default:
				allString = false
			}
		default:
			allString = false
		}
	}
	if allString {
		var sb strings.Builder
		for _, node := range expression {
			sb.WriteString(node.ToText())
		}
		expression = []MathMLNode{&TextNode{Text: sb.String()}}
	}
	identifier := newMathNode("mi", expression...)
	identifier.SetAttribute("mathvariant", "normal")
	operator := newMathNode("mo", makeText("\u2061", parse.TextMode, nil))
	if parentIsSupSub {
		return newMathNode("mrow", identifier, operator), nil
	}
	return &MathFragment{Children: []MathMLNode{identifier, operator}}, nil
}
