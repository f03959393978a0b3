package build

import (
	"fmt"
	"math"
	"strings"

	"github.com/dpotapov/go-katex/parse"
)

// htmlAccent builds an accent over its nucleus. When ss is not nil, the
// scripts of ss are attached to the accented nucleus.
func htmlAccent(n *parse.Accent, ss *parse.SupSub, options *Options) (Node, error) {
	var supSub *Span
	if ss != nil {
		inner := *ss
		inner.Nucleus = n.Nucleus
		built, err := htmlSupSub(&inner, options)
		if err != nil {
			return nil, err
		}
		supSub, _ = built.(*Span)
	}

	body, err := buildGroup(n.Nucleus, options.HavingCrampedStyle(), nil)
	if err != nil {
		return nil, err
	}
	var skew float64
	if n.IsShifty && parse.IsCharacterBox(n.Nucleus) {
		baseGroup, err := buildGroup(parse.BaseElem(n.Nucleus), options.HavingCrampedStyle(), nil)
		if err != nil {
			return nil, err
		}
		if sym, ok := baseGroup.(*SymbolNode); ok {
			skew = sym.Skew
		}
	}

	dims := body.box()
	accentBelow := n.Label == `\c`
	clearance := math.Min(dims.Height, options.FontMetrics().XHeight)
	if accentBelow {
		clearance = dims.Height + dims.Depth
	}

	var accentBody *Span
	if !n.IsStretchy {
		var accent Node
		var width float64
		if n.Label == `\vec` {
			accent = staticSvg("vec")
			width = staticSvgData["vec"].width
		} else {
			ord, err := makeOrd(n.Label, n.Mode, options, "textord")
			if err != nil {
				return nil, err
			}
			if sym, ok := ord.(*SymbolNode); ok {
				sym.Italic = 0
				width = sym.Width
			}
			if accentBelow {
				clearance += ord.box().Depth
			}
			accent = ord
		}
		accentBody = makeSpan([]string{"accent-body"}, []Node{accent}, nil, nil)
		full := n.Label == `\textcircled`
		left := skew
		if full {
			accentBody.Classes = append(accentBody.Classes, "accent-full")
			clearance = dims.Height
			accentBody.setStyle("top", ".2em")
		} else {
			left -= width / 2
		}
		accentBody.setStyle("left", em(left))
		accentBody = MakeVList(VListParams{
			PositionType: FirstBaseline,
			Children: []VListChild{
				{Elem: body},
				kern(-clearance),
				{Elem: accentBody},
			},
		})
	} else {
		img, err := stretchySvg(n.Label, n.Nucleus, options)
		if err != nil {
			return nil, err
		}
		child := VListChild{Elem: img, WrapperClasses: []string{"svg-align"}}
		if skew > 0 {
			child.WrapperStyle = CSSStyle{
				{Name: "width", Value: fmt.Sprintf("calc(100%% - %s)", em(2*skew))},
				{Name: "margin-left", Value: em(2 * skew)},
			}
		}
		accentBody = MakeVList(VListParams{
			PositionType: FirstBaseline,
			Children:     []VListChild{{Elem: body}, child},
		})
	}

	accentWrap := makeSpan([]string{"mord", "accent"}, []Node{accentBody}, options, nil)
	if supSub == nil {
		return accentWrap, nil
	}
	supSub.Children[0] = accentWrap
	supSub.Height = math.Max(accentWrap.Height, supSub.Height)
	supSub.Classes[0] = "mord"
	return supSub, nil
}

func mathmlAccent(n *parse.Accent, options *Options) (MathMLNode, error) {
	var accent *MathNode
	if n.IsStretchy {
		accent = stretchyMathMLNode(n.Label)
	} else {
		accent = newMathNode("mo", makeText(n.Label, n.Mode, nil))
	}
	base, err := buildMathMLGroup(n.Nucleus, options)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mover", base, accent)
	node.SetAttribute("accent", "true")
	return node, nil
}

func htmlAccentUnder(n *parse.AccentUnder, options *Options) (Node, error) {
	inner, err := buildGroup(n.Nucleus, options, nil)
	if err != nil {
		return nil, err
	}
	img, err := stretchySvg(n.Label, n.Nucleus, options)
	if err != nil {
		return nil, err
	}
	var gap float64
	if n.Label == `\utilde` {
		gap = 0.12
	}
	vlist := MakeVList(VListParams{
		PositionType: Top,
		PositionData: inner.box().Height,
		Children: []VListChild{
			{Elem: img, WrapperClasses: []string{"svg-align"}},
			kern(gap),
			{Elem: inner},
		},
	})
	return makeSpan([]string{"mord", "accentunder"}, []Node{vlist}, options, nil), nil
}

func mathmlAccentUnder(n *parse.AccentUnder, options *Options) (MathMLNode, error) {
	base, err := buildMathMLGroup(n.Nucleus, options)
	if err != nil {
		return nil, err
	}
	node := newMathNode("munder", base, stretchyMathMLNode(n.Label))
	node.SetAttribute("accentunder", "true")
	return node, nil
}

// htmlHorizBrace builds \overbrace and \underbrace. When ss is not nil, its
// script is set as a label beyond the brace.
func htmlHorizBrace(n *parse.HorizBrace, ss *parse.SupSub, options *Options) (Node, error) {
	style := options.Style
	var label Node
	if ss != nil {
		var err error
		if ss.Sup != nil {
			label, err = buildGroup(ss.Sup, options.HavingStyle(style.Sup()), options)
		} else {
			label, err = buildGroup(ss.Sub, options.HavingStyle(style.Sub()), options)
		}
		if err != nil {
			return nil, err
		}
	}

	body, err := buildGroup(n.Nucleus, options.HavingBaseStyle(Display), nil)
	if err != nil {
		return nil, err
	}
	brace, err := stretchySvg(n.Label, n.Nucleus, options)
	if err != nil {
		return nil, err
	}

	class := "munder"
	if n.IsOver {
		class = "mover"
	}
	var vlist *Span
	if n.IsOver {
		vlist = MakeVList(VListParams{
			PositionType: FirstBaseline,
			Children: []VListChild{
				{Elem: body},
				kern(0.1),
				{Elem: brace, WrapperClasses: []string{"svg-align"}},
			},
		})
	} else {
		vlist = MakeVList(VListParams{
			PositionType: Bottom,
			PositionData: body.box().Depth + 0.1 + brace.Height,
			Children: []VListChild{
				{Elem: brace, WrapperClasses: []string{"svg-align"}},
				kern(0.1),
				{Elem: body},
			},
		})
	}

	if label != nil {
		vSpan := makeSpan([]string{"mord", class}, []Node{vlist}, options, nil)
		if n.IsOver {
			vlist = MakeVList(VListParams{
				PositionType: FirstBaseline,
				Children:     []VListChild{{Elem: vSpan}, kern(0.2), {Elem: label}},
			})
		} else {
			l := label.box()
			vlist = MakeVList(VListParams{
				PositionType: Bottom,
				PositionData: vSpan.Depth + 0.2 + l.Height + l.Depth,
				Children:     []VListChild{{Elem: label}, kern(0.2), {Elem: vSpan}},
			})
		}
	}
	return makeSpan([]string{"mord", class}, []Node{vlist}, options, nil), nil
}

func mathmlHorizBrace(n *parse.HorizBrace, options *Options) (MathMLNode, error) {
	base, err := buildMathMLGroup(n.Nucleus, options)
	if err != nil {
		return nil, err
	}
	typ := "munder"
	if n.IsOver {
		typ = "mover"
	}
	return newMathNode(typ, base, stretchyMathMLNode(n.Label)), nil
}

func htmlXArrow(n *parse.XArrow, options *Options) (Node, error) {
	style := options.Style
	prefix := "cd"
	if strings.HasPrefix(n.Label, `\x`) {
		prefix = "x"
	}

	built, err := buildGroup(n.Body, options.HavingStyle(style.Sup()), options)
	if err != nil {
		return nil, err
	}
	upper := wrapFragment(built, options)
	upper.box().Classes = append(upper.box().Classes, prefix+"-arrow-pad")

	var lower Node
	if n.Below != nil {
		built, err := buildGroup(n.Below, options.HavingStyle(style.Sub()), options)
		if err != nil {
			return nil, err
		}
		lower = wrapFragment(built, options)
		lower.box().Classes = append(lower.box().Classes, prefix+"-arrow-pad")
	}

	arrow, err := stretchySvg(n.Label, nil, options)
	if err != nil {
		return nil, err
	}
	axisHeight := options.FontMetrics().AxisHeight
	arrowShift := -axisHeight + 0.5*arrow.Height
	upperShift := -axisHeight - 0.5*arrow.Height - 0.111
	if upper.box().Depth > 0.25 || n.Label == `\xleftequilibrium` {
		upperShift -= upper.box().Depth
	}

	children := []VListChild{
		{Elem: upper, Shift: upperShift},
		{Elem: arrow, Shift: arrowShift, WrapperClasses: []string{"svg-align"}},
	}
	if lower != nil {
		lowerShift := -axisHeight + lower.box().Height + 0.5*arrow.Height + 0.111
		children = append(children, VListChild{Elem: lower, Shift: lowerShift})
	}
	vlist := MakeVList(VListParams{PositionType: IndividualShift, Children: children})
	return makeSpan([]string{"mrel", "x-arrow"}, []Node{vlist}, options, nil), nil
}

func paddedNode(kids ...MathMLNode) *MathNode {
	node := newMathNode("mpadded", kids...)
	node.SetAttribute("width", "+0.6em")
	node.SetAttribute("lspace", "0.3em")
	return node
}

func mathmlXArrow(n *parse.XArrow, options *Options) (MathMLNode, error) {
	arrow := stretchyMathMLNode(n.Label)
	minSize := "3.0em"
	if strings.HasPrefix(n.Label, `\x`) {
		minSize = "1.75em"
	}
	arrow.SetAttribute("minsize", minSize)

	var upper, lower *MathNode
	if n.Body != nil {
		body, err := buildMathMLGroup(n.Body, options)
		if err != nil {
			return nil, err
		}
		upper = paddedNode(body)
	}
	if n.Below != nil {
		below, err := buildMathMLGroup(n.Below, options)
		if err != nil {
			return nil, err
		}
		lower = paddedNode(below)
	}
	switch {
	case upper != nil && lower != nil:
		return newMathNode("munderover", arrow, lower, upper), nil
	case lower != nil:
		return newMathNode("munder", arrow, lower), nil
	case upper != nil:
		return newMathNode("mover", arrow, upper), nil
	}
	return newMathNode("mover", arrow, paddedNode()), nil
}
