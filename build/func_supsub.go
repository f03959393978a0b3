package build

import (
	"math"

	"github.com/dpotapov/go-katex/parse"
)

func htmlOrdGroup(n *parse.OrdGroup, options *Options) (Node, error) {
	if n.Semisimple {
		body, err := buildExpression(n.Body, options, partialGroup, [2]string{})
		if err != nil {
			return nil, err
		}
		return makeFragment(body), nil
	}
	body, err := buildExpression(n.Body, options, realGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	return makeSpan([]string{"mord"}, body, options, nil), nil
}

// opHandlesLimits reports whether an operator base draws its scripts as
// limits above and below.
func opHandlesLimits(base parse.Node, options *Options) bool {
	switch b := base.(type) {
	case *parse.Op:
		return b.Limits && (options.Style.Size() == Display.Size() || b.AlwaysHandleSupSub)
	case *parse.OperatorName:
		return b.AlwaysHandleSupSub && (options.Style.Size() == Display.Size() || b.Limits)
	}
	return false
}

func htmlSupSub(n *parse.SupSub, options *Options) (Node, error) {
	switch b := n.Nucleus.(type) {
	case *parse.Op:
		if opHandlesLimits(b, options) {
			return htmlOp(b, n, options)
		}
	case *parse.OperatorName:
		if opHandlesLimits(b, options) {
			return htmlOperatorName(b, n, options)
		}
	case *parse.Accent:
		if parse.IsCharacterBox(b.Nucleus) {
			return htmlAccent(b, n, options)
		}
	case *parse.HorizBrace:
		if (n.Sub == nil) == b.IsOver {
			return htmlHorizBrace(b, n, options)
		}
	}

	base, err := buildGroup(n.Nucleus, options, nil)
	if err != nil {
		return nil, err
	}
	metrics := options.FontMetrics()
	isCharacterBox := n.Nucleus != nil && parse.IsCharacterBox(n.Nucleus)
	baseDims := base.box()

	var supm, subm Node
	var supShift, subShift float64
	if n.Sup != nil {
		newOptions := options.HavingStyle(options.Style.Sup())
		if supm, err = buildGroup(n.Sup, newOptions, options); err != nil {
			return nil, err
		}
		if !isCharacterBox {
			supShift = baseDims.Height - newOptions.FontMetrics().SupDrop*newOptions.SizeMultiplier/options.SizeMultiplier
		}
	}
	if n.Sub != nil {
		newOptions := options.HavingStyle(options.Style.Sub())
		if subm, err = buildGroup(n.Sub, newOptions, options); err != nil {
			return nil, err
		}
		if !isCharacterBox {
			subShift = baseDims.Depth + newOptions.FontMetrics().SubDrop*newOptions.SizeMultiplier/options.SizeMultiplier
		}
	}

	var minSupShift float64
	switch {
	case options.Style == Display:
		minSupShift = metrics.Sup1
	case options.Style.Cramped():
		minSupShift = metrics.Sup3
	default:
		minSupShift = metrics.Sup2
	}

	marginRight := em((0.5 / metrics.PtPerEm) / options.SizeMultiplier)

	var marginLeft string
	if subm != nil {
		op, isOp := n.Nucleus.(*parse.Op)
		isOiint := isOp && (op.Name == `\oiint` || op.Name == `\oiiint`)
		if sym, ok := base.(*SymbolNode); ok {
			marginLeft = em(-sym.Italic)
		} else if span, ok := base.(*Span); ok && isOiint {
			marginLeft = em(-span.Italic)
		}
	}

	var supsub *Span
	switch {
	case supm != nil && subm != nil:
		sup, sub := supm.box(), subm.box()
		supShift = math.Max(supShift, math.Max(minSupShift, sup.Depth+0.25*metrics.XHeight))
		subShift = math.Max(subShift, metrics.Sub2)
		maxWidth := 4 * metrics.DefaultRuleThickness
		if (supShift-sup.Depth)-(sub.Height-subShift) < maxWidth {
			subShift = maxWidth - (supShift - sup.Depth) + sub.Height
			psi := 0.8*metrics.XHeight - (supShift - sup.Depth)
			if psi > 0 {
				supShift += psi
				subShift -= psi
			}
		}
		supsub = MakeVList(VListParams{
			PositionType: IndividualShift,
			Children: []VListChild{
				{Elem: subm, Shift: subShift, MarginRight: marginRight, MarginLeft: marginLeft},
				{Elem: supm, Shift: -supShift, MarginRight: marginRight},
			},
		})
	case subm != nil:
		subShift = math.Max(subShift, math.Max(metrics.Sub1, subm.box().Height-0.8*metrics.XHeight))
		supsub = MakeVList(VListParams{
			PositionType: Shift,
			PositionData: subShift,
			Children:     []VListChild{{Elem: subm, MarginLeft: marginLeft, MarginRight: marginRight}},
		})
	case supm != nil:
		supShift = math.Max(supShift, math.Max(minSupShift, supm.box().Depth+0.25*metrics.XHeight))
		supsub = MakeVList(VListParams{
			PositionType: Shift,
			PositionData: -supShift,
			Children:     []VListChild{{Elem: supm, MarginRight: marginRight}},
		})
	default:
		return nil, parse.NewParseError("supsub must have either sup or sub.", n)
	}

	mclass := domType(base, "right")
	if mclass == "" {
		mclass = "mord"
	}
	return makeSpan([]string{mclass}, []Node{base, makeSpan([]string{"msupsub"}, []Node{supsub}, nil, nil)}, options, nil), nil
}

func mathmlSupSub(n *parse.SupSub, options *Options) (MathMLNode, error) {
	isBrace, isOver := false, false
	if b, ok := n.Nucleus.(*parse.HorizBrace); ok && (n.Sup != nil) == b.IsOver {
		isBrace, isOver = true, b.IsOver
	}

	var base MathMLNode
	var err error
	switch b := n.Nucleus.(type) {
	case *parse.Op:
		base, err = mathmlOpNode(b, options, true)
	case *parse.OperatorName:
		base, err = mathmlOperatorNameNode(b, options, true)
	default:
		base, err = buildMathMLGroup(n.Nucleus, options)
	}
	if err != nil {
		return nil, err
	}
	kids := []MathMLNode{base}
	if n.Sub != nil {
		sub, err := buildMathMLGroup(n.Sub, options)
		if err != nil {
			return nil, err
		}
		kids = append(kids, sub)
	}
	if n.Sup != nil {
		sup, err := buildMathMLGroup(n.Sup, options)
		if err != nil {
			return nil, err
		}
		kids = append(kids, sup)
	}

	limits := opHandlesLimits(n.Nucleus, options)
	var typ string
	switch {
	case isBrace && isOver:
		typ = "mover"
	case isBrace:
		typ = "munder"
	case n.Sub == nil && limits:
		typ = "mover"
	case n.Sub == nil:
		typ = "msup"
	case n.Sup == nil && limits:
		typ = "munder"
	case n.Sup == nil:
		typ = "msub"
	case limits:
		typ = "munderover"
	default:
		typ = "msubsup"
	}
	return newMathNode(typ, kids...), nil
}
