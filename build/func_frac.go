package build

import (
	"math"
	"strings"

	"github.com/dpotapov/go-katex/parse"
)

// fracStyle returns the style a fraction of the given size is set in.
func fracStyle(size string, style *Style) *Style {
	switch {
	case size == "display":
		if style.ID() >= Script.ID() {
			return style.Text()
		}
		return Display
	case size == "text" && style.Size() == Display.Size():
		return Text
	case size == "script":
		return Script
	case size == "scriptscript":
		return ScriptScript
	}
	return style
}

func htmlGenFrac(n *parse.GenFrac, options *Options) (Node, error) {
	style := fracStyle(n.Size, options.Style)
	metrics := options.FontMetrics()

	numerm, err := buildGroup(n.Numer, options.HavingStyle(style.FracNum()), options)
	if err != nil {
		return nil, err
	}
	if n.Continued {
		hStrut := 8.5 / metrics.PtPerEm
		dStrut := 3.5 / metrics.PtPerEm
		numerm.box().Height = math.Max(numerm.box().Height, hStrut)
		numerm.box().Depth = math.Max(numerm.box().Depth, dStrut)
	}
	denomm, err := buildGroup(n.Denom, options.HavingStyle(style.FracDen()), options)
	if err != nil {
		return nil, err
	}
	numer, denom := numerm.box(), denomm.box()

	var rule *Span
	var ruleWidth, ruleSpacing float64
	if n.HasBarLine {
		var thickness float64
		if n.BarSize != nil {
			if thickness, err = CalculateSize(*n.BarSize, options); err != nil {
				return nil, err
			}
		}
		rule = makeLineSpan("frac-line", options, thickness)
		ruleWidth, ruleSpacing = rule.Height, rule.Height
	} else {
		ruleSpacing = metrics.DefaultRuleThickness
	}

	var numShift, clearance, denomShift float64
	switch {
	case style.Size() == Display.Size() || n.Size == "display":
		numShift, denomShift = metrics.Num1, metrics.Denom1
		if ruleWidth > 0 {
			clearance = 3 * ruleSpacing
		} else {
			clearance = 7 * ruleSpacing
		}
	case ruleWidth > 0:
		numShift, clearance, denomShift = metrics.Num2, ruleSpacing, metrics.Denom2
	default:
		numShift, clearance, denomShift = metrics.Num3, 3*ruleSpacing, metrics.Denom2
	}

	var frac *Span
	if rule == nil {
		candidate := (numShift - numer.Depth) - (denom.Height - denomShift)
		if candidate < clearance {
			numShift += 0.5 * (clearance - candidate)
			denomShift += 0.5 * (clearance - candidate)
		}
		frac = MakeVList(VListParams{
			PositionType: IndividualShift,
			Children: []VListChild{
				{Elem: denomm, Shift: denomShift},
				{Elem: numerm, Shift: -numShift},
			},
		})
	} else {
		axisHeight := metrics.AxisHeight
		if gap := (numShift - numer.Depth) - (axisHeight + 0.5*ruleWidth); gap < clearance {
			numShift += clearance - gap
		}
		if gap := (axisHeight - 0.5*ruleWidth) - (denom.Height - denomShift); gap < clearance {
			denomShift += clearance - gap
		}
		frac = MakeVList(VListParams{
			PositionType: IndividualShift,
			Children: []VListChild{
				{Elem: denomm, Shift: denomShift},
				{Elem: rule, Shift: -(axisHeight - 0.5*ruleWidth)},
				{Elem: numerm, Shift: -numShift},
			},
		})
	}

	newOptions := options.HavingStyle(style)
	frac.Height *= newOptions.SizeMultiplier / options.SizeMultiplier
	frac.Depth *= newOptions.SizeMultiplier / options.SizeMultiplier

	var delimSize float64
	switch style.Size() {
	case Display.Size():
		delimSize = metrics.Delim1
	case ScriptScript.Size():
		delimSize = options.HavingStyle(Script).FontMetrics().Delim2
	default:
		delimSize = metrics.Delim2
	}

	var leftDelim, rightDelim Node
	if n.LeftDelim == "" {
		leftDelim = makeNullDelimiter(options, []string{"mopen"})
	} else if leftDelim, err = makeCustomSizedDelim(n.LeftDelim, delimSize, true, options.HavingStyle(style), n.Mode, []string{"mopen"}); err != nil {
		return nil, err
	}
	switch {
	case n.Continued:
		rightDelim = makeSpan(nil, nil, nil, nil)
	case n.RightDelim == "":
		rightDelim = makeNullDelimiter(options, []string{"mclose"})
	default:
		if rightDelim, err = makeCustomSizedDelim(n.RightDelim, delimSize, true, options.HavingStyle(style), n.Mode, []string{"mclose"}); err != nil {
			return nil, err
		}
	}

	classes := append([]string{"mord"}, newOptions.SizingClasses(options)...)
	return makeSpan(classes, []Node{leftDelim, makeSpan([]string{"mfrac"}, []Node{frac}, nil, nil), rightDelim}, options, nil), nil
}

func fenceNode(delim string) *MathNode {
	op := newMathNode("mo", &TextNode{Text: strings.Replace(delim, `\`, "", 1)})
	op.SetAttribute("fence", "true")
	return op
}

func mathmlGenFrac(n *parse.GenFrac, options *Options) (MathMLNode, error) {
	numer, err := buildMathMLGroup(n.Numer, options)
	if err != nil {
		return nil, err
	}
	denom, err := buildMathMLGroup(n.Denom, options)
	if err != nil {
		return nil, err
	}
	node := newMathNode("mfrac", numer, denom)
	if !n.HasBarLine {
		node.SetAttribute("linethickness", "0px")
	} else if n.BarSize != nil {
		ruleWidth, err := CalculateSize(*n.BarSize, options)
		if err != nil {
			return nil, err
		}
		node.SetAttribute("linethickness", em(ruleWidth))
	}

	style := fracStyle(n.Size, options.Style)
	if style.Size() != options.Style.Size() {
		node = newMathNode("mstyle", node)
		if style.Size() == Display.Size() {
			node.SetAttribute("displaystyle", "true")
		} else {
			node.SetAttribute("displaystyle", "false")
		}
		node.SetAttribute("scriptlevel", "0")
	}

	if n.LeftDelim == "" && n.RightDelim == "" {
		return node, nil
	}
	var withDelims []MathMLNode
	if n.LeftDelim != "" {
		withDelims = append(withDelims, fenceNode(n.LeftDelim))
	}
	withDelims = append(withDelims, node)
	if n.RightDelim != "" {
		withDelims = append(withDelims, fenceNode(n.RightDelim))
	}
	return makeRow(withDelims), nil
}

func htmlSqrt(n *parse.Sqrt, options *Options) (Node, error) {
	built, err := buildGroup(n.Body, options.HavingCrampedStyle(), nil)
	if err != nil {
		return nil, err
	}
	if built.box().Height == 0 {
		built.box().Height = options.FontMetrics().XHeight
	}
	inner := wrapFragment(built, options)
	dims := inner.box()

	metrics := options.FontMetrics()
	theta := metrics.DefaultRuleThickness
	phi := theta
	if options.Style.ID() < Text.ID() {
		phi = metrics.XHeight
	}
	lineClearance := theta + phi/4
	minDelimiterHeight := dims.Height + dims.Depth + lineClearance + theta

	img := makeSqrtImage(minDelimiterHeight, options)
	delimDepth := img.span.Height - img.ruleWidth
	if delimDepth > dims.Height+dims.Depth+lineClearance {
		lineClearance = (lineClearance + delimDepth - dims.Height - dims.Depth) / 2
	}
	imgShift := img.span.Height - dims.Height - lineClearance - img.ruleWidth

	dims.setStyle("padding-left", em(img.advanceWidth))
	body := MakeVList(VListParams{
		PositionType: FirstBaseline,
		Children: []VListChild{
			{Elem: inner, WrapperClasses: []string{"svg-align"}},
			kern(-(dims.Height + imgShift)),
			{Elem: img.span},
			kern(img.ruleWidth),
		},
	})

	if n.Index == nil {
		return makeSpan([]string{"mord", "sqrt"}, []Node{body}, options, nil), nil
	}
	rootm, err := buildGroup(n.Index, options.HavingStyle(ScriptScript), options)
	if err != nil {
		return nil, err
	}
	toShift := 0.6 * (body.Height - body.Depth)
	rootVList := MakeVList(VListParams{
		PositionType: Shift,
		PositionData: -toShift,
		Children:     []VListChild{{Elem: rootm}},
	})
	rootWrap := makeSpan([]string{"root"}, []Node{rootVList}, nil, nil)
	return makeSpan([]string{"mord", "sqrt"}, []Node{rootWrap, body}, options, nil), nil
}

func mathmlSqrt(n *parse.Sqrt, options *Options) (MathMLNode, error) {
	body, err := buildMathMLGroup(n.Body, options)
	if err != nil {
		return nil, err
	}
	if n.Index == nil {
		return newMathNode("msqrt", body), nil
	}
	index, err := buildMathMLGroup(n.Index, options)
	if err != nil {
		return nil, err
	}
	return newMathNode("mroot", body, index), nil
}
