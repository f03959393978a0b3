package build

import (
	"math"

	"github.com/dpotapov/go-katex/parse"
)

// middleDelim records a \middle delimiter so the enclosing \left...\right
// can rebuild it at the final height.
type middleDelim struct {
	delim   string
	options *Options
}

func htmlDelimSizing(n *parse.DelimSizing, options *Options) (Node, error) {
	if n.Delim == "." {
		return makeSpan([]string{n.MClass}, nil, nil, nil), nil
	}
	return makeSizedDelim(n.Delim, n.Size, options, n.Mode, []string{n.MClass})
}

func mathmlDelimSizing(n *parse.DelimSizing, _ *Options) MathMLNode {
	var kids []MathMLNode
	if n.Delim != "." {
		kids = append(kids, makeText(n.Delim, n.Mode, nil))
	}
	node := newMathNode("mo", kids...)
	if n.MClass == "mopen" || n.MClass == "mclose" {
		node.SetAttribute("fence", "true")
	} else {
		node.SetAttribute("fence", "false")
	}
	node.SetAttribute("stretchy", "true")
	size := em(sizeToMaxHeight[n.Size])
	node.SetAttribute("minsize", size)
	node.SetAttribute("maxsize", size)
	return node
}

func htmlLeftRight(n *parse.LeftRight, options *Options) (Node, error) {
	inner, err := buildExpression(n.Body, options, realGroup, [2]string{"mopen", "mclose"})
	if err != nil {
		return nil, err
	}

	var innerHeight, innerDepth float64
	hadMiddle := false
	for _, child := range inner {
		if span, ok := child.(*Span); ok && span.middle != nil {
			hadMiddle = true
			continue
		}
		innerHeight = math.Max(innerHeight, child.box().Height)
		innerDepth = math.Max(innerDepth, child.box().Depth)
	}
	innerHeight *= options.SizeMultiplier
	innerDepth *= options.SizeMultiplier

	var leftDelim Node
	if n.Left == "." {
		leftDelim = makeNullDelimiter(options, []string{"mopen"})
	} else if leftDelim, err = makeLeftRightDelim(n.Left, innerHeight, innerDepth, options, n.Mode, []string{"mopen"}); err != nil {
		return nil, err
	}

	if hadMiddle {
		for i, child := range inner {
			span, ok := child.(*Span)
			if !ok || span.middle == nil {
				continue
			}
			if inner[i], err = makeLeftRightDelim(span.middle.delim, innerHeight, innerDepth, span.middle.options, n.Mode, nil); err != nil {
				return nil, err
			}
		}
	}

	var rightDelim Node
	if n.Right == "." {
		rightDelim = makeNullDelimiter(options, []string{"mclose"})
	} else {
		colorOptions := options
		if n.RightColor != "" {
			colorOptions = options.WithColor(n.RightColor)
		}
		if rightDelim, err = makeLeftRightDelim(n.Right, innerHeight, innerDepth, colorOptions, n.Mode, []string{"mclose"}); err != nil {
			return nil, err
		}
	}

	kids := make([]Node, 0, len(inner)+2)
	kids = append(kids, leftDelim)
	kids = append(kids, inner...)
	kids = append(kids, rightDelim)
	return makeSpan([]string{"minner"}, kids, options, nil), nil
}

func mathmlLeftRight(n *parse.LeftRight, options *Options) (MathMLNode, error) {
	inner, err := buildMathMLExpression(n.Body, options, false)
	if err != nil {
		return nil, err
	}
	var kids []MathMLNode
	if n.Left != "." {
		left := newMathNode("mo", makeText(n.Left, n.Mode, nil))
		left.SetAttribute("fence", "true")
		kids = append(kids, left)
	}
	kids = append(kids, inner...)
	if n.Right != "." {
		right := newMathNode("mo", makeText(n.Right, n.Mode, nil))
		right.SetAttribute("fence", "true")
		if n.RightColor != "" {
			right.SetAttribute("mathcolor", n.RightColor)
		}
		kids = append(kids, right)
	}
	return makeRow(kids), nil
}

func htmlMiddle(n *parse.Middle, options *Options) (Node, error) {
	if n.Delim == "." {
		return makeNullDelimiter(options, nil), nil
	}
	span, err := makeSizedDelim(n.Delim, 1, options, n.Mode, nil)
	if err != nil {
		return nil, err
	}
	span.middle = &middleDelim{delim: n.Delim, options: options}
	return span, nil
}

func mathmlMiddle(n *parse.Middle, _ *Options) MathMLNode {
	var text *TextNode
	if n.Delim == `\vert` || n.Delim == "|" {
		text = makeText("|", parse.TextMode, nil)
	} else {
		text = makeText(n.Delim, n.Mode, nil)
	}
	node := newMathNode("mo", text)
	node.SetAttribute("fence", "true")
	node.SetAttribute("lspace", "0.05em")
	node.SetAttribute("rspace", "0.05em")
	return node
}
