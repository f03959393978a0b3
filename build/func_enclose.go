package build

import (
	"fmt"
	"math"
	"strings"

	"github.com/dpotapov/go-katex/parse"
	"golang.org/x/net/html"
)

// phasePath is the angle drawn by \phase for a view box viewBoxHeight
// units tall.
func phasePath(viewBoxHeight int) string {
	y := float64(viewBoxHeight)
	return fmt.Sprintf("M400000 %s H0 L%s 0 l65 45 L145 %s H400000z", ftoa(y), ftoa(y/2), ftoa(y-80))
}

func htmlEnclose(n *parse.Enclose, options *Options) (Node, error) {
	built, err := buildGroup(n.Body, options, nil)
	if err != nil {
		return nil, err
	}
	inner := wrapFragment(built, options)
	dims := inner.box()
	label := strings.TrimPrefix(n.Label, `\`)
	metrics := options.FontMetrics()
	isSingleChar := parse.IsCharacterBox(n.Body)
	isCancel := strings.Contains(label, "cancel")

	var img *Span
	var imgShift float64
	switch label {
	case "sout":
		img = makeSpan([]string{"stretchy", "sout"}, nil, nil, nil)
		img.Height = metrics.DefaultRuleThickness / options.SizeMultiplier
		imgShift = -0.5 * metrics.XHeight
	case "phase":
		lineWeight := calcSize(parse.Measurement{Number: 0.6, Unit: "pt"}, options)
		clearance := calcSize(parse.Measurement{Number: 0.35, Unit: "ex"}, options)
		scale := options.SizeMultiplier / options.HavingBaseSizing().SizeMultiplier
		angleHeight := dims.Height + dims.Depth + lineWeight + clearance
		dims.setStyle("padding-left", em(angleHeight/2+lineWeight))

		viewBoxHeight := int(math.Floor(1000 * angleHeight * scale))
		svg := &SvgNode{
			Children: []Node{&PathNode{Name: "phase", Alternate: phasePath(viewBoxHeight)}},
			Attributes: []html.Attribute{
				{Key: "width", Val: "400em"},
				{Key: "height", Val: em(float64(viewBoxHeight) / 1000)},
				{Key: "viewBox", Val: fmt.Sprintf("0 0 400000 %d", viewBoxHeight)},
				{Key: "preserveAspectRatio", Val: "xMinYMin slice"},
			},
		}
		img = makeSpan([]string{"hide-tail"}, []Node{svg}, options, nil)
		img.setStyle("height", em(angleHeight))
		imgShift = dims.Depth + lineWeight + clearance
	default:
		switch {
		case isCancel:
			if !isSingleChar {
				dims.Classes = append(dims.Classes, "cancel-pad")
			}
		case label == "angl":
			dims.Classes = append(dims.Classes, "anglpad")
		default:
			dims.Classes = append(dims.Classes, "boxpad")
		}

		var topPad, bottomPad, ruleThickness float64
		switch {
		case strings.Contains(label, "box"):
			ruleThickness = math.Max(metrics.FboxRule, options.MinRuleThickness)
			topPad = metrics.FboxSep
			if label != "colorbox" {
				topPad += ruleThickness
			}
			bottomPad = topPad
		case label == "angl":
			ruleThickness = math.Max(metrics.DefaultRuleThickness, options.MinRuleThickness)
			topPad = 4 * ruleThickness
			bottomPad = math.Max(0, 0.25-dims.Depth)
		case isSingleChar:
			topPad, bottomPad = 0.2, 0.2
		}

		img = encloseSpan(inner, label, topPad, bottomPad, options)
		switch {
		case label == "fbox" || label == "fcolorbox":
			img.setStyle("border-style", "solid")
			img.setStyle("border-width", em(ruleThickness))
		case label == "angl" && ruleThickness != 0.049:
			img.setStyle("border-top-width", em(ruleThickness))
			img.setStyle("border-right-width", em(ruleThickness))
		}
		imgShift = dims.Depth + bottomPad

		if n.BackgroundColor != "" {
			img.setStyle("background-color", n.BackgroundColor)
			if n.BorderColor != "" {
				img.setStyle("border-color", n.BorderColor)
			}
		}
	}

	var vlist *Span
	if n.BackgroundColor != "" {
		vlist = MakeVList(VListParams{
			PositionType: IndividualShift,
			Children: []VListChild{
				{Elem: img, Shift: imgShift},
				{Elem: inner},
			},
		})
	} else {
		var classes []string
		if isCancel || label == "phase" {
			classes = []string{"svg-align"}
		}
		vlist = MakeVList(VListParams{
			PositionType: IndividualShift,
			Children: []VListChild{
				{Elem: inner},
				{Elem: img, Shift: imgShift, WrapperClasses: classes},
			},
		})
	}

	if isCancel {
		vlist.Height = dims.Height
		vlist.Depth = dims.Depth
		if !isSingleChar {
			return makeSpan([]string{"mord", "cancel-lap"}, []Node{vlist}, options, nil), nil
		}
	}
	return makeSpan([]string{"mord"}, []Node{vlist}, options, nil), nil
}

var encloseNotation = map[string]string{
	`\cancel`:  "updiagonalstrike",
	`\bcancel`: "downdiagonalstrike",
	`\xcancel`: "updiagonalstrike downdiagonalstrike",
	`\phase`:   "phasorangle",
	`\sout`:    "horizontalstrike",
	`\fbox`:    "box",
	`\angl`:    "actuarial",
}

func mathmlEnclose(n *parse.Enclose, options *Options) (MathMLNode, error) {
	body, err := buildMathMLGroup(n.Body, options)
	if err != nil {
		return nil, err
	}
	typ := "menclose"
	if strings.Contains(n.Label, "colorbox") {
		typ = "mpadded"
	}
	node := newMathNode(typ, body)
	if notation, ok := encloseNotation[n.Label]; ok {
		node.SetAttribute("notation", notation)
	}
	if typ == "mpadded" {
		metrics := options.FontMetrics()
		fboxsep := metrics.FboxSep * metrics.PtPerEm
		node.SetAttribute("width", "+"+ftoa(2*fboxsep)+"pt")
		node.SetAttribute("height", "+"+ftoa(2*fboxsep)+"pt")
		node.SetAttribute("lspace", ftoa(fboxsep)+"pt")
		node.SetAttribute("voffset", ftoa(fboxsep)+"pt")
		if n.Label == `\fcolorbox` {
			thickness := math.Max(metrics.FboxRule, options.MinRuleThickness)
			node.SetAttribute("style", fmt.Sprintf("border: %sem solid %s", ftoa(thickness), n.BorderColor))
		}
	}
	if n.BackgroundColor != "" {
		node.SetAttribute("mathbackground", n.BackgroundColor)
	}
	return node, nil
}
