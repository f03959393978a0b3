package build

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dpotapov/go-katex/parse"
	"golang.org/x/net/html"
)

// stretchyCodePoint is the MathML character of each stretchy command.
var stretchyCodePoint = map[string]string{
	"widehat":             "^",
	"widecheck":           "ˇ",
	"widetilde":           "~",
	"utilde":              "~",
	"overleftarrow":       "←",
	"underleftarrow":      "←",
	"xleftarrow":          "←",
	"overrightarrow":      "→",
	"underrightarrow":     "→",
	"xrightarrow":         "→",
	"underbrace":          "⏟",
	"overbrace":           "⏞",
	"overgroup":           "⏠",
	"undergroup":          "⏡",
	"overleftrightarrow":  "↔",
	"underleftrightarrow": "↔",
	"xleftrightarrow":     "↔",
	"Overrightarrow":      "⇒",
	"xRightarrow":         "⇒",
	"overleftharpoon":     "↼",
	"xleftharpoonup":      "↼",
	"overrightharpoon":    "⇀",
	"xrightharpoonup":     "⇀",
	"xLeftarrow":          "⇐",
	"xLeftrightarrow":     "⇔",
	"xhookleftarrow":      "↩",
	"xhookrightarrow":     "↪",
	"xmapsto":             "↦",
	"xrightharpoondown":   "⇁",
	"xleftharpoondown":    "↽",
	"xrightleftharpoons":  "⇌",
	"xleftrightharpoons":  "⇋",
	"xtwoheadleftarrow":   "↞",
	"xtwoheadrightarrow":  "↠",
	"xlongequal":          "=",
	"xtofrom":             "⇄",
	"xrightleftarrows":    "⇄",
	"xrightequilibrium":   "⇌",
	"xleftequilibrium":    "⇋",
}

// stretchyMathMLNode returns the stretchy MathML operator for label.
func stretchyMathMLNode(label string) *MathNode {
	node := newMathNode("mo", &TextNode{Text: stretchyCodePoint[strings.TrimPrefix(label, `\`)]})
	node.SetAttribute("stretchy", "true")
	return node
}

type stretchyImage struct {
	paths         []string
	minWidth      float64
	viewBoxHeight int
	align         string
}

// stretchyImages lists the path pieces of every stretchy SVG. Images with
// one piece use align; two and three pieces are aligned to the outer edges
// and the center.
var stretchyImages = map[string]stretchyImage{
	"overrightarrow":      {[]string{"rightarrow"}, 0.888, 522, "xMaxYMin"},
	"overleftarrow":       {[]string{"leftarrow"}, 0.888, 522, "xMinYMin"},
	"underrightarrow":     {[]string{"rightarrow"}, 0.888, 522, "xMaxYMin"},
	"underleftarrow":      {[]string{"leftarrow"}, 0.888, 522, "xMinYMin"},
	"xrightarrow":         {[]string{"rightarrow"}, 1.469, 522, "xMaxYMin"},
	"xleftarrow":          {[]string{"leftarrow"}, 1.469, 522, "xMinYMin"},
	"Overrightarrow":      {[]string{"doublerightarrow"}, 0.888, 560, "xMaxYMin"},
	"xRightarrow":         {[]string{"doublerightarrow"}, 1.526, 560, "xMaxYMin"},
	"xLeftarrow":          {[]string{"doubleleftarrow"}, 1.526, 560, "xMinYMin"},
	"overleftharpoon":     {[]string{"leftharpoon"}, 0.888, 522, "xMinYMin"},
	"xleftharpoonup":      {[]string{"leftharpoon"}, 0.888, 522, "xMinYMin"},
	"xleftharpoondown":    {[]string{"leftharpoondown"}, 0.888, 522, "xMinYMin"},
	"overrightharpoon":    {[]string{"rightharpoon"}, 0.888, 522, "xMaxYMin"},
	"xrightharpoonup":     {[]string{"rightharpoon"}, 0.888, 522, "xMaxYMin"},
	"xrightharpoondown":   {[]string{"rightharpoondown"}, 0.888, 522, "xMaxYMin"},
	"xlongequal":          {[]string{"longequal"}, 0.888, 334, "xMinYMin"},
	"xtwoheadleftarrow":   {[]string{"twoheadleftarrow"}, 0.888, 334, "xMinYMin"},
	"xtwoheadrightarrow":  {[]string{"twoheadrightarrow"}, 0.888, 334, "xMaxYMin"},
	"overleftrightarrow":  {[]string{"leftarrow", "rightarrow"}, 0.888, 522, ""},
	"overbrace":           {[]string{"leftbrace", "midbrace", "rightbrace"}, 1.6, 548, ""},
	"underbrace":          {[]string{"leftbraceunder", "midbraceunder", "rightbraceunder"}, 1.6, 548, ""},
	"underleftrightarrow": {[]string{"leftarrow", "rightarrow"}, 0.888, 522, ""},
	"xleftrightarrow":     {[]string{"leftarrow", "rightarrow"}, 1.75, 522, ""},
	"xLeftrightarrow":     {[]string{"doubleleftarrow", "doublerightarrow"}, 1.75, 560, ""},
	"xrightleftharpoons":  {[]string{"leftharpoondownplus", "rightharpoonplus"}, 1.75, 716, ""},
	"xleftrightharpoons":  {[]string{"leftharpoonplus", "rightharpoondownplus"}, 1.75, 716, ""},
	"xhookleftarrow":      {[]string{"leftarrow", "righthook"}, 1.08, 522, ""},
	"xhookrightarrow":     {[]string{"lefthook", "rightarrow"}, 1.08, 522, ""},
	"overlinesegment":     {[]string{"leftlinesegment", "rightlinesegment"}, 0.888, 522, ""},
	"underlinesegment":    {[]string{"leftlinesegment", "rightlinesegment"}, 0.888, 522, ""},
	"overgroup":           {[]string{"leftgroup", "rightgroup"}, 0.888, 342, ""},
	"undergroup":          {[]string{"leftgroupunder", "rightgroupunder"}, 0.888, 342, ""},
	"xmapsto":             {[]string{"leftmapsto", "rightarrow"}, 1.5, 522, ""},
	"xtofrom":             {[]string{"leftToFrom", "rightToFrom"}, 1.75, 528, ""},
	"xrightleftarrows":    {[]string{"baraboveleftarrow", "rightarrowabovebar"}, 1.75, 901, ""},
	"xrightequilibrium":   {[]string{"baraboveshortleftharpoon", "rightharpoonaboveshortbar"}, 1.75, 716, ""},
	"xleftequilibrium":    {[]string{"shortbaraboveleftharpoon", "shortrightharpoonabovebar"}, 1.75, 716, ""},
}

type viewBox struct{ width, height int }

// View boxes and em heights of the wide accents, indexed by image size.
var (
	wideHatViewBox = [5]viewBox{{}, {1062, 239}, {2364, 300}, {2364, 360}, {2364, 420}}
	wideHatHeight  = [6]float64{0, 0.24, 0.3, 0.3, 0.36, 0.42}
	tildeViewBox   = [5]viewBox{{}, {600, 260}, {1033, 286}, {2339, 306}, {2340, 312}}
	tildeHeight    = [6]float64{0, 0.26, 0.286, 0.3, 0.306, 0.34}
)

func groupLength(n parse.Node) int {
	if g, ok := n.(*parse.OrdGroup); ok {
		return len(g.Body)
	}
	return 1
}

func svgAttrs(width, height string, vb viewBox, aspect string) []html.Attribute {
	return []html.Attribute{
		{Key: "width", Val: width},
		{Key: "height", Val: height},
		{Key: "viewBox", Val: fmt.Sprintf("0 0 %d %d", vb.width, vb.height)},
		{Key: "preserveAspectRatio", Val: aspect},
	}
}

// wideAccentSvg builds \widehat, \widecheck, \widetilde and \utilde. The
// image is picked by the number of characters under the accent.
func wideAccentSvg(label string, base parse.Node, options *Options) (*Span, float64) {
	numChars := groupLength(base)
	tilde := label != "widehat" && label != "widecheck"

	var vb viewBox
	var path string
	var height float64
	if numChars > 5 {
		if tilde {
			vb, path, height = tildeViewBox[4], "tilde4", 0.34
		} else {
			vb, path, height = wideHatViewBox[4], label+"4", 0.42
		}
	} else {
		imgIndex := [6]int{1, 1, 2, 2, 3, 3}[numChars]
		if tilde {
			vb = tildeViewBox[imgIndex]
			path, height = fmt.Sprintf("tilde%d", imgIndex), tildeHeight[imgIndex]
		} else {
			vb = wideHatViewBox[imgIndex]
			path, height = fmt.Sprintf("%s%d", label, imgIndex), wideHatHeight[imgIndex]
		}
	}
	// Paths are drawn for the bucket view box and stretched to the span.
	svg := &SvgNode{
		Children:   []Node{&PathNode{Name: path}},
		Attributes: svgAttrs("100%", em(height), vb, "none"),
	}
	return makeSpan(nil, []Node{svg}, options, nil), height
}

// stretchySvg builds the SVG image of an accent, brace or extensible arrow.
func stretchySvg(label string, base parse.Node, options *Options) (*Span, error) {
	label = strings.TrimPrefix(label, `\`)

	var span *Span
	var minWidth, height float64
	switch label {
	case "widehat", "widecheck", "widetilde", "utilde":
		span, height = wideAccentSvg(label, base, options)
	default:
		img, ok := stretchyImages[label]
		if !ok {
			return nil, fmt.Errorf("no stretchy image for %q", label)
		}
		minWidth = img.minWidth
		height = float64(img.viewBoxHeight) / 1000
		vb := viewBox{svgWidth, img.viewBoxHeight}

		var widthClasses, aligns []string
		switch len(img.paths) {
		case 1:
			widthClasses, aligns = []string{"hide-tail"}, []string{img.align}
		case 2:
			widthClasses, aligns = []string{"halfarrow-left", "halfarrow-right"}, []string{"xMinYMin", "xMaxYMin"}
		default:
			widthClasses = []string{"brace-left", "brace-center", "brace-right"}
			aligns = []string{"xMinYMin", "xMidYMin", "xMaxYMin"}
		}

		var parts []Node
		for i, name := range img.paths {
			svg := &SvgNode{
				Children:   []Node{&PathNode{Name: name}},
				Attributes: svgAttrs("400em", em(height), vb, aligns[i]+" slice"),
			}
			part := makeSpan([]string{widthClasses[i]}, []Node{svg}, options, nil)
			if len(img.paths) == 1 {
				span = part
				break
			}
			part.setStyle("height", em(height))
			parts = append(parts, part)
		}
		if span == nil {
			span = makeSpan([]string{"stretchy"}, parts, options, nil)
		}
	}

	span.Height = height
	span.Depth = 0
	span.setStyle("height", em(height))
	if minWidth > 0 {
		span.setStyle("min-width", em(minWidth))
	}
	return span, nil
}

var (
	boxEncloseRe    = regexp.MustCompile(`fbox|color|angl`)
	backCancelRe    = regexp.MustCompile(`^[bx]cancel$`)
	forwardCancelRe = regexp.MustCompile(`^x?cancel$`)
)

func cancelLine(y1, y2 string) Node {
	return &LineNode{Attributes: []html.Attribute{
		{Key: "x1", Val: "0"},
		{Key: "y1", Val: y1},
		{Key: "x2", Val: "100%"},
		{Key: "y2", Val: y2},
		{Key: "stroke-width", Val: "0.046em"},
	}}
}

// encloseSpan builds the frame, background or strike lines drawn over
// inner.
func encloseSpan(inner Node, label string, topPad, bottomPad float64, options *Options) *Span {
	dims := inner.box()
	totalHeight := dims.Height + dims.Depth + topPad + bottomPad

	var img *Span
	if boxEncloseRe.MatchString(label) {
		img = makeSpan([]string{"stretchy", label}, nil, options, nil)
		if label == "fbox" {
			if color := options.GetColor(); color != "" {
				img.setStyle("border-color", color)
			}
		}
	} else {
		var lines []Node
		if backCancelRe.MatchString(label) {
			lines = append(lines, cancelLine("0", "100%"))
		}
		if forwardCancelRe.MatchString(label) {
			lines = append(lines, cancelLine("100%", "0"))
		}
		svg := &SvgNode{
			Children: lines,
			Attributes: []html.Attribute{
				{Key: "width", Val: "100%"},
				{Key: "height", Val: em(totalHeight)},
			},
		}
		img = makeSvgSpan(nil, []Node{svg}, 0, 0)
	}
	img.Height = totalHeight
	img.Depth = 0
	img.setStyle("height", em(totalHeight))
	return img
}
