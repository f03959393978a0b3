package build

import (
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dpotapov/go-katex/parse"
	"golang.org/x/net/html"
)

// fontMap maps math font commands to font names.
var fontMap = map[string]string{
	"mathbf":     "Main-Bold",
	"mathrm":     "Main-Regular",
	"textit":     "Main-Italic",
	"mathit":     "Main-Italic",
	"mathnormal": "Math-Italic",
	"mathsfit":   "SansSerif-Italic",
	"mathbb":     "AMS-Regular",
	"mathcal":    "Caligraphic-Regular",
	"mathfrak":   "Fraktur-Regular",
	"mathtt":     "Typewriter-Regular",
	"mathscr":    "Script-Regular",
	"mathsf":     "SansSerif-Regular",
}

// lookupSymbol resolves a symbol name to the character drawn for it and its
// metrics.
func lookupSymbol(value, font string, mode parse.Mode) (string, CharacterMetrics, bool) {
	if info, ok := parse.LookupSymbol(mode, value); ok && info.Replace != "" {
		value = info.Replace
	}
	m, ok := CharMetrics(value, font, mode)
	return value, m, ok
}

// makeSymbol creates the box for one symbol in font.
func makeSymbol(value, font string, mode parse.Mode, options *Options, classes []string) *SymbolNode {
	value, metrics, ok := lookupSymbol(value, font, mode)
	s := &SymbolNode{Text: value}
	s.Classes = slices.Clone(classes)
	if ok {
		s.Height = metrics.Height
		s.Depth = metrics.Depth
		s.Skew = metrics.Skew
		s.Width = metrics.Width
		s.Italic = metrics.Italic
		if mode == parse.TextMode || (options != nil && options.Font == "mathit") {
			s.Italic = 0
		}
	} else if options != nil {
		options.Logger().Warn("No character metrics",
			slog.String("char", value), slog.String("font", font), slog.String("mode", string(mode)))
	}
	if r, _ := utf8.DecodeRuneInString(value); r != utf8.RuneError {
		if script := parse.ScriptFromCodepoint(r); script != "" {
			s.Classes = append(s.Classes, script+"_fallback")
		}
	}
	if options != nil {
		s.MaxFontSize = options.SizeMultiplier
		if options.Style.IsTight() {
			s.Classes = append(s.Classes, "mtight")
		}
		if color := options.GetColor(); color != "" {
			s.setStyle("color", color)
		}
	}
	return s
}

// mathsym makes a symbol in Main-Regular or AMS-Regular, used for atoms
// and spacing symbols.
func mathsym(value string, mode parse.Mode, options *Options, classes []string) *SymbolNode {
	if options.Font == "boldsymbol" {
		if _, _, ok := lookupSymbol(value, "Main-Bold", mode); ok {
			return makeSymbol(value, "Main-Bold", mode, options, append(slices.Clone(classes), "mathbf"))
		}
	}
	info, _ := parse.LookupSymbol(mode, value)
	if value == `\` || info.Font == "main" {
		return makeSymbol(value, "Main-Regular", mode, options, classes)
	}
	return makeSymbol(value, "AMS-Regular", mode, options, append(slices.Clone(classes), "amsrm"))
}

func boldsymbolFont(value string, mode parse.Mode, nodeType string) (font, class string) {
	if nodeType != "textord" {
		if _, _, ok := lookupSymbol(value, "Math-BoldItalic", mode); ok {
			return "Math-BoldItalic", "boldsymbol"
		}
	}
	return "Main-Bold", "mathbf"
}

// textFontName builds a font name from a text family, weight and shape.
func textFontName(family, weight, shape string) string {
	var base string
	switch family {
	case "amsrm":
		base = "AMS"
	case "textrm":
		base = "Main"
	case "textsf":
		base = "SansSerif"
	case "texttt":
		base = "Typewriter"
	default:
		base = family
	}
	var style string
	switch {
	case weight == "textbf" && shape == "textit":
		style = "BoldItalic"
	case weight == "textbf":
		style = "Bold"
	case shape == "textit":
		style = "Italic"
	default:
		style = "Regular"
	}
	return base + "-" + style
}

// wideLatinFonts lists the fonts of the mathematical alphanumeric symbols
// block, 52 letters per entry starting at U+1D400.
var wideLatinFonts = [][2]string{
	{"Main-Bold", "mathbf"},
	{"Math-Italic", "mathnormal"},
	{"Math-BoldItalic", "boldsymbol"},
	{"Script-Regular", "mathscr"},
	{"", ""},
	{"Fraktur-Regular", "mathfrak"},
	{"AMS-Regular", "mathbb"},
	{"Fraktur-Regular", "mathboldfrak"},
	{"SansSerif-Regular", "mathsf"},
	{"SansSerif-Bold", "mathboldsf"},
	{"SansSerif-Italic", "mathitsf"},
	{"", ""},
	{"Typewriter-Regular", "mathtt"},
}

var wideNumeralFonts = [][2]string{
	{"Main-Bold", "mathbf"},
	{"AMS-Regular", "mathbb"},
	{"SansSerif-Regular", "mathsf"},
	{"SansSerif-Bold", "mathboldsf"},
	{"Typewriter-Regular", "mathtt"},
}

// wideCharacterFont returns the font of a character from the mathematical
// alphanumeric symbols block.
func wideCharacterFont(r rune) (font, class string, err error) {
	switch {
	case r >= 0x1D400 && r < 0x1D6A4:
		i := int(r-0x1D400) / 52
		if i < len(wideLatinFonts) && wideLatinFonts[i][0] != "" {
			f := wideLatinFonts[i]
			return f[0], f[1], nil
		}
	case r >= 0x1D7CE && r <= 0x1D7FF:
		i := int(r-0x1D7CE) / 10
		if i < len(wideNumeralFonts) {
			f := wideNumeralFonts[i]
			return f[0], f[1], nil
		}
	case r == 0x1D6A5 || r == 0x1D6A6:
		return "Main-Italic", "mathit", nil
	}
	if r >= 0x1D400 && r <= 0x1D7FF {
		return "", "", parse.NewParseError("Unsupported character: "+string(r), nil)
	}
	return "", "", nil
}

// makeOrd creates the box for a mathord or textord node, choosing the font
// from the node mode and the current font options.
func makeOrd(text string, mode parse.Mode, options *Options, nodeType string) (Node, error) {
	classes := []string{"mord"}
	isFont := mode == parse.MathMode || (mode == parse.TextMode && options.Font != "")
	fontOrFamily := options.FontFamily
	if isFont {
		fontOrFamily = options.Font
	}

	r, _ := utf8.DecodeRuneInString(text)
	wideFont, wideClass, err := wideCharacterFont(r)
	if err != nil {
		return nil, err
	}
	if wideFont != "" {
		return makeSymbol(text, wideFont, mode, options, append(classes, wideClass)), nil
	}

	if fontOrFamily != "" {
		var fontName string
		var fontClasses []string
		switch {
		case fontOrFamily == "boldsymbol":
			f, c := boldsymbolFont(text, mode, nodeType)
			fontName, fontClasses = f, []string{c}
		case isFont:
			fontName, fontClasses = fontMap[fontOrFamily], []string{fontOrFamily}
		default:
			fontName = textFontName(fontOrFamily, options.FontWeight, options.FontShape)
			fontClasses = []string{fontOrFamily, options.FontWeight, options.FontShape}
		}
		if _, _, ok := lookupSymbol(text, fontName, mode); ok {
			return makeSymbol(text, fontName, mode, options, append(classes, fontClasses...)), nil
		}
		if parse.Ligatures[text] && strings.HasPrefix(fontName, "Typewriter") {
			var parts []Node
			for _, c := range text {
				parts = append(parts, makeSymbol(string(c), fontName, mode, options, append(slices.Clone(classes), fontClasses...)))
			}
			return makeFragment(parts), nil
		}
	}

	if nodeType == "mathord" {
		return makeSymbol(text, "Math-Italic", mode, options, append(classes, "mathnormal")), nil
	}
	info, _ := parse.LookupSymbol(mode, text)
	switch info.Font {
	case "ams":
		font := textFontName("amsrm", options.FontWeight, options.FontShape)
		return makeSymbol(text, font, mode, options, append(classes, "amsrm", options.FontWeight, options.FontShape)), nil
	case "main", "":
		font := textFontName("textrm", options.FontWeight, options.FontShape)
		return makeSymbol(text, font, mode, options, append(classes, options.FontWeight, options.FontShape)), nil
	default:
		font := textFontName(info.Font, options.FontWeight, options.FontShape)
		return makeSymbol(text, font, mode, options, append(classes, font, options.FontWeight, options.FontShape)), nil
	}
}

// canCombine reports whether two adjacent symbols can share one text run.
func canCombine(prev, next *SymbolNode) bool {
	if classString(prev.Classes) != classString(next.Classes) ||
		prev.Skew != next.Skew || prev.MaxFontSize != next.MaxFontSize {
		return false
	}
	if len(prev.Classes) == 1 {
		if c := prev.Classes[0]; c == "mbin" || c == "mord" {
			return false
		}
	}
	return prev.Style.Equal(next.Style)
}

// tryCombineChars merges runs of combinable symbols in place and returns
// the shortened list.
func tryCombineChars(chars []Node) []Node {
	for i := 0; i < len(chars)-1; i++ {
		prev, ok1 := chars[i].(*SymbolNode)
		next, ok2 := chars[i+1].(*SymbolNode)
		if ok1 && ok2 && canCombine(prev, next) {
			prev.Text += next.Text
			prev.Height = math.Max(prev.Height, next.Height)
			prev.Depth = math.Max(prev.Depth, next.Depth)
			prev.Italic = next.Italic
			chars = slices.Delete(chars, i+1, i+2)
			i--
		}
	}
	return chars
}

func sizeFromChildren(b *Box, kids []Node) {
	for _, c := range kids {
		d := c.box()
		b.Height = math.Max(b.Height, d.Height)
		b.Depth = math.Max(b.Depth, d.Depth)
		b.MaxFontSize = math.Max(b.MaxFontSize, d.MaxFontSize)
	}
}

// makeSpan creates a span sized to its children. With options, it gets the
// current color and the mtight class in script styles.
func makeSpan(classes []string, kids []Node, options *Options, style CSSStyle) *Span {
	s := &Span{Children: kids}
	s.Classes = slices.Clone(classes)
	s.Style = slices.Clone(style)
	if options != nil {
		if options.Style.IsTight() {
			s.Classes = append(s.Classes, "mtight")
		}
		if color := options.GetColor(); color != "" {
			s.setStyle("color", color)
		}
	}
	sizeFromChildren(&s.Box, kids)
	return s
}

func makeSvgSpan(classes []string, kids []Node, height, depth float64) *Span {
	s := makeSpan(classes, kids, nil, nil)
	s.Height = height
	s.Depth = depth
	return s
}

// makeLineSpan creates a horizontal rule of the given thickness, or the
// default rule thickness when thickness is zero.
func makeLineSpan(class string, options *Options, thickness float64) *Span {
	line := makeSpan([]string{class}, nil, options, nil)
	if thickness == 0 {
		thickness = options.FontMetrics().DefaultRuleThickness
	}
	line.Height = math.Max(thickness, options.MinRuleThickness)
	line.setStyle("border-bottom-width", em(line.Height))
	line.MaxFontSize = 1.0
	return line
}

func makeAnchor(href string, classes []string, kids []Node, options *Options) *Anchor {
	a := &Anchor{Href: href, Children: kids}
	a.Classes = slices.Clone(classes)
	if options != nil {
		if options.Style.IsTight() {
			a.Classes = append(a.Classes, "mtight")
		}
		if color := options.GetColor(); color != "" {
			a.setStyle("color", color)
		}
	}
	sizeFromChildren(&a.Box, kids)
	return a
}

func makeFragment(kids []Node) *Fragment {
	f := &Fragment{Children: kids}
	sizeFromChildren(&f.Box, kids)
	return f
}

// wrapFragment wraps a fragment in a span so it can carry classes.
func wrapFragment(n Node, options *Options) Node {
	if _, ok := n.(*Fragment); ok {
		return makeSpan(nil, []Node{n}, options, nil)
	}
	return n
}

// PositionType selects how MakeVList places its children.
type PositionType int

const (
	// IndividualShift positions every element by its own Shift.
	IndividualShift PositionType = iota
	// Top places the top of the list at PositionData.
	Top
	// Bottom places the bottom of the list at PositionData.
	Bottom
	// Shift moves the baseline of the first element by PositionData.
	Shift
	// FirstBaseline aligns the baseline of the first element.
	FirstBaseline
)

// VListChild is an element or, when Elem is nil, a kern of Size ems.
type VListChild struct {
	Elem  Node
	Size  float64
	Shift float64

	MarginLeft     string
	MarginRight    string
	WrapperClasses []string
	WrapperStyle   CSSStyle
}

// VListParams describes a vertical list, bottom element first.
type VListParams struct {
	PositionType PositionType
	PositionData float64
	Children     []VListChild
}

func kern(size float64) VListChild { return VListChild{Size: size} }

func (p VListParams) childrenAndDepth() ([]VListChild, float64) {
	kids := p.Children
	if len(kids) == 0 {
		return nil, 0
	}
	switch p.PositionType {
	case IndividualShift:
		out := []VListChild{kids[0]}
		depth := -kids[0].Shift - kids[0].Elem.box().Depth
		pos := depth
		for i := 1; i < len(kids); i++ {
			d := kids[i].Elem.box()
			prev := kids[i-1].Elem.box()
			diff := -kids[i].Shift - pos - d.Depth
			size := diff - (prev.Height + prev.Depth)
			pos += diff
			out = append(out, kern(size), kids[i])
		}
		return out, depth
	case Top:
		bottom := p.PositionData
		for _, c := range kids {
			if c.Elem == nil {
				bottom -= c.Size
			} else {
				bottom -= c.Elem.box().Height + c.Elem.box().Depth
			}
		}
		return kids, bottom
	case Bottom:
		return kids, -p.PositionData
	}
	var firstDepth float64
	if kids[0].Elem != nil {
		firstDepth = kids[0].Elem.box().Depth
	}
	if p.PositionType == Shift {
		return kids, -firstDepth - p.PositionData
	}
	return kids, -firstDepth
}

// MakeVList stacks boxes vertically. Each element is wrapped in a span
// absolutely offset from a shared strut, and the result reports the height
// and depth of the whole stack.
func MakeVList(p VListParams) *Span {
	kids, depth := p.childrenAndDepth()

	pstrutSize := 0.0
	for _, c := range kids {
		if c.Elem != nil {
			d := c.Elem.box()
			pstrutSize = math.Max(pstrutSize, math.Max(d.MaxFontSize, d.Height))
		}
	}
	pstrutSize += 2

	var realChildren []Node
	minPos, maxPos, pos := depth, depth, depth
	for _, c := range kids {
		if c.Elem == nil {
			pos += c.Size
		} else {
			d := c.Elem.box()
			pstrut := makeSpan([]string{"pstrut"}, nil, nil, CSSStyle{{Name: "height", Value: em(pstrutSize)}})
			wrap := makeSpan(c.WrapperClasses, []Node{pstrut, c.Elem}, nil, c.WrapperStyle)
			wrap.setStyle("top", em(-pstrutSize-pos-d.Depth))
			if c.MarginLeft != "" {
				wrap.setStyle("margin-left", c.MarginLeft)
			}
			if c.MarginRight != "" {
				wrap.setStyle("margin-right", c.MarginRight)
			}
			realChildren = append(realChildren, wrap)
			pos += d.Height + d.Depth
		}
		minPos = math.Min(minPos, pos)
		maxPos = math.Max(maxPos, pos)
	}

	vlist := makeSpan([]string{"vlist"}, realChildren, nil, CSSStyle{{Name: "height", Value: em(maxPos)}})
	var rows []Node
	if minPos < 0 {
		depthStrut := makeSpan([]string{"vlist"}, []Node{makeSpan(nil, nil, nil, nil)}, nil, CSSStyle{{Name: "height", Value: em(-minPos)}})
		topStrut := makeSpan([]string{"vlist-s"}, []Node{&SymbolNode{Text: "\u200b"}}, nil, nil)
		rows = []Node{
			makeSpan([]string{"vlist-r"}, []Node{vlist, topStrut}, nil, nil),
			makeSpan([]string{"vlist-r"}, []Node{depthStrut}, nil, nil),
		}
	} else {
		rows = []Node{makeSpan([]string{"vlist-r"}, []Node{vlist}, nil, nil)}
	}

	vtable := makeSpan([]string{"vlist-t"}, rows, nil, nil)
	if len(rows) == 2 {
		vtable.Classes = append(vtable.Classes, "vlist-t2")
	}
	vtable.Height = maxPos
	vtable.Depth = -minPos
	return vtable
}

// makeGlue creates horizontal space of the given size.
func makeGlue(m parse.Measurement, options *Options) *Span {
	rule := makeSpan([]string{"mspace"}, nil, options, nil)
	rule.setStyle("margin-right", em(calcSize(m, options)))
	return rule
}

type svgGlyph struct {
	path          string
	width, height float64
}

var staticSvgData = map[string]svgGlyph{
	"vec":         {"vec", 0.471, 0.714},
	"oiintSize1":  {"oiintSize1", 0.957, 0.499},
	"oiintSize2":  {"oiintSize2", 1.472, 0.659},
	"oiiintSize1": {"oiiintSize1", 1.304, 0.499},
	"oiiintSize2": {"oiiintSize2", 1.98, 0.659},
}

// staticSvg creates an overlay span with a fixed-size SVG glyph.
func staticSvg(name string) *Span {
	g := staticSvgData[name]
	svg := &SvgNode{
		Children: []Node{&PathNode{Name: g.path}},
		Attributes: []html.Attribute{
			{Key: "width", Val: em(g.width)},
			{Key: "height", Val: em(g.height)},
			{Key: "style", Val: "width:" + em(g.width)},
			{Key: "viewBox", Val: "0 0 " + ftoa(1000*g.width) + " " + ftoa(1000*g.height)},
			{Key: "preserveAspectRatio", Val: "xMinYMin"},
		},
	}
	span := makeSvgSpan([]string{"overlay"}, []Node{svg}, g.height, 0)
	span.setStyle("height", em(g.height))
	span.setStyle("width", em(g.width))
	return span
}

// ftoa formats v with at most three decimals.
func ftoa(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
