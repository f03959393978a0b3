package build

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"github.com/dpotapov/go-katex/parse"
	"golang.org/x/net/html"
)

// MathMLNode is a node of the MathML tree.
type MathMLNode interface {
	// ToNode converts the node to an HTML node tree.
	ToNode() *html.Node
	// ToText returns the text content, used for annotations and attribute
	// values.
	ToText() string
	writeXML(parent *etree.Element)
}

// MathNode is a MathML element.
type MathNode struct {
	Type       string
	Attributes map[string]string
	Children   []MathMLNode
	Classes    []string
}

func newMathNode(typ string, kids ...MathMLNode) *MathNode {
	return &MathNode{Type: typ, Children: kids}
}

// SetAttribute sets an attribute of the element.
func (m *MathNode) SetAttribute(key, val string) {
	if m.Attributes == nil {
		m.Attributes = map[string]string{}
	}
	m.Attributes[key] = val
}

// Attribute returns the value of an attribute, "" if unset.
func (m *MathNode) Attribute(key string) string {
	return m.Attributes[key]
}

func (m *MathNode) attrKeys() []string {
	keys := make([]string, 0, len(m.Attributes))
	for k := range m.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *MathNode) ToNode() *html.Node {
	n := newElement(m.Type)
	n.Namespace = "math"
	for _, k := range m.attrKeys() {
		setAttr(n, k, m.Attributes[k])
	}
	if cls := classString(m.Classes); cls != "" {
		setAttr(n, "class", cls)
	}
	for _, c := range m.Children {
		n.AppendChild(c.ToNode())
	}
	return n
}

func (m *MathNode) ToText() string {
	var sb strings.Builder
	for _, c := range m.Children {
		sb.WriteString(c.ToText())
	}
	return sb.String()
}

// ToElement converts the node to an XML element.
func (m *MathNode) ToElement() *etree.Element {
	e := etree.NewElement(m.Type)
	for _, k := range m.attrKeys() {
		e.CreateAttr(k, m.Attributes[k])
	}
	if cls := classString(m.Classes); cls != "" {
		e.CreateAttr("class", cls)
	}
	for _, c := range m.Children {
		c.writeXML(e)
	}
	return e
}

func (m *MathNode) writeXML(parent *etree.Element) {
	parent.AddChild(m.ToElement())
}

// TextNode is character data inside a MathML element.
type TextNode struct {
	Text string
}

func (t *TextNode) ToNode() *html.Node {
	return &html.Node{Type: html.TextNode, Data: t.Text}
}

func (t *TextNode) ToText() string { return t.Text }

func (t *TextNode) writeXML(parent *etree.Element) {
	parent.CreateText(t.Text)
}

// SpaceNode is a space of Width ems. Widths matching a Unicode space
// character render as that character, others as an mspace element.
type SpaceNode struct {
	Width     float64
	Character string
}

func newSpaceNode(width float64) *SpaceNode {
	s := &SpaceNode{Width: width}
	switch {
	case width >= 0.0555 && width <= 0.0556:
		s.Character = "\u200a"
	case width >= 0.1666 && width <= 0.1667:
		s.Character = "\u2009"
	case width >= 0.2222 && width <= 0.2223:
		s.Character = "\u2005"
	case width >= 0.2777 && width <= 0.2778:
		s.Character = "\u2005\u200a"
	case width >= -0.0556 && width <= -0.0555:
		s.Character = "\u200a\u2063"
	case width >= -0.1667 && width <= -0.1666:
		s.Character = "\u2009\u2063"
	case width >= -0.2223 && width <= -0.2222:
		s.Character = "\u205f\u2063"
	case width >= -0.2778 && width <= -0.2777:
		s.Character = "\u2005\u2063"
	}
	return s
}

func (s *SpaceNode) ToNode() *html.Node {
	if s.Character != "" {
		return &html.Node{Type: html.TextNode, Data: s.Character}
	}
	n := newElement("mspace")
	n.Namespace = "math"
	setAttr(n, "width", em(s.Width))
	return n
}

func (s *SpaceNode) ToText() string {
	if s.Character != "" {
		return s.Character
	}
	return " "
}

func (s *SpaceNode) writeXML(parent *etree.Element) {
	if s.Character != "" {
		parent.CreateText(s.Character)
		return
	}
	parent.CreateElement("mspace").CreateAttr("width", em(s.Width))
}

// MathFragment is a list of nodes without an element of its own.
type MathFragment struct {
	Children []MathMLNode
}

func (f *MathFragment) ToNode() *html.Node {
	n := &html.Node{Type: html.DocumentNode}
	for _, c := range f.Children {
		n.AppendChild(c.ToNode())
	}
	return n
}

func (f *MathFragment) ToText() string {
	var sb strings.Builder
	for _, c := range f.Children {
		sb.WriteString(c.ToText())
	}
	return sb.String()
}

func (f *MathFragment) writeXML(parent *etree.Element) {
	for _, c := range f.Children {
		c.writeXML(parent)
	}
}

var (
	_ MathMLNode = (*MathNode)(nil)
	_ MathMLNode = (*TextNode)(nil)
	_ MathMLNode = (*SpaceNode)(nil)
	_ MathMLNode = (*MathFragment)(nil)
)

// mathMLBox places a MathML tree inside the box tree.
type mathMLBox struct {
	Box
	math *MathNode
}

func (m *mathMLBox) ToNode() *html.Node { return m.math.ToNode() }

// makeText creates a text node, replacing symbol names with the character
// they stand for.
func makeText(text string, mode parse.Mode, options *Options) *TextNode {
	info, ok := parse.LookupSymbol(mode, text)
	if ok && info.Replace != "" {
		r, _ := utf8.DecodeRuneInString(text)
		tt := options != nil && (strings.HasPrefix(options.FontFamily, "texttt") || options.Font == "mathtt")
		if !(r >= 0x1D400 && r <= 0x1D7FF) && !(parse.Ligatures[text] && tt) {
			text = info.Replace
		}
	}
	return &TextNode{Text: text}
}

// makeRow wraps several nodes in an mrow.
func makeRow(body []MathMLNode) MathMLNode {
	if len(body) == 1 {
		return body[0]
	}
	return newMathNode("mrow", body...)
}

// mathVariant returns the mathvariant attribute for a symbol node under the
// current font options, "" for none.
func mathVariant(typ string, text string, mode parse.Mode, options *Options) string {
	switch {
	case options.FontFamily == "texttt":
		return "monospace"
	case options.FontFamily == "textsf":
		switch {
		case options.FontShape == "textit" && options.FontWeight == "textbf":
			return "sans-serif-bold-italic"
		case options.FontShape == "textit":
			return "sans-serif-italic"
		case options.FontWeight == "textbf":
			return "bold-sans-serif"
		}
		return "sans-serif"
	case options.FontShape == "textit" && options.FontWeight == "textbf":
		return "bold-italic"
	case options.FontShape == "textit":
		return "italic"
	case options.FontWeight == "textbf":
		return "bold"
	}

	switch font := options.Font; font {
	case "", "mathnormal":
		return ""
	case "mathit":
		return "italic"
	case "boldsymbol":
		if typ == "textord" {
			return "bold"
		}
		return "bold-italic"
	case "mathbf":
		return "bold"
	case "mathbb":
		return "double-struck"
	case "mathsfit":
		return "sans-serif-italic"
	case "mathfrak":
		return "fraktur"
	case "mathscr", "mathcal":
		return "script"
	case "mathsf":
		return "sans-serif"
	case "mathtt":
		return "monospace"
	case "mathrm", "textit":
		if text == `\imath` || text == `\jmath` {
			return ""
		}
		if info, ok := parse.LookupSymbol(mode, text); ok && info.Replace != "" {
			text = info.Replace
		}
		if _, ok := CharMetrics(text, fontMap[font], mode); !ok {
			return ""
		}
		if font == "mathrm" {
			return "normal"
		}
		return "italic"
	}
	return ""
}

func isNumberPunctuation(n MathMLNode) bool {
	m, ok := n.(*MathNode)
	if !ok || len(m.Children) != 1 {
		return false
	}
	t, ok := m.Children[0].(*TextNode)
	if !ok {
		return false
	}
	switch m.Type {
	case "mi":
		return t.Text == "."
	case "mo":
		return t.Text == "," && m.Attribute("separator") == "true" &&
			m.Attribute("lspace") == "0em" && m.Attribute("rspace") == "0em"
	}
	return false
}

// buildMathMLExpression builds a list of nodes, merging runs of digits
// and of text with the same variant into single elements.
func buildMathMLExpression(expression []parse.Node, options *Options, isOrdGroup bool) ([]MathMLNode, error) {
	if len(expression) == 1 {
		group, err := buildMathMLGroup(expression[0], options)
		if err != nil {
			return nil, err
		}
		if m, ok := group.(*MathNode); ok && isOrdGroup && m.Type == "mo" {
			m.SetAttribute("lspace", "0em")
			m.SetAttribute("rspace", "0em")
		}
		return []MathMLNode{group}, nil
	}

	var groups []MathMLNode
	var last *MathNode
	for _, expr := range expression {
		group, err := buildMathMLGroup(expr, options)
		if err != nil {
			return nil, err
		}
		m, ok := group.(*MathNode)
		if ok && last != nil {
			switch {
			case m.Type == "mtext" && last.Type == "mtext" && m.Attribute("mathvariant") == last.Attribute("mathvariant"):
				last.Children = append(last.Children, m.Children...)
				continue
			case m.Type == "mn" && last.Type == "mn":
				last.Children = append(last.Children, m.Children...)
				continue
			case isNumberPunctuation(m) && last.Type == "mn":
				last.Children = append(last.Children, m.Children...)
				continue
			case m.Type == "mn" && isNumberPunctuation(last):
				m.Children = append(slices.Clone(last.Children), m.Children...)
				groups = groups[:len(groups)-1]
			case (m.Type == "msup" || m.Type == "msub") && len(m.Children) > 0 &&
				(last.Type == "mn" || isNumberPunctuation(last)):
				if base, ok := m.Children[0].(*MathNode); ok && base.Type == "mn" {
					base.Children = append(slices.Clone(last.Children), base.Children...)
					groups = groups[:len(groups)-1]
				}
			case last.Type == "mi" && len(last.Children) == 1:
				// A \not before a symbol combines with it.
				if t, ok := last.Children[0].(*TextNode); ok && t.Text == "\u0338" &&
					(m.Type == "mo" || m.Type == "mi" || m.Type == "mn") && len(m.Children) > 0 {
					if child, ok := m.Children[0].(*TextNode); ok && child.Text != "" {
						_, size := utf8.DecodeRuneInString(child.Text)
						child.Text = child.Text[:size] + "\u0338" + child.Text[size:]
						groups = groups[:len(groups)-1]
					}
				}
			}
		}
		groups = append(groups, group)
		last = nil
		if ok {
			last = m
		}
	}
	return groups, nil
}

func buildMathMLRow(expression []parse.Node, options *Options, isOrdGroup bool) (MathMLNode, error) {
	body, err := buildMathMLExpression(expression, options, isOrdGroup)
	if err != nil {
		return nil, err
	}
	return makeRow(body), nil
}

// buildMathMLGroup builds one parse node. A nil node builds an empty mrow.
func buildMathMLGroup(group parse.Node, options *Options) (MathMLNode, error) {
	if group == nil {
		return newMathNode("mrow"), nil
	}
	switch n := group.(type) {
	case *parse.MathOrd:
		return mathmlMathOrd(n, options), nil
	case *parse.TextOrd:
		return mathmlTextOrd(n, options), nil
	case *parse.AccentToken:
		return mathmlTextOrd(&parse.TextOrd{Base: n.Base, Text: n.Text}, options), nil
	case *parse.OpToken:
		node := newMathNode("mo", makeText(n.Text, n.Mode, options))
		node.SetAttribute("stretchy", "false")
		return node, nil
	case *parse.Atom:
		return mathmlAtom(n, options), nil
	case *parse.Spacing:
		return mathmlSpacing(n, options)
	case *parse.OrdGroup:
		return buildMathMLRow(n.Body, options, true)
	case *parse.SupSub:
		return mathmlSupSub(n, options)
	case *parse.GenFrac:
		return mathmlGenFrac(n, options)
	case *parse.Sqrt:
		return mathmlSqrt(n, options)
	case *parse.Op:
		return mathmlOp(n, options)
	case *parse.OperatorName:
		return mathmlOperatorName(n, options)
	case *parse.Accent:
		return mathmlAccent(n, options)
	case *parse.AccentUnder:
		return mathmlAccentUnder(n, options)
	case *parse.HorizBrace:
		return mathmlHorizBrace(n, options)
	case *parse.XArrow:
		return mathmlXArrow(n, options)
	case *parse.LeftRight:
		return mathmlLeftRight(n, options)
	case *parse.Middle:
		return mathmlMiddle(n, options), nil
	case *parse.DelimSizing:
		return mathmlDelimSizing(n, options), nil
	case *parse.Color:
		return mathmlColor(n, options)
	case *parse.Styling:
		return mathmlStyling(n, options)
	case *parse.Sizing:
		return mathmlSizing(n, options)
	case *parse.Font:
		return buildMathMLGroup(n.Body, fontOptions(n, options))
	case *parse.Text:
		return mathmlText(n, options)
	case *parse.HBox:
		return mathmlHBox(n, options)
	case *parse.Kern:
		return newSpaceNode(calcSize(n.Dimension, options)), nil
	case *parse.Lap:
		return mathmlLap(n, options)
	case *parse.RaiseBox:
		return mathmlRaiseBox(n, options)
	case *parse.Rule:
		return mathmlRule(n, options), nil
	case *parse.Phantom:
		return mathmlPhantom(n, options)
	case *parse.HPhantom:
		return mathmlHPhantom(n, options)
	case *parse.VPhantom:
		return mathmlVPhantom(n, options)
	case *parse.Smash:
		return mathmlSmash(n, options)
	case *parse.MClass:
		return mathmlMClass(n, options)
	case *parse.Overline:
		return mathmlOverline(n, options)
	case *parse.Underline:
		return mathmlUnderline(n, options)
	case *parse.VCenter:
		return mathmlVCenter(n, options)
	case *parse.Href:
		return mathmlHref(n, options)
	case *parse.HTML:
		return buildMathMLRow(n.Body, options, false)
	case *parse.HTMLMathML:
		return buildMathMLRow(n.MathML, options, false)
	case *parse.IncludeGraphics:
		return mathmlIncludeGraphics(n, options), nil
	case *parse.Verb:
		return mathmlVerb(n, options), nil
	case *parse.Pmb:
		return mathmlPmb(n, options)
	case *parse.MathChoice:
		return buildMathMLRow(chooseMathStyle(n, options), options, false)
	case *parse.Cr:
		return mathmlCr(n, options), nil
	case *parse.Enclose:
		return mathmlEnclose(n, options)
	case *parse.Array:
		return mathmlArray(n, options)
	case *parse.Tag:
		return mathmlTag(n, options)
	}
	return nil, parse.NewParseError(fmt.Sprintf("Got group of unknown type: '%s'", group.Type()), group)
}

// MathMLTree builds the <math> element of a parse tree, with the source as
// a TeX annotation.
func MathMLTree(tree []parse.Node, texExpression string, options *Options, displayMode bool) (*MathNode, error) {
	expression, err := buildMathMLExpression(tree, options, false)
	if err != nil {
		return nil, err
	}
	var wrapper MathMLNode = newMathNode("mrow", expression...)
	if len(expression) == 1 {
		if m, ok := expression[0].(*MathNode); ok && (m.Type == "mrow" || m.Type == "mtable") {
			wrapper = m
		}
	}
	annotation := newMathNode("annotation", &TextNode{Text: texExpression})
	annotation.SetAttribute("encoding", "application/x-tex")
	semantics := newMathNode("semantics", wrapper, annotation)
	math := newMathNode("math", semantics)
	math.SetAttribute("xmlns", "http://www.w3.org/1998/Math/MathML")
	if displayMode {
		math.SetAttribute("display", "block")
	}
	return math, nil
}

// BuildMathML builds the MathML tree of a parse tree and wraps it in a span
// of class "katex-mathml", or "katex" when it is the only output.
func BuildMathML(tree []parse.Node, texExpression string, options *Options, displayMode, mathMLOnly bool) (*Span, error) {
	math, err := MathMLTree(tree, texExpression, options, displayMode)
	if err != nil {
		return nil, err
	}
	wrapperClass := "katex-mathml"
	if mathMLOnly {
		wrapperClass = "katex"
	}
	return makeSpan([]string{wrapperClass}, []Node{&mathMLBox{math: math}}, nil, nil), nil
}
