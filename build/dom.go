package build

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a node of the box tree produced by the HTML builder.
type Node interface {
	box() *Box
	// ToNode converts the box to an HTML node tree.
	ToNode() *html.Node
}

// Box holds the layout fields shared by every box tree node. Sizes are in
// ems of the box's own font size.
type Box struct {
	Classes     []string
	Height      float64
	Depth       float64
	MaxFontSize float64
	Style       CSSStyle
}

func (b *Box) box() *Box { return b }

// Dims returns the layout fields of n.
func Dims(n Node) *Box { return n.box() }

// HasClass reports whether n carries class.
func HasClass(n Node, class string) bool {
	return slices.Contains(n.box().Classes, class)
}

// CSSStyle is an inline style declaration. Properties are written in the
// order they were first set.
type CSSStyle []CSSProperty

// CSSProperty is one property of a CSSStyle.
type CSSProperty struct {
	Name  string
	Value string
}

// Get returns the value of a property, or "" when it is not set.
func (s CSSStyle) Get(name string) string {
	for _, p := range s {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

// Equal reports whether s and other set the same properties to the same
// values, regardless of order.
func (s CSSStyle) Equal(other CSSStyle) bool {
	count := func(st CSSStyle) int {
		n := 0
		for _, p := range st {
			if p.Value != "" {
				n++
			}
		}
		return n
	}
	if count(s) != count(other) {
		return false
	}
	for _, p := range s {
		if p.Value != "" && other.Get(p.Name) != p.Value {
			return false
		}
	}
	return true
}

func (s CSSStyle) String() string {
	var sb strings.Builder
	for _, p := range s {
		if p.Value == "" {
			continue
		}
		sb.WriteString(p.Name)
		sb.WriteByte(':')
		sb.WriteString(p.Value)
		sb.WriteByte(';')
	}
	return sb.String()
}

// setStyle sets a property in place, keeping its position if it is
// already set.
func (b *Box) setStyle(key, value string) {
	for i, p := range b.Style {
		if p.Name == key {
			b.Style[i].Value = value
			return
		}
	}
	b.Style = append(b.Style, CSSProperty{Name: key, Value: value})
}

// em formats an em length with at most four decimals.
func em(v float64) string {
	v = math.Round(v*10000) / 10000
	if v == 0 {
		v = 0 // no "-0em"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "em"
}

func newElement(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// toElement creates the element for a box with its class and style
// attributes.
func (b *Box) toElement(tag string) *html.Node {
	n := newElement(tag)
	if cls := classString(b.Classes); cls != "" {
		setAttr(n, "class", cls)
	}
	if style := b.Style.String(); style != "" {
		setAttr(n, "style", style)
	}
	return n
}

func classString(classes []string) string {
	var parts []string
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}

// Span is a generic container box.
type Span struct {
	Box
	Children   []Node
	Attributes []html.Attribute
	// Width is set on boxes whose width is known, e.g. rules.
	Width *float64
	// Italic is the italic correction of operator symbols built as spans.
	Italic float64

	// middle is set on \middle delimiters, which are resized once the
	// enclosing \left...\right content is known.
	middle *middleDelim
}

// SetAttribute sets an HTML attribute of the span.
func (s *Span) SetAttribute(key, val string) {
	for i := range s.Attributes {
		if s.Attributes[i].Key == key {
			s.Attributes[i].Val = val
			return
		}
	}
	s.Attributes = append(s.Attributes, html.Attribute{Key: key, Val: val})
}

func (s *Span) ToNode() *html.Node {
	n := s.toElement("span")
	for _, a := range s.Attributes {
		setAttr(n, a.Key, a.Val)
	}
	for _, c := range s.Children {
		n.AppendChild(c.ToNode())
	}
	return n
}

// Anchor is a link box.
type Anchor struct {
	Box
	Href       string
	Children   []Node
	Attributes []html.Attribute
}

func (a *Anchor) ToNode() *html.Node {
	n := a.toElement("a")
	setAttr(n, "href", a.Href)
	for _, attr := range a.Attributes {
		setAttr(n, attr.Key, attr.Val)
	}
	for _, c := range a.Children {
		n.AppendChild(c.ToNode())
	}
	return n
}

// Img is an included graphic.
type Img struct {
	Box
	Src string
	Alt string
}

func (i *Img) ToNode() *html.Node {
	n := i.toElement("img")
	setAttr(n, "src", i.Src)
	setAttr(n, "alt", i.Alt)
	return n
}

// Fragment groups boxes without producing an element of its own.
type Fragment struct {
	Box
	Children []Node
}

func (f *Fragment) ToNode() *html.Node {
	n := &html.Node{Type: html.DocumentNode}
	for _, c := range f.Children {
		n.AppendChild(c.ToNode())
	}
	return n
}

// SymbolNode is a single glyph run.
type SymbolNode struct {
	Box
	Text   string
	Italic float64
	Skew   float64
	Width  float64
}

func (s *SymbolNode) ToNode() *html.Node {
	text := &html.Node{Type: html.TextNode, Data: s.Text}
	b := s.Box
	if s.Italic > 0 {
		b.Style = append(CSSStyle{{Name: "margin-right", Value: em(s.Italic)}}, b.Style...)
	}
	if len(b.Classes) == 0 && len(b.Style) == 0 {
		return text
	}
	n := b.toElement("span")
	n.AppendChild(text)
	return n
}

// SvgNode is an inline SVG image made of paths and lines.
type SvgNode struct {
	Box
	Children   []Node
	Attributes []html.Attribute
}

func (s *SvgNode) ToNode() *html.Node {
	n := newElement("svg")
	n.Namespace = "svg"
	setAttr(n, "xmlns", "http://www.w3.org/2000/svg")
	for _, a := range s.Attributes {
		setAttr(n, a.Key, a.Val)
	}
	for _, c := range s.Children {
		n.AppendChild(c.ToNode())
	}
	return n
}

// PathNode draws a named path from PathData, or Alternate when set.
type PathNode struct {
	Box
	Name      string
	Alternate string
}

func (p *PathNode) ToNode() *html.Node {
	n := newElement("path")
	n.Namespace = "svg"
	d := p.Alternate
	if d == "" {
		d = PathData[p.Name]
	}
	setAttr(n, "d", d)
	return n
}

// LineNode is an SVG line.
type LineNode struct {
	Box
	Attributes []html.Attribute
}

func (l *LineNode) ToNode() *html.Node {
	n := newElement("line")
	n.Namespace = "svg"
	n.Attr = append(n.Attr, l.Attributes...)
	return n
}

var (
	_ Node = (*Span)(nil)
	_ Node = (*Anchor)(nil)
	_ Node = (*Img)(nil)
	_ Node = (*Fragment)(nil)
	_ Node = (*SymbolNode)(nil)
	_ Node = (*SvgNode)(nil)
	_ Node = (*PathNode)(nil)
	_ Node = (*LineNode)(nil)
)

// children returns the child list of container boxes.
func children(n Node) []Node {
	switch n := n.(type) {
	case *Span:
		return n.Children
	case *Anchor:
		return n.Children
	case *Fragment:
		return n.Children
	}
	return nil
}
