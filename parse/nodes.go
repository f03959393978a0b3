package parse

// Mode is the parsing mode.
type Mode string

const (
	MathMode Mode = "math"
	TextMode Mode = "text"
)

// Node is a parse tree node. The set of node types is closed: every
// implementation lives in this package, and builders dispatch on the
// concrete type.
type Node interface {
	Locator
	// Type returns the node type tag, e.g. "ordgroup" or "supsub".
	Type() string
	base() *Base
}

// Base carries the fields shared by every node.
type Base struct {
	Mode Mode
	Loc  *SourceLocation
}

func (b *Base) base() *Base { return b }

// Location implements Locator.
func (b *Base) Location() *SourceLocation {
	if b == nil {
		return nil
	}
	return b.Loc
}

// ModeOf returns the mode of n.
func ModeOf(n Node) Mode {
	if n == nil {
		return MathMode
	}
	return n.base().Mode
}

// Measurement is a number with a TeX unit, e.g. {3, "pt"}.
type Measurement struct {
	Number float64
	Unit   string
}

// AtomFamily is the class of an atom symbol.
type AtomFamily string

const (
	FamilyBin   AtomFamily = "bin"
	FamilyClose AtomFamily = "close"
	FamilyInner AtomFamily = "inner"
	FamilyOpen  AtomFamily = "open"
	FamilyPunct AtomFamily = "punct"
	FamilyRel   AtomFamily = "rel"
)

// Symbol-backed nodes.
type (
	// Atom is a symbol with an atom family used for spacing.
	Atom struct {
		Base
		Family AtomFamily
		Text   string
	}
	// MathOrd is an ordinary math symbol, typically an italic letter.
	MathOrd struct {
		Base
		Text string
	}
	// TextOrd is an upright ordinary symbol.
	TextOrd struct {
		Base
		Text string
	}
	// Spacing is a space symbol such as "~" or "\ ".
	Spacing struct {
		Base
		Text string
	}
	// AccentToken is an accent glyph used as an accent label.
	AccentToken struct {
		Base
		Text string
	}
	// OpToken is an operator glyph.
	OpToken struct {
		Base
		Text string
	}
)

// Structural nodes.
type (
	// OrdGroup is a braced group or argument.
	OrdGroup struct {
		Base
		Body []Node
		// Semisimple marks a \begingroup...\endgroup group, which does not
		// introduce inter-atom spacing boundaries.
		Semisimple bool
	}
	SupSub struct {
		Base
		Nucleus Node
		Sup     Node
		Sub     Node
	}
	GenFrac struct {
		Base
		Continued  bool
		Numer      Node
		Denom      Node
		HasBarLine bool
		LeftDelim  string
		RightDelim string
		// Size is one of "display", "text", "script", "scriptscript" or
		// "auto".
		Size    string
		BarSize *Measurement
	}
	Sqrt struct {
		Base
		Body  Node
		Index Node
	}
	// Op is a big operator or named function. Either Name or Body is set.
	Op struct {
		Base
		Limits             bool
		AlwaysHandleSupSub bool
		SuppressBaseShift  bool
		ParentIsSupSub     bool
		Symbol             bool
		Name               string
		Body               []Node
	}
	OperatorName struct {
		Base
		Body               []Node
		AlwaysHandleSupSub bool
		Limits             bool
		ParentIsSupSub     bool
	}
	Accent struct {
		Base
		Label      string
		IsStretchy bool
		IsShifty   bool
		Nucleus    Node
	}
	AccentUnder struct {
		Base
		Label      string
		IsStretchy bool
		IsShifty   bool
		Nucleus    Node
	}
	LeftRight struct {
		Base
		Body       []Node
		Left       string
		Right      string
		RightColor string
	}
	// LeftRightRight is the intermediate result of \right.
	LeftRightRight struct {
		Base
		Delim string
		Color string
	}
	Middle struct {
		Base
		Delim string
	}
	DelimSizing struct {
		Base
		Size   int
		MClass string
		Delim  string
	}
	Color struct {
		Base
		Color string
		Body  []Node
	}
	ColorToken struct {
		Base
		Color string
	}
	Styling struct {
		Base
		// Style is one of "display", "text", "script", "scriptscript".
		Style string
		Body  []Node
	}
	Sizing struct {
		Base
		Size int
		Body []Node
	}
	Font struct {
		Base
		Font string
		Body Node
	}
	Text struct {
		Base
		Body []Node
		Font string
	}
	HBox struct {
		Base
		Body []Node
	}
	Kern struct {
		Base
		Dimension Measurement
	}
	Lap struct {
		Base
		// Alignment is "llap", "rlap" or "clap".
		Alignment string
		Body      Node
	}
	RaiseBox struct {
		Base
		Dy   Measurement
		Body Node
	}
	Rule struct {
		Base
		Shift  *Measurement
		Width  Measurement
		Height Measurement
	}
	Phantom struct {
		Base
		Body []Node
	}
	HPhantom struct {
		Base
		Body Node
	}
	VPhantom struct {
		Base
		Body Node
	}
	Smash struct {
		Base
		Body        Node
		SmashHeight bool
		SmashDepth  bool
	}
	MClass struct {
		Base
		MClass         string
		Body           []Node
		IsCharacterBox bool
	}
	Overline struct {
		Base
		Body Node
	}
	Underline struct {
		Base
		Body Node
	}
	VCenter struct {
		Base
		Body Node
	}
	Href struct {
		Base
		Href string
		Body []Node
	}
	URL struct {
		Base
		URL string
	}
	HTML struct {
		Base
		Attributes map[string]string
		Body       []Node
	}
	HTMLMathML struct {
		Base
		HTML   []Node
		MathML []Node
	}
	IncludeGraphics struct {
		Base
		Alt         string
		Width       Measurement
		Height      Measurement
		TotalHeight Measurement
		Src         string
	}
	Verb struct {
		Base
		Body string
		Star bool
	}
	Pmb struct {
		Base
		MClass string
		Body   []Node
	}
	MathChoice struct {
		Base
		Display      []Node
		Text         []Node
		Script       []Node
		ScriptScript []Node
	}
	Tag struct {
		Base
		Body []Node
		Tag  []Node
	}
	Cr struct {
		Base
		NewLine bool
		Size    *Measurement
	}
	Environment struct {
		Base
		Name      string
		NameGroup Node
	}
	// Internal is produced by commands that only have side effects, such
	// as \def. It is dropped from expressions.
	Internal struct {
		Base
	}
	Raw struct {
		Base
		String string
	}
	Size struct {
		Base
		Value   Measurement
		IsBlank bool
	}
	// Infix is the placeholder for \over and friends until the enclosing
	// group is rewritten into a fraction.
	Infix struct {
		Base
		ReplaceWith string
		Size        *Measurement
		Token       *Token
	}
	Enclose struct {
		Base
		Label           string
		BackgroundColor string
		BorderColor     string
		Body            Node
	}
	XArrow struct {
		Base
		Label string
		Body  Node
		Below Node
	}
	HorizBrace struct {
		Base
		Label   string
		IsOver  bool
		Nucleus Node
	}
	Array struct {
		Base
		// ColSeparationType is "", "align", "alignat", "gather", "small" or
		// "CD".
		ColSeparationType string
		// HSkipBeforeAndAfter adds \arraycolsep before the first and after
		// the last column.
		HSkipBeforeAndAfter bool
		AddJot              bool
		Cols                []AlignSpec
		ArrayStretch        float64
		Body                [][]Node
		RowGaps             []*Measurement
		HLinesBeforeRow     [][]bool
		// Tags holds one entry per row when the environment numbers its
		// rows.
		Tags  []ArrayTag
		Leqno bool
	}
)

// AlignSpec describes one column of an array: either a cell column or a
// separator.
type AlignSpec struct {
	// Type is "align" or "separator".
	Type string
	// Align is "l", "c" or "r" for cell columns.
	Align string
	// Separator is "|" or ":" for separator columns.
	Separator string
	PreGap    *float64
	PostGap   *float64
}

// ArrayTag is the equation tag of one array row: automatic numbering, none,
// or explicit content.
type ArrayTag struct {
	Auto bool
	Body []Node
}

func (*Atom) Type() string            { return "atom" }
func (*MathOrd) Type() string         { return "mathord" }
func (*TextOrd) Type() string         { return "textord" }
func (*Spacing) Type() string         { return "spacing" }
func (*AccentToken) Type() string     { return "accent-token" }
func (*OpToken) Type() string         { return "op-token" }
func (*OrdGroup) Type() string        { return "ordgroup" }
func (*SupSub) Type() string          { return "supsub" }
func (*GenFrac) Type() string         { return "genfrac" }
func (*Sqrt) Type() string            { return "sqrt" }
func (*Op) Type() string              { return "op" }
func (*OperatorName) Type() string    { return "operatorname" }
func (*Accent) Type() string          { return "accent" }
func (*AccentUnder) Type() string     { return "accentUnder" }
func (*LeftRight) Type() string       { return "leftright" }
func (*LeftRightRight) Type() string  { return "leftright-right" }
func (*Middle) Type() string          { return "middle" }
func (*DelimSizing) Type() string     { return "delimsizing" }
func (*Color) Type() string           { return "color" }
func (*ColorToken) Type() string      { return "color-token" }
func (*Styling) Type() string         { return "styling" }
func (*Sizing) Type() string          { return "sizing" }
func (*Font) Type() string            { return "font" }
func (*Text) Type() string            { return "text" }
func (*HBox) Type() string            { return "hbox" }
func (*Kern) Type() string            { return "kern" }
func (*Lap) Type() string             { return "lap" }
func (*RaiseBox) Type() string        { return "raisebox" }
func (*Rule) Type() string            { return "rule" }
func (*Phantom) Type() string         { return "phantom" }
func (*HPhantom) Type() string        { return "hphantom" }
func (*VPhantom) Type() string        { return "vphantom" }
func (*Smash) Type() string           { return "smash" }
func (*MClass) Type() string          { return "mclass" }
func (*Overline) Type() string        { return "overline" }
func (*Underline) Type() string       { return "underline" }
func (*VCenter) Type() string         { return "vcenter" }
func (*Href) Type() string            { return "href" }
func (*URL) Type() string             { return "url" }
func (*HTML) Type() string            { return "html" }
func (*HTMLMathML) Type() string      { return "htmlmathml" }
func (*IncludeGraphics) Type() string { return "includegraphics" }
func (*Verb) Type() string            { return "verb" }
func (*Pmb) Type() string             { return "pmb" }
func (*MathChoice) Type() string      { return "mathchoice" }
func (*Tag) Type() string             { return "tag" }
func (*Cr) Type() string              { return "cr" }
func (*Environment) Type() string     { return "environment" }
func (*Internal) Type() string        { return "internal" }
func (*Raw) Type() string             { return "raw" }
func (*Size) Type() string            { return "size" }
func (*Infix) Type() string           { return "infix" }
func (*Enclose) Type() string         { return "enclose" }
func (*XArrow) Type() string          { return "xArrow" }
func (*HorizBrace) Type() string      { return "horizBrace" }
func (*Array) Type() string           { return "array" }

// SymbolText returns the text of a symbol-backed node.
func SymbolText(n Node) (string, bool) {
	switch n := n.(type) {
	case *Atom:
		return n.Text, true
	case *MathOrd:
		return n.Text, true
	case *TextOrd:
		return n.Text, true
	case *Spacing:
		return n.Text, true
	case *AccentToken:
		return n.Text, true
	case *OpToken:
		return n.Text, true
	}
	return "", false
}

// NewSymbolNode creates the node for a symbol of the given group.
func NewSymbolNode(group string, mode Mode, text string, loc *SourceLocation) Node {
	b := Base{Mode: mode, Loc: loc}
	switch group {
	case "mathord":
		return &MathOrd{Base: b, Text: text}
	case "spacing":
		return &Spacing{Base: b, Text: text}
	case "accent-token":
		return &AccentToken{Base: b, Text: text}
	case "op-token":
		return &OpToken{Base: b, Text: text}
	case "bin", "close", "inner", "open", "punct", "rel":
		return &Atom{Base: b, Family: AtomFamily(group), Text: text}
	}
	return &TextOrd{Base: b, Text: text}
}

// OrdArgument returns the body of an ordgroup, or n itself as a one-element
// list.
func OrdArgument(n Node) []Node {
	if g, ok := n.(*OrdGroup); ok {
		if g.Body == nil {
			return []Node{}
		}
		return g.Body
	}
	return []Node{n}
}
