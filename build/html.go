package build

import (
	"fmt"
	"slices"

	"github.com/dpotapov/go-katex/parse"
)

var (
	binLeftCanceller  = []string{"leftmost", "mbin", "mopen", "mrel", "mop", "mpunct"}
	binRightCanceller = []string{"rightmost", "mrel", "mclose", "mpunct"}
)

// groupKind says how buildExpression treats the expression boundaries.
type groupKind int

const (
	partialGroup groupKind = iota
	realGroup
	rootGroup
)

func firstClass(n Node) string {
	if c := n.box().Classes; len(c) > 0 {
		return c[0]
	}
	return ""
}

func isAtomClass(c string) bool {
	return slices.Contains(AtomClasses, c)
}

// buildExpression builds a list of nodes into boxes. For real groups it also
// cancels binary operators that cannot be binary and inserts the spacing
// between atoms. surrounding names the classes of the atoms around the
// group, "" for none.
func buildExpression(expression []parse.Node, options *Options, kind groupKind, surrounding [2]string) ([]Node, error) {
	var groups []Node
	for _, expr := range expression {
		out, err := buildGroup(expr, options, nil)
		if err != nil {
			return nil, err
		}
		if f, ok := out.(*Fragment); ok {
			groups = append(groups, f.Children...)
		} else {
			groups = append(groups, out)
		}
	}
	groups = tryCombineChars(groups)
	if kind == partialGroup {
		return groups, nil
	}

	glueOptions := options
	if len(expression) == 1 {
		switch n := expression[0].(type) {
		case *parse.Sizing:
			glueOptions = options.HavingSize(n.Size)
		case *parse.Styling:
			glueOptions = options.HavingStyle(StyleByName(n.Style))
		}
	}

	left, right := surrounding[0], surrounding[1]
	if left == "" {
		left = "leftmost"
	}
	if right == "" {
		right = "rightmost"
	}
	isRoot := kind == rootGroup

	dummyNext := makeSpan([]string{right}, nil, options, nil)
	prev := &traversal{node: makeSpan([]string{left}, nil, options, nil)}
	traverseNonSpaceNodes(&groups, func(node, prev Node) Node {
		prevType, typ := firstClass(prev), firstClass(node)
		if prevType == "mbin" && slices.Contains(binRightCanceller, typ) {
			prev.box().Classes[0] = "mord"
		} else if typ == "mbin" && slices.Contains(binLeftCanceller, prevType) {
			node.box().Classes[0] = "mord"
		}
		return nil
	}, prev, dummyNext, isRoot)

	prev = &traversal{node: makeSpan([]string{left}, nil, options, nil)}
	traverseNonSpaceNodes(&groups, func(node, prev Node) Node {
		prevType, typ := domType(prev, ""), domType(node, "")
		if prevType == "" || typ == "" {
			return nil
		}
		space := InterAtomSpace(prevType, typ, HasClass(node, "mtight"))
		if space.Unit == "" {
			return nil
		}
		return makeGlue(space, glueOptions)
	}, prev, dummyNext, isRoot)

	return groups, nil
}

type traversal struct {
	node        Node
	insertAfter func(Node)
}

// traverseNonSpaceNodes calls callback for every pair of adjacent non-space
// boxes, looking through partial groups, and inserts the returned box
// between them.
func traverseNonSpaceNodes(nodes *[]Node, callback func(node, prev Node) Node, prev *traversal, next Node, isRoot bool) {
	if next != nil {
		*nodes = append(*nodes, next)
	}
	i := 0
	for ; i < len(*nodes); i++ {
		node := (*nodes)[i]
		if kids := partialGroupChildren(node); kids != nil {
			traverseNonSpaceNodes(kids, callback, prev, nil, isRoot)
			continue
		}
		nonspace := !HasClass(node, "mspace")
		if nonspace {
			if result := callback(node, prev.node); result != nil {
				if prev.insertAfter != nil {
					prev.insertAfter(result)
				} else {
					*nodes = slices.Insert(*nodes, 0, result)
					i++
				}
			}
		}
		if nonspace {
			prev.node = node
		} else if isRoot && HasClass(node, "newline") {
			prev.node = makeSpan([]string{"leftmost"}, nil, nil, nil)
		}
		index := i
		prev.insertAfter = func(n Node) {
			*nodes = slices.Insert(*nodes, index+1, n)
			i++
		}
	}
	if next != nil {
		*nodes = (*nodes)[:len(*nodes)-1]
	}
}

// partialGroupChildren returns the child list of boxes that spacing looks
// through: fragments, links and enclosing spans.
func partialGroupChildren(n Node) *[]Node {
	switch n := n.(type) {
	case *Fragment:
		return &n.Children
	case *Anchor:
		return &n.Children
	case *Span:
		if HasClass(n, "enclosing") {
			return &n.Children
		}
	}
	return nil
}

func outermostNode(n Node, side string) Node {
	if kids := partialGroupChildren(n); kids != nil && len(*kids) > 0 {
		if side == "right" {
			return outermostNode((*kids)[len(*kids)-1], "right")
		}
		if side == "left" {
			return outermostNode((*kids)[0], "left")
		}
	}
	return n
}

// domType returns the atom class of a box, looking into partial groups from
// side ("left", "right" or "" for none).
func domType(n Node, side string) string {
	if n == nil {
		return ""
	}
	if side != "" {
		n = outermostNode(n, side)
	}
	if c := firstClass(n); isAtomClass(c) {
		return c
	}
	return ""
}

func makeNullDelimiter(options *Options, classes []string) *Span {
	cls := append(slices.Clone(classes), "nulldelimiter")
	return makeSpan(append(cls, options.BaseSizingClasses()...), nil, nil, nil)
}

// buildGroup builds one parse node. When baseOptions differ in size from
// options, the result is wrapped in a span switching sizes.
func buildGroup(group parse.Node, options, baseOptions *Options) (Node, error) {
	if group == nil {
		return makeSpan(nil, nil, nil, nil), nil
	}
	out, err := buildNode(group, options)
	if err != nil {
		return nil, err
	}
	if baseOptions != nil && options.Size != baseOptions.Size {
		span := makeSpan(options.SizingClasses(baseOptions), []Node{out}, options, nil)
		multiplier := options.SizeMultiplier / baseOptions.SizeMultiplier
		span.Height *= multiplier
		span.Depth *= multiplier
		out = span
	}
	return out, nil
}

func buildNode(group parse.Node, options *Options) (Node, error) {
	switch n := group.(type) {
	case *parse.MathOrd:
		return makeOrd(n.Text, n.Mode, options, "mathord")
	case *parse.TextOrd:
		return makeOrd(n.Text, n.Mode, options, "textord")
	case *parse.AccentToken:
		return mathsym(n.Text, n.Mode, options, []string{"mord"}), nil
	case *parse.OpToken:
		return mathsym(n.Text, n.Mode, options, []string{"mop"}), nil
	case *parse.Atom:
		return mathsym(n.Text, n.Mode, options, []string{"m" + string(n.Family)}), nil
	case *parse.Spacing:
		return htmlSpacing(n, options)
	case *parse.OrdGroup:
		return htmlOrdGroup(n, options)
	case *parse.SupSub:
		return htmlSupSub(n, options)
	case *parse.GenFrac:
		return htmlGenFrac(n, options)
	case *parse.Sqrt:
		return htmlSqrt(n, options)
	case *parse.Op:
		return htmlOp(n, nil, options)
	case *parse.OperatorName:
		return htmlOperatorName(n, nil, options)
	case *parse.Accent:
		return htmlAccent(n, nil, options)
	case *parse.AccentUnder:
		return htmlAccentUnder(n, options)
	case *parse.HorizBrace:
		return htmlHorizBrace(n, nil, options)
	case *parse.XArrow:
		return htmlXArrow(n, options)
	case *parse.LeftRight:
		return htmlLeftRight(n, options)
	case *parse.Middle:
		return htmlMiddle(n, options)
	case *parse.DelimSizing:
		return htmlDelimSizing(n, options)
	case *parse.Color:
		return htmlColor(n, options)
	case *parse.Styling:
		return htmlStyling(n, options)
	case *parse.Sizing:
		return htmlSizing(n, options)
	case *parse.Font:
		return buildGroup(n.Body, fontOptions(n, options), nil)
	case *parse.Text:
		return htmlText(n, options)
	case *parse.HBox:
		return htmlHBox(n, options)
	case *parse.Kern:
		return makeGlue(n.Dimension, options), nil
	case *parse.Lap:
		return htmlLap(n, options)
	case *parse.RaiseBox:
		return htmlRaiseBox(n, options)
	case *parse.Rule:
		return htmlRule(n, options), nil
	case *parse.Phantom:
		return htmlPhantom(n, options)
	case *parse.HPhantom:
		return htmlHPhantom(n, options)
	case *parse.VPhantom:
		return htmlVPhantom(n, options)
	case *parse.Smash:
		return htmlSmash(n, options)
	case *parse.MClass:
		return htmlMClass(n, options)
	case *parse.Overline:
		return htmlOverline(n, options)
	case *parse.Underline:
		return htmlUnderline(n, options)
	case *parse.VCenter:
		return htmlVCenter(n, options)
	case *parse.Href:
		return htmlHref(n, options)
	case *parse.HTML:
		return htmlHTML(n, options)
	case *parse.HTMLMathML:
		return htmlHTMLMathML(n, options)
	case *parse.IncludeGraphics:
		return htmlIncludeGraphics(n, options), nil
	case *parse.Verb:
		return htmlVerb(n, options), nil
	case *parse.Pmb:
		return htmlPmb(n, options)
	case *parse.MathChoice:
		return htmlMathChoice(n, options)
	case *parse.Cr:
		return htmlCr(n, options), nil
	case *parse.Enclose:
		return htmlEnclose(n, options)
	case *parse.Array:
		return htmlArray(n, options)
	case *parse.Tag:
		return htmlTagNode(n, options)
	}
	return nil, parse.NewParseError(fmt.Sprintf("Got group of unknown type: '%s'", group.Type()), group)
}

// buildHTMLUnbreakable wraps a run of boxes that must not be broken across
// lines, with a strut that gives the run its full height.
func buildHTMLUnbreakable(kids []Node, options *Options) *Span {
	body := makeSpan([]string{"base"}, kids, options, nil)
	strut := makeSpan([]string{"strut"}, nil, nil, nil)
	strut.setStyle("height", em(body.Height+body.Depth))
	if body.Depth != 0 {
		strut.setStyle("vertical-align", em(-body.Depth))
	}
	body.Children = slices.Insert(body.Children, 0, Node(strut))
	return body
}

// BuildHTML builds the HTML box tree of a parse tree.
func BuildHTML(tree []parse.Node, options *Options) (*Span, error) {
	var tag []parse.Node
	if len(tree) == 1 {
		if t, ok := tree[0].(*parse.Tag); ok {
			tag = t.Tag
			tree = t.Body
		}
	}

	expression, err := buildExpression(tree, options, rootGroup, [2]string{})
	if err != nil {
		return nil, err
	}

	var eqnNum Node
	if len(expression) == 2 && HasClass(expression[1], "tag") {
		eqnNum = expression[1]
		expression = expression[:1]
	}

	var kids, parts []Node
	for i := 0; i < len(expression); i++ {
		parts = append(parts, expression[i])
		switch {
		case HasClass(expression[i], "mbin") || HasClass(expression[i], "mrel") || HasClass(expression[i], "allowbreak"):
			nobreak := false
			for i < len(expression)-1 && HasClass(expression[i+1], "mspace") && !HasClass(expression[i+1], "newline") {
				i++
				parts = append(parts, expression[i])
				if HasClass(expression[i], "nobreak") {
					nobreak = true
				}
			}
			if !nobreak {
				kids = append(kids, buildHTMLUnbreakable(parts, options))
				parts = nil
			}
		case HasClass(expression[i], "newline"):
			parts = parts[:len(parts)-1]
			if len(parts) > 0 {
				kids = append(kids, buildHTMLUnbreakable(parts, options))
				parts = nil
			}
			kids = append(kids, expression[i])
		}
	}
	if len(parts) > 0 {
		kids = append(kids, buildHTMLUnbreakable(parts, options))
	}

	var tagChild *Span
	if tag != nil {
		tagExpr, err := buildExpression(tag, options, realGroup, [2]string{})
		if err != nil {
			return nil, err
		}
		tagChild = buildHTMLUnbreakable(tagExpr, options)
		tagChild.Classes = []string{"tag"}
		kids = append(kids, tagChild)
	} else if eqnNum != nil {
		kids = append(kids, eqnNum)
	}

	htmlNode := makeSpan([]string{"katex-html"}, kids, nil, nil)
	htmlNode.SetAttribute("aria-hidden", "true")

	if tagChild != nil {
		strut := tagChild.Children[0].box()
		strut.setStyle("height", em(htmlNode.Height+htmlNode.Depth))
		if htmlNode.Depth != 0 {
			strut.setStyle("vertical-align", em(-htmlNode.Depth))
		}
	}
	return htmlNode, nil
}

// htmlTagNode builds a \tag that appears below the root, e.g. inside a
// group.
func htmlTagNode(n *parse.Tag, options *Options) (Node, error) {
	body, err := buildExpression(n.Body, options, realGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	tag, err := buildExpression(n.Tag, options, realGroup, [2]string{})
	if err != nil {
		return nil, err
	}
	tagSpan := makeSpan([]string{"tag"}, tag, options, nil)
	return makeFragment(append(body, tagSpan)), nil
}
