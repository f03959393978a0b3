package parse

import "fmt"

// ArgType selects how the parser reads a function argument.
type ArgType string

const (
	ArgOriginal  ArgType = ""
	ArgColor     ArgType = "color"
	ArgSize      ArgType = "size"
	ArgURL       ArgType = "url"
	ArgRaw       ArgType = "raw"
	ArgMath      ArgType = "math"
	ArgText      ArgType = "text"
	ArgHBox      ArgType = "hbox"
	ArgPrimitive ArgType = "primitive"
)

// FunctionContext is passed to function handlers.
type FunctionContext struct {
	FuncName         string
	Parser           *Parser
	Token            *Token
	BreakOnTokenText string
}

// FunctionHandler builds the node for a function call from its parsed
// arguments. Optional arguments that were not given are nil.
type FunctionHandler func(ctx *FunctionContext, args, optArgs []Node) (Node, error)

// FunctionSpec describes a function: how many arguments it takes, where it
// may appear, and how to build its node.
type FunctionSpec struct {
	// Type is the node type the handler produces.
	Type            string
	NumArgs         int
	NumOptionalArgs int
	// ArgTypes lists the type of every argument, optional ones first.
	ArgTypes []ArgType
	// AllowedInArgument lets the function appear as a bare argument,
	// e.g. \frac\frac12 3.
	AllowedInArgument bool
	AllowedInText     bool
	// TextOnly forbids the function in math mode.
	TextOnly bool
	// Infix functions such as \over apply to everything before them in the
	// enclosing group.
	Infix bool
	// Primitive functions are not expandable by \noexpand or \edef, and their
	// untyped arguments are parsed as single groups.
	Primitive bool
	Handler   FunctionHandler
}

// functions is the function table. It is filled by init and read-only after.
var functions = make(map[string]*FunctionSpec)

func init() {
	defineAccentFunctions()
	defineArrowFunctions()
	defineCharFunctions()
	defineColorFunctions()
	defineCrFunctions()
	defineDefFunctions()
	defineDelimFunctions()
	defineEncloseFunctions()
	defineEnvironmentFunctions()
	defineFontFunctions()
	defineFracFunctions()
	defineBoxFunctions()
	defineHrefFunctions()
	defineHTMLFunctions()
	defineKernFunctions()
	defineMathFunctions()
	defineClassFunctions()
	defineOpFunctions()
	defineSizingFunctions()
	defineTextFunctions()
}

// DefineFunction registers spec under each of names. It must only be called
// during program initialization, before any parse runs.
func DefineFunction(spec FunctionSpec, names ...string) {
	for _, name := range names {
		s := spec
		functions[name] = &s
	}
}

// LookupFunction returns the function registered under name.
func LookupFunction(name string) (*FunctionSpec, bool) {
	f, ok := functions[name]
	return f, ok
}

// NormalizeArgument unwraps a one-element ordgroup.
func NormalizeArgument(n Node) Node {
	if g, ok := n.(*OrdGroup); ok && len(g.Body) == 1 {
		return g.Body[0]
	}
	return n
}

// isSymbolNode reports whether n is backed by a symbol table entry.
func isSymbolNode(n Node) bool {
	_, ok := SymbolText(n)
	return ok
}

// BinRelClass returns "mbin" or "mrel" if n is (a group starting with) a
// binary or relation atom, and "mord" otherwise.
func BinRelClass(n Node) string {
	atom := n
	if g, ok := n.(*OrdGroup); ok && len(g.Body) > 0 {
		atom = g.Body[0]
	}
	if a, ok := atom.(*Atom); ok && (a.Family == FamilyBin || a.Family == FamilyRel) {
		return "m" + string(a.Family)
	}
	return "mord"
}

// BaseElem strips single-element groups, colors and fonts from n.
func BaseElem(n Node) Node {
	switch g := n.(type) {
	case *OrdGroup:
		if len(g.Body) == 1 {
			return BaseElem(g.Body[0])
		}
	case *Color:
		if len(g.Body) == 1 {
			return BaseElem(g.Body[0])
		}
	case *Font:
		return BaseElem(g.Body)
	}
	return n
}

// IsCharacterBox reports whether n renders as a single character.
func IsCharacterBox(n Node) bool {
	switch BaseElem(n).(type) {
	case *MathOrd, *TextOrd, *Atom:
		return true
	}
	return false
}

// nodeTypeError reports a node of an unexpected type in an argument.
func nodeTypeError(n Node, want string) error {
	if n == nil {
		return NewParseError(fmt.Sprintf("Expected node of type %s, but got nothing", want), nil)
	}
	return NewParseError(fmt.Sprintf("Expected node of type %s, but got node of type %s", want, n.Type()), n)
}

// assertNode returns n as a T or a ParseError naming the expected type.
func assertNode[T Node](n Node, want string) (T, error) {
	t, ok := n.(T)
	if !ok {
		var zero T
		return zero, nodeTypeError(n, want)
	}
	return t, nil
}
