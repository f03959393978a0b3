package parse

// SourceLocation is a half-open byte range [Start, End) into the input
// that produced a token or a parse node.
type SourceLocation struct {
	Input string // the full text the offsets point into
	Start int    // byte offset of the first byte
	End   int    // byte offset just past the last byte
}

// Location implements Locator.
func (l *SourceLocation) Location() *SourceLocation { return l }

// Text returns the source substring covered by the location.
func (l *SourceLocation) Text() string {
	if l == nil {
		return ""
	}
	return l.Input[l.Start:l.End]
}

// RangeLocation merges the locations of two locators into one that spans from
// the start of first to the end of second. It returns nil when either location
// is unknown or the locations come from different inputs.
func RangeLocation(first, second Locator) *SourceLocation {
	a := locationOf(first)
	if second == nil {
		return a
	}
	b := locationOf(second)
	if a == nil || b == nil || a.Input != b.Input {
		return nil
	}
	return &SourceLocation{Input: a.Input, Start: a.Start, End: b.End}
}

// Locator is anything that may carry a source location: tokens, parse nodes
// and locations themselves.
type Locator interface {
	Location() *SourceLocation
}

func locationOf(l Locator) *SourceLocation {
	if l == nil {
		return nil
	}
	return l.Location()
}

// Token is the unit produced by the Lexer and consumed by the MacroExpander
// and Parser.
type Token struct {
	Text string
	Loc  *SourceLocation

	// NoExpand suppresses macro expansion of this token (\noexpand).
	NoExpand bool
	// TreatAsRelax makes an unexpanded token behave as \relax once it
	// reaches the parser.
	TreatAsRelax bool
}

// NewToken creates a token with an optional location.
func NewToken(text string, loc *SourceLocation) *Token {
	return &Token{Text: text, Loc: loc}
}

// Location implements Locator.
func (t *Token) Location() *SourceLocation {
	if t == nil {
		return nil
	}
	return t.Loc
}

// Range returns a new token with the given text spanning from t to end.
func (t *Token) Range(end *Token, text string) *Token {
	return NewToken(text, RangeLocation(t, end))
}
