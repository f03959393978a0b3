package parse

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnbalancedNamespace is wrapped by the error returned when a macro
	// group is closed more times than it was opened.
	ErrUnbalancedNamespace = errors.New("unbalanced namespace destruction")

	// ErrTooManyExpansions is wrapped by the error returned when macro
	// expansion exceeds Settings.MaxExpand.
	ErrTooManyExpansions = errors.New("too many expansions")
)

// contextRunes is how many runes of surrounding input are shown on either
// side of the offending text in an error message.
const contextRunes = 15

// ParseError is returned for malformed input. When the failing token or node
// carries a source location, the message pinpoints the offending text.
type ParseError struct {
	// RawMessage is the message without the location suffix.
	RawMessage string
	// Position is the byte offset of the offending text, or -1.
	Position int
	// Length is the byte length of the offending text.
	Length int

	msg string
	err error
}

// NewParseError creates a ParseError anchored at the location of loc (which
// may be nil).
func NewParseError(message string, loc Locator) *ParseError {
	return newParseError(message, loc, nil)
}

// Errorf creates a ParseError with a formatted message.
func Errorf(loc Locator, format string, args ...any) *ParseError {
	return newParseError(fmt.Sprintf(format, args...), loc, nil)
}

func newParseError(message string, loc Locator, cause error) *ParseError {
	e := &ParseError{RawMessage: message, Position: -1, err: cause}

	var b strings.Builder
	b.WriteString("KaTeX parse error: ")
	b.WriteString(message)

	if l := locationOf(loc); l != nil && l.Start <= l.End && l.End <= len(l.Input) {
		input := l.Input
		start, end := l.Start, l.End
		e.Position, e.Length = start, end-start

		if start == len(input) {
			b.WriteString(" at end of input: ")
		} else {
			fmt.Fprintf(&b, " at position %d: ", utf8.RuneCountInString(input[:start])+1)
		}

		left := input[:start]
		if n := utf8.RuneCountInString(left); n > contextRunes {
			left = "…" + lastRunes(left, contextRunes)
		}
		right := input[end:]
		if n := utf8.RuneCountInString(right); n > contextRunes {
			right = firstRunes(right, contextRunes) + "…"
		}

		b.WriteString(left)
		for _, r := range input[start:end] {
			b.WriteRune(r)
			b.WriteRune('\u0332')
		}
		b.WriteString(right)
	}

	e.msg = b.String()
	return e
}

func (e *ParseError) Error() string {
	return e.msg
}

func (e *ParseError) Unwrap() error {
	return e.err
}

func lastRunes(s string, n int) string {
	i := len(s)
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[i:]
}

func firstRunes(s string, n int) string {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
