package parse

import (
	"strings"
	"unicode/utf8"
)

// Category codes the lexer and expander care about.
const (
	CatcodeOther   = 12
	CatcodeActive  = 13
	CatcodeComment = 14
)

// Lexer splits an input string into tokens. It recognizes, in order:
// whitespace runs, control spaces, single characters with trailing
// combining marks, \verb literals, control words (eating trailing
// whitespace) and control symbols.
type Lexer struct {
	input    string
	settings *Settings
	catcodes map[string]int
	pos      int
}

// NewLexer creates a lexer over input.
func NewLexer(input string, settings *Settings) *Lexer {
	if settings == nil {
		settings = DefaultSettings()
	}
	return &Lexer{
		input:    input,
		settings: settings,
		catcodes: map[string]int{
			"%": CatcodeComment,
			"~": CatcodeActive,
		},
	}
}

// Input returns the text being tokenized.
func (l *Lexer) Input() string { return l.input }

// SetCatcode changes the category code of a single character.
func (l *Lexer) SetCatcode(char string, code int) {
	l.catcodes[char] = code
}

// Catcode returns the category code of char, if it has a non-default one.
func (l *Lexer) Catcode(char string) (int, bool) {
	c, ok := l.catcodes[char]
	return c, ok
}

// Lex returns the next token. At the end of input it returns a token with the
// text "EOF".
func (l *Lexer) Lex() (*Token, error) {
	for {
		pos := l.pos
		if pos >= len(l.input) {
			return NewToken("EOF", l.loc(len(l.input), len(l.input))), nil
		}

		text, end, ok := l.scan(pos)
		if !ok {
			r, size := utf8.DecodeRuneInString(l.input[pos:])
			return nil, Errorf(NewToken(string(r), l.loc(pos, pos+size)), "Unexpected character: '%c'", r)
		}
		l.pos = end

		if l.catcodes[text] == CatcodeComment {
			nl := strings.IndexByte(l.input[l.pos:], '\n')
			if nl < 0 {
				l.pos = len(l.input)
				err := l.settings.ReportNonstrict("commentAtEnd",
					"% comment has no terminating newline; LaTeX would fail because of commenting the end of math mode (e.g. $)", nil)
				if err != nil {
					return nil, err
				}
			} else {
				l.pos += nl + 1
			}
			continue
		}

		return NewToken(text, l.loc(pos, end)), nil
	}
}

func (l *Lexer) loc(start, end int) *SourceLocation {
	return &SourceLocation{Input: l.input, Start: start, End: end}
}

// scan matches one token at pos and returns its text and end offset.
func (l *Lexer) scan(pos int) (string, int, bool) {
	s := l.input
	c := s[pos]

	if isSpace(c) {
		end := pos + 1
		for end < len(s) && isSpace(s[end]) {
			end++
		}
		return " ", end, true
	}

	if c != '\\' {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !isSingleChar(r) || (r == utf8.RuneError && size == 1) {
			return "", 0, false
		}
		end := skipCombiningMarks(s, pos+size)
		return s[pos:end], end, true
	}

	// control space: \ followed by a newline, or blanks with at most one
	// newline, then any further blanks
	if end, ok := scanControlSpace(s, pos+1); ok {
		return "\\ ", end, true
	}

	if strings.HasPrefix(s[pos:], "\\verb") {
		if end, ok := scanVerb(s, pos+5); ok {
			return s[pos:end], end, true
		}
	}

	end := pos + 1
	for end < len(s) && isLetter(s[end]) {
		end++
	}
	if end > pos+1 {
		name := s[pos:end]
		for end < len(s) && isSpace(s[end]) {
			end++
		}
		return name, end, true
	}

	if pos+1 >= len(s) {
		return "", 0, false
	}
	_, size := utf8.DecodeRuneInString(s[pos+1:])
	end = pos + 1 + size
	return s[pos:end], end, true
}

func scanControlSpace(s string, i int) (int, bool) {
	if i >= len(s) {
		return 0, false
	}
	switch {
	case s[i] == '\n':
		i++
	case isBlank(s[i]):
		for i < len(s) && isBlank(s[i]) {
			i++
		}
		if i < len(s) && s[i] == '\n' {
			i++
		}
	default:
		return 0, false
	}
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	return i, true
}

// scanVerb matches the remainder of \verb or \verb* starting just after
// "\verb": an optional star, a delimiter, and the shortest run without a
// newline up to the repeated delimiter.
func scanVerb(s string, i int) (int, bool) {
	if i >= len(s) {
		return 0, false
	}
	if s[i] == '*' {
		if end, ok := scanVerbBody(s, i+1, false); ok {
			return end, true
		}
	}
	return scanVerbBody(s, i, true)
}

func scanVerbBody(s string, i int, unstarred bool) (int, bool) {
	if i >= len(s) {
		return 0, false
	}
	delim, size := utf8.DecodeRuneInString(s[i:])
	if unstarred && (delim == '*' || (delim < utf8.RuneSelf && isLetter(byte(delim)) && delim != '@')) {
		return 0, false
	}
	j := i + size
	for j < len(s) {
		r, n := utf8.DecodeRuneInString(s[j:])
		j += n
		if r == delim {
			return j, true
		}
		if r == '\n' {
			return 0, false
		}
	}
	return 0, false
}

func skipCombiningMarks(s string, i int) int {
	for i < len(s) {
		r, n := utf8.DecodeRuneInString(s[i:])
		if !isCombiningMark(r) {
			break
		}
		i += n
	}
	return i
}

func isSpace(c byte) bool { return c == ' ' || c == '\r' || c == '\n' || c == '\t' }

func isBlank(c byte) bool { return c == ' ' || c == '\r' || c == '\t' }

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '@'
}

func isCombiningMark(r rune) bool { return r >= 0x0300 && r <= 0x036f }

// isSingleChar reports whether r may start a single-character token.
func isSingleChar(r rune) bool {
	switch {
	case r >= '!' && r <= '[':
		return true
	case r >= ']' && r <= 0x2027:
		return true
	case r >= 0x202a && r <= 0xd7ff:
		return true
	case r >= 0xf900 && r <= 0xffff:
		return true
	case r >= 0x10000:
		return true
	}
	return false
}
