package parse

import (
	"strings"
)

// Macro is a macro definition. Exactly one of its forms is used, checked in
// the order Func, Expansion, Text.
type Macro struct {
	// Text is replacement text; its argument count is the highest #n
	// placeholder it uses.
	Text string
	// Expansion is a pre-lexed replacement.
	Expansion *MacroExpansion
	// Func computes the replacement at expansion time. It may consume
	// tokens from the expander and returns a Macro with Text or Expansion
	// set.
	Func func(ctx *MacroExpander) (*Macro, error)
}

// MacroExpansion is a lexed macro body.
type MacroExpansion struct {
	// Tokens holds the body in reverse order, ready to be pushed onto the
	// token stack.
	Tokens  []*Token
	NumArgs int
	// Delimiters lists, for \def-style macros, the literal token texts
	// that precede the first argument (index 0) and follow each argument.
	Delimiters [][]string
	// Unexpandable marks a macro created by \let that aliases a primitive.
	Unexpandable bool
}

// implicitCommands are control sequences that are neither macros, functions
// nor symbols but are handled directly by the parser.
var implicitCommands = map[string]bool{
	"^":          true,
	"_":          true,
	"\\limits":   true,
	"\\nolimits": true,
}

// MacroExpander is a token stream with macro expansion. Tokens are pulled
// lazily from a Lexer onto a stack; expansion replaces the top of the stack
// with a macro body.
type MacroExpander struct {
	settings       *Settings
	expansionCount int
	lexer          *Lexer
	macros         *Namespace[*Macro]
	mode           Mode
	stack          []*Token
}

// NewMacroExpander creates an expander over input. User macros from
// settings shadow the builtin macros.
func NewMacroExpander(input string, settings *Settings, mode Mode) *MacroExpander {
	if settings == nil {
		settings = DefaultSettings()
	}
	if settings.Macros == nil {
		settings.Macros = make(map[string]*Macro)
	}
	m := &MacroExpander{
		settings: settings,
		macros:   NewNamespace(builtinMacros, settings.Macros),
		mode:     mode,
	}
	m.Feed(input)
	return m
}

// Feed replaces the input with a new string.
func (m *MacroExpander) Feed(input string) {
	m.lexer = NewLexer(input, m.settings)
}

// Lexer returns the lexer currently feeding the expander.
func (m *MacroExpander) Lexer() *Lexer { return m.lexer }

// Macros returns the macro namespace.
func (m *MacroExpander) Macros() *Namespace[*Macro] { return m.macros }

// Settings returns the expander settings.
func (m *MacroExpander) Settings() *Settings { return m.settings }

// Mode returns the current parsing mode.
func (m *MacroExpander) Mode() Mode { return m.mode }

// SwitchMode changes the parsing mode.
func (m *MacroExpander) SwitchMode(mode Mode) { m.mode = mode }

// ExpansionCount returns the number of expansions performed so far.
func (m *MacroExpander) ExpansionCount() int { return m.expansionCount }

func (m *MacroExpander) BeginGroup()     { m.macros.BeginGroup() }
func (m *MacroExpander) EndGroup() error { return m.macros.EndGroup() }
func (m *MacroExpander) EndGroups()      { m.macros.EndGroups() }

// GroupDepth returns the number of open macro groups.
func (m *MacroExpander) GroupDepth() int { return m.macros.Depth() }

// Future returns the topmost token on the stack without removing it,
// lexing a new one if the stack is empty.
func (m *MacroExpander) Future() (*Token, error) {
	if len(m.stack) == 0 {
		tok, err := m.lexer.Lex()
		if err != nil {
			return nil, err
		}
		m.stack = append(m.stack, tok)
	}
	return m.stack[len(m.stack)-1], nil
}

// PopToken removes and returns the topmost token.
func (m *MacroExpander) PopToken() (*Token, error) {
	tok, err := m.Future()
	if err != nil {
		return nil, err
	}
	m.stack = m.stack[:len(m.stack)-1]
	return tok, nil
}

// PushToken pushes tok onto the stack.
func (m *MacroExpander) PushToken(tok *Token) {
	m.stack = append(m.stack, tok)
}

// PushTokens pushes tokens, given in reverse order, onto the stack.
func (m *MacroExpander) PushTokens(tokens []*Token) {
	m.stack = append(m.stack, tokens...)
}

// ScanArgument reads one argument and pushes its tokens back onto the stack
// followed by an EOF marker, so the parser can parse it in place. An optional
// argument is one in square brackets; if absent, nil is returned. The
// returned token spans the argument source.
func (m *MacroExpander) ScanArgument(optional bool) (*Token, error) {
	var arg *Arg
	var start *Token
	if optional {
		if err := m.ConsumeSpaces(); err != nil {
			return nil, err
		}
		next, err := m.Future()
		if err != nil {
			return nil, err
		}
		if next.Text != "[" {
			return nil, nil
		}
		if start, err = m.PopToken(); err != nil {
			return nil, err
		}
		if arg, err = m.ConsumeArg([]string{"]"}); err != nil {
			return nil, err
		}
	} else {
		var err error
		if arg, err = m.ConsumeArg(nil); err != nil {
			return nil, err
		}
		start = arg.Start
	}

	m.PushToken(NewToken("EOF", arg.End.Loc))
	m.PushTokens(arg.Tokens)
	return start.Range(arg.End, ""), nil
}

// ConsumeSpaces pops space tokens.
func (m *MacroExpander) ConsumeSpaces() error {
	for {
		tok, err := m.Future()
		if err != nil {
			return err
		}
		if tok.Text != " " {
			return nil
		}
		m.stack = m.stack[:len(m.stack)-1]
	}
}

// Arg is a consumed macro argument.
type Arg struct {
	Tokens []*Token // reverse order
	Start  *Token
	End    *Token
}

// ConsumeArg reads one argument. Without delimiters it reads a single token
// or a brace-balanced group; with delimiters it reads up to the first
// occurrence of the delimiter sequence at brace depth zero. One pair of outer
// braces is stripped when they enclose the whole argument.
func (m *MacroExpander) ConsumeArg(delims []string) (*Arg, error) {
	var tokens []*Token
	isDelimited := len(delims) > 0
	if !isDelimited {
		if err := m.ConsumeSpaces(); err != nil {
			return nil, err
		}
	}
	start, err := m.Future()
	if err != nil {
		return nil, err
	}

	var tok *Token
	depth, match := 0, 0
	for {
		if tok, err = m.PopToken(); err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)

		switch tok.Text {
		case "{":
			depth++
		case "}":
			depth--
			if depth == -1 {
				return nil, NewParseError("Extra }", tok)
			}
		case "EOF":
			expected := "}"
			if isDelimited {
				expected = delims[match]
			}
			return nil, Errorf(tok, "Unexpected end of input in a macro argument, expected '%s'", expected)
		}

		if isDelimited {
			if (depth == 0 || (depth == 1 && delims[match] == "{")) && tok.Text == delims[match] {
				match++
				if match == len(delims) {
					tokens = tokens[:len(tokens)-match]
					break
				}
			} else {
				match = 0
			}
		} else if depth == 0 {
			break
		}
	}

	if start.Text == "{" && len(tokens) > 0 && tokens[len(tokens)-1].Text == "}" {
		tokens = tokens[1 : len(tokens)-1]
	}
	reverseTokens(tokens)
	return &Arg{Tokens: tokens, Start: start, End: tok}, nil
}

// ConsumeArgs reads numArgs arguments shaped by delimiters, which is either
// nil or has numArgs+1 entries.
func (m *MacroExpander) ConsumeArgs(numArgs int, delimiters [][]string) ([][]*Token, error) {
	if delimiters != nil {
		if len(delimiters) != numArgs+1 {
			return nil, NewParseError("The length of delimiters doesn't match the number of args!", nil)
		}
		for _, d := range delimiters[0] {
			tok, err := m.PopToken()
			if err != nil {
				return nil, err
			}
			if d != tok.Text {
				return nil, NewParseError("Use of the macro doesn't match its definition", tok)
			}
		}
	}

	args := make([][]*Token, 0, numArgs)
	for i := 0; i < numArgs; i++ {
		var delims []string
		if delimiters != nil {
			delims = delimiters[i+1]
		}
		arg, err := m.ConsumeArg(delims)
		if err != nil {
			return nil, err
		}
		args = append(args, arg.Tokens)
	}
	return args, nil
}

// countExpansion charges amount against the expansion budget.
func (m *MacroExpander) countExpansion(amount int) error {
	m.expansionCount += amount
	if m.settings.MaxExpand >= 0 && m.expansionCount > m.settings.MaxExpand {
		return newParseError("Too many expansions: infinite loop or need to increase maxExpand setting", nil, ErrTooManyExpansions)
	}
	return nil
}

// ExpandOnce expands the topmost token once if it is a macro, pushing the
// substituted body back onto the stack. It reports whether an expansion
// happened. With expandableOnly set, macros created by \let from primitives
// are left alone and undefined control sequences are an error.
func (m *MacroExpander) ExpandOnce(expandableOnly bool) (bool, error) {
	top, err := m.PopToken()
	if err != nil {
		return false, err
	}
	name := top.Text

	var expansion *MacroExpansion
	if !top.NoExpand {
		if expansion, err = m.getExpansion(name); err != nil {
			return false, err
		}
	}
	if expansion == nil || (expandableOnly && expansion.Unexpandable) {
		if expandableOnly && expansion == nil && strings.HasPrefix(name, "\\") && !m.IsDefined(name) {
			return false, NewParseError("Undefined control sequence: "+name, top)
		}
		m.PushToken(top)
		return false, nil
	}

	if err := m.countExpansion(1); err != nil {
		return false, err
	}

	tokens := expansion.Tokens
	args, err := m.ConsumeArgs(expansion.NumArgs, expansion.Delimiters)
	if err != nil {
		return false, err
	}
	if expansion.NumArgs > 0 {
		tokens = append([]*Token(nil), tokens...)
		for i := len(tokens) - 1; i >= 0; i-- {
			tok := tokens[i]
			if tok.Text != "#" {
				continue
			}
			if i == 0 {
				return false, NewParseError("Incomplete placeholder at end of macro body", tok)
			}
			i--
			tok = tokens[i]
			if tok.Text == "#" {
				// ## becomes a literal #
				tokens = append(tokens[:i+1], tokens[i+2:]...)
			} else if len(tok.Text) == 1 && tok.Text[0] >= '1' && tok.Text[0] <= '9' {
				n := int(tok.Text[0] - '1')
				if n >= len(args) {
					return false, Errorf(tok, "Illegal parameter number in definition of %s", name)
				}
				rest := append(append([]*Token(nil), args[n]...), tokens[i+2:]...)
				tokens = append(tokens[:i], rest...)
			} else {
				return false, NewParseError("Not a valid argument number", tok)
			}
		}
	}
	m.PushTokens(tokens)
	return true, nil
}

// ExpandAfterFuture expands the next token once and returns the new top of
// the stack.
func (m *MacroExpander) ExpandAfterFuture() (*Token, error) {
	if _, err := m.ExpandOnce(false); err != nil {
		return nil, err
	}
	return m.Future()
}

// ExpandNextToken fully expands the next token and returns the first
// unexpandable one.
func (m *MacroExpander) ExpandNextToken() (*Token, error) {
	for {
		expanded, err := m.ExpandOnce(false)
		if err != nil {
			return nil, err
		}
		if !expanded {
			tok := m.stack[len(m.stack)-1]
			m.stack = m.stack[:len(m.stack)-1]
			if tok.TreatAsRelax {
				tok.Text = "\\relax"
			}
			return tok, nil
		}
	}
}

// ExpandMacro fully expands the macro name and returns the resulting tokens
// in order, or nil if name is not a macro.
func (m *MacroExpander) ExpandMacro(name string) ([]*Token, error) {
	if !m.macros.Has(name) {
		return nil, nil
	}
	return m.ExpandTokens([]*Token{NewToken(name, nil)})
}

// ExpandTokens fully expands tokens, given in reverse order, and returns the
// result in order.
func (m *MacroExpander) ExpandTokens(tokens []*Token) ([]*Token, error) {
	var output []*Token
	oldLen := len(m.stack)
	m.PushTokens(tokens)
	for len(m.stack) > oldLen {
		expanded, err := m.ExpandOnce(true)
		if err != nil {
			return nil, err
		}
		if !expanded {
			tok := m.stack[len(m.stack)-1]
			m.stack = m.stack[:len(m.stack)-1]
			if tok.TreatAsRelax {
				tok.NoExpand = false
				tok.TreatAsRelax = false
			}
			output = append(output, tok)
		}
	}
	if err := m.countExpansion(len(output)); err != nil {
		return nil, err
	}
	return output, nil
}

// ExpandMacroAsText fully expands name and concatenates the token texts. The
// second result is false if name is not a macro.
func (m *MacroExpander) ExpandMacroAsText(name string) (string, bool, error) {
	if !m.macros.Has(name) {
		return "", false, nil
	}
	tokens, err := m.ExpandMacro(name)
	if err != nil {
		return "", false, err
	}
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String(), true, nil
}

// getExpansion returns the expansion of name, or nil if it is not a macro.
// Single characters are only expanded when they are active.
func (m *MacroExpander) getExpansion(name string) (*MacroExpansion, error) {
	def, ok := m.macros.Get(name)
	if !ok || def == nil {
		return nil, nil
	}
	if len(name) == 1 {
		if code, ok := m.lexer.Catcode(name); ok && code != CatcodeActive {
			return nil, nil
		}
	}

	if def.Func != nil {
		var err error
		if def, err = def.Func(m); err != nil {
			return nil, err
		}
		if def == nil {
			def = &Macro{}
		}
	}
	if def.Expansion != nil {
		return def.Expansion, nil
	}
	return m.lexText(def.Text)
}

// lexText lexes a replacement text into a reversed expansion whose argument
// count is the highest consecutive #n placeholder present.
func (m *MacroExpander) lexText(text string) (*MacroExpansion, error) {
	numArgs := 0
	if strings.Contains(text, "#") {
		stripped := strings.ReplaceAll(text, "##", "")
		for numArgs < 9 && strings.Contains(stripped, "#"+string(rune('1'+numArgs))) {
			numArgs++
		}
	}

	lexer := NewLexer(text, m.settings)
	var tokens []*Token
	for {
		tok, err := lexer.Lex()
		if err != nil {
			return nil, err
		}
		if tok.Text == "EOF" {
			break
		}
		tokens = append(tokens, tok)
	}
	reverseTokens(tokens)
	return &MacroExpansion{Tokens: tokens, NumArgs: numArgs}, nil
}

// IsDefined reports whether name is a macro, function, symbol or implicit
// command.
func (m *MacroExpander) IsDefined(name string) bool {
	if m.macros.Has(name) || implicitCommands[name] {
		return true
	}
	if _, ok := functions[name]; ok {
		return true
	}
	_, math := symbols[MathMode][name]
	_, text := symbols[TextMode][name]
	return math || text
}

// IsExpandable reports whether name would be expanded by ExpandOnce.
func (m *MacroExpander) IsExpandable(name string) bool {
	if def, ok := m.macros.Get(name); ok && def != nil {
		return def.Func != nil || def.Expansion == nil || !def.Expansion.Unexpandable
	}
	f, ok := functions[name]
	return ok && !f.Primitive
}

func reverseTokens(tokens []*Token) {
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
}
