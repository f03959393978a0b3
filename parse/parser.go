package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parser turns a token stream from a MacroExpander into a list of parse
// nodes. A Parser is used for a single parse.
type Parser struct {
	mode           Mode
	gullet         *MacroExpander
	settings       *Settings
	leftrightDepth int
	nextToken      *Token
}

// NewParser creates a parser over input. A nil settings means
// DefaultSettings.
func NewParser(input string, settings *Settings) *Parser {
	if settings == nil {
		settings = DefaultSettings()
	}
	return &Parser{
		mode:     MathMode,
		gullet:   NewMacroExpander(input, settings, MathMode),
		settings: settings,
	}
}

// Mode returns the current parsing mode.
func (p *Parser) Mode() Mode { return p.mode }

// Settings returns the parser settings.
func (p *Parser) Settings() *Settings { return p.settings }

// Gullet returns the macro expander feeding the parser.
func (p *Parser) Gullet() *MacroExpander { return p.gullet }

// LeftRightDepth returns the nesting depth of \left...\right pairs.
func (p *Parser) LeftRightDepth() int { return p.leftrightDepth }

// Expect checks that the next token is text and optionally consumes it.
func (p *Parser) Expect(text string, consume bool) error {
	tok, err := p.Fetch()
	if err != nil {
		return err
	}
	if tok.Text != text {
		return Errorf(tok, "Expected '%s', got '%s'", text, tok.Text)
	}
	if consume {
		p.Consume()
	}
	return nil
}

// Consume discards the current lookahead token.
func (p *Parser) Consume() { p.nextToken = nil }

// Fetch returns the lookahead token, expanding macros as needed.
func (p *Parser) Fetch() (*Token, error) {
	if p.nextToken == nil {
		tok, err := p.gullet.ExpandNextToken()
		if err != nil {
			return nil, err
		}
		p.nextToken = tok
	}
	return p.nextToken, nil
}

// SwitchMode changes the parsing mode.
func (p *Parser) SwitchMode(mode Mode) {
	p.mode = mode
	p.gullet.SwitchMode(mode)
}

// Parse parses the whole input. Every macro group opened during the parse
// is closed again, whether or not parsing succeeds.
func (p *Parser) Parse() ([]Node, error) {
	defer p.gullet.EndGroups()

	if !p.settings.GlobalGroup {
		p.gullet.BeginGroup()
	}
	if p.settings.ColorIsTextColor {
		p.gullet.Macros().Set(`\color`, &Macro{Text: `\textcolor`}, false)
	}
	body, err := p.ParseExpression(false, "")
	if err != nil {
		return nil, err
	}
	if err := p.Expect("EOF", true); err != nil {
		return nil, err
	}
	if !p.settings.GlobalGroup {
		if err := p.gullet.EndGroup(); err != nil {
			return nil, err
		}
	}
	return body, nil
}

// Subparse parses tokens, given in reverse order, as a standalone
// expression and restores the lookahead afterwards.
func (p *Parser) Subparse(tokens []*Token) ([]Node, error) {
	old := p.nextToken
	p.Consume()
	p.gullet.PushToken(NewToken("}", nil))
	p.gullet.PushTokens(tokens)
	body, err := p.ParseExpression(false, "")
	if err != nil {
		return nil, err
	}
	if err := p.Expect("}", true); err != nil {
		return nil, err
	}
	p.nextToken = old
	return body, nil
}

var endOfExpression = map[string]bool{
	"}": true, `\endgroup`: true, `\end`: true, `\right`: true, "&": true,
}

// ParseExpression parses atoms until the end of the enclosing group, the
// token breakOnTokenText, or, with breakOnInfix, an infix function.
func (p *Parser) ParseExpression(breakOnInfix bool, breakOnTokenText string) ([]Node, error) {
	var body []Node
	for {
		if p.mode == MathMode {
			if err := p.ConsumeSpaces(); err != nil {
				return nil, err
			}
		}
		lex, err := p.Fetch()
		if err != nil {
			return nil, err
		}
		if endOfExpression[lex.Text] {
			break
		}
		if breakOnTokenText != "" && lex.Text == breakOnTokenText {
			break
		}
		if f, ok := functions[lex.Text]; breakOnInfix && ok && f.Infix {
			break
		}
		atom, err := p.parseAtom(breakOnTokenText)
		if err != nil {
			return nil, err
		}
		if atom == nil {
			break
		}
		if _, ok := atom.(*Internal); ok {
			continue
		}
		body = append(body, atom)
	}
	if p.mode == TextMode {
		body = p.formLigatures(body)
	}
	return p.handleInfixNodes(body)
}

// handleInfixNodes rewrites a group containing an infix node into a call of
// the function the infix node stands for.
func (p *Parser) handleInfixNodes(body []Node) ([]Node, error) {
	overIndex := -1
	var infix *Infix
	for i, n := range body {
		if in, ok := n.(*Infix); ok {
			if overIndex != -1 {
				return nil, NewParseError("only one infix operator per group", in.Token)
			}
			overIndex = i
			infix = in
		}
	}
	if overIndex == -1 {
		return body, nil
	}

	group := func(nodes []Node) Node {
		if len(nodes) == 1 {
			if g, ok := nodes[0].(*OrdGroup); ok {
				return g
			}
		}
		return &OrdGroup{Base: Base{Mode: p.mode}, Body: nodes}
	}
	numer := group(body[:overIndex])
	denom := group(body[overIndex+1:])

	var args []Node
	if infix.ReplaceWith == `\\abovefrac` {
		args = []Node{numer, infix, denom}
	} else {
		args = []Node{numer, denom}
	}
	node, err := p.CallFunction(infix.ReplaceWith, args, nil, nil, "")
	if err != nil {
		return nil, err
	}
	return []Node{node}, nil
}

// handleSupSubscript parses the argument of ^ or _.
func (p *Parser) handleSupSubscript(name string) (Node, error) {
	symbolToken, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	p.Consume()
	if err := p.ConsumeSpaces(); err != nil {
		return nil, err
	}
	var group Node
	for {
		if group, err = p.ParseGroup(name, ""); err != nil {
			return nil, err
		}
		if _, ok := group.(*Internal); !ok {
			break
		}
	}
	if group == nil {
		return nil, Errorf(symbolToken, "Expected group after '%s'", symbolToken.Text)
	}
	return group, nil
}

// FormatUnsupportedCmd returns the placeholder shown for a command that
// cannot be rendered: the command text in the error color.
func (p *Parser) FormatUnsupportedCmd(text string) Node {
	var chars []Node
	for _, r := range text {
		chars = append(chars, &TextOrd{Base: Base{Mode: TextMode}, Text: string(r)})
	}
	return &Color{
		Base:  Base{Mode: p.mode},
		Color: p.settings.ErrorColor,
		Body:  []Node{&Text{Base: Base{Mode: p.mode}, Body: chars}},
	}
}

// parseAtom parses a group with optional super- and subscripts.
func (p *Parser) parseAtom(breakOnTokenText string) (Node, error) {
	base, err := p.ParseGroup("atom", breakOnTokenText)
	if err != nil {
		return nil, err
	}
	if _, ok := base.(*Internal); ok {
		return base, nil
	}
	if p.mode == TextMode {
		return base, nil
	}

	var sup, sub Node
	for {
		if err := p.ConsumeSpaces(); err != nil {
			return nil, err
		}
		lex, err := p.Fetch()
		if err != nil {
			return nil, err
		}
		switch {
		case lex.Text == `\limits` || lex.Text == `\nolimits`:
			limits := lex.Text == `\limits`
			switch b := base.(type) {
			case *Op:
				b.Limits = limits
				b.AlwaysHandleSupSub = true
			case *OperatorName:
				if b.AlwaysHandleSupSub {
					b.Limits = limits
				}
			default:
				return nil, NewParseError("Limit controls must follow a math operator", lex)
			}
			p.Consume()
		case lex.Text == "^":
			if sup != nil {
				return nil, NewParseError("Double superscript", lex)
			}
			if sup, err = p.handleSupSubscript("superscript"); err != nil {
				return nil, err
			}
		case lex.Text == "_":
			if sub != nil {
				return nil, NewParseError("Double subscript", lex)
			}
			if sub, err = p.handleSupSubscript("subscript"); err != nil {
				return nil, err
			}
		case lex.Text == "'":
			if sup != nil {
				return nil, NewParseError("Double superscript", lex)
			}
			prime := func() Node { return &TextOrd{Base: Base{Mode: p.mode}, Text: `\prime`} }
			primes := []Node{prime()}
			p.Consume()
			for {
				next, err := p.Fetch()
				if err != nil {
					return nil, err
				}
				if next.Text != "'" {
					break
				}
				primes = append(primes, prime())
				p.Consume()
			}
			next, err := p.Fetch()
			if err != nil {
				return nil, err
			}
			if next.Text == "^" {
				g, err := p.handleSupSubscript("superscript")
				if err != nil {
					return nil, err
				}
				primes = append(primes, g)
			}
			sup = &OrdGroup{Base: Base{Mode: p.mode}, Body: primes}
		case uSubsAndSups[lex.Text] != "":
			isSub := isUnicodeSubscript(lex.Text)
			tokens := []*Token{NewToken(uSubsAndSups[lex.Text], nil)}
			p.Consume()
			for {
				next, err := p.Fetch()
				if err != nil {
					return nil, err
				}
				plain, ok := uSubsAndSups[next.Text]
				if !ok || isUnicodeSubscript(next.Text) != isSub {
					break
				}
				tokens = append([]*Token{NewToken(plain, nil)}, tokens...)
				p.Consume()
			}
			body, err := p.Subparse(tokens)
			if err != nil {
				return nil, err
			}
			g := &OrdGroup{Base: Base{Mode: MathMode}, Body: body}
			if isSub {
				sub = g
			} else {
				sup = g
			}
		default:
			if sup == nil && sub == nil {
				return base, nil
			}
			return &SupSub{Base: Base{Mode: p.mode}, Nucleus: base, Sup: sup, Sub: sub}, nil
		}
	}
}

// ParseFunction parses a function call if the lookahead names a function.
// It returns nil if it does not. name describes the context in which the
// call appears, such as "atom" or "argument to '\frac'".
func (p *Parser) ParseFunction(breakOnTokenText, name string) (Node, error) {
	tok, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	fn := tok.Text
	spec, ok := functions[fn]
	if !ok {
		return nil, nil
	}
	p.Consume()

	switch {
	case name != "" && name != "atom" && !spec.AllowedInArgument:
		return nil, Errorf(tok, "Got function '%s' with no arguments as %s", fn, name)
	case p.mode == TextMode && !spec.AllowedInText:
		return nil, Errorf(tok, "Can't use function '%s' in text mode", fn)
	case p.mode == MathMode && spec.TextOnly:
		return nil, Errorf(tok, "Can't use function '%s' in math mode", fn)
	}

	args, optArgs, err := p.ParseArguments(fn, spec)
	if err != nil {
		return nil, err
	}
	return p.CallFunction(fn, args, optArgs, tok, breakOnTokenText)
}

// CallFunction invokes the handler of function name.
func (p *Parser) CallFunction(name string, args, optArgs []Node, tok *Token, breakOnTokenText string) (Node, error) {
	spec, ok := functions[name]
	if !ok || spec.Handler == nil {
		return nil, NewParseError("No function handler for "+name, nil)
	}
	return spec.Handler(&FunctionContext{
		FuncName:         name,
		Parser:           p,
		Token:            tok,
		BreakOnTokenText: breakOnTokenText,
	}, args, optArgs)
}

// argSpec is the argument shape shared by functions and environments.
type argSpec struct {
	typ             string
	numArgs         int
	numOptionalArgs int
	argTypes        []ArgType
	primitive       bool
}

// ParseArguments parses the arguments of function fn.
func (p *Parser) ParseArguments(fn string, spec *FunctionSpec) (args, optArgs []Node, err error) {
	return p.parseArguments(fn, argSpec{
		typ:             spec.Type,
		numArgs:         spec.NumArgs,
		numOptionalArgs: spec.NumOptionalArgs,
		argTypes:        spec.ArgTypes,
		primitive:       spec.Primitive,
	})
}

func (p *Parser) parseArguments(fn string, spec argSpec) (args, optArgs []Node, err error) {
	total := spec.numArgs + spec.numOptionalArgs
	for i := 0; i < total; i++ {
		var argType ArgType
		hasType := i < len(spec.argTypes)
		if hasType {
			argType = spec.argTypes[i]
		}
		optional := i < spec.numOptionalArgs
		if (spec.primitive && !hasType) || (spec.typ == "sqrt" && i == 1 && optArgs[0] == nil) {
			argType = ArgPrimitive
		}
		arg, err := p.parseGroupOfType(fmt.Sprintf("argument to '%s'", fn), argType, optional)
		if err != nil {
			return nil, nil, err
		}
		if optional {
			optArgs = append(optArgs, arg)
		} else if arg != nil {
			args = append(args, arg)
		} else {
			return nil, nil, NewParseError("Null argument, please report this as a bug", nil)
		}
	}
	return args, optArgs, nil
}

func (p *Parser) parseGroupOfType(name string, typ ArgType, optional bool) (Node, error) {
	switch typ {
	case ArgColor:
		return p.parseColorGroup(optional)
	case ArgSize:
		n, err := p.ParseSizeGroup(optional)
		if n == nil || err != nil {
			return nil, err
		}
		return n, nil
	case ArgURL:
		return p.parseURLGroup(optional)
	case ArgMath, ArgText:
		g, err := p.parseArgumentGroup(optional, Mode(typ))
		if g == nil || err != nil {
			return nil, err
		}
		return g, nil
	case ArgHBox:
		g, err := p.parseArgumentGroup(optional, TextMode)
		if g == nil || err != nil {
			return nil, err
		}
		return &Styling{Base: Base{Mode: g.Mode}, Style: "text", Body: []Node{g}}, nil
	case ArgRaw:
		tok, err := p.ParseStringGroup("raw", optional)
		if tok == nil || err != nil {
			return nil, err
		}
		return &Raw{Base: Base{Mode: TextMode}, String: tok.Text}, nil
	case ArgPrimitive:
		if optional {
			return nil, NewParseError("A primitive argument cannot be optional", nil)
		}
		g, err := p.ParseGroup(name, "")
		if err != nil {
			return nil, err
		}
		if g == nil {
			tok, err := p.Fetch()
			if err != nil {
				return nil, err
			}
			return nil, NewParseError("Expected group as "+name, tok)
		}
		return g, nil
	case ArgOriginal:
		g, err := p.parseArgumentGroup(optional, "")
		if g == nil || err != nil {
			return nil, err
		}
		return g, nil
	}
	tok, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	return nil, NewParseError("Unknown group type as "+name, tok)
}

// ConsumeSpaces skips space tokens.
func (p *Parser) ConsumeSpaces() error {
	for {
		tok, err := p.Fetch()
		if err != nil {
			return err
		}
		if tok.Text != " " {
			return nil
		}
		p.Consume()
	}
}

// ParseStringGroup reads an argument as a raw string without parsing it. It
// returns nil if an optional argument is absent.
func (p *Parser) ParseStringGroup(modeName string, optional bool) (*Token, error) {
	argToken, err := p.gullet.ScanArgument(optional)
	if argToken == nil || err != nil {
		return nil, err
	}
	var b strings.Builder
	for {
		tok, err := p.Fetch()
		if err != nil {
			return nil, err
		}
		if tok.Text == "EOF" {
			break
		}
		b.WriteString(tok.Text)
		p.Consume()
	}
	p.Consume()
	argToken.Text = b.String()
	return argToken, nil
}

// parseRegexGroup reads tokens for as long as the accumulated text matches
// re.
func (p *Parser) parseRegexGroup(re *regexp.Regexp, modeName string) (*Token, error) {
	first, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	last := first
	var str string
	for {
		next, err := p.Fetch()
		if err != nil {
			return nil, err
		}
		if next.Text == "EOF" || !re.MatchString(str+next.Text) {
			break
		}
		last = next
		str += next.Text
		p.Consume()
	}
	if str == "" {
		return nil, Errorf(first, "Invalid %s: '%s'", modeName, first.Text)
	}
	return first.Range(last, str), nil
}

var (
	colorRe        = regexp.MustCompile(`(?i)^(#[a-f0-9]{3,4}|#[a-f0-9]{6}|#[a-f0-9]{8}|[a-f0-9]{6}|[a-z]+)$`)
	bareHexColorRe = regexp.MustCompile(`(?i)^[0-9a-f]{6}$`)
	sizeGroupRe    = regexp.MustCompile(`^[-+]? *(?:$|\d+|\d+\.\d*|\.\d*) *[a-z]{0,2} *$`)
	sizeRe         = regexp.MustCompile(`([-+]?) *(\d+(?:\.\d*)?|\.\d+) *([a-z]{2})`)
	urlEscapeRe    = regexp.MustCompile(`\\([#$%&~_^{}])`)
)

func (p *Parser) parseColorGroup(optional bool) (Node, error) {
	res, err := p.ParseStringGroup("color", optional)
	if res == nil || err != nil {
		return nil, err
	}
	m := colorRe.FindString(res.Text)
	if m == "" {
		return nil, Errorf(res, "Invalid color: '%s'", res.Text)
	}
	if bareHexColorRe.MatchString(m) {
		m = "#" + m
	}
	return &ColorToken{Base: Base{Mode: p.mode}, Color: m}, nil
}

// ParseSizeGroup parses a TeX dimension such as "3pt" or "{-1.5em}". It
// returns nil if an optional argument is absent.
func (p *Parser) ParseSizeGroup(optional bool) (*Size, error) {
	var res *Token
	isBlank := false
	if err := p.gullet.ConsumeSpaces(); err != nil {
		return nil, err
	}
	next, err := p.gullet.Future()
	if err != nil {
		return nil, err
	}
	if !optional && next.Text != "{" {
		res, err = p.parseRegexGroup(sizeGroupRe, "size")
	} else {
		res, err = p.ParseStringGroup("size", optional)
	}
	if res == nil || err != nil {
		return nil, err
	}
	if !optional && res.Text == "" {
		res.Text = "0pt"
		isBlank = true
	}
	m := sizeRe.FindStringSubmatch(res.Text)
	if m == nil {
		return nil, Errorf(res, "Invalid size: '%s'", res.Text)
	}
	num, err := strconv.ParseFloat(m[1]+m[2], 64)
	if err != nil {
		return nil, Errorf(res, "Invalid size: '%s'", res.Text)
	}
	value := Measurement{Number: num, Unit: m[3]}
	if !ValidUnit(value.Unit) {
		return nil, Errorf(res, "Invalid unit: '%s'", value.Unit)
	}
	return &Size{Base: Base{Mode: p.mode}, Value: value, IsBlank: isBlank}, nil
}

func (p *Parser) parseURLGroup(optional bool) (Node, error) {
	lexer := p.gullet.Lexer()
	lexer.SetCatcode("%", CatcodeActive)
	lexer.SetCatcode("~", CatcodeOther)
	res, err := p.ParseStringGroup("url", optional)
	lexer.SetCatcode("%", CatcodeComment)
	lexer.SetCatcode("~", CatcodeActive)
	if res == nil || err != nil {
		return nil, err
	}
	url := urlEscapeRe.ReplaceAllString(res.Text, "$1")
	return &URL{Base: Base{Mode: p.mode}, URL: url}, nil
}

// parseArgumentGroup parses a braced or single-token argument as an
// ordgroup, in mode if it is set.
func (p *Parser) parseArgumentGroup(optional bool, mode Mode) (*OrdGroup, error) {
	argToken, err := p.gullet.ScanArgument(optional)
	if argToken == nil || err != nil {
		return nil, err
	}
	outer := p.mode
	if mode != "" {
		p.SwitchMode(mode)
	}
	p.gullet.BeginGroup()
	body, err := p.ParseExpression(false, "EOF")
	if err != nil {
		return nil, err
	}
	if err := p.Expect("EOF", true); err != nil {
		return nil, err
	}
	if err := p.gullet.EndGroup(); err != nil {
		return nil, err
	}
	g := &OrdGroup{Base: Base{Mode: p.mode, Loc: argToken.Loc}, Body: body}
	if mode != "" {
		p.SwitchMode(outer)
	}
	return g, nil
}

// ParseGroup parses a braced group, a function call or a symbol. It returns
// nil if the lookahead starts none of these.
func (p *Parser) ParseGroup(name, breakOnTokenText string) (Node, error) {
	first, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	text := first.Text

	if text == "{" || text == `\begingroup` {
		p.Consume()
		groupEnd := "}"
		if text == `\begingroup` {
			groupEnd = `\endgroup`
		}
		p.gullet.BeginGroup()
		body, err := p.ParseExpression(false, groupEnd)
		if err != nil {
			return nil, err
		}
		last, err := p.Fetch()
		if err != nil {
			return nil, err
		}
		if err := p.Expect(groupEnd, true); err != nil {
			return nil, err
		}
		if err := p.gullet.EndGroup(); err != nil {
			return nil, err
		}
		return &OrdGroup{
			Base:       Base{Mode: p.mode, Loc: RangeLocation(first, last)},
			Body:       body,
			Semisimple: text == `\begingroup`,
		}, nil
	}

	result, err := p.ParseFunction(breakOnTokenText, name)
	if err != nil {
		return nil, err
	}
	if result == nil {
		if result, err = p.parseSymbol(); err != nil {
			return nil, err
		}
	}
	if result == nil && strings.HasPrefix(text, `\`) && !implicitCommands[text] {
		if p.settings.ThrowOnError {
			return nil, NewParseError("Undefined control sequence: "+text, first)
		}
		result = p.FormatUnsupportedCmd(text)
		p.Consume()
	}
	return result, nil
}

// formLigatures merges text-mode dashes and quotes into ligature tokens.
func (p *Parser) formLigatures(group []Node) []Node {
	text := func(i int) string {
		s, _ := SymbolText(group[i])
		return s
	}
	for i := 0; i < len(group)-1; i++ {
		a := group[i]
		v := text(i)
		if v == "-" && text(i+1) == "-" {
			if i+2 < len(group) && text(i+2) == "-" {
				lig := &TextOrd{Base: Base{Mode: TextMode, Loc: RangeLocation(a, group[i+2])}, Text: "---"}
				group = append(append(group[:i:i], lig), group[i+3:]...)
			} else {
				lig := &TextOrd{Base: Base{Mode: TextMode, Loc: RangeLocation(a, group[i+1])}, Text: "--"}
				group = append(append(group[:i:i], lig), group[i+2:]...)
			}
		}
		if (v == "'" || v == "`") && i+1 < len(group) && text(i+1) == v {
			lig := &TextOrd{Base: Base{Mode: TextMode, Loc: RangeLocation(a, group[i+1])}, Text: v + v}
			group = append(append(group[:i:i], lig), group[i+2:]...)
		}
	}
	return group
}

// parseSymbol parses a single symbol, including \verb and accented
// Unicode characters. It returns nil if the lookahead is not a symbol.
func (p *Parser) parseSymbol() (Node, error) {
	nucleus, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	text := nucleus.Text

	if strings.HasPrefix(text, `\verb`) && len(text) > 5 && !isLetter(text[5]) {
		p.Consume()
		arg := text[5:]
		star := arg[0] == '*'
		if star {
			arg = arg[1:]
		}
		first, _ := utf8.DecodeRuneInString(arg)
		last, _ := utf8.DecodeLastRuneInString(arg)
		if utf8.RuneCountInString(arg) < 2 || first != last {
			return nil, NewParseError(`\verb assertion failed -- please report what input caused this bug`, nil)
		}
		arg = arg[utf8.RuneLen(first) : len(arg)-utf8.RuneLen(last)]
		return &Verb{Base: Base{Mode: TextMode}, Body: arg, Star: star}, nil
	}

	if r, size := utf8.DecodeRuneInString(text); size > 0 {
		if decomposed, ok := unicodeSymbols[r]; ok {
			if _, known := symbols[p.mode][string(r)]; !known {
				if p.mode == MathMode {
					if err := p.settings.ReportNonstrict("unicodeTextInMathMode",
						fmt.Sprintf(`Accented Unicode text character "%c" used in math mode`, r), nucleus); err != nil {
						return nil, err
					}
				}
				text = decomposed + text[size:]
			}
		}
	}

	// strip trailing combining marks
	var marks []rune
	for {
		r, size := utf8.DecodeLastRuneInString(text)
		if size == 0 || !isCombiningMark(r) || size == len(text) {
			break
		}
		marks = append([]rune{r}, marks...)
		text = text[:len(text)-size]
	}
	if len(marks) > 0 {
		switch text {
		case "i":
			text = "ı"
		case "j":
			text = "ȷ"
		}
	}

	var symbol Node
	loc := RangeLocation(nucleus, nil)
	if info, ok := symbols[p.mode][text]; ok {
		if p.mode == MathMode && strings.Contains(ExtraLatin, text) {
			if err := p.settings.ReportNonstrict("unicodeTextInMathMode",
				fmt.Sprintf(`Latin-1/Unicode text character "%s" used in math mode`, firstRune(text)), nucleus); err != nil {
				return nil, err
			}
		}
		symbol = NewSymbolNode(info.Group, p.mode, text, loc)
	} else if r, _ := utf8.DecodeRuneInString(text); r >= 0x80 {
		if !SupportedCodepoint(r) {
			if err := p.settings.ReportNonstrict("unknownSymbol",
				fmt.Sprintf(`Unrecognized Unicode character "%c" (%d)`, r, r), nucleus); err != nil {
				return nil, err
			}
		} else if p.mode == MathMode {
			if err := p.settings.ReportNonstrict("unicodeTextInMathMode",
				fmt.Sprintf(`Unicode text character "%c" used in math mode`, r), nucleus); err != nil {
				return nil, err
			}
		}
		symbol = &TextOrd{Base: Base{Mode: TextMode, Loc: loc}, Text: text}
	} else {
		return nil, nil
	}
	p.Consume()

	for _, mark := range marks {
		accent, ok := unicodeAccents[mark]
		if !ok {
			return nil, Errorf(nucleus, "Unknown accent ' %c'", mark)
		}
		command := accent.command(p.mode)
		if command == "" {
			return nil, Errorf(nucleus, "Accent %c unsupported in %s mode", mark, p.mode)
		}
		symbol = &Accent{
			Base:     Base{Mode: p.mode, Loc: loc},
			Label:    command,
			IsShifty: true,
			Nucleus:  symbol,
		}
	}
	return symbol, nil
}

func firstRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}
