package parse

import (
	"strconv"
	"unicode/utf8"
)

func defineCharFunctions() {
	// \@char is the expansion of \char.
	DefineFunction(FunctionSpec{
		Type:          "textord",
		NumArgs:       1,
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			g, err := assertNode[*OrdGroup](args[0], "ordgroup")
			if err != nil {
				return nil, err
			}
			var number string
			for _, n := range g.Body {
				t, err := assertNode[*TextOrd](n, "textord")
				if err != nil {
					return nil, err
				}
				number += t.Text
			}
			code, err := strconv.ParseInt(number, 10, 32)
			if err != nil {
				return nil, NewParseError(`\@char has non-numeric argument `+number, nil)
			}
			if code < 0 || code >= 0x10ffff || !utf8.ValidRune(rune(code)) {
				return nil, NewParseError(`\@char with invalid code point `+number, nil)
			}
			return &TextOrd{Base: Base{Mode: ctx.Parser.Mode()}, Text: string(rune(code))}, nil
		},
	}, `\@char`)
}

func defineColorFunctions() {
	DefineFunction(FunctionSpec{
		Type:          "color",
		NumArgs:       2,
		AllowedInText: true,
		ArgTypes:      []ArgType{ArgColor, ArgOriginal},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			c, err := assertNode[*ColorToken](args[0], "color-token")
			if err != nil {
				return nil, err
			}
			return &Color{
				Base:  Base{Mode: ctx.Parser.Mode()},
				Color: c.Color,
				Body:  OrdArgument(args[1]),
			}, nil
		},
	}, `\textcolor`)

	DefineFunction(FunctionSpec{
		Type:          "color",
		NumArgs:       1,
		AllowedInText: true,
		ArgTypes:      []ArgType{ArgColor},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			c, err := assertNode[*ColorToken](args[0], "color-token")
			if err != nil {
				return nil, err
			}
			p := ctx.Parser
			// \right reads the color to apply to its delimiter from here.
			p.Gullet().Macros().Set(`\current@color`, &Macro{Text: c.Color}, false)
			body, err := p.ParseExpression(true, ctx.BreakOnTokenText)
			if err != nil {
				return nil, err
			}
			return &Color{Base: Base{Mode: p.Mode()}, Color: c.Color, Body: body}, nil
		},
	}, `\color`)
}

func defineCrFunctions() {
	DefineFunction(FunctionSpec{
		Type:            "cr",
		NumOptionalArgs: 1,
		ArgTypes:        []ArgType{ArgSize},
		AllowedInText:   true,
		Handler: func(ctx *FunctionContext, _, optArgs []Node) (Node, error) {
			p := ctx.Parser
			var size *Measurement
			if s, ok := optArgs[0].(*Size); ok {
				size = &s.Value
			}
			newLine := !p.Settings().DisplayMode ||
				!p.Settings().UseStrictBehavior("newLineInDisplayMode",
					"In LaTeX, \\\\ or \\newline does nothing in display mode", nil)
			return &Cr{Base: Base{Mode: p.Mode()}, NewLine: newLine, Size: size}, nil
		},
	}, `\\`)
}

var globalMap = map[string]string{
	`\global`:      `\global`,
	`\long`:        `\\globallong`,
	`\\globallong`: `\\globallong`,
	`\def`:         `\gdef`,
	`\gdef`:        `\gdef`,
	`\edef`:        `\xdef`,
	`\xdef`:        `\xdef`,
	`\let`:         `\\globallet`,
	`\futurelet`:   `\\globalfuture`,
}

// checkControlSequence returns the name of a token that can be defined.
func checkControlSequence(tok *Token) (string, error) {
	switch tok.Text {
	case `\`, "{", "}", "$", "&", "#", "^", "_", "EOF":
		return "", NewParseError("Expected a control sequence", tok)
	}
	return tok.Text, nil
}

// getRHS reads the right-hand side of \let: an optional = followed by one
// optional space.
func getRHS(m *MacroExpander) (*Token, error) {
	tok, err := m.PopToken()
	if err != nil {
		return nil, err
	}
	if tok.Text == "=" {
		if tok, err = m.PopToken(); err != nil {
			return nil, err
		}
		if tok.Text == " " {
			if tok, err = m.PopToken(); err != nil {
				return nil, err
			}
		}
	}
	return tok, nil
}

// letCommand makes name an alias of the current meaning of tok.
func letCommand(p *Parser, name string, tok *Token, global bool) {
	macros := p.Gullet().Macros()
	macro, ok := macros.Get(tok.Text)
	if !ok || macro == nil {
		// Unexpandable primitives and symbols keep their identity under
		// \noexpand.
		t := *tok
		t.NoExpand = true
		macro = &Macro{Expansion: &MacroExpansion{
			Tokens:       []*Token{&t},
			Unexpandable: !p.Gullet().IsExpandable(tok.Text),
		}}
	}
	macros.Set(name, macro, global)
}

func defineDefFunctions() {
	DefineFunction(FunctionSpec{
		Type:          "internal",
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			p := ctx.Parser
			if err := p.ConsumeSpaces(); err != nil {
				return nil, err
			}
			tok, err := p.Fetch()
			if err != nil {
				return nil, err
			}
			if f, ok := globalMap[tok.Text]; ok {
				if ctx.FuncName == `\global` || ctx.FuncName == `\\globallong` {
					tok.Text = f
				}
				n, err := p.ParseFunction("", "")
				if err != nil {
					return nil, err
				}
				if _, err := assertNode[*Internal](n, "internal"); err != nil {
					return nil, err
				}
				return n, nil
			}
			return nil, NewParseError("Invalid token after macro prefix", tok)
		},
	}, `\global`, `\long`, `\\globallong`)

	DefineFunction(FunctionSpec{
		Type:          "internal",
		AllowedInText: true,
		Primitive:     true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			p := ctx.Parser
			gullet := p.Gullet()
			tok, err := gullet.PopToken()
			if err != nil {
				return nil, err
			}
			name, err := checkControlSequence(tok)
			if err != nil {
				return nil, err
			}

			numArgs := 0
			var insert *Token
			delimiters := [][]string{{}}
			for {
				if tok, err = gullet.Future(); err != nil {
					return nil, err
				}
				if tok.Text == "{" {
					break
				}
				if tok, err = gullet.PopToken(); err != nil {
					return nil, err
				}
				if tok.Text == "#" {
					// \def\foo#1#{...} inserts a { after the last argument.
					next, err := gullet.Future()
					if err != nil {
						return nil, err
					}
					if next.Text == "{" {
						insert = next
						delimiters[numArgs] = append(delimiters[numArgs], "{")
						break
					}
					if tok, err = gullet.PopToken(); err != nil {
						return nil, err
					}
					if len(tok.Text) != 1 || tok.Text[0] < '1' || tok.Text[0] > '9' {
						return nil, Errorf(tok, `Invalid argument number "%s"`, tok.Text)
					}
					if int(tok.Text[0]-'0') != numArgs+1 {
						return nil, Errorf(tok, `Argument number "%s" out of order`, tok.Text)
					}
					numArgs++
					delimiters = append(delimiters, []string{})
				} else if tok.Text == "EOF" {
					return nil, NewParseError("Expected a macro definition", nil)
				} else {
					delimiters[numArgs] = append(delimiters[numArgs], tok.Text)
				}
			}

			arg, err := gullet.ConsumeArg(nil)
			if err != nil {
				return nil, err
			}
			tokens := arg.Tokens
			if insert != nil {
				tokens = append([]*Token{insert}, tokens...)
			}
			if ctx.FuncName == `\edef` || ctx.FuncName == `\xdef` {
				expanded, err := gullet.ExpandTokens(tokens)
				if err != nil {
					return nil, err
				}
				reverseTokens(expanded)
				tokens = expanded
			}
			gullet.Macros().Set(name, &Macro{Expansion: &MacroExpansion{
				Tokens:     tokens,
				NumArgs:    numArgs,
				Delimiters: delimiters,
			}}, ctx.FuncName == globalMap[ctx.FuncName])
			return &Internal{Base: Base{Mode: p.Mode()}}, nil
		},
	}, `\def`, `\gdef`, `\edef`, `\xdef`)

	DefineFunction(FunctionSpec{
		Type:          "internal",
		AllowedInText: true,
		Primitive:     true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			p := ctx.Parser
			gullet := p.Gullet()
			tok, err := gullet.PopToken()
			if err != nil {
				return nil, err
			}
			name, err := checkControlSequence(tok)
			if err != nil {
				return nil, err
			}
			if err := gullet.ConsumeSpaces(); err != nil {
				return nil, err
			}
			rhs, err := getRHS(gullet)
			if err != nil {
				return nil, err
			}
			letCommand(p, name, rhs, ctx.FuncName == `\\globallet`)
			return &Internal{Base: Base{Mode: p.Mode()}}, nil
		},
	}, `\let`, `\\globallet`)

	DefineFunction(FunctionSpec{
		Type:          "internal",
		AllowedInText: true,
		Primitive:     true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			p := ctx.Parser
			gullet := p.Gullet()
			tok, err := gullet.PopToken()
			if err != nil {
				return nil, err
			}
			name, err := checkControlSequence(tok)
			if err != nil {
				return nil, err
			}
			middle, err := gullet.PopToken()
			if err != nil {
				return nil, err
			}
			tok, err = gullet.PopToken()
			if err != nil {
				return nil, err
			}
			letCommand(p, name, tok, ctx.FuncName == `\\globalfuture`)
			gullet.PushToken(tok)
			gullet.PushToken(middle)
			return &Internal{Base: Base{Mode: p.Mode()}}, nil
		},
	}, `\futurelet`, `\\globalfuture`)
}
