package parse

import (
	"strconv"
	"strings"
)

var fontAliases = map[string]string{
	`\Bbb`:  `\mathbb`,
	`\bold`: `\mathbf`,
	`\frak`: `\mathfrak`,
	`\bm`:   `\boldsymbol`,
}

func defineFontFunctions() {
	DefineFunction(FunctionSpec{
		Type:              "font",
		NumArgs:           1,
		AllowedInArgument: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			name := ctx.FuncName
			if alias, ok := fontAliases[name]; ok {
				name = alias
			}
			return &Font{
				Base: Base{Mode: ctx.Parser.Mode()},
				Font: name[1:],
				Body: NormalizeArgument(args[0]),
			}, nil
		},
	},
		`\mathrm`, `\mathit`, `\mathbf`, `\mathnormal`, `\mathsfit`,
		`\mathbb`, `\mathcal`, `\mathfrak`, `\mathscr`, `\mathsf`, `\mathtt`,
		`\Bbb`, `\bold`, `\frak`,
	)

	DefineFunction(FunctionSpec{
		Type:    "mclass",
		NumArgs: 1,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			mode := ctx.Parser.Mode()
			body := args[0]
			return &MClass{
				Base:           Base{Mode: mode},
				MClass:         BinRelClass(body),
				Body:           []Node{&Font{Base: Base{Mode: mode}, Font: "boldsymbol", Body: body}},
				IsCharacterBox: IsCharacterBox(body),
			}, nil
		},
	}, `\boldsymbol`, `\bm`)

	// Old-style font switches apply to the rest of the group.
	DefineFunction(FunctionSpec{
		Type:          "font",
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			p := ctx.Parser
			mode := p.Mode()
			body, err := p.ParseExpression(true, ctx.BreakOnTokenText)
			if err != nil {
				return nil, err
			}
			return &Font{
				Base: Base{Mode: mode},
				Font: "math" + ctx.FuncName[1:],
				Body: &OrdGroup{Base: Base{Mode: p.Mode()}, Body: body},
			}, nil
		},
	}, `\rm`, `\sf`, `\tt`, `\bf`, `\it`, `\cal`)
}

var fracStyles = []string{"display", "text", "script", "scriptscript"}

// delimFromValue maps "." to no delimiter.
func delimFromValue(s string) string {
	if s == "." {
		return ""
	}
	return s
}

func defineFracFunctions() {
	DefineFunction(FunctionSpec{
		Type:              "genfrac",
		NumArgs:           2,
		AllowedInArgument: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			frac := &GenFrac{
				Base:  Base{Mode: ctx.Parser.Mode()},
				Numer: args[0],
				Denom: args[1],
				Size:  "auto",
			}
			switch ctx.FuncName {
			case `\dfrac`, `\frac`, `\tfrac`:
				frac.HasBarLine = true
			case `\dbinom`, `\binom`, `\tbinom`:
				frac.LeftDelim, frac.RightDelim = "(", ")"
			case `\\bracefrac`:
				frac.LeftDelim, frac.RightDelim = `\{`, `\}`
			case `\\brackfrac`:
				frac.LeftDelim, frac.RightDelim = "[", "]"
			}
			switch ctx.FuncName {
			case `\dfrac`, `\dbinom`:
				frac.Size = "display"
			case `\tfrac`, `\tbinom`:
				frac.Size = "text"
			}
			return frac, nil
		},
	},
		`\dfrac`, `\frac`, `\tfrac`, `\dbinom`, `\binom`, `\tbinom`,
		`\\atopfrac`, `\\bracefrac`, `\\brackfrac`,
	)

	DefineFunction(FunctionSpec{
		Type:    "genfrac",
		NumArgs: 2,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &GenFrac{
				Base:       Base{Mode: ctx.Parser.Mode()},
				Continued:  true,
				Numer:      args[0],
				Denom:      args[1],
				HasBarLine: true,
				Size:       "display",
			}, nil
		},
	}, `\cfrac`)

	infixReplacements := map[string]string{
		`\over`:   `\frac`,
		`\choose`: `\binom`,
		`\atop`:   `\\atopfrac`,
		`\brace`:  `\\bracefrac`,
		`\brack`:  `\\brackfrac`,
	}
	DefineFunction(FunctionSpec{
		Type:  "infix",
		Infix: true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			return &Infix{
				Base:        Base{Mode: ctx.Parser.Mode()},
				ReplaceWith: infixReplacements[ctx.FuncName],
				Token:       ctx.Token,
			}, nil
		},
	}, `\over`, `\choose`, `\atop`, `\brace`, `\brack`)

	DefineFunction(FunctionSpec{
		Type:              "genfrac",
		NumArgs:           6,
		AllowedInArgument: true,
		ArgTypes:          []ArgType{ArgMath, ArgMath, ArgSize, ArgText, ArgMath, ArgMath},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			frac := &GenFrac{
				Base:  Base{Mode: ctx.Parser.Mode()},
				Numer: args[4],
				Denom: args[5],
				Size:  "auto",
			}
			if a, ok := NormalizeArgument(args[0]).(*Atom); ok && a.Family == FamilyOpen {
				frac.LeftDelim = delimFromValue(a.Text)
			}
			if a, ok := NormalizeArgument(args[1]).(*Atom); ok && a.Family == FamilyClose {
				frac.RightDelim = delimFromValue(a.Text)
			}

			bar, err := assertNode[*Size](args[2], "size")
			if err != nil {
				return nil, err
			}
			if bar.IsBlank {
				frac.HasBarLine = true
			} else {
				v := bar.Value
				frac.BarSize = &v
				frac.HasBarLine = v.Number > 0
			}

			var styleText string
			if g, ok := args[3].(*OrdGroup); ok {
				if len(g.Body) > 0 {
					t, err := assertNode[*TextOrd](g.Body[0], "textord")
					if err != nil {
						return nil, err
					}
					styleText = t.Text
				}
			} else {
				t, err := assertNode[*TextOrd](args[3], "textord")
				if err != nil {
					return nil, err
				}
				styleText = t.Text
			}
			if styleText != "" {
				if i, err := strconv.Atoi(styleText); err == nil && i >= 0 && i < len(fracStyles) {
					frac.Size = fracStyles[i]
				}
			}
			return frac, nil
		},
	}, `\genfrac`)

	DefineFunction(FunctionSpec{
		Type:     "infix",
		NumArgs:  1,
		ArgTypes: []ArgType{ArgSize},
		Infix:    true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			size, err := assertNode[*Size](args[0], "size")
			if err != nil {
				return nil, err
			}
			v := size.Value
			return &Infix{
				Base:        Base{Mode: ctx.Parser.Mode()},
				ReplaceWith: `\\abovefrac`,
				Size:        &v,
				Token:       ctx.Token,
			}, nil
		},
	}, `\above`)

	DefineFunction(FunctionSpec{
		Type:     "genfrac",
		NumArgs:  3,
		ArgTypes: []ArgType{ArgMath, ArgSize, ArgMath},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			infix, err := assertNode[*Infix](args[1], "infix")
			if err != nil {
				return nil, err
			}
			if infix.Size == nil {
				return nil, NewParseError(`\above requires a size`, infix.Token)
			}
			return &GenFrac{
				Base:       Base{Mode: ctx.Parser.Mode()},
				Numer:      args[0],
				Denom:      args[2],
				HasBarLine: infix.Size.Number > 0,
				Size:       "auto",
				BarSize:    infix.Size,
			}, nil
		},
	}, `\\abovefrac`)
}

// stripPrefix removes a leading backslash from a command name.
func stripPrefix(name string) string {
	return strings.TrimPrefix(name, `\`)
}
