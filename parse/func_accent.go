package parse

var nonStretchyAccents = map[string]bool{
	`\acute`: true, `\grave`: true, `\ddot`: true, `\tilde`: true,
	`\bar`: true, `\breve`: true, `\check`: true, `\hat`: true,
	`\vec`: true, `\dot`: true, `\mathring`: true,
}

var shiftyStretchyAccents = map[string]bool{
	`\widehat`: true, `\widetilde`: true, `\widecheck`: true,
}

func defineAccentFunctions() {
	DefineFunction(FunctionSpec{
		Type:    "accent",
		NumArgs: 1,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			base := NormalizeArgument(args[0])
			isStretchy := !nonStretchyAccents[ctx.FuncName]
			isShifty := !isStretchy || shiftyStretchyAccents[ctx.FuncName]
			return &Accent{
				Base:       Base{Mode: ctx.Parser.Mode()},
				Label:      ctx.FuncName,
				IsStretchy: isStretchy,
				IsShifty:   isShifty,
				Nucleus:    base,
			}, nil
		},
	},
		`\acute`, `\grave`, `\ddot`, `\tilde`, `\bar`, `\breve`,
		`\check`, `\hat`, `\vec`, `\dot`, `\mathring`,
		`\widecheck`, `\widehat`, `\widetilde`,
		`\overrightarrow`, `\overleftarrow`, `\Overrightarrow`,
		`\overleftrightarrow`, `\overgroup`, `\overlinesegment`,
		`\overleftharpoon`, `\overrightharpoon`,
	)

	// Text-mode accents.
	DefineFunction(FunctionSpec{
		Type:          "accent",
		NumArgs:       1,
		AllowedInText: true,
		ArgTypes:      []ArgType{ArgPrimitive},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			p := ctx.Parser
			mode := p.Mode()
			if mode == MathMode {
				if err := p.Settings().ReportNonstrict("mathVsTextAccents",
					"LaTeX's accent "+ctx.FuncName+" works only in text mode", ctx.Token); err != nil {
					return nil, err
				}
				mode = TextMode
			}
			return &Accent{
				Base:     Base{Mode: mode},
				Label:    ctx.FuncName,
				IsShifty: true,
				Nucleus:  args[0],
			}, nil
		},
	},
		`\'`, "\\`", `\^`, `\~`, `\=`, `\u`, `\.`, `\"`,
		`\c`, `\r`, `\H`, `\v`, `\textcircled`,
	)

	DefineFunction(FunctionSpec{
		Type:    "accentUnder",
		NumArgs: 1,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &AccentUnder{
				Base:    Base{Mode: ctx.Parser.Mode()},
				Label:   ctx.FuncName,
				Nucleus: args[0],
			}, nil
		},
	},
		`\underleftarrow`, `\underrightarrow`, `\underleftrightarrow`,
		`\undergroup`, `\underlinesegment`, `\utilde`,
	)

	DefineFunction(FunctionSpec{
		Type:    "horizBrace",
		NumArgs: 1,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			name := ctx.FuncName
			return &HorizBrace{
				Base:    Base{Mode: ctx.Parser.Mode()},
				Label:   name,
				IsOver:  len(name) > 5 && name[:5] == `\over`,
				Nucleus: args[0],
			}, nil
		},
	},
		`\overbrace`, `\underbrace`, `\overbracket`, `\underbracket`,
	)
}

func defineArrowFunctions() {
	DefineFunction(FunctionSpec{
		Type:            "xArrow",
		NumArgs:         1,
		NumOptionalArgs: 1,
		Handler: func(ctx *FunctionContext, args, optArgs []Node) (Node, error) {
			return &XArrow{
				Base:  Base{Mode: ctx.Parser.Mode()},
				Label: ctx.FuncName,
				Body:  args[0],
				Below: optArgs[0],
			}, nil
		},
	},
		`\xleftarrow`, `\xrightarrow`, `\xLeftarrow`, `\xRightarrow`,
		`\xleftrightarrow`, `\xLeftrightarrow`, `\xhookleftarrow`,
		`\xhookrightarrow`, `\xmapsto`, `\xrightharpoondown`,
		`\xrightharpoonup`, `\xleftharpoondown`, `\xleftharpoonup`,
		`\xrightleftharpoons`, `\xleftrightharpoons`, `\xlongequal`,
		`\xtwoheadrightarrow`, `\xtwoheadleftarrow`, `\xtofrom`,
		// mhchem arrows
		`\xrightleftarrows`, `\xrightequilibrium`, `\xleftequilibrium`,
		// cd arrows
		`\\cdrightarrow`, `\\cdleftarrow`, `\\cdlongequal`,
	)
}
