package parse

func defineBoxFunctions() {
	DefineFunction(FunctionSpec{
		Type:          "hbox",
		NumArgs:       1,
		ArgTypes:      []ArgType{ArgText},
		AllowedInText: true,
		Primitive:     true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &HBox{Base: Base{Mode: ctx.Parser.Mode()}, Body: OrdArgument(args[0])}, nil
		},
	}, `\hbox`)

	DefineFunction(FunctionSpec{
		Type:          "lap",
		NumArgs:       1,
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &Lap{
				Base:      Base{Mode: ctx.Parser.Mode()},
				Alignment: ctx.FuncName[5:],
				Body:      args[0],
			}, nil
		},
	}, `\mathllap`, `\mathrlap`, `\mathclap`)

	DefineFunction(FunctionSpec{
		Type:          "raisebox",
		NumArgs:       2,
		ArgTypes:      []ArgType{ArgSize, ArgHBox},
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			dy, err := assertNode[*Size](args[0], "size")
			if err != nil {
				return nil, err
			}
			return &RaiseBox{Base: Base{Mode: ctx.Parser.Mode()}, Dy: dy.Value, Body: args[1]}, nil
		},
	}, `\raisebox`)

	DefineFunction(FunctionSpec{
		Type:            "rule",
		NumArgs:         2,
		NumOptionalArgs: 1,
		ArgTypes:        []ArgType{ArgSize, ArgSize, ArgSize},
		AllowedInText:   true,
		Handler: func(ctx *FunctionContext, args, optArgs []Node) (Node, error) {
			width, err := assertNode[*Size](args[0], "size")
			if err != nil {
				return nil, err
			}
			height, err := assertNode[*Size](args[1], "size")
			if err != nil {
				return nil, err
			}
			rule := &Rule{
				Base:   Base{Mode: ctx.Parser.Mode()},
				Width:  width.Value,
				Height: height.Value,
			}
			if optArgs[0] != nil {
				shift, err := assertNode[*Size](optArgs[0], "size")
				if err != nil {
					return nil, err
				}
				v := shift.Value
				rule.Shift = &v
			}
			return rule, nil
		},
	}, `\rule`)

	DefineFunction(FunctionSpec{
		Type:            "smash",
		NumArgs:         1,
		NumOptionalArgs: 1,
		AllowedInText:   true,
		Handler: func(ctx *FunctionContext, args, optArgs []Node) (Node, error) {
			smash := &Smash{Base: Base{Mode: ctx.Parser.Mode()}, Body: args[0]}
			if optArgs[0] == nil {
				smash.SmashHeight, smash.SmashDepth = true, true
				return smash, nil
			}
			tb, err := assertNode[*OrdGroup](optArgs[0], "ordgroup")
			if err != nil {
				return nil, err
			}
			for _, n := range tb.Body {
				letter, _ := SymbolText(n)
				switch letter {
				case "t":
					smash.SmashHeight = true
				case "b":
					smash.SmashDepth = true
				default:
					smash.SmashHeight, smash.SmashDepth = false, false
					return smash, nil
				}
			}
			return smash, nil
		},
	}, `\smash`)

	DefineFunction(FunctionSpec{
		Type:          "phantom",
		NumArgs:       1,
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &Phantom{Base: Base{Mode: ctx.Parser.Mode()}, Body: OrdArgument(args[0])}, nil
		},
	}, `\phantom`)

	DefineFunction(FunctionSpec{
		Type:          "hphantom",
		NumArgs:       1,
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &HPhantom{Base: Base{Mode: ctx.Parser.Mode()}, Body: args[0]}, nil
		},
	}, `\hphantom`)

	DefineFunction(FunctionSpec{
		Type:          "vphantom",
		NumArgs:       1,
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &VPhantom{Base: Base{Mode: ctx.Parser.Mode()}, Body: args[0]}, nil
		},
	}, `\vphantom`)

	DefineFunction(FunctionSpec{
		Type:     "vcenter",
		NumArgs:  1,
		ArgTypes: []ArgType{ArgOriginal},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &VCenter{Base: Base{Mode: ctx.Parser.Mode()}, Body: args[0]}, nil
		},
	}, `\vcenter`)

	DefineFunction(FunctionSpec{
		Type:    "overline",
		NumArgs: 1,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &Overline{Base: Base{Mode: ctx.Parser.Mode()}, Body: args[0]}, nil
		},
	}, `\overline`)

	DefineFunction(FunctionSpec{
		Type:          "underline",
		NumArgs:       1,
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &Underline{Base: Base{Mode: ctx.Parser.Mode()}, Body: args[0]}, nil
		},
	}, `\underline`)

	DefineFunction(FunctionSpec{
		Type:          "pmb",
		NumArgs:       1,
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &Pmb{
				Base:   Base{Mode: ctx.Parser.Mode()},
				MClass: BinRelClass(args[0]),
				Body:   OrdArgument(args[0]),
			}, nil
		},
	}, `\pmb`)

	DefineFunction(FunctionSpec{
		Type:            "sqrt",
		NumArgs:         1,
		NumOptionalArgs: 1,
		Handler: func(ctx *FunctionContext, args, optArgs []Node) (Node, error) {
			return &Sqrt{Base: Base{Mode: ctx.Parser.Mode()}, Body: args[0], Index: optArgs[0]}, nil
		},
	}, `\sqrt`)
}
