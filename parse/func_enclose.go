package parse

func defineEncloseFunctions() {
	DefineFunction(FunctionSpec{
		Type:          "enclose",
		NumArgs:       2,
		AllowedInText: true,
		ArgTypes:      []ArgType{ArgColor, ArgText},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			c, err := assertNode[*ColorToken](args[0], "color-token")
			if err != nil {
				return nil, err
			}
			return &Enclose{
				Base:            Base{Mode: ctx.Parser.Mode()},
				Label:           ctx.FuncName,
				BackgroundColor: c.Color,
				Body:            args[1],
			}, nil
		},
	}, `\colorbox`)

	DefineFunction(FunctionSpec{
		Type:          "enclose",
		NumArgs:       3,
		AllowedInText: true,
		ArgTypes:      []ArgType{ArgColor, ArgColor, ArgText},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			border, err := assertNode[*ColorToken](args[0], "color-token")
			if err != nil {
				return nil, err
			}
			bg, err := assertNode[*ColorToken](args[1], "color-token")
			if err != nil {
				return nil, err
			}
			return &Enclose{
				Base:            Base{Mode: ctx.Parser.Mode()},
				Label:           ctx.FuncName,
				BackgroundColor: bg.Color,
				BorderColor:     border.Color,
				Body:            args[2],
			}, nil
		},
	}, `\fcolorbox`)

	DefineFunction(FunctionSpec{
		Type:          "enclose",
		NumArgs:       1,
		AllowedInText: true,
		ArgTypes:      []ArgType{ArgHBox},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &Enclose{Base: Base{Mode: ctx.Parser.Mode()}, Label: `\fbox`, Body: args[0]}, nil
		},
	}, `\fbox`)

	DefineFunction(FunctionSpec{
		Type:    "enclose",
		NumArgs: 1,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &Enclose{Base: Base{Mode: ctx.Parser.Mode()}, Label: ctx.FuncName, Body: args[0]}, nil
		},
	}, `\cancel`, `\bcancel`, `\xcancel`, `\sout`, `\phase`)

	DefineFunction(FunctionSpec{
		Type:     "enclose",
		NumArgs:  1,
		ArgTypes: []ArgType{ArgHBox},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &Enclose{Base: Base{Mode: ctx.Parser.Mode()}, Label: `\angl`, Body: args[0]}, nil
		},
	}, `\angl`)
}

func defineEnvironmentFunctions() {
	DefineFunction(FunctionSpec{
		Type:     "environment",
		NumArgs:  1,
		ArgTypes: []ArgType{ArgText},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			p := ctx.Parser
			nameGroup, ok := args[0].(*OrdGroup)
			if !ok {
				return nil, NewParseError("Invalid environment name", args[0])
			}
			var envName string
			for _, n := range nameGroup.Body {
				t, err := assertNode[*TextOrd](n, "textord")
				if err != nil {
					return nil, err
				}
				envName += t.Text
			}

			if ctx.FuncName != `\begin` {
				return &Environment{Base: Base{Mode: p.Mode()}, Name: envName, NameGroup: nameGroup}, nil
			}

			env, ok := environments[envName]
			if !ok {
				return nil, NewParseError("No such environment: "+envName, nameGroup)
			}
			envArgs, envOptArgs, err := p.parseArguments(`\begin{`+envName+`}`, argSpec{
				numArgs:         env.NumArgs,
				numOptionalArgs: env.NumOptionalArgs,
				argTypes:        env.ArgTypes,
			})
			if err != nil {
				return nil, err
			}
			result, err := env.Handler(&EnvContext{
				Mode:    p.Mode(),
				EnvName: envName,
				Parser:  p,
			}, envArgs, envOptArgs)
			if err != nil {
				return nil, err
			}
			if err := p.Expect(`\end`, false); err != nil {
				return nil, err
			}
			endNameToken := p.nextToken
			n, err := p.ParseFunction("", "")
			if err != nil {
				return nil, err
			}
			end, err := assertNode[*Environment](n, "environment")
			if err != nil {
				return nil, err
			}
			if end.Name != envName {
				return nil, Errorf(endNameToken, `Mismatch: \begin{%s} matched by \end{%s}`, envName, end.Name)
			}
			return result, nil
		},
	}, `\begin`, `\end`)
}
