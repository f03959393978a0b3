package parse

var singleCharBigOps = map[string]string{
	"∏": `\prod`, "∐": `\coprod`, "∑": `\sum`,
	"⋀": `\bigwedge`, "⋁": `\bigvee`, "⋂": `\bigcap`, "⋃": `\bigcup`,
	"⨀": `\bigodot`, "⨁": `\bigoplus`, "⨂": `\bigotimes`,
	"⨄": `\biguplus`, "⨆": `\bigsqcup`,
}

var singleCharIntegrals = map[string]string{
	"∫": `\int`, "∬": `\iint`, "∭": `\iiint`,
	"∮": `\oint`, "∯": `\oiint`, "∰": `\oiiint`,
}

func defineOpFunctions() {
	DefineFunction(FunctionSpec{
		Type: "op",
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			name := ctx.FuncName
			if op, ok := singleCharBigOps[name]; ok {
				name = op
			}
			return &Op{Base: Base{Mode: ctx.Parser.Mode()}, Limits: true, Symbol: true, Name: name}, nil
		},
	},
		`\coprod`, `\bigvee`, `\bigwedge`, `\biguplus`, `\bigcap`, `\bigcup`,
		`\intop`, `\prod`, `\sum`, `\bigotimes`, `\bigoplus`, `\bigodot`,
		`\bigsqcup`, `\smallint`,
		"∏", "∐", "∑", "⋀", "⋁", "⋂", "⋃", "⨀", "⨁", "⨂", "⨄", "⨆",
	)

	DefineFunction(FunctionSpec{
		Type:      "op",
		NumArgs:   1,
		Primitive: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &Op{Base: Base{Mode: ctx.Parser.Mode()}, Body: OrdArgument(args[0])}, nil
		},
	}, `\mathop`)

	DefineFunction(FunctionSpec{
		Type: "op",
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			return &Op{Base: Base{Mode: ctx.Parser.Mode()}, Name: ctx.FuncName}, nil
		},
	},
		`\arcsin`, `\arccos`, `\arctan`, `\arctg`, `\arcctg`, `\arg`, `\ch`,
		`\cos`, `\cosec`, `\cosh`, `\cot`, `\cotg`, `\coth`, `\csc`, `\ctg`,
		`\cth`, `\deg`, `\dim`, `\exp`, `\hom`, `\ker`, `\lg`, `\ln`, `\log`,
		`\sec`, `\sin`, `\sinh`, `\sh`, `\tan`, `\tanh`, `\tg`, `\th`,
	)

	DefineFunction(FunctionSpec{
		Type: "op",
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			return &Op{Base: Base{Mode: ctx.Parser.Mode()}, Limits: true, Name: ctx.FuncName}, nil
		},
	}, `\det`, `\gcd`, `\inf`, `\lim`, `\max`, `\min`, `\Pr`, `\sup`)

	DefineFunction(FunctionSpec{
		Type:              "op",
		AllowedInArgument: true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			name := ctx.FuncName
			if op, ok := singleCharIntegrals[name]; ok {
				name = op
			}
			return &Op{Base: Base{Mode: ctx.Parser.Mode()}, Symbol: true, Name: name}, nil
		},
	},
		`\int`, `\iint`, `\iiint`, `\oint`, `\oiint`, `\oiiint`,
		"∫", "∬", "∭", "∮", "∯", "∰",
	)

	DefineFunction(FunctionSpec{
		Type:    "operatorname",
		NumArgs: 1,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &OperatorName{
				Base:               Base{Mode: ctx.Parser.Mode()},
				Body:               OrdArgument(args[0]),
				AlwaysHandleSupSub: ctx.FuncName == `\operatornamewithlimits`,
			}, nil
		},
	}, `\operatorname@`, `\operatornamewithlimits`)
}

func defineClassFunctions() {
	DefineFunction(FunctionSpec{
		Type:      "mclass",
		NumArgs:   1,
		Primitive: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &MClass{
				Base:           Base{Mode: ctx.Parser.Mode()},
				MClass:         "m" + ctx.FuncName[5:],
				Body:           OrdArgument(args[0]),
				IsCharacterBox: IsCharacterBox(args[0]),
			}, nil
		},
	},
		`\mathord`, `\mathbin`, `\mathrel`, `\mathopen`,
		`\mathclose`, `\mathpunct`, `\mathinner`,
	)

	DefineFunction(FunctionSpec{
		Type:    "mclass",
		NumArgs: 2,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &MClass{
				Base:           Base{Mode: ctx.Parser.Mode()},
				MClass:         BinRelClass(args[0]),
				Body:           OrdArgument(args[1]),
				IsCharacterBox: IsCharacterBox(args[1]),
			}, nil
		},
	}, `\@binrel`)

	DefineFunction(FunctionSpec{
		Type:    "mclass",
		NumArgs: 2,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			name := ctx.FuncName
			baseArg, shiftedArg := args[1], args[0]
			mclass := "mrel"
			if name != `\stackrel` {
				mclass = BinRelClass(baseArg)
			}
			op := &Op{
				Base:               Base{Mode: ModeOf(baseArg)},
				Limits:             true,
				AlwaysHandleSupSub: true,
				SuppressBaseShift:  name != `\stackrel`,
				Body:               OrdArgument(baseArg),
			}
			supsub := &SupSub{Base: Base{Mode: ModeOf(shiftedArg)}, Nucleus: op}
			if name == `\underset` {
				supsub.Sub = shiftedArg
			} else {
				supsub.Sup = shiftedArg
			}
			return &MClass{
				Base:           Base{Mode: ctx.Parser.Mode()},
				MClass:         mclass,
				Body:           []Node{supsub},
				IsCharacterBox: IsCharacterBox(supsub),
			}, nil
		},
	}, `\stackrel`, `\overset`, `\underset`)
}
