package parse

import (
	"fmt"
	"slices"
)

func defineKernFunctions() {
	DefineFunction(FunctionSpec{
		Type:          "kern",
		NumArgs:       1,
		ArgTypes:      []ArgType{ArgSize},
		Primitive:     true,
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			p := ctx.Parser
			size, err := assertNode[*Size](args[0], "size")
			if err != nil {
				return nil, err
			}
			name := ctx.FuncName
			mathFunction := name[1] == 'm'
			muUnit := size.Value.Unit == "mu"
			report := func(msg string) error {
				return p.Settings().ReportNonstrict("mathVsTextUnits", msg, ctx.Token)
			}
			if mathFunction {
				if !muUnit {
					if err := report(fmt.Sprintf("LaTeX's %s supports only mu units, not %s units", name, size.Value.Unit)); err != nil {
						return nil, err
					}
				}
				if p.Mode() != MathMode {
					if err := report(fmt.Sprintf("LaTeX's %s works only in math mode", name)); err != nil {
						return nil, err
					}
				}
			} else if muUnit {
				if err := report(fmt.Sprintf("LaTeX's %s doesn't support mu units", name)); err != nil {
					return nil, err
				}
			}
			return &Kern{Base: Base{Mode: p.Mode()}, Dimension: size.Value}, nil
		},
	}, `\kern`, `\mkern`, `\hskip`, `\mskip`)
}

func defineMathFunctions() {
	DefineFunction(FunctionSpec{
		Type:          "styling",
		AllowedInText: true,
		TextOnly:      true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			p := ctx.Parser
			outer := p.Mode()
			p.SwitchMode(MathMode)
			closer := "$"
			if ctx.FuncName == `\(` {
				closer = `\)`
			}
			body, err := p.ParseExpression(false, closer)
			if err != nil {
				return nil, err
			}
			if err := p.Expect(closer, true); err != nil {
				return nil, err
			}
			p.SwitchMode(outer)
			return &Styling{Base: Base{Mode: p.Mode()}, Style: "text", Body: body}, nil
		},
	}, `\(`, "$")

	DefineFunction(FunctionSpec{
		Type:          "text",
		AllowedInText: true,
		TextOnly:      true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			return nil, NewParseError("Mismatched "+ctx.FuncName, ctx.Token)
		},
	}, `\)`, `\]`)

	DefineFunction(FunctionSpec{
		Type:      "mathchoice",
		NumArgs:   4,
		Primitive: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &MathChoice{
				Base:         Base{Mode: ctx.Parser.Mode()},
				Display:      OrdArgument(args[0]),
				Text:         OrdArgument(args[1]),
				Script:       OrdArgument(args[2]),
				ScriptScript: OrdArgument(args[3]),
			}, nil
		},
	}, `\mathchoice`)

	DefineFunction(FunctionSpec{
		Type:              "internal",
		AllowedInText:     true,
		AllowedInArgument: true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			return &Internal{Base: Base{Mode: ctx.Parser.Mode()}}, nil
		},
	}, `\relax`)

	// A well-formed \verb is lexed as a single token, so reaching the
	// function means the delimiter was never closed.
	DefineFunction(FunctionSpec{
		Type:          "verb",
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			return nil, NewParseError(`\verb ended by end of line instead of matching delimiter`, ctx.Token)
		},
	}, `\verb`)

	DefineFunction(FunctionSpec{
		Type:          "hline",
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			return nil, Errorf(ctx.Token, "%s valid only within array environment", ctx.FuncName)
		},
	}, `\hline`, `\hdashline`)
}

var sizeFuncs = []string{
	`\tiny`, `\sixptsize`, `\scriptsize`, `\footnotesize`, `\small`,
	`\normalsize`, `\large`, `\Large`, `\LARGE`, `\huge`, `\Huge`,
}

func defineSizingFunctions() {
	DefineFunction(FunctionSpec{
		Type:          "sizing",
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			p := ctx.Parser
			body, err := p.ParseExpression(false, ctx.BreakOnTokenText)
			if err != nil {
				return nil, err
			}
			return &Sizing{
				Base: Base{Mode: p.Mode()},
				Size: slices.Index(sizeFuncs, ctx.FuncName) + 1,
				Body: body,
			}, nil
		},
	}, sizeFuncs...)

	DefineFunction(FunctionSpec{
		Type:          "styling",
		AllowedInText: true,
		Primitive:     true,
		Handler: func(ctx *FunctionContext, _, _ []Node) (Node, error) {
			p := ctx.Parser
			body, err := p.ParseExpression(true, ctx.BreakOnTokenText)
			if err != nil {
				return nil, err
			}
			name := stripPrefix(ctx.FuncName)
			return &Styling{
				Base:  Base{Mode: p.Mode()},
				Style: name[:len(name)-len("style")],
				Body:  body,
			}, nil
		},
	}, `\displaystyle`, `\textstyle`, `\scriptstyle`, `\scriptscriptstyle`)
}

func defineTextFunctions() {
	DefineFunction(FunctionSpec{
		Type:              "text",
		NumArgs:           1,
		ArgTypes:          []ArgType{ArgText},
		AllowedInArgument: true,
		AllowedInText:     true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &Text{
				Base: Base{Mode: ctx.Parser.Mode()},
				Body: OrdArgument(args[0]),
				Font: ctx.FuncName,
			}, nil
		},
	},
		// families
		`\text`, `\textrm`, `\textsf`, `\texttt`, `\textnormal`,
		// weights
		`\textbf`, `\textmd`,
		// shapes
		`\textit`, `\textup`, `\emph`,
	)
}
