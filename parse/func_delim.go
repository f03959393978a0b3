package parse

var delimiterSizes = map[string]struct {
	MClass string
	Size   int
}{
	`\bigl`: {"mopen", 1}, `\Bigl`: {"mopen", 2}, `\biggl`: {"mopen", 3}, `\Biggl`: {"mopen", 4},
	`\bigr`: {"mclose", 1}, `\Bigr`: {"mclose", 2}, `\biggr`: {"mclose", 3}, `\Biggr`: {"mclose", 4},
	`\bigm`: {"mrel", 1}, `\Bigm`: {"mrel", 2}, `\biggm`: {"mrel", 3}, `\Biggm`: {"mrel", 4},
	`\big`: {"mord", 1}, `\Big`: {"mord", 2}, `\bigg`: {"mord", 3}, `\Bigg`: {"mord", 4},
}

// Delimiters lists the symbols accepted after \left, \right, \middle and
// the \big family.
var Delimiters = map[string]bool{
	"(": true, `\lparen`: true, ")": true, `\rparen`: true,
	"[": true, `\lbrack`: true, "]": true, `\rbrack`: true,
	`\{`: true, `\lbrace`: true, `\}`: true, `\rbrace`: true,
	`\lfloor`: true, `\rfloor`: true, "⌊": true, "⌋": true,
	`\lceil`: true, `\rceil`: true, "⌈": true, "⌉": true,
	"<": true, ">": true, `\langle`: true, "⟨": true, `\rangle`: true, "⟩": true,
	`\lt`: true, `\gt`: true, `\lvert`: true, `\rvert`: true, `\lVert`: true, `\rVert`: true,
	`\lgroup`: true, `\rgroup`: true, "⟮": true, "⟯": true,
	`\lmoustache`: true, `\rmoustache`: true, "⎰": true, "⎱": true,
	"/": true, `\backslash`: true,
	"|": true, `\vert`: true, `\|`: true, `\Vert`: true,
	`\uparrow`: true, `\Uparrow`: true,
	`\downarrow`: true, `\Downarrow`: true,
	`\updownarrow`: true, `\Updownarrow`: true,
	".": true,
}

// checkDelimiter returns the delimiter text of a delimiter argument.
func checkDelimiter(delim Node, ctx *FunctionContext) (string, error) {
	text, ok := SymbolText(delim)
	if !ok {
		return "", Errorf(delim, "Invalid delimiter type '%s'", delim.Type())
	}
	if !Delimiters[text] {
		return "", Errorf(delim, "Invalid delimiter '%s' after '%s'", text, ctx.FuncName)
	}
	return text, nil
}

func defineDelimFunctions() {
	DefineFunction(FunctionSpec{
		Type:     "delimsizing",
		NumArgs:  1,
		ArgTypes: []ArgType{ArgPrimitive},
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			delim, err := checkDelimiter(args[0], ctx)
			if err != nil {
				return nil, err
			}
			size := delimiterSizes[ctx.FuncName]
			return &DelimSizing{
				Base:   Base{Mode: ctx.Parser.Mode()},
				Size:   size.Size,
				MClass: size.MClass,
				Delim:  delim,
			}, nil
		},
	},
		`\bigl`, `\Bigl`, `\biggl`, `\Biggl`,
		`\bigr`, `\Bigr`, `\biggr`, `\Biggr`,
		`\bigm`, `\Bigm`, `\biggm`, `\Biggm`,
		`\big`, `\Big`, `\bigg`, `\Bigg`,
	)

	DefineFunction(FunctionSpec{
		Type:      "leftright-right",
		NumArgs:   1,
		Primitive: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			delim, err := checkDelimiter(args[0], ctx)
			if err != nil {
				return nil, err
			}
			// \color sets \current@color for the \right delimiter.
			color, _, err := ctx.Parser.Gullet().ExpandMacroAsText(`\current@color`)
			if err != nil {
				return nil, err
			}
			return &LeftRightRight{
				Base:  Base{Mode: ctx.Parser.Mode()},
				Delim: delim,
				Color: color,
			}, nil
		},
	}, `\right`)

	DefineFunction(FunctionSpec{
		Type:      "leftright",
		NumArgs:   1,
		Primitive: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			delim, err := checkDelimiter(args[0], ctx)
			if err != nil {
				return nil, err
			}
			p := ctx.Parser
			p.leftrightDepth++
			body, err := p.ParseExpression(false, "")
			p.leftrightDepth--
			if err != nil {
				return nil, err
			}
			if err := p.Expect(`\right`, false); err != nil {
				return nil, err
			}
			n, err := p.ParseFunction("", "")
			if err != nil {
				return nil, err
			}
			right, err := assertNode[*LeftRightRight](n, "leftright-right")
			if err != nil {
				return nil, err
			}
			return &LeftRight{
				Base:       Base{Mode: p.Mode()},
				Body:       body,
				Left:       delim,
				Right:      right.Delim,
				RightColor: right.Color,
			}, nil
		},
	}, `\left`)

	DefineFunction(FunctionSpec{
		Type:      "middle",
		NumArgs:   1,
		Primitive: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			delim, err := checkDelimiter(args[0], ctx)
			if err != nil {
				return nil, err
			}
			if ctx.Parser.leftrightDepth == 0 {
				return nil, NewParseError(`\middle without preceding \left`, args[0])
			}
			return &Middle{Base: Base{Mode: ctx.Parser.Mode()}, Delim: delim}, nil
		},
	}, `\middle`)
}
