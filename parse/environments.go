package parse

import (
	"strconv"
	"strings"
)

// EnvContext is passed to environment handlers.
type EnvContext struct {
	Mode    Mode
	EnvName string
	Parser  *Parser
}

// EnvHandler builds the node for a \begin{...}...\end{...} block. The
// handler parses the body itself; the closing \end is checked by the caller.
type EnvHandler func(ctx *EnvContext, args, optArgs []Node) (Node, error)

// EnvSpec describes an environment.
type EnvSpec struct {
	Type            string
	NumArgs         int
	NumOptionalArgs int
	ArgTypes        []ArgType
	Handler         EnvHandler
}

// environments is the environment table. It is filled by init and read-only
// after.
var environments = make(map[string]*EnvSpec)

func init() {
	defineArrayEnvironments()
}

// DefineEnvironment registers spec under each of names. It must only be
// called during program initialization.
func DefineEnvironment(spec EnvSpec, names ...string) {
	for _, name := range names {
		s := spec
		environments[name] = &s
	}
}

// LookupEnvironment returns the environment registered under name.
func LookupEnvironment(name string) (*EnvSpec, bool) {
	e, ok := environments[name]
	return e, ok
}

// arrayOptions controls parseArray.
type arrayOptions struct {
	hskipBeforeAndAfter bool
	addJot              bool
	cols                []AlignSpec
	arrayStretch        float64
	colSeparationType   string
	// autoTag is nil when rows are not numbered at all.
	autoTag        *bool
	singleRow      bool
	emptySingleRow bool
	maxNumCols     int
	leqno          bool
}

// getHLines consumes the \hline and \hdashline commands at the start of a
// row and reports, for each, whether it is dashed.
func getHLines(p *Parser) ([]bool, error) {
	hlines := []bool{}
	if err := p.ConsumeSpaces(); err != nil {
		return nil, err
	}
	tok, err := p.Fetch()
	if err != nil {
		return nil, err
	}
	if tok.Text == `\relax` {
		p.Consume()
		if err := p.ConsumeSpaces(); err != nil {
			return nil, err
		}
		if tok, err = p.Fetch(); err != nil {
			return nil, err
		}
	}
	for tok.Text == `\hline` || tok.Text == `\hdashline` {
		p.Consume()
		hlines = append(hlines, tok.Text == `\hdashline`)
		if err := p.ConsumeSpaces(); err != nil {
			return nil, err
		}
		if tok, err = p.Fetch(); err != nil {
			return nil, err
		}
	}
	return hlines, nil
}

func validateAmsEnvironmentContext(ctx *EnvContext) error {
	if !ctx.Parser.Settings().DisplayMode {
		return Errorf(nil, "{%s} can be used only in display mode.", ctx.EnvName)
	}
	return nil
}

// getAutoTag decides whether an amsmath environment numbers its rows:
// starred forms do not, and the "-ed" forms have no tags at all.
func getAutoTag(name string) *bool {
	if strings.Contains(name, "ed") {
		return nil
	}
	v := !strings.Contains(name, "*")
	return &v
}

// parseArray parses the body of an array-like environment up to \end.
// Cells are separated by & and rows by \\ or \cr.
func parseArray(p *Parser, opts arrayOptions, style string) (*Array, error) {
	gullet := p.Gullet()
	macros := gullet.Macros()
	gullet.BeginGroup()
	if !opts.singleRow {
		// \cr is \\ that does not look for a size argument.
		macros.Set(`\cr`, &Macro{Text: `\\\relax`}, false)
	}

	stretch := opts.arrayStretch
	if stretch == 0 {
		text, ok, err := gullet.ExpandMacroAsText(`\arraystretch`)
		if err != nil {
			return nil, err
		}
		if !ok {
			stretch = 1
		} else {
			stretch, err = strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil || stretch <= 0 {
				return nil, NewParseError(`Invalid \arraystretch: `+text, nil)
			}
		}
	}

	gullet.BeginGroup()

	body := [][]Node{{}}
	var rowGaps []*Measurement
	var hlinesBeforeRow [][]bool
	var tags []ArrayTag
	hasTags := opts.autoTag != nil

	beginRow := func() {
		if opts.autoTag != nil && *opts.autoTag {
			macros.Set(`\@eqnsw`, &Macro{Text: "1"}, true)
		}
	}
	endRow := func() error {
		if !hasTags {
			return nil
		}
		if _, ok := macros.Get(`\df@tag`); ok {
			tag, err := p.Subparse([]*Token{NewToken(`\df@tag`, nil)})
			if err != nil {
				return err
			}
			tags = append(tags, ArrayTag{Body: tag})
			macros.Delete(`\df@tag`, true)
			return nil
		}
		auto := false
		if *opts.autoTag {
			if m, ok := macros.Get(`\@eqnsw`); ok && m != nil && m.Text == "1" {
				auto = true
			}
		}
		tags = append(tags, ArrayTag{Auto: auto})
		return nil
	}

	beginRow()
	hlines, err := getHLines(p)
	if err != nil {
		return nil, err
	}
	hlinesBeforeRow = append(hlinesBeforeRow, hlines)

	breakOn := `\\`
	if opts.singleRow {
		breakOn = `\end`
	}
	for {
		cellBody, err := p.ParseExpression(false, breakOn)
		if err != nil {
			return nil, err
		}
		if err := gullet.EndGroup(); err != nil {
			return nil, err
		}
		gullet.BeginGroup()

		var cell Node = &OrdGroup{Base: Base{Mode: p.Mode()}, Body: cellBody}
		if style != "" {
			cell = &Styling{Base: Base{Mode: p.Mode()}, Style: style, Body: []Node{cell}}
		}
		row := append(body[len(body)-1], cell)
		body[len(body)-1] = row

		next, err := p.Fetch()
		if err != nil {
			return nil, err
		}
		switch next.Text {
		case "&":
			if opts.maxNumCols > 0 && len(row) == opts.maxNumCols {
				if opts.singleRow || opts.colSeparationType != "" {
					return nil, NewParseError("Too many tab characters: &", next)
				}
				if err := p.Settings().ReportNonstrict("textEnv",
					"Too few columns specified in the {array} column argument.", next); err != nil {
					return nil, err
				}
			}
			p.Consume()
			continue
		case `\end`:
			if err := endRow(); err != nil {
				return nil, err
			}
			if len(row) == 1 && len(cellBody) == 0 && (len(body) > 1 || !opts.emptySingleRow) {
				body = body[:len(body)-1]
			}
			if len(hlinesBeforeRow) < len(body)+1 {
				hlinesBeforeRow = append(hlinesBeforeRow, []bool{})
			}
		case `\\`:
			p.Consume()
			var gap *Measurement
			future, err := gullet.Future()
			if err != nil {
				return nil, err
			}
			if future.Text != " " {
				size, err := p.ParseSizeGroup(true)
				if err != nil {
					return nil, err
				}
				if size != nil {
					v := size.Value
					gap = &v
				}
			}
			rowGaps = append(rowGaps, gap)
			if err := endRow(); err != nil {
				return nil, err
			}
			hlines, err := getHLines(p)
			if err != nil {
				return nil, err
			}
			hlinesBeforeRow = append(hlinesBeforeRow, hlines)
			body = append(body, []Node{})
			beginRow()
			continue
		default:
			return nil, NewParseError(`Expected & or \\ or \cr or \end`, next)
		}
		break
	}

	if err := gullet.EndGroup(); err != nil {
		return nil, err
	}
	if err := gullet.EndGroup(); err != nil {
		return nil, err
	}
	if !hasTags {
		tags = nil
	}
	return &Array{
		Base:                Base{Mode: p.Mode()},
		AddJot:              opts.addJot,
		ArrayStretch:        stretch,
		Body:                body,
		Cols:                opts.cols,
		RowGaps:             rowGaps,
		HSkipBeforeAndAfter: opts.hskipBeforeAndAfter,
		HLinesBeforeRow:     hlinesBeforeRow,
		ColSeparationType:   opts.colSeparationType,
		Tags:                tags,
		Leqno:               opts.leqno,
	}, nil
}

// cellStyle is the style of cells in name: display for the "d" variants.
func cellStyle(name string) string {
	if strings.HasPrefix(name, "d") {
		return "display"
	}
	return "text"
}

func floatPtr(v float64) *float64 { return &v }

// columnSpec parses an array column specification such as {c|l}.
func columnSpec(arg Node, allowed string) ([]AlignSpec, error) {
	colalign := []Node{arg}
	if !isSymbolNode(arg) {
		g, err := assertNode[*OrdGroup](arg, "ordgroup")
		if err != nil {
			return nil, err
		}
		colalign = g.Body
	}
	var cols []AlignSpec
	for _, n := range colalign {
		ca, ok := SymbolText(n)
		if !ok {
			return nil, nodeTypeError(n, "symbol")
		}
		switch {
		case len(ca) == 1 && strings.Contains(allowed, ca):
			cols = append(cols, AlignSpec{Type: "align", Align: ca})
		case allowed == "lcr" && (ca == "|" || ca == ":"):
			cols = append(cols, AlignSpec{Type: "separator", Separator: ca})
		default:
			return nil, NewParseError("Unknown column alignment: "+ca, n)
		}
	}
	return cols, nil
}

var matrixDelimiters = map[string][2]string{
	"pmatrix": {"(", ")"},
	"bmatrix": {"[", "]"},
	"Bmatrix": {`\{`, `\}`},
	"vmatrix": {"|", "|"},
	"Vmatrix": {`\Vert`, `\Vert`},
}

func defineArrayEnvironments() {
	DefineEnvironment(EnvSpec{
		Type:    "array",
		NumArgs: 1,
		Handler: func(ctx *EnvContext, args, _ []Node) (Node, error) {
			cols, err := columnSpec(args[0], "lcr")
			if err != nil {
				return nil, err
			}
			return parseArray(ctx.Parser, arrayOptions{
				cols:                cols,
				hskipBeforeAndAfter: true,
				maxNumCols:          len(cols),
			}, cellStyle(ctx.EnvName))
		},
	}, "array", "darray")

	DefineEnvironment(EnvSpec{
		Type: "array",
		Handler: func(ctx *EnvContext, _, _ []Node) (Node, error) {
			p := ctx.Parser
			colAlign := "c"
			if strings.HasSuffix(ctx.EnvName, "*") {
				if err := p.ConsumeSpaces(); err != nil {
					return nil, err
				}
				tok, err := p.Fetch()
				if err != nil {
					return nil, err
				}
				if tok.Text == "[" {
					p.Consume()
					if err := p.ConsumeSpaces(); err != nil {
						return nil, err
					}
					if tok, err = p.Fetch(); err != nil {
						return nil, err
					}
					if len(tok.Text) != 1 || !strings.Contains("lcr", tok.Text) {
						return nil, NewParseError("Expected l or c or r", tok)
					}
					colAlign = tok.Text
					p.Consume()
					if err := p.ConsumeSpaces(); err != nil {
						return nil, err
					}
					if err := p.Expect("]", true); err != nil {
						return nil, err
					}
				}
			}
			res, err := parseArray(p, arrayOptions{}, cellStyle(ctx.EnvName))
			if err != nil {
				return nil, err
			}
			numCols := 0
			for _, row := range res.Body {
				numCols = max(numCols, len(row))
			}
			res.Cols = make([]AlignSpec, numCols)
			for i := range res.Cols {
				res.Cols[i] = AlignSpec{Type: "align", Align: colAlign}
			}
			delims, ok := matrixDelimiters[strings.TrimSuffix(ctx.EnvName, "*")]
			if !ok {
				return res, nil
			}
			return &LeftRight{Base: Base{Mode: ctx.Mode}, Body: []Node{res}, Left: delims[0], Right: delims[1]}, nil
		},
	},
		"matrix", "pmatrix", "bmatrix", "Bmatrix", "vmatrix", "Vmatrix",
		"matrix*", "pmatrix*", "bmatrix*", "Bmatrix*", "vmatrix*", "Vmatrix*",
	)

	DefineEnvironment(EnvSpec{
		Type: "array",
		Handler: func(ctx *EnvContext, _, _ []Node) (Node, error) {
			res, err := parseArray(ctx.Parser, arrayOptions{arrayStretch: 0.5}, "script")
			if err != nil {
				return nil, err
			}
			res.ColSeparationType = "small"
			return res, nil
		},
	}, "smallmatrix")

	DefineEnvironment(EnvSpec{
		Type:    "array",
		NumArgs: 1,
		Handler: func(ctx *EnvContext, args, _ []Node) (Node, error) {
			cols, err := columnSpec(args[0], "lc")
			if err != nil {
				return nil, err
			}
			if len(cols) > 1 {
				return nil, NewParseError("{subarray} can contain only one column", nil)
			}
			res, err := parseArray(ctx.Parser, arrayOptions{cols: cols, arrayStretch: 0.5}, "script")
			if err != nil {
				return nil, err
			}
			if len(res.Body) > 0 && len(res.Body[0]) > 1 {
				return nil, NewParseError("{subarray} can contain only one column", nil)
			}
			return res, nil
		},
	}, "subarray")

	DefineEnvironment(EnvSpec{
		Type: "array",
		Handler: func(ctx *EnvContext, _, _ []Node) (Node, error) {
			res, err := parseArray(ctx.Parser, arrayOptions{
				arrayStretch: 1.2,
				cols: []AlignSpec{
					{Type: "align", Align: "l", PreGap: floatPtr(0), PostGap: floatPtr(1)},
					{Type: "align", Align: "l", PreGap: floatPtr(0), PostGap: floatPtr(0)},
				},
			}, cellStyle(ctx.EnvName))
			if err != nil {
				return nil, err
			}
			left, right := `\{`, "."
			if strings.Contains(ctx.EnvName, "r") {
				left, right = ".", `\}`
			}
			return &LeftRight{Base: Base{Mode: ctx.Mode}, Body: []Node{res}, Left: left, Right: right}, nil
		},
	}, "cases", "dcases", "rcases", "drcases")

	DefineEnvironment(EnvSpec{
		Type:    "array",
		Handler: alignedHandler,
	}, "align", "align*", "aligned", "split")

	DefineEnvironment(EnvSpec{
		Type: "array",
		Handler: func(ctx *EnvContext, _, _ []Node) (Node, error) {
			if ctx.EnvName == "gather" || ctx.EnvName == "gather*" {
				if err := validateAmsEnvironmentContext(ctx); err != nil {
					return nil, err
				}
			}
			return parseArray(ctx.Parser, arrayOptions{
				cols:              []AlignSpec{{Type: "align", Align: "c"}},
				addJot:            true,
				colSeparationType: "gather",
				autoTag:           getAutoTag(ctx.EnvName),
				emptySingleRow:    true,
				leqno:             ctx.Parser.Settings().Leqno,
			}, "display")
		},
	}, "gathered", "gather", "gather*")

	DefineEnvironment(EnvSpec{
		Type:    "array",
		NumArgs: 1,
		Handler: alignedHandler,
	}, "alignat", "alignat*", "alignedat")

	DefineEnvironment(EnvSpec{
		Type: "array",
		Handler: func(ctx *EnvContext, _, _ []Node) (Node, error) {
			if err := validateAmsEnvironmentContext(ctx); err != nil {
				return nil, err
			}
			return parseArray(ctx.Parser, arrayOptions{
				autoTag:        getAutoTag(ctx.EnvName),
				emptySingleRow: true,
				singleRow:      true,
				maxNumCols:     1,
				leqno:          ctx.Parser.Settings().Leqno,
			}, "display")
		},
	}, "equation", "equation*")
}

// alignedHandler implements align, aligned, split and the alignat family.
// Columns alternate between right- and left-aligned; every left column
// starts with an empty group so that a leading relation gets its spacing.
func alignedHandler(ctx *EnvContext, args, _ []Node) (Node, error) {
	if !strings.Contains(ctx.EnvName, "ed") {
		if err := validateAmsEnvironmentContext(ctx); err != nil {
			return nil, err
		}
	}
	separationType := "align"
	if strings.Contains(ctx.EnvName, "at") {
		separationType = "alignat"
	}
	isSplit := ctx.EnvName == "split"
	opts := arrayOptions{
		addJot:            true,
		emptySingleRow:    true,
		colSeparationType: separationType,
		leqno:             ctx.Parser.Settings().Leqno,
	}
	if isSplit {
		opts.maxNumCols = 2
	} else {
		opts.autoTag = getAutoTag(ctx.EnvName)
	}
	res, err := parseArray(ctx.Parser, opts, "display")
	if err != nil {
		return nil, err
	}

	var numMaths, numCols int
	if len(args) > 0 {
		if g, ok := args[0].(*OrdGroup); ok {
			var arg0 string
			for _, n := range g.Body {
				t, err := assertNode[*TextOrd](n, "textord")
				if err != nil {
					return nil, err
				}
				arg0 += t.Text
			}
			numMaths, _ = strconv.Atoi(arg0)
			numCols = numMaths * 2
		}
	}
	isAligned := numCols == 0

	for _, row := range res.Body {
		for i := 1; i < len(row); i += 2 {
			styling, err := assertNode[*Styling](row[i], "styling")
			if err != nil {
				return nil, err
			}
			group, err := assertNode[*OrdGroup](styling.Body[0], "ordgroup")
			if err != nil {
				return nil, err
			}
			empty := &OrdGroup{Base: Base{Mode: ctx.Mode}}
			group.Body = append([]Node{empty}, group.Body...)
		}
		if !isAligned {
			curMaths := float64(len(row)) / 2
			if float64(numMaths) < curMaths {
				return nil, Errorf(row[0], "Too many math in a row: expected %d, but got %s",
					numMaths, strconv.FormatFloat(curMaths, 'f', -1, 64))
			}
		} else if numCols < len(row) {
			numCols = len(row)
		}
	}

	cols := make([]AlignSpec, numCols)
	for i := range cols {
		align, pregap := "r", 0.0
		if i%2 == 1 {
			align = "l"
		} else if i > 0 && isAligned {
			pregap = 1
		}
		cols[i] = AlignSpec{Type: "align", Align: align, PreGap: floatPtr(pregap), PostGap: floatPtr(0)}
	}
	res.Cols = cols
	if isAligned {
		res.ColSeparationType = "align"
	} else {
		res.ColSeparationType = "alignat"
	}
	return res, nil
}
