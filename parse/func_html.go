package parse

import (
	"regexp"
	"strconv"
	"strings"
)

func defineHrefFunctions() {
	DefineFunction(FunctionSpec{
		Type:          "href",
		NumArgs:       2,
		ArgTypes:      []ArgType{ArgURL, ArgOriginal},
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			p := ctx.Parser
			u, err := assertNode[*URL](args[0], "url")
			if err != nil {
				return nil, err
			}
			if !p.Settings().IsTrusted(TrustContext{Command: `\href`, URL: u.URL}) {
				return p.FormatUnsupportedCmd(`\href`), nil
			}
			return &Href{Base: Base{Mode: p.Mode()}, Href: u.URL, Body: OrdArgument(args[1])}, nil
		},
	}, `\href`)

	DefineFunction(FunctionSpec{
		Type:          "href",
		NumArgs:       1,
		ArgTypes:      []ArgType{ArgURL},
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			p := ctx.Parser
			u, err := assertNode[*URL](args[0], "url")
			if err != nil {
				return nil, err
			}
			if !p.Settings().IsTrusted(TrustContext{Command: `\url`, URL: u.URL}) {
				return p.FormatUnsupportedCmd(`\url`), nil
			}
			var chars []Node
			for _, r := range u.URL {
				c := string(r)
				if c == "~" {
					c = `\textasciitilde`
				}
				chars = append(chars, &TextOrd{Base: Base{Mode: TextMode}, Text: c})
			}
			body := &Text{Base: Base{Mode: p.Mode()}, Font: `\texttt`, Body: chars}
			return &Href{Base: Base{Mode: p.Mode()}, Href: u.URL, Body: []Node{body}}, nil
		},
	}, `\url`)
}

func defineHTMLFunctions() {
	DefineFunction(FunctionSpec{
		Type:          "html",
		NumArgs:       2,
		ArgTypes:      []ArgType{ArgRaw, ArgOriginal},
		AllowedInText: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			p := ctx.Parser
			raw, err := assertNode[*Raw](args[0], "raw")
			if err != nil {
				return nil, err
			}
			value := raw.String
			if err := p.Settings().ReportNonstrict("htmlExtension",
				"HTML extension is disabled on strict mode", ctx.Token); err != nil {
				return nil, err
			}

			attributes := make(map[string]string)
			trust := TrustContext{Command: ctx.FuncName}
			switch ctx.FuncName {
			case `\htmlClass`:
				attributes["class"] = value
				trust.Class = value
			case `\htmlId`:
				attributes["id"] = value
				trust.ID = value
			case `\htmlStyle`:
				attributes["style"] = value
				trust.Style = value
			case `\htmlData`:
				for _, item := range strings.Split(value, ",") {
					key, val, ok := strings.Cut(item, "=")
					if !ok {
						return nil, NewParseError(`Error parsing key-value for \htmlData`, nil)
					}
					attributes["data-"+strings.TrimSpace(key)] = val
				}
				trust.Attributes = attributes
			}
			if !p.Settings().IsTrusted(trust) {
				return p.FormatUnsupportedCmd(ctx.FuncName), nil
			}
			return &HTML{Base: Base{Mode: p.Mode()}, Attributes: attributes, Body: OrdArgument(args[1])}, nil
		},
	}, `\htmlClass`, `\htmlId`, `\htmlStyle`, `\htmlData`)

	DefineFunction(FunctionSpec{
		Type:              "htmlmathml",
		NumArgs:           2,
		AllowedInText:     true,
		AllowedInArgument: true,
		Handler: func(ctx *FunctionContext, args, _ []Node) (Node, error) {
			return &HTMLMathML{
				Base:   Base{Mode: ctx.Parser.Mode()},
				HTML:   OrdArgument(args[0]),
				MathML: OrdArgument(args[1]),
			}, nil
		},
	}, `\html@mathml`)

	DefineFunction(FunctionSpec{
		Type:            "includegraphics",
		NumArgs:         1,
		NumOptionalArgs: 1,
		ArgTypes:        []ArgType{ArgRaw, ArgURL},
		Handler: func(ctx *FunctionContext, args, optArgs []Node) (Node, error) {
			p := ctx.Parser
			g := &IncludeGraphics{
				Base:        Base{Mode: p.Mode()},
				Width:       Measurement{0, "em"},
				Height:      Measurement{0.9, "em"},
				TotalHeight: Measurement{0, "em"},
			}
			if optArgs[0] != nil {
				raw, err := assertNode[*Raw](optArgs[0], "raw")
				if err != nil {
					return nil, err
				}
				for _, attr := range strings.Split(raw.String, ",") {
					kv := strings.Split(attr, "=")
					if len(kv) != 2 {
						continue
					}
					str := strings.TrimSpace(kv[1])
					var err error
					switch strings.TrimSpace(kv[0]) {
					case "alt":
						g.Alt = str
					case "width":
						g.Width, err = graphicsSize(str)
					case "height":
						g.Height, err = graphicsSize(str)
					case "totalheight":
						g.TotalHeight, err = graphicsSize(str)
					default:
						return nil, NewParseError("Invalid key: '"+kv[0]+`' in \includegraphics.`, nil)
					}
					if err != nil {
						return nil, err
					}
				}
			}

			u, err := assertNode[*URL](args[0], "url")
			if err != nil {
				return nil, err
			}
			g.Src = u.URL
			if g.Alt == "" {
				alt := g.Src
				if i := strings.LastIndexAny(alt, `\/`); i >= 0 {
					alt = alt[i+1:]
				}
				if i := strings.LastIndex(alt, "."); i >= 0 {
					alt = alt[:i]
				} else {
					alt = ""
				}
				g.Alt = alt
			}
			if !p.Settings().IsTrusted(TrustContext{Command: `\includegraphics`, URL: g.Src}) {
				return p.FormatUnsupportedCmd(`\includegraphics`), nil
			}
			return g, nil
		},
	}, `\includegraphics`)
}

var bareNumberRe = regexp.MustCompile(`^[-+]? *(\d+(\.\d*)?|\.\d+)$`)

// graphicsSize parses an \includegraphics dimension. A bare number is in
// big points.
func graphicsSize(str string) (Measurement, error) {
	if bareNumberRe.MatchString(str) {
		n, _ := strconv.ParseFloat(strings.ReplaceAll(str, " ", ""), 64)
		return Measurement{n, "bp"}, nil
	}
	m := sizeRe.FindStringSubmatch(str)
	if m == nil {
		return Measurement{}, NewParseError("Invalid size: '"+str+`' in \includegraphics`, nil)
	}
	n, _ := strconv.ParseFloat(m[1]+m[2], 64)
	if !ValidUnit(m[3]) {
		return Measurement{}, NewParseError("Invalid unit: '"+m[3]+`' in \includegraphics.`, nil)
	}
	return Measurement{n, m[3]}, nil
}
