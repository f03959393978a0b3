package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// builtinMacros is the macro table shared by every parse. It is filled by
// init and read-only after; user definitions go to Settings.Macros.
var builtinMacros = make(map[string]*Macro)

func init() {
	defineCoreMacros()
	defineSymbolMacros()
	defineSpacingMacros()
	defineColonMacros()
	defineAliasMacros()
}

// DefineMacro adds a builtin macro with replacement text. It must only be
// called during program initialization.
func DefineMacro(name, text string) {
	builtinMacros[name] = &Macro{Text: text}
}

// DefineMacroFunc adds a builtin macro whose expansion is computed when it
// is expanded.
func DefineMacroFunc(name string, f func(m *MacroExpander) (*Macro, error)) {
	builtinMacros[name] = &Macro{Func: f}
}

func tokensMacro(tokens []*Token) *Macro {
	return &Macro{Expansion: &MacroExpansion{Tokens: tokens}}
}

func textMacro(text string) *Macro {
	return &Macro{Text: text}
}

var digitToNumber = map[string]int{
	"0": 0, "1": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"a": 10, "A": 10, "b": 11, "B": 11, "c": 12, "C": 12,
	"d": 13, "D": 13, "e": 14, "E": 14, "f": 15, "F": 15,
}

var numArgsRe = regexp.MustCompile(`^\s*[0-9]+\s*$`)

// newcommand implements \newcommand and its variants.
func newcommand(m *MacroExpander, existsOK, nonexistsOK, skipIfExists bool) (*Macro, error) {
	arg, err := m.ConsumeArg(nil)
	if err != nil {
		return nil, err
	}
	if len(arg.Tokens) != 1 {
		return nil, NewParseError(`\newcommand's first argument must be a macro name`, arg.Start)
	}
	name := arg.Tokens[0].Text
	exists := m.IsDefined(name)
	if exists && !existsOK {
		return nil, Errorf(arg.Start, `\newcommand{%s} attempting to redefine %s; use \renewcommand`, name, name)
	}
	if !exists && !nonexistsOK {
		return nil, Errorf(arg.Start, `\renewcommand{%s} when command %s does not yet exist; use \newcommand`, name, name)
	}

	numArgs := 0
	if arg, err = m.ConsumeArg(nil); err != nil {
		return nil, err
	}
	if len(arg.Tokens) == 1 && arg.Tokens[0].Text == "[" {
		var argText strings.Builder
		tok, err := m.ExpandNextToken()
		if err != nil {
			return nil, err
		}
		for tok.Text != "]" && tok.Text != "EOF" {
			argText.WriteString(tok.Text)
			if tok, err = m.ExpandNextToken(); err != nil {
				return nil, err
			}
		}
		if !numArgsRe.MatchString(argText.String()) {
			return nil, Errorf(tok, "Invalid number of arguments: %s", argText.String())
		}
		numArgs, _ = strconv.Atoi(strings.TrimSpace(argText.String()))
		if arg, err = m.ConsumeArg(nil); err != nil {
			return nil, err
		}
	}

	if !(exists && skipIfExists) {
		m.Macros().Set(name, &Macro{Expansion: &MacroExpansion{Tokens: arg.Tokens, NumArgs: numArgs}}, false)
	}
	return textMacro(""), nil
}

func defineCoreMacros() {
	// \noexpand makes the next token unexpandable once.
	DefineMacroFunc(`\noexpand`, func(m *MacroExpander) (*Macro, error) {
		tok, err := m.PopToken()
		if err != nil {
			return nil, err
		}
		if m.IsExpandable(tok.Text) {
			t := *tok
			t.NoExpand = true
			t.TreatAsRelax = true
			tok = &t
		}
		return tokensMacro([]*Token{tok}), nil
	})

	// \expandafter expands the token after the next one first.
	DefineMacroFunc(`\expandafter`, func(m *MacroExpander) (*Macro, error) {
		tok, err := m.PopToken()
		if err != nil {
			return nil, err
		}
		if _, err := m.ExpandOnce(true); err != nil {
			return nil, err
		}
		return tokensMacro([]*Token{tok}), nil
	})

	DefineMacroFunc(`\@firstoftwo`, func(m *MacroExpander) (*Macro, error) {
		args, err := m.ConsumeArgs(2, nil)
		if err != nil {
			return nil, err
		}
		return tokensMacro(args[0]), nil
	})
	DefineMacroFunc(`\@secondoftwo`, func(m *MacroExpander) (*Macro, error) {
		args, err := m.ConsumeArgs(2, nil)
		if err != nil {
			return nil, err
		}
		return tokensMacro(args[1]), nil
	})

	// \@ifnextchar{c}{then}{else} looks at the next non-space token.
	DefineMacroFunc(`\@ifnextchar`, func(m *MacroExpander) (*Macro, error) {
		args, err := m.ConsumeArgs(3, nil)
		if err != nil {
			return nil, err
		}
		if err := m.ConsumeSpaces(); err != nil {
			return nil, err
		}
		next, err := m.Future()
		if err != nil {
			return nil, err
		}
		if len(args[0]) == 1 && args[0][0].Text == next.Text {
			return tokensMacro(args[1]), nil
		}
		return tokensMacro(args[2]), nil
	})
	DefineMacro(`\@ifstar`, `\@ifnextchar *{\@firstoftwo{#1}}`)

	DefineMacroFunc(`\TextOrMath`, func(m *MacroExpander) (*Macro, error) {
		args, err := m.ConsumeArgs(2, nil)
		if err != nil {
			return nil, err
		}
		if m.Mode() == TextMode {
			return tokensMacro(args[0]), nil
		}
		return tokensMacro(args[1]), nil
	})

	// \char accepts decimal, 'octal, "hex and `character codes.
	DefineMacroFunc(`\char`, func(m *MacroExpander) (*Macro, error) {
		tok, err := m.PopToken()
		if err != nil {
			return nil, err
		}
		base := 0
		number := 0
		switch tok.Text {
		case "'":
			base = 8
		case `"`:
			base = 16
		case "`":
			if tok, err = m.PopToken(); err != nil {
				return nil, err
			}
			switch {
			case tok.Text == "EOF":
				return nil, NewParseError("\\char` missing argument", tok)
			case strings.HasPrefix(tok.Text, `\`):
				number = int([]rune(tok.Text)[1])
			default:
				number = int([]rune(tok.Text)[0])
			}
		default:
			base = 10
		}
		if base != 0 {
			if base != 10 {
				if tok, err = m.PopToken(); err != nil {
					return nil, err
				}
			}
			digit, ok := digitToNumber[tok.Text]
			if !ok || digit >= base {
				return nil, Errorf(tok, "Invalid base-%d digit %s", base, tok.Text)
			}
			number = digit
			for {
				next, err := m.Future()
				if err != nil {
					return nil, err
				}
				digit, ok := digitToNumber[next.Text]
				if !ok || digit >= base {
					break
				}
				number = number*base + digit
				if _, err := m.PopToken(); err != nil {
					return nil, err
				}
			}
		}
		return textMacro(fmt.Sprintf(`\@char{%d}`, number)), nil
	})

	DefineMacroFunc(`\newcommand`, func(m *MacroExpander) (*Macro, error) {
		return newcommand(m, false, true, false)
	})
	DefineMacroFunc(`\renewcommand`, func(m *MacroExpander) (*Macro, error) {
		return newcommand(m, true, false, false)
	})
	DefineMacroFunc(`\providecommand`, func(m *MacroExpander) (*Macro, error) {
		return newcommand(m, true, true, true)
	})

	// \message and \errmessage write to the settings logger.
	logMacro := func(level string) func(m *MacroExpander) (*Macro, error) {
		return func(m *MacroExpander) (*Macro, error) {
			args, err := m.ConsumeArgs(1, nil)
			if err != nil {
				return nil, err
			}
			var b strings.Builder
			for i := len(args[0]) - 1; i >= 0; i-- {
				b.WriteString(args[0][i].Text)
			}
			if level == "error" {
				m.Settings().logger().Error(b.String())
			} else {
				m.Settings().logger().Info(b.String())
			}
			return textMacro(""), nil
		}
	}
	DefineMacroFunc(`\message`, logMacro("info"))
	DefineMacroFunc(`\errmessage`, logMacro("error"))
	DefineMacroFunc(`\show`, func(m *MacroExpander) (*Macro, error) {
		tok, err := m.PopToken()
		if err != nil {
			return nil, err
		}
		name := tok.Text
		macro, _ := m.Macros().Get(name)
		_, isFunc := functions[name]
		_, isMath := symbols[MathMode][name]
		_, isText := symbols[TextMode][name]
		m.Settings().logger().Info("show", "name", name, "macro", macro != nil,
			"function", isFunc, "mathSymbol", isMath, "textSymbol", isText)
		return textMacro(""), nil
	})

	DefineMacro(`\bgroup`, "{")
	DefineMacro(`\egroup`, "}")
	DefineMacro("~", `\nobreakspace`)
	DefineMacro(`\lq`, "`")
	DefineMacro(`\rq`, "'")
	DefineMacro(`\aa`, `\r a`)
	DefineMacro(`\AA`, `\r A`)

	DefineMacro(`\llap`, `\mathllap{\textrm{#1}}`)
	DefineMacro(`\rlap`, `\mathrlap{\textrm{#1}}`)
	DefineMacro(`\clap`, `\mathclap{\textrm{#1}}`)
	DefineMacro(`\mathstrut`, `\vphantom{(}`)
	DefineMacro(`\underbar`, `\underline{\text{#1}}`)

	DefineMacro(`\substack`, `\begin{subarray}{c}#1\end{subarray}`)
	DefineMacro(`\boxed`, `\fbox{$\displaystyle{#1}$}`)
	DefineMacro(`\operatorname`, `\@ifstar\operatornamewithlimits\operatorname@`)

	// Equation tags.
	DefineMacro(`\tag`, `\@ifstar\tag@literal\tag@paren`)
	DefineMacro(`\tag@paren`, `\tag@literal{({#1})}`)
	DefineMacroFunc(`\tag@literal`, func(m *MacroExpander) (*Macro, error) {
		if _, ok := m.Macros().Get(`\df@tag`); ok {
			return nil, NewParseError(`Multiple \tag`, nil)
		}
		return textMacro(`\gdef\df@tag{\text{#1}}`), nil
	})
	DefineMacro(`\nonumber`, `\gdef\@eqnsw{0}`)
	DefineMacro(`\notag`, `\nonumber`)

	DefineMacro(`\newline`, `\\\relax`)
	DefineMacro(`\cr`, `\\\relax`)

	// The raise of the A in the logos is the cap height of T minus 0.7
	// times the cap height of A, both 0.68333em.
	DefineMacro(`\TeX`, `\textrm{\html@mathml{T\kern-.1667em\raisebox{-.5ex}{E}\kern-.125emX}{TeX}}`)
	DefineMacro(`\LaTeX`, `\textrm{\html@mathml{L\kern-.36em\raisebox{0.205em}{\scriptstyle A}\kern-.15em\TeX}{LaTeX}}`)
	DefineMacro(`\KaTeX`, `\textrm{\html@mathml{K\kern-.17em\raisebox{0.205em}{\scriptstyle A}\kern-.15em\TeX}{KaTeX}}`)

	// Modular arithmetic.
	DefineMacro(`\bmod`, `\mathchoice{\mskip1mu}{\mskip1mu}{\mskip5mu}{\mskip5mu}\mathbin{\rm mod}\mathchoice{\mskip1mu}{\mskip1mu}{\mskip5mu}{\mskip5mu}`)
	DefineMacro(`\pod`, `\allowbreak\mathchoice{\mkern18mu}{\mkern8mu}{\mkern8mu}{\mkern8mu}(#1)`)
	DefineMacro(`\pmod`, `\pod{{\rm mod}\mkern6mu#1}`)
	DefineMacro(`\mod`, `\allowbreak\mathchoice{\mkern18mu}{\mkern12mu}{\mkern12mu}{\mkern12mu}{\rm mod}\,\,#1`)

	// Named operators.
	DefineMacro(`\limsup`, `\DOTSB\operatorname*{lim\,sup}`)
	DefineMacro(`\liminf`, `\DOTSB\operatorname*{lim\,inf}`)
	DefineMacro(`\injlim`, `\DOTSB\operatorname*{inj\,lim}`)
	DefineMacro(`\projlim`, `\DOTSB\operatorname*{proj\,lim}`)
	DefineMacro(`\varlimsup`, `\DOTSB\operatorname*{\overline{lim}}`)
	DefineMacro(`\varliminf`, `\DOTSB\operatorname*{\underline{lim}}`)
	DefineMacro(`\varinjlim`, `\DOTSB\operatorname*{\underrightarrow{lim}}`)
	DefineMacro(`\varprojlim`, `\DOTSB\operatorname*{\underleftarrow{lim}}`)
	DefineMacro(`\argmin`, `\DOTSB\operatorname*{arg\,min}`)
	DefineMacro(`\argmax`, `\DOTSB\operatorname*{arg\,max}`)
	DefineMacro(`\plim`, `\DOTSB\mathop{\operatorname{plim}}\limits`)

	// Dirac notation.
	DefineMacro(`\bra`, `\mathinner{\langle{#1}|}`)
	DefineMacro(`\ket`, `\mathinner{|{#1}\rangle}`)
	DefineMacro(`\braket`, `\mathinner{\langle{#1}\rangle}`)
	DefineMacro(`\Bra`, `\left\langle#1\right|`)
	DefineMacro(`\Ket`, `\left|#1\right\rangle`)
	DefineMacroFunc(`\bra@ket`, braketHelper(false))
	DefineMacroFunc(`\bra@set`, braketHelper(true))
	DefineMacro(`\Braket`, `\bra@ket{\left\langle}{\,\middle\vert\,}{\,\middle\vert\,}{\right\rangle}`)
	DefineMacro(`\Set`, `\bra@set{\left\{\:}{\;\middle\vert\;}{\;\middle\Vert\;}{\:\right\}}`)
	DefineMacro(`\set`, `\bra@set{\{\,}{\mid}{}{\,\}}`)

	DefineMacro(`\angln`, `{\angl n}`)
	DefineMacro(`\standardstate`, `\text{\tiny\char`+"`"+`⦵}`)
}

// braketHelper builds \bra@ket and \bra@set. Within the braces, | and \|
// expand to the middle delimiters; with one set, only the first | does.
func braketHelper(one bool) func(m *MacroExpander) (*Macro, error) {
	return func(m *MacroExpander) (*Macro, error) {
		var parts [4][]*Token
		for i := range parts {
			arg, err := m.ConsumeArg(nil)
			if err != nil {
				return nil, err
			}
			parts[i] = arg.Tokens
		}
		left, middle, middleDouble, right := parts[0], parts[1], parts[2], parts[3]

		macros := m.Macros()
		oldMiddle, hasMiddle := macros.Get("|")
		oldMiddleDouble, hasMiddleDouble := macros.Get(`\|`)
		restore := func(name string, old *Macro, had bool) {
			if had {
				macros.Set(name, old, false)
			} else {
				macros.Delete(name, false)
			}
		}

		macros.BeginGroup()
		midMacro := func(double bool) *Macro {
			return &Macro{Func: func(m *MacroExpander) (*Macro, error) {
				if one {
					restore("|", oldMiddle, hasMiddle)
					if len(middleDouble) > 0 {
						restore(`\|`, oldMiddleDouble, hasMiddleDouble)
					}
				}
				doubled := double
				if !double && len(middleDouble) > 0 {
					next, err := m.Future()
					if err != nil {
						return nil, err
					}
					if next.Text == "|" {
						if _, err := m.PopToken(); err != nil {
							return nil, err
						}
						doubled = true
					}
				}
				if doubled {
					return tokensMacro(middleDouble), nil
				}
				return tokensMacro(middle), nil
			}}
		}
		macros.Set("|", midMacro(false), false)
		if len(middleDouble) > 0 {
			macros.Set(`\|`, midMacro(true), false)
		}

		arg, err := m.ConsumeArg(nil)
		if err != nil {
			return nil, err
		}
		var all []*Token
		all = append(all, right...)
		all = append(all, arg.Tokens...)
		all = append(all, left...)
		expanded, err := m.ExpandTokens(all)
		if err != nil {
			return nil, err
		}
		if err := macros.EndGroup(); err != nil {
			return nil, err
		}
		reverseTokens(expanded)
		return tokensMacro(expanded), nil
	}
}

var dotsByToken = map[string]string{
	",": `\dotsc`, `\not`: `\dotsb`,
	"+": `\dotsb`, "=": `\dotsb`, "<": `\dotsb`, ">": `\dotsb`,
	"-": `\dotsb`, "*": `\dotsb`, ":": `\dotsb`,
	`\DOTSB`: `\dotsb`, `\coprod`: `\dotsb`, `\bigvee`: `\dotsb`,
	`\bigwedge`: `\dotsb`, `\biguplus`: `\dotsb`, `\bigcap`: `\dotsb`,
	`\bigcup`: `\dotsb`, `\prod`: `\dotsb`, `\sum`: `\dotsb`,
	`\bigotimes`: `\dotsb`, `\bigoplus`: `\dotsb`, `\bigodot`: `\dotsb`,
	`\bigsqcup`: `\dotsb`, `\And`: `\dotsb`, `\longrightarrow`: `\dotsb`,
	`\Longrightarrow`: `\dotsb`, `\longleftarrow`: `\dotsb`,
	`\Longleftarrow`: `\dotsb`, `\longleftrightarrow`: `\dotsb`,
	`\Longleftrightarrow`: `\dotsb`, `\mapsto`: `\dotsb`,
	`\longmapsto`: `\dotsb`, `\hookrightarrow`: `\dotsb`, `\doteq`: `\dotsb`,
	`\mathbin`: `\dotsb`, `\mathrel`: `\dotsb`, `\relbar`: `\dotsb`,
	`\Relbar`: `\dotsb`, `\xrightarrow`: `\dotsb`, `\xleftarrow`: `\dotsb`,
	`\DOTSI`: `\dotsi`, `\int`: `\dotsi`, `\oint`: `\dotsi`,
	`\iint`: `\dotsi`, `\iiint`: `\dotsi`, `\iiiint`: `\dotsi`,
	`\idotsint`: `\dotsi`, `\DOTSX`: `\dotsx`,
}

// spaceAfterDots are the tokens after which \dots adds a thin space.
var spaceAfterDots = map[string]bool{
	")": true, "]": true, `\rbrack`: true, `\}`: true, `\rbrace`: true,
	`\rangle`: true, `\rceil`: true, `\rfloor`: true, `\rgroup`: true,
	`\rmoustache`: true, `\right`: true, `\bigr`: true, `\biggr`: true,
	`\Bigr`: true, `\Biggr`: true, "$": true, ";": true, ".": true, ",": true,
}

func defineSymbolMacros() {
	DefineMacro(`\textcopyright`, "\\html@mathml{\\textcircled{c}}{\\char`©}")
	DefineMacro(`\copyright`, `\TextOrMath{\textcopyright}{\text{\textcopyright}}`)
	DefineMacro(`\textregistered`, "\\html@mathml{\\textcircled{\\scriptsize R}}{\\char`®}")
	DefineMacro("©", `\copyright`)
	DefineMacro("®", `\textregistered`)

	// Letterlike symbols.
	for ch, cmd := range map[string]string{
		"ℬ": `\mathscr{B}`, "ℰ": `\mathscr{E}`, "ℱ": `\mathscr{F}`,
		"ℋ": `\mathscr{H}`, "ℐ": `\mathscr{I}`, "ℒ": `\mathscr{L}`,
		"ℳ": `\mathscr{M}`, "ℛ": `\mathscr{R}`,
		"ℭ": `\mathfrak{C}`, "ℌ": `\mathfrak{H}`, "ℨ": `\mathfrak{Z}`,
	} {
		DefineMacro(ch, cmd)
	}
	DefineMacro(`\Bbbk`, `\Bbb{k}`)
	DefineMacro("·", `\cdotp`)

	DefineMacro(`\not`, `\html@mathml{\mathrel{\mathrlap\@not}\nobreak}{\char"338}`)
	DefineMacro(`\neq`, "\\html@mathml{\\mathrel{\\not=}}{\\mathrel{\\char`≠}}")
	DefineMacro(`\ne`, `\neq`)
	DefineMacro("≠", `\neq`)
	DefineMacro(`\notin`, "\\html@mathml{\\mathrel{{\\in}\\mathllap{/\\mskip1mu}}}{\\mathrel{\\char`∉}}")
	DefineMacro("∉", `\notin`)
	DefineMacro(`\notni`, "\\html@mathml{\\not\\ni}{\\mathrel{\\char`∌}}")
	DefineMacro("∌", `\notni`)

	DefineMacro("≘", "\\html@mathml{\\mathrel{=\\kern{-1em}\\raisebox{0.4em}{$\\scriptsize\\frown$}}}{\\mathrel{\\char`≘}}")
	DefineMacro("≙", "\\html@mathml{\\stackrel{\\tiny\\wedge}{=}}{\\mathrel{\\char`≙}}")
	DefineMacro("≚", "\\html@mathml{\\stackrel{\\tiny\\vee}{=}}{\\mathrel{\\char`≚}}")
	DefineMacro("≛", "\\html@mathml{\\stackrel{\\scriptsize\\star}{=}}{\\mathrel{\\char`≛}}")
	DefineMacro("≝", "\\html@mathml{\\stackrel{\\tiny\\mathrm{def}}{=}}{\\mathrel{\\char`≝}}")
	DefineMacro("≞", "\\html@mathml{\\stackrel{\\tiny\\mathrm{m}}{=}}{\\mathrel{\\char`≞}}")
	DefineMacro("≟", "\\html@mathml{\\stackrel{\\tiny?}{=}}{\\mathrel{\\char`≟}}")
	DefineMacro("⟂", `\perp`)
	DefineMacro("‼", `\mathclose{!\mkern-0.8mu!}`)

	DefineMacro(`\ulcorner`, `\html@mathml{\@ulcorner}{\mathop{\char"231c}}`)
	DefineMacro(`\urcorner`, `\html@mathml{\@urcorner}{\mathop{\char"231d}}`)
	DefineMacro(`\llcorner`, `\html@mathml{\@llcorner}{\mathop{\char"231e}}`)
	DefineMacro(`\lrcorner`, `\html@mathml{\@lrcorner}{\mathop{\char"231f}}`)
	DefineMacro("⌜", `\ulcorner`)
	DefineMacro("⌝", `\urcorner`)
	DefineMacro("⌞", `\llcorner`)
	DefineMacro("⌟", `\lrcorner`)

	DefineMacro(`\vdots`, `{\varvdots\rule{0pt}{15pt}}`)
	DefineMacro("⋮", `\vdots`)

	for _, g := range []string{
		"Gamma", "Delta", "Theta", "Lambda", "Xi", "Pi",
		"Sigma", "Upsilon", "Phi", "Psi", "Omega",
	} {
		DefineMacro(`\var`+g, `\mathit{\`+g+`}`)
	}

	DefineMacro(`\iff`, `\DOTSB\;\Longleftrightarrow\;`)
	DefineMacro(`\implies`, `\DOTSB\;\Longrightarrow\;`)
	DefineMacro(`\impliedby`, `\DOTSB\;\Longleftarrow\;`)
	DefineMacro(`\dddot`, `{\overset{\raisebox{-0.1ex}{\normalsize ...}}{#1}}`)
	DefineMacro(`\ddddot`, `{\overset{\raisebox{-0.1ex}{\normalsize ....}}{#1}}`)

	// \dots picks a variant from the token that follows it.
	DefineMacroFunc(`\dots`, func(m *MacroExpander) (*Macro, error) {
		next, err := m.ExpandAfterFuture()
		if err != nil {
			return nil, err
		}
		dots := `\dotso`
		if d, ok := dotsByToken[next.Text]; ok {
			dots = d
		} else if strings.HasPrefix(next.Text, `\not`) {
			dots = `\dotsb`
		} else if s, ok := symbols[MathMode][next.Text]; ok && (s.Group == groupBin || s.Group == groupRel) {
			dots = `\dotsb`
		}
		return textMacro(dots), nil
	})
	dotsMacro := func(dots string, exceptComma bool) func(m *MacroExpander) (*Macro, error) {
		return func(m *MacroExpander) (*Macro, error) {
			next, err := m.Future()
			if err != nil {
				return nil, err
			}
			if spaceAfterDots[next.Text] && !(exceptComma && next.Text == ",") {
				return textMacro(dots + `\,`), nil
			}
			return textMacro(dots), nil
		}
	}
	DefineMacroFunc(`\dotso`, dotsMacro(`\ldots`, false))
	DefineMacroFunc(`\dotsc`, dotsMacro(`\ldots`, true))
	DefineMacroFunc(`\cdots`, dotsMacro(`\@cdots`, false))
	DefineMacro(`\dotsb`, `\cdots`)
	DefineMacro(`\dotsm`, `\cdots`)
	DefineMacro(`\dotsi`, `\!\cdots`)
	DefineMacro(`\dotsx`, `\ldots\,`)
	DefineMacro(`\DOTSI`, `\relax`)
	DefineMacro(`\DOTSB`, `\relax`)
	DefineMacro(`\DOTSX`, `\relax`)

	// Negated relations that have a MathML character.
	for name, ch := range map[string]string{
		`\gvertneqq`: "≩", `\lvertneqq`: "≨", `\ngeqq`: "≱", `\ngeqslant`: "≱",
		`\nleqq`: "≰", `\nleqslant`: "≰", `\nshortmid`: "∤", `\nshortparallel`: "∦",
		`\nsubseteqq`: "⊈", `\nsupseteqq`: "⊉", `\varsubsetneq`: "⊊",
		`\varsubsetneqq`: "⫋", `\varsupsetneq`: "⊋", `\varsupsetneqq`: "⫌",
		`\imath`: "ı", `\jmath`: "ȷ",
	} {
		DefineMacro(name, `\html@mathml{\@`+name[1:]+`}{`+ch+`}`)
	}
	DefineMacro(`\llbracket`, "\\html@mathml{\\mathopen{[\\mkern-3.2mu[}}{\\mathopen{\\char`⟦}}")
	DefineMacro(`\rrbracket`, "\\html@mathml{\\mathclose{]\\mkern-3.2mu]}}{\\mathclose{\\char`⟧}}")
	DefineMacro("⟦", `\llbracket`)
	DefineMacro("⟧", `\rrbracket`)
	DefineMacro(`\lBrace`, "\\html@mathml{\\mathopen{\\{\\mkern-3.2mu[}}{\\mathopen{\\char`⦃}}")
	DefineMacro(`\rBrace`, "\\html@mathml{\\mathclose{]\\mkern-3.2mu\\}}}{\\mathclose{\\char`⦄}}")
	DefineMacro("⦃", `\lBrace`)
	DefineMacro("⦄", `\rBrace`)
	DefineMacro(`\minuso`, "\\mathbin{\\html@mathml{{\\mathrlap{\\mathchoice{\\kern{0.145em}}{\\kern{0.145em}}{\\kern{0.1015em}}{\\kern{0.0725em}}\\circ}{-}}}{\\char`⦵}}")
	DefineMacro("⦵", `\minuso`)
}

func defineSpacingMacros() {
	// \tmspace{sign}{math size}{text size}
	DefineMacro(`\tmspace`, `\TextOrMath{\kern#1#3}{\mskip#1#2}\relax`)
	DefineMacro(`\,`, `\tmspace+{3mu}{.1667em}`)
	DefineMacro(`\thinspace`, `\,`)
	DefineMacro(`\>`, `\mskip{4mu}`)
	DefineMacro(`\:`, `\tmspace+{4mu}{.2222em}`)
	DefineMacro(`\medspace`, `\:`)
	DefineMacro(`\;`, `\tmspace+{5mu}{.2777em}`)
	DefineMacro(`\thickspace`, `\;`)
	DefineMacro(`\!`, `\tmspace-{3mu}{.1667em}`)
	DefineMacro(`\negthinspace`, `\!`)
	DefineMacro(`\negmedspace`, `\tmspace-{4mu}{.2222em}`)
	DefineMacro(`\negthickspace`, `\tmspace-{5mu}{.277em}`)
	DefineMacro(`\enspace`, `\kern.5em `)
	DefineMacro(`\enskip`, `\hskip.5em\relax`)
	DefineMacro(`\quad`, `\hskip1em\relax`)
	DefineMacro(`\qquad`, `\hskip2em\relax`)

	DefineMacro(`\hspace`, `\@ifstar\@hspacer\@hspace`)
	DefineMacro(`\@hspace`, `\hskip #1\relax`)
	DefineMacro(`\@hspacer`, `\rule{0pt}{0pt}\hskip #1\relax`)
}

func defineColonMacros() {
	DefineMacro(`\ordinarycolon`, ":")
	DefineMacro(`\vcentcolon`, `\mathrel{\mathop\ordinarycolon}`)
	DefineMacro(`\colon`, `\nobreak\mskip2mu\mathpunct{}\mathchoice{\mkern-3mu}{\mkern-3mu}{}{}{:}\mskip6mu\relax`)

	DefineMacro(`\dblcolon`, `\html@mathml{\mathrel{\vcentcolon\mathrel{\mkern-.9mu}\vcentcolon}}{\mathop{\char"2237}}`)
	DefineMacro(`\coloneqq`, `\html@mathml{\mathrel{\vcentcolon\mathrel{\mkern-1.2mu}=}}{\mathop{\char"2254}}`)
	DefineMacro(`\Coloneqq`, `\html@mathml{\mathrel{\dblcolon\mathrel{\mkern-1.2mu}=}}{\mathop{\char"2237\char"3d}}`)
	DefineMacro(`\coloneq`, `\html@mathml{\mathrel{\vcentcolon\mathrel{\mkern-1.2mu}\mathrel{-}}}{\mathop{\char"3a\char"2212}}`)
	DefineMacro(`\Coloneq`, `\html@mathml{\mathrel{\dblcolon\mathrel{\mkern-1.2mu}\mathrel{-}}}{\mathop{\char"2237\char"2212}}`)
	DefineMacro(`\eqqcolon`, `\html@mathml{\mathrel{=\mathrel{\mkern-1.2mu}\vcentcolon}}{\mathop{\char"2255}}`)
	DefineMacro(`\Eqqcolon`, `\html@mathml{\mathrel{=\mathrel{\mkern-1.2mu}\dblcolon}}{\mathop{\char"3d\char"2237}}`)
	DefineMacro(`\eqcolon`, `\html@mathml{\mathrel{\mathrel{-}\mathrel{\mkern-1.2mu}\vcentcolon}}{\mathop{\char"2239}}`)
	DefineMacro(`\Eqcolon`, `\html@mathml{\mathrel{\mathrel{-}\mathrel{\mkern-1.2mu}\dblcolon}}{\mathop{\char"2212\char"2237}}`)
	DefineMacro(`\colonapprox`, `\html@mathml{\mathrel{\vcentcolon\mathrel{\mkern-1.2mu}\approx}}{\mathop{\char"3a\char"2248}}`)
	DefineMacro(`\Colonapprox`, `\html@mathml{\mathrel{\dblcolon\mathrel{\mkern-1.2mu}\approx}}{\mathop{\char"2237\char"2248}}`)
	DefineMacro(`\colonsim`, `\html@mathml{\mathrel{\vcentcolon\mathrel{\mkern-1.2mu}\sim}}{\mathop{\char"3a\char"223c}}`)
	DefineMacro(`\Colonsim`, `\html@mathml{\mathrel{\dblcolon\mathrel{\mkern-1.2mu}\sim}}{\mathop{\char"2237\char"223c}}`)

	DefineMacro("∷", `\dblcolon`)
	DefineMacro("∹", `\eqcolon`)
	DefineMacro("≔", `\coloneqq`)
	DefineMacro("≕", `\eqqcolon`)
	DefineMacro("⩴", `\Coloneqq`)

	// colonequals package names.
	DefineMacro(`\ratio`, `\vcentcolon`)
	DefineMacro(`\coloncolon`, `\dblcolon`)
	DefineMacro(`\colonequals`, `\coloneqq`)
	DefineMacro(`\coloncolonequals`, `\Coloneqq`)
	DefineMacro(`\equalscolon`, `\eqqcolon`)
	DefineMacro(`\equalscoloncolon`, `\Eqqcolon`)
	DefineMacro(`\colonminus`, `\coloneq`)
	DefineMacro(`\coloncolonminus`, `\Coloneq`)
	DefineMacro(`\minuscolon`, `\eqcolon`)
	DefineMacro(`\minuscoloncolon`, `\Eqcolon`)
	DefineMacro(`\coloncolonapprox`, `\Colonapprox`)
	DefineMacro(`\coloncolonsim`, `\Colonsim`)
	DefineMacro(`\simcolon`, `\mathrel{\sim\mathrel{\mkern-1.2mu}\vcentcolon}`)
	DefineMacro(`\simcoloncolon`, `\mathrel{\sim\mathrel{\mkern-1.2mu}\dblcolon}`)
	DefineMacro(`\approxcolon`, `\mathrel{\approx\mathrel{\mkern-1.2mu}\vcentcolon}`)
	DefineMacro(`\approxcoloncolon`, `\mathrel{\approx\mathrel{\mkern-1.2mu}\dblcolon}`)
}

// texvc compatibility names.
func defineAliasMacros() {
	for name, text := range map[string]string{
		`\darr`: `\downarrow`, `\dArr`: `\Downarrow`, `\Darr`: `\Downarrow`,
		`\lang`: `\langle`, `\rang`: `\rangle`,
		`\uarr`: `\uparrow`, `\uArr`: `\Uparrow`, `\Uarr`: `\Uparrow`,
		`\N`: `\mathbb{N}`, `\R`: `\mathbb{R}`, `\Z`: `\mathbb{Z}`,
		`\alef`: `\aleph`, `\alefsym`: `\aleph`,
		`\Alpha`: `\mathrm{A}`, `\Beta`: `\mathrm{B}`, `\bull`: `\bullet`,
		`\Chi`: `\mathrm{X}`, `\clubs`: `\clubsuit`, `\cnums`: `\mathbb{C}`,
		`\Complex`: `\mathbb{C}`, `\Dagger`: `\ddagger`, `\diamonds`: `\diamondsuit`,
		`\empty`: `\emptyset`, `\Epsilon`: `\mathrm{E}`, `\Eta`: `\mathrm{H}`,
		`\exist`: `\exists`, `\harr`: `\leftrightarrow`, `\hArr`: `\Leftrightarrow`,
		`\Harr`: `\Leftrightarrow`, `\hearts`: `\heartsuit`, `\image`: `\Im`,
		`\infin`: `\infty`, `\Iota`: `\mathrm{I}`, `\isin`: `\in`,
		`\Kappa`: `\mathrm{K}`, `\larr`: `\leftarrow`, `\lArr`: `\Leftarrow`,
		`\Larr`: `\Leftarrow`, `\lrarr`: `\leftrightarrow`, `\lrArr`: `\Leftrightarrow`,
		`\Lrarr`: `\Leftrightarrow`, `\Mu`: `\mathrm{M}`, `\natnums`: `\mathbb{N}`,
		`\Nu`: `\mathrm{N}`, `\Omicron`: `\mathrm{O}`, `\plusmn`: `\pm`,
		`\rarr`: `\rightarrow`, `\rArr`: `\Rightarrow`, `\Rarr`: `\Rightarrow`,
		`\real`: `\Re`, `\reals`: `\mathbb{R}`, `\Reals`: `\mathbb{R}`,
		`\Rho`: `\mathrm{P}`, `\sdot`: `\cdot`, `\sect`: `\S`,
		`\spades`: `\spadesuit`, `\sub`: `\subset`, `\sube`: `\subseteq`,
		`\supe`: `\supseteq`, `\Tau`: `\mathrm{T}`, `\thetasym`: `\vartheta`,
		`\weierp`: `\wp`, `\Zeta`: `\mathrm{Z}`,
	} {
		DefineMacro(name, text)
	}
}
