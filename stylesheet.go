package katex

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dpotapov/go-katex/build"
)

// coreStylesheet holds the layout rules the box tree depends on. Font faces
// are not included: pages load the KaTeX fonts themselves.
const coreStylesheet = `.katex { font: normal 1.21em KaTeX_Main, Times New Roman, serif; line-height: 1.2; text-indent: 0; text-rendering: auto; }
.katex * { -ms-high-contrast-adjust: none !important; border-color: currentColor; }
.katex .katex-mathml { position: absolute; clip: rect(1px, 1px, 1px, 1px); padding: 0; border: 0; height: 1px; width: 1px; overflow: hidden; }
.katex .katex-html > .newline { display: block; }
.katex .base { position: relative; display: inline-block; white-space: nowrap; width: min-content; }
.katex .strut { display: inline-block; }
.katex .textbf { font-weight: bold; }
.katex .textit { font-style: italic; }
.katex .textrm { font-family: KaTeX_Main; }
.katex .textsf { font-family: KaTeX_SansSerif; }
.katex .texttt { font-family: KaTeX_Typewriter; }
.katex .mathnormal { font-family: KaTeX_Math; font-style: italic; }
.katex .mathit { font-family: KaTeX_Main; font-style: italic; }
.katex .mathrm { font-style: normal; }
.katex .mathbf { font-family: KaTeX_Main; font-weight: bold; }
.katex .boldsymbol { font-family: KaTeX_Math; font-weight: bold; font-style: italic; }
.katex .amsrm, .katex .mathbb, .katex .textbb { font-family: KaTeX_AMS; }
.katex .mathcal { font-family: KaTeX_Caligraphic; }
.katex .mathfrak, .katex .textfrak { font-family: KaTeX_Fraktur; }
.katex .mathtt { font-family: KaTeX_Typewriter; }
.katex .mathscr, .katex .textscr { font-family: KaTeX_Script; }
.katex .mathsf, .katex .textsf { font-family: KaTeX_SansSerif; }
.katex .mainrm { font-family: KaTeX_Main; font-style: normal; }
.katex .vlist-t { display: inline-table; table-layout: fixed; border-collapse: collapse; }
.katex .vlist-r { display: table-row; }
.katex .vlist { display: table-cell; vertical-align: bottom; position: relative; }
.katex .vlist > span { display: block; height: 0; position: relative; }
.katex .vlist > span > span { display: inline-block; }
.katex .vlist > span > .pstrut { overflow: hidden; width: 0; }
.katex .vlist-t2 { margin-right: -2px; }
.katex .vlist-s { display: table-cell; vertical-align: bottom; font-size: 1px; width: 2px; min-width: 2px; }
.katex .vbox { display: inline-flex; flex-direction: column; align-items: baseline; }
.katex .hbox { display: inline-flex; flex-direction: row; width: 100%; }
.katex .thinbox { display: inline-flex; flex-direction: row; width: 0; max-width: 0; }
.katex .msupsub { text-align: left; }
.katex .mfrac > span > span { text-align: center; }
.katex .mfrac .frac-line { display: inline-block; width: 100%; border-bottom-style: solid; }
.katex .mfrac .frac-line, .katex .overline .overline-line, .katex .underline .underline-line, .katex .hline, .katex .hdashline, .katex .rule { min-height: 1px; }
.katex .mspace { display: inline-block; }
.katex .llap, .katex .rlap, .katex .clap { width: 0; position: relative; }
.katex .llap > .inner, .katex .rlap > .inner, .katex .clap > .inner { position: absolute; }
.katex .llap > .fix, .katex .rlap > .fix, .katex .clap > .fix { display: inline-block; }
.katex .llap > .inner { right: 0; }
.katex .rlap > .inner, .katex .clap > .inner { left: 0; }
.katex .clap > .inner > span { margin-left: -50%; margin-right: 50%; }
.katex .rule { display: inline-block; border: solid 0; position: relative; }
.katex .overline .overline-line, .katex .underline .underline-line, .katex .hline { display: inline-block; width: 100%; border-bottom-style: solid; }
.katex .hdashline { display: inline-block; width: 100%; border-bottom-style: dashed; }
.katex .sqrt > .root { margin-left: 0.27777778em; margin-right: -0.55555556em; }
.katex .nulldelimiter { display: inline-block; width: 0.12em; }
.katex .delimcenter { position: relative; }
.katex .op-symbol { position: relative; }
.katex .op-symbol.small-op { font-family: KaTeX_Size1; }
.katex .op-symbol.large-op { font-family: KaTeX_Size2; }
.katex .op-limits > .vlist-t { text-align: center; }
.katex .accent > .vlist-t { text-align: center; }
.katex .accent .accent-body { position: relative; }
.katex .accent .accent-body:not(.accent-full) { width: 0; }
.katex .overlay { display: block; }
.katex .mtable .vertical-separator { display: inline-block; min-width: 1px; }
.katex .mtable .arraycolsep { display: inline-block; }
.katex .mtable .col-align-c > .vlist-t { text-align: center; }
.katex .mtable .col-align-l > .vlist-t { text-align: left; }
.katex .mtable .col-align-r > .vlist-t { text-align: right; }
.katex .svg-align { text-align: left; }
.katex svg { display: block; position: absolute; width: 100%; height: inherit; fill: currentColor; stroke: currentColor; fill-rule: nonzero; fill-opacity: 1; stroke-width: 1; stroke-linecap: butt; stroke-linejoin: miter; stroke-miterlimit: 4; stroke-dasharray: none; stroke-dashoffset: 0; stroke-opacity: 1; }
.katex svg path { stroke: none; }
.katex img { border-style: none; min-width: 0; min-height: 0; max-width: none; max-height: none; }
.katex .stretchy { width: 100%; display: block; position: relative; overflow: hidden; }
.katex .stretchy::before, .katex .stretchy::after { content: ""; }
.katex .hide-tail { width: 100%; position: relative; overflow: hidden; }
.katex .halfarrow-left { position: absolute; left: 0; width: 50.2%; overflow: hidden; }
.katex .halfarrow-right { position: absolute; right: 0; width: 50.2%; overflow: hidden; }
.katex .brace-left { position: absolute; left: 0; width: 25.1%; overflow: hidden; }
.katex .brace-center { position: absolute; left: 25%; width: 50%; overflow: hidden; }
.katex .brace-right { position: absolute; right: 0; width: 25.1%; overflow: hidden; }
.katex .x-arrow-pad { padding: 0 0.5em; }
.katex .cd-arrow-pad { padding: 0 0.55556em 0 0.27778em; }
.katex .x-arrow, .katex .mover, .katex .munder { text-align: center; }
.katex .boxpad { padding: 0 0.3em; }
.katex .fbox, .katex .fcolorbox { box-sizing: border-box; border: 0.04em solid; }
.katex .cancel-pad { padding: 0 0.2em; }
.katex .cancel-lap { margin-left: -0.2em; margin-right: -0.2em; }
.katex .sout { border-bottom-style: solid; border-bottom-width: 0.08em; }
.katex .angl { box-sizing: border-box; border-top: 0.049em solid; border-right: 0.049em solid; margin-right: 0.03889em; }
.katex .anglpad { padding: 0 0.03889em; }
.katex .eqn-num::before { counter-increment: katexEqnNo; content: "(" counter(katexEqnNo) ")"; }
.katex .mml-eqn-num::before { counter-increment: mmlEqnNo; content: "(" counter(mmlEqnNo) ")"; }
.katex .mtr-glue { width: 50%; }
.katex .cd-vert-arrow { display: inline-block; position: relative; }
.katex .cd-label-left { display: inline-block; position: absolute; right: calc(50% + 0.3em); text-align: left; }
.katex .cd-label-right { display: inline-block; position: absolute; left: calc(50% + 0.3em); text-align: right; }
.katex-display { display: block; margin: 1em 0; text-align: center; }
.katex-display > .katex { display: block; text-align: center; white-space: nowrap; }
.katex-display > .katex > .katex-html { display: block; position: relative; }
.katex-display > .katex > .katex-html > .tag { position: absolute; right: 0; }
.katex-display.leqno > .katex > .katex-html > .tag { left: 0; right: auto; }
.katex-display.fleqn > .katex { text-align: left; padding-left: 2em; }
.katex-error { white-space: pre-wrap; }
body { counter-reset: katexEqnNo mmlEqnNo; }`

// delimFonts are the font families of the delimsizing size classes.
var delimFonts = []string{"KaTeX_Size1", "KaTeX_Size2", "KaTeX_Size3", "KaTeX_Size4"}

// sizingRules returns the rules that rescale text between the eleven size
// levels, e.g. from \normalsize (6) to \large (7).
func sizingRules() string {
	var sb strings.Builder
	for from := 1; from <= 11; from++ {
		for to := 1; to <= 11; to++ {
			ratio := build.SizeMultiplier(to) / build.SizeMultiplier(from)
			ratio = math.Round(ratio*1e8) / 1e8
			fmt.Fprintf(&sb, ".katex .sizing.reset-size%d.size%d, .katex .fontsize-ensurer.reset-size%d.size%d { font-size: %sem; }\n",
				from, to, from, to, strconv.FormatFloat(ratio, 'f', -1, 64))
		}
	}
	for i, font := range delimFonts {
		fmt.Fprintf(&sb, ".katex .delimsizing.size%d { font-family: %s; }\n", i+1, font)
	}
	sb.WriteString(".katex .delimsizing.mult .delim-size1 > span { font-family: KaTeX_Size1; }\n")
	sb.WriteString(".katex .delimsizing.mult .delim-size4 > span { font-family: KaTeX_Size4; }")
	return sb.String()
}

// Stylesheet returns the CSS rules the rendered markup relies on.
func Stylesheet() string {
	return coreStylesheet + "\n" + sizingRules()
}
