package parse

// SymbolInfo describes how a symbol is rendered.
type SymbolInfo struct {
	// Font is "main" or "ams".
	Font string
	// Group is the node type created for the symbol: an atom family or one
	// of "mathord", "textord", "spacing", "accent-token", "op-token".
	Group string
	// Replace is the character drawn for the symbol. It is empty for
	// spacing commands that produce no glyph.
	Replace string
}

const (
	fontMain = "main"
	fontAMS  = "ams"

	groupAccent  = "accent-token"
	groupBin     = "bin"
	groupClose   = "close"
	groupInner   = "inner"
	groupMathord = "mathord"
	groupOp      = "op-token"
	groupOpen    = "open"
	groupPunct   = "punct"
	groupRel     = "rel"
	groupSpacing = "spacing"
	groupTextord = "textord"
)

// atomGroups are the symbol groups that become Atom nodes.
var atomGroups = map[string]bool{
	groupBin: true, groupClose: true, groupInner: true,
	groupOpen: true, groupPunct: true, groupRel: true,
}

// Ligatures are the text-mode character runs merged into one symbol.
var Ligatures = map[string]bool{"--": true, "---": true, "``": true, "''": true}

// symbols maps a mode and a symbol name to its rendering information.
var symbols = newSymbolTable()

// LookupSymbol returns the symbol named name in mode.
func LookupSymbol(mode Mode, name string) (SymbolInfo, bool) {
	s, ok := symbols[mode][name]
	return s, ok
}

// DefineSymbol adds a symbol. With acceptUnicodeChar, the replacement
// character itself is also accepted as input. It must only be called during
// program initialization, before any parse runs.
func DefineSymbol(mode Mode, font, group, replace, name string, acceptUnicodeChar bool) {
	symbolTable(symbols).def(mode, font, group, replace, name, acceptUnicodeChar)
}

type symbolTable map[Mode]map[string]SymbolInfo

func (t symbolTable) def(mode Mode, font, group, replace, name string, acceptUnicodeChar bool) {
	info := SymbolInfo{Font: font, Group: group, Replace: replace}
	t[mode][name] = info
	if acceptUnicodeChar && replace != "" {
		t[mode][replace] = info
	}
}

func newSymbolTable() map[Mode]map[string]SymbolInfo {
	t := symbolTable{MathMode: {}, TextMode: {}}
	const (
		math = MathMode
		text = TextMode
		main = fontMain
		ams  = fontAMS

		accent  = groupAccent
		bin     = groupBin
		close   = groupClose
		inner   = groupInner
		mathord = groupMathord
		op      = groupOp
		open    = groupOpen
		punct   = groupPunct
		rel     = groupRel
		spacing = groupSpacing
		textord = groupTextord
	)
	def := t.def

	// relations
	def(math, main, rel, "≡", `\equiv`, true)
	def(math, main, rel, "≺", `\prec`, true)
	def(math, main, rel, "≻", `\succ`, true)
	def(math, main, rel, "∼", `\sim`, true)
	def(math, main, rel, "⊥", `\perp`, false)
	def(math, main, rel, "⪯", `\preceq`, true)
	def(math, main, rel, "⪰", `\succeq`, true)
	def(math, main, rel, "≃", `\simeq`, true)
	def(math, main, rel, "∣", `\mid`, true)
	def(math, main, rel, "≪", `\ll`, true)
	def(math, main, rel, "≫", `\gg`, true)
	def(math, main, rel, "≍", `\asymp`, true)
	def(math, main, rel, "∥", `\parallel`, false)
	def(math, main, rel, "⋈", `\bowtie`, true)
	def(math, main, rel, "⌣", `\smile`, true)
	def(math, main, rel, "⊑", `\sqsubseteq`, true)
	def(math, main, rel, "⊒", `\sqsupseteq`, true)
	def(math, main, rel, "≐", `\doteq`, true)
	def(math, main, rel, "⌢", `\frown`, true)
	def(math, main, rel, "∋", `\ni`, true)
	def(math, main, rel, "∝", `\propto`, true)
	def(math, main, rel, "⊢", `\vdash`, true)
	def(math, main, rel, "⊣", `\dashv`, true)
	def(math, main, rel, "∋", `\owns`, false)

	// punctuation
	def(math, main, punct, ".", `\ldotp`, false)
	def(math, main, punct, "⋅", `\cdotp`, false)

	// misc symbols
	def(math, main, textord, "#", `\#`, false)
	def(text, main, textord, "#", `\#`, false)
	def(math, main, textord, "&", `\&`, false)
	def(text, main, textord, "&", `\&`, false)
	def(math, main, textord, "ℵ", `\aleph`, true)
	def(math, main, textord, "∀", `\forall`, true)
	def(math, main, textord, "ℏ", `\hbar`, true)
	def(math, main, textord, "∃", `\exists`, true)
	def(math, main, textord, "∇", `\nabla`, true)
	def(math, main, textord, "♭", `\flat`, true)
	def(math, main, textord, "ℓ", `\ell`, true)
	def(math, main, textord, "♮", `\natural`, true)
	def(math, main, textord, "♣", `\clubsuit`, true)
	def(math, main, textord, "℘", `\wp`, true)
	def(math, main, textord, "♯", `\sharp`, true)
	def(math, main, textord, "♢", `\diamondsuit`, true)
	def(math, main, textord, "ℜ", `\Re`, true)
	def(math, main, textord, "♡", `\heartsuit`, true)
	def(math, main, textord, "ℑ", `\Im`, true)
	def(math, main, textord, "♠", `\spadesuit`, true)
	def(math, main, textord, "§", `\S`, true)
	def(text, main, textord, "§", `\S`, false)
	def(math, main, textord, "¶", `\P`, true)
	def(text, main, textord, "¶", `\P`, false)
	def(math, main, textord, "†", `\dag`, false)
	def(text, main, textord, "†", `\dag`, false)
	def(text, main, textord, "†", `\textdagger`, false)
	def(math, main, textord, "‡", `\ddag`, false)
	def(text, main, textord, "‡", `\ddag`, false)
	def(text, main, textord, "‡", `\textdaggerdbl`, false)

	// large delimiters
	def(math, main, close, "⎱", `\rmoustache`, true)
	def(math, main, open, "⎰", `\lmoustache`, true)
	def(math, main, close, "⟯", `\rgroup`, true)
	def(math, main, open, "⟮", `\lgroup`, true)

	// binary operators
	def(math, main, bin, "∓", `\mp`, true)
	def(math, main, bin, "⊖", `\ominus`, true)
	def(math, main, bin, "⊎", `\uplus`, true)
	def(math, main, bin, "⊓", `\sqcap`, true)
	def(math, main, bin, "∗", `\ast`, false)
	def(math, main, bin, "⊔", `\sqcup`, true)
	def(math, main, bin, "◯", `\bigcirc`, true)
	def(math, main, bin, "∙", `\bullet`, true)
	def(math, main, bin, "‡", `\ddagger`, false)
	def(math, main, bin, "≀", `\wr`, true)
	def(math, main, bin, "⨿", `\amalg`, false)
	def(math, main, bin, "&", `\And`, false)

	// arrows
	def(math, main, rel, "⟵", `\longleftarrow`, true)
	def(math, main, rel, "⇐", `\Leftarrow`, true)
	def(math, main, rel, "⟸", `\Longleftarrow`, true)
	def(math, main, rel, "⟶", `\longrightarrow`, true)
	def(math, main, rel, "⇒", `\Rightarrow`, true)
	def(math, main, rel, "⟹", `\Longrightarrow`, true)
	def(math, main, rel, "↔", `\leftrightarrow`, true)
	def(math, main, rel, "⟷", `\longleftrightarrow`, true)
	def(math, main, rel, "⇔", `\Leftrightarrow`, true)
	def(math, main, rel, "⟺", `\Longleftrightarrow`, true)
	def(math, main, rel, "↦", `\mapsto`, true)
	def(math, main, rel, "⟼", `\longmapsto`, true)
	def(math, main, rel, "↗", `\nearrow`, true)
	def(math, main, rel, "↩", `\hookleftarrow`, true)
	def(math, main, rel, "↪", `\hookrightarrow`, true)
	def(math, main, rel, "↘", `\searrow`, true)
	def(math, main, rel, "↼", `\leftharpoonup`, true)
	def(math, main, rel, "⇀", `\rightharpoonup`, true)
	def(math, main, rel, "↙", `\swarrow`, true)
	def(math, main, rel, "↽", `\leftharpoondown`, true)
	def(math, main, rel, "⇁", `\rightharpoondown`, true)
	def(math, main, rel, "↖", `\nwarrow`, true)
	def(math, main, rel, "⇌", `\rightleftharpoons`, true)

	// AMS negated relations
	def(math, ams, rel, "≮", `\nless`, true)
	def(math, ams, rel, "", `\@nleqslant`, false)
	def(math, ams, rel, "", `\@nleqq`, false)
	def(math, ams, rel, "⪇", `\lneq`, true)
	def(math, ams, rel, "≨", `\lneqq`, true)
	def(math, ams, rel, "", `\@lvertneqq`, false)
	def(math, ams, rel, "⋦", `\lnsim`, true)
	def(math, ams, rel, "⪉", `\lnapprox`, true)
	def(math, ams, rel, "⊀", `\nprec`, true)
	def(math, ams, rel, "⋠", `\npreceq`, true)
	def(math, ams, rel, "⋨", `\precnsim`, true)
	def(math, ams, rel, "⪹", `\precnapprox`, true)
	def(math, ams, rel, "≁", `\nsim`, true)
	def(math, ams, rel, "", `\@nshortmid`, false)
	def(math, ams, rel, "∤", `\nmid`, true)
	def(math, ams, rel, "⊬", `\nvdash`, true)
	def(math, ams, rel, "⊭", `\nvDash`, true)
	def(math, ams, rel, "⋪", `\ntriangleleft`, false)
	def(math, ams, rel, "⋬", `\ntrianglelefteq`, true)
	def(math, ams, rel, "⊊", `\subsetneq`, true)
	def(math, ams, rel, "", `\@varsubsetneq`, false)
	def(math, ams, rel, "⫋", `\subsetneqq`, true)
	def(math, ams, rel, "", `\@varsubsetneqq`, false)
	def(math, ams, rel, "≯", `\ngtr`, true)
	def(math, ams, rel, "", `\@ngeqslant`, false)
	def(math, ams, rel, "", `\@ngeqq`, false)
	def(math, ams, rel, "⪈", `\gneq`, true)
	def(math, ams, rel, "≩", `\gneqq`, true)
	def(math, ams, rel, "", `\@gvertneqq`, false)
	def(math, ams, rel, "⋧", `\gnsim`, true)
	def(math, ams, rel, "⪊", `\gnapprox`, true)
	def(math, ams, rel, "⊁", `\nsucc`, true)
	def(math, ams, rel, "⋡", `\nsucceq`, true)
	def(math, ams, rel, "⋩", `\succnsim`, true)
	def(math, ams, rel, "⪺", `\succnapprox`, true)
	def(math, ams, rel, "≆", `\ncong`, true)
	def(math, ams, rel, "", `\@nshortparallel`, false)
	def(math, ams, rel, "∦", `\nparallel`, true)
	def(math, ams, rel, "⊯", `\nVDash`, true)
	def(math, ams, rel, "⋫", `\ntriangleright`, false)
	def(math, ams, rel, "⋭", `\ntrianglerighteq`, true)
	def(math, ams, rel, "", `\@nsupseteqq`, false)
	def(math, ams, rel, "⊋", `\supsetneq`, true)
	def(math, ams, rel, "", `\@varsupsetneq`, false)
	def(math, ams, rel, "⫌", `\supsetneqq`, true)
	def(math, ams, rel, "", `\@varsupsetneqq`, false)
	def(math, ams, rel, "⊮", `\nVdash`, true)
	def(math, ams, rel, "⪵", `\precneqq`, true)
	def(math, ams, rel, "⪶", `\succneqq`, true)
	def(math, ams, rel, "", `\@nsubseteqq`, false)
	def(math, ams, bin, "⊴", `\unlhd`, false)
	def(math, ams, bin, "⊵", `\unrhd`, false)

	// AMS negated arrows
	def(math, ams, rel, "↚", `\nleftarrow`, true)
	def(math, ams, rel, "↛", `\nrightarrow`, true)
	def(math, ams, rel, "⇍", `\nLeftarrow`, true)
	def(math, ams, rel, "⇏", `\nRightarrow`, true)
	def(math, ams, rel, "↮", `\nleftrightarrow`, true)
	def(math, ams, rel, "⇎", `\nLeftrightarrow`, true)

	// AMS misc
	def(math, ams, rel, "△", `\vartriangle`, false)
	def(math, ams, textord, "ℏ", `\hslash`, false)
	def(math, ams, textord, "▽", `\triangledown`, false)
	def(math, ams, textord, "◊", `\lozenge`, false)
	def(math, ams, textord, "Ⓢ", `\circledS`, false)
	def(math, ams, textord, "®", `\circledR`, false)
	def(text, ams, textord, "®", `\circledR`, false)
	def(math, ams, textord, "∡", `\measuredangle`, true)
	def(math, ams, textord, "∄", `\nexists`, false)
	def(math, ams, textord, "℧", `\mho`, false)
	def(math, ams, textord, "Ⅎ", `\Finv`, true)
	def(math, ams, textord, "⅁", `\Game`, true)
	def(math, ams, textord, "‵", `\backprime`, false)
	def(math, ams, textord, "▲", `\blacktriangle`, false)
	def(math, ams, textord, "▼", `\blacktriangledown`, false)
	def(math, ams, textord, "■", `\blacksquare`, false)
	def(math, ams, textord, "⧫", `\blacklozenge`, false)
	def(math, ams, textord, "★", `\bigstar`, false)
	def(math, ams, textord, "∢", `\sphericalangle`, true)
	def(math, ams, textord, "∁", `\complement`, true)
	def(math, ams, textord, "ð", `\eth`, true)
	def(text, main, textord, "ð", "ð", false)
	def(math, ams, textord, "╱", `\diagup`, false)
	def(math, ams, textord, "╲", `\diagdown`, false)
	def(math, ams, textord, "□", `\square`, false)
	def(math, ams, textord, "□", `\Box`, false)
	def(math, ams, textord, "◊", `\Diamond`, false)
	def(math, ams, textord, "¥", `\yen`, true)
	def(text, ams, textord, "¥", `\yen`, true)
	def(math, ams, textord, "✓", `\checkmark`, true)
	def(text, ams, textord, "✓", `\checkmark`, false)
	def(math, ams, textord, "ℶ", `\beth`, true)
	def(math, ams, textord, "ℸ", `\daleth`, true)
	def(math, ams, textord, "ℷ", `\gimel`, true)
	def(math, ams, textord, "ϝ", `\digamma`, true)
	def(math, ams, textord, "ϰ", `\varkappa`, false)

	// AMS delimiters
	def(math, ams, open, "┌", `\@ulcorner`, true)
	def(math, ams, close, "┐", `\@urcorner`, true)
	def(math, ams, open, "└", `\@llcorner`, true)
	def(math, ams, close, "┘", `\@lrcorner`, true)

	// AMS relations
	def(math, ams, rel, "≦", `\leqq`, true)
	def(math, ams, rel, "⩽", `\leqslant`, true)
	def(math, ams, rel, "⪕", `\eqslantless`, true)
	def(math, ams, rel, "≲", `\lesssim`, true)
	def(math, ams, rel, "⪅", `\lessapprox`, true)
	def(math, ams, rel, "≊", `\approxeq`, true)
	def(math, ams, bin, "⋖", `\lessdot`, false)
	def(math, ams, rel, "⋘", `\lll`, true)
	def(math, ams, rel, "≶", `\lessgtr`, true)
	def(math, ams, rel, "⋚", `\lesseqgtr`, true)
	def(math, ams, rel, "⪋", `\lesseqqgtr`, true)
	def(math, ams, rel, "≑", `\doteqdot`, false)
	def(math, ams, rel, "≓", `\risingdotseq`, true)
	def(math, ams, rel, "≒", `\fallingdotseq`, true)
	def(math, ams, rel, "∽", `\backsim`, true)
	def(math, ams, rel, "⋍", `\backsimeq`, true)
	def(math, ams, rel, "⫅", `\subseteqq`, true)
	def(math, ams, rel, "⋐", `\Subset`, true)
	def(math, ams, rel, "⊏", `\sqsubset`, true)
	def(math, ams, rel, "≼", `\preccurlyeq`, true)
	def(math, ams, rel, "⋞", `\curlyeqprec`, true)
	def(math, ams, rel, "≾", `\precsim`, true)
	def(math, ams, rel, "⪷", `\precapprox`, true)
	def(math, ams, rel, "⊲", `\vartriangleleft`, false)
	def(math, ams, rel, "⊴", `\trianglelefteq`, false)
	def(math, ams, rel, "⊨", `\vDash`, true)
	def(math, ams, rel, "⊪", `\Vvdash`, true)
	def(math, ams, rel, "⌣", `\smallsmile`, false)
	def(math, ams, rel, "⌢", `\smallfrown`, false)
	def(math, ams, rel, "≏", `\bumpeq`, true)
	def(math, ams, rel, "≎", `\Bumpeq`, true)
	def(math, ams, rel, "≧", `\geqq`, true)
	def(math, ams, rel, "⩾", `\geqslant`, true)
	def(math, ams, rel, "⪖", `\eqslantgtr`, true)
	def(math, ams, rel, "≳", `\gtrsim`, true)
	def(math, ams, rel, "⪆", `\gtrapprox`, true)
	def(math, ams, bin, "⋗", `\gtrdot`, false)
	def(math, ams, rel, "⋙", `\ggg`, true)
	def(math, ams, rel, "≷", `\gtrless`, true)
	def(math, ams, rel, "⋛", `\gtreqless`, true)
	def(math, ams, rel, "⪌", `\gtreqqless`, true)
	def(math, ams, rel, "≖", `\eqcirc`, true)
	def(math, ams, rel, "≗", `\circeq`, true)
	def(math, ams, rel, "≜", `\triangleq`, true)
	def(math, ams, rel, "∼", `\thicksim`, false)
	def(math, ams, rel, "≈", `\thickapprox`, false)
	def(math, ams, rel, "⫆", `\supseteqq`, true)
	def(math, ams, rel, "⋑", `\Supset`, true)
	def(math, ams, rel, "⊐", `\sqsupset`, true)
	def(math, ams, rel, "≽", `\succcurlyeq`, true)
	def(math, ams, rel, "⋟", `\curlyeqsucc`, true)
	def(math, ams, rel, "≿", `\succsim`, true)
	def(math, ams, rel, "⪸", `\succapprox`, true)
	def(math, ams, rel, "⊳", `\vartriangleright`, false)
	def(math, ams, rel, "⊵", `\trianglerighteq`, false)
	def(math, ams, rel, "⊩", `\Vdash`, true)
	def(math, ams, rel, "∣", `\shortmid`, false)
	def(math, ams, rel, "∥", `\shortparallel`, false)
	def(math, ams, rel, "≬", `\between`, true)
	def(math, ams, rel, "⋔", `\pitchfork`, true)
	def(math, ams, rel, "∝", `\varpropto`, false)
	def(math, ams, rel, "◀", `\blacktriangleleft`, false)
	def(math, ams, rel, "∴", `\therefore`, true)
	def(math, ams, rel, "∍", `\backepsilon`, false)
	def(math, ams, rel, "▶", `\blacktriangleright`, false)
	def(math, ams, rel, "∵", `\because`, true)
	def(math, ams, rel, "⋘", `\llless`, false)
	def(math, ams, rel, "⋙", `\gggtr`, false)
	def(math, ams, bin, "⊲", `\lhd`, false)
	def(math, ams, bin, "⊳", `\rhd`, false)
	def(math, ams, rel, "≂", `\eqsim`, true)
	def(math, main, rel, "⋈", `\Join`, false)
	def(math, ams, rel, "≑", `\Doteq`, true)

	// AMS binary operators
	def(math, ams, bin, "∔", `\dotplus`, true)
	def(math, ams, bin, "∖", `\smallsetminus`, false)
	def(math, ams, bin, "⋒", `\Cap`, true)
	def(math, ams, bin, "⋓", `\Cup`, true)
	def(math, ams, bin, "⩞", `\doublebarwedge`, true)
	def(math, ams, bin, "⊟", `\boxminus`, true)
	def(math, ams, bin, "⊞", `\boxplus`, true)
	def(math, ams, bin, "⋇", `\divideontimes`, true)
	def(math, ams, bin, "⋉", `\ltimes`, true)
	def(math, ams, bin, "⋊", `\rtimes`, true)
	def(math, ams, bin, "⋋", `\leftthreetimes`, true)
	def(math, ams, bin, "⋌", `\rightthreetimes`, true)
	def(math, ams, bin, "⋏", `\curlywedge`, true)
	def(math, ams, bin, "⋎", `\curlyvee`, true)
	def(math, ams, bin, "⊝", `\circleddash`, true)
	def(math, ams, bin, "⊛", `\circledast`, true)
	def(math, ams, bin, "⋅", `\centerdot`, false)
	def(math, ams, bin, "⊺", `\intercal`, true)
	def(math, ams, bin, "⋒", `\doublecap`, false)
	def(math, ams, bin, "⋓", `\doublecup`, false)
	def(math, ams, bin, "⊠", `\boxtimes`, true)

	// AMS arrows
	def(math, ams, rel, "⇢", `\dashrightarrow`, true)
	def(math, ams, rel, "⇠", `\dashleftarrow`, true)
	def(math, ams, rel, "⇇", `\leftleftarrows`, true)
	def(math, ams, rel, "⇆", `\leftrightarrows`, true)
	def(math, ams, rel, "⇚", `\Lleftarrow`, true)
	def(math, ams, rel, "↞", `\twoheadleftarrow`, true)
	def(math, ams, rel, "↢", `\leftarrowtail`, true)
	def(math, ams, rel, "↫", `\looparrowleft`, true)
	def(math, ams, rel, "⇋", `\leftrightharpoons`, true)
	def(math, ams, rel, "↶", `\curvearrowleft`, true)
	def(math, ams, rel, "↺", `\circlearrowleft`, true)
	def(math, ams, rel, "↰", `\Lsh`, true)
	def(math, ams, rel, "⇈", `\upuparrows`, true)
	def(math, ams, rel, "↿", `\upharpoonleft`, true)
	def(math, ams, rel, "⇃", `\downharpoonleft`, true)
	def(math, main, rel, "⊶", `\origof`, true)
	def(math, main, rel, "⊷", `\imageof`, true)
	def(math, ams, rel, "⊸", `\multimap`, true)
	def(math, ams, rel, "↭", `\leftrightsquigarrow`, true)
	def(math, ams, rel, "⇉", `\rightrightarrows`, true)
	def(math, ams, rel, "⇄", `\rightleftarrows`, true)
	def(math, ams, rel, "↠", `\twoheadrightarrow`, true)
	def(math, ams, rel, "↣", `\rightarrowtail`, true)
	def(math, ams, rel, "↬", `\looparrowright`, true)
	def(math, ams, rel, "↷", `\curvearrowright`, true)
	def(math, ams, rel, "↻", `\circlearrowright`, true)
	def(math, ams, rel, "↱", `\Rsh`, true)
	def(math, ams, rel, "⇊", `\downdownarrows`, true)
	def(math, ams, rel, "↾", `\upharpoonright`, true)
	def(math, ams, rel, "⇂", `\downharpoonright`, true)
	def(math, ams, rel, "⇝", `\rightsquigarrow`, true)
	def(math, ams, rel, "⇝", `\leadsto`, false)
	def(math, ams, rel, "⇛", `\Rrightarrow`, true)
	def(math, ams, rel, "↾", `\restriction`, false)

	def(math, main, textord, "‘", "`", false)
	def(math, main, textord, "$", `\$`, false)
	def(text, main, textord, "$", `\$`, false)
	def(text, main, textord, "$", `\textdollar`, false)
	def(math, main, textord, "%", `\%`, false)
	def(text, main, textord, "%", `\%`, false)
	def(math, main, textord, "_", `\_`, false)
	def(text, main, textord, "_", `\_`, false)
	def(text, main, textord, "_", `\textunderscore`, false)
	def(math, main, textord, "∠", `\angle`, true)
	def(math, main, textord, "∞", `\infty`, true)
	def(math, main, textord, "′", `\prime`, false)
	def(math, main, textord, "△", `\triangle`, false)

	// upright greek capitals
	def(math, main, textord, "Γ", `\Gamma`, true)
	def(math, main, textord, "Δ", `\Delta`, true)
	def(math, main, textord, "Θ", `\Theta`, true)
	def(math, main, textord, "Λ", `\Lambda`, true)
	def(math, main, textord, "Ξ", `\Xi`, true)
	def(math, main, textord, "Π", `\Pi`, true)
	def(math, main, textord, "Σ", `\Sigma`, true)
	def(math, main, textord, "Υ", `\Upsilon`, true)
	def(math, main, textord, "Φ", `\Phi`, true)
	def(math, main, textord, "Ψ", `\Psi`, true)
	def(math, main, textord, "Ω", `\Omega`, true)
	def(math, main, textord, "A", "Α", false)
	def(math, main, textord, "B", "Β", false)
	def(math, main, textord, "E", "Ε", false)
	def(math, main, textord, "Z", "Ζ", false)
	def(math, main, textord, "H", "Η", false)
	def(math, main, textord, "I", "Ι", false)
	def(math, main, textord, "K", "Κ", false)
	def(math, main, textord, "M", "Μ", false)
	def(math, main, textord, "N", "Ν", false)
	def(math, main, textord, "O", "Ο", false)
	def(math, main, textord, "P", "Ρ", false)
	def(math, main, textord, "T", "Τ", false)
	def(math, main, textord, "X", "Χ", false)
	def(math, main, textord, "¬", `\neg`, true)
	def(math, main, textord, "¬", `\lnot`, false)
	def(math, main, textord, "⊤", `\top`, false)
	def(math, main, textord, "⊥", `\bot`, false)
	def(math, main, textord, "∅", `\emptyset`, false)
	def(math, ams, textord, "∅", `\varnothing`, false)

	// italic greek
	def(math, main, mathord, "α", `\alpha`, true)
	def(math, main, mathord, "β", `\beta`, true)
	def(math, main, mathord, "γ", `\gamma`, true)
	def(math, main, mathord, "δ", `\delta`, true)
	def(math, main, mathord, "ϵ", `\epsilon`, true)
	def(math, main, mathord, "ζ", `\zeta`, true)
	def(math, main, mathord, "η", `\eta`, true)
	def(math, main, mathord, "θ", `\theta`, true)
	def(math, main, mathord, "ι", `\iota`, true)
	def(math, main, mathord, "κ", `\kappa`, true)
	def(math, main, mathord, "λ", `\lambda`, true)
	def(math, main, mathord, "μ", `\mu`, true)
	def(math, main, mathord, "ν", `\nu`, true)
	def(math, main, mathord, "ξ", `\xi`, true)
	def(math, main, mathord, "ο", `\omicron`, true)
	def(math, main, mathord, "π", `\pi`, true)
	def(math, main, mathord, "ρ", `\rho`, true)
	def(math, main, mathord, "σ", `\sigma`, true)
	def(math, main, mathord, "τ", `\tau`, true)
	def(math, main, mathord, "υ", `\upsilon`, true)
	def(math, main, mathord, "ϕ", `\phi`, true)
	def(math, main, mathord, "χ", `\chi`, true)
	def(math, main, mathord, "ψ", `\psi`, true)
	def(math, main, mathord, "ω", `\omega`, true)
	def(math, main, mathord, "ε", `\varepsilon`, true)
	def(math, main, mathord, "ϑ", `\vartheta`, true)
	def(math, main, mathord, "ϖ", `\varpi`, true)
	def(math, main, mathord, "ϱ", `\varrho`, true)
	def(math, main, mathord, "ς", `\varsigma`, true)
	def(math, main, mathord, "φ", `\varphi`, true)

	def(math, main, bin, "∗", "*", true)
	def(math, main, bin, "+", "+", false)
	def(math, main, bin, "−", "-", true)
	def(math, main, bin, "⋅", `\cdot`, true)
	def(math, main, bin, "∘", `\circ`, true)
	def(math, main, bin, "÷", `\div`, true)
	def(math, main, bin, "±", `\pm`, true)
	def(math, main, bin, "×", `\times`, true)
	def(math, main, bin, "∩", `\cap`, true)
	def(math, main, bin, "∪", `\cup`, true)
	def(math, main, bin, "∖", `\setminus`, true)
	def(math, main, bin, "∧", `\land`, false)
	def(math, main, bin, "∨", `\lor`, false)
	def(math, main, bin, "∧", `\wedge`, true)
	def(math, main, bin, "∨", `\vee`, true)
	def(math, main, textord, "√", `\surd`, false)
	def(math, main, open, "⟨", `\langle`, true)
	def(math, main, open, "∣", `\lvert`, false)
	def(math, main, open, "∥", `\lVert`, false)
	def(math, main, close, "?", "?", false)
	def(math, main, close, "!", "!", false)
	def(math, main, close, "⟩", `\rangle`, true)
	def(math, main, close, "∣", `\rvert`, false)
	def(math, main, close, "∥", `\rVert`, false)
	def(math, main, rel, "=", "=", false)
	def(math, main, rel, ":", ":", false)
	def(math, main, rel, "≈", `\approx`, true)
	def(math, main, rel, "≅", `\cong`, true)
	def(math, main, rel, "≥", `\ge`, false)
	def(math, main, rel, "≥", `\geq`, true)
	def(math, main, rel, "←", `\gets`, false)
	def(math, main, rel, ">", `\gt`, true)
	def(math, main, rel, "∈", `\in`, true)
	def(math, main, rel, "", `\@not`, false)
	def(math, main, rel, "⊂", `\subset`, true)
	def(math, main, rel, "⊃", `\supset`, true)
	def(math, main, rel, "⊆", `\subseteq`, true)
	def(math, main, rel, "⊇", `\supseteq`, true)
	def(math, ams, rel, "⊈", `\nsubseteq`, true)
	def(math, ams, rel, "⊉", `\nsupseteq`, true)
	def(math, main, rel, "⊨", `\models`, false)
	def(math, main, rel, "←", `\leftarrow`, true)
	def(math, main, rel, "≤", `\le`, false)
	def(math, main, rel, "≤", `\leq`, true)
	def(math, main, rel, "<", `\lt`, true)
	def(math, main, rel, "→", `\rightarrow`, true)
	def(math, main, rel, "→", `\to`, false)
	def(math, ams, rel, "≱", `\ngeq`, true)
	def(math, ams, rel, "≰", `\nleq`, true)

	// spaces
	def(math, main, spacing, "\u00a0", `\ `, false)
	def(math, main, spacing, "\u00a0", `\space`, false)
	def(math, main, spacing, "\u00a0", `\nobreakspace`, false)
	def(text, main, spacing, "\u00a0", `\ `, false)
	def(text, main, spacing, "\u00a0", " ", false)
	def(text, main, spacing, "\u00a0", `\space`, false)
	def(text, main, spacing, "\u00a0", `\nobreakspace`, false)
	def(math, main, spacing, "", `\nobreak`, false)
	def(math, main, spacing, "", `\allowbreak`, false)
	def(math, main, punct, ",", ",", false)
	def(math, main, punct, ";", ";", false)

	def(math, ams, bin, "⊼", `\barwedge`, true)
	def(math, ams, bin, "⊻", `\veebar`, true)
	def(math, main, bin, "⊙", `\odot`, true)
	def(math, main, bin, "⊕", `\oplus`, true)
	def(math, main, bin, "⊗", `\otimes`, true)
	def(math, main, textord, "∂", `\partial`, true)
	def(math, main, bin, "⊘", `\oslash`, true)
	def(math, ams, bin, "⊚", `\circledcirc`, true)
	def(math, ams, bin, "⊡", `\boxdot`, true)
	def(math, main, bin, "△", `\bigtriangleup`, false)
	def(math, main, bin, "▽", `\bigtriangledown`, false)
	def(math, main, bin, "†", `\dagger`, false)
	def(math, main, bin, "⋄", `\diamond`, false)
	def(math, main, bin, "⋆", `\star`, false)
	def(math, main, bin, "◃", `\triangleleft`, false)
	def(math, main, bin, "▹", `\triangleright`, false)

	// braces, brackets and bars
	def(math, main, open, "{", `\{`, false)
	def(text, main, textord, "{", `\{`, false)
	def(text, main, textord, "{", `\textbraceleft`, false)
	def(math, main, close, "}", `\}`, false)
	def(text, main, textord, "}", `\}`, false)
	def(text, main, textord, "}", `\textbraceright`, false)
	def(math, main, open, "{", `\lbrace`, false)
	def(math, main, close, "}", `\rbrace`, false)
	def(math, main, open, "[", `\lbrack`, true)
	def(text, main, textord, "[", `\lbrack`, true)
	def(math, main, close, "]", `\rbrack`, true)
	def(text, main, textord, "]", `\rbrack`, true)
	def(math, main, open, "(", `\lparen`, true)
	def(math, main, close, ")", `\rparen`, true)
	def(text, main, textord, "<", `\textless`, true)
	def(text, main, textord, ">", `\textgreater`, true)
	def(math, main, open, "⌊", `\lfloor`, true)
	def(math, main, close, "⌋", `\rfloor`, true)
	def(math, main, open, "⌈", `\lceil`, true)
	def(math, main, close, "⌉", `\rceil`, true)
	def(math, main, textord, `\`, `\backslash`, false)
	def(math, main, textord, "∣", "|", false)
	def(math, main, textord, "∣", `\vert`, false)
	def(text, main, textord, "|", `\textbar`, true)
	def(math, main, textord, "∥", `\|`, false)
	def(math, main, textord, "∥", `\Vert`, false)
	def(text, main, textord, "∥", `\textbardbl`, false)
	def(text, main, textord, "~", `\textasciitilde`, false)
	def(text, main, textord, `\`, `\textbackslash`, false)
	def(text, main, textord, "^", `\textasciicircum`, false)
	def(math, main, rel, "↑", `\uparrow`, true)
	def(math, main, rel, "⇑", `\Uparrow`, true)
	def(math, main, rel, "↓", `\downarrow`, true)
	def(math, main, rel, "⇓", `\Downarrow`, true)
	def(math, main, rel, "↕", `\updownarrow`, true)
	def(math, main, rel, "⇕", `\Updownarrow`, true)

	// big operators
	def(math, main, op, "∐", `\coprod`, false)
	def(math, main, op, "⋁", `\bigvee`, false)
	def(math, main, op, "⋀", `\bigwedge`, false)
	def(math, main, op, "⨄", `\biguplus`, false)
	def(math, main, op, "⋂", `\bigcap`, false)
	def(math, main, op, "⋃", `\bigcup`, false)
	def(math, main, op, "∫", `\int`, false)
	def(math, main, op, "∫", `\intop`, false)
	def(math, main, op, "∬", `\iint`, false)
	def(math, main, op, "∭", `\iiint`, false)
	def(math, main, op, "∏", `\prod`, false)
	def(math, main, op, "∑", `\sum`, false)
	def(math, main, op, "⨂", `\bigotimes`, false)
	def(math, main, op, "⨁", `\bigoplus`, false)
	def(math, main, op, "⨀", `\bigodot`, false)
	def(math, main, op, "∮", `\oint`, false)
	def(math, main, op, "∯", `\oiint`, false)
	def(math, main, op, "∰", `\oiiint`, false)
	def(math, main, op, "⨆", `\bigsqcup`, false)
	def(math, main, op, "∫", `\smallint`, false)

	// dots
	def(text, main, inner, "…", `\textellipsis`, false)
	def(math, main, inner, "…", `\mathellipsis`, false)
	def(text, main, inner, "…", `\ldots`, true)
	def(math, main, inner, "…", `\ldots`, true)
	def(math, main, inner, "⋯", `\@cdots`, true)
	def(math, main, inner, "⋱", `\ddots`, true)
	def(math, main, textord, "⋮", `\varvdots`, false)
	def(text, main, textord, "⋮", `\varvdots`, false)

	// accents
	def(math, main, accent, "ˊ", `\acute`, false)
	def(math, main, accent, "ˋ", `\grave`, false)
	def(math, main, accent, "¨", `\ddot`, false)
	def(math, main, accent, "~", `\tilde`, false)
	def(math, main, accent, "ˉ", `\bar`, false)
	def(math, main, accent, "˘", `\breve`, false)
	def(math, main, accent, "ˇ", `\check`, false)
	def(math, main, accent, "^", `\hat`, false)
	def(math, main, accent, "⃗", `\vec`, false)
	def(math, main, accent, "˙", `\dot`, false)
	def(math, main, accent, "˚", `\mathring`, false)
	def(math, main, mathord, "", `\@imath`, false)
	def(math, main, mathord, "", `\@jmath`, false)
	def(math, main, textord, "ı", "ı", false)
	def(math, main, textord, "ȷ", "ȷ", false)
	def(text, main, textord, "ı", `\i`, true)
	def(text, main, textord, "ȷ", `\j`, true)
	def(text, main, textord, "ß", `\ss`, true)
	def(text, main, textord, "æ", `\ae`, true)
	def(text, main, textord, "œ", `\oe`, true)
	def(text, main, textord, "ø", `\o`, true)
	def(text, main, textord, "Æ", `\AE`, true)
	def(text, main, textord, "Œ", `\OE`, true)
	def(text, main, textord, "Ø", `\O`, true)
	def(text, main, accent, "ˊ", `\'`, false)
	def(text, main, accent, "ˋ", "\\`", false)
	def(text, main, accent, "ˆ", `\^`, false)
	def(text, main, accent, "˜", `\~`, false)
	def(text, main, accent, "ˉ", `\=`, false)
	def(text, main, accent, "˘", `\u`, false)
	def(text, main, accent, "˙", `\.`, false)
	def(text, main, accent, "¸", `\c`, false)
	def(text, main, accent, "˚", `\r`, false)
	def(text, main, accent, "ˇ", `\v`, false)
	def(text, main, accent, "¨", `\"`, false)
	def(text, main, accent, "˝", `\H`, false)
	def(text, main, accent, "◯", `\textcircled`, false)

	// ligatures and quotes
	def(text, main, textord, "–", "--", true)
	def(text, main, textord, "–", `\textendash`, false)
	def(text, main, textord, "\u2014", "---", true)
	def(text, main, textord, "\u2014", `\textemdash`, false)
	def(text, main, textord, "‘", "`", true)
	def(text, main, textord, "‘", `\textquoteleft`, false)
	def(text, main, textord, "’", "'", true)
	def(text, main, textord, "’", `\textquoteright`, false)
	def(text, main, textord, "“", "``", true)
	def(text, main, textord, "“", `\textquotedblleft`, false)
	def(text, main, textord, "”", "''", true)
	def(text, main, textord, "”", `\textquotedblright`, false)
	def(math, main, textord, "°", `\degree`, true)
	def(text, main, textord, "°", `\degree`, false)
	def(text, main, textord, "°", `\textdegree`, true)
	def(math, main, textord, "£", `\pounds`, false)
	def(math, main, textord, "£", `\mathsterling`, true)
	def(text, main, textord, "£", `\pounds`, false)
	def(text, main, textord, "£", `\textsterling`, true)
	def(math, ams, textord, "✠", `\maltese`, false)
	def(text, ams, textord, "✠", `\maltese`, false)

	for _, ch := range "0123456789/@.\"" {
		def(math, main, textord, string(ch), string(ch), false)
	}
	for _, ch := range "0123456789!@*()-=+\";:?/.," {
		def(text, main, textord, string(ch), string(ch), false)
	}
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	for _, ch := range letters {
		def(math, main, mathord, string(ch), string(ch), false)
		def(text, main, textord, string(ch), string(ch), false)
	}

	// blackboard bold capitals and Planck's h from the letterlike block
	for name, ch := range map[string]string{
		"ℂ": "C", "ℍ": "H", "ℕ": "N", "ℙ": "P",
		"ℚ": "Q", "ℝ": "R", "ℤ": "Z",
	} {
		def(math, ams, textord, ch, name, false)
		def(text, ams, textord, ch, name, false)
	}
	def(math, main, mathord, "h", "ℎ", false)
	def(text, main, mathord, "h", "ℎ", false)

	// Mathematical Alphanumeric Symbols map back to their ASCII letter;
	// the font is chosen from the code point at build time.
	for i, ch := range letters {
		c := string(ch)
		for _, start := range []rune{
			0x1d400, // bold
			0x1d434, // italic
			0x1d468, // bold italic
			0x1d504, // fraktur
			0x1d56c, // bold fraktur
			0x1d5a0, // sans-serif
			0x1d5d4, // sans-serif bold
			0x1d608, // sans-serif italic
			0x1d670, // monospace
		} {
			def(math, main, mathord, c, string(start+rune(i)), false)
			def(text, main, textord, c, string(start+rune(i)), false)
		}
		if i < 26 {
			def(math, main, mathord, c, string(rune(0x1d538+i)), false) // double-struck
			def(text, main, textord, c, string(rune(0x1d538+i)), false)
			def(math, main, mathord, c, string(rune(0x1d49c+i)), false) // script
			def(text, main, textord, c, string(rune(0x1d49c+i)), false)
		}
	}
	def(math, main, mathord, "k", "\U0001d55c", false)
	def(text, main, textord, "k", "\U0001d55c", false)
	for i := 0; i < 10; i++ {
		c := string(rune('0' + i))
		for _, start := range []rune{0x1d7ce, 0x1d7e2, 0x1d7ec, 0x1d7f6} {
			def(math, main, mathord, c, string(start+rune(i)), false)
			def(text, main, textord, c, string(start+rune(i)), false)
		}
	}

	for _, ch := range ExtraLatin {
		def(math, main, mathord, string(ch), string(ch), false)
		def(text, main, textord, string(ch), string(ch), false)
	}

	return t
}

// ExtraLatin lists Latin-1 letters that have glyphs in the main font but
// are not reachable through accents.
const ExtraLatin = "ÐÞþ"
