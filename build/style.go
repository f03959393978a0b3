package build

// Style is one of the eight TeX math styles. The values are singletons:
// compare them with ==.
type Style struct {
	id      int
	size    int
	cramped bool
}

const (
	idD = iota
	idDc
	idT
	idTc
	idS
	idSc
	idSS
	idSSc
)

var styles = [8]*Style{
	{idD, 0, false},
	{idDc, 0, true},
	{idT, 1, false},
	{idTc, 1, true},
	{idS, 2, false},
	{idSc, 2, true},
	{idSS, 3, false},
	{idSSc, 3, true},
}

// Style transition tables, indexed by style id.
var (
	supTable     = [8]int{idS, idSc, idS, idSc, idSS, idSSc, idSS, idSSc}
	subTable     = [8]int{idSc, idSc, idSc, idSc, idSSc, idSSc, idSSc, idSSc}
	fracNumTable = [8]int{idT, idTc, idS, idSc, idSS, idSSc, idSS, idSSc}
	fracDenTable = [8]int{idTc, idTc, idSc, idSc, idSSc, idSSc, idSSc, idSSc}
	crampTable   = [8]int{idDc, idDc, idTc, idTc, idSc, idSc, idSSc, idSSc}
	textTable    = [8]int{idD, idDc, idT, idTc, idT, idTc, idT, idTc}
)

var (
	Display      = styles[idD]
	Text         = styles[idT]
	Script       = styles[idS]
	ScriptScript = styles[idSS]
)

// StyleByName returns the style for "display", "text", "script" or
// "scriptscript", and Text for anything else.
func StyleByName(name string) *Style {
	switch name {
	case "display":
		return Display
	case "script":
		return Script
	case "scriptscript":
		return ScriptScript
	}
	return Text
}

// ID returns the style index, 0 through 7.
func (s *Style) ID() int { return s.id }

// Size returns the size class: 0 display, 1 text, 2 script, 3 scriptscript.
func (s *Style) Size() int { return s.size }

// Cramped reports whether the style suppresses superscript raising.
func (s *Style) Cramped() bool { return s.cramped }

// Sup returns the style of a superscript.
func (s *Style) Sup() *Style { return styles[supTable[s.id]] }

// Sub returns the style of a subscript.
func (s *Style) Sub() *Style { return styles[subTable[s.id]] }

// FracNum returns the style of a fraction numerator.
func (s *Style) FracNum() *Style { return styles[fracNumTable[s.id]] }

// FracDen returns the style of a fraction denominator.
func (s *Style) FracDen() *Style { return styles[fracDenTable[s.id]] }

// Cramp returns the cramped version of the style.
func (s *Style) Cramp() *Style { return styles[crampTable[s.id]] }

// Text returns a text style, or display if the style is already display.
func (s *Style) Text() *Style { return styles[textTable[s.id]] }

// IsTight reports whether the style is script or scriptscript.
func (s *Style) IsTight() bool { return s.size >= 2 }

func (s *Style) String() string {
	names := [4]string{"display", "text", "script", "scriptscript"}
	if s.cramped {
		return names[s.size] + "'"
	}
	return names[s.size]
}
