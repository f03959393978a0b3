package build

import (
	"strings"
	"unicode/utf8"

	"github.com/dpotapov/go-katex/parse"
)

// FontMetrics are the TeX font parameters (sigmas and xis) at one size.
type FontMetrics struct {
	Slant                float64
	Space                float64
	Stretch              float64
	Shrink               float64
	XHeight              float64
	Quad                 float64
	ExtraSpace           float64
	Num1                 float64
	Num2                 float64
	Num3                 float64
	Denom1               float64
	Denom2               float64
	Sup1                 float64
	Sup2                 float64
	Sup3                 float64
	Sub1                 float64
	Sub2                 float64
	SupDrop              float64
	SubDrop              float64
	Delim1               float64
	Delim2               float64
	AxisHeight           float64
	DefaultRuleThickness float64
	BigOpSpacing1        float64
	BigOpSpacing2        float64
	BigOpSpacing3        float64
	BigOpSpacing4        float64
	BigOpSpacing5        float64
	SqrtRuleThickness    float64
	PtPerEm              float64
	DoubleRuleSep        float64
	ArrayRuleWidth       float64
	FboxSep              float64
	FboxRule             float64
	// CssEmPerMu is Quad / 18.
	CssEmPerMu float64
}

// sigmas holds the text, script and scriptscript values of each parameter.
var sigmas = struct {
	slant, space, stretch, shrink, xHeight, quad, extraSpace      [3]float64
	num1, num2, num3, denom1, denom2                              [3]float64
	sup1, sup2, sup3, sub1, sub2, supDrop, subDrop                [3]float64
	delim1, delim2, axisHeight, defaultRuleThickness              [3]float64
	bigOpSpacing1, bigOpSpacing2, bigOpSpacing3, bigOpSpacing4    [3]float64
	bigOpSpacing5, sqrtRuleThickness, ptPerEm, doubleRuleSep      [3]float64
	arrayRuleWidth, fboxsep, fboxrule                             [3]float64
}{
	slant:                [3]float64{0.250, 0.250, 0.250},
	xHeight:              [3]float64{0.431, 0.431, 0.431},
	quad:                 [3]float64{1.000, 1.171, 1.472},
	num1:                 [3]float64{0.677, 0.732, 0.925},
	num2:                 [3]float64{0.394, 0.384, 0.387},
	num3:                 [3]float64{0.444, 0.471, 0.504},
	denom1:               [3]float64{0.686, 0.752, 1.025},
	denom2:               [3]float64{0.345, 0.344, 0.532},
	sup1:                 [3]float64{0.413, 0.503, 0.504},
	sup2:                 [3]float64{0.363, 0.431, 0.404},
	sup3:                 [3]float64{0.289, 0.286, 0.294},
	sub1:                 [3]float64{0.150, 0.143, 0.200},
	sub2:                 [3]float64{0.247, 0.286, 0.400},
	supDrop:              [3]float64{0.386, 0.353, 0.494},
	subDrop:              [3]float64{0.050, 0.071, 0.100},
	delim1:               [3]float64{2.390, 1.700, 1.980},
	delim2:               [3]float64{1.010, 1.157, 1.420},
	axisHeight:           [3]float64{0.250, 0.250, 0.250},
	defaultRuleThickness: [3]float64{0.04, 0.049, 0.049},
	bigOpSpacing1:        [3]float64{0.111, 0.111, 0.111},
	bigOpSpacing2:        [3]float64{0.166, 0.166, 0.166},
	bigOpSpacing3:        [3]float64{0.2, 0.2, 0.2},
	bigOpSpacing4:        [3]float64{0.6, 0.611, 0.611},
	bigOpSpacing5:        [3]float64{0.1, 0.143, 0.143},
	sqrtRuleThickness:    [3]float64{0.04, 0.04, 0.04},
	ptPerEm:              [3]float64{10.0, 10.0, 10.0},
	doubleRuleSep:        [3]float64{0.2, 0.2, 0.2},
	arrayRuleWidth:       [3]float64{0.04, 0.04, 0.04},
	fboxsep:              [3]float64{0.3, 0.3, 0.3},
	fboxrule:             [3]float64{0.04, 0.04, 0.04},
}

var globalMetrics [3]*FontMetrics

func init() {
	s := &sigmas
	for i := range globalMetrics {
		globalMetrics[i] = &FontMetrics{
			Slant:                s.slant[i],
			Space:                s.space[i],
			Stretch:              s.stretch[i],
			Shrink:               s.shrink[i],
			XHeight:              s.xHeight[i],
			Quad:                 s.quad[i],
			ExtraSpace:           s.extraSpace[i],
			Num1:                 s.num1[i],
			Num2:                 s.num2[i],
			Num3:                 s.num3[i],
			Denom1:               s.denom1[i],
			Denom2:               s.denom2[i],
			Sup1:                 s.sup1[i],
			Sup2:                 s.sup2[i],
			Sup3:                 s.sup3[i],
			Sub1:                 s.sub1[i],
			Sub2:                 s.sub2[i],
			SupDrop:              s.supDrop[i],
			SubDrop:              s.subDrop[i],
			Delim1:               s.delim1[i],
			Delim2:               s.delim2[i],
			AxisHeight:           s.axisHeight[i],
			DefaultRuleThickness: s.defaultRuleThickness[i],
			BigOpSpacing1:        s.bigOpSpacing1[i],
			BigOpSpacing2:        s.bigOpSpacing2[i],
			BigOpSpacing3:        s.bigOpSpacing3[i],
			BigOpSpacing4:        s.bigOpSpacing4[i],
			BigOpSpacing5:        s.bigOpSpacing5[i],
			SqrtRuleThickness:    s.sqrtRuleThickness[i],
			PtPerEm:              s.ptPerEm[i],
			DoubleRuleSep:        s.doubleRuleSep[i],
			ArrayRuleWidth:       s.arrayRuleWidth[i],
			FboxSep:              s.fboxsep[i],
			FboxRule:             s.fboxrule[i],
			CssEmPerMu:           s.quad[i] / 18,
		}
	}
}

// GlobalMetrics returns the font parameters for a size level.
func GlobalMetrics(size int) *FontMetrics {
	switch {
	case size >= 5:
		return globalMetrics[0]
	case size >= 3:
		return globalMetrics[1]
	}
	return globalMetrics[2]
}

// CharacterMetrics are the dimensions of one glyph, in ems.
type CharacterMetrics struct {
	Depth  float64
	Height float64
	Italic float64
	Skew   float64
	Width  float64
}

// extraCharacterMap maps characters without metrics of their own to a
// character whose metrics are close enough.
var extraCharacterMap = map[rune]rune{
	'Å': 'A', 'Ð': 'D', 'Þ': 'o', 'å': 'a', 'ð': 'd', 'þ': 'o',
	'Ç': 'C', 'ç': 'c', 'Ñ': 'N', 'ñ': 'n', 'Ø': 'O', 'ø': 'o',
	'ß': 'B', 'Æ': 'A', 'æ': 'a', 'Œ': 'O', 'œ': 'o',
	'А': 'A', 'Б': 'B', 'В': 'B', 'Г': 'F', 'Д': 'A', 'Е': 'E',
	'Ж': 'K', 'З': '3', 'И': 'N', 'Й': 'N', 'К': 'K', 'Л': 'N',
	'М': 'M', 'Н': 'H', 'О': 'O', 'П': 'N', 'Р': 'P', 'С': 'C',
	'Т': 'T', 'У': 'y', 'Ф': 'O', 'Х': 'X', 'Ц': 'U', 'Ч': 'h',
	'Ш': 'W', 'Щ': 'W', 'Ъ': 'B', 'Ы': 'X', 'Ь': 'B', 'Э': '3',
	'Ю': 'X', 'Я': 'R', 'а': 'a', 'б': 'b', 'в': 'a', 'г': 'r',
	'д': 'y', 'е': 'e', 'ж': 'm', 'з': 'e', 'и': 'n', 'й': 'n',
	'к': 'n', 'л': 'n', 'м': 'm', 'н': 'n', 'о': 'o', 'п': 'n',
	'р': 'p', 'с': 'c', 'т': 'o', 'у': 'y', 'ф': 'b', 'х': 'x',
	'ц': 'n', 'ч': 'n', 'ш': 'w', 'щ': 'w', 'ъ': 'a', 'ы': 'm',
	'ь': 'a', 'э': 'e', 'ю': 'm', 'я': 'r',
}

// fallbackFont picks the font whose metrics stand in for a font without a
// table of its own.
func fallbackFont(font string) string {
	if strings.HasSuffix(font, "Italic") || strings.HasPrefix(font, "Math-") {
		return "Math-Italic"
	}
	return "Main-Regular"
}

// SetFontMetrics replaces or adds the character metrics of a font. It must
// only be called during program initialization, before any render runs.
func SetFontMetrics(font string, metrics map[rune]CharacterMetrics) {
	metricMap[font] = metrics
}

// CharMetrics returns the metrics of the first character of s in font.
// Characters missing from the font use the Main or Math-Italic metrics of
// the same character. In text mode, characters of supported scripts without
// metrics borrow the metrics of "M".
func CharMetrics(s, font string, mode parse.Mode) (CharacterMetrics, bool) {
	r, _ := utf8.DecodeRuneInString(s)
	tables := []map[rune]CharacterMetrics{metricMap[font]}
	if fb := fallbackFont(font); fb != font {
		tables = append(tables, metricMap[fb])
	}
	for _, fm := range tables {
		if m, ok := fm[r]; ok {
			return m, true
		}
	}
	for _, fm := range tables {
		if alt, ok := extraCharacterMap[r]; ok {
			if m, ok := fm[alt]; ok {
				return m, true
			}
		}
	}
	if mode == parse.TextMode && parse.SupportedCodepoint(r) {
		m, ok := tables[len(tables)-1]['M']
		return m, ok
	}
	return CharacterMetrics{}, false
}
