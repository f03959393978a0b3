package build

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/dpotapov/go-katex/parse"
	"golang.org/x/net/html"
)

// Delimiters drawn with the Size1-4 fonts before switching to stacked
// pieces.
var stackLargeDelimiters = []string{
	"(", `\lparen`, ")", `\rparen`,
	"[", `\lbrack`, "]", `\rbrack`,
	`\{`, `\lbrace`, `\}`, `\rbrace`,
	`\lfloor`, `\rfloor`, "⌊", "⌋",
	`\lceil`, `\rceil`, "⌈", "⌉",
	`\surd`,
}

// Delimiters that are always stacked once they outgrow the small sizes.
var stackAlwaysDelimiters = []string{
	`\uparrow`, `\downarrow`, `\updownarrow`,
	`\Uparrow`, `\Downarrow`, `\Updownarrow`,
	"|", `\|`, `\vert`, `\Vert`,
	`\lvert`, `\rvert`, `\lVert`, `\rVert`,
	`\lgroup`, `\rgroup`, "⟮", "⟯",
	`\lmoustache`, `\rmoustache`, "⎰", "⎱",
}

// Delimiters that have no stacked form. They stop growing at Size4.
var stackNeverDelimiters = []string{
	"<", ">", `\langle`, `\rangle`, "/", `\backslash`, `\lt`, `\gt`,
}

// sizeToMaxHeight is the total height of the \big family, in ems.
var sizeToMaxHeight = [5]float64{0, 1.2, 1.8, 2.4, 3.0}

// lapInEms is the overlap between the pieces of a stacked delimiter.
const lapInEms = 0.008

type delimKind int

const (
	delimSmall delimKind = iota
	delimLarge
	delimStack
)

type delimType struct {
	kind  delimKind
	style *Style
	size  int
}

func (d delimType) font() string {
	switch d.kind {
	case delimSmall:
		return "Main-Regular"
	case delimLarge:
		return fmt.Sprintf("Size%d-Regular", d.size)
	}
	return "Size4-Regular"
}

var (
	smallDelims = []delimType{
		{kind: delimSmall, style: ScriptScript},
		{kind: delimSmall, style: Script},
		{kind: delimSmall, style: Text},
	}
	largeDelims = []delimType{
		{kind: delimLarge, size: 1},
		{kind: delimLarge, size: 2},
		{kind: delimLarge, size: 3},
		{kind: delimLarge, size: 4},
	}
	stackNeverSequence  = slices.Concat(smallDelims, largeDelims)
	stackAlwaysSequence = slices.Concat(smallDelims, []delimType{{kind: delimStack}})
	stackLargeSequence  = slices.Concat(smallDelims, largeDelims, []delimType{{kind: delimStack}})
)

func delimMetrics(symbol, font string, mode parse.Mode) (CharacterMetrics, error) {
	_, m, ok := lookupSymbol(symbol, font, mode)
	if !ok {
		return m, fmt.Errorf("unsupported symbol %s and font size %s", symbol, font)
	}
	return m, nil
}

// styleWrap puts a delimiter built at toStyle into a span sized for options.
func styleWrap(delim Node, toStyle *Style, options *Options, classes []string) *Span {
	newOptions := options.HavingBaseStyle(toStyle)
	span := makeSpan(append(slices.Clone(classes), newOptions.SizingClasses(options)...), []Node{delim}, options, nil)
	multiplier := newOptions.SizeMultiplier / options.SizeMultiplier
	span.Height *= multiplier
	span.Depth *= multiplier
	span.MaxFontSize = newOptions.SizeMultiplier
	return span
}

// centerSpan moves a delimiter so it is centered on the math axis.
func centerSpan(span *Span, options *Options, style *Style) {
	newOptions := options.HavingBaseStyle(style)
	shift := (1 - options.SizeMultiplier/newOptions.SizeMultiplier) * options.FontMetrics().AxisHeight
	span.Classes = append(span.Classes, "delimcenter")
	span.setStyle("top", em(shift))
	span.Height -= shift
	span.Depth += shift
}

func makeSmallDelim(delim string, style *Style, center bool, options *Options, mode parse.Mode, classes []string) *Span {
	text := makeSymbol(delim, "Main-Regular", mode, options, nil)
	span := styleWrap(text, style, options, classes)
	if center {
		centerSpan(span, options, style)
	}
	return span
}

func makeLargeDelim(delim string, size int, center bool, options *Options, mode parse.Mode, classes []string) *Span {
	inner := makeSymbol(delim, fmt.Sprintf("Size%d-Regular", size), mode, options, nil)
	sized := makeSpan([]string{"delimsizing", fmt.Sprintf("size%d", size)}, []Node{inner}, options, nil)
	span := styleWrap(sized, Text, options, classes)
	if center {
		centerSpan(span, options, Text)
	}
	return span
}

func makeGlyphSpan(symbol, font string, mode parse.Mode) VListChild {
	sizeClass := "delim-size4"
	if font == "Size1-Regular" {
		sizeClass = "delim-size1"
	}
	glyph := makeSpan(nil, []Node{makeSymbol(symbol, font, mode, nil, nil)}, nil, nil)
	return VListChild{Elem: makeSpan([]string{"delimsizinginner", sizeClass}, []Node{glyph}, nil, nil)}
}

// stackPieces returns the top, repeated, bottom and (for braces) middle
// glyphs of a stacked delimiter, and the font they come from.
func stackPieces(delim string) (top, repeat, bottom, middle, font string) {
	top, repeat, bottom = delim, delim, delim
	font = "Size1-Regular"
	switch delim {
	case `\uparrow`:
		repeat, bottom = "⏐", "⏐"
	case `\Uparrow`:
		repeat, bottom = "‖", "‖"
	case `\downarrow`:
		top, repeat = "⏐", "⏐"
	case `\Downarrow`:
		top, repeat = "‖", "‖"
	case `\updownarrow`:
		top, repeat, bottom = `\uparrow`, "⏐", `\downarrow`
	case `\Updownarrow`:
		top, repeat, bottom = `\Uparrow`, "‖", `\Downarrow`
	case "|", `\lvert`, `\rvert`, `\vert`:
		repeat = "∣"
	case `\|`, `\lVert`, `\rVert`, `\Vert`:
		repeat = "∥"
	case "[", `\lbrack`:
		top, repeat, bottom, font = "⎡", "⎢", "⎣", "Size4-Regular"
	case "]", `\rbrack`:
		top, repeat, bottom, font = "⎤", "⎥", "⎦", "Size4-Regular"
	case `\lfloor`, "⌊":
		top, repeat, bottom, font = "⎢", "⎢", "⎣", "Size4-Regular"
	case `\lceil`, "⌈":
		top, repeat, bottom, font = "⎡", "⎢", "⎢", "Size4-Regular"
	case `\rfloor`, "⌋":
		top, repeat, bottom, font = "⎥", "⎥", "⎦", "Size4-Regular"
	case `\rceil`, "⌉":
		top, repeat, bottom, font = "⎤", "⎥", "⎥", "Size4-Regular"
	case "(", `\lparen`:
		top, repeat, bottom, font = "⎛", "⎜", "⎝", "Size4-Regular"
	case ")", `\rparen`:
		top, repeat, bottom, font = "⎞", "⎟", "⎠", "Size4-Regular"
	case `\{`, `\lbrace`:
		top, middle, bottom, repeat, font = "⎧", "⎨", "⎩", "⎪", "Size4-Regular"
	case `\}`, `\rbrace`:
		top, middle, bottom, repeat, font = "⎫", "⎬", "⎭", "⎪", "Size4-Regular"
	case `\lgroup`, "⟮":
		top, bottom, repeat, font = "⎧", "⎩", "⎪", "Size4-Regular"
	case `\rgroup`, "⟯":
		top, bottom, repeat, font = "⎫", "⎭", "⎪", "Size4-Regular"
	case `\lmoustache`, "⎰":
		top, bottom, repeat, font = "⎧", "⎭", "⎪", "Size4-Regular"
	case `\rmoustache`, "⎱":
		top, bottom, repeat, font = "⎫", "⎩", "⎪", "Size4-Regular"
	}
	return top, repeat, bottom, middle, font
}

// makeStackedDelim builds a delimiter of at least heightTotal ems from a
// top piece, repeated middle pieces and a bottom piece. Adjacent pieces
// overlap by lapInEms.
func makeStackedDelim(delim string, heightTotal float64, center bool, options *Options, mode parse.Mode, classes []string) (*Span, error) {
	top, repeat, bottom, middle, font := stackPieces(delim)

	total := func(m CharacterMetrics) float64 { return m.Height + m.Depth }
	topMetrics, err := delimMetrics(top, font, mode)
	if err != nil {
		return nil, err
	}
	repeatMetrics, err := delimMetrics(repeat, font, mode)
	if err != nil {
		return nil, err
	}
	bottomMetrics, err := delimMetrics(bottom, font, mode)
	if err != nil {
		return nil, err
	}
	topHeight, repeatHeight, bottomHeight := total(topMetrics), total(repeatMetrics), total(bottomMetrics)
	middleHeight, middleFactor, pieces := 0.0, 1, 2
	if middle != "" {
		middleMetrics, err := delimMetrics(middle, font, mode)
		if err != nil {
			return nil, err
		}
		middleHeight, middleFactor, pieces = total(middleMetrics), 2, 3
	}

	minHeight := topHeight + bottomHeight + middleHeight
	stackHeight := func(repeats int) float64 {
		n := pieces + middleFactor*repeats
		return minHeight + float64(middleFactor*repeats)*repeatHeight - float64(n-1)*lapInEms
	}
	repeatCount := max(0, int(math.Ceil((heightTotal-minHeight)/(float64(middleFactor)*repeatHeight))))
	for stackHeight(repeatCount) < heightTotal {
		repeatCount++
	}
	realHeightTotal := stackHeight(repeatCount)

	axisHeight := options.FontMetrics().AxisHeight
	if center {
		axisHeight *= options.SizeMultiplier
	}
	depth := realHeightTotal/2 - axisHeight

	lap := kern(-lapInEms)
	stack := []VListChild{makeGlyphSpan(bottom, font, mode)}
	addRepeats := func() {
		for range repeatCount {
			stack = append(stack, lap, makeGlyphSpan(repeat, font, mode))
		}
	}
	addRepeats()
	if middle != "" {
		stack = append(stack, lap, makeGlyphSpan(middle, font, mode))
		addRepeats()
	}
	stack = append(stack, lap, makeGlyphSpan(top, font, mode))

	newOptions := options.HavingBaseStyle(Text)
	inner := MakeVList(VListParams{PositionType: Bottom, PositionData: depth, Children: stack})
	return styleWrap(makeSpan([]string{"delimsizing", "mult"}, []Node{inner}, newOptions, nil), Text, options, classes), nil
}

func normalizeAngle(delim string) string {
	switch delim {
	case "<", `\lt`, "⟨":
		return `\langle`
	case ">", `\gt`, "⟩":
		return `\rangle`
	}
	return delim
}

// makeSizedDelim builds a delimiter at one of the \big sizes 1-4.
func makeSizedDelim(delim string, size int, options *Options, mode parse.Mode, classes []string) (*Span, error) {
	delim = normalizeAngle(delim)
	switch {
	case slices.Contains(stackLargeDelimiters, delim) || slices.Contains(stackNeverDelimiters, delim):
		return makeLargeDelim(delim, size, false, options, mode, classes), nil
	case slices.Contains(stackAlwaysDelimiters, delim):
		return makeStackedDelim(delim, sizeToMaxHeight[size], false, options, mode, classes)
	}
	return nil, parse.Errorf(nil, "Illegal delimiter: '%s'", delim)
}

// traverseSequence returns the first delimiter type in sequence taller
// than height, or the last one.
func traverseSequence(delim string, height float64, sequence []delimType, options *Options) delimType {
	start := min(2, 3-options.Style.Size())
	for _, d := range sequence[start:] {
		if d.kind == delimStack {
			break
		}
		_, m, ok := lookupSymbol(delim, d.font(), parse.MathMode)
		if !ok {
			options.Logger().Warn("No character metrics",
				slog.String("char", delim), slog.String("font", d.font()), slog.String("mode", string(parse.MathMode)))
			continue
		}
		heightDepth := m.Height + m.Depth
		if d.kind == delimSmall {
			heightDepth *= options.HavingBaseStyle(d.style).SizeMultiplier
		}
		if heightDepth > height {
			return d
		}
	}
	return sequence[len(sequence)-1]
}

// makeCustomSizedDelim builds the smallest delimiter at least height ems
// tall.
func makeCustomSizedDelim(delim string, height float64, center bool, options *Options, mode parse.Mode, classes []string) (*Span, error) {
	delim = normalizeAngle(delim)
	var sequence []delimType
	switch {
	case slices.Contains(stackNeverDelimiters, delim):
		sequence = stackNeverSequence
	case slices.Contains(stackLargeDelimiters, delim):
		sequence = stackLargeSequence
	default:
		sequence = stackAlwaysSequence
	}
	d := traverseSequence(delim, height, sequence, options)
	switch d.kind {
	case delimSmall:
		return makeSmallDelim(delim, d.style, center, options, mode, classes), nil
	case delimLarge:
		return makeLargeDelim(delim, d.size, center, options, mode, classes), nil
	}
	return makeStackedDelim(delim, height, center, options, mode, classes)
}

// makeLeftRightDelim builds a \left or \right delimiter around content of
// the given height and depth, following TeX's \delimiterfactor and
// \delimitershortfall rules.
func makeLeftRightDelim(delim string, height, depth float64, options *Options, mode parse.Mode, classes []string) (*Span, error) {
	axisHeight := options.FontMetrics().AxisHeight * options.SizeMultiplier
	const delimiterFactor = 901
	delimiterExtend := 5.0 / options.FontMetrics().PtPerEm
	maxDistFromAxis := math.Max(height-axisHeight, depth+axisHeight)
	totalHeight := math.Max(maxDistFromAxis/500*delimiterFactor, 2*maxDistFromAxis-delimiterExtend)
	return makeCustomSizedDelim(delim, totalHeight, true, options, mode, classes)
}

const (
	// vbPad is the space above the vinculum in sqrt SVG view boxes.
	vbPad = 80
	// emPad is vbPad in ems.
	emPad = 0.08
)

func sqrtSvg(name string, height float64, viewBoxHeight int, extraVinculum float64) *Span {
	path := &PathNode{Name: name, Alternate: sqrtPath(name, 1000*extraVinculum, viewBoxHeight)}
	svg := &SvgNode{
		Children: []Node{path},
		Attributes: []html.Attribute{
			{Key: "width", Val: "400em"},
			{Key: "height", Val: em(height)},
			{Key: "viewBox", Val: fmt.Sprintf("0 0 400000 %d", viewBoxHeight)},
			{Key: "preserveAspectRatio", Val: "xMinYMin slice"},
		},
	}
	return makeSvgSpan([]string{"hide-tail"}, []Node{svg}, 0, 0)
}

// sqrtImage is a radical sign tall enough for content of the given height.
type sqrtImage struct {
	span         *Span
	advanceWidth float64
	ruleWidth    float64
}

func makeSqrtImage(height float64, options *Options) sqrtImage {
	newOptions := options.HavingBaseSizing()
	d := traverseSequence(`\surd`, height*newOptions.SizeMultiplier, stackLargeSequence, newOptions)
	sizeMultiplier := newOptions.SizeMultiplier
	extraVinculum := math.Max(0, options.MinRuleThickness-options.FontMetrics().SqrtRuleThickness)

	var span *Span
	var spanHeight, texHeight, advanceWidth float64
	switch d.kind {
	case delimSmall:
		viewBoxHeight := 1000 + int(1000*extraVinculum) + vbPad
		if height < 1.0 {
			sizeMultiplier = 1.0
		} else if height < 1.4 {
			sizeMultiplier = 0.7
		}
		spanHeight = (1.0 + extraVinculum + emPad) / sizeMultiplier
		texHeight = (1.0 + extraVinculum) / sizeMultiplier
		span = sqrtSvg("sqrtMain", spanHeight, viewBoxHeight, extraVinculum)
		span.setStyle("min-width", "0.853em")
		advanceWidth = 0.833 / sizeMultiplier
	case delimLarge:
		viewBoxHeight := int(float64(1000+vbPad) * sizeToMaxHeight[d.size])
		texHeight = (sizeToMaxHeight[d.size] + extraVinculum) / sizeMultiplier
		spanHeight = (sizeToMaxHeight[d.size] + extraVinculum + emPad) / sizeMultiplier
		span = sqrtSvg(fmt.Sprintf("sqrtSize%d", d.size), spanHeight, viewBoxHeight, extraVinculum)
		span.setStyle("min-width", "1.02em")
		advanceWidth = 1.0 / sizeMultiplier
	default:
		spanHeight = height + extraVinculum + emPad
		texHeight = height + extraVinculum
		viewBoxHeight := int(math.Floor(1000*height+extraVinculum)) + vbPad
		span = sqrtSvg("sqrtTall", spanHeight, viewBoxHeight, extraVinculum)
		span.setStyle("min-width", "0.742em")
		advanceWidth = 1.056
	}
	span.Height = texHeight
	span.setStyle("height", em(spanHeight))
	return sqrtImage{
		span:         span,
		advanceWidth: advanceWidth,
		ruleWidth:    (options.FontMetrics().SqrtRuleThickness + extraVinculum) * sizeMultiplier,
	}
}
