package build

import (
	"math"
	"regexp"
	"strings"

	"github.com/dpotapov/go-katex/parse"
)

type arrayRow struct {
	cells         []Node
	height, depth float64
	// pos is the distance from the top of the array to the row baseline.
	pos float64
}

type hline struct {
	pos    float64
	dashed bool
}

func colSep(width float64) *Span {
	sep := makeSpan([]string{"arraycolsep"}, nil, nil, nil)
	sep.setStyle("width", em(width))
	return sep
}

func hasTags(tags []parse.ArrayTag) bool {
	for _, t := range tags {
		if t.Auto || t.Body != nil {
			return true
		}
	}
	return false
}

// htmlArray lays out an array environment as columns of vlists, with
// separators, horizontal lines and an optional column of equation tags.
func htmlArray(n *parse.Array, options *Options) (Node, error) {
	metrics := options.FontMetrics()
	ruleThickness := math.Max(metrics.ArrayRuleWidth, options.MinRuleThickness)
	pt := 1 / metrics.PtPerEm

	arraycolsep := 5 * pt
	if n.ColSeparationType == "small" {
		localMultiplier := options.HavingStyle(Script).SizeMultiplier
		arraycolsep = 0.2778 * (localMultiplier / options.SizeMultiplier)
	}
	baselineskip := 12 * pt
	if n.ColSeparationType == "CD" {
		baselineskip = calcSize(parse.Measurement{Number: 3, Unit: "ex"}, options)
	}
	jot := 3 * pt
	arrayskip := n.ArrayStretch * baselineskip
	arstrutHeight := 0.7 * arrayskip
	arstrutDepth := 0.3 * arrayskip

	var totalHeight float64
	var hlines []hline
	setHLinePos := func(gap []bool) {
		for i, dashed := range gap {
			if i > 0 {
				totalHeight += 0.25
			}
			hlines = append(hlines, hline{pos: totalHeight, dashed: dashed})
		}
	}
	if len(n.HLinesBeforeRow) > 0 {
		setHLinePos(n.HLinesBeforeRow[0])
	}

	nc := 0
	rows := make([]*arrayRow, len(n.Body))
	for r, inrow := range n.Body {
		row := &arrayRow{height: arstrutHeight, depth: arstrutDepth}
		nc = max(nc, len(inrow))
		for _, cell := range inrow {
			elt, err := buildGroup(cell, options, nil)
			if err != nil {
				return nil, err
			}
			row.depth = math.Max(row.depth, elt.box().Depth)
			row.height = math.Max(row.height, elt.box().Height)
			row.cells = append(row.cells, elt)
		}

		var gap float64
		if r < len(n.RowGaps) && n.RowGaps[r] != nil {
			g, err := CalculateSize(*n.RowGaps[r], options)
			if err != nil {
				return nil, err
			}
			if g > 0 {
				row.depth = math.Max(row.depth, g+arstrutDepth)
			} else {
				gap = g
			}
		}
		if n.AddJot {
			row.depth += jot
		}
		totalHeight += row.height
		row.pos = totalHeight
		totalHeight += row.depth + gap
		rows[r] = row
		if r+1 < len(n.HLinesBeforeRow) {
			setHLinePos(n.HLinesBeforeRow[r+1])
		}
	}

	offset := totalHeight/2 + metrics.AxisHeight

	var tagSpans []VListChild
	if hasTags(n.Tags) {
		for r, row := range rows {
			var tagSpan *Span
			var tag parse.ArrayTag
			if r < len(n.Tags) {
				tag = n.Tags[r]
			}
			switch {
			case tag.Auto:
				tagSpan = makeSpan([]string{"eqn-num"}, nil, options, nil)
			case tag.Body != nil:
				body, err := buildExpression(tag.Body, options, realGroup, [2]string{})
				if err != nil {
					return nil, err
				}
				tagSpan = makeSpan(nil, body, options, nil)
			default:
				tagSpan = makeSpan(nil, nil, options, nil)
			}
			tagSpan.Height = row.height
			tagSpan.Depth = row.depth
			tagSpans = append(tagSpans, VListChild{Elem: tagSpan, Shift: row.pos - offset})
		}
	}

	var cols []Node
	descr := n.Cols
	colAt := func(i int) parse.AlignSpec {
		if i < len(descr) {
			return descr[i]
		}
		return parse.AlignSpec{}
	}
	for c, d := 0, 0; c < nc || d < len(descr); c, d = c+1, d+1 {
		spec := colAt(d)
		firstSeparator := true
		for spec.Type == "separator" {
			if !firstSeparator {
				cols = append(cols, colSep(metrics.DoubleRuleSep))
			}
			var lineType string
			switch spec.Separator {
			case "|":
				lineType = "solid"
			case ":":
				lineType = "dashed"
			default:
				return nil, parse.Errorf(nil, "Invalid separator type: %s", spec.Separator)
			}
			separator := makeSpan([]string{"vertical-separator"}, nil, options, nil)
			separator.setStyle("height", em(totalHeight))
			separator.setStyle("border-right-width", em(ruleThickness))
			separator.setStyle("border-right-style", lineType)
			separator.setStyle("margin", "0 "+em(-ruleThickness/2))
			if shift := totalHeight - offset; shift != 0 {
				separator.setStyle("vertical-align", em(-shift))
			}
			cols = append(cols, separator)

			d++
			spec = colAt(d)
			firstSeparator = false
		}

		if c >= nc {
			continue
		}

		if c > 0 || n.HSkipBeforeAndAfter {
			width := arraycolsep
			if spec.PreGap != nil {
				width = *spec.PreGap
			}
			if width != 0 {
				cols = append(cols, colSep(width))
			}
		}

		var col []VListChild
		for _, row := range rows {
			if c >= len(row.cells) {
				continue
			}
			elem := row.cells[c]
			elem.box().Depth = row.depth
			elem.box().Height = row.height
			col = append(col, VListChild{Elem: elem, Shift: row.pos - offset})
		}
		align := spec.Align
		if align == "" {
			align = "c"
		}
		vlist := MakeVList(VListParams{PositionType: IndividualShift, Children: col})
		cols = append(cols, makeSpan([]string{"col-align-" + align}, []Node{vlist}, nil, nil))

		if c < nc-1 || n.HSkipBeforeAndAfter {
			width := arraycolsep
			if spec.PostGap != nil {
				width = *spec.PostGap
			}
			if width != 0 {
				cols = append(cols, colSep(width))
			}
		}
	}

	var body Node = makeSpan([]string{"mtable"}, cols, nil, nil)
	if len(hlines) > 0 {
		line := makeLineSpan("hline", options, ruleThickness)
		dashes := makeLineSpan("hdashline", options, ruleThickness)
		elems := []VListChild{{Elem: body}}
		for i := len(hlines) - 1; i >= 0; i-- {
			elem := line
			if hlines[i].dashed {
				elem = dashes
			}
			elems = append(elems, VListChild{Elem: elem, Shift: hlines[i].pos - offset})
		}
		body = MakeVList(VListParams{PositionType: IndividualShift, Children: elems})
	}

	if len(tagSpans) == 0 {
		return makeSpan([]string{"mord"}, []Node{body}, options, nil), nil
	}
	eqnNumCol := MakeVList(VListParams{PositionType: IndividualShift, Children: tagSpans})
	tagCol := makeSpan([]string{"tag"}, []Node{eqnNumCol}, options, nil)
	return makeFragment([]Node{body, tagCol}), nil
}

var (
	alignNames  = map[string]string{"c": "center", "l": "left", "r": "right"}
	ruleLineRe  = regexp.MustCompile(`[sd]`)
	columnGapFn = map[string]string{
		"alignat": "0em",
		"gather":  "0em",
		"small":   "0.2778em",
		"CD":      "0.5em",
	}
)

func mathmlArray(n *parse.Array, options *Options) (MathMLNode, error) {
	var rows []MathMLNode
	for i, inrow := range n.Body {
		var row []MathMLNode
		for _, cell := range inrow {
			built, err := buildMathMLGroup(cell, options)
			if err != nil {
				return nil, err
			}
			row = append(row, newMathNode("mtd", built))
		}
		if i < len(n.Tags) && (n.Tags[i].Auto || n.Tags[i].Body != nil) {
			glue := newMathNode("mtd")
			glue.Classes = []string{"mtr-glue"}
			tag := newMathNode("mtd")
			tag.Classes = []string{"mml-eqn-num"}
			if body := n.Tags[i].Body; body != nil {
				built, err := buildMathMLRow(body, options, false)
				if err != nil {
					return nil, err
				}
				tag.Children = []MathMLNode{built}
			}
			row = append([]MathMLNode{glue}, row...)
			row = append(row, glue)
			if n.Leqno {
				row = append([]MathMLNode{tag}, row...)
			} else {
				row = append(row, tag)
			}
		}
		rows = append(rows, newMathNode("mtr", row...))
	}
	table := newMathNode("mtable", rows...)

	gap := 0.1
	if n.ArrayStretch != 0.5 {
		gap = 0.16 + n.ArrayStretch - 1
		if n.AddJot {
			gap += 0.09
		}
	}
	table.SetAttribute("rowspacing", em(gap))

	var menclose []string
	if cols := n.Cols; len(cols) > 0 {
		start, end := 0, len(cols)
		if cols[0].Type == "separator" {
			menclose = append(menclose, "top")
			start = 1
		}
		if cols[len(cols)-1].Type == "separator" {
			menclose = append(menclose, "bottom")
			end--
		}
		var align, columnLines []string
		prevWasAlign := false
		for _, col := range cols[start:max(start, end)] {
			switch col.Type {
			case "align":
				align = append(align, alignNames[col.Align])
				if prevWasAlign {
					columnLines = append(columnLines, "none")
				}
				prevWasAlign = true
			case "separator":
				if prevWasAlign {
					if col.Separator == "|" {
						columnLines = append(columnLines, "solid")
					} else {
						columnLines = append(columnLines, "dashed")
					}
					prevWasAlign = false
				}
			}
		}
		table.SetAttribute("columnalign", strings.Join(align, " "))
		if lines := strings.Join(columnLines, " "); ruleLineRe.MatchString(lines) {
			table.SetAttribute("columnlines", lines)
		}
	}

	switch n.ColSeparationType {
	case "align":
		var spacing []string
		for i := 1; i < len(n.Cols); i++ {
			if i%2 == 1 {
				spacing = append(spacing, "0em")
			} else {
				spacing = append(spacing, "1em")
			}
		}
		table.SetAttribute("columnspacing", strings.Join(spacing, " "))
	default:
		spacing, ok := columnGapFn[n.ColSeparationType]
		if !ok {
			spacing = "1em"
		}
		table.SetAttribute("columnspacing", spacing)
	}

	if hl := n.HLinesBeforeRow; len(hl) > 0 {
		if len(hl[0]) > 0 {
			menclose = append(menclose, "left")
		}
		if len(hl[len(hl)-1]) > 0 {
			menclose = append(menclose, "right")
		}
		var rowLines []string
		for i := 1; i < len(hl)-1; i++ {
			switch {
			case len(hl[i]) == 0:
				rowLines = append(rowLines, "none")
			case hl[i][0]:
				rowLines = append(rowLines, "dashed")
			default:
				rowLines = append(rowLines, "solid")
			}
		}
		if lines := strings.Join(rowLines, " "); ruleLineRe.MatchString(lines) {
			table.SetAttribute("rowlines", lines)
		}
	}

	var result *MathNode = table
	if len(menclose) > 0 {
		result = newMathNode("menclose", result)
		result.SetAttribute("notation", strings.Join(menclose, " "))
	}
	if n.ArrayStretch != 0 && n.ArrayStretch < 1 {
		result = newMathNode("mstyle", result)
		result.SetAttribute("scriptlevel", "1")
	}
	return result, nil
}
