package build

import (
	"fmt"
	"math"
	"strings"
)

// svgWidth is the view box width of stretchy SVG images. Spans clip the
// image to the width of the content.
const svgWidth = 400000

type point struct{ x, y float64 }

// outline is a closed polygon in view box coordinates.
type outline []point

func (o outline) path() string {
	var sb strings.Builder
	for i, p := range o {
		if i == 0 {
			sb.WriteByte('M')
		} else {
			sb.WriteByte('L')
		}
		sb.WriteString(ftoa(p.x))
		sb.WriteByte(' ')
		sb.WriteString(ftoa(p.y))
	}
	sb.WriteByte('Z')
	return sb.String()
}

// mirror flips the outline horizontally within a view box of width w.
func (o outline) mirror(w float64) outline {
	out := make(outline, len(o))
	for i, p := range o {
		out[i] = point{w - p.x, p.y}
	}
	return out
}

// flip flips the outline vertically within a view box of height h.
func (o outline) flip(h float64) outline {
	out := make(outline, len(o))
	for i, p := range o {
		out[i] = point{p.x, h - p.y}
	}
	return out
}

func joinPaths(outlines ...outline) string {
	parts := make([]string, len(outlines))
	for i, o := range outlines {
		parts[i] = o.path()
	}
	return strings.Join(parts, "")
}

// bar is a horizontal stroke from x0 to x1 centered on cy.
func bar(x0, x1, cy, thickness float64) outline {
	h := thickness / 2
	return outline{{x0, cy - h}, {x1, cy - h}, {x1, cy + h}, {x0, cy + h}}
}

// vbar is a vertical stroke from y0 to y1 centered on cx.
func vbar(cx, y0, y1, thickness float64) outline {
	h := thickness / 2
	return outline{{cx - h, y0}, {cx + h, y0}, {cx + h, y1}, {cx - h, y1}}
}

// rightHead is an arrow head with its tip at (svgWidth, cy).
func rightHead(cy, length, half float64) outline {
	tip := float64(svgWidth)
	return outline{{tip, cy}, {tip - length, cy - half}, {tip - 0.7*length, cy}, {tip - length, cy + half}}
}

// rightBarb is the upper half of an arrow head, used by harpoons.
func rightBarb(cy, length, half float64) outline {
	tip := float64(svgWidth)
	return outline{{tip, cy + 20}, {tip - length, cy - half}, {tip - length, cy + 20}}
}

func rightArrow(cy float64) []outline {
	return []outline{bar(0, svgWidth-100, cy, 40), rightHead(cy, 400, 200)}
}

func rightHarpoon(cy float64) []outline {
	return []outline{bar(0, svgWidth-100, cy, 40), rightBarb(cy, 400, 200)}
}

func rightHarpoonDown(cy float64) []outline {
	return []outline{bar(0, svgWidth-100, cy, 40), rightBarb(cy, 400, 200).flip(2 * cy)}
}

func mirrorAll(outlines []outline) []outline {
	out := make([]outline, len(outlines))
	for i, o := range outlines {
		out[i] = o.mirror(svgWidth)
	}
	return out
}

func flipAll(outlines []outline, h float64) []outline {
	out := make([]outline, len(outlines))
	for i, o := range outlines {
		out[i] = o.flip(h)
	}
	return out
}

// curve approximates a quarter ellipse from (x0, y0) to (x1, y1) as a
// stroked polyline of the given thickness.
func curve(x0, y0, x1, y1, thickness float64, steps int) outline {
	var inner, outer outline
	for i := 0; i <= steps; i++ {
		// The curve leaves (x0, y0) vertically and reaches (x1, y1)
		// horizontally.
		s, c := math.Sincos(float64(i) / float64(steps) * math.Pi / 2)
		x := x0 + (x1-x0)*(1-c)
		y := y0 + (y1-y0)*s
		inner = append(inner, point{x, y - thickness/2})
		outer = append(outer, point{x, y + thickness/2})
	}
	for i := len(outer) - 1; i >= 0; i-- {
		inner = append(inner, outer[i])
	}
	return inner
}

func brace(h float64) (left, mid, right []outline) {
	cy := h * 0.3
	left = []outline{curve(0, h, 250, cy, 80, 8), bar(250, svgWidth, cy, 80)}
	right = mirrorAll(left)
	cusp := curve(svgWidth/2, 0, svgWidth/2-250, cy, 80, 8)
	mid = []outline{
		bar(0, svgWidth/2-250, cy, 80),
		cusp,
		cusp.mirror(svgWidth),
		bar(svgWidth/2+250, svgWidth, cy, 80),
	}
	return left, mid, right
}

func group(h float64) (left, right []outline) {
	cy := 40.0
	left = []outline{curve(0, h, 300, cy, 80, 8), bar(300, svgWidth, cy, 80)}
	return left, mirrorAll(left)
}

// wideHat is a caret spanning a view box of w by h.
func wideHat(w, h float64) outline {
	t := h * 0.12
	return outline{{0, h}, {w / 2, 0}, {w, h}, {w - t, h}, {w / 2, 2 * t}, {t, h}}
}

// tildePath is a wave spanning a view box of w by h.
func tildePath(w, h float64) string {
	t := h * 0.15
	return fmt.Sprintf("M0 %s C%s %s %s %s %s %s C%s %s %s %s %s %s L%s %s C%s %s %s %s %s %s C%s %s %s %s %s %sZ",
		ftoa(h*0.8),
		ftoa(w*0.15), ftoa(h*0.1), ftoa(w*0.3), ftoa(h*0.1), ftoa(w*0.5), ftoa(h*0.45),
		ftoa(w*0.7), ftoa(h*0.8), ftoa(w*0.85), ftoa(h*0.8), ftoa(w), ftoa(h*0.1),
		ftoa(w), ftoa(h*0.1+t),
		ftoa(w*0.85), ftoa(h*0.8+t), ftoa(w*0.7), ftoa(h*0.8+t), ftoa(w*0.5), ftoa(h*0.45+t),
		ftoa(w*0.3), ftoa(h*0.1+t), ftoa(w*0.15), ftoa(h*0.1+t), "0", ftoa(h*0.8+t))
}

// ring is an elliptical ring centered in a view box of w by h.
func ring(w, h, thickness float64) string {
	rx, ry := w/2-thickness, h/2-thickness
	irx, iry := rx-thickness, ry-thickness
	cx, cy := w/2, h/2
	return fmt.Sprintf("M%s %sA%s %s 0 1 0 %s %sA%s %s 0 1 0 %s %sZM%s %sA%s %s 0 1 1 %s %sA%s %s 0 1 1 %s %sZ",
		ftoa(cx-rx), ftoa(cy), ftoa(rx), ftoa(ry), ftoa(cx+rx), ftoa(cy), ftoa(rx), ftoa(ry), ftoa(cx-rx), ftoa(cy),
		ftoa(cx-irx), ftoa(cy), ftoa(irx), ftoa(iry), ftoa(cx+irx), ftoa(cy), ftoa(irx), ftoa(iry), ftoa(cx-irx), ftoa(cy))
}

// PathData holds the SVG path of every named stretchy glyph piece.
var PathData = map[string]string{}

func init() {
	add := func(name string, outlines ...outline) { PathData[name] = joinPaths(outlines...) }

	// 522 units tall: single arrows and harpoons.
	add("rightarrow", rightArrow(261)...)
	add("leftarrow", mirrorAll(rightArrow(261))...)
	add("rightharpoon", rightHarpoon(261)...)
	add("leftharpoon", mirrorAll(rightHarpoon(261))...)
	add("rightharpoondown", rightHarpoonDown(261)...)
	add("leftharpoondown", mirrorAll(rightHarpoonDown(261))...)
	hook := []outline{bar(0, svgWidth-150, 261, 40), curve(svgWidth-20, 101, svgWidth-150, 261, 40, 6)}
	add("righthook", hook...)
	add("lefthook", mirrorAll(hook)...)
	add("leftlinesegment", bar(0, svgWidth, 261, 40), vbar(20, 81, 441, 40))
	add("rightlinesegment", bar(0, svgWidth, 261, 40), vbar(svgWidth-20, 81, 441, 40))
	add("leftmapsto", bar(0, svgWidth, 261, 40), vbar(20, 61, 461, 40))

	// 560 units tall: double arrows.
	double := []outline{bar(0, svgWidth-300, 175, 40), bar(0, svgWidth-300, 385, 40), rightHead(280, 500, 280)}
	add("doublerightarrow", double...)
	add("doubleleftarrow", mirrorAll(double)...)

	// 334 units tall.
	add("longequal", bar(0, svgWidth, 67, 40), bar(0, svgWidth, 267, 40))
	twohead := []outline{bar(0, svgWidth-100, 167, 40), rightHead(167, 300, 150), rightHead(167, 300, 150).mirror(2*svgWidth - 300)}
	add("twoheadrightarrow", twohead...)
	add("twoheadleftarrow", mirrorAll(twohead)...)

	// 528 units tall: \xtofrom.
	add("leftToFrom", append(mirrorAll(rightArrow(384)), bar(0, svgWidth, 144, 40))...)
	add("rightToFrom", append(rightArrow(144), bar(0, svgWidth, 384, 40))...)

	// 901 units tall: \xrightleftarrows.
	add("baraboveleftarrow", append(mirrorAll(rightArrow(640)), bar(0, svgWidth, 260, 40))...)
	add("rightarrowabovebar", append(rightArrow(260), bar(0, svgWidth, 640, 40))...)

	// 716 units tall: harpoon pairs.
	add("leftharpoonplus", append(mirrorAll(rightHarpoon(238)), bar(0, svgWidth, 478, 40))...)
	add("leftharpoondownplus", mirrorAll(rightHarpoonDown(478))...)
	add("rightharpoonplus", rightHarpoon(238)...)
	add("rightharpoondownplus", append(rightHarpoonDown(478), bar(0, svgWidth, 238, 40))...)
	add("baraboveshortleftharpoon", append(mirrorAll(rightHarpoonDown(478)), bar(0, svgWidth, 238, 40))...)
	add("rightharpoonaboveshortbar", append(rightHarpoon(238), bar(0, svgWidth, 478, 40))...)
	add("shortbaraboveleftharpoon", append(mirrorAll(rightHarpoonDown(478)), bar(0, svgWidth, 238, 40))...)
	add("shortrightharpoonabovebar", append(rightHarpoon(238), bar(0, svgWidth, 478, 40))...)

	// 548 units tall: braces.
	left, mid, right := brace(548)
	add("leftbrace", left...)
	add("midbrace", mid...)
	add("rightbrace", right...)
	add("leftbraceunder", flipAll(left, 548)...)
	add("midbraceunder", flipAll(mid, 548)...)
	add("rightbraceunder", flipAll(right, 548)...)

	// 342 units tall: \overgroup and \undergroup.
	gl, gr := group(342)
	add("leftgroup", gl...)
	add("rightgroup", gr...)
	add("leftgroupunder", flipAll(gl, 342)...)
	add("rightgroupunder", flipAll(gr, 342)...)

	for i := 1; i <= 4; i++ {
		hat := wideHat(float64(wideHatViewBox[i].width), float64(wideHatViewBox[i].height))
		add(fmt.Sprintf("widehat%d", i), hat)
		add(fmt.Sprintf("widecheck%d", i), hat.flip(float64(wideHatViewBox[i].height)))
		PathData[fmt.Sprintf("tilde%d", i)] = tildePath(float64(tildeViewBox[i].width), float64(tildeViewBox[i].height))
	}

	add("vec", bar(0, 400, 480, 40), outline{{471, 480}, {291, 360}, {345, 480}, {291, 600}})
	PathData["oiintSize1"] = ring(957, 499, 40)
	PathData["oiintSize2"] = ring(1472, 659, 50)
	PathData["oiiintSize1"] = ring(1304, 499, 40)
	PathData["oiiintSize2"] = ring(1980, 659, 50)
}

// sqrtPath returns the path of a radical sign. extraVinculum thickens the
// vinculum, in view box units.
func sqrtPath(name string, extraVinculum float64, viewBoxHeight int) string {
	ev := ftoa(extraVinculum)
	top := ftoa(40 + extraVinculum)
	switch name {
	case "sqrtMain":
		return fmt.Sprintf("M95,%s c-2.7,0,-7.17,-2.7,-13.5,-8c-5.8,-5.3,-9.5,-10,-9.5,-14"+
			"c0,-2,0.3,-3.3,1,-4c1.3,-2.7,23.83,-20.7,67.5,-54"+
			"c44.2,-33.3,65.8,-50.3,66.5,-51c1.3,-1.3,3,-2,5,-2c4.7,0,8.7,3.3,12,10"+
			"s173,378,173,378c0.7,0,35.3,-71,104,-213c68.7,-142,137.5,-285,206.5,-429"+
			"c69,-144,104.5,-217.7,106.5,-221l%s -%s c5.3,-9.3,12,-14,20,-14"+
			"H400000v%sH845.2724s-225.272,467,-225.272,467s-235,486,-235,486c-2.7,4.7,-9,7,-19,7"+
			"c-6,0,-10,-1,-12,-3s-194,-422,-194,-422s-65,47,-65,47zM%s %dh400000v%sh-400000z",
			ftoa(622+extraVinculum+vbPad), ftoa(extraVinculum/2.075), ev, top, ftoa(834+extraVinculum), vbPad, top)
	case "sqrtSize1":
		return fmt.Sprintf("M263,%s c0.7,0,18,39.7,52,119c34,79.3,68.167,158.7,102.5,238"+
			"c34.3,79.3,51.8,119.3,52.5,120c340,-704.7,510.7,-1060.3,512,-1067"+
			"l%s -%s c4.7,-7.3,11,-11,19,-11H40000v%sH1012.3"+
			"s-271.3,567,-271.3,567c-38.7,80.7,-84,175,-136,283c-52,108,-89.167,185.3,-111.5,232"+
			"c-22.3,46.7,-33.8,70.3,-34.5,71c-4.7,4.7,-12.3,7,-23,7s-12,-1,-12,-1"+
			"s-109,-253,-109,-253c-72.7,-168,-109.3,-252,-110,-252c-10.7,8,-22,16.7,-34,26"+
			"c-22,17.3,-33.3,26,-34,26s-26,-26,-26,-26s76,-59,76,-59s76,-60,76,-60z"+
			"M%s %dh400000v%sh-400000z",
			ftoa(601+extraVinculum+vbPad), ftoa(extraVinculum/2.084), ev, top, ftoa(1001+extraVinculum), vbPad, top)
	}
	// The larger radicals share one shape with a vertical stem that grows
	// with the view box.
	stem := float64(viewBoxHeight) - 54 - vbPad - extraVinculum
	return fmt.Sprintf("M702 %sH400000v%sH742v%sl-4 4-4 4c-.667.7-2 1.5-4 2.5s-4.167 1.833-6.5 2.5-5.5 1-9.5 1"+
		"h-12l-28-84c-16.667-52-96.667-294.333-240-727l-212-643-85 170"+
		"c-4-3.333-8.333-7.667-13-13l-13-13l77-155 77-156c66 199.333 139 419.667"+
		"219 661 l218 661zM702 %dH400000v%sH742z",
		ftoa(extraVinculum+vbPad), top, ftoa(stem), vbPad, top)
}
