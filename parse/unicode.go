package parse

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// UnicodeAccent maps a combining mark to the equivalent accent commands.
type UnicodeAccent struct {
	Text string
	Math string
}

var unicodeAccents = map[rune]UnicodeAccent{
	'\u0301': {Text: `\'`, Math: `\acute`},
	'\u0300': {Text: "\\`", Math: `\grave`},
	'\u0308': {Text: `\"`, Math: `\ddot`},
	'\u0303': {Text: `\~`, Math: `\tilde`},
	'\u0304': {Text: `\=`, Math: `\bar`},
	'\u0306': {Text: `\u`, Math: `\breve`},
	'\u030c': {Text: `\v`, Math: `\check`},
	'\u0302': {Text: `\^`, Math: `\hat`},
	'\u0307': {Text: `\.`, Math: `\dot`},
	'\u030a': {Text: `\r`, Math: `\mathring`},
	'\u030b': {Text: `\H`},
	'\u0327': {Text: `\c`},
}

// command returns the accent command for mode, falling back to the text form.
func (a UnicodeAccent) command(mode Mode) string {
	if mode == MathMode && a.Math != "" {
		return a.Math
	}
	return a.Text
}

// unicodeSymbols maps precomposed accented letters to their decomposition
// into a base letter and combining marks that unicodeAccents knows.
var unicodeSymbols = buildUnicodeSymbols()

func buildUnicodeSymbols() map[rune]string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" +
		"ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩαβγδεζηθικλμνξοπρςστυφχψω" + "ıȷ"
	marks := make([]rune, 0, len(unicodeAccents))
	for m := range unicodeAccents {
		marks = append(marks, m)
	}
	out := make(map[rune]string)
	add := func(decomposed string) {
		composed := []rune(norm.NFC.String(decomposed))
		if len(composed) == 1 && string(composed) != decomposed {
			out[composed[0]] = decomposed
		}
	}
	for _, l := range letters {
		for _, a := range marks {
			add(string(l) + string(a))
			for _, b := range marks {
				if a != b {
					add(string(l) + string(a) + string(b))
				}
			}
		}
	}
	return out
}

// uSubsAndSups maps Unicode subscript and superscript characters to their
// plain equivalents.
var uSubsAndSups = map[string]string{
	"₊": "+", "₋": "-", "₌": "=", "₍": "(", "₎": ")",
	"₀": "0", "₁": "1", "₂": "2", "₃": "3", "₄": "4",
	"₅": "5", "₆": "6", "₇": "7", "₈": "8", "₉": "9",
	"ₐ": "a", "ₑ": "e", "ₕ": "h", "ᵢ": "i", "ⱼ": "j",
	"ₖ": "k", "ₗ": "l", "ₘ": "m", "ₙ": "n", "ₒ": "o",
	"ₚ": "p", "ᵣ": "r", "ₛ": "s", "ₜ": "t", "ᵤ": "u",
	"ᵥ": "v", "ₓ": "x", "ᵦ": "β", "ᵧ": "γ", "ᵨ": "ρ",
	"ᵩ": "ϕ", "ᵪ": "χ",
	"⁺": "+", "⁻": "-", "⁼": "=", "⁽": "(", "⁾": ")",
	"⁰": "0", "¹": "1", "²": "2", "³": "3", "⁴": "4",
	"⁵": "5", "⁶": "6", "⁷": "7", "⁸": "8", "⁹": "9",
	"ᴬ": "A", "ᴮ": "B", "ᴰ": "D", "ᴱ": "E", "ᴳ": "G",
	"ᴴ": "H", "ᴵ": "I", "ᴶ": "J", "ᴷ": "K", "ᴸ": "L",
	"ᴹ": "M", "ᴺ": "N", "ᴼ": "O", "ᴾ": "P", "ᴿ": "R",
	"ᵀ": "T", "ᵁ": "U", "ⱽ": "V", "ᵂ": "W",
	"ᵃ": "a", "ᵇ": "b", "ᶜ": "c", "ᵈ": "d", "ᵉ": "e",
	"ᶠ": "f", "ᵍ": "g", "ʰ": "h", "ⁱ": "i", "ʲ": "j",
	"ᵏ": "k", "ˡ": "l", "ᵐ": "m", "ⁿ": "n", "ᵒ": "o",
	"ᵖ": "p", "ʳ": "r", "ˢ": "s", "ᵗ": "t", "ᵘ": "u",
	"ᵛ": "v", "ʷ": "w", "ˣ": "x", "ʸ": "y", "ᶻ": "z",
	"ᵝ": "β", "ᵞ": "γ", "ᵟ": "δ", "ᵠ": "ϕ", "ᵡ": "χ",
	"ᶿ": "θ",
}

const unicodeSubscripts = "₊₋₌₍₎₀₁₂₃₄₅₆₇₈₉ₐₑₕᵢⱼₖₗₘₙₒₚᵣₛₜᵤᵥₓᵦᵧᵨᵩᵪ"

func isUnicodeSubscript(s string) bool {
	return s != "" && strings.Contains(unicodeSubscripts, s)
}

// scriptRanges lists the writing systems whose characters are rendered in
// text mode even without font metrics.
var scriptRanges = []struct {
	Name   string
	Blocks [][2]rune
}{
	{"latin", [][2]rune{{0x0100, 0x024f}, {0x0300, 0x036f}}},
	{"cyrillic", [][2]rune{{0x0400, 0x04ff}}},
	{"armenian", [][2]rune{{0x0530, 0x058f}}},
	{"brahmic", [][2]rune{{0x0900, 0x109f}}},
	{"georgian", [][2]rune{{0x10a0, 0x10ff}}},
	{"cjk", [][2]rune{{0x3000, 0x30ff}, {0x4e00, 0x9faf}, {0xff00, 0xff60}}},
	{"hangul", [][2]rune{{0xac00, 0xd7af}}},
}

// ScriptFromCodepoint returns the name of the script containing r, or "".
func ScriptFromCodepoint(r rune) string {
	for _, s := range scriptRanges {
		for _, b := range s.Blocks {
			if r >= b[0] && r <= b[1] {
				return s.Name
			}
		}
	}
	return ""
}

// SupportedCodepoint reports whether r belongs to a supported script.
func SupportedCodepoint(r rune) bool {
	return ScriptFromCodepoint(r) != ""
}
