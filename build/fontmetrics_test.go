package build

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/dpotapov/go-katex/parse"
	"github.com/stretchr/testify/require"
)

func TestFontMetrics_Tables(t *testing.T) {
	wantSizes := map[string]int{
		"Main-Regular":  287,
		"Math-Italic":   105,
		"AMS-Regular":   207,
		"Size1-Regular": 43,
		"Size2-Regular": 35,
		"Size3-Regular": 17,
		"Size4-Regular": 40,
	}
	require.Len(t, metricMap, len(wantSizes))
	for font, n := range wantSizes {
		require.Len(t, metricMap[font], n, font)
	}
}

func TestCharMetrics(t *testing.T) {
	tests := []struct {
		name   string
		char   string
		font   string
		mode   parse.Mode
		want   CharacterMetrics
		wantOK bool
	}{
		{"at sign", "@", "Main-Regular", parse.MathMode, CharacterMetrics{0, 0.69444, 0, 0, 0.77778}, true},
		{"upright letter", "A", "Main-Regular", parse.MathMode, CharacterMetrics{0, 0.68333, 0, 0, 0.75}, true},
		{"minus", "−", "Main-Regular", parse.MathMode, CharacterMetrics{0.08333, 0.58333, 0, 0, 0.77778}, true},
		{"infinity", "∞", "Main-Regular", parse.MathMode, CharacterMetrics{0, 0.43056, 0, 0, 1}, true},
		{"italic letter", "A", "Math-Italic", parse.MathMode, CharacterMetrics{0, 0.68333, 0, 0.13889, 0.75}, true},
		{"bold falls back to main", "A", "Main-Bold", parse.MathMode, CharacterMetrics{0, 0.68333, 0, 0, 0.75}, true},
		{"accented letter", "Å", "Main-Regular", parse.TextMode, CharacterMetrics{0, 0.68333, 0, 0, 0.75}, true},
		{"unknown", "☃", "Main-Regular", parse.MathMode, CharacterMetrics{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CharMetrics(tt.char, tt.font, tt.mode)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFontMetrics_NoMissingGlyphs(t *testing.T) {
	tests := []struct {
		expression string
		minHeight  float64
	}{
		{`\text{Hi}`, 0.68},
		{`\sin x`, 0.66},
		{`\infty`, 0.43},
		{`a\times b`, 0.69},
		{`a\leq b`, 0.69},
		{`x-1`, 0.64},
		{`\mathrm{d}x`, 0.69},
	}
	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			var logs bytes.Buffer
			settings, err := parse.NewSettings(parse.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
			require.NoError(t, err)
			tree, err := parse.ParseTree(tt.expression, settings)
			require.NoError(t, err)
			node, err := BuildHTMLTree(tree, settings)
			require.NoError(t, err)

			require.NotContains(t, logs.String(), "No character metrics")
			require.GreaterOrEqual(t, Dims(node).Height, tt.minHeight)
		})
	}
}
