package build

import (
	"bytes"
	"fmt"
	"log/slog"
	"slices"
	"testing"

	"github.com/dpotapov/go-katex/parse"
	"github.com/stretchr/testify/require"
)

func TestMakeSizedDelim(t *testing.T) {
	options := newTestOptions(t)

	prev := 0.0
	for size := 1; size <= 4; size++ {
		span, err := makeSizedDelim("(", size, options, parse.MathMode, []string{"mopen"})
		require.NoError(t, err)
		require.True(t, HasClass(span, "mopen"))
		require.Len(t, span.Children, 1)
		inner := span.Children[0]
		require.True(t, HasClass(inner, "delimsizing"))
		require.True(t, HasClass(inner, fmt.Sprintf("size%d", size)))

		total := span.Height + span.Depth
		require.Greater(t, total, prev, "size%d", size)
		prev = total
	}

	span, err := makeSizedDelim(`\Vert`, 3, options, parse.MathMode, nil)
	require.NoError(t, err)
	require.True(t, HasClass(span.Children[0], "mult"))
	require.GreaterOrEqual(t, span.Height+span.Depth, sizeToMaxHeight[3])

	_, err = makeSizedDelim("x", 1, options, parse.MathMode, nil)
	require.ErrorContains(t, err, "Illegal delimiter: 'x'")
}

func TestMakeCustomSizedDelim(t *testing.T) {
	options := newTestOptions(t)

	tests := []struct {
		name      string
		delim     string
		height    float64
		wantClass string
		wantSmall bool
	}{
		{"small paren", "(", 0.5, "", true},
		{"large paren", "(", 2, "size3", false},
		{"stacked paren", "(", 5, "mult", false},
		{"stacked vert", "|", 5, "mult", false},
		{"angle stops at size4", "<", 5, "size4", false},
		{"langle", `\langle`, 10, "size4", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span, err := makeCustomSizedDelim(tt.delim, tt.height, false, options, parse.MathMode, nil)
			require.NoError(t, err)
			require.Len(t, span.Children, 1)
			if tt.wantSmall {
				require.IsType(t, &SymbolNode{}, span.Children[0])
				return
			}
			require.True(t, HasClass(span.Children[0], "delimsizing"))
			require.True(t, HasClass(span.Children[0], tt.wantClass), "classes %v", Dims(span.Children[0]).Classes)
			if tt.wantClass == "mult" {
				require.GreaterOrEqual(t, span.Height+span.Depth, tt.height)
			}
		})
	}
}

func TestMakeLeftRightDelim(t *testing.T) {
	options := newTestOptions(t)

	small, err := makeLeftRightDelim("(", 0.5, 0, options, parse.MathMode, []string{"mopen"})
	require.NoError(t, err)
	require.True(t, HasClass(small, "mopen"))
	require.True(t, HasClass(small, "delimcenter"))
	require.IsType(t, &SymbolNode{}, small.Children[0])

	tall, err := makeLeftRightDelim("(", 3, 3, options, parse.MathMode, []string{"mclose"})
	require.NoError(t, err)
	require.True(t, HasClass(tall.Children[0], "mult"))
	require.Greater(t, tall.Height+tall.Depth, 5.0)
}

func TestMakeCustomSizedDelim_Covers(t *testing.T) {
	heights := []float64{0.3, 0.5, 0.9, 1.2, 1.5, 1.8, 2.1, 2.4, 2.7, 2.9, 3.5, 5, 8, 12, 20}

	for _, style := range []*Style{Display, Text, Script, ScriptScript} {
		options := newTestOptions(t).HavingStyle(style)
		for delim := range parse.Delimiters {
			if delim == "." {
				continue
			}
			for _, height := range heights {
				if slices.Contains(stackNeverDelimiters, normalizeAngle(delim)) && height > sizeToMaxHeight[4] {
					continue
				}
				span, err := makeCustomSizedDelim(delim, height, false, options, parse.MathMode, nil)
				require.NoError(t, err, "%s at %gem", delim, height)
				require.GreaterOrEqual(t, span.Height+span.Depth+1e-9, height,
					"%s at %gem in %s", delim, height, style)
			}
		}
	}
}

func TestTraverseSequence_MissingMetrics(t *testing.T) {
	var logs bytes.Buffer
	options := newTestOptions(t, parse.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	d := traverseSequence("☃", 1, stackNeverSequence, options)
	require.Equal(t, stackNeverSequence[len(stackNeverSequence)-1], d)
	require.Contains(t, logs.String(), "No character metrics")
	require.Contains(t, logs.String(), "char=☃")
}
