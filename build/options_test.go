package build

import (
	"testing"

	"github.com/dpotapov/go-katex/parse"
	"github.com/stretchr/testify/require"
)

func newTestOptions(t *testing.T, opts ...parse.Option) *Options {
	t.Helper()
	settings, err := parse.NewSettings(opts...)
	require.NoError(t, err)
	return NewOptions(settings)
}

func TestOptions_Having(t *testing.T) {
	o := newTestOptions(t)
	require.Same(t, Text, o.Style)
	require.Equal(t, BaseSize, o.Size)
	require.Equal(t, 1.0, o.SizeMultiplier)

	require.Same(t, o, o.HavingStyle(Text))
	require.Same(t, o, o.HavingSize(BaseSize))

	script := o.HavingStyle(Script)
	require.NotSame(t, o, script)
	require.Equal(t, 3, script.Size)
	require.Equal(t, 0.7, script.SizeMultiplier)
	require.Equal(t, BaseSize, script.TextSize)
	require.Same(t, Text, o.Style, "receiver is unchanged")

	scriptScript := o.HavingStyle(ScriptScript)
	require.Equal(t, 1, scriptScript.Size)
	require.Equal(t, 0.5, scriptScript.SizeMultiplier)

	large := o.HavingSize(7)
	require.Equal(t, 1.2, large.SizeMultiplier)
	require.Equal(t, []string{"sizing", "reset-size6", "size7"}, large.SizingClasses(o))
	require.Nil(t, o.SizingClasses(o))
	require.Equal(t, []string{"sizing", "reset-size7", "size6"}, large.BaseSizingClasses())

	// \large inside a superscript shrinks relative to the new text size.
	largeScript := large.HavingStyle(Script)
	require.Equal(t, 4, largeScript.Size)

	base := script.HavingBaseStyle(nil)
	require.Same(t, Text, base.Style)
	require.Equal(t, BaseSize, base.Size)
	require.Same(t, o, o.HavingBaseStyle(Text))
}

func TestOptions_Color(t *testing.T) {
	o := newTestOptions(t).WithColor("#f00")
	require.Equal(t, "#f00", o.GetColor())
	require.Equal(t, "transparent", o.WithPhantom().GetColor())
	require.Equal(t, "#f00", o.GetColor())
}

func TestCalculateSize(t *testing.T) {
	text := newTestOptions(t)
	script := text.HavingStyle(Script)
	capped := newTestOptions(t, parse.WithMaxSize(2))

	tests := []struct {
		name    string
		m       parse.Measurement
		options *Options
		want    float64
		wantErr string
	}{
		{"em", parse.Measurement{Number: 1, Unit: "em"}, text, 1, ""},
		{"pt", parse.Measurement{Number: 10, Unit: "pt"}, text, 1, ""},
		{"mu", parse.Measurement{Number: 18, Unit: "mu"}, text, 1, ""},
		{"ex", parse.Measurement{Number: 1, Unit: "ex"}, text, 0.431, ""},
		{"pt in script", parse.Measurement{Number: 7, Unit: "pt"}, script, 1, ""},
		{"em in script", parse.Measurement{Number: 0.7, Unit: "em"}, script, 1, ""},
		{"capped", parse.Measurement{Number: 10, Unit: "em"}, capped, 2, ""},
		{"invalid unit", parse.Measurement{Number: 1, Unit: "furlong"}, text, 0, "Invalid unit: 'furlong'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSize(tt.m, tt.options)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-6)
		})
	}
}
