package build

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyle_Transitions(t *testing.T) {
	cramped := func(s *Style) *Style { return s.Cramp() }

	tests := []struct {
		name    string
		style   *Style
		sup     *Style
		sub     *Style
		fracNum *Style
		fracDen *Style
		text    *Style
	}{
		{"display", Display, Script, cramped(Script), Text, cramped(Text), Display},
		{"display'", cramped(Display), cramped(Script), cramped(Script), cramped(Text), cramped(Text), cramped(Display)},
		{"text", Text, Script, cramped(Script), Script, cramped(Script), Text},
		{"script", Script, ScriptScript, cramped(ScriptScript), ScriptScript, cramped(ScriptScript), Text},
		{"script'", cramped(Script), cramped(ScriptScript), cramped(ScriptScript), cramped(ScriptScript), cramped(ScriptScript), cramped(Text)},
		{"scriptscript", ScriptScript, ScriptScript, cramped(ScriptScript), ScriptScript, cramped(ScriptScript), Text},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.style.String())
			require.Same(t, tt.sup, tt.style.Sup(), "sup")
			require.Same(t, tt.sub, tt.style.Sub(), "sub")
			require.Same(t, tt.fracNum, tt.style.FracNum(), "fracNum")
			require.Same(t, tt.fracDen, tt.style.FracDen(), "fracDen")
			require.Same(t, tt.text, tt.style.Text(), "text")
		})
	}
}

func TestStyle_Properties(t *testing.T) {
	for i, s := range styles {
		require.Equal(t, i, s.ID())
		require.Equal(t, i/2, s.Size())
		require.Equal(t, i%2 == 1, s.Cramped())
		require.True(t, s.Cramp().Cramped())
		require.Equal(t, s.Size(), s.Cramp().Size())
		require.Equal(t, s.Size() >= 2, s.IsTight())
	}

	require.Same(t, Display, StyleByName("display"))
	require.Same(t, ScriptScript, StyleByName("scriptscript"))
	require.Same(t, Text, StyleByName("auto"))
}
