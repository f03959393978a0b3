package parse

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSettings_Defaults(t *testing.T) {
	s, err := NewSettings()
	require.NoError(t, err)
	require.Equal(t, OutputHTMLAndMathML, s.Output)
	require.True(t, s.ThrowOnError)
	require.Equal(t, "#cc0000", s.ErrorColor)
	require.Equal(t, StrictWarn, s.Strict)
	require.Equal(t, 1000, s.MaxExpand)
	require.True(t, math.IsInf(s.MaxSize, 1))
	require.False(t, s.Trust)
}

func TestNewSettings_Invalid(t *testing.T) {
	_, err := NewSettings(WithOutput("svg"), WithTrustExpr("protocol =="))
	require.ErrorContains(t, err, `invalid output "svg"`)
	require.ErrorContains(t, err, "compile trust expression")
}

func TestNewSettings_Clamps(t *testing.T) {
	s, err := NewSettings(WithMinRuleThickness(-1), WithMaxSize(-5))
	require.NoError(t, err)
	require.Equal(t, 0.0, s.MinRuleThickness)
	require.Equal(t, 0.0, s.MaxSize)
}

func TestSettings_IsTrusted(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		ctx  TrustContext
		want bool
	}{
		{
			name: "default untrusted",
			ctx:  TrustContext{Command: `\href`, URL: "https://katex.org"},
			want: false,
		},
		{
			name: "trust all",
			opts: []Option{WithTrust(true)},
			ctx:  TrustContext{Command: `\href`, URL: "https://katex.org"},
			want: true,
		},
		{
			name: "expression allows https",
			opts: []Option{WithTrustExpr(`protocol == "https"`)},
			ctx:  TrustContext{Command: `\href`, URL: "https://katex.org"},
			want: true,
		},
		{
			name: "expression rejects http",
			opts: []Option{WithTrustExpr(`protocol == "https"`)},
			ctx:  TrustContext{Command: `\href`, URL: "http://katex.org"},
			want: false,
		},
		{
			name: "expression on class",
			opts: []Option{WithTrustExpr(`command == "\\htmlClass" && class startsWith "x-"`)},
			ctx:  TrustContext{Command: `\htmlClass`, Class: "x-note"},
			want: true,
		},
		{
			name: "function",
			opts: []Option{WithTrustFunc(func(ctx TrustContext) bool { return ctx.Protocol == "_relative" })},
			ctx:  TrustContext{Command: `\url`, URL: "/docs/index.html"},
			want: true,
		},
		{
			name: "escaped colon never trusted",
			opts: []Option{WithTrust(true)},
			ctx:  TrustContext{Command: `\href`, URL: "javascript&colon;alert(1)"},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSettings(tt.opts...)
			require.NoError(t, err)
			require.Equal(t, tt.want, s.IsTrusted(tt.ctx))
		})
	}
}

func TestProtocolFromURL(t *testing.T) {
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{"https://katex.org", "https", true},
		{"HTTP://katex.org", "http", true},
		{"mailto:someone@example.com", "mailto", true},
		{"/relative/path", "_relative", true},
		{"page#frag:ment", "_relative", true},
		{"  javascript:alert(1)", "javascript", true},
		{"java&#58;script", "", false},
		{"1http:x", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := ProtocolFromURL(tt.url)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSettings_ReportNonstrict(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s, err := NewSettings(WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, s.ReportNonstrict("unicodeTextInMathMode", "text in math", nil))
	require.Contains(t, buf.String(), "code=unicodeTextInMathMode")

	s, err = NewSettings(WithStrict(StrictError))
	require.NoError(t, err)
	err = s.ReportNonstrict("unicodeTextInMathMode", "text in math", nil)
	require.EqualError(t, err, "KaTeX parse error: LaTeX-incompatible input and strict mode is set to 'error': text in math [unicodeTextInMathMode]")

	s, err = NewSettings(WithStrictExpr(`code == "commentAtEnd" ? "error" : "ignore"`))
	require.NoError(t, err)
	require.Error(t, s.ReportNonstrict("commentAtEnd", "comment", nil))
	require.NoError(t, s.ReportNonstrict("unknownSymbol", "symbol", nil))
	require.True(t, s.UseStrictBehavior("commentAtEnd", "comment", nil))
	require.False(t, s.UseStrictBehavior("unknownSymbol", "symbol", nil))

	s, err = NewSettings(WithStrictFunc(func(code, _ string, _ Locator) (StrictLevel, error) {
		if code == "htmlExtension" {
			return StrictError, nil
		}
		return StrictIgnore, nil
	}))
	require.NoError(t, err)
	require.Error(t, s.ReportNonstrict("htmlExtension", "html", nil))
	require.NoError(t, s.ReportNonstrict("unknownSymbol", "symbol", nil))
}

func TestSettingsFromMap(t *testing.T) {
	s, err := SettingsFromMap(map[string]any{
		"displayMode":      true,
		"max-expand":       10.0,
		"throw_on_error":   false,
		"minRuleThickness": 0.05,
		"strict":           true,
		"trust":            `protocol == "https"`,
		"macros":           map[string]any{`\RR`: `\mathbb{R}`},
	})
	require.NoError(t, err)
	require.True(t, s.DisplayMode)
	require.Equal(t, 10, s.MaxExpand)
	require.False(t, s.ThrowOnError)
	require.Equal(t, 0.05, s.MinRuleThickness)
	require.Equal(t, StrictError, s.Strict)
	require.Equal(t, `\mathbb{R}`, s.Macros[`\RR`].Text)
	require.True(t, s.IsTrusted(TrustContext{Command: `\url`, URL: "https://katex.org"}))
	require.False(t, s.IsTrusted(TrustContext{Command: `\url`, URL: "ftp://katex.org"}))
}

func TestSettingsFromMap_Errors(t *testing.T) {
	_, err := SettingsFromMap(map[string]any{
		"displayMode": "yes",
		"colour":      "red",
		"output":      "pdf",
	})
	require.ErrorContains(t, err, `unknown setting "colour"`)
	require.ErrorContains(t, err, `setting "displayMode": expected boolean, got string`)
}

func TestToSnakeCase(t *testing.T) {
	for in, want := range map[string]string{
		"maxExpand":        "max_expand",
		"max-expand":       "max_expand",
		"max_expand":       "max_expand",
		"colorIsTextColor": "color_is_text_color",
		"leqno":            "leqno",
	} {
		require.Equal(t, want, toSnakeCase(in), in)
	}
}
