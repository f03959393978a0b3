package katex

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeSettingsForm(t *testing.T) {
	tests := []struct {
		name     string
		input    url.Values
		expected map[string]any
	}{
		{
			name:     "no settings fields",
			input:    url.Values{"tex": {"x^2"}},
			expected: map[string]any{},
		},
		{
			name: "typed values",
			input: url.Values{
				"settings.displayMode": {"true"},
				"settings.maxExpand":   {"50"},
				"settings.errorColor":  {"#f00"},
			},
			expected: map[string]any{
				"displayMode": true,
				"maxExpand":   50.0,
				"errorColor":  "#f00",
			},
		},
		{
			name: "union types",
			input: url.Values{
				"settings.strict": {"false"},
				"settings.trust":  {`protocol == "https"`},
			},
			expected: map[string]any{
				"strict": false,
				"trust":  `protocol == "https"`,
			},
		},
		{
			name: "macros",
			input: url.Values{
				`settings.macros.\RR`: {`\mathbb{R}`},
				`settings.macros.\NN`: {`\mathbb{N}`},
			},
			expected: map[string]any{
				"macros": map[string]any{
					`\RR`: `\mathbb{R}`,
					`\NN`: `\mathbb{N}`,
				},
			},
		},
		{
			name: "invalid values are skipped",
			input: url.Values{
				"settings.displayMode": {"yes please"},
				"settings.maxSize":     {"big"},
				"settings.fleqn":       {"1"},
			},
			expected: map[string]any{
				"fleqn": true,
			},
		},
		{
			name: "conflicting object key",
			input: url.Values{
				"settings.macros":       {"x"},
				"settings.macros.\\foo": {"y"},
			},
			// Map iteration order decides which field wins; the result is
			// checked for a single entry below.
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeSettingsForm(tt.input, nil)
			if tt.expected == nil {
				if len(got) != 1 {
					t.Errorf("DecodeSettingsForm() = %v, want exactly one key", got)
				}
				return
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("DecodeSettingsForm() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
