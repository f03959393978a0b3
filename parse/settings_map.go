package parse

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/fatih/camelcase"
)

// SettingSchema describes one option accepted by SettingsFromMap.
type SettingSchema struct {
	Name        string
	Type        string
	Default     any
	Description string
}

// SettingsSchema lists the options recognized in a settings map.
var SettingsSchema = []SettingSchema{
	{"displayMode", "boolean", false, "Render math in display mode, which puts the math in display style and centers it."},
	{"output", "htmlAndMathml|html|mathml", string(OutputHTMLAndMathML), "Determines the markup language of the output."},
	{"leqno", "boolean", false, "Render display math in leqno style (left-justified tags)."},
	{"fleqn", "boolean", false, "Render display math flush left."},
	{"throwOnError", "boolean", true, "Render errors (in the color given by errorColor) instead of returning them."},
	{"errorColor", "string", "#cc0000", "A color string given in the format 'rgb' or 'rrggbb' (no #)."},
	{"macros", "object", nil, "Macro definitions, name to replacement text."},
	{"minRuleThickness", "number", 0.0, "Specifies a minimum thickness, in ems, for fraction lines, \\sqrt top lines, {array} vertical lines, \\hline, \\hdashline, \\underline, \\overline, and the borders of \\fbox, \\boxed, and \\fcolorbox."},
	{"colorIsTextColor", "boolean", false, "Makes \\color behave like LaTeX's 2-argument \\textcolor."},
	{"strict", "boolean|warn|ignore|error|expression", string(StrictWarn), "Turn on strict / LaTeX faithfulness mode, which throws an error if the input uses features that are not supported by LaTeX."},
	{"trust", "boolean|expression", false, "Trust the input, enabling all HTML features such as \\url."},
	{"maxSize", "number", math.Inf(1), "If non-zero, all user-specified sizes, e.g. in \\rule{500em}{500em}, will be capped to maxSize ems."},
	{"maxExpand", "number", 1000, "Limit the number of macro expansions to the specified number, to prevent e.g. infinite macro loops. If set to a negative number, the macro expander will try to fully expand as in LaTeX."},
	{"globalGroup", "boolean", false, "Place KaTeX code in the global group."},
}

// SettingsFromMap builds settings from a decoded JSON or YAML object. Keys
// may be written in camelCase, snake_case or kebab-case.
func SettingsFromMap(m map[string]any) (*Settings, error) {
	known := make(map[string]string, len(SettingsSchema))
	for _, sc := range SettingsSchema {
		known[toSnakeCase(sc.Name)] = sc.Name
	}

	s := DefaultSettings()
	var errs []error
	for key, value := range m {
		name, ok := known[toSnakeCase(key)]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown setting %q", key))
			continue
		}
		if err := s.setOption(name, value); err != nil {
			errs = append(errs, fmt.Errorf("setting %q: %w", key, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) setOption(name string, value any) error {
	var err error
	switch name {
	case "displayMode":
		s.DisplayMode, err = boolValue(value)
	case "output":
		var v string
		v, err = stringValue(value)
		s.Output = OutputFormat(v)
	case "leqno":
		s.Leqno, err = boolValue(value)
	case "fleqn":
		s.Fleqn, err = boolValue(value)
	case "throwOnError":
		s.ThrowOnError, err = boolValue(value)
	case "errorColor":
		s.ErrorColor, err = stringValue(value)
	case "macros":
		return s.setMacros(value)
	case "minRuleThickness":
		s.MinRuleThickness, err = numberValue(value)
	case "colorIsTextColor":
		s.ColorIsTextColor, err = boolValue(value)
	case "strict":
		switch v := value.(type) {
		case bool:
			s.Strict = StrictIgnore
			if v {
				s.Strict = StrictError
			}
		case string:
			switch StrictLevel(v) {
			case StrictIgnore, StrictWarn, StrictError:
				s.Strict = StrictLevel(v)
			default:
				s.StrictExpr = v
			}
		default:
			err = fmt.Errorf("expected boolean or string, got %T", value)
		}
	case "trust":
		switch v := value.(type) {
		case bool:
			s.Trust = v
		case string:
			s.TrustExpr = v
		default:
			err = fmt.Errorf("expected boolean or string, got %T", value)
		}
	case "maxSize":
		s.MaxSize, err = numberValue(value)
	case "maxExpand":
		var n float64
		n, err = numberValue(value)
		s.MaxExpand = int(n)
	case "globalGroup":
		s.GlobalGroup, err = boolValue(value)
	}
	return err
}

func (s *Settings) setMacros(value any) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("expected object, got %T", value)
	}
	if s.Macros == nil {
		s.Macros = make(map[string]*Macro, len(obj))
	}
	for name, body := range obj {
		text, ok := body.(string)
		if !ok {
			return fmt.Errorf("macro %s: expected string, got %T", name, body)
		}
		s.Macros[name] = &Macro{Text: text}
	}
	return nil
}

func boolValue(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
	return b, nil
}

func stringValue(v any) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", v)
	}
	return str, nil
}

func numberValue(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}

// toSnakeCase normalizes an option key: "maxExpand", "max-expand" and
// "max_expand" all become "max_expand".
func toSnakeCase(s string) string {
	s = strings.ReplaceAll(s, "-", "_")
	blocks := strings.Split(s, "_")
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block == "" {
			continue
		}
		words := camelcase.Split(block)
		for i, w := range words {
			words[i] = strings.ToLower(w)
		}
		out = append(out, strings.Join(words, "_"))
	}
	return strings.Join(out, "_")
}
