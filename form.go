package katex

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/dpotapov/go-katex/parse"
)

// settingsPrefix marks form fields that carry render settings, e.g.
// "settings.displayMode=true" or "settings.macros.\RR=\mathbb{R}".
const settingsPrefix = "settings."

// schemaTypes maps setting names to their declared type in
// parse.SettingsSchema.
var schemaTypes = func() map[string]string {
	m := make(map[string]string, len(parse.SettingsSchema))
	for _, sc := range parse.SettingsSchema {
		m[sc.Name] = sc.Type
	}
	return m
}()

// DecodeSettingsForm extracts the settings fields of a form into the map
// accepted by parse.SettingsFromMap. Values are converted to the type the
// setting declares. Fields that cannot be converted are logged and skipped
// if a logger is provided.
func DecodeSettingsForm(values url.Values, logger *slog.Logger) map[string]any {
	result := make(map[string]any)

	for key, vals := range values {
		if len(vals) == 0 || !strings.HasPrefix(key, settingsPrefix) {
			continue
		}
		if err := assignSetting(result, strings.TrimPrefix(key, settingsPrefix), vals[0]); err != nil {
			if logger != nil {
				logger.Warn("Failed to assign settings field",
					slog.String("key", key),
					slog.Any("value", vals[0]),
					slog.Any("error", err),
				)
			}
		}
	}

	return result
}

func assignSetting(data map[string]any, path, value string) error {
	name, sub, nested := strings.Cut(path, ".")
	if name == "" {
		return fmt.Errorf("empty setting name")
	}
	if nested {
		if sub == "" {
			return fmt.Errorf("empty key in %q", path)
		}
		obj, ok := data[name].(map[string]any)
		if !ok {
			if _, exists := data[name]; exists {
				return fmt.Errorf("expected object at key '%s', found %T", name, data[name])
			}
			obj = make(map[string]any)
			data[name] = obj
		}
		obj[sub] = value
		return nil
	}

	v, err := formValue(name, value)
	if err != nil {
		return err
	}
	data[name] = v
	return nil
}

// formValue converts a form string to the type of the named setting. Union
// types such as "boolean|expression" accept the literals true and false
// as booleans and anything else as a string.
func formValue(name, value string) (any, error) {
	typ := schemaTypes[name]
	switch {
	case typ == "number":
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", name, err)
		}
		return n, nil
	case typ == "boolean":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", name, err)
		}
		return b, nil
	case strings.HasPrefix(typ, "boolean|"):
		if value == "true" || value == "false" {
			return value == "true", nil
		}
	}
	return value, nil
}
