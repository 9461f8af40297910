package rosetta

import (
	"fmt"
	"reflect"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey names the field or map key holding the locale tag in template data
	LocaleKey string
	// TemplateHelperKey renames the translate helper, "translate" by default
	TemplateHelperKey string
	// OnMissing produces the text shown when a translation fails. The key is
	// shown when nil.
	OnMissing func(locale, key string, params Params, err error) string
}

// TemplateHelpers exposes the translator to text/template and html/template.
//
//	{{ translate . "greeting" "name" .User }}
//	{{ current_locale . }}
func TemplateHelpers(t Translator, cfg HelperConfig) map[string]any {
	name := cfg.TemplateHelperKey
	if name == "" {
		name = "translate"
	}

	return map[string]any{
		name: func(data any, key string, pairs ...any) string {
			locale := extractLocale(data, cfg.LocaleKey)
			params := pairsToParams(pairs)

			if t == nil {
				return missing(cfg, locale, key, params, ErrNotConfigured)
			}

			result, err := t.Translate(locale, key, params)
			if err != nil {
				return missing(cfg, locale, key, params, err)
			}
			return result
		},
		"current_locale": func(data any) string {
			return extractLocale(data, cfg.LocaleKey)
		},
	}
}

func missing(cfg HelperConfig, locale, key string, params Params, err error) string {
	if cfg.OnMissing != nil {
		return cfg.OnMissing(locale, key, params, err)
	}
	return key
}

func pairsToParams(pairs []any) Params {
	if len(pairs) < 2 {
		return nil
	}
	params := make(Params, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		params[fmt.Sprint(pairs[i])] = fmt.Sprint(pairs[i+1])
	}
	return params
}

// extractLocale reads the locale tag out of template data: a plain string,
// a map keyed by localeKey, or a struct field named localeKey.
func extractLocale(data any, localeKey string) string {
	if data == nil {
		return ""
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	switch d := data.(type) {
	case string:
		return d
	case map[string]any:
		if v, ok := d[localeKey].(string); ok {
			return v
		}
		return ""
	case map[string]string:
		return d[localeKey]
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return ""
}
