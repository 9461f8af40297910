package rosetta

import (
	"bytes"
	"errors"
	"testing"
	"text/template"
)

func TestTemplateHelpersTranslate(t *testing.T) {
	files := map[string]string{
		"en.toml": greetingPack,
		"fr.toml": "[messages]\nfarewell = \"Au revoir ($name)\"\n",
	}
	translator := newGreetingTranslator(t, files)

	funcs := TemplateHelpers(translator, HelperConfig{})
	tmpl := template.Must(template.New("page").Funcs(funcs).Parse(
		`{{ current_locale . }}: {{ translate . "farewell" "name" .Name }}`,
	))

	var buf bytes.Buffer
	data := struct {
		Locale string
		Name   string
	}{Locale: "fr_FR", Name: "Léa"}
	if err := tmpl.Execute(&buf, data); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := buf.String(); got != "fr_FR: Au revoir Léa" {
		t.Fatalf("rendered %q", got)
	}
}

func TestTemplateHelpersMissing(t *testing.T) {
	translator := newGreetingTranslator(t, map[string]string{"en.toml": greetingPack})

	funcs := TemplateHelpers(translator, HelperConfig{})
	translate := funcs["translate"].(func(any, string, ...any) string)
	if got := translate("en", "nope"); got != "nope" {
		t.Fatalf("translate() = %q", got)
	}

	var seen error
	funcs = TemplateHelpers(translator, HelperConfig{
		TemplateHelperKey: "t",
		OnMissing: func(locale, key string, params Params, err error) string {
			seen = err
			return "?" + key
		},
	})
	translate = funcs["t"].(func(any, string, ...any) string)
	if got := translate("en", "nope"); got != "?nope" {
		t.Fatalf("t() = %q", got)
	}
	if !errors.Is(seen, ErrKeyNotFound) {
		t.Fatalf("OnMissing saw %v", seen)
	}

	funcs = TemplateHelpers(nil, HelperConfig{})
	translate = funcs["translate"].(func(any, string, ...any) string)
	if got := translate("en", "farewell"); got != "farewell" {
		t.Fatalf("translate() without translator = %q", got)
	}
}

func TestExtractLocale(t *testing.T) {
	type page struct {
		Lang string
	}

	tests := []struct {
		name string
		data any
		key  string
		want string
	}{
		{name: "nil", data: nil, want: ""},
		{name: "string", data: "de_DE", want: "de_DE"},
		{name: "map any", data: map[string]any{"Locale": "en_GB"}, want: "en_GB"},
		{name: "map string", data: map[string]string{"lang": "pt_BR"}, key: "lang", want: "pt_BR"},
		{name: "struct field", data: page{Lang: "it_IT"}, key: "Lang", want: "it_IT"},
		{name: "struct pointer", data: &page{Lang: "es_ES"}, key: "Lang", want: "es_ES"},
		{name: "missing field", data: page{Lang: "it_IT"}, want: ""},
		{name: "other type", data: 42, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractLocale(tc.data, tc.key); got != tc.want {
				t.Fatalf("extractLocale() = %q want %q", got, tc.want)
			}
		})
	}
}

func TestPairsToParams(t *testing.T) {
	params := pairsToParams([]any{"name", "Sam", "n", 3, "dangling"})
	if len(params) != 2 || params["name"] != "Sam" || params["n"] != "3" {
		t.Fatalf("pairsToParams() = %v", params)
	}
	if pairsToParams([]any{"only"}) != nil {
		t.Fatal("expected nil params for a single value")
	}
}
