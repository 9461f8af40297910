package rosetta

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestHookedTranslatorRunsHooks(t *testing.T) {
	base := newGreetingTranslator(t, map[string]string{"en.toml": greetingPack})

	var before, after []string
	hook := TranslationHookFuncs{
		Before: func(ctx *TranslatorHookContext) {
			if ctx.Resolution != nil {
				t.Fatal("resolution should not exist before the call")
			}
			before = append(before, ctx.Key)
			ctx.Params = Params{"name": "Hooked"}
		},
		After: func(ctx *TranslatorHookContext) {
			after = append(after, ctx.Result)

			source, ok := ctx.PackSource()
			if !ok || source != filepath.Join("packs", "en.toml") {
				t.Fatalf("PackSource() = %q,%v", source, ok)
			}
			spec, ok := ctx.LocaleSpec()
			if !ok || spec.Language != "en" {
				t.Fatalf("LocaleSpec() = %+v,%v", spec, ok)
			}
			if !strings.HasPrefix(ctx.Resolution.Template, "Hi ($name)") {
				t.Fatalf("Resolution.Template = %q", ctx.Resolution.Template)
			}
		},
	}

	translator := WrapTranslatorWithHooks(base, hook)
	got, err := translator.Translate("en", "greeting", nil)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if !strings.HasPrefix(got, "Hi Hooked!") {
		t.Fatalf("Translate() = %q", got)
	}
	if len(before) != 1 || len(after) != 1 || after[0] != got {
		t.Fatalf("hooks saw before=%v after=%v", before, after)
	}
}

func TestHookedTranslatorCanRewriteResult(t *testing.T) {
	base := newGreetingTranslator(t, map[string]string{"en.toml": greetingPack})

	hook := TranslationHookFuncs{
		After: func(ctx *TranslatorHookContext) {
			if errors.Is(ctx.Error, ErrKeyNotFound) {
				ctx.Result = "[" + ctx.Key + "]"
				ctx.Error = nil
			}
		},
	}

	got, err := WrapTranslatorWithHooks(base, hook).Translate("en", "missing.key", nil)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "[missing.key]" {
		t.Fatalf("Translate() = %q", got)
	}
}

func TestWrapTranslatorWithHooksPassthrough(t *testing.T) {
	base := newGreetingTranslator(t, map[string]string{"en.toml": greetingPack})

	if got := WrapTranslatorWithHooks(base); got != Translator(base) {
		t.Fatalf("expected base translator without hooks, got %T", got)
	}
	if got := WrapTranslatorWithHooks(base, nil); got != Translator(base) {
		t.Fatalf("expected base translator with only nil hooks, got %T", got)
	}

	var hooked *HookedTranslator
	if _, err := hooked.Translate("en", "x", nil); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

type plainTranslator struct{}

func (plainTranslator) Translate(locale, key string, params Params) (string, error) {
	return locale + ":" + key, nil
}

func TestHookedTranslatorWithoutResolution(t *testing.T) {
	var sawPack bool
	hook := TranslationHookFuncs{
		After: func(ctx *TranslatorHookContext) {
			_, sawPack = ctx.PackSource()
		},
	}

	got, err := WrapTranslatorWithHooks(plainTranslator{}, hook).Translate("en", "k", nil)
	if err != nil || got != "en:k" {
		t.Fatalf("Translate() = %q,%v", got, err)
	}
	if sawPack {
		t.Fatal("plain translators report no pack")
	}
}

func TestLoggingHook(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	base := newGreetingTranslator(t, map[string]string{"en.toml": greetingPack})
	translator := WrapTranslatorWithHooks(base, NewLoggingHook(logger))

	if _, err := translator.Translate("en", "farewell", nil); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if _, err := translator.Translate("en", "nope", nil); err == nil {
		t.Fatal("expected missing key error")
	}

	out := buf.String()
	for _, want := range []string{"translated", "key=farewell", "translation failed", "kind=key_not_found"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %q", out, want)
		}
	}
}

func TestHookContextPartialResolution(t *testing.T) {
	base := newGreetingTranslator(t, map[string]string{"en.toml": greetingPack})

	var seen *TranslatorHookContext
	hook := TranslationHookFuncs{
		After: func(ctx *TranslatorHookContext) {
			seen = ctx
		},
	}

	if _, err := WrapTranslatorWithHooks(base, hook).Translate("en_GB", "nope", nil); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	source, ok := seen.PackSource()
	if !ok || source != filepath.Join("packs", "en.toml") {
		t.Fatalf("PackSource() = %q,%v", source, ok)
	}
	if spec, ok := seen.LocaleSpec(); !ok || spec.Territory != "gb" {
		t.Fatalf("LocaleSpec() = %+v,%v", spec, ok)
	}
	if seen.Resolution.Template != "" {
		t.Fatalf("template should stay empty when the key is missing, got %q", seen.Resolution.Template)
	}

	var empty *TranslatorHookContext
	if _, ok := empty.PackSource(); ok {
		t.Fatal("nil context has no pack")
	}
	if _, ok := (&TranslatorHookContext{}).LocaleSpec(); ok {
		t.Fatal("context without resolution has no locale")
	}
}
