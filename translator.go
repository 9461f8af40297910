package rosetta

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Translator resolves a string for a given locale and message key.
type Translator interface {
	Translate(locale, key string, params Params) (string, error)
}

// Resolution records how a translation was served: the parsed locale, the
// pack file and the raw template. Fields stay empty past the stage that failed.
type Resolution struct {
	Locale   LocaleSpec
	Pack     string
	Template string
}

type resolvingTranslator interface {
	TranslateResolved(locale, key string, params Params) (string, *Resolution, error)
}

// SimpleTranslator runs the whole resolution for every call: parse the
// locale, pick a pack file, decode it, walk the key, substitute and render.
// It keeps no mutable state and may be shared between goroutines.
type SimpleTranslator struct {
	dir           Directory
	loader        Loader
	resolver      FallbackResolver
	locales       *LocaleParser
	keys          *KeyParser
	renderer      *Renderer
	defaultLocale string
	logger        *log.Logger
}

var (
	_ Translator          = &SimpleTranslator{}
	_ resolvingTranslator = &SimpleTranslator{}
)

type TranslatorOption func(*SimpleTranslator)

// WithTranslatorDefaultLocale sets the tag used when Translate gets an empty locale
func WithTranslatorDefaultLocale(locale string) TranslatorOption {
	return func(t *SimpleTranslator) {
		t.defaultLocale = locale
	}
}

func WithTranslatorLoader(loader Loader) TranslatorOption {
	return func(t *SimpleTranslator) {
		if loader != nil {
			t.loader = loader
		}
	}
}

func WithTranslatorFallbackResolver(resolver FallbackResolver) TranslatorOption {
	return func(t *SimpleTranslator) {
		if resolver != nil {
			t.resolver = resolver
		}
	}
}

func WithTranslatorRenderer(renderer *Renderer) TranslatorOption {
	return func(t *SimpleTranslator) {
		if renderer != nil {
			t.renderer = renderer
		}
	}
}

func WithTranslatorParsers(locales *LocaleParser, keys *KeyParser) TranslatorOption {
	return func(t *SimpleTranslator) {
		if locales != nil {
			t.locales = locales
		}
		if keys != nil {
			t.keys = keys
		}
	}
}

func WithTranslatorLogger(logger *log.Logger) TranslatorOption {
	return func(t *SimpleTranslator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewSimpleTranslator builds a translator over the packs in dir
func NewSimpleTranslator(dir Directory, opts ...TranslatorOption) (*SimpleTranslator, error) {
	if dir == nil {
		return nil, ErrNotConfigured
	}

	t := &SimpleTranslator{
		dir:      dir,
		loader:   NewPackLoader(),
		resolver: NewPackResolver(),
		renderer: NewRenderer(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	if t.locales == nil {
		t.locales = NewLocaleParser()
	}
	if t.keys == nil {
		t.keys = NewKeyParser()
	}

	return t, nil
}

// Translate returns the fully substituted and rendered message
func (t *SimpleTranslator) Translate(locale, key string, params Params) (string, error) {
	result, _, err := t.TranslateResolved(locale, key, params)
	return result, err
}

// TranslateResolved is Translate that also reports which pack and template
// served the call.
func (t *SimpleTranslator) TranslateResolved(locale, key string, params Params) (string, *Resolution, error) {
	if t == nil {
		return "", nil, ErrNotConfigured
	}

	template, pack, spec, err := t.Template(locale, key)
	res := &Resolution{Locale: spec}
	if pack != nil {
		res.Pack = pack.Source
	}
	if err != nil {
		return "", res, err
	}
	res.Template = template

	result, err := t.renderer.Render(Substitute(template, params))
	if err != nil {
		return "", res, fmt.Errorf("%s in %s: %w", key, pack.Source, err)
	}

	return result, res, nil
}

// Template resolves key to its raw template, before substitution and
// rendering, along with the pack and locale that produced it.
func (t *SimpleTranslator) Template(locale, key string) (string, *MessagePack, LocaleSpec, error) {
	msgKey, err := t.keys.Parse(key)
	if err != nil {
		return "", nil, LocaleSpec{}, err
	}

	spec, name, err := t.ResolvePack(locale)
	if err != nil {
		return "", nil, spec, err
	}

	pack, err := t.loader.Load(t.dir, name)
	if err != nil {
		return "", nil, spec, err
	}
	t.logger.Debug("decoded message pack", "source", pack.Source, "language", pack.Language, "territory", pack.Territory)

	template, err := pack.Messages.Lookup(msgKey)
	if err != nil {
		return "", pack, spec, fmt.Errorf("%w (pack %s)", err, pack.Source)
	}
	t.logger.Debug("resolved message", "key", msgKey.String(), "segments", len(msgKey.Path()))

	return template, pack, spec, nil
}

// ResolvePack parses locale and returns the pack file the cascade selects.
func (t *SimpleTranslator) ResolvePack(locale string) (LocaleSpec, string, error) {
	if locale == "" {
		locale = t.defaultLocale
	}

	spec, err := t.locales.Parse(locale)
	if err != nil {
		return LocaleSpec{}, "", err
	}
	t.logger.Debug("parsed locale", "tag", locale, "spec", spec.String())

	entries, err := t.dir.Entries()
	if err != nil {
		return spec, "", err
	}

	name, err := t.resolver.Resolve(spec, entries)
	if err != nil {
		return spec, "", fmt.Errorf("%w in %s", err, t.dir.Path(""))
	}
	t.logger.Debug("selected message pack", "file", name, "entries", len(entries))

	return spec, name, nil
}

// Directory returns the directory packs are read from
func (t *SimpleTranslator) Directory() Directory {
	if t == nil {
		return nil
	}
	return t.dir
}
