package rosetta

import "github.com/charmbracelet/log"

// TranslationHook observes or rewrites a translation call
type TranslationHook interface {
	BeforeTranslate(ctx *TranslatorHookContext)
	AfterTranslate(ctx *TranslatorHookContext)
}

// TranslatorHookContext is shared by every hook of one call. Before hooks may
// change the inputs; after hooks may change Result and Error.
type TranslatorHookContext struct {
	Locale string
	Key    string
	Params Params
	Result string
	Error  error
	// Resolution is nil in before hooks and for translators that do not report one
	Resolution *Resolution
}

// PackSource returns the path of the pack that served the translation
func (ctx *TranslatorHookContext) PackSource() (string, bool) {
	if ctx == nil || ctx.Resolution == nil || ctx.Resolution.Pack == "" {
		return "", false
	}
	return ctx.Resolution.Pack, true
}

// LocaleSpec returns the parsed locale
func (ctx *TranslatorHookContext) LocaleSpec() (LocaleSpec, bool) {
	if ctx == nil || ctx.Resolution == nil {
		return LocaleSpec{}, false
	}
	return ctx.Resolution.Locale, true
}

type TranslationHookFuncs struct {
	Before func(ctx *TranslatorHookContext)
	After  func(ctx *TranslatorHookContext)
}

func (h TranslationHookFuncs) BeforeTranslate(ctx *TranslatorHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h TranslationHookFuncs) AfterTranslate(ctx *TranslatorHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

// NewLoggingHook logs the outcome of every translation
func NewLoggingHook(logger *log.Logger) TranslationHook {
	if logger == nil {
		logger = log.Default()
	}
	return TranslationHookFuncs{
		After: func(ctx *TranslatorHookContext) {
			source, _ := ctx.PackSource()
			if ctx.Error != nil {
				logger.Error("translation failed", "locale", ctx.Locale, "key", ctx.Key, "pack", source, "kind", ErrorKind(ctx.Error), "err", ctx.Error)
				return
			}
			logger.Info("translated", "locale", ctx.Locale, "key", ctx.Key, "pack", source)
		},
	}
}

// HookedTranslator runs hooks around another Translator
type HookedTranslator struct {
	next  Translator
	hooks []TranslationHook
}

var _ Translator = &HookedTranslator{}

// WrapTranslatorWithHooks returns next unchanged when no non-nil hook is given.
func WrapTranslatorWithHooks(next Translator, hooks ...TranslationHook) Translator {
	if next == nil {
		return nil
	}

	var active []TranslationHook
	for _, hook := range hooks {
		if hook != nil {
			active = append(active, hook)
		}
	}
	if len(active) == 0 {
		return next
	}

	return &HookedTranslator{next: next, hooks: active}
}

func (t *HookedTranslator) Translate(locale, key string, params Params) (string, error) {
	if t == nil || t.next == nil {
		return "", ErrNotConfigured
	}

	ctx := &TranslatorHookContext{Locale: locale, Key: key, Params: params}
	for _, hook := range t.hooks {
		hook.BeforeTranslate(ctx)
	}

	if resolver, ok := t.next.(resolvingTranslator); ok {
		ctx.Result, ctx.Resolution, ctx.Error = resolver.TranslateResolved(ctx.Locale, ctx.Key, ctx.Params)
	} else {
		ctx.Result, ctx.Error = t.next.Translate(ctx.Locale, ctx.Key, ctx.Params)
	}

	for _, hook := range t.hooks {
		hook.AfterTranslate(ctx)
	}

	return ctx.Result, ctx.Error
}
