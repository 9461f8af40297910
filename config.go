package rosetta

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Config captures translator and renderer setup
type Config struct {
	DefaultLocale    string
	Directory        Directory
	Extension        string
	FallbackLanguage string
	Loader           Loader
	Resolver         FallbackResolver
	Hooks            []TranslationHook
	Logger           *log.Logger

	decoders       map[string]DecodeFunc
	fallbackSet    bool
	colorProfile   termenv.Profile
	colorMode      ColorMode
	stylingEnabled bool
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		colorProfile:   termenv.TrueColor,
		stylingEnabled: true,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	if !cfg.fallbackSet {
		cfg.FallbackLanguage = DefaultFallbackLanguage
	}

	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	if cfg.Loader == nil {
		cfg.Loader = NewPackLoader()
	}
	if loader, ok := cfg.Loader.(*PackLoader); ok {
		for ext, fn := range cfg.decoders {
			loader.WithDecoder(ext, fn)
		}
		if !hasExtension(loader, cfg.Extension) {
			return nil, fmt.Errorf("rosetta: no decoder registered for extension %q", cfg.Extension)
		}
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewPackResolver(
			WithResolverExtension(cfg.Extension),
			WithResolverFallbackLanguage(cfg.FallbackLanguage),
		)
	}

	return cfg, nil
}

func hasExtension(loader *PackLoader, ext string) bool {
	for _, registered := range loader.Extensions() {
		if strings.EqualFold(registered, ext) {
			return true
		}
	}
	return false
}

// WithDefaultLocale sets the locale tag used when a call passes none
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithDirectory reads message packs from dir on the local file system
func WithDirectory(dir string) Option {
	return func(c *Config) error {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("rosetta: empty message pack directory")
		}
		c.Directory = NewOSDirectory(dir)
		return nil
	}
}

// WithFS reads message packs from root inside fsys
func WithFS(fsys fs.FS, root string) Option {
	return func(c *Config) error {
		if fsys == nil {
			return fmt.Errorf("rosetta: nil file system")
		}
		c.Directory = NewFSDirectory(fsys, root)
		return nil
	}
}

func WithDirectoryListing(dir Directory) Option {
	return func(c *Config) error {
		c.Directory = dir
		return nil
	}
}

// WithExtension sets the pack extension used to build candidate names
func WithExtension(ext string) Option {
	return func(c *Config) error {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return nil
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extension = ext
		return nil
	}
}

// WithFallbackLanguage sets the prefix tried last. An empty value disables
// that pass.
func WithFallbackLanguage(lang string) Option {
	return func(c *Config) error {
		c.FallbackLanguage = strings.TrimSpace(lang)
		c.fallbackSet = true
		return nil
	}
}

func WithDecoder(ext string, fn DecodeFunc) Option {
	return func(c *Config) error {
		if ext == "" || fn == nil {
			return nil
		}
		if c.decoders == nil {
			c.decoders = make(map[string]DecodeFunc)
		}
		c.decoders[ext] = fn
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithTranslatorHooks(hooks ...TranslationHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithColorProfile down-converts rendered colors; termenv.Ascii renders
// plain text.
func WithColorProfile(profile termenv.Profile) Option {
	return func(c *Config) error {
		c.colorProfile = profile
		return nil
	}
}

// WithColorMode chooses how several color[...] directives in one command combine
func WithColorMode(mode ColorMode) Option {
	return func(c *Config) error {
		if mode != ColorAccumulate && mode != ColorLastWins {
			return fmt.Errorf("rosetta: unknown color mode %d", mode)
		}
		c.colorMode = mode
		return nil
	}
}

// WithoutStyling leaves (ansi ...) directives verbatim in the output
func WithoutStyling() Option {
	return func(c *Config) error {
		c.stylingEnabled = false
		return nil
	}
}

// Renderer builds the style renderer described by the config
func (cfg *Config) Renderer() *Renderer {
	opts := []RendererOption{
		WithRendererProfile(cfg.colorProfile),
		WithRendererColorMode(cfg.colorMode),
	}
	if !cfg.stylingEnabled {
		opts = append(opts, WithRendererDisabled())
	}
	return NewRenderer(opts...)
}

// BuildSimpleTranslator builds the translator without hooks
func (cfg *Config) BuildSimpleTranslator() (*SimpleTranslator, error) {
	if cfg == nil || cfg.Directory == nil {
		return nil, ErrNotConfigured
	}

	return NewSimpleTranslator(cfg.Directory,
		WithTranslatorDefaultLocale(cfg.DefaultLocale),
		WithTranslatorLoader(cfg.Loader),
		WithTranslatorFallbackResolver(cfg.Resolver),
		WithTranslatorRenderer(cfg.Renderer()),
		WithTranslatorParsers(NewLocaleParser(), NewKeyParser()),
		WithTranslatorLogger(cfg.Logger))
}

func (cfg *Config) BuildTranslator() (Translator, error) {
	base, err := cfg.BuildSimpleTranslator()
	if err != nil {
		return nil, err
	}

	var translator Translator = base

	if len(cfg.Hooks) > 0 {
		translator = WrapTranslatorWithHooks(translator, cfg.Hooks...)
	}

	return translator, nil
}
