package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-rosetta"
)

const (
	envPrefix = "ROSETTA"

	profileTrueColor = "truecolor"
	profileANSI256   = "ansi256"
	profileANSI      = "ansi"
	profileASCII     = "ascii"

	colorModeAccumulate = "accumulate"
	colorModeLastWins   = "last-wins"
)

// Settings is the CLI configuration after flags, environment and config
// file have been merged.
type Settings struct {
	Dir       string `mapstructure:"dir"`
	Lang      string `mapstructure:"lang"`
	Extension string `mapstructure:"ext"`
	Fallback  string `mapstructure:"fallback"`
	Profile   string `mapstructure:"profile"`
	ColorMode string `mapstructure:"color-mode"`
	Plain     bool   `mapstructure:"plain"`
	NoStyle   bool   `mapstructure:"no-style"`
	Verbose   bool   `mapstructure:"verbose"`
}

// loadSettings merges, by precedence, flags, ROSETTA_* variables (LANG for
// the locale), an optional TOML config file and the flag defaults.
func loadSettings(cmd *cobra.Command) (*Settings, error) {
	// a .env file is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("lang", envPrefix+"_LANG", "LANG"); err != nil {
		return nil, fmt.Errorf("config: bind lang: %w", err)
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) validate() error {
	s.Dir = strings.TrimSpace(s.Dir)
	s.Lang = strings.TrimSpace(s.Lang)

	if strings.TrimSpace(s.Extension) == "" {
		return fmt.Errorf("config: ext cannot be empty")
	}
	if _, err := parseProfile(s.Profile); err != nil {
		return err
	}
	if _, err := parseColorMode(s.ColorMode); err != nil {
		return err
	}
	return nil
}

// options translates the settings into library options
func (s *Settings) options(logger *log.Logger) ([]rosetta.Option, error) {
	profile, err := parseProfile(s.Profile)
	if err != nil {
		return nil, err
	}
	if s.Plain {
		profile = termenv.Ascii
	}

	mode, err := parseColorMode(s.ColorMode)
	if err != nil {
		return nil, err
	}

	opts := []rosetta.Option{
		rosetta.WithDefaultLocale(s.Lang),
		rosetta.WithExtension(s.Extension),
		rosetta.WithFallbackLanguage(s.Fallback),
		rosetta.WithColorProfile(profile),
		rosetta.WithColorMode(mode),
		rosetta.WithLogger(logger),
	}
	if s.Dir != "" {
		opts = append(opts, rosetta.WithDirectory(s.Dir))
	}
	if s.NoStyle {
		opts = append(opts, rosetta.WithoutStyling())
	}
	if s.Verbose {
		opts = append(opts, rosetta.WithTranslatorHooks(rosetta.NewLoggingHook(logger)))
	}
	return opts, nil
}

func parseProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", profileTrueColor:
		return termenv.TrueColor, nil
	case profileANSI256:
		return termenv.ANSI256, nil
	case profileANSI:
		return termenv.ANSI, nil
	case profileASCII:
		return termenv.Ascii, nil
	default:
		return termenv.TrueColor, fmt.Errorf("config: unknown color profile %q", name)
	}
}

func parseColorMode(name string) (rosetta.ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", colorModeAccumulate:
		return rosetta.ColorAccumulate, nil
	case colorModeLastWins:
		return rosetta.ColorLastWins, nil
	default:
		return rosetta.ColorAccumulate, fmt.Errorf("config: unknown color mode %q", name)
	}
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "rosetta",
		Level:  level,
	})
}
