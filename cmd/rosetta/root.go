package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-rosetta"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// app carries the state shared by every subcommand once flags are parsed
type app struct {
	settings *Settings
	logger   *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rosetta",
		Short: "Resolve styled messages from locale message packs",
		Long: TitleStyle.Render("rosetta") + SubtitleStyle.Render(" - localized, styled terminal messages") + `

rosetta picks the message pack that best matches a POSIX locale tag,
looks up a dotted message key, fills in ($name) placeholders and turns
(ansi ...) directives into terminal escape sequences.

` + SubtitleStyle.Render("Examples:") + `
  rosetta translate greeting name=Sam --dir ./locales
  rosetta locale en_US.UTF-8@euro
  rosetta resolve --dir ./locales --lang pt_BR
  rosetta render "(ansi bold color[green])ok"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("dir", "d", "", "message pack directory")
	flags.StringP("lang", "l", "", "locale tag, defaults to $LANG")
	flags.String("ext", rosetta.DefaultExtension, "message pack file extension")
	flags.String("fallback", rosetta.DefaultFallbackLanguage, "language tried when nothing else matches, empty disables it")
	flags.String("profile", profileTrueColor, "color profile: truecolor, ansi256, ansi or ascii")
	flags.String("color-mode", colorModeAccumulate, "how several colors in one directive combine: accumulate or last-wins")
	flags.Bool("plain", false, "strip all styling from the output")
	flags.Bool("no-style", false, "leave (ansi ...) directives verbatim")
	flags.BoolP("verbose", "v", false, "log each resolution step to stderr")
	flags.String("config", "", "config file (TOML)")

	root.AddCommand(
		newTranslateCmd(a),
		newLocaleCmd(a),
		newResolveCmd(a),
		newRenderCmd(a),
	)

	return root
}

func (a *app) load(cmd *cobra.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}
	a.settings = settings
	a.logger = newLogger(cmd.ErrOrStderr(), settings.Verbose)
	return nil
}

// config builds the library configuration for the current settings
func (a *app) config(requireDir bool) (*rosetta.Config, error) {
	if requireDir && a.settings.Dir == "" {
		return nil, &ExitError{
			Code: exitUsage,
			Err:  fmt.Errorf("%w: pass --dir or set ROSETTA_DIR", rosetta.ErrNotConfigured),
		}
	}

	opts, err := a.settings.options(a.logger)
	if err != nil {
		return nil, &ExitError{Code: exitUsage, Err: err}
	}

	cfg, err := rosetta.NewConfig(opts...)
	if err != nil {
		return nil, &ExitError{Code: exitUsage, Err: err}
	}
	return cfg, nil
}

// locale returns the configured locale tag, a usage error when none is set
func (a *app) locale() (string, error) {
	if a.settings.Lang == "" {
		return "", &ExitError{
			Code: exitUsage,
			Err:  fmt.Errorf("%w: set LANG or pass --lang", rosetta.ErrLocaleParse),
		}
	}
	return a.settings.Lang, nil
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the root command and exits with the mapped status code.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(exitFailure)
	}
}
