package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-rosetta"
)

func newTranslateCmd(a *app) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   "translate KEY [name=value ...]",
		Short: "Resolve, fill in and render a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return &ExitError{Code: exitUsage, Err: err}
			}

			cfg, err := a.config(true)
			if err != nil {
				return err
			}
			locale, err := a.locale()
			if err != nil {
				return err
			}

			if explain {
				base, err := cfg.BuildSimpleTranslator()
				if err != nil {
					return exitError(err)
				}
				if err := writeExplain(cmd, base, locale, args[0]); err != nil {
					return exitError(err)
				}
			}

			translator, err := cfg.BuildTranslator()
			if err != nil {
				return exitError(err)
			}

			result, err := translator.Translate(locale, args[0], params)
			if err != nil {
				return exitError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "print the selected pack, the raw template and its placeholders to stderr")

	return cmd
}

// parseParams reads name=value pairs. A value may itself contain "=".
func parseParams(pairs []string) (rosetta.Params, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	params := make(rosetta.Params, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("parameter %q must look like name=value", pair)
		}
		params[strings.TrimSpace(name)] = value
	}
	return params, nil
}

func writeExplain(cmd *cobra.Command, translator *rosetta.SimpleTranslator, locale, key string) error {
	template, pack, spec, err := translator.Template(locale, key)
	if err != nil {
		return err
	}

	placeholders := rosetta.Placeholders(template)
	listed := "none"
	if len(placeholders) > 0 {
		listed = strings.Join(placeholders, ", ")
	}

	out := cmd.ErrOrStderr()
	fmt.Fprintln(out, field("locale", spec.Tag().String()))
	fmt.Fprintln(out, field("pack", pack.Source))
	fmt.Fprintln(out, field("template", template))
	fmt.Fprintln(out, field("params", listed))
	return nil
}
