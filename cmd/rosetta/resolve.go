package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the message pack the fallback cascade selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config(true)
			if err != nil {
				return err
			}

			locale, err := a.locale()
			if err != nil {
				return err
			}

			translator, err := cfg.BuildSimpleTranslator()
			if err != nil {
				return exitError(err)
			}

			spec, name, err := translator.ResolvePack(locale)
			if err != nil {
				return exitError(err)
			}
			a.logger.Debug("resolved", "spec", spec.String(), "file", name)

			fmt.Fprintln(cmd.OutOrStdout(), translator.Directory().Path(name))
			return nil
		},
	}
}
