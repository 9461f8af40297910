package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render TEXT...",
		Short: "Render (ansi ...) directives in arbitrary text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(false)
			if err != nil {
				return err
			}

			result, err := cfg.Renderer().Render(strings.Join(args, " "))
			if err != nil {
				return exitError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
