package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-rosetta"
)

func newLocaleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locale [TAG]",
		Short: "Show how a locale tag is decomposed and which file names it tries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tag string
			if len(args) == 1 {
				tag = args[0]
			} else {
				lang, err := a.locale()
				if err != nil {
					return err
				}
				tag = lang
			}

			spec, err := rosetta.NewLocaleParser().Parse(tag)
			if err != nil {
				return exitError(err)
			}

			ext := a.settings.Extension
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, field("language", orDash(spec.Language)))
			fmt.Fprintln(out, field("territory", spec.Territory))
			fmt.Fprintln(out, field("encoding", spec.Encoding))
			fmt.Fprintln(out, field("modifier", spec.Modifier))
			fmt.Fprintln(out, field("bcp47", spec.Tag().String()))
			fmt.Fprintln(out, field("candidates", strings.Join(spec.CandidateFileNames(ext), " ")))
			return nil
		},
	}
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
