package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"recipeflow/internal/lexicon"
)

func newLexiconCommand(ctx *commandContext) *cobra.Command {
	lexCmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect the unit and category tables",
	}
	lexCmd.AddCommand(&cobra.Command{
		Use:   "unit <token>",
		Short: "Show how a unit token is translated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lex, err := lexicon.Load(cfg.Paths.LexiconPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if unit, ok := lex.TranslateUnit(args[0]); ok {
				fmt.Fprintf(out, "%s -> %s\n", args[0], unit)
				return nil
			}
			fmt.Fprintf(out, "%s: no translation (%d units known)\n", args[0], lex.UnitCount())
			return nil
		},
	})
	return lexCmd
}
