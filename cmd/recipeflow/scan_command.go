package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"recipeflow/internal/lexicon"
	"recipeflow/internal/workflow"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <path>...",
		Short: "List recipe boundaries without decoding",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lex, err := lexicon.Load(cfg.Paths.LexiconPath)
			if err != nil {
				return err
			}
			detector := workflow.NewDetector(lex, cfg.Decode.DirectionsWidth)
			entries, failed, err := workflow.Scan(cmd.Context(), detector, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No recipes found")
			} else {
				headers := []string{"Document", "Line", "Dialect", "Lines", "End", "Title"}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, []string{
						e.Document,
						strconv.Itoa(e.StartLine),
						e.Dialect,
						strconv.Itoa(e.Lines),
						e.End.String(),
						e.Title,
					})
				}
				fmt.Fprintln(out, renderRows(out, headers, rows, []columnAlignment{alignLeft, alignRight, alignLeft, alignRight}))
			}

			names := make([]string, 0, len(failed))
			for name := range failed {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.ErrOrStderr(), "unreadable: %s: %v\n", name, failed[name])
			}
			return nil
		},
	}
}
