package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"recipeflow/internal/queue"
	"recipeflow/internal/workflow"
)

const lockFileName = ".recipeflow.lock"

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "convert <path>...",
		Short: "Decode recipes from files, directories, and zip archives",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			lockPath := filepath.Join(cfg.Paths.OutputDir, lockFileName)
			lock := flock.New(lockPath)
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !ok {
				return fmt.Errorf("another recipeflow run is writing to %s (lock %s)", cfg.Paths.OutputDir, lockPath)
			}
			defer func() { _ = lock.Unlock() }()

			conv, err := workflow.NewConverter(cfg, logger)
			if err != nil {
				return err
			}
			if strings.TrimSpace(runID) == "" {
				runID = uuid.NewString()
			}
			summary, err := conv.Convert(cmd.Context(), runID, args)
			printSummary(cmd.OutOrStdout(), summary)
			return err
		},
	}

	cmd.Flags().StringVar(&runID, "run-id", "", "Identifier recorded in the index (default: random UUID)")
	return cmd
}

func printSummary(out io.Writer, summary workflow.Summary) {
	if len(summary.Documents) == 0 {
		fmt.Fprintln(out, "No documents processed")
		return
	}
	headers := []string{"Document", "Status", "Recipes", "Dropped", "Size"}
	rows := make([][]string, 0, len(summary.Documents))
	for _, d := range summary.Documents {
		status := string(d.Status)
		if d.Err != nil {
			status += ": " + d.Err.Error()
		}
		rows = append(rows, []string{
			d.Document,
			status,
			strconv.Itoa(d.Recipes),
			strconv.Itoa(len(d.Drops)),
			humanize.Bytes(uint64(d.Size)),
		})
	}
	fmt.Fprintln(out, renderRows(out, headers, rows, []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight}))

	fmt.Fprintf(out, "Run %s: %s documents (%s), %s recipes exported, %s dropped, %s files written\n",
		summary.RunID,
		humanize.Comma(int64(len(summary.Documents))),
		humanize.Bytes(uint64(summary.Bytes())),
		humanize.Comma(int64(summary.Recipes())),
		humanize.Comma(int64(summary.Dropped())),
		humanize.Comma(int64(summary.Files())),
	)
	if failed := summary.Count(queue.StatusFailed); failed > 0 {
		fmt.Fprintf(out, "%d documents failed\n", failed)
	}
	if n := len(summary.Duplicates.Exact); n > 0 {
		fmt.Fprintf(out, "%d exact duplicate groups\n", n)
	}
	if n := len(summary.Duplicates.Near); n > 0 {
		fmt.Fprintf(out, "%d near-duplicate pairs\n", n)
	}
	for _, path := range summary.Artifacts {
		fmt.Fprintf(out, "Wrote %s\n", path)
	}
}
