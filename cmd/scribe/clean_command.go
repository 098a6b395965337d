package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"scribe/internal/staging"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var maxAge time.Duration

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove stale staging directories",
		Long: `Remove staging directories left behind by interrupted runs.
Directories younger than --max-age or still locked by a running
transcription are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.loggerFor(cmd)

			result := staging.CleanStale(cfg.Paths.StagingDir, maxAge, logger)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Removed %d stale staging director%s.\n", len(result.Removed), pluralY(len(result.Removed)))
			if len(result.Skipped) > 0 {
				fmt.Fprintf(out, "Skipped %d in use.\n", len(result.Skipped))
			}
			for _, failure := range result.Errors {
				fmt.Fprintf(out, "Failed to remove %s: %v\n", failure.Path, failure.Error)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&maxAge, "max-age", 24*time.Hour, "Remove staging directories older than this")

	return cmd
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
