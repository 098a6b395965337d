package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scribe/internal/deps"
	"scribe/internal/preflight"
	"scribe/internal/services/whisper"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check external tools and working directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var rows [][]string
			for _, status := range preflight.CheckSystemDeps(cfg) {
				detail := status.Description
				if !status.Available && status.Detail != "" {
					detail = status.Detail
				}
				name := status.Name
				if status.Optional {
					name += " (optional)"
				}
				rows = append(rows, []string{name, yesNo(status.Available), detail})
			}

			for _, check := range []preflight.Result{
				preflight.CheckDirectoryAccess("Staging directory", cfg.Paths.StagingDir),
				preflight.CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
			} {
				rows = append(rows, []string{check.Name, yesNo(check.Passed), check.Detail})
			}

			device := whisper.ResolveDevice(cfg.Whisper.Device, deps.AcceleratorAvailable)
			rows = append(rows, []string{"Inference device", "-", device})

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Check", "OK", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
