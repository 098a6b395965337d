package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scribe/internal/config"
	"scribe/internal/language"
	"scribe/internal/media/ffprobe"
	"scribe/internal/services"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks <file>",
		Short: "List the audio tracks in a media file",
		Long: `List the audio tracks in a media file with the 0-based index
accepted by transcribe --audio-track.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return services.Wrap(services.ErrInput, "cli", "tracks", "", err)
			}

			probed, err := ffprobe.Inspect(cmd.Context(), cfg.FFprobeBinary(), path)
			if err != nil {
				return services.Wrap(services.ErrInput, "cli", "tracks", "", err)
			}

			audio := probed.AudioStreams()
			if len(audio) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No audio tracks found.")
				return nil
			}

			rows := make([][]string, 0, len(audio))
			for position, stream := range audio {
				lang := stream.Language()
				display := "-"
				if lang != "" {
					display = fmt.Sprintf("%s (%s)", language.DisplayName(lang), lang)
				}
				sampleRate := stream.SampleRate
				if sampleRate == "" {
					sampleRate = "-"
				}
				rows = append(rows, []string{
					strconv.Itoa(position),
					stream.CodecName,
					strconv.Itoa(stream.Channels),
					sampleRate,
					display,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Track", "Codec", "Channels", "Sample Rate", "Language"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}
