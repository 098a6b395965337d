package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"scribe/internal/history"
	"scribe/internal/logging"
	"scribe/internal/pipeline"
	"scribe/internal/services"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var (
		input      string
		model      string
		lang       string
		audioTrack int
		outDir     string
		device     string
	)

	cmd := &cobra.Command{
		Use:   "transcribe [file]",
		Short: "Transcribe an audio or video file to text",
		Long: `Transcribe an audio or video file with Whisper and write the result
next to the source as <stem>_transcript.txt (or into --outdir).

When --audio-track is given the selected track is first extracted with
FFmpeg into a temporary staging directory, which is removed when the run
finishes, successfully or not.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.loggerFor(cmd)

			if input == "" && len(args) > 0 {
				input = args[0]
			}

			p := pipeline.New(cfg, logger)
			if stdinIsTerminal() {
				p.WithPicker(func() (string, error) {
					return promptForFile(cmd.InOrStdin(), cmd.ErrOrStderr())
				})
			}

			if cfg.History.Enabled {
				store, err := history.Open(cfg.HistoryPath())
				if err != nil {
					// History is bookkeeping; a broken store must not block the run.
					logger.Warn("history store unavailable", logging.Error(err))
				} else {
					defer store.Close()
					p.WithHistory(store)
				}
			}

			req := pipeline.Request{
				Input:    input,
				Model:    model,
				Language: lang,
				OutDir:   outDir,
				Device:   device,
			}
			if audioTrack >= 0 {
				track := audioTrack
				req.AudioTrack = &track
			}

			result, err := p.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Transcript saved to: %s\n", result.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Audio or video file to transcribe")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Whisper model size (tiny, base, small, medium, large)")
	cmd.Flags().StringVarP(&lang, "language", "l", "", "Spoken language hint (name or ISO 639-1 code)")
	cmd.Flags().IntVar(&audioTrack, "audio-track", -1, "0-based audio track to extract before transcribing")
	cmd.Flags().StringVarP(&outDir, "outdir", "o", "", "Directory for the transcript (defaults next to the source)")
	cmd.Flags().StringVar(&device, "device", "", "Inference device override (cpu or cuda)")

	return cmd
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptForFile asks the operator for a media path on the given reader. An
// empty answer means nothing was chosen.
func promptForFile(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the path to the audio/video file: ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", services.Wrap(services.ErrInput, "cli", "prompt", "", err)
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}
