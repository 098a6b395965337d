package whisper

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"scribe/internal/services"
)

// ExtractTrack isolates one audio stream from a media container into a mono
// 16 kHz 16-bit PCM WAV at dest. trackIndex counts audio streams only
// (ffmpeg's 0:a:<n> selector), not absolute container streams. Whether the
// index actually exists is ffmpeg's call; an out-of-range index surfaces here
// as an extraction error carrying the tool's diagnostics.
func ExtractTrack(ctx context.Context, ffmpegBinary, source string, trackIndex int, dest string) error {
	if trackIndex < 0 {
		return services.Wrap(services.ErrExtraction, "extractor", "extract", fmt.Sprintf("invalid audio track index %d", trackIndex), nil)
	}
	if ffmpegBinary == "" {
		ffmpegBinary = FFmpegCommand
	}

	args := buildExtractArgs(source, trackIndex, dest)
	cmd := exec.CommandContext(ctx, ffmpegBinary, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		detail := fmt.Sprintf("audio track %d", trackIndex)
		if trimmed := strings.TrimSpace(string(output)); trimmed != "" {
			detail = fmt.Sprintf("%s: %s", detail, trimmed)
		}
		return services.Wrap(services.ErrExtraction, "extractor", "extract", detail, err)
	}
	return nil
}

// buildExtractArgs constructs the ffmpeg invocation: overwrite the
// destination, suppress informational logging, drop video/subtitle/data
// streams, select the nth audio stream, and normalize to mono 16 kHz s16le.
func buildExtractArgs(source string, trackIndex int, dest string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-vn",
		"-sn",
		"-dn",
		"-map", fmt.Sprintf("0:a:%d", trackIndex),
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dest,
	}
}
