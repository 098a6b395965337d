package whisper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/services"
)

func TestBuildExtractArgsParameterization(t *testing.T) {
	args := buildExtractArgs("/media/multi.mkv", 3, "/tmp/stage/audio_track.wav")
	joined := strings.Join(args, " ")

	// Stream selection must count audio streams, not absolute container streams.
	if !strings.Contains(joined, "-map 0:a:3") {
		t.Fatalf("expected audio-stream selector, got %q", joined)
	}
	for _, want := range []string{"-ac 1", "-ar 16000", "-c:a pcm_s16le", "-vn", "-y", "-loglevel error"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in %q", want, joined)
		}
	}
	if args[len(args)-1] != "/tmp/stage/audio_track.wav" {
		t.Fatalf("destination must be last arg, got %q", args[len(args)-1])
	}
}

func TestExtractTrackRejectsNegativeIndex(t *testing.T) {
	err := ExtractTrack(context.Background(), "ffmpeg", "in.mkv", -1, "out.wav")
	if !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
}

func TestExtractTrackRunsFFmpeg(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	stub := filepath.Join(dir, "ffmpeg")
	script := "#!/bin/sh\necho \"$@\" > " + argsFile + "\nfor a in \"$@\"; do last=\"$a\"; done\ntouch \"$last\"\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	dest := filepath.Join(dir, "audio_track.wav")
	if err := ExtractTrack(context.Background(), stub, "multi.mkv", 1, dest); err != nil {
		t.Fatalf("extract: %v", err)
	}

	recorded, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read args: %v", err)
	}
	if !strings.Contains(string(recorded), "0:a:1") {
		t.Fatalf("stub did not receive audio selector: %q", recorded)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("expected destination file: %v", err)
	}
}

func TestExtractTrackFailureCarriesDiagnostics(t *testing.T) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "ffmpeg")
	script := "#!/bin/sh\necho 'Stream map ''0:a:7'' matches no streams.' >&2\nexit 1\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	err := ExtractTrack(context.Background(), stub, "multi.mkv", 7, filepath.Join(dir, "out.wav"))
	if !errors.Is(err, services.ErrExtraction) {
		t.Fatalf("expected extraction error, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "audio track 7") {
		t.Fatalf("expected requested index in message: %q", msg)
	}
	if !strings.Contains(msg, "matches no streams") {
		t.Fatalf("expected tool diagnostics in message: %q", msg)
	}
}
