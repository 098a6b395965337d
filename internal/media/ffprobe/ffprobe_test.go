package ffprobe

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const sampleReport = `{
  "streams": [
    {"index": 0, "codec_name": "h264", "codec_type": "video"},
    {"index": 1, "codec_name": "aac", "codec_type": "audio", "sample_rate": "48000", "channels": 6, "tags": {"language": "eng"}},
    {"index": 2, "codec_name": "ac3", "codec_type": "audio", "sample_rate": "48000", "channels": 2, "tags": {"language": "FRA"}}
  ],
  "format": {"filename": "multi.mkv", "nb_streams": 3, "duration": "4321.5", "format_name": "matroska"}
}`

func TestParseAudioStreams(t *testing.T) {
	result, err := Parse([]byte(sampleReport))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	audio := result.AudioStreams()
	if len(audio) != 2 {
		t.Fatalf("expected 2 audio streams, got %d", len(audio))
	}
	if audio[0].Index != 1 || audio[1].Index != 2 {
		t.Fatalf("unexpected container indexes: %d %d", audio[0].Index, audio[1].Index)
	}
	if audio[0].Language() != "eng" {
		t.Fatalf("unexpected language: %q", audio[0].Language())
	}
	if audio[1].Language() != "fra" {
		t.Fatalf("language not lowercased: %q", audio[1].Language())
	}
	if got := result.DurationSeconds(); got != 4321.5 {
		t.Fatalf("unexpected duration: %v", got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestInspectRunsBinary(t *testing.T) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "ffprobe")
	script := "#!/bin/sh\ncat <<'EOF'\n" + sampleReport + "\nEOF\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	result, err := Inspect(context.Background(), stub, "multi.mkv")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if len(result.AudioStreams()) != 2 {
		t.Fatalf("unexpected stream count: %d", len(result.Streams))
	}
}

func TestInspectFailureIncludesOutput(t *testing.T) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "ffprobe")
	script := "#!/bin/sh\necho 'multi.mkv: Invalid data' >&2\nexit 1\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	if _, err := Inspect(context.Background(), stub, "multi.mkv"); err == nil {
		t.Fatal("expected inspect failure")
	}
}

func TestInspectEmptyPath(t *testing.T) {
	if _, err := Inspect(context.Background(), "ffprobe", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
