package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/services"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scribe.toml")
	content := fmt.Sprintf(`[paths]
staging_dir = %q
log_dir = %q

[history]
enabled = false

[logging]
format = "console"
level = "error"
`, filepath.Join(dir, "staging"), filepath.Join(dir, "logs"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// stubWhisper installs a fake whisper binary that writes a fixed JSON payload
// into the requested output directory.
func stubWhisper(t *testing.T, binDir, text string) {
	t.Helper()
	script := fmt.Sprintf(`#!/bin/sh
input="$1"
outdir=""
prev=""
for a in "$@"; do
  if [ "$prev" = "--output_dir" ]; then outdir="$a"; fi
  prev="$a"
done
stem="${input##*/}"
stem="${stem%%.*}"
printf '{"text": %q, "language": "en", "segments": []}' > "$outdir/$stem.json"
`, text)
	if err := os.WriteFile(filepath.Join(binDir, "whisper"), []byte(script), 0o755); err != nil {
		t.Fatalf("write whisper stub: %v", err)
	}
}

func TestTranscribeCommandWritesTranscript(t *testing.T) {
	binDir := t.TempDir()
	stubWhisper(t, binDir, "Hello from the stub.")
	t.Setenv("PATH", binDir)

	mediaDir := t.TempDir()
	mediaPath := filepath.Join(mediaDir, "lecture.mp3")
	if err := os.WriteFile(mediaPath, []byte("not real audio"), 0o644); err != nil {
		t.Fatalf("write media file: %v", err)
	}

	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", writeTestConfig(t), "transcribe", "--input", mediaPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	transcriptPath := filepath.Join(mediaDir, "lecture_transcript.txt")
	if !strings.Contains(out.String(), transcriptPath) {
		t.Errorf("output %q missing transcript path %q", out.String(), transcriptPath)
	}
	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	if got := string(data); got != "Hello from the stub.\n" {
		t.Errorf("transcript = %q, want %q", got, "Hello from the stub.\n")
	}
}

func TestTranscribeCommandPositionalInput(t *testing.T) {
	binDir := t.TempDir()
	stubWhisper(t, binDir, "Positional works.")
	t.Setenv("PATH", binDir)

	mediaDir := t.TempDir()
	mediaPath := filepath.Join(mediaDir, "talk.wav")
	if err := os.WriteFile(mediaPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("write media file: %v", err)
	}

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", writeTestConfig(t), "transcribe", mediaPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(mediaDir, "talk_transcript.txt")); err != nil {
		t.Errorf("transcript not written: %v", err)
	}
}

func TestTranscribeCommandMissingInput(t *testing.T) {
	binDir := t.TempDir()
	stubWhisper(t, binDir, "unused")
	t.Setenv("PATH", binDir)

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", writeTestConfig(t), "transcribe", "--input", filepath.Join(t.TempDir(), "missing.mp4")})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() succeeded for missing input")
	}
	if !errors.Is(err, services.ErrInput) {
		t.Errorf("error = %v, want input failure", err)
	}
	if services.ExitCode(err) != 2 {
		t.Errorf("ExitCode = %d, want 2", services.ExitCode(err))
	}
}

func TestPromptForFileTrimsAnswer(t *testing.T) {
	in := strings.NewReader("  /tmp/some file.mkv  \n")
	out := &bytes.Buffer{}

	got, err := promptForFile(in, out)
	if err != nil {
		t.Fatalf("promptForFile() error = %v", err)
	}
	if got != "/tmp/some file.mkv" {
		t.Errorf("promptForFile() = %q", got)
	}
	if !strings.Contains(out.String(), "Enter the path") {
		t.Errorf("prompt not written: %q", out.String())
	}
}

func TestPromptForFileEmptyStdin(t *testing.T) {
	got, err := promptForFile(strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("promptForFile() error = %v", err)
	}
	if got != "" {
		t.Errorf("promptForFile() = %q, want empty", got)
	}
}
