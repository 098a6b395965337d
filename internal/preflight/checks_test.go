package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"scribe/internal/config"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("Staging", dir)
	if !result.Passed {
		t.Fatalf("expected writable temp dir to pass: %#v", result)
	}

	missing := CheckDirectoryAccess("Staging", filepath.Join(dir, "nope"))
	if missing.Passed {
		t.Fatal("expected missing directory to fail")
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	notDir := CheckDirectoryAccess("Staging", file)
	if notDir.Passed {
		t.Fatal("expected plain file to fail directory check")
	}
}

func TestCheckSystemDeps(t *testing.T) {
	binDir := t.TempDir()
	script := []byte("#!/bin/sh\nexit 0\n")
	for _, name := range []string{"ffmpeg", "ffprobe"} {
		if err := os.WriteFile(filepath.Join(binDir, name), script, 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	t.Setenv("PATH", binDir)

	cfg := config.Default()
	results := CheckSystemDeps(&cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	byName := map[string]bool{}
	for _, r := range results {
		byName[r.Name] = r.Available
	}
	if !byName["FFmpeg"] || !byName["FFprobe"] {
		t.Fatalf("expected stubbed tools available: %#v", byName)
	}
	if byName["Whisper"] {
		t.Fatal("expected whisper to be missing")
	}
	if byName["nvidia-smi"] {
		t.Fatal("expected nvidia-smi to be missing")
	}
}
