package transcript

import (
	"os"
	"path/filepath"
	"strings"

	"scribe/internal/services"
)

// Suffix appended to the source stem to form the transcript filename.
const Suffix = "_transcript.txt"

// OutputPath derives the transcript location for a source file. An empty
// outdir falls back to the source's parent directory.
func OutputPath(source, outdir string) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if strings.TrimSpace(outdir) == "" {
		outdir = filepath.Dir(source)
	}
	return filepath.Join(outdir, stem+Suffix)
}

// Write persists the transcript text for source and returns the artifact
// path. Text is trimmed of surrounding whitespace and, when non-empty,
// terminated by exactly one newline; empty text yields an empty file. Any
// existing file at the target is overwritten, so repeated runs with identical
// input produce byte-identical output. An explicit outdir is created
// recursively; the default (source's parent) is assumed to exist.
func Write(text, source, outdir string) (string, error) {
	if strings.TrimSpace(outdir) != "" {
		if err := os.MkdirAll(outdir, 0o755); err != nil {
			return "", services.Wrap(services.ErrWrite, "writer", "ensure output dir", outdir, err)
		}
	}

	target := OutputPath(source, outdir)
	content := strings.TrimSpace(text)
	if content != "" {
		content += "\n"
	}

	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return "", services.Wrap(services.ErrWrite, "writer", "write transcript", target, err)
	}
	return target, nil
}
