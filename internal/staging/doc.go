// Package staging owns the temporary directories extracted audio lives in.
//
// Every transcription run that isolates a track gets its own uniquely named
// directory and holds a file lock inside it for the run's duration. The clean
// command removes stale directories but skips any whose lock is still held,
// so concurrent runs never lose their work area.
package staging
