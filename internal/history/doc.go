// Package history persists completed transcription runs in SQLite so the
// history command can show what was transcribed, with which model, and where
// the artifact landed.
package history
