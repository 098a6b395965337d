// Package transcript derives output paths and persists transcription text.
package transcript
