// Package whisper provides the transcription capabilities of the pipeline:
// ffmpeg-backed audio track extraction and a transcription engine driven
// through the whisper CLI. The engine sits behind a small interface so tests
// substitute deterministic results without any external process.
package whisper
