// Package pipeline orchestrates a transcription run from input resolution to
// the written transcript: resolve the source file, optionally isolate one
// audio track into a staged directory, run the engine, persist the text, and
// release staged resources on every exit path.
//
// The flow is strictly linear with no retries; every failure aborts the run
// and is classified through the services error taxonomy. External
// capabilities (engine, extractor, accelerator probe, interactive picker)
// are injected so tests run without ffmpeg or whisper installed.
package pipeline
