// Package language normalizes user-supplied language identifiers to the
// ISO 639-1 codes the whisper engine expects.
package language
