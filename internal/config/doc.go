// Package config loads, normalizes, and validates Scribe configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/scribe/config.toml or a
// project-local scribe.toml. The Config type centralizes every knob the CLI
// needs: staging and log directories, external tool binaries, whisper
// defaults, run history, and logging output.
package config
