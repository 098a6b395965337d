// Package ffprobe shells out to ffprobe and decodes its JSON stream report.
// The tracks command uses it to show which audio streams a container carries,
// and history records use its duration figure.
package ffprobe
