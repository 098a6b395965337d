package config

import "strings"

// normalize expands paths and trims user-supplied values so the rest of the
// program never has to re-clean them.
func (c *Config) normalize() error {
	var err error
	if c.Paths.StagingDir, err = expandPath(strings.TrimSpace(c.Paths.StagingDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}
	if path := strings.TrimSpace(c.History.Path); path != "" {
		if c.History.Path, err = expandPath(path); err != nil {
			return err
		}
	} else {
		c.History.Path = ""
	}

	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	c.Tools.FFprobe = strings.TrimSpace(c.Tools.FFprobe)
	c.Tools.Whisper = strings.TrimSpace(c.Tools.Whisper)

	c.Whisper.Model = strings.TrimSpace(c.Whisper.Model)
	c.Whisper.Device = strings.TrimSpace(c.Whisper.Device)
	c.Whisper.Language = strings.TrimSpace(c.Whisper.Language)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
