package config

const (
	defaultStagingDir = "~/.local/share/scribe/staging"
	defaultLogDir     = "~/.local/share/scribe/logs"
	defaultModel      = "medium"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StagingDir: defaultStagingDir,
			LogDir:     defaultLogDir,
		},
		Whisper: Whisper{
			Model: defaultModel,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
