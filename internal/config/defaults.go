package config

const (
	defaultOutputDir = "."
	defaultHistoryDB = "~/.local/share/ctestwin/history.db"
	defaultBand      = "7MHz"
	defaultMode      = "SSB"
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			HistoryDB: defaultHistoryDB,
		},
		Defaults: Defaults{
			Band: defaultBand,
			Mode: defaultMode,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
