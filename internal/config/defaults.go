package config

const (
	defaultDuplicatesDir = "~/.local/share/trackdedup/duplicates"
	defaultReportDir     = "~/.local/share/trackdedup/reports"
	defaultLogDir        = "~/.local/share/trackdedup/logs"
	defaultDataDir       = "~/.local/share/trackdedup"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DuplicatesDir: defaultDuplicatesDir,
			ReportDir:     defaultReportDir,
			LogDir:        defaultLogDir,
			DataDir:       defaultDataDir,
		},
		Scan: Scan{
			Workers:     0,
			KeepHistory: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
