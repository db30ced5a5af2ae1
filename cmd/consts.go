package cmd

const (
	campus         = "campus"
	campusRegistry = "campus_registry"
	start          = "start"

	defaultConfigFileName = "campus_registry.yml"
	yaml                  = "yaml"
	info                  = "info"
	defMaxLogFileSize     = 10
	defMaxLogFileAge      = 3
	defMaxLogFileBackups  = 3
	defLogFileAndStdOut   = false

	flagConfigFile        = "config-file"
	flagDataDir           = "data-dir"
	flagLogLevel          = "log-level"
	flagLogFile           = "log-file"
	flagLogFileAndStdout  = "log-file-and-stdout"
	flagLogFileMaxSize    = "log-file-max-size"
	flagLogFileMaxBackups = "log-file-max-backups"
	flagLogFileMaxAge     = "log-file-max-age"
)
