package config

import "strings"

const (
	logLevelVar  = "PARAMMAP_LOG_LEVEL"
	logFormatVar = "PARAMMAP_LOG_FORMAT"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type Logging struct{}

var _ LogConfig = Logging{}

func (Logging) GetLogLevel() string {
	return strings.ToLower(GetEnv(logLevelVar, "info"))
}

// GetLogFormat returns "console" or "json"; unknown values fall back to console.
func (Logging) GetLogFormat() string {
	switch format := strings.ToLower(GetEnv(logFormatVar, LogFormatConsole)); format {
	case LogFormatJSON:
		return format
	default:
		return LogFormatConsole
	}
}
