package config

type Config interface {
	EnvConfig
	LogConfig
}

type EnvConfig interface {
	GetAppName() string
	GetVersion() string
	GetEnv() string
}

type LogConfig interface {
	GetLogLevel() string
	GetLogFormat() string
}

type mainConfig struct {
	EnvVars
	Logging
}

func New() Config {
	return mainConfig{}
}
