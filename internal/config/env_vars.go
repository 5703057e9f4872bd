package config

import (
	"os"
)

const (
	appNameVar = "PARAMMAP_APP_NAME"
	envVar     = "PARAMMAP_ENV"
)

// Version is overridden at build time with -ldflags "-X ...config.Version=...".
var Version = "dev"

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Auth Param Map")
}

func (EnvVars) GetVersion() string {
	return Version
}

func (EnvVars) GetEnv() string {
	env := os.Getenv(envVar)
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
