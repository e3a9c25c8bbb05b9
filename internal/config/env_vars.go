package config

import (
	"os"
	"strings"
)

const (
	appNameVar  = "APP_NAME"
	logLevelVar = "LOG_LEVEL"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Go OAuth SDK")
}

// GetLogLevel returns a zerolog level name, e.g. "debug" or "info".
func (EnvVars) GetLogLevel() string {
	return strings.ToLower(GetEnv(logLevelVar, "info"))
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
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
