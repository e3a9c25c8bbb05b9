package config

type Config interface {
	EnvConfig
	StoreConfig
}

type EnvConfig interface {
	GetAppName() string
	GetLogLevel() string
	GetEnv() string
}

type StoreConfig interface {
	GetStoreFile() string
	GetBaseURL() string
}

type mainConfig struct {
	EnvVars
	Store
}

func New() Config {
	return mainConfig{}
}
