package config

import "time"

type Config interface {
	EnvConfig
	APIConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

// APIConfig describes how to reach the backend API
type APIConfig interface {
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
}

type SecurityConfig interface {
	GetSecureCookies() bool
}

type mainConfig struct {
	EnvVars
}

// New loads configuration from environment variables
func New() (Config, error) {
	vars, err := ParseEnvVars()
	if err != nil {
		return nil, err
	}
	return mainConfig{EnvVars: vars}, nil
}

// Must is like New but panics on invalid environment, for use in main
func Must() Config {
	c, err := New()
	if err != nil {
		panic("config: " + err.Error())
	}
	return c
}
