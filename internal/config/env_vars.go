package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvVars carries every environment-derived setting. Defaults match local
// development against the backend on :8000.
type EnvVars struct {
	Port          string        `env:"PORT" envDefault:"3000"`
	AppName       string        `env:"APP_NAME" envDefault:"Infinite Herbs"`
	Env           string        `env:"ENV" envDefault:"DEV"`
	APIBaseURL    string        `env:"API_URL" envDefault:"http://localhost:8000/api"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"false"`
}

var _ Config = mainConfig{}

// ParseEnvVars reads configuration from the process environment
func ParseEnvVars() (EnvVars, error) {
	var vars EnvVars
	if err := env.Parse(&vars); err != nil {
		return EnvVars{}, fmt.Errorf("parse env: %w", err)
	}
	return vars, nil
}

func (e EnvVars) GetPort() string {
	port := e.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	if e.Env == "" {
		return "DEV"
	}
	return e.Env
}

func (e EnvVars) GetAPIBaseURL() string {
	return strings.TrimSuffix(e.APIBaseURL, "/")
}

func (e EnvVars) GetAPITimeout() time.Duration {
	return e.APITimeout
}

func (e EnvVars) GetSecureCookies() bool {
	return e.SecureCookies
}
