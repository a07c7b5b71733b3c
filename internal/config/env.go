package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides holds settings taken from the environment. They apply on
// top of the config file and below command-line flags.
type EnvOverrides struct {
	Config   string `env:"RUNNER_CONFIG"`
	Driver   string `env:"RUNNER_DRIVER"`
	LogLevel string `env:"RUNNER_LOG_LEVEL"`
	LogFile  string `env:"RUNNER_LOG_FILE"`
}

// ParseEnv reads the RUNNER_* variables.
func ParseEnv() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return o, fmt.Errorf("config: parse env: %w", err)
	}
	return o, nil
}

// Apply copies every non-empty override into cfg.
func (o EnvOverrides) Apply(cfg *Config) {
	if o.Driver != "" {
		cfg.Driver = o.Driver
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
}
