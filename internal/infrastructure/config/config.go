package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Metrics
	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"bank"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
