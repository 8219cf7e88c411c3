// Package config loads application configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// HTTP server
	Port string `env:"PORT" envDefault:"5000"`

	// Uploads
	UploadDir   string `env:"UPLOAD_DIR"    envDefault:"uploads"`
	MaxUploadMB int    `env:"MAX_UPLOAD_MB" envDefault:"32"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
