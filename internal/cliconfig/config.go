// Package cliconfig loads the interpolate CLI's configuration, grounded on
// the teacher's internal/cli/config package: viper with flag > env > file >
// default precedence, file optional.
package cliconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the interpolate CLI's resolved configuration.
type Config struct {
	LogFormat string `mapstructure:"log_format"` // "text" or "json"
	NoColor   bool   `mapstructure:"no_color"`
}

// Load reads interpolate.yml/interpolate.yaml from the current directory (if
// present), layers in INTERPOLATE_-prefixed environment variables, and
// returns the result. It never fails on a missing config file — only flags
// and environment are required for the CLI to run.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log_format", "text")
	v.SetDefault("no_color", false)

	v.SetConfigName("interpolate")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INTERPOLATE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("log_format must be 'text' or 'json', got: %s", cfg.LogFormat)
	}

	return &cfg, nil
}
