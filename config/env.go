// Package config loads navcaps tool settings from the environment and
// simulated-browser profiles from TOML files.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/nmxmxh/navcaps/utils"
)

// Config holds settings read from NAVCAPS_* environment variables. Command
// line flags override them.
type Config struct {
	LogLevel  string `env:"NAVCAPS_LOG_LEVEL" envDefault:"warn"`
	Format    string `env:"NAVCAPS_FORMAT" envDefault:"yaml"`
	UserAgent string `env:"NAVCAPS_USER_AGENT"`
	Profile   string `env:"NAVCAPS_PROFILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return utils.WrapError(err, "parse env")
	}
	return nil
}

// Defaults returns the Config used when no variables are set.
func Defaults() Config {
	return Config{LogLevel: "warn", Format: "yaml"}
}

// Load returns the Config for the current process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
