package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds environment overrides. Values stay strings so a malformed
// threshold can be skipped instead of failing the whole parse.
type EnvConfig struct {
	ClicksPerStar  *string `env:"STARBAR_CLICKS_PER_STAR"`
	Debounce       *string `env:"STARBAR_DEBOUNCE"`
	NormalizeEvery *string `env:"STARBAR_NORMALIZE_EVERY"`
	NoColor        string  `env:"NO_COLOR"`
}

// ParseEnv loads EnvConfig from the process environment.
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
