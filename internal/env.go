package internal

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is the formatter configuration read from the environment.
type EnvConfig struct {
	DefaultLocale string `env:"INTL_DEFAULT_LOCALE" envDefault:"en"`
	TextComponent string `env:"INTL_TEXT_COMPONENT"`
	Production    bool   `env:"INTL_PRODUCTION"     envDefault:"false"`
	RequireOther  bool   `env:"INTL_REQUIRE_OTHER"  envDefault:"true"`
}

// LoadConfig reads EnvConfig from environment variables.
func LoadConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Options converts the configuration to formatter options.
func (c EnvConfig) Options() []Option {
	opts := []Option{
		WithProduction(c.Production),
		WithRequireOther(c.RequireOther),
	}
	if c.DefaultLocale != "" {
		opts = append(opts, WithDefaultLocale(c.DefaultLocale))
	}
	if c.TextComponent != "" {
		opts = append(opts, WithTextComponent(c.TextComponent))
	}
	return opts
}
