// Package config loads simulator defaults from environment variables.
// CLI flags override these at startup.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the default run parameters.
type Config struct {
	Sides       int    `env:"TENZI_SIDES" envDefault:"6"`
	Dice        int    `env:"TENZI_DICE" envDefault:"10"`
	Simulations int    `env:"TENZI_SIMULATIONS" envDefault:"10000"`
	Strategy    string `env:"TENZI_STRATEGY" envDefault:"naive"`
	Workers     int    `env:"TENZI_WORKERS" envDefault:"0"`
	Seed        int64  `env:"TENZI_SEED" envDefault:"0"`
	LogLevel    string `env:"TENZI_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
