// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"KAPPAVERSE_ADDR" envDefault:":8080"`
	// DatabaseDSN selects the postgres backend; empty runs fully in memory.
	DatabaseDSN string `env:"KAPPAVERSE_DB_DSN"`
	// TickInterval is the scheduler cadence. It must stay well under the
	// shortest death window (6h guttari countdown) so no deadline slips by
	// more than one interval.
	TickInterval time.Duration `env:"KAPPAVERSE_TICK_INTERVAL" envDefault:"1s"`
	// TZOffsetMinutes fixes the game-day boundary; default is JST (+09:00).
	TZOffsetMinutes int `env:"KAPPAVERSE_TZ_OFFSET_MINUTES" envDefault:"540"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
