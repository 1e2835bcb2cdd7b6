package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the HTTP server settings read from the environment.
type Config struct {
	Addr            string        `env:"LU_ADDR" envDefault:"127.0.0.1:8080"`
	ShutdownTimeout time.Duration `env:"LU_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadConfig parses Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
