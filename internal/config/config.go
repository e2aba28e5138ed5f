package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	// Gift backend API
	BackendBaseURL string        `env:"BACKEND_BASE_URL" envDefault:"http://localhost:8000"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"30s"`

	// Persisted session pair (the local-storage analog)
	SessionFilePath string `env:"SESSION_FILE_PATH" envDefault:"data/session.json"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
